package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"medscribe.com/scribe/pipeline"
)

func stubPipeline(captured *pipeline.Request, response string) pipeline.Pipeline {
	return func(request pipeline.Request) <-chan string {
		*captured = request
		ch := make(chan string, 1)
		ch <- response
		close(ch)
		return ch
	}
}

func TestProcessData(t *testing.T) {
	var captured pipeline.Request
	handler := &Request{Pipeline: stubPipeline(&captured, `{"success":true}`)}

	body := `{"iniciais":"J.S.","idade":45,"cenario_atendimento":"ambulatorial","texto_transcrito":"Estou sentindo dor de cabeça há dois dias."}`
	recorder := httptest.NewRecorder()
	handler.ProcessData(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"success":true}`, recorder.Body.String())

	require.Equal(t, "J.S.", captured.Patient.Initials)
	require.Equal(t, 45, captured.Patient.Age)
	require.Equal(t, "ambulatorial", captured.Patient.CareScenario)
	require.Equal(t, "Estou sentindo dor de cabeça há dois dias.", captured.Text)
	require.True(t, strings.HasPrefix(captured.Tid, "api-"))
}

func TestProcessDataTidIsStable(t *testing.T) {
	var first, second pipeline.Request
	body := `{"texto_transcrito":"Estou sentindo dor de cabeça há dois dias."}`

	handler := &Request{Pipeline: stubPipeline(&first, `{}`)}
	handler.ProcessData(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	handler = &Request{Pipeline: stubPipeline(&second, `{}`)}
	handler.ProcessData(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, first.Tid, second.Tid)
}

func TestProcessDataRejectsNonPost(t *testing.T) {
	var captured pipeline.Request
	handler := &Request{Pipeline: stubPipeline(&captured, `{}`)}

	recorder := httptest.NewRecorder()
	handler.ProcessData(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestProcessDataRejectsMalformedBody(t *testing.T) {
	var captured pipeline.Request
	handler := &Request{Pipeline: stubPipeline(&captured, `{}`)}

	recorder := httptest.NewRecorder()
	handler.ProcessData(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json")))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProcessDataResponseIsJSON(t *testing.T) {
	var captured pipeline.Request
	handler := &Request{Pipeline: stubPipeline(&captured, `{"success":false,"error":"x"}`)}

	body, err := json.Marshal(analyzeRequest{Text: "Paciente com dor abdominal há um dia inteiro."})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	handler.ProcessData(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body))))
	require.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
}
