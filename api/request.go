package api

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"medscribe.com/scribe/pipeline"
	"medscribe.com/scribe/types"
	"medscribe.com/scribe/utils"
)

type Request struct {
	Pipeline pipeline.Pipeline
}

// analyzeRequest mirrors the frontend contract; the transcript plus the
// already-anonymized patient attributes.
type analyzeRequest struct {
	Initials     string `json:"iniciais"`
	Age          int    `json:"idade"`
	CareScenario string `json:"cenario_atendimento"`
	Text         string `json:"texto_transcrito"`
}

// ProcessData handles POST requests carrying one encounter transcript and
// responds with the marshalled result bundle.
func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != "POST" {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	var payload analyzeRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not parse request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	request := pipeline.Request{
		Tid:  fmt.Sprintf("api-%016x", utils.HashString(payload.Text)),
		Text: payload.Text,
		Patient: types.PatientAttributes{
			Initials:     payload.Initials,
			Age:          payload.Age,
			CareScenario: payload.CareScenario,
		},
	}
	logger.Info().Str("tid", request.Tid).Msg("Starting pipeline for request from API")
	resp := <-req.Pipeline(request)
	_, _ = w.Write([]byte(resp))
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}
