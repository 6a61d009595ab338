package pipeline

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"medscribe.com/scribe/lexicon"
	"medscribe.com/scribe/types"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

const sampleTranscript = "Doutor, estou sentindo dor de cabeça há dois dias. " +
	"Vou examinar o paciente agora. " +
	"PA 120x80 e FC 90. " +
	"Prescrevo dipirona a cada seis horas."

func sampleRequest() Request {
	return Request{
		Tid:  "test-tid",
		Text: sampleTranscript,
		Patient: types.PatientAttributes{
			Initials:     "J.S.",
			Age:          45,
			CareScenario: "ambulatorial",
		},
	}
}

func TestProcessRejectsShortInput(t *testing.T) {
	t.Run("below the minimum", func(t *testing.T) {
		_, err := Process(Request{Text: "   oi doc   "}, types.DefaultConfiguration(), testNow)
		require.Error(t, err)

		var insufficientErr *InsufficientInputError
		require.True(t, errors.As(err, &insufficientErr))
		require.Equal(t, 6, insufficientErr.Length)
		require.Equal(t, "Texto insuficiente para processamento. Mínimo de 10 caracteres.", err.Error())
	})
	t.Run("one below the minimum fails", func(t *testing.T) {
		bundle, err := Process(Request{Text: "  abcdefghi  "}, types.DefaultConfiguration(), testNow)
		require.Error(t, err)
		require.Nil(t, bundle.Documents)
		require.False(t, bundle.Success)
	})
	t.Run("exactly the minimum passes", func(t *testing.T) {
		_, err := Process(Request{Text: "abcdefghij"}, types.DefaultConfiguration(), testNow)
		require.NoError(t, err)
	})
}

func TestProcessChestPainVitals(t *testing.T) {
	request := Request{Tid: "chest-pain", Text: "Paciente relata dor no peito. PA 150x95mmHg. FC 88bpm."}
	bundle, err := Process(request, types.DefaultConfiguration(), testNow)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(bundle.Dialogue), 2)
	bp := bundle.ClinicalRecord.VitalSigns.BloodPressure
	require.NotNil(t, bp)
	require.Equal(t, 150, bp.Systolic)
	require.Equal(t, 95, bp.Diastolic)
	hr := bundle.ClinicalRecord.VitalSigns.HeartRate
	require.NotNil(t, hr)
	require.Equal(t, 88, hr.Value)
}

func TestProcessEmergencyTranscript(t *testing.T) {
	request := Request{Tid: "emergency", Text: "Paciente com infarto evoluindo para choque cardiogênico."}
	bundle, err := Process(request, types.DefaultConfiguration(), testNow)
	require.NoError(t, err)

	require.Equal(t, types.SeveritySevere, bundle.ClinicalRecord.Severity)
	require.Equal(t, "I21", bundle.ClinicalRecord.Diagnosis.Code)
	require.Equal(t, 7, bundle.Documents.Attestation.Days)
}

func TestProcessFullTranscript(t *testing.T) {
	bundle, err := Process(sampleRequest(), types.DefaultConfiguration(), testNow)
	require.NoError(t, err)
	require.True(t, bundle.Success)

	require.Len(t, bundle.Dialogue, 4)
	require.Equal(t, types.SpeakerPatient, bundle.Dialogue[0].Speaker)

	require.NotNil(t, bundle.ClinicalRecord)
	require.Equal(t, "R51", bundle.ClinicalRecord.Diagnosis.Code)
	require.Equal(t, []string{"Dipirona"}, bundle.ClinicalRecord.Medications)
	require.Equal(t, []string{lexicon.NoKnownAllergies}, bundle.ClinicalRecord.Allergies)
	require.Equal(t, types.SeverityMild, bundle.ClinicalRecord.Severity)
	require.NotNil(t, bundle.ClinicalRecord.VitalSigns.BloodPressure)

	require.NotNil(t, bundle.SOAP)
	require.Equal(t, "Doutor, estou sentindo dor de cabeça há dois dias", bundle.SOAP.Subjective.ChiefComplaint)

	require.NotNil(t, bundle.Documents)
	require.Equal(t, 1, bundle.Documents.Attestation.Days)

	require.NotNil(t, bundle.Metadata)
	require.Equal(t, 4, bundle.Metadata.TotalUtterances)
	require.Equal(t, 3, bundle.Metadata.DoctorUtterances)
	require.Equal(t, 1, bundle.Metadata.PatientUtterances)
	require.Equal(t, testNow.Format("2006-01-02T15:04:05.000000-07:00"), bundle.Metadata.ProcessedAt)
	require.Len(t, bundle.Metadata.TranscriptHash, 16)

	require.NotNil(t, bundle.UniversalJSON)
	require.Equal(t, []string{lexicon.NoKnownAllergies}, bundle.UniversalJSON.Allergies)
}

func TestProcessIsDeterministic(t *testing.T) {
	first, err := Process(sampleRequest(), types.DefaultConfiguration(), testNow)
	require.NoError(t, err)
	second, err := Process(sampleRequest(), types.DefaultConfiguration(), testNow)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(first, second))

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, firstJSON, secondJSON)
}

func TestProcessFeatureGating(t *testing.T) {
	cfg := types.Configuration{
		Name:     "soap_only",
		Pipeline: types.MedicalScribePipeline,
		Features: []string{types.SOAPFeature},
	}
	bundle, err := Process(sampleRequest(), cfg, testNow)
	require.NoError(t, err)

	require.Nil(t, bundle.Dialogue)
	require.NotNil(t, bundle.SOAP)
	require.Nil(t, bundle.Documents)
	// the clinical record and metadata are always present
	require.NotNil(t, bundle.ClinicalRecord)
	require.NotNil(t, bundle.Metadata)
}

func TestResultBundleKeys(t *testing.T) {
	bundle, err := Process(sampleRequest(), types.DefaultConfiguration(), testNow)
	require.NoError(t, err)

	buf, err := json.Marshal(bundle)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf, &decoded))
	for _, key := range []string{"success", "dialog", "soap", "clinicalData", "jsonUniversal", "documents", "metadata"} {
		require.Contains(t, decoded, key)
	}

	var universal map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["jsonUniversal"], &universal))
	require.Contains(t, universal, "Medicações_Atuais")
	require.Contains(t, universal, "HDA_Tecnica")

	var metadata map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["metadata"], &metadata))
	for _, key := range []string{"total_falas", "falas_medico", "falas_paciente", "processado_em"} {
		require.Contains(t, metadata, key)
	}
}

func TestEmptyListsMarshalAsArrays(t *testing.T) {
	// A transcript with no medication, comorbidity or prescription hits must
	// still serialize those fields as [] rather than null.
	request := Request{Tid: "routine", Text: "consulta de rotina sem achados relevantes."}
	bundle, err := Process(request, types.DefaultConfiguration(), testNow)
	require.NoError(t, err)

	buf, err := json.Marshal(bundle)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf, &decoded))

	var clinical map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["clinicalData"], &clinical))
	require.JSONEq(t, "[]", string(clinical["medicacoes_atuais"]))
	require.JSONEq(t, "[]", string(clinical["comorbidades"]))

	var universal map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["jsonUniversal"], &universal))
	require.JSONEq(t, "[]", string(universal["Medicações_Atuais"]))
	require.JSONEq(t, "[]", string(universal["Comorbidades"]))

	var note map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["soap"], &note))
	var plan map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(note["plano"], &plan))
	require.JSONEq(t, "[]", string(plan["prescricoes"]))
}

func TestMedicalScribePipeline(t *testing.T) {
	ppln, err := MedicalScribe(types.DefaultConfiguration())
	require.NoError(t, err)

	t.Run("successful request", func(t *testing.T) {
		result, ok := <-ppln(sampleRequest())
		require.True(t, ok)

		var bundle types.ResultBundle
		require.NoError(t, json.Unmarshal([]byte(result), &bundle))
		require.True(t, bundle.Success)
		require.Empty(t, bundle.Error)
	})
	t.Run("short input yields an error bundle", func(t *testing.T) {
		result, ok := <-ppln(Request{Tid: "short", Text: "oi"})
		require.True(t, ok)

		var bundle types.ResultBundle
		require.NoError(t, json.Unmarshal([]byte(result), &bundle))
		require.False(t, bundle.Success)
		require.Equal(t, "Texto insuficiente para processamento. Mínimo de 10 caracteres.", bundle.Error)
	})
}

func TestMedicalScribeRejectsWrongPipelineType(t *testing.T) {
	_, err := MedicalScribe(types.Configuration{Pipeline: "other"})
	require.Error(t, err)
}
