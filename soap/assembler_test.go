package soap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"medscribe.com/scribe/types"
)

func sampleRecord() types.ClinicalRecord {
	return types.ClinicalRecord{
		Diagnosis: types.DiagnosisCode{Code: "R51", Description: "Cefaleia"},
		VitalSigns: types.VitalSigns{
			BloodPressure: &types.BloodPressure{Systolic: 120, Diastolic: 80, Raw: "PA 120x80"},
			Temperature:   &types.Temperature{Value: 38, Raw: "temperatura 38"},
		},
		Medications: []string{"Dipirona"},
		Allergies:   []string{"NADA (NEGA ALERGIAS CONHECIDAS - NKDA)"},
		Severity:    types.SeverityMild,
	}
}

func sampleDialog() []types.Utterance {
	return []types.Utterance{
		{Speaker: types.SpeakerPatient, Text: "Estou com dor de cabeça forte"},
		{Speaker: types.SpeakerPatient, Text: "A dor começou ontem à noite"},
		{Speaker: types.SpeakerDoctor, Text: "Vou realizar o exame físico agora"},
		{Speaker: types.SpeakerDoctor, Text: "Prescrevo dipirona para a dor"},
	}
}

func TestAssembleSubjective(t *testing.T) {
	note := Assemble(sampleDialog(), sampleRecord())

	require.Equal(t, "Subjetivo (S)", note.Subjective.Title)
	require.Equal(t, "Estou com dor de cabeça forte", note.Subjective.ChiefComplaint)
	require.Equal(t, "A dor começou ontem à noite", note.Subjective.HDA)
	require.Equal(t, "Estou com dor de cabeça forte. A dor começou ontem à noite.", note.Subjective.Content)
}

func TestAssembleObjective(t *testing.T) {
	note := Assemble(sampleDialog(), sampleRecord())

	require.Equal(t, "Sinais vitais: PA 120x80mmHg, Temp 38.0°C. Vou realizar o exame físico agora", note.Objective.Content)
	require.Equal(t, "Vou realizar o exame físico agora", note.Objective.PhysicalExam)
	require.NotNil(t, note.Objective.VitalSigns.BloodPressure)
}

func TestAssembleAssessment(t *testing.T) {
	note := Assemble(sampleDialog(), sampleRecord())

	require.Equal(t, "Hipótese diagnóstica: Cefaleia (R51)", note.Assessment.Content)
	require.Equal(t, "Cefaleia", note.Assessment.DiagnosticHypothesis)
	require.Equal(t, "R51", note.Assessment.ICD10)
}

func TestAssemblePlan(t *testing.T) {
	note := Assemble(sampleDialog(), sampleRecord())

	require.Equal(t, "Prescrevo dipirona para a dor", note.Plan.Content)
	require.Equal(t, []string{"Dipirona"}, note.Plan.Prescriptions)
	require.Equal(t, "Retorno conforme agendamento.", note.Plan.Guidance)
}

func TestAssembleEmptyDialog(t *testing.T) {
	record := types.ClinicalRecord{
		Diagnosis: types.DiagnosisCode{Code: "R69", Description: "Causa de morbidade desconhecida"},
	}
	note := Assemble(nil, record)

	require.Equal(t, "Paciente refere queixa principal conforme transcrição.", note.Subjective.Content)
	require.Equal(t, "Não identificada", note.Subjective.ChiefComplaint)
	require.Equal(t, "Detalhes na transcrição completa.", note.Subjective.HDA)
	require.Equal(t, "Exame físico registrado durante consulta.", note.Objective.Content)
	require.Equal(t, "A completar.", note.Objective.PhysicalExam)
	require.Equal(t, "Conduta a ser definida pelo médico assistente.", note.Plan.Content)
}

func TestSummarizeVitalsOrderAndUnits(t *testing.T) {
	signs := types.VitalSigns{
		Temperature:      &types.Temperature{Value: 37.5},
		OxygenSaturation: &types.VitalValue{Value: 96},
		RespiratoryRate:  &types.VitalValue{Value: 18},
		HeartRate:        &types.VitalValue{Value: 88},
		BloodPressure:    &types.BloodPressure{Systolic: 130, Diastolic: 85},
	}
	require.Equal(
		t,
		"Sinais vitais: PA 130x85mmHg, FC 88bpm, FR 18irpm, SpO2 96%, Temp 37.5°C. ",
		summarizeVitals(signs),
	)
	require.Equal(t, "", summarizeVitals(types.VitalSigns{}))
}
