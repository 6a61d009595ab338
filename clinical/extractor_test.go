package clinical

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"medscribe.com/scribe/lexicon"
	"medscribe.com/scribe/types"
)

func TestResolveDiagnosisPriority(t *testing.T) {
	t.Run("specific phrase shadows the shorter one", func(t *testing.T) {
		record := Extract("paciente admitido com avc isquêmico extenso")
		require.Equal(t, "I63", record.Diagnosis.Code)

		record = Extract("paciente admitido com avc extenso")
		require.Equal(t, "I64", record.Diagnosis.Code)
	})
	t.Run("first table hit wins over later hits", func(t *testing.T) {
		// both "sepse" and "pneumonia" occur; "sepse" is declared first
		record := Extract("quadro de pneumonia evoluindo com sepse")
		require.Equal(t, "A41", record.Diagnosis.Code)
	})
	t.Run("default when nothing matches", func(t *testing.T) {
		record := Extract("consulta de rotina sem achados relevantes")
		require.Equal(t, lexicon.DefaultDiagnosis, record.Diagnosis)
	})
}

func TestResolveMedications(t *testing.T) {
	record := Extract("faz uso de losartana e dipirona quando necessário")
	require.Equal(t, []string{"Dipirona", "Losartana"}, record.Medications)

	record = Extract("nega uso de medicamentos")
	require.Equal(t, []string{}, record.Medications)
}

func TestResolveComorbidities(t *testing.T) {
	record := Extract("antecedentes de hipertensão e diabetes em acompanhamento")
	require.Equal(t, []string{"Hipertensão", "Diabetes"}, record.Comorbidities)

	record = Extract("consulta de rotina sem achados relevantes")
	require.Equal(t, []string{}, record.Comorbidities)
}

func TestResolveAllergies(t *testing.T) {
	t.Run("captured allergen is uppercased", func(t *testing.T) {
		record := Extract("refere alergia a penicilina, sem outras reações")
		require.Equal(t, []string{"PENICILINA"}, record.Allergies)
	})
	t.Run("window counts characters, not bytes", func(t *testing.T) {
		// Accented allergens take two bytes per rune; the 60-character window
		// after the trigger must still cover all of them without splitting one.
		record := Extract("tem alergia a " + strings.Repeat("á", 50))
		require.Equal(t, []string{strings.Repeat("Á", 50)}, record.Allergies)
		require.True(t, utf8.ValidString(record.Allergies[0]))
	})
	t.Run("window truncates sixty characters after the trigger", func(t *testing.T) {
		record := Extract("tem alergia a " + strings.Repeat("á", 70))
		require.Equal(t, []string{strings.Repeat("Á", 50)}, record.Allergies)
	})
	t.Run("sentinel when no trigger word occurs", func(t *testing.T) {
		record := Extract("consulta de rotina sem achados relevantes")
		require.Equal(t, []string{lexicon.NoKnownAllergies}, record.Allergies)
	})
}

func TestResolveSeverity(t *testing.T) {
	t.Run("severe keyword sets Grave", func(t *testing.T) {
		record := Extract("evoluiu com sepse nas últimas horas")
		require.Equal(t, types.SeveritySevere, record.Severity)
	})
	t.Run("severe outranks any number of moderate hits", func(t *testing.T) {
		record := Extract("febre alta, dispneia e taquicardia, suspeita de infarto")
		require.Equal(t, types.SeveritySevere, record.Severity)
	})
	t.Run("moderate keyword sets Moderada", func(t *testing.T) {
		record := Extract("paciente com febre alta desde ontem")
		require.Equal(t, types.SeverityModerate, record.Severity)
	})
	t.Run("defaults to Leve", func(t *testing.T) {
		record := Extract("consulta de rotina sem achados relevantes")
		require.Equal(t, types.SeverityMild, record.Severity)
	})
}

func TestExtractPopulatesVitals(t *testing.T) {
	record := Extract("ao exame PA 120x80 e FC 90, sem outras alterações")
	require.NotNil(t, record.VitalSigns.BloodPressure)
	require.Equal(t, 120, record.VitalSigns.BloodPressure.Systolic)
	require.NotNil(t, record.VitalSigns.HeartRate)
	require.Equal(t, 90, record.VitalSigns.HeartRate.Value)
}
