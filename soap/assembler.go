// Package soap composes the four-section clinical note from the diarized
// dialogue and the structured clinical record.
package soap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"medscribe.com/scribe/types"
)

var (
	examPattern = regexp.MustCompile(`(?i)exame|ausculta|palpação|inspeção|vital`)
	planPattern = regexp.MustCompile(`(?i)prescrevo|solicito|recomendo|indico|oriento|conduta|plano`)
)

// Fallback sentences used when a section has no source material.
const (
	noComplaintSentence    = "Paciente refere queixa principal conforme transcrição."
	complaintNotIdentified = "Não identificada"
	hdaInTranscript        = "Detalhes na transcrição completa."
	genericExamSentence    = "Exame físico registrado durante consulta."
	examPending            = "A completar."
	differentialsPending   = "A considerar conforme evolução clínica."
	planPending            = "Conduta a ser definida pelo médico assistente."
	defaultGuidance        = "Retorno conforme agendamento."
)

// Assemble builds the SOAP note. Medication references in the plan come from
// the clinical record and are not re-extracted.
func Assemble(dialog []types.Utterance, record types.ClinicalRecord) types.SOAPNote {
	var patientLines, doctorLines []string
	for _, utterance := range dialog {
		if utterance.Speaker == types.SpeakerPatient {
			patientLines = append(patientLines, utterance.Text)
		} else {
			doctorLines = append(doctorLines, utterance.Text)
		}
	}

	examLines := filterLines(doctorLines, examPattern)
	planLines := filterLines(doctorLines, planPattern)

	return types.SOAPNote{
		Subjective: buildSubjective(patientLines),
		Objective:  buildObjective(record.VitalSigns, examLines),
		Assessment: buildAssessment(record.Diagnosis),
		Plan:       buildPlan(planLines, record.Medications),
	}
}

func buildSubjective(patientLines []string) types.SubjectiveSection {
	section := types.SubjectiveSection{
		Title:          "Subjetivo (S)",
		Icon:           "💬",
		Content:        noComplaintSentence,
		ChiefComplaint: complaintNotIdentified,
		HDA:            hdaInTranscript,
	}
	if len(patientLines) > 0 {
		section.Content = strings.Join(patientLines, ". ") + "."
		section.ChiefComplaint = patientLines[0]
	}
	if len(patientLines) > 1 {
		section.HDA = strings.Join(patientLines[1:], ". ")
	}
	return section
}

func buildObjective(signs types.VitalSigns, examLines []string) types.ObjectiveSection {
	vitalsSummary := summarizeVitals(signs)
	examContent := genericExamSentence
	physicalExam := examPending
	if len(examLines) > 0 {
		examContent = strings.Join(examLines, ". ")
		physicalExam = examContent
	}
	return types.ObjectiveSection{
		Title:        "Objetivo (O)",
		Icon:         "🔍",
		Content:      vitalsSummary + examContent,
		VitalSigns:   signs,
		PhysicalExam: physicalExam,
	}
}

func buildAssessment(diagnosis types.DiagnosisCode) types.AssessmentSection {
	return types.AssessmentSection{
		Title:                 "Avaliação (A)",
		Icon:                  "🧠",
		Content:               fmt.Sprintf("Hipótese diagnóstica: %s (%s)", diagnosis.Description, diagnosis.Code),
		DiagnosticHypothesis:  diagnosis.Description,
		ICD10:                 diagnosis.Code,
		DifferentialDiagnosis: differentialsPending,
	}
}

func buildPlan(planLines []string, medications []string) types.PlanSection {
	if medications == nil {
		medications = []string{}
	}
	content := planPending
	if len(planLines) > 0 {
		content = strings.Join(planLines, ". ")
	}
	return types.PlanSection{
		Title:          "Plano (P)",
		Icon:           "📋",
		Content:        content,
		Prescriptions:  medications,
		RequestedExams: []string{},
		Guidance:       defaultGuidance,
		Referrals:      []string{},
	}
}

// summarizeVitals renders only the vitals that were present, each with its
// canonical abbreviation and unit, in the fixed PA/FC/FR/SpO2/Temp order.
func summarizeVitals(signs types.VitalSigns) string {
	var parts []string
	if bp := signs.BloodPressure; bp != nil {
		parts = append(parts, fmt.Sprintf("PA %dx%dmmHg", bp.Systolic, bp.Diastolic))
	}
	if hr := signs.HeartRate; hr != nil {
		parts = append(parts, fmt.Sprintf("FC %dbpm", hr.Value))
	}
	if rr := signs.RespiratoryRate; rr != nil {
		parts = append(parts, fmt.Sprintf("FR %dirpm", rr.Value))
	}
	if sat := signs.OxygenSaturation; sat != nil {
		parts = append(parts, fmt.Sprintf("SpO2 %d%%", sat.Value))
	}
	if temp := signs.Temperature; temp != nil {
		parts = append(parts, fmt.Sprintf("Temp %s°C", formatTemperature(temp.Value)))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("Sinais vitais: %s. ", strings.Join(parts, ", "))
}

// formatTemperature keeps at least one decimal place ("38.0", not "38") so
// the rendered note matches the historical output format.
func formatTemperature(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func filterLines(lines []string, pattern *regexp.Regexp) []string {
	var matched []string
	for _, line := range lines {
		if pattern.MatchString(line) {
			matched = append(matched, line)
		}
	}
	return matched
}
