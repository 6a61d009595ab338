// Package documents derives the four downstream clinical documents from a
// clinical record. Generation is a pure function of the record, the patient
// attributes and the supplied clock time; nothing here performs validation,
// that is a clinician action (see Validate).
package documents

import (
	"fmt"
	"strings"
	"time"

	"medscribe.com/scribe/lexicon"
	"medscribe.com/scribe/types"
	"medscribe.com/scribe/utils"
)

const (
	emptyPrescriptionSentence = "Sem prescrição necessária no momento."
	noMedicationSentence      = "  Nenhuma medicação prescrita."
)

// GenerateAll builds the full document bundle. Every document starts as a
// draft (validated == false).
func GenerateAll(record types.ClinicalRecord, patient types.PatientAttributes, now time.Time) types.DocumentBundle {
	return types.DocumentBundle{
		Prescription: GeneratePrescription(record, now),
		Attestation:  GenerateAttestation(record, patient, now),
		ExamRequest:  GenerateExamRequest(record, now),
		PatientGuide: GeneratePatientGuide(record, now),
	}
}

// GeneratePrescription looks the diagnosis code up in the prescription
// table, falling back to the default regimen for unmapped codes.
func GeneratePrescription(record types.ClinicalRecord, now time.Time) types.Document {
	items, ok := lexicon.PrescriptionsByCode[record.Diagnosis.Code]
	if !ok {
		items = lexicon.PrescriptionsByCode[lexicon.FallbackPrescriptionCode]
	}

	var lines []string
	for i, item := range items {
		line := fmt.Sprintf("%d) %s — %s, %s, %s, por %s", i+1, item.Med, item.Dose, item.Route, item.Freq, item.Duration)
		if item.Note != "" {
			line += fmt.Sprintf(" (%s)", item.Note)
		}
		lines = append(lines, line)
	}

	content := emptyPrescriptionSentence
	if len(lines) > 0 {
		content = strings.Join(lines, "\n")
	}

	return types.Document{
		Title:     "Receituário Médico",
		Kind:      types.DocumentKindPrescription,
		Content:   content,
		Items:     items,
		Validated: false,
		Timestamp: now.Format(utils.RFC3339Micro),
	}
}

// GenerateAttestation renders the leave certificate; the leave duration is a
// fixed function of the severity tier.
func GenerateAttestation(record types.ClinicalRecord, patient types.PatientAttributes, now time.Time) types.Document {
	days, ok := lexicon.LeaveDaysBySeverity[record.Severity]
	if !ok {
		days = lexicon.LeaveDaysBySeverity[types.SeverityMild]
	}

	initials := patient.Initials
	if initials == "" {
		initials = "N.N."
	}

	content := fmt.Sprintf(
		"Atesto para os devidos fins que o(a) paciente %s, %d anos, "+
			"esteve sob meus cuidados profissionais, necessitando de afastamento por %d dia(s) "+
			"a partir desta data.\nCID-10: %s — %s",
		initials, patient.Age, days, record.Diagnosis.Code, record.Diagnosis.Description,
	)

	return types.Document{
		Title:     "Atestado Médico",
		Kind:      types.DocumentKindAttestation,
		Content:   content,
		Days:      days,
		Validated: false,
		Timestamp: now.Format(utils.RFC3339Micro),
	}
}

// GenerateExamRequest selects the exam panel by the first character of the
// diagnosis code, with a generic fallback for unmapped categories.
func GenerateExamRequest(record types.ClinicalRecord, now time.Time) types.Document {
	category := lexicon.GenericExamCategory
	if record.Diagnosis.Code != "" {
		category = record.Diagnosis.Code[:1]
	}
	exams, ok := lexicon.ExamsByCategory[category]
	if !ok {
		exams = lexicon.ExamsByCategory[lexicon.GenericExamCategory]
	}

	lines := make([]string, len(exams))
	for i, exam := range exams {
		lines[i] = fmt.Sprintf("%d) %s", i+1, exam)
	}
	header := fmt.Sprintf(
		"Solicito a realização dos seguintes exames complementares:\nHipótese diagnóstica: %s (%s)\n",
		record.Diagnosis.Description, record.Diagnosis.Code,
	)

	return types.Document{
		Title:     "Solicitação de Exames",
		Kind:      types.DocumentKindExamRequest,
		Content:   header + strings.Join(lines, "\n"),
		Exams:     exams,
		Validated: false,
		Timestamp: now.Format(utils.RFC3339Micro),
	}
}

// GeneratePatientGuide writes the plain-language guide. Alert resolution
// tries the exact diagnosis code, then the "_"+category fallback, then the
// global default list.
func GeneratePatientGuide(record types.ClinicalRecord, now time.Time) types.Document {
	alerts := resolveAlerts(record.Diagnosis.Code)

	alertLines := make([]string, len(alerts))
	for i, alert := range alerts {
		alertLines[i] = fmt.Sprintf("  ⚠️ %s", alert)
	}

	medLines := noMedicationSentence
	if len(record.Medications) > 0 {
		lines := make([]string, len(record.Medications))
		for i, med := range record.Medications {
			lines[i] = fmt.Sprintf("  💊 %s", med)
		}
		medLines = strings.Join(lines, "\n")
	}

	content := fmt.Sprintf(
		"📋 GUIA DE ORIENTAÇÕES PARA O PACIENTE\n%s\n\n"+
			"Olá! Você foi atendido(a) hoje e o diagnóstico indicou: %s.\n"+
			"Gravidade estimada: %s\n\n"+
			"🩺 SEUS MEDICAMENTOS:\n%s\n\n"+
			"🚨 PROCURE ATENDIMENTO URGENTE SE:\n%s\n\n"+
			"📞 Em caso de emergência, ligue 192 (SAMU) ou 193 (Bombeiros).",
		strings.Repeat("=", 40),
		record.Diagnosis.Description,
		record.Severity,
		medLines,
		strings.Join(alertLines, "\n"),
	)

	return types.Document{
		Title:     "Guia de Orientações ao Paciente",
		Kind:      types.DocumentKindPatientGuide,
		Content:   content,
		Alerts:    alerts,
		Validated: false,
		Timestamp: now.Format(utils.RFC3339Micro),
	}
}

func resolveAlerts(code string) []string {
	if alerts, ok := lexicon.AlertsByCode[code]; ok {
		return alerts
	}
	if code != "" {
		if alerts, ok := lexicon.AlertsByCode["_"+code[:1]]; ok {
			return alerts
		}
	}
	return lexicon.AlertsByCode[lexicon.DefaultAlertKey]
}

// Validate returns a validated copy of the document; the transition is
// one-way and there is no operation that resets it.
func Validate(doc types.Document, validatedBy string, now time.Time) types.Document {
	doc.Validated = true
	doc.ValidatedAt = now.Format(utils.RFC3339Micro)
	doc.ValidatedBy = validatedBy
	return doc
}

// CanExport reports whether a document is releasable; only validated
// documents leave the system.
func CanExport(doc types.Document) bool {
	return doc.Validated
}
