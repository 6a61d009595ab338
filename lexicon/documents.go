package lexicon

import (
	"medscribe.com/scribe/types"
)

// ExamsByCategory maps the first character of the ICD-10 code to the exam
// panel requested for that family of conditions.
var ExamsByCategory = map[string][]string{
	"I": {"ECG", "Ecocardiograma", "RX Tórax", "Hemograma completo", "Troponina", "BNP", "Perfil lipídico"},
	"E": {"Glicemia de jejum", "HbA1c", "Perfil lipídico", "Creatinina", "Microalbuminúria"},
	"J": {"RX Tórax", "Hemograma", "PCR", "Gasometria", "Cultura de escarro"},
	"R": {"Hemograma", "PCR", "VHS", "Eletrólitos", "Função renal"},
	"N": {"EAS", "Urocultura", "Creatinina", "Ureia"},
	"G": {"TC de crânio", "Hemograma", "Glicemia", "Eletrólitos"},
	"M": {"RX região afetada", "Hemograma", "PCR", "VHS", "Ácido úrico"},
	"K": {"Endoscopia digestiva alta", "Hemograma", "Função hepática"},
	"F": {"TSH", "T4L", "Hemograma", "Glicemia"},
	"A": {"Hemograma", "Hemoculturas", "Lactato", "Procalcitonina", "PCR"},
	"H": {"Otoscopia", "Audiometria"},
	"T": {"RX região afetada", "Hemograma", "Coagulograma"},
	"U": {"PCR (COVID)", "Hemograma", "PCR", "D-dímero", "Ferritina", "DHL"},
}

// GenericExamCategory is used when the code's first character is unmapped.
const GenericExamCategory = "R"

// PrescriptionsByCode maps an exact ICD-10 code to its standard regimen.
// Unmapped codes fall back to the R51 regimen.
var PrescriptionsByCode = map[string][]types.PrescriptionItem{
	"R51": {
		{Med: "Dipirona 500mg", Dose: "1 comprimido", Route: "VO", Freq: "6/6h", Duration: "3 dias", Note: "se dor"},
		{Med: "Paracetamol 750mg", Dose: "1 comprimido", Route: "VO", Freq: "8/8h", Duration: "3 dias", Note: "alternativa"},
	},
	"I10": {
		{Med: "Losartana 50mg", Dose: "1 comprimido", Route: "VO", Freq: "1x/dia", Duration: "Uso contínuo", Note: ""},
		{Med: "Hidroclorotiazida 25mg", Dose: "1 comprimido", Route: "VO", Freq: "1x/dia", Duration: "Uso contínuo", Note: "manhã"},
	},
	"E11": {
		{Med: "Metformina 850mg", Dose: "1 comprimido", Route: "VO", Freq: "2x/dia", Duration: "Uso contínuo", Note: "após refeições"},
	},
	"J45": {
		{Med: "Salbutamol spray 100mcg", Dose: "2 jatos", Route: "Inalatória", Freq: "6/6h", Duration: "5 dias", Note: "com espaçador se disponível"},
	},
	"K29": {
		{Med: "Omeprazol 20mg", Dose: "1 cápsula", Route: "VO", Freq: "1x/dia", Duration: "7 dias", Note: "em jejum"},
	},
}

// FallbackPrescriptionCode names the regimen used for unmapped codes.
const FallbackPrescriptionCode = "R51"

// LeaveDaysBySeverity fixes the certificate leave duration per tier.
var LeaveDaysBySeverity = map[types.Severity]int{
	types.SeverityMild:     1,
	types.SeverityModerate: 3,
	types.SeveritySevere:   7,
}

// AlertsByCode resolves the patient-guide warning list. Lookup order: exact
// code, then "_"+category (first character of the code), then DefaultAlertKey.
var AlertsByCode = map[string][]string{
	"I10": {
		"Dor de cabeça intensa que não melhora com medicação",
		"Visão turva ou embaçada",
		"Dor no peito ou falta de ar",
		"Sangramento nasal persistente",
	},
	"E11": {
		"Tremores, sudorese fria ou confusão (hipoglicemia)",
		"Sede excessiva com muita urina",
		"Visão embaçada súbita",
		"Ferida que não cicatriza",
	},
	"I21": {
		"Dor no peito irradiando para braço, mandíbula ou costas",
		"Sudorese fria e palidez",
		"Falta de ar intensa ou náuseas",
		"LIGUE 192 (SAMU) IMEDIATAMENTE se estes sintomas surgirem",
	},
	"I64": {
		"Perda de força em um lado do corpo",
		"Fala arrastada ou dificuldade para falar",
		"Confusão mental súbita",
		"Dor de cabeça muito forte e repentina",
		"LIGUE 192 (SAMU) IMEDIATAMENTE",
	},
	"A41": {
		"Febre que não cede com antitérmico",
		"Confusão mental ou sonolência excessiva",
		"Pele fria, pegajosa ou manchas vermelhas/roxas",
		"Falta de ar ou respiração acelerada",
		"PROCURE EMERGÊNCIA IMEDIATAMENTE",
	},
	"R57": {
		"Extremidades frias ou pálidas",
		"Tontura intensa ao levantar",
		"Confusão mental ou desmaio",
		"Palidez acentuada ou suor frio",
		"Procure emergência IMEDIATAMENTE",
	},
	"J44": {
		"Falta de ar progressiva, mesmo em repouso",
		"Aumento da tosse com catarro espesso",
		"Lábios ou unhas azulados",
		"Febre associada a piora da falta de ar",
	},
	"I50": {
		"Inchaço progressivo nas pernas ou abdômen",
		"Falta de ar ao deitar (precisar dormir sentado)",
		"Ganho de peso rápido (mais de 1kg/dia)",
		"Tosse persistente, especialmente à noite",
	},

	// category fallbacks
	"_I": {"Dor no peito, falta de ar ou desmaio"},
	"_E": {"Tremores, sudorese fria, confusão ou sede excessiva"},
	"_J": {"Falta de ar progressiva, febre alta ou catarro com sangue"},
	"_N": {"Dor intensa nas costas/flancos, febre ou sangue na urina"},
	"_R": {"Sintomas que pioram ou não melhoram em 48h"},
	"_G": {"Dor de cabeça muito forte, convulsões ou confusão mental"},
	"_M": {"Inchaço, vermelhidão intensa ou incapacidade de movimentar"},
	"_K": {"Vômitos com sangue, dor abdominal intensa ou fezes escuras"},
	"_A": {"Febre que não cede, prostração ou confusão mental"},
	"_T": {"Inchaço progressivo, dormência ou sangramento"},
	DefaultAlertKey: {
		"Febre persistente acima de 38.5°C",
		"Dor que não melhora com a medicação",
		"Falta de ar ou dificuldade para respirar",
		"Qualquer piora dos sintomas",
	},
}

const DefaultAlertKey = "_DEFAULT"
