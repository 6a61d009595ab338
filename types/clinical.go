package types

type Severity string

const (
	SeverityMild     Severity = "Leve"
	SeverityModerate Severity = "Moderada"
	SeveritySevere   Severity = "Grave"
)

type DiagnosisCode struct {
	Code        string `json:"code"`
	Description string `json:"desc"`
}

// ClinicalRecord is the structured result of the clinical extraction.
// Allergies is never empty: when no trigger word matched it carries the
// single NKDA sentinel entry.
type ClinicalRecord struct {
	Diagnosis     DiagnosisCode `json:"cid_principal"`
	VitalSigns    VitalSigns    `json:"sinais_vitais"`
	Medications   []string      `json:"medicacoes_atuais"`
	Allergies     []string      `json:"alergias"`
	Comorbidities []string      `json:"comorbidades"`
	Severity      Severity      `json:"gravidade"`
}
