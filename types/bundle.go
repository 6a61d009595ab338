package types

// UniversalJSON is the interoperability block consumed by external record
// systems. Key spelling, including diacritics, is part of the contract.
type UniversalJSON struct {
	HDATecnica    string   `json:"HDA_Tecnica"`
	Comorbidities []string `json:"Comorbidades"`
	Allergies     []string `json:"Alergias"`
	Medications   []string `json:"Medicações_Atuais"`
}

type Metadata struct {
	TotalUtterances   int    `json:"total_falas"`
	DoctorUtterances  int    `json:"falas_medico"`
	PatientUtterances int    `json:"falas_paciente"`
	ProcessedAt       string `json:"processado_em"`
	TranscriptHash    string `json:"transcript_hash"`
}

// ResultBundle is the full pipeline output. Dialogue, SOAP and documents are
// nil when the corresponding feature is disabled in the configuration; the
// clinical record is always present.
type ResultBundle struct {
	Success        bool            `json:"success"`
	Dialogue       []Utterance     `json:"dialog,omitempty"`
	SOAP           *SOAPNote       `json:"soap,omitempty"`
	ClinicalRecord *ClinicalRecord `json:"clinicalData,omitempty"`
	UniversalJSON  *UniversalJSON  `json:"jsonUniversal,omitempty"`
	Documents      *DocumentBundle `json:"documents,omitempty"`
	Metadata       *Metadata       `json:"metadata,omitempty"`
	Error          string          `json:"error,omitempty"`
}
