package types

type DocumentKind string

const (
	DocumentKindPrescription DocumentKind = "prescription"
	DocumentKindAttestation  DocumentKind = "attestation"
	DocumentKindExamRequest  DocumentKind = "exam_request"
	DocumentKindPatientGuide DocumentKind = "patient_guide"
)

type PrescriptionItem struct {
	Med      string `json:"med"`
	Dose     string `json:"dose"`
	Route    string `json:"via"`
	Freq     string `json:"freq"`
	Duration string `json:"duracao"`
	Note     string `json:"obs"`
}

// Document is one of the four derived clinical documents. Every document
// leaves the generator with Validated == false; the transition to true is a
// clinician action recorded through documents.Validate and is one-way.
type Document struct {
	Title       string             `json:"title"`
	Kind        DocumentKind       `json:"type"`
	Content     string             `json:"content"`
	Items       []PrescriptionItem `json:"items,omitempty"`
	Days        int                `json:"days,omitempty"`
	Exams       []string           `json:"exams,omitempty"`
	Alerts      []string           `json:"alerts,omitempty"`
	Validated   bool               `json:"validated"`
	Timestamp   string             `json:"timestamp"`
	ValidatedAt string             `json:"validated_at,omitempty"`
	ValidatedBy string             `json:"validated_by,omitempty"`
}

type DocumentBundle struct {
	Prescription Document `json:"prescription"`
	Attestation  Document `json:"attestation"`
	ExamRequest  Document `json:"exam_request"`
	PatientGuide Document `json:"patient_guide"`
}
