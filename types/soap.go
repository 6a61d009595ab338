package types

type SubjectiveSection struct {
	Title          string `json:"title"`
	Icon           string `json:"icon"`
	Content        string `json:"content"`
	ChiefComplaint string `json:"queixa_principal"`
	HDA            string `json:"hda"`
}

type ObjectiveSection struct {
	Title        string     `json:"title"`
	Icon         string     `json:"icon"`
	Content      string     `json:"content"`
	VitalSigns   VitalSigns `json:"sinais_vitais"`
	PhysicalExam string     `json:"exame_fisico"`
}

type AssessmentSection struct {
	Title                 string `json:"title"`
	Icon                  string `json:"icon"`
	Content               string `json:"content"`
	DiagnosticHypothesis  string `json:"hipotese_diagnostica"`
	ICD10                 string `json:"cid10"`
	DifferentialDiagnosis string `json:"diagnosticos_diferenciais"`
}

type PlanSection struct {
	Title          string   `json:"title"`
	Icon           string   `json:"icon"`
	Content        string   `json:"content"`
	Prescriptions  []string `json:"prescricoes"`
	RequestedExams []string `json:"exames_solicitados"`
	Guidance       string   `json:"orientacoes"`
	Referrals      []string `json:"encaminhamentos"`
}

// SOAPNote is the four-section clinical note assembled from the dialogue
// and the clinical record.
type SOAPNote struct {
	Subjective SubjectiveSection `json:"subjetivo"`
	Objective  ObjectiveSection  `json:"objetivo"`
	Assessment AssessmentSection `json:"avaliacao"`
	Plan       PlanSection       `json:"plano"`
}
