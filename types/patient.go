package types

// PatientAttributes carries the minimal, already de-identified attributes the
// engine needs. Identity sanitization happens upstream; full names never
// reach this service.
type PatientAttributes struct {
	Initials     string `json:"iniciais"`
	Age          int    `json:"idade"`
	CareScenario string `json:"cenario_atendimento"`
}
