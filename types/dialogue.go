package types

type Speaker string

const (
	SpeakerDoctor  Speaker = "medico"
	SpeakerPatient Speaker = "paciente"
)

// Utterance is a single attributed line of the reconstructed dialogue.
// Order follows the transcript order of non-empty fragments.
type Utterance struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}
