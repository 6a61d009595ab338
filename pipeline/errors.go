package pipeline

import "fmt"

// MinTextLength is the minimum trimmed transcript length the engine accepts.
const MinTextLength = 10

// InsufficientInputError rejects transcripts below the minimum length; no
// partial structure is produced in that case.
type InsufficientInputError struct {
	Length int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf(
		"Texto insuficiente para processamento. Mínimo de %d caracteres.",
		MinTextLength,
	)
}
