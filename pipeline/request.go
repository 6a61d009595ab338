package pipeline

import "medscribe.com/scribe/types"

type Request struct {
	Tid     string                  `json:"tid"`
	Text    string                  `json:"texto_transcrito"`
	Patient types.PatientAttributes `json:"patient"`
}

// Pipeline processes one request and delivers the marshalled result bundle
// on the returned channel.
type Pipeline func(request Request) <-chan string
