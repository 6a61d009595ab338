// Package pipeline wires the extraction stages into the medical scribe
// engine. Process is a pure function of its inputs; MedicalScribe wraps it
// into the channel-based Pipeline shape consumed by the worker and the API.
package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"medscribe.com/scribe/clinical"
	"medscribe.com/scribe/dialogue"
	"medscribe.com/scribe/documents"
	"medscribe.com/scribe/logger"
	"medscribe.com/scribe/soap"
	"medscribe.com/scribe/types"
	"medscribe.com/scribe/utils"
)

// Process runs the full structuring pass over one transcript. The caller
// supplies the clock so that repeated invocations over the same text can be
// compared byte-for-byte.
func Process(request Request, cfg types.Configuration, now time.Time) (types.ResultBundle, error) {
	trimmed := strings.TrimSpace(request.Text)
	if utf8.RuneCountInString(trimmed) < MinTextLength {
		return types.ResultBundle{}, &InsufficientInputError{Length: utf8.RuneCountInString(trimmed)}
	}

	dialog := dialogue.Diarize(request.Text)
	record := clinical.Extract(request.Text)
	note := soap.Assemble(dialog, record)

	doctorCount := 0
	for _, utterance := range dialog {
		if utterance.Speaker == types.SpeakerDoctor {
			doctorCount++
		}
	}

	bundle := types.ResultBundle{
		Success:        true,
		ClinicalRecord: &record,
		UniversalJSON: &types.UniversalJSON{
			HDATecnica:    note.Subjective.HDA,
			Comorbidities: record.Comorbidities,
			Allergies:     record.Allergies,
			Medications:   record.Medications,
		},
		Metadata: &types.Metadata{
			TotalUtterances:   len(dialog),
			DoctorUtterances:  doctorCount,
			PatientUtterances: len(dialog) - doctorCount,
			ProcessedAt:       now.Format(utils.RFC3339Micro),
			TranscriptHash:    fmt.Sprintf("%016x", utils.HashString(request.Text)),
		},
	}

	if cfg.CheckFeature(types.DialogueFeature) {
		bundle.Dialogue = dialog
	}
	if cfg.CheckFeature(types.SOAPFeature) {
		bundle.SOAP = &note
	}
	if cfg.CheckFeature(types.DocumentsFeature) {
		docs := documents.GenerateAll(record, request.Patient, now)
		bundle.Documents = &docs
	}

	return bundle, nil
}

// MedicalScribe builds the deployable pipeline for one configuration.
func MedicalScribe(cfg types.Configuration) (Pipeline, error) {
	if cfg.Pipeline != types.MedicalScribePipeline {
		return nil, fmt.Errorf("unsupported pipeline type %q", cfg.Pipeline)
	}
	scribeLogger := logger.NewLogger("Medical Scribe pipeline")
	scribeLogger.Info().
		Interface("configuration", cfg).
		Msg("Starting medical scribe pipeline (see parameters in 'configuration' field)")

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		pplnLog := scribeLogger.With().Str("tid", request.Tid).Logger()

		go func() {
			defer close(responseChan)
			pplnLog.Info().Msg("Started medical scribe pipeline")

			bundle, err := Process(request, cfg, time.Now().UTC())
			if err != nil {
				pplnLog.Err(err).Msg("Pipeline rejected request")
				bundle = types.ResultBundle{Success: false, Error: err.Error()}
			}

			buf, err := json.Marshal(bundle)
			if err != nil {
				pplnLog.Err(err).Caller().Msg("Failed to marshal response")
				return
			}
			pplnLog.Info().Msg("Finished medical scribe pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}, nil
}
