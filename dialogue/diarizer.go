// Package dialogue reconstructs a speaker-attributed dialogue from a flat
// transcript. Attribution is heuristic: each utterance is scored against a
// doctor-leaning and a patient-leaning pattern family and the higher count
// wins.
package dialogue

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"medscribe.com/scribe/types"
)

const minUtteranceLen = 6

// tieBreakLen: on equal scores (zero-zero included) utterances longer than
// this default to the patient, shorter or equal to the doctor. The asymmetry
// matches observed consultation speech and is intentional; keep it.
const tieBreakLen = 60

var splitPattern = regexp.MustCompile(`[.\n]+`)

var doctorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(doutor|dra?\.?|médico)`),
	regexp.MustCompile(`(?i)vamos (examinar|verificar|avaliar|prescrever)`),
	regexp.MustCompile(`(?i)minha (hipótese|avaliação|conduta)`),
	regexp.MustCompile(`(?i)(prescrevo|solicito|recomendo|indico|oriento)`),
	regexp.MustCompile(`(?i)(exame físico|ausculta|palpação|inspeção)`),
	regexp.MustCompile(`(?i)(pa |fc |fr |spo2|sat |temperatura|sinais vitais)`),
	regexp.MustCompile(`(?i)(diagnóstico|prognóstico|conduta|plano)`),
	regexp.MustCompile(`(?i)^(vou |preciso |solicitar|pedir)`),
}

var patientPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(paciente|pac\.?)`),
	regexp.MustCompile(`(?i)(estou sentindo|sinto|tenho sentido|comecei)`),
	regexp.MustCompile(`(?i)(dói|doendo|doer|incômodo)`),
	regexp.MustCompile(`(?i)(faz .+ dias|há .+ dias|desde)`),
	regexp.MustCompile(`(?i)(meu|minha) (dor|febre|tosse|mal[\s-]?estar)`),
	regexp.MustCompile(`(?i)(tomo|uso|tomando|usando) .+(mg|ml|comprimido)`),
	regexp.MustCompile(`(?i)(me sinto|sinto[\s-]?me|estou)`),
	regexp.MustCompile(`(?i)(queixa|queixo|reclamo)`),
}

// Diarize splits rawText on sentence-terminal punctuation and newlines,
// drops fragments shorter than six characters after trimming, and assigns
// each remaining utterance a speaker. Single pass, input order preserved.
func Diarize(rawText string) []types.Utterance {
	var dialog []types.Utterance

	for _, fragment := range splitPattern.Split(rawText, -1) {
		line := strings.TrimSpace(fragment)
		if utf8.RuneCountInString(line) < minUtteranceLen {
			continue
		}
		dialog = append(dialog, types.Utterance{
			Speaker: classify(line),
			Text:    line,
		})
	}

	return dialog
}

func classify(line string) types.Speaker {
	docScore := score(doctorPatterns, line)
	patScore := score(patientPatterns, line)

	switch {
	case docScore > patScore:
		return types.SpeakerDoctor
	case patScore > docScore:
		return types.SpeakerPatient
	case utf8.RuneCountInString(line) > tieBreakLen:
		return types.SpeakerPatient
	default:
		return types.SpeakerDoctor
	}
}

func score(patterns []*regexp.Regexp, line string) int {
	count := 0
	for _, p := range patterns {
		if p.MatchString(line) {
			count++
		}
	}
	return count
}
