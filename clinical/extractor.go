// Package clinical turns raw transcript text into a structured clinical
// record using the lexicon tables and the vital sign extractor. All keyword
// tests are case-insensitive substring checks over the lowercased transcript
// with no word-boundary enforcement; the lexicon ordering is calibrated
// against exactly these semantics.
package clinical

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"medscribe.com/scribe/lexicon"
	"medscribe.com/scribe/types"
	"medscribe.com/scribe/vitals"
)

const (
	allergyWindowBefore = 5
	allergyWindowAfter  = 60
)

var allergenPattern = regexp.MustCompile(`(?i)(?:alergia|alérgic[oa]|alergias|intolerância)\s+(?:a\s+|ao?\s+)?([^,.\n]+)`)

// Extract produces the clinical record for a transcript.
func Extract(text string) types.ClinicalRecord {
	lower := strings.ToLower(text)

	return types.ClinicalRecord{
		Diagnosis:     resolveDiagnosis(lower),
		VitalSigns:    vitals.Extract(text),
		Medications:   resolveMedications(lower),
		Allergies:     resolveAllergies(lower),
		Comorbidities: resolveComorbidities(lower),
		Severity:      resolveSeverity(lower),
	}
}

// resolveDiagnosis walks the diagnosis table in its declared priority order
// and returns the first entry whose keyword occurs in the text. Single
// winner; later entries are shadowed by design.
func resolveDiagnosis(lower string) types.DiagnosisCode {
	for _, entry := range lexicon.DiagnosisEntries {
		if strings.Contains(lower, entry.Keyword) {
			return types.DiagnosisCode{Code: entry.Code, Description: entry.Description}
		}
	}
	return lexicon.DefaultDiagnosis
}

// resolveMedications always returns a non-nil slice: the empty list is part
// of the output contract and marshals as [].
func resolveMedications(lower string) []string {
	medications := []string{}
	for _, med := range lexicon.Medications {
		if strings.Contains(lower, med) {
			medications = append(medications, capitalize(med))
		}
	}
	return medications
}

// resolveAllergies captures the allergen phrase near each trigger word:
// a bounded window around the trigger's first occurrence is matched against
// the "alérgico a X" phrasing and the captured phrase is uppercased. The
// window is 5 characters before to 60 characters after the trigger, so it is
// sliced on rune offsets; accented text must not shrink it or split a rune.
// When nothing matches the record carries the explicit NKDA sentinel instead
// of an empty list.
func resolveAllergies(lower string) []string {
	var allergies []string
	runes := []rune(lower)
	for _, trigger := range lexicon.AllergyTriggers {
		byteIdx := strings.Index(lower, trigger)
		if byteIdx == -1 {
			continue
		}
		idx := utf8.RuneCountInString(lower[:byteIdx])
		start := idx - allergyWindowBefore
		if start < 0 {
			start = 0
		}
		end := idx + allergyWindowAfter
		if end > len(runes) {
			end = len(runes)
		}
		if m := allergenPattern.FindStringSubmatch(string(runes[start:end])); m != nil {
			allergies = append(allergies, strings.ToUpper(strings.TrimSpace(m[1])))
		}
	}
	if len(allergies) == 0 {
		allergies = append(allergies, lexicon.NoKnownAllergies)
	}
	return allergies
}

func resolveComorbidities(lower string) []string {
	comorbidities := []string{}
	for _, comorb := range lexicon.Comorbidities {
		if strings.Contains(lower, comorb) {
			comorbidities = append(comorbidities, capitalize(comorb))
		}
	}
	return comorbidities
}

// resolveSeverity is a strict two-tier override: any severe keyword outranks
// any number of moderate keywords.
func resolveSeverity(lower string) types.Severity {
	for _, keyword := range lexicon.SevereKeywords {
		if strings.Contains(lower, keyword) {
			return types.SeveritySevere
		}
	}
	for _, keyword := range lexicon.ModerateKeywords {
		if strings.Contains(lower, keyword) {
			return types.SeverityModerate
		}
	}
	return types.SeverityMild
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
