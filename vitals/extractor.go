// Package vitals extracts physiological measurements from raw transcript
// text. Extraction is purely syntactic: the first match of the first pattern
// alternative wins and no range validation is applied.
package vitals

import (
	"regexp"
	"strconv"
	"strings"

	"medscribe.com/scribe/types"
)

var (
	// "PA 120x80", "pressão arterial: 120/80"
	bloodPressurePattern = regexp.MustCompile(`(?i)(?:pa|pressão\s*arterial)[:\s]+?(\d{2,3})\s*[x/]\s*(\d{2,3})`)
	// "pressão 12 por 8"
	bloodPressureAltPattern = regexp.MustCompile(`(?i)pressão\s+(\d{2,3})\s*(?:por|x|/)\s*(\d{2,3})`)
	// "FC 88", "frequência cardíaca 88", "pulso 88bpm"
	heartRatePattern = regexp.MustCompile(`(?i)(?:fc|frequência\s*cardíaca|pulso)[:\s]+?(\d{2,3})\s*(?:bpm)?`)
	// "temperatura 37.5", "temp 38", "Tax 38,2°C"
	temperaturePattern = regexp.MustCompile(`(?i)(?:temperatura|temp|tax)[:\s]+?(\d{2}[.,]?\d?)\s*°?\s*c?`)
	// "sat 96", "spo2 98%", "saturação 94"
	saturationPattern = regexp.MustCompile(`(?i)(?:sat(?:ura[çc][aã]o)?|spo2|sato2)[:\s]+?(\d{2,3})\s*%?`)
	// "FR 18", "frequência respiratória 20irpm"
	respiratoryPattern = regexp.MustCompile(`(?i)(?:fr|frequência\s*respiratória)[:\s]+?(\d{1,2})\s*(?:irpm|rpm)?`)
)

// Extract scans text for the five vitals. Each field is populated
// independently; a vital mentioned twice keeps only its first occurrence in
// text order.
func Extract(text string) types.VitalSigns {
	var signs types.VitalSigns

	m := bloodPressurePattern.FindStringSubmatch(text)
	if m == nil {
		m = bloodPressureAltPattern.FindStringSubmatch(text)
	}
	if m != nil {
		signs.BloodPressure = &types.BloodPressure{
			Systolic:  mustAtoi(m[1]),
			Diastolic: mustAtoi(m[2]),
			Raw:       strings.TrimSpace(m[0]),
		}
	}

	if m := heartRatePattern.FindStringSubmatch(text); m != nil {
		signs.HeartRate = &types.VitalValue{Value: mustAtoi(m[1]), Raw: strings.TrimSpace(m[0])}
	}

	if m := temperaturePattern.FindStringSubmatch(text); m != nil {
		value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err == nil {
			signs.Temperature = &types.Temperature{Value: value, Raw: strings.TrimSpace(m[0])}
		}
	}

	if m := saturationPattern.FindStringSubmatch(text); m != nil {
		signs.OxygenSaturation = &types.VitalValue{Value: mustAtoi(m[1]), Raw: strings.TrimSpace(m[0])}
	}

	if m := respiratoryPattern.FindStringSubmatch(text); m != nil {
		signs.RespiratoryRate = &types.VitalValue{Value: mustAtoi(m[1]), Raw: strings.TrimSpace(m[0])}
	}

	return signs
}

// mustAtoi is safe here: every argument comes from a \d{1,3} capture group.
func mustAtoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return v
}
