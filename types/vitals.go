package types

type BloodPressure struct {
	Systolic  int    `json:"sistolica"`
	Diastolic int    `json:"diastolica"`
	Raw       string `json:"raw"`
}

type VitalValue struct {
	Value int    `json:"valor"`
	Raw   string `json:"raw"`
}

type Temperature struct {
	Value float64 `json:"valor"`
	Raw   string  `json:"raw"`
}

// VitalSigns holds the five extracted measurements. A nil field means the
// vital was not mentioned in the transcript, never that it was zero.
// JSON keys keep the original frontend contract (PA/FC/Temp/SatO2/FR).
type VitalSigns struct {
	BloodPressure    *BloodPressure `json:"pa"`
	HeartRate        *VitalValue    `json:"fc"`
	Temperature      *Temperature   `json:"temperatura"`
	OxygenSaturation *VitalValue    `json:"sato2"`
	RespiratoryRate  *VitalValue    `json:"fr"`
}
