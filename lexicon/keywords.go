package lexicon

// Medications is matched by lowercase substring against the transcript; a
// match is reported with the first letter capitalized. The list has no
// duplicate names.
var Medications = []string{
	"dipirona", "paracetamol", "ibuprofeno", "amoxicilina", "azitromicina",
	"losartana", "metformina", "omeprazol", "enalapril", "atenolol",
	"hidroclorotiazida", "sinvastatina", "captopril", "anlodipino",
	"fluoxetina", "sertralina", "clonazepam", "diazepam", "prednisona",
	"dexametasona", "cetoprofeno", "nimesulida", "ciprofloxacino",
	"cefalexina", "metronidazol", "ranitidina", "insulina", "aspirina",
	"clopidogrel", "enoxaparina", "furosemida", "espironolactona",
	"salbutamol", "budesonida", "loratadina", "prometazina",
}

// AllergyTriggers mark positions where an allergen phrase may follow.
var AllergyTriggers = []string{"alergia", "alérgico", "alérgica", "alergias", "intolerância"}

// NoKnownAllergies is the sentinel emitted when no trigger word is present;
// the allergy list of a clinical record is never empty.
const NoKnownAllergies = "NADA (NEGA ALERGIAS CONHECIDAS - NKDA)"

// Comorbidities is all-matches (unlike the diagnosis table); order only
// affects the order of the reported list.
var Comorbidities = []string{
	"hipertensão", "diabetes", "asma", "dpoc", "icc", "insuficiência renal",
	"insuficiência cardíaca", "hiv", "hepatite", "obesidade", "dislipidemia",
	"hipotireoidismo", "hipertireoidismo", "epilepsia", "arritmia",
}

// SevereKeywords outrank ModerateKeywords: a single severe hit anywhere in
// the transcript sets the tier to Grave no matter how many moderate hits
// there are.
var SevereKeywords = []string{
	"iam", "infarto", "avc", "derrame", "sepse", "pcr", "choque",
	"rebaixamento", "coma", "hemorragia", "politrauma", "sdra", "civd",
	"choque séptico", "choque cardiogênico", "tamponamento", "tep",
	"parada cardiorrespiratória", "status epilepticus", "cetoacidose",
}

var ModerateKeywords = []string{
	"febre alta", "dispneia", "falta de ar", "taquicardia",
	"hipotensão", "desidratação", "pneumonia", "fratura",
	"crise hipertensiva", "angina instável", "insuficiência respiratória",
	"rabdomiólise", "edema cerebral",
}
