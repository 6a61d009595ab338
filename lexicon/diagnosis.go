// Package lexicon holds the static classification tables. Everything here is
// loaded once as package state and is read-only afterwards, so concurrent
// pipeline invocations share it without locking.
package lexicon

import (
	"medscribe.com/scribe/types"
)

type DiagnosisEntry struct {
	Keyword     string
	Code        string
	Description string
}

// DefaultDiagnosis is returned when no keyword matches.
var DefaultDiagnosis = types.DiagnosisCode{Code: "R69", Description: "Causa de morbidade desconhecida"}

// DiagnosisEntries is evaluated top to bottom and the first keyword found as
// a substring of the lowercased transcript wins. Matching is substring based
// with no word boundaries, so the declared order IS the tie-break: specific
// phrases must come before the shorter phrases they contain ("avc isquêmico"
// before "avc", "choque séptico" before "choque"). Do not re-sort.
var DiagnosisEntries = []DiagnosisEntry{
	// emergência: sepse
	{"sepse grave", "A41.9", "Sepse grave"},
	{"choque séptico", "R65.1", "Choque séptico"},
	{"sirs", "R65.1", "Síndrome da resposta inflamatória sistêmica"},
	{"bacteremia", "A49.9", "Bacteremia"},
	{"sepse", "A41", "Septicemia"},

	// emergência: IAM / SCA
	{"iamcsst", "I21.0", "IAM com supra de ST (IAMCSST)"},
	{"iamssst", "I21.4", "IAM sem supra de ST (IAMSSST)"},
	{"síndrome coronariana aguda", "I24.9", "Síndrome coronariana aguda"},
	{"síndrome coronariana", "I24.9", "Síndrome coronariana aguda"},
	{"angina instável", "I20.0", "Angina instável"},
	{"iam", "I21", "Infarto agudo do miocárdio"},
	{"infarto", "I21", "Infarto agudo do miocárdio"},

	// emergência: AVC
	{"avc isquêmico", "I63", "AVC isquêmico"},
	{"avc hemorrágico", "I61", "AVC hemorrágico"},
	{"ataque isquêmico transitório", "G45", "Ataque isquêmico transitório (AIT)"},
	{"ait", "G45", "Ataque isquêmico transitório (AIT)"},
	{"avc", "I64", "Acidente vascular cerebral"},
	{"derrame", "I64", "Acidente vascular cerebral"},

	// emergência: choque
	{"choque hipovolêmico", "R57.1", "Choque hipovolêmico"},
	{"choque cardiogênico", "R57.0", "Choque cardiogênico"},
	{"choque anafilático", "T78.2", "Choque anafilático"},
	{"choque distributivo", "R57.8", "Choque distributivo"},

	// terapia intensiva
	{"sdra", "J80", "Síndrome do desconforto respiratório agudo"},
	{"insuficiência respiratória aguda", "J96.0", "Insuficiência respiratória aguda"},
	{"insuficiência respiratória", "J96", "Insuficiência respiratória"},
	{"parada cardiorrespiratória", "I46", "Parada cardiorrespiratória"},
	{"pcr", "I46", "Parada cardiorrespiratória"},
	{"ventilação mecânica", "Z99.1", "Dependência de ventilação mecânica"},
	{"rabdomiólise", "M62.8", "Rabdomiólise"},
	{"civd", "D65", "Coagulação intravascular disseminada"},
	{"politrauma", "T07", "Politraumatismo"},
	{"edema cerebral", "G93.6", "Edema cerebral"},
	{"status epilepticus", "G41", "Estado de mal epiléptico"},
	{"cetoacidose diabética", "E10.1", "Cetoacidose diabética"},
	{"crise hipertensiva", "I16", "Crise hipertensiva"},
	{"tamponamento cardíaco", "I31.4", "Tamponamento cardíaco"},
	{"tromboembolismo pulmonar", "I26", "Tromboembolismo pulmonar"},
	{"tep", "I26", "Tromboembolismo pulmonar"},

	// condições comuns
	{"hipertensão", "I10", "Hipertensão essencial (primária)"},
	{"pressão alta", "I10", "Hipertensão essencial (primária)"},
	{"diabetes tipo 2", "E11", "Diabetes mellitus tipo 2"},
	{"diabetes tipo 1", "E10", "Diabetes mellitus tipo 1"},
	{"diabetes", "E11", "Diabetes mellitus tipo 2"},
	{"asma", "J45", "Asma"},
	{"pneumonia", "J18", "Pneumonia"},
	{"covid", "U07.1", "COVID-19"},
	{"gripe", "J11", "Influenza"},
	{"infecção urinária", "N39.0", "Infecção do trato urinário"},
	{"itu", "N39.0", "Infecção do trato urinário"},
	{"cefaleia", "R51", "Cefaleia"},
	{"dor de cabeça", "R51", "Cefaleia"},
	{"enxaqueca", "G43", "Enxaqueca"},
	{"lombalgia", "M54.5", "Lombalgia"},
	{"dor lombar", "M54.5", "Lombalgia"},
	{"dor nas costas", "M54.5", "Lombalgia"},
	{"gastrite", "K29", "Gastrite"},
	{"dor abdominal", "R10", "Dor abdominal"},
	{"dor no peito", "R07", "Dor torácica"},
	{"dor torácica", "R07", "Dor torácica"},
	{"febre", "R50", "Febre de origem desconhecida"},
	{"tosse", "R05", "Tosse"},
	{"dispneia", "R06.0", "Dispneia"},
	{"falta de ar", "R06.0", "Dispneia"},
	{"ansiedade", "F41", "Transtornos ansiosos"},
	{"depressão", "F32", "Episódio depressivo"},
	{"insônia", "G47.0", "Insônia"},
	{"alergia", "T78.4", "Alergia não especificada"},
	{"rinite", "J30", "Rinite alérgica"},
	{"sinusite", "J32", "Sinusite crônica"},
	{"otite", "H66", "Otite média"},
	{"dor de ouvido", "H66", "Otite média"},
	{"faringite", "J02", "Faringite aguda"},
	{"dor de garganta", "J02", "Faringite aguda"},
	{"dengue", "A90", "Dengue"},
	{"diarreia", "A09", "Diarreia e gastroenterite"},
	{"vômito", "R11", "Náusea e vômitos"},
	{"fratura", "T14.2", "Fratura de região do corpo não especificada"},
	{"entorse", "T14.3", "Luxação, entorse de região não especificada"},
	{"icc", "I50", "Insuficiência cardíaca"},
	{"insuficiência cardíaca", "I50", "Insuficiência cardíaca"},
	{"dpoc", "J44", "Doença pulmonar obstrutiva crônica"},
	{"insuficiência renal", "N18", "Doença renal crônica"},
	{"irc", "N18", "Doença renal crônica"},
}
