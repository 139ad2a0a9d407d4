package ocorrencia

import "time"

// Static reference tables. The digest and weekly outputs embed these
// values verbatim; changing a single character breaks compatibility
// with the documents already in circulation.

// CidadesByUnidade maps each police unit to the cities it answers for.
var CidadesByUnidade = map[string][]string{
	"41º BPM": {
		"Gramado",
		"Canela",
		"São Francisco de Paula",
		"Nova Petrópolis",
		"Picada Café",
		"Cambará do Sul",
	},
	"2ª Cia Ind": {
		"Taquara",
		"Rolante",
		"Riozinho",
		"Igrejinha",
		"Três Coroas",
	},
}

// CityUnitOrder fixes the section order of the RPI digest. Every label
// is emitted on every digest, with an "SN." sentinel when the bucket is
// empty.
var CityUnitOrder = []string{
	"1ª CIA - GRAMADO",
	"3º PEL - NOVA PETRÓPOLIS",
	"4º GPM - PICADA CAFÉ",
	"2ª CIA – CANELA",
	"3º PEL - SÃO FRANCISCO DE PAULA",
	"4º GPM - CAMBARÁ DO SUL",
	"2ª CIA IND PM TAQUARA",
	"3º PEL – ROLANTE",
	"4º GPM - RIOZINHO",
	"4º PEL – IGREJINHA",
	"5º PEL - TRÊS COROAS",
}

// CityMapping buckets a report's city into its digest section label.
// A city missing here is dropped from the digest entirely.
var CityMapping = map[string]string{
	"Gramado":                "1ª CIA - GRAMADO",
	"Nova Petrópolis":        "3º PEL - NOVA PETRÓPOLIS",
	"Picada Café":            "4º GPM - PICADA CAFÉ",
	"Canela":                 "2ª CIA – CANELA",
	"São Francisco de Paula": "3º PEL - SÃO FRANCISCO DE PAULA",
	"Cambará do Sul":         "4º GPM - CAMBARÁ DO SUL",
	"Taquara":                "2ª CIA IND PM TAQUARA",
	"Rolante":                "3º PEL – ROLANTE",
	"Riozinho":               "4º GPM - RIOZINHO",
	"Igrejinha":              "4º PEL – IGREJINHA",
	"Três Coroas":            "5º PEL - TRÊS COROAS",
}

// WeeklyFacts is the reportable-category list. Membership drives both
// the weekly summary and the retention exemption: anything else is
// purged once older than 24 hours.
var WeeklyFacts = []string{
	"HOMICÍDIO DOLOSO",
	"ROUBO A PEDESTRE",
	"ROUBO DE VEÍCULO",
	"ROUBO A ESTABELECIMENTO COMERCIAL E DE ENSINO",
	"ROUBO A RESIDÊNCIA",
	"FURTO DE VEÍCULO",
	"FURTO EM VEÍCULO",
	"HOMICÍDIO CULPOSO EM DIREÇÃO DE VEÍCULO AUTOMOTOR",
}

// Roles an envolvido may be registered under, in form order.
var Roles = []string{
	"VÍTIMA",
	"AUTOR",
	"TESTEMUNHA",
	"PRESO",
	"MENOR APREENDIDO",
	"CONDUTOR",
	"ATENDIDO",
	"SUSPEITO",
}

// monthAbbr and monthNumber carry the pt-BR month abbreviations used by
// the military date token, uppercased with trailing periods stripped.
var monthAbbr = [13]string{
	"", "JAN", "FEV", "MAR", "ABR", "MAI", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

var monthNumber = map[string]time.Month{
	"JAN": time.January,
	"FEV": time.February,
	"MAR": time.March,
	"ABR": time.April,
	"MAI": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AGO": time.August,
	"SET": time.September,
	"OUT": time.October,
	"NOV": time.November,
	"DEZ": time.December,
}

// IsWeeklyFact reports whether fato belongs to the reportable-category
// list.
func IsWeeklyFact(fato string) bool {
	for _, f := range WeeklyFacts {
		if f == fato {
			return true
		}
	}
	return false
}

// CidadePertenceUnidade reports whether cidade is one of the cities
// mapped to unidade.
func CidadePertenceUnidade(unidade, cidade string) bool {
	for _, c := range CidadesByUnidade[unidade] {
		if c == cidade {
			return true
		}
	}
	return false
}
