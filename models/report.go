package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unidades policiais reconhecidas pelo sistema.
const (
	UnidadeBPM41  = "41º BPM"
	UnidadeCiaInd = "2ª Cia Ind"
)

// Tipos de documento aceitos para um envolvido.
const (
	DocumentoRG  = "RG"
	DocumentoCPF = "CPF"
)

// Sentinel defaults applied when the operator leaves a field empty.
const (
	NadaConsta            = "Nada consta"
	MotivacaoDesconhecida = "Desconhecida"
)

// Report holds the structure for the reports collection in mongo.
// IDs are sequential integers assigned from the counters collection
// on creation and never change afterwards.
type Report struct {
	ID               int                `json:"id" bson:"_id"`
	Fato             string             `json:"fato" bson:"fato"`
	FatoComplementar *string            `json:"fatoComplementar" bson:"fatoComplementar,omitempty"`
	Unidade          string             `json:"unidade" bson:"unidade"`
	Cidade           string             `json:"cidade" bson:"cidade"`
	DataHora         time.Time          `json:"dataHora" bson:"dataHora"`
	LocalRua         string             `json:"localRua" bson:"localRua"`
	LocalNumero      string             `json:"localNumero" bson:"localNumero"`
	LocalBairro      string             `json:"localBairro" bson:"localBairro"`
	Envolvidos       []Envolvido        `json:"envolvidos" bson:"envolvidos"`
	Oficial          string             `json:"oficial" bson:"oficial"`
	Material         []string           `json:"material" bson:"material"`
	Resumo           string             `json:"resumo" bson:"resumo"`
	Motivacao        string             `json:"motivacao" bson:"motivacao"`
	CreatedAt        primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// Envolvido is a person referenced within a report. Envolvidos have no
// independent lifecycle; they are replaced wholesale whenever the owning
// report is updated.
type Envolvido struct {
	Role            string `json:"role" bson:"role" validate:"required,oneof=VÍTIMA AUTOR TESTEMUNHA PRESO 'MENOR APREENDIDO' CONDUTOR ATENDIDO SUSPEITO"`
	Nome            string `json:"nome" bson:"nome" validate:"required"`
	DocumentoTipo   string `json:"documentoTipo" bson:"documentoTipo" validate:"required,oneof=RG CPF"`
	DocumentoNumero string `json:"documentoNumero" bson:"documentoNumero"`
	DataNascimento  string `json:"dataNascimento" bson:"dataNascimento"`
	Antecedentes    string `json:"antecedentes" bson:"antecedentes"`
	Orcrim          string `json:"orcrim" bson:"orcrim"`
}

// ReportInput is the create/update payload for a report. Update is a
// full replacement of every field under the same id.
type ReportInput struct {
	Fato             string      `json:"fato" validate:"required"`
	FatoComplementar *string     `json:"fatoComplementar"`
	Unidade          string      `json:"unidade" validate:"required,oneof='41º BPM' '2ª Cia Ind'"`
	Cidade           string      `json:"cidade" validate:"required"`
	DataHora         time.Time   `json:"dataHora" validate:"required"`
	LocalRua         string      `json:"localRua" validate:"required"`
	LocalNumero      string      `json:"localNumero" validate:"required"`
	LocalBairro      string      `json:"localBairro" validate:"required"`
	Envolvidos       []Envolvido `json:"envolvidos" validate:"dive"`
	Oficial          string      `json:"oficial" validate:"required"`
	Material         []string    `json:"material"`
	Resumo           string      `json:"resumo" validate:"required"`
	Motivacao        string      `json:"motivacao"`
}

// EmptyReportInput is the single source for the report default state.
// Every reset path must start from this value so the default invariants
// live in one place.
func EmptyReportInput() ReportInput {
	return ReportInput{
		Envolvidos: []Envolvido{},
		Material:   []string{},
	}
}

// Normalize applies the sentinel defaults the formatters rely on:
// empty motivation becomes the "Desconhecida" sentinel and empty
// antecedentes/orcrim on each envolvido become "Nada consta". Nil
// slices are replaced with empty ones so the JSON always carries
// arrays.
func (in *ReportInput) Normalize() {
	if in.Motivacao == "" {
		in.Motivacao = MotivacaoDesconhecida
	}
	if in.Envolvidos == nil {
		in.Envolvidos = []Envolvido{}
	}
	if in.Material == nil {
		in.Material = []string{}
	}
	for i := range in.Envolvidos {
		if in.Envolvidos[i].Antecedentes == "" {
			in.Envolvidos[i].Antecedentes = NadaConsta
		}
		if in.Envolvidos[i].Orcrim == "" {
			in.Envolvidos[i].Orcrim = NadaConsta
		}
	}
}

// Input projects the persisted report back onto the editable payload,
// used when re-rendering texts for a stored occurrence.
func (r Report) Input() ReportInput {
	return ReportInput{
		Fato:             r.Fato,
		FatoComplementar: r.FatoComplementar,
		Unidade:          r.Unidade,
		Cidade:           r.Cidade,
		DataHora:         r.DataHora,
		LocalRua:         r.LocalRua,
		LocalNumero:      r.LocalNumero,
		LocalBairro:      r.LocalBairro,
		Envolvidos:       r.Envolvidos,
		Oficial:          r.Oficial,
		Material:         r.Material,
		Resumo:           r.Resumo,
		Motivacao:        r.Motivacao,
	}
}

// ToReport materializes the input into a persisted report with the
// given id and creation time.
func (in ReportInput) ToReport(id int, createdAt time.Time) Report {
	return Report{
		ID:              id,
		Fato:            in.Fato,
		FatoComplementar: in.FatoComplementar,
		Unidade:         in.Unidade,
		Cidade:          in.Cidade,
		DataHora:        in.DataHora,
		LocalRua:        in.LocalRua,
		LocalNumero:     in.LocalNumero,
		LocalBairro:     in.LocalBairro,
		Envolvidos:      in.Envolvidos,
		Oficial:         in.Oficial,
		Material:        in.Material,
		Resumo:          in.Resumo,
		Motivacao:       in.Motivacao,
		CreatedAt:       primitive.NewDateTimeFromTime(createdAt),
	}
}
