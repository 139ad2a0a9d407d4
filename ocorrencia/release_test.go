package ocorrencia_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brigadapm/ocorrencias-api/models"
	"github.com/brigadapm/ocorrencias-api/ocorrencia"
)

func TestReleaseEmptyInput(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	got := ocorrencia.Release(models.EmptyReportInput(), false, now)

	expected := strings.Join([]string{
		"*FATO*",
		"[FATO]",
		"",
		"*CIDADE - CRPM HORTÊNSIAS / UNIDADE*",
		"[CIDADE] - CRPM HORTÊNSIAS / [UNIDADE]",
		"",
		"*DATA/HORA:*",
		"[DATA/HORA]",
		"",
		"*LOCAL:*",
		"[LOCAL]",
		"",
		"*ENVOLVIDOS:*",
		"[ENVOLVIDOS]",
		"",
		"*MOTIVAÇÃO:*",
		"[MOTIVAÇÃO]",
		"",
		"*MATERIAL APREENDIDO:*",
		"Sem apreensões",
		"",
		"*OFICIAL:*",
		"[OFICIAL]",
		"",
		"*RESUMO DO FATO:*",
		"[RESUMO]",
	}, "\n")

	assert.Equal(t, expected, got)
}

func TestReleasePreliminarMarkers(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	in := models.EmptyReportInput()

	preliminar := ocorrencia.Release(in, true, now)
	assert.True(t, strings.HasPrefix(preliminar, "*PRELIMINAR*\n\n"))
	assert.True(t, strings.HasSuffix(preliminar, "\n\n*OCORRÊNCIA EM ANDAMENTO*"))

	final := ocorrencia.Release(in, false, now)
	assert.NotContains(t, final, "*PRELIMINAR*")
	assert.NotContains(t, final, "*OCORRÊNCIA EM ANDAMENTO*")
}

func TestReleaseFilledInput(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	complementar := "tentativa"
	in := models.ReportInput{
		Fato:             "roubo de veículo",
		FatoComplementar: &complementar,
		Unidade:          models.UnidadeBPM41,
		Cidade:           "Gramado",
		DataHora:         time.Date(2026, time.August, 28, 22, 15, 0, 0, time.UTC),
		LocalRua:         "Rua Coberta",
		LocalNumero:      "100",
		LocalBairro:      "Centro",
		Envolvidos: []models.Envolvido{
			{
				Role:            "PRESO",
				Nome:            "joao da silva",
				DocumentoTipo:   models.DocumentoCPF,
				DocumentoNumero: "123.456.789-01",
				DataNascimento:  "2000-01-10",
				Antecedentes:    "Furto em 2020",
			},
		},
		Oficial:   "Sgt Fulano",
		Material:  []string{"1 Faca", "1 CELULAR"},
		Resumo:    "A GUARNIÇÃO FOI ACIONADA. nada mais havendo",
		Motivacao: "disputa de território",
	}

	got := ocorrencia.Release(in, false, now)

	assert.Contains(t, got, "*FATO*\nROUBO DE VEÍCULO\nTENTATIVA\n\n")
	assert.Contains(t, got, "Gramado - CRPM HORTÊNSIAS / 41º BPM")
	assert.Contains(t, got, "*DATA/HORA:*\n282215AGO26\n\n")
	assert.Contains(t, got, "na rua coberta, nº 100, bairro centro")
	assert.Contains(t, got, "Preso: JOAO DA SILVA\nCPF: 123.456.789-01\nIdade: 26 anos\n")
	assert.Contains(t, got, "Antecedentes: furto em 2020\n")
	assert.Contains(t, got, "Orcrim: nada consta\n")
	assert.Contains(t, got, "*MOTIVAÇÃO:*\nDisputa de território\n\n")
	assert.Contains(t, got, "*MATERIAL APREENDIDO:*\n- 1 faca\n- 1 celular\n")
	assert.Contains(t, got, "*OFICIAL:*\nSgt Fulano\n\n")
	assert.True(t, strings.HasSuffix(got, "*RESUMO DO FATO:*\nA guarnição foi acionada. Nada mais havendo"))
}
