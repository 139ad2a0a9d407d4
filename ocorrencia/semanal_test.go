package ocorrencia_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brigadapm/ocorrencias-api/models"
	"github.com/brigadapm/ocorrencias-api/ocorrencia"
)

func semanalReport(id int, fato string, dataHora time.Time) models.Report {
	return models.Report{
		ID:          id,
		Fato:        fato,
		Unidade:     models.UnidadeBPM41,
		Cidade:      "Gramado",
		DataHora:    dataHora,
		LocalRua:    "Rua Coberta",
		LocalNumero: "100",
		LocalBairro: "Centro",
		Envolvidos: []models.Envolvido{
			{
				Role:            "AUTOR",
				Nome:            "joao da silva",
				DocumentoTipo:   models.DocumentoCPF,
				DocumentoNumero: "123.456.789-01",
				DataNascimento:  "2000-01-10",
				Antecedentes:    models.NadaConsta,
				Orcrim:          models.NadaConsta,
			},
		},
		Oficial:   "Sgt Fulano",
		Resumo:    "veículo subtraído no estacionamento",
		Motivacao: models.MotivacaoDesconhecida,
	}
}

func TestSemanalGroupsWindowAndCategory(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	reports := []models.Report{
		semanalReport(1, "FURTO DE VEÍCULO", now.Add(-6*24*time.Hour)),
		semanalReport(2, "FURTO DE VEÍCULO", now.Add(-8*24*time.Hour)),
		semanalReport(3, "DESOBEDIÊNCIA", now.Add(-time.Hour)),
		semanalReport(4, "ROUBO A PEDESTRE", now.Add(time.Hour)),
	}

	groups := ocorrencia.SemanalGroups(reports, now)

	require.Len(t, groups, 1)
	assert.Equal(t, "FURTO DE VEÍCULO", groups[0].Fato)
	require.Len(t, groups[0].Reports, 1)
	assert.Equal(t, 1, groups[0].Reports[0].ID)
}

func TestSemanalGroupsFollowCategoryOrder(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	reports := []models.Report{
		semanalReport(1, "FURTO EM VEÍCULO", now.Add(-time.Hour)),
		semanalReport(2, "HOMICÍDIO DOLOSO", now.Add(-2*time.Hour)),
		semanalReport(3, "ROUBO DE VEÍCULO", now.Add(-3*time.Hour)),
	}

	groups := ocorrencia.SemanalGroups(reports, now)

	require.Len(t, groups, 3)
	assert.Equal(t, "HOMICÍDIO DOLOSO", groups[0].Fato)
	assert.Equal(t, "ROUBO DE VEÍCULO", groups[1].Fato)
	assert.Equal(t, "FURTO EM VEÍCULO", groups[2].Fato)
}

func TestSemanalHeader(t *testing.T) {
	one := ocorrencia.SemanalGroup{
		Fato:    "ROUBO A RESIDÊNCIA",
		Reports: []models.Report{{}},
	}
	assert.Equal(t, "ROUBO A RESIDÊNCIA - 1 REGISTRO NA SEMANA", ocorrencia.SemanalHeader(one))

	two := ocorrencia.SemanalGroup{
		Fato:    "ROUBO A RESIDÊNCIA",
		Reports: []models.Report{{}, {}},
	}
	assert.Equal(t, "ROUBO A RESIDÊNCIA - 2 REGISTROS NA SEMANA", ocorrencia.SemanalHeader(two))
}

func TestSemanalPlainText(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	r := semanalReport(1, "FURTO DE VEÍCULO", time.Date(2026, time.August, 27, 14, 30, 0, 0, time.UTC))

	got := ocorrencia.Semanal([]models.Report{r}, now)

	assert.Contains(t, got, "FURTO DE VEÍCULO - 1 REGISTRO NA SEMANA\n")
	assert.Contains(t, got, "HORA | TURNO | DATA | ENDEREÇO | BAIRRO / CIDADE | HISTÓRICO\n")
	assert.Contains(t, got, "14:30 | 3º TURNO | 27/08/2026 | Rua Coberta, 100 | CENTRO / GRAMADO | Veículo subtraído no estacionamento\n")
	assert.Contains(t, got, "Autor: Joao Da Silva, CPF: 123.456.789-01, 26 anos\n")
	assert.Contains(t, got, "Antecedentes: nada consta\n")
}

func TestSemanalDocument(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	r := semanalReport(1, "FURTO DE VEÍCULO", time.Date(2026, time.August, 27, 14, 30, 0, 0, time.UTC))

	blocks := ocorrencia.SemanalDocument([]models.Report{r}, now)

	require.Len(t, blocks, 2)

	require.NotNil(t, blocks[0].Paragraph)
	header := blocks[0].Paragraph
	require.Len(t, header.Runs, 1)
	assert.Equal(t, "FURTO DE VEÍCULO - 1 REGISTRO NA SEMANA", header.Runs[0].Text)
	assert.True(t, header.Runs[0].Bold)

	require.NotNil(t, blocks[1].Table)
	table := blocks[1].Table
	require.Len(t, table.Rows, 2)

	expectedWidths := []int{800, 1000, 1200, 2500, 2500, 4500}
	require.Len(t, table.Rows[0].Cells, 6)
	for i, cell := range table.Rows[0].Cells {
		assert.Equal(t, expectedWidths[i], cell.WidthTwips)
		assert.True(t, cell.Paragraphs[0].Runs[0].Bold)
	}

	row := table.Rows[1]
	require.Len(t, row.Cells, 6)
	assert.Equal(t, "14:30", row.Cells[0].Paragraphs[0].Runs[0].Text)
	assert.Equal(t, "3º TURNO", row.Cells[1].Paragraphs[0].Runs[0].Text)
	assert.Equal(t, "27/08/2026", row.Cells[2].Paragraphs[0].Runs[0].Text)
	assert.Equal(t, "Rua Coberta, 100", row.Cells[3].Paragraphs[0].Runs[0].Text)
	assert.Equal(t, "CENTRO / GRAMADO", row.Cells[4].Paragraphs[0].Runs[0].Text)

	historico := row.Cells[5]
	require.Len(t, historico.Paragraphs, 3)
	assert.Equal(t, "Veículo subtraído no estacionamento", historico.Paragraphs[0].Runs[0].Text)

	person := historico.Paragraphs[1]
	require.Len(t, person.Runs, 5)
	assert.Equal(t, "Autor: ", person.Runs[0].Text)
	assert.True(t, person.Runs[0].Bold)
	assert.Equal(t, "Joao Da Silva, ", person.Runs[1].Text)
	assert.Equal(t, "CPF: ", person.Runs[2].Text)
	assert.True(t, person.Runs[2].Bold)
	assert.Equal(t, "26 anos", person.Runs[4].Text)

	antecedentes := historico.Paragraphs[2]
	require.Len(t, antecedentes.Runs, 2)
	assert.Equal(t, "Antecedentes: ", antecedentes.Runs[0].Text)
	assert.True(t, antecedentes.Runs[0].Bold)
	assert.Equal(t, "nada consta", antecedentes.Runs[1].Text)
}
