package ocorrencia

import (
	"strings"

	"github.com/brigadapm/ocorrencias-api/models"
)

// Cartoriais renders one fixed-layout identity table per envolvido of
// the report, in entry order, separated by empty spacer paragraphs.
// Cell layout, spans and widths map 1:1 onto the table the document
// encoder produces; several fields are intentionally blank because the
// form does not collect them (alias, status, parentage, address).
func Cartoriais(report models.Report) []models.Block {
	blocks := make([]models.Block, 0, 2*len(report.Envolvidos))
	for _, p := range report.Envolvidos {
		t := cartorialTable(p)
		blocks = append(blocks, models.Block{Table: &t})
		spacer := models.Paragraph{Runs: []models.TextRun{{Text: ""}}}
		blocks = append(blocks, models.Block{Paragraph: &spacer})
	}
	return blocks
}

func cartorialTable(p models.Envolvido) models.DocTable {
	rg := ""
	cpf := ""
	if p.DocumentoTipo == models.DocumentoRG {
		rg = p.DocumentoNumero
	}
	if p.DocumentoTipo == models.DocumentoCPF {
		cpf = p.DocumentoNumero
	}

	return models.DocTable{Rows: []models.TableRow{
		{Cells: []models.TableCell{
			photoCell(),
			labelledCell("NOME: ", strings.ToUpper(p.Nome), 50),
			labelledCell("RG: ", strings.ToUpper(rg), 25),
		}},
		{Cells: []models.TableCell{
			labelledCell("ALCUNHA: ", "", 0),
			labelledCell("CPF: ", strings.ToUpper(cpf), 0),
		}},
		{Cells: []models.TableCell{
			labelledCell("ORCRIM: ", strings.ToUpper(p.Orcrim), 0),
			labelledCell("DN: ", strings.ToUpper(p.DataNascimento), 0),
		}},
		{Cells: []models.TableCell{
			labelledCell("SITUAÇÃO: ", "", 0),
			labelledCell("CD: ", "", 0),
		}},
		{Cells: []models.TableCell{
			spanCell("FILIAÇÃO: ", "", 2),
		}},
		{Cells: []models.TableCell{
			spanCell("END.: ", "", 3),
		}},
		{Cells: []models.TableCell{
			spanCell("OC.: ", strings.ToUpper(p.Antecedentes), 3),
		}},
		{Cells: []models.TableCell{
			spanCell("OBS.: ", "", 3),
		}},
	}}
}

// photoCell spans the first five rows and holds the photo placeholder.
func photoCell() models.TableCell {
	return models.TableCell{
		RowSpan:  5,
		WidthPct: 25,
		Paragraphs: []models.Paragraph{
			{Runs: []models.TextRun{{Text: "ESPAÇO PARA INSERIR FOTO", Italic: true}}},
		},
	}
}

func labelledCell(label, value string, widthPct int) models.TableCell {
	runs := []models.TextRun{{Text: label, Bold: true}}
	if value != "" {
		runs = append(runs, models.TextRun{Text: value, Italic: true})
	}
	return models.TableCell{
		WidthPct:   widthPct,
		Paragraphs: []models.Paragraph{{Runs: runs}},
	}
}

func spanCell(label, value string, colSpan int) models.TableCell {
	c := labelledCell(label, value, 0)
	c.ColSpan = colSpan
	return c
}
