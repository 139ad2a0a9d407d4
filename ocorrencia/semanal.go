package ocorrencia

import (
	"fmt"
	"strings"
	"time"

	"github.com/brigadapm/ocorrencias-api/models"
)

// Nominal column widths of the weekly table, in twips, carried into the
// exported document: HORA, TURNO, DATA, ENDEREÇO, BAIRRO / CIDADE,
// HISTÓRICO.
var semanalWidths = []int{800, 1000, 1200, 2500, 2500, 4500}

var semanalHeaders = []string{"HORA", "TURNO", "DATA", "ENDEREÇO", "BAIRRO / CIDADE", "HISTÓRICO"}

// SemanalGroup is one reportable category with its reports from the
// trailing seven days, in original order.
type SemanalGroup struct {
	Fato    string
	Reports []models.Report
}

// SemanalGroups filters the collection to the reportable categories
// within [now-7d, now] and groups it by category, iterating WeeklyFacts
// order. Categories without matches are omitted entirely.
func SemanalGroups(reports []models.Report, now time.Time) []SemanalGroup {
	start := now.Add(-7 * 24 * time.Hour)

	filtered := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if IsWeeklyFact(r.Fato) && !r.DataHora.Before(start) && !r.DataHora.After(now) {
			filtered = append(filtered, r)
		}
	}

	groups := make([]SemanalGroup, 0, len(WeeklyFacts))
	for _, fato := range WeeklyFacts {
		var g SemanalGroup
		g.Fato = fato
		for _, r := range filtered {
			if r.Fato == fato {
				g.Reports = append(g.Reports, r)
			}
		}
		if len(g.Reports) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// SemanalHeader renders the category header with a grammatically
// correct record count.
func SemanalHeader(g SemanalGroup) string {
	word := "REGISTROS"
	if len(g.Reports) == 1 {
		word = "REGISTRO"
	}
	return fmt.Sprintf("%s - %d %s NA SEMANA", g.Fato, len(g.Reports), word)
}

// Semanal renders the weekly summary as plain text: a header per
// category followed by one row per report with the fixed column order.
func Semanal(reports []models.Report, now time.Time) string {
	groups := SemanalGroups(reports, now)
	var b strings.Builder
	for gi, g := range groups {
		b.WriteString(SemanalHeader(g) + "\n")
		b.WriteString(strings.Join(semanalHeaders, " | ") + "\n")
		for _, r := range g.Reports {
			b.WriteString(strings.Join([]string{
				r.DataHora.Format("15:04"),
				Turno(r.DataHora),
				r.DataHora.Format("02/01/2006"),
				fmt.Sprintf("%s, %s", r.LocalRua, r.LocalNumero),
				fmt.Sprintf("%s / %s", strings.ToUpper(r.LocalBairro), strings.ToUpper(r.Cidade)),
				CapitalizeSentences(strings.ToLower(r.Resumo)),
			}, " | ") + "\n")
			for _, p := range r.Envolvidos {
				b.WriteString(fmt.Sprintf("%s: %s, %s: %s, %s anos\n",
					RoleTitle(p.Role),
					TitleCaseName(p.Nome),
					strings.ToUpper(p.DocumentoTipo),
					p.DocumentoNumero,
					AgeLabel(p.DataNascimento, now)))
				b.WriteString(fmt.Sprintf("Antecedentes: %s\n", strings.ToLower(p.Antecedentes)))
			}
		}
		if gi < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SemanalDocument renders the weekly summary as document blocks: per
// category a bold header paragraph and a six-column table whose
// HISTÓRICO cell nests the narrative and one sub-block per envolvido.
func SemanalDocument(reports []models.Report, now time.Time) []models.Block {
	groups := SemanalGroups(reports, now)
	blocks := make([]models.Block, 0, 2*len(groups))

	for _, g := range groups {
		header := models.Paragraph{Runs: []models.TextRun{{Text: SemanalHeader(g), Bold: true}}}
		blocks = append(blocks, models.Block{Paragraph: &header})

		table := models.DocTable{Rows: []models.TableRow{semanalHeaderRow()}}
		for _, r := range g.Reports {
			table.Rows = append(table.Rows, semanalRow(r, now))
		}
		t := table
		blocks = append(blocks, models.Block{Table: &t})
	}
	return blocks
}

func semanalHeaderRow() models.TableRow {
	cells := make([]models.TableCell, 0, len(semanalHeaders))
	for i, h := range semanalHeaders {
		cells = append(cells, models.TableCell{
			WidthTwips: semanalWidths[i],
			Paragraphs: []models.Paragraph{{Runs: []models.TextRun{{Text: h, Bold: true}}}},
		})
	}
	return models.TableRow{Cells: cells}
}

func semanalRow(r models.Report, now time.Time) models.TableRow {
	plain := []string{
		r.DataHora.Format("15:04"),
		Turno(r.DataHora),
		r.DataHora.Format("02/01/2006"),
		fmt.Sprintf("%s, %s", r.LocalRua, r.LocalNumero),
		fmt.Sprintf("%s / %s", strings.ToUpper(r.LocalBairro), strings.ToUpper(r.Cidade)),
	}

	cells := make([]models.TableCell, 0, 6)
	for i, text := range plain {
		cells = append(cells, models.TableCell{
			WidthTwips: semanalWidths[i],
			Paragraphs: []models.Paragraph{{Runs: []models.TextRun{{Text: text}}}},
		})
	}

	historico := models.TableCell{
		WidthTwips: semanalWidths[5],
		Paragraphs: []models.Paragraph{
			{Runs: []models.TextRun{{Text: CapitalizeSentences(strings.ToLower(r.Resumo))}}},
		},
	}
	for _, p := range r.Envolvidos {
		historico.Paragraphs = append(historico.Paragraphs, models.Paragraph{
			Runs: []models.TextRun{
				{Text: RoleTitle(p.Role) + ": ", Bold: true},
				{Text: TitleCaseName(p.Nome) + ", "},
				{Text: strings.ToUpper(p.DocumentoTipo) + ": ", Bold: true},
				{Text: p.DocumentoNumero + ", "},
				{Text: AgeLabel(p.DataNascimento, now) + " anos"},
			},
		}, models.Paragraph{
			Runs: []models.TextRun{
				{Text: "Antecedentes: ", Bold: true},
				{Text: strings.ToLower(p.Antecedentes)},
			},
		})
	}
	cells = append(cells, historico)

	return models.TableRow{Cells: cells}
}
