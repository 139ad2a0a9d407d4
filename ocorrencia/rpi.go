package ocorrencia

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brigadapm/ocorrencias-api/models"
)

// Line-classification patterns for the styled RPI rendering. The same
// classification drives the on-screen bolding and the exported
// document, so the literal prefixes matter.
var (
	incidentTitleRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} às \d{2}h\d{2}min - .*`)
	roleLineRe      = regexp.MustCompile(`^(Vítima|Autor|Testemunha|Preso|Menor apreendido|Condutor|Atendido|Suspeito):`)
)

// RPI renders the 24-hour digest as plain text: one section per entry
// of CityUnitOrder, in that order, with "SN." for units without
// occurrences. Only reports whose dataHora falls inside the closed
// interval [now-24h, now] are considered; reports whose city has no
// digest mapping are dropped.
func RPI(reports []models.Report, now time.Time) string {
	start := now.Add(-24 * time.Hour)

	recent := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if !r.DataHora.Before(start) && !r.DataHora.After(now) {
			recent = append(recent, r)
		}
	}

	grouped := make(map[string][]models.Report, len(CityUnitOrder))
	for _, r := range recent {
		unit, ok := CityMapping[r.Cidade]
		if !ok {
			continue
		}
		grouped[unit] = append(grouped[unit], r)
	}

	var b strings.Builder
	for _, unit := range CityUnitOrder {
		b.WriteString(unit + "\n")
		inUnit := grouped[unit]

		if len(inUnit) == 0 {
			b.WriteString("SN.\n\n")
			continue
		}
		for i, r := range inUnit {
			writeRPIIncident(&b, r, now)
			if i < len(inUnit)-1 {
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func writeRPIIncident(b *strings.Builder, r models.Report, now time.Time) {
	fatoCompleto := strings.ToUpper(r.Fato)
	if r.FatoComplementar != nil && *r.FatoComplementar != "" {
		fatoCompleto += " / " + strings.ToUpper(*r.FatoComplementar)
	}

	b.WriteString(fmt.Sprintf("%s às %s - %s\n",
		r.DataHora.Format("02/01/2006"),
		r.DataHora.Format("15h04min"),
		fatoCompleto))
	b.WriteString(fmt.Sprintf("Na %s, nº %s, bairro %s, em %s, %s\n\n",
		strings.ToLower(r.LocalRua),
		strings.ToLower(r.LocalNumero),
		strings.ToLower(r.LocalBairro),
		r.Cidade,
		CapitalizeSentences(r.Resumo)))

	if len(r.Material) > 0 {
		b.WriteString("Material apreendido:\n")
		for _, m := range r.Material {
			b.WriteString(m + "\n")
		}
		b.WriteString("\n")
	}

	for _, p := range r.Envolvidos {
		b.WriteString(fmt.Sprintf("%s: %s; %s: %s ; %s anos\n",
			RoleTitle(p.Role),
			strings.ToLower(p.Nome),
			p.DocumentoTipo,
			p.DocumentoNumero,
			AgeLabel(p.DataNascimento, now)))
		b.WriteString(fmt.Sprintf("Antecedentes: %s\n", strings.ToLower(p.Antecedentes)))
		b.WriteString(fmt.Sprintf("Orcrim: %s\n\n", strings.ToLower(p.Orcrim)))
	}
}

// RPIStyled classifies every line of the plain digest into emphasized
// runs: section headers and incident-title lines are fully bold; role
// and field-label lines ("Antecedentes:", "Orcrim:", "Material
// apreendido:") are bold up to the colon.
func RPIStyled(reports []models.Report, now time.Time) []models.Paragraph {
	lines := strings.Split(RPI(reports, now), "\n")
	paragraphs := make([]models.Paragraph, 0, len(lines))
	for _, line := range lines {
		paragraphs = append(paragraphs, classifyRPILine(line))
	}
	return paragraphs
}

// RPIDocument wraps the styled digest into document blocks for the
// external encoder.
func RPIDocument(reports []models.Report, now time.Time) []models.Block {
	styled := RPIStyled(reports, now)
	blocks := make([]models.Block, 0, len(styled))
	for i := range styled {
		p := styled[i]
		blocks = append(blocks, models.Block{Paragraph: &p})
	}
	return blocks
}

func classifyRPILine(line string) models.Paragraph {
	isHeader := line == "SN."
	for _, unit := range CityUnitOrder {
		if line == unit {
			isHeader = true
			break
		}
	}

	if isHeader || incidentTitleRe.MatchString(line) {
		return models.Paragraph{Runs: []models.TextRun{{Text: line, Bold: true}}}
	}

	isLabelled := roleLineRe.MatchString(line) ||
		strings.HasPrefix(line, "Antecedentes:") ||
		strings.HasPrefix(line, "Orcrim:") ||
		strings.HasPrefix(line, "Material apreendido:")
	if isLabelled {
		if idx := strings.Index(line, ":"); idx != -1 {
			return models.Paragraph{Runs: []models.TextRun{
				{Text: line[:idx+1], Bold: true},
				{Text: line[idx+1:]},
			}}
		}
		return models.Paragraph{Runs: []models.TextRun{{Text: line, Bold: true}}}
	}

	return models.Paragraph{Runs: []models.TextRun{{Text: line}}}
}
