package ocorrencia

import (
	"fmt"
	"strings"
	"time"

	"github.com/brigadapm/ocorrencias-api/models"
)

// Release composes the WhatsApp release text for a single report. The
// input may be partially filled (the form previews on every keystroke),
// so every empty field degrades to its bracketed placeholder and the
// function never fails. Ages are computed relative to now.
func Release(in models.ReportInput, preliminar bool, now time.Time) string {
	var b strings.Builder

	if preliminar {
		b.WriteString("*PRELIMINAR*\n\n")
	}

	b.WriteString("*FATO*\n")
	b.WriteString(placeholder(strings.ToUpper(in.Fato), "[FATO]"))
	if in.FatoComplementar != nil && *in.FatoComplementar != "" {
		b.WriteString("\n" + strings.ToUpper(*in.FatoComplementar))
	}
	b.WriteString("\n\n")

	b.WriteString("*CIDADE - CRPM HORTÊNSIAS / UNIDADE*\n")
	b.WriteString(fmt.Sprintf("%s - CRPM HORTÊNSIAS / %s\n\n",
		placeholder(in.Cidade, "[CIDADE]"),
		placeholder(in.Unidade, "[UNIDADE]")))

	b.WriteString("*DATA/HORA:*\n")
	if in.DataHora.IsZero() {
		b.WriteString("[DATA/HORA]\n\n")
	} else {
		b.WriteString(MilitaryDate(in.DataHora) + "\n\n")
	}

	b.WriteString("*LOCAL:*\n")
	if in.LocalRua == "" && in.LocalNumero == "" && in.LocalBairro == "" {
		b.WriteString("[LOCAL]\n\n")
	} else {
		b.WriteString(fmt.Sprintf("na %s, nº %s, bairro %s\n\n",
			lowerOr(in.LocalRua, "[RUA]"),
			lowerOr(in.LocalNumero, "[Nº]"),
			lowerOr(in.LocalBairro, "[BAIRRO]")))
	}

	b.WriteString("*ENVOLVIDOS:*\n")
	if len(in.Envolvidos) == 0 {
		b.WriteString("[ENVOLVIDOS]\n")
	} else {
		for _, p := range in.Envolvidos {
			b.WriteString(releaseEnvolvido(p, now))
		}
	}
	b.WriteString("\n")

	b.WriteString("*MOTIVAÇÃO:*\n")
	if in.Motivacao == "" {
		b.WriteString("[MOTIVAÇÃO]\n\n")
	} else {
		b.WriteString(CapitalizeSentences(in.Motivacao) + "\n\n")
	}

	b.WriteString("*MATERIAL APREENDIDO:*\n")
	if len(in.Material) == 0 {
		b.WriteString("Sem apreensões\n")
	} else {
		for _, m := range in.Material {
			b.WriteString("- " + strings.ToLower(m) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("*OFICIAL:*\n")
	b.WriteString(placeholder(in.Oficial, "[OFICIAL]") + "\n\n")

	b.WriteString("*RESUMO DO FATO:*\n")
	if in.Resumo == "" {
		b.WriteString("[RESUMO]")
	} else {
		b.WriteString(CapitalizeSentences(strings.ToLower(in.Resumo)))
	}

	if preliminar {
		b.WriteString("\n\n*OCORRÊNCIA EM ANDAMENTO*")
	}

	return b.String()
}

// releaseEnvolvido renders one involved-person block. Each field keeps
// its own default and casing rule.
func releaseEnvolvido(p models.Envolvido, now time.Time) string {
	var b strings.Builder
	role := "[QUALIFICAÇÃO]"
	if p.Role != "" {
		role = RoleTitle(p.Role)
	}
	b.WriteString(fmt.Sprintf("%s: %s\n",
		role,
		strings.ToUpper(placeholder(p.Nome, "[NOME]"))))
	b.WriteString(fmt.Sprintf("%s: %s\n",
		placeholder(p.DocumentoTipo, "[DOCUMENTO]"),
		placeholder(p.DocumentoNumero, "[NÚMERO]")))
	b.WriteString(fmt.Sprintf("Idade: %s anos\n", AgeLabel(p.DataNascimento, now)))
	b.WriteString(fmt.Sprintf("Antecedentes: %s\n",
		strings.ToLower(placeholder(p.Antecedentes, models.NadaConsta))))
	b.WriteString(fmt.Sprintf("Orcrim: %s\n",
		strings.ToLower(placeholder(p.Orcrim, models.NadaConsta))))
	return b.String()
}

func placeholder(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// lowerOr lowercases a filled value but leaves the bracketed fallback
// as-is when the field is empty.
func lowerOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return strings.ToLower(value)
}
