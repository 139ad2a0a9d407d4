package ocorrencia_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brigadapm/ocorrencias-api/ocorrencia"
)

func TestMilitaryDate(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{
			name:     "afternoon in january",
			in:       time.Date(2025, time.January, 15, 16, 30, 0, 0, time.UTC),
			expected: "151630JAN25",
		},
		{
			name:     "single digit day and hour are zero padded",
			in:       time.Date(2026, time.September, 3, 7, 5, 0, 0, time.UTC),
			expected: "030705SET26",
		},
		{
			name:     "midnight in december",
			in:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "310000DEZ24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ocorrencia.MilitaryDate(tt.in))
		})
	}
}

func TestParseMilitaryDateRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2025, time.January, 15, 16, 30, 0, 0, time.UTC),
		time.Date(2026, time.August, 29, 23, 59, 0, 0, time.UTC),
		time.Date(2030, time.May, 1, 0, 1, 0, 0, time.UTC),
	}
	for _, in := range times {
		token := ocorrencia.MilitaryDate(in)
		out, err := ocorrencia.ParseMilitaryDate(token)
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestParseMilitaryDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "too short", token: "1516JAN25"},
		{name: "too long", token: "151630JAN2025"},
		{name: "unknown month", token: "151630XXX25"},
		{name: "non numeric day", token: "AA1630JAN25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ocorrencia.ParseMilitaryDate(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAgeLabel(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		expected  string
	}{
		{name: "anniversary already passed", birthDate: "2000-01-10", expected: "26"},
		{name: "anniversary today", birthDate: "2000-08-29", expected: "26"},
		{name: "anniversary tomorrow", birthDate: "2000-08-30", expected: "25"},
		{name: "empty birth date", birthDate: "", expected: "N/A"},
		{name: "unparsable birth date", birthDate: "29/08/2000", expected: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ocorrencia.AgeLabel(tt.birthDate, now))
		})
	}
}

func TestCapitalizeSentences(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "first letter and after period",
			in:       "a guarnicao foi acionada. nada mais havendo",
			expected: "A guarnicao foi acionada. Nada mais havendo",
		},
		{
			name:     "after exclamation and question marks",
			in:       "fugiu! quem viu? ninguem",
			expected: "Fugiu! Quem viu? Ninguem",
		},
		{name: "empty", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ocorrencia.CapitalizeSentences(tt.in))
		})
	}
}

func TestTitleCaseName(t *testing.T) {
	assert.Equal(t, "Joao Da Silva", ocorrencia.TitleCaseName("JOAO DA SILVA"))
	assert.Equal(t, "Maria Souza", ocorrencia.TitleCaseName("maria souza"))
}

func TestRoleTitle(t *testing.T) {
	assert.Equal(t, "Vítima", ocorrencia.RoleTitle("VÍTIMA"))
	assert.Equal(t, "Menor apreendido", ocorrencia.RoleTitle("MENOR APREENDIDO"))
	assert.Equal(t, "", ocorrencia.RoleTitle(""))
}

func TestTurno(t *testing.T) {
	tests := []struct {
		clock    string
		expected string
	}{
		{clock: "00:00", expected: "4º TURNO"},
		{clock: "00:01", expected: "1º TURNO"},
		{clock: "06:00", expected: "1º TURNO"},
		{clock: "06:01", expected: "2º TURNO"},
		{clock: "12:00", expected: "2º TURNO"},
		{clock: "12:01", expected: "3º TURNO"},
		{clock: "18:00", expected: "3º TURNO"},
		{clock: "18:01", expected: "4º TURNO"},
		{clock: "23:59", expected: "4º TURNO"},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			clock, err := time.Parse("15:04", tt.clock)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ocorrencia.Turno(clock))
		})
	}
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "empty", in: "", expected: ""},
		{name: "up to three digits", in: "123", expected: "123"},
		{name: "four digits", in: "1234", expected: "123.4"},
		{name: "seven digits", in: "1234567", expected: "123.456.7"},
		{name: "ten digits", in: "1234567890", expected: "123.456.789-0"},
		{name: "full cpf", in: "12345678901", expected: "123.456.789-01"},
		{name: "extra digits discarded", in: "123456789019999", expected: "123.456.789-01"},
		{name: "non digits stripped", in: "123.456.789-01", expected: "123.456.789-01"},
		{name: "letters stripped", in: "a1b2c3", expected: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ocorrencia.MaskCPF(tt.in))
		})
	}
}
