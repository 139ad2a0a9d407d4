package ocorrencia

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// AgeNotAvailable is rendered when a birth date is missing or cannot be
// parsed. The formatters never fail on a bad date.
const AgeNotAvailable = "N/A"

const birthDateLayout = "2006-01-02"

var (
	sentenceStartRe = regexp.MustCompile(`(^\s*\w|[.!?]\s+\w)`)
	wordStartRe     = regexp.MustCompile(`(^\w|\s\w)`)
)

// MilitaryDate encodes t as the DDHHMMMMMYY token used on the release
// date line, e.g. 151630JAN25: two-digit day, four-digit 24h time,
// three-letter pt-BR month abbreviation, two-digit year.
func MilitaryDate(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d%s%02d",
		t.Day(), t.Hour(), t.Minute(), monthAbbr[t.Month()], t.Year()%100)
}

// ParseMilitaryDate is the inverse of MilitaryDate. The token is fixed
// width; the result is in UTC with seconds zeroed and the year resolved
// into 2000-2099.
func ParseMilitaryDate(token string) (time.Time, error) {
	if len(token) != 11 {
		return time.Time{}, fmt.Errorf("invalid military date token %q", token)
	}
	day, err := strconv.Atoi(token[0:2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in token %q", token)
	}
	hour, err := strconv.Atoi(token[2:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour in token %q", token)
	}
	minute, err := strconv.Atoi(token[4:6])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute in token %q", token)
	}
	month, ok := monthNumber[token[6:9]]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month abbreviation in token %q", token)
	}
	year, err := strconv.Atoi(token[9:11])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in token %q", token)
	}
	return time.Date(2000+year, month, day, hour, minute, 0, 0, time.UTC), nil
}

// Age returns the whole years elapsed from the birth date to now. The
// second return is false when the input is empty or unparsable.
func Age(birthDate string, now time.Time) (int, bool) {
	if birthDate == "" {
		return 0, false
	}
	b, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return 0, false
	}
	years := now.Year() - b.Year()
	anniversary := time.Date(now.Year(), b.Month(), b.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	return years, true
}

// AgeLabel renders Age for output, degrading to the N/A sentinel.
func AgeLabel(birthDate string, now time.Time) string {
	age, ok := Age(birthDate, now)
	if !ok {
		return AgeNotAvailable
	}
	return strconv.Itoa(age)
}

// CapitalizeSentences uppercases the first letter of the text and the
// first letter following each sentence-terminal punctuation plus
// whitespace. Free-text fields are entered lowercase; this restores
// readable casing in the final output.
func CapitalizeSentences(text string) string {
	if text == "" {
		return ""
	}
	return sentenceStartRe.ReplaceAllStringFunc(text, strings.ToUpper)
}

// TitleCaseName lowercases the name and uppercases each word initial.
func TitleCaseName(name string) string {
	return wordStartRe.ReplaceAllStringFunc(strings.ToLower(name), strings.ToUpper)
}

// RoleTitle renders a role enum value with only its first letter upper,
// e.g. "MENOR APREENDIDO" becomes "Menor apreendido".
func RoleTitle(role string) string {
	if role == "" {
		return ""
	}
	r := []rune(strings.ToLower(role))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Turno classifies a timestamp into one of the four statistical shift
// windows by minute of day. Midnight itself (minute zero) belongs to
// the 4º turno.
func Turno(t time.Time) string {
	totalMinutes := t.Hour()*60 + t.Minute()
	switch {
	case totalMinutes >= 1 && totalMinutes <= 360:
		return "1º TURNO" // 00:01 - 06:00
	case totalMinutes > 360 && totalMinutes <= 720:
		return "2º TURNO" // 06:01 - 12:00
	case totalMinutes > 720 && totalMinutes <= 1080:
		return "3º TURNO" // 12:01 - 18:00
	default:
		return "4º TURNO" // 18:01 - 24:00 (00:00)
	}
}

// MaskCPF progressively masks a CPF number into DDD.DDD.DDD-DD as
// digits are entered. Non-digit characters are stripped and anything
// past eleven digits is discarded.
func MaskCPF(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == 11 {
			break
		}
	}
	d := digits.String()
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}
