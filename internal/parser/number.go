package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// foldWidth folds full-width digits, punctuation and Latin letters (common
// in Korean report tables) into their half-width forms.
func foldWidth(s string) string {
	return width.Fold.String(s)
}

// numberPattern matches numbers with optional thousands separators and an
// optional leading sign, e.g. "1,234.5", "−10", "98.5".
var numberPattern = regexp.MustCompile(`[-−]?\d{1,3}(?:,\d{3})+(?:\.\d+)?|[-−]?\d+(?:\.\d+)?`)

// parseNumber converts a loosely formatted numeric string (commas,
// full-width digits, unicode minus) to a float64.
func parseNumber(s string) (float64, bool) {
	s = foldWidth(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "−", "-")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numberMatch is one numeric occurrence in free text with its trailing
// unit token and source position.
type numberMatch struct {
	value float64
	unit  string
	start int
	line  string
}

// unitSuffixPattern captures a unit-like token immediately after a number:
// Latin/Korean letters, percent signs, and common compounds.
var unitSuffixPattern = regexp.MustCompile(`^\s*([%％]p?|[A-Za-z가-힣㎥][A-Za-z0-9가-힣㎥/·-]*)`)

// scanNumbers finds every numeric occurrence in text in order, pairing each
// with the unit token that follows it (if any) and the containing line.
func scanNumbers(text string) []numberMatch {
	folded := foldWidth(text)
	var out []numberMatch
	for _, loc := range numberPattern.FindAllStringIndex(folded, -1) {
		raw := folded[loc[0]:loc[1]]
		v, ok := parseNumber(raw)
		if !ok {
			continue
		}
		unit := ""
		if m := unitSuffixPattern.FindStringSubmatch(folded[loc[1]:]); m != nil {
			unit = m[1]
		}
		out = append(out, numberMatch{
			value: v,
			unit:  unit,
			start: loc[0],
			line:  surroundingLine(folded, loc[0]),
		})
	}
	return out
}

// surroundingLine returns the line of text containing byte offset pos.
func surroundingLine(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += pos
	}
	return strings.TrimSpace(text[start:end])
}

// valueInText reports whether a numeric value appears in text, accounting
// for comma-formatted and single-decimal renderings.
func valueInText(v float64, text string) bool {
	if text == "" {
		return false
	}
	text = foldWidth(text)

	forms := []string{
		strconv.FormatFloat(v, 'f', -1, 64),
		fmt.Sprintf("%.1f", v),
	}
	if v == float64(int64(v)) {
		iv := int64(v)
		forms = append(forms, strconv.FormatInt(iv, 10), groupThousands(iv))
	} else {
		forms = append(forms, groupThousandsFloat(v))
	}
	for _, f := range forms {
		if strings.Contains(text, f) {
			return true
		}
	}
	return false
}

// groupThousands renders an integer with comma separators.
func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// groupThousandsFloat renders a float with comma separators and one decimal.
func groupThousandsFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	intPart, frac, _ := strings.Cut(s, ".")
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	return groupThousands(iv) + "." + frac
}
