// Package parser normalizes raw backend responses into typed metric
// candidates. All non-determinism lives upstream in the backend; given the
// same response text the parser always produces the same outcome.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/greenlens/esg-cli/internal/model"
)

// ErrParseInput marks malformed parser input (empty or non-text). This is a
// defect at the call site, not an expected extraction outcome.
var ErrParseInput = eris.New("malformed parser input")

// Parse extracts zero or one candidate value for the given metric from a
// raw backend response. A response that contains no usable value resolves
// to a not-found outcome, never an error.
func Parse(raw string, def model.MetricDefinition) (model.Extraction, error) {
	if strings.TrimSpace(raw) == "" {
		return model.Extraction{}, eris.Wrap(ErrParseInput, "empty response")
	}
	if !utf8.ValidString(raw) {
		return model.Extraction{}, eris.Wrap(ErrParseInput, "response is not valid text")
	}

	if doc, ok := salvageJSON(raw); ok {
		if ext, decided := fromJSON(doc, def); decided {
			return ext, nil
		}
	}
	return fromFreeText(raw, def), nil
}

// --- JSON path ---

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	looseJSONPattern  = regexp.MustCompile(`(?s)\{.*\}`)
)

// salvageJSON recovers a JSON object from response text: the whole body
// first, then a fenced code block, then the first brace-delimited substring.
func salvageJSON(raw string) (map[string]any, bool) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err == nil {
		return doc, true
	}
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &doc); err == nil {
			return doc, true
		}
	}
	if m := looseJSONPattern.FindString(raw); m != "" {
		if err := json.Unmarshal([]byte(m), &doc); err == nil {
			return doc, true
		}
	}
	return nil, false
}

// fromJSON interprets a salvaged JSON document. The second return is false
// when the document carries no extraction shape at all, in which case the
// free-text fallback takes over.
func fromJSON(doc map[string]any, def model.MetricDefinition) (model.Extraction, bool) {
	items := collectItems(doc)
	if items == nil {
		return model.Extraction{}, false
	}
	if len(items) == 0 {
		return model.NotFound(def.ID), true
	}

	item := selectItem(items, def)
	v, ok := itemValue(item)
	if !ok {
		// Explicit null value: the backend looked and found nothing.
		return model.NotFound(def.ID), true
	}

	unit := itemString(item, "unit")
	quote := firstItemString(item, "source_text", "quote", "source", "evidence")
	page := itemPage(item)

	c := buildCandidate(def, v, unit, quote, page)
	if conf, ok := itemConfidence(item); ok {
		c.Confidence = conf
	}
	return model.Found(c), true
}

// collectItems normalizes the two accepted JSON shapes into a flat item
// list: {"extracted": [...]} and a bare {"value": ...} object. Returns nil
// when neither shape is present.
func collectItems(doc map[string]any) []map[string]any {
	if raw, ok := doc["extracted"]; ok {
		arr, ok := raw.([]any)
		if !ok {
			return []map[string]any{}
		}
		items := make([]map[string]any, 0, len(arr))
		for _, e := range arr {
			if m, ok := e.(map[string]any); ok {
				items = append(items, m)
			}
		}
		return items
	}
	if _, ok := doc["value"]; ok {
		return []map[string]any{doc}
	}
	return nil
}

// selectItem picks the item most tightly associated with the metric:
// explicit metric_id match outranks unit-family match, first occurrence
// breaks ties.
func selectItem(items []map[string]any, def model.MetricDefinition) map[string]any {
	best := items[0]
	bestScore := -1
	for _, item := range items {
		score := 0
		if id := itemString(item, "metric_id"); id != "" && strings.EqualFold(id, def.ID) {
			score += 2
		}
		if u := itemString(item, "unit"); u != "" && lookupUnit(u).family != familyUnknown &&
			lookupUnit(u).family == familyOf(def.Unit) {
			score++
		}
		if score > bestScore {
			best = item
			bestScore = score
		}
	}
	return best
}

func itemValue(item map[string]any) (float64, bool) {
	raw, ok := item["value"]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		return parseNumber(v)
	default:
		return 0, false
	}
}

func itemString(item map[string]any, key string) string {
	s, _ := item[key].(string)
	return s
}

func firstItemString(item map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := itemString(item, k); s != "" {
			return s
		}
	}
	return ""
}

func itemPage(item map[string]any) *int {
	for _, key := range []string{"page_num", "page", "page_number"} {
		if raw, ok := item[key]; ok {
			if f, ok := raw.(float64); ok && f > 0 {
				p := int(f)
				return &p
			}
		}
	}
	return nil
}

func itemConfidence(item map[string]any) (float64, bool) {
	raw, ok := item["confidence"]
	if !ok {
		return 0, false
	}
	f, ok := raw.(float64)
	if !ok || f < 0 || f > 1 {
		return 0, false
	}
	return f, true
}

// --- free-text fallback ---

// fromFreeText scans loosely structured text for the metric's value when no
// JSON shape was recoverable. Candidates are ranked by unit-family match,
// then by metric-label proximity on the same line, then first occurrence.
func fromFreeText(raw string, def model.MetricDefinition) model.Extraction {
	matches := scanNumbers(raw)
	if len(matches) == 0 {
		return model.NotFound(def.ID)
	}

	labels := metricLabels(def)
	expected := familyOf(def.Unit)

	best := -1
	bestScore := -1
	for i, m := range matches {
		score := 0
		if f := lookupUnit(m.unit).family; f != familyUnknown && f == expected {
			score += 2
		}
		line := strings.ToLower(foldWidth(m.line))
		for _, label := range labels {
			if strings.Contains(line, label) {
				score++
				break
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if bestScore <= 0 {
		// Nothing ties any number to this metric; guessing here would
		// fabricate evidence.
		return model.NotFound(def.ID)
	}

	m := matches[best]
	return model.Found(buildCandidate(def, m.value, m.unit, m.line, nil))
}

// metricLabels returns lowercase search labels for a metric: Korean name
// tokens, the English name, and the GRI code.
func metricLabels(def model.MetricDefinition) []string {
	var labels []string
	if def.NameEN != "" {
		labels = append(labels, strings.ToLower(def.NameEN))
	}
	for _, tok := range strings.Fields(def.NameKR) {
		tok = strings.Trim(tok, "()")
		if utf8.RuneCountInString(tok) >= 2 {
			labels = append(labels, strings.ToLower(tok))
		}
	}
	if def.GRICode != "" {
		labels = append(labels, strings.ToLower("GRI "+def.GRICode))
	}
	return labels
}

// --- candidate assembly ---

// buildCandidate normalizes value and unit into the metric's canonical unit
// and derives a heuristic confidence. Values in a compatible but scaled unit
// (천톤, GJ) are converted; incompatible unit families keep the raw value and
// get the unit_mismatch flag for the validation engine.
func buildCandidate(def model.MetricDefinition, value float64, unit, quote string, page *int) model.Candidate {
	c := model.Candidate{
		MetricID:     def.ID,
		Value:        value,
		UnitReported: strings.TrimSpace(unit),
		SourceQuote:  strings.TrimSpace(quote),
		PageNumber:   page,
	}

	unitStated := c.UnitReported != ""
	if unitStated {
		info := lookupUnit(c.UnitReported)
		switch {
		case info.family == familyUnknown:
			// Unrecognized vocabulary: keep the value, treat the unit as
			// unstated for confidence purposes.
			unitStated = false
		case info.family == familyOf(def.Unit):
			c.Value = value * info.scale
		default:
			c.UnitMismatch = true
		}
	}

	c.Confidence = heuristicConfidence(c, unitStated)
	return c
}

// heuristicConfidence derives confidence from corroborating evidence.
// Every term is non-negative, so confidence is monotonic in the amount of
// evidence present: unit stated, quote present, value visible in the quote,
// page cited, substantial quote.
func heuristicConfidence(c model.Candidate, unitStated bool) float64 {
	conf := 0.35
	if unitStated && !c.UnitMismatch {
		conf += 0.20
	}
	if c.SourceQuote != "" {
		conf += 0.20
		if valueInText(c.Value, c.SourceQuote) {
			conf += 0.05
		}
		if utf8.RuneCountInString(c.SourceQuote) >= 15 {
			conf += 0.05
		}
	}
	if c.PageNumber != nil {
		conf += 0.15
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}
