package model

import (
	"encoding/json"
	"math"
)

// Category groups metrics into the three ESG pillars.
type Category string

const (
	CategoryEnvironmental Category = "E"
	CategorySocial        Category = "S"
	CategoryGovernance    Category = "G"
)

// Categories lists the pillars in report order.
var Categories = []Category{CategoryEnvironmental, CategorySocial, CategoryGovernance}

// Name returns the long English name of the category.
func (c Category) Name() string {
	switch c {
	case CategoryEnvironmental:
		return "Environmental"
	case CategorySocial:
		return "Social"
	case CategoryGovernance:
		return "Governance"
	default:
		return string(c)
	}
}

// Polarity records whether a higher value is better or worse for the
// reporting company. Scoring context only; validation never reads it.
type Polarity string

const (
	PolarityHigherBetter Polarity = "higher_better"
	PolarityLowerBetter  Polarity = "lower_better"
	PolarityNeutral      Polarity = "neutral"
)

// Range is a closed numeric interval. Max of +Inf means unbounded above.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Unbounded builds a range with no upper limit.
func Unbounded(min float64) Range {
	return Range{Min: min, Max: math.Inf(1)}
}

// Contains reports whether v falls inside the interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// rangeJSON carries Range over JSON. An unbounded interval omits max, since
// encoding/json rejects +Inf.
type rangeJSON struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

func (r Range) MarshalJSON() ([]byte, error) {
	rj := rangeJSON{Min: r.Min}
	if !math.IsInf(r.Max, 1) {
		rj.Max = &r.Max
	}
	return json.Marshal(rj)
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var rj rangeJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	r.Min = rj.Min
	r.Max = math.Inf(1)
	if rj.Max != nil {
		r.Max = *rj.Max
	}
	return nil
}

// MetricDefinition describes one of the fixed ESG metrics. Immutable after
// registry construction.
type MetricDefinition struct {
	ID         string   `json:"id" yaml:"id"`
	Category   Category `json:"category" yaml:"category"`
	NameKR     string   `json:"name_kr" yaml:"name_kr"`
	NameEN     string   `json:"name_en" yaml:"name_en"`
	Unit       string   `json:"unit" yaml:"unit"`
	GRICode    string   `json:"gri_code" yaml:"gri_code"`
	ValidRange Range    `json:"valid_range" yaml:"valid_range"`
	Polarity   Polarity `json:"polarity" yaml:"polarity"`
}
