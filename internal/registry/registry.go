// Package registry holds the fixed catalog of ESG metric definitions.
package registry

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/greenlens/esg-cli/internal/model"
)

// ErrUnknownMetric is returned for a metric id outside the catalog.
// Hitting it is a programmer error, not a data condition.
var ErrUnknownMetric = eris.New("unknown metric id")

// Registry is an indexed, read-only collection of metric definitions.
// Safe for concurrent use after construction.
type Registry struct {
	defs []model.MetricDefinition
	byID map[string]*model.MetricDefinition
}

// New builds a Registry from the given definitions, ordering them
// category-then-id for deterministic report layout.
func New(defs []model.MetricDefinition) *Registry {
	ordered := make([]model.MetricDefinition, len(defs))
	copy(ordered, defs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Category != ordered[j].Category {
			return categoryRank(ordered[i].Category) < categoryRank(ordered[j].Category)
		}
		return ordered[i].ID < ordered[j].ID
	})

	r := &Registry{
		defs: ordered,
		byID: make(map[string]*model.MetricDefinition, len(ordered)),
	}
	for i := range r.defs {
		r.byID[r.defs[i].ID] = &r.defs[i]
	}
	return r
}

func categoryRank(c model.Category) int {
	switch c {
	case model.CategoryEnvironmental:
		return 0
	case model.CategorySocial:
		return 1
	case model.CategoryGovernance:
		return 2
	default:
		return 3
	}
}

// Get returns the definition for the given id.
func (r *Registry) Get(id string) (model.MetricDefinition, error) {
	d, ok := r.byID[id]
	if !ok {
		return model.MetricDefinition{}, eris.Wrapf(ErrUnknownMetric, "registry: %q", id)
	}
	return *d, nil
}

// Has reports whether the id is part of the catalog.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the definitions in category-then-id order. The returned slice
// is a copy; callers may not mutate registry state through it.
func (r *Registry) All() []model.MetricDefinition {
	out := make([]model.MetricDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of defined metrics.
func (r *Registry) Len() int {
	return len(r.defs)
}

// ByCategory returns the definitions of one pillar in id order.
func (r *Registry) ByCategory(c model.Category) []model.MetricDefinition {
	var out []model.MetricDefinition
	for _, d := range r.defs {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}
