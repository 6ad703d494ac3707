package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/greenlens/esg-cli/internal/model"
)

// catalogFile is the yaml shape of a metric catalog override.
type catalogFile struct {
	Metrics []metricEntry `yaml:"metrics"`
}

type metricEntry struct {
	ID       string         `yaml:"id"`
	Category model.Category `yaml:"category"`
	NameKR   string         `yaml:"name_kr"`
	NameEN   string         `yaml:"name_en"`
	Unit     string         `yaml:"unit"`
	GRICode  string         `yaml:"gri_code"`
	Min      float64        `yaml:"min"`
	// Max <= 0 means unbounded above.
	Max      float64        `yaml:"max"`
	Polarity model.Polarity `yaml:"polarity"`
}

// LoadFile reads a metric catalog from a yaml file. Used to substitute a
// calibration catalog without rebuilding; the shipped default stays in code.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: read %s", path)
	}
	return Parse(data)
}

// Parse decodes a yaml metric catalog.
func Parse(data []byte) (*Registry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: parse catalog yaml")
	}
	if len(f.Metrics) == 0 {
		return nil, eris.New("registry: catalog defines no metrics")
	}

	seen := make(map[string]bool, len(f.Metrics))
	defs := make([]model.MetricDefinition, 0, len(f.Metrics))
	for _, m := range f.Metrics {
		if m.ID == "" {
			return nil, eris.New("registry: catalog entry missing id")
		}
		if seen[m.ID] {
			return nil, eris.Errorf("registry: duplicate metric id %q", m.ID)
		}
		seen[m.ID] = true

		rng := model.Range{Min: m.Min, Max: m.Max}
		if m.Max <= 0 {
			rng = model.Unbounded(m.Min)
		}
		pol := m.Polarity
		if pol == "" {
			pol = model.PolarityNeutral
		}
		defs = append(defs, model.MetricDefinition{
			ID:         m.ID,
			Category:   m.Category,
			NameKR:     m.NameKR,
			NameEN:     m.NameEN,
			Unit:       m.Unit,
			GRICode:    m.GRICode,
			ValidRange: rng,
			Polarity:   pol,
		})
	}
	return New(defs), nil
}
