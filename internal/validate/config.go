package validate

// Config holds the calibration constants of the rule set. The consistency
// factors are plausibility thresholds, not physical law; defaults come from
// calibration against published Korean sustainability reports.
type Config struct {
	// LowConfidence is the threshold below which an otherwise clean
	// candidate is downgraded to WARNING.
	LowConfidence float64 `yaml:"low_confidence" mapstructure:"low_confidence"`
	// ScopeBalanceFactor: warn when Scope1+Scope2 exceed this multiple of
	// Scope 3. Value-chain emissions normally dominate direct emissions.
	ScopeBalanceFactor float64 `yaml:"scope_balance_factor" mapstructure:"scope_balance_factor"`
	// BoardRatioFactor: warn when the female board ratio exceeds this
	// multiple of the female employee ratio.
	BoardRatioFactor float64 `yaml:"board_ratio_factor" mapstructure:"board_ratio_factor"`
}

// DefaultConfig returns the shipped calibration constants.
func DefaultConfig() Config {
	return Config{
		LowConfidence:      0.40,
		ScopeBalanceFactor: 10,
		BoardRatioFactor:   3,
	}
}

// withDefaults fills zero-valued fields so a partially populated config
// (e.g. from an empty yaml section) still validates sensibly.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LowConfidence <= 0 {
		c.LowConfidence = d.LowConfidence
	}
	if c.ScopeBalanceFactor <= 0 {
		c.ScopeBalanceFactor = d.ScopeBalanceFactor
	}
	if c.BoardRatioFactor <= 0 {
		c.BoardRatioFactor = d.BoardRatioFactor
	}
	return c
}
