package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		in     string
		family unitFamily
		scale  float64
	}{
		{"tCO2eq", familyEmissions, 1},
		{"tCO2eq/year", familyEmissions, 1},
		{"ktCO2eq", familyEmissions, 1000},
		{"톤", familyMass, 1},
		{"천톤", familyMass, 1000},
		{"㎥", familyMass, 1},
		{"TJ", familyEnergy, 1},
		{"GJ", familyEnergy, 0.001},
		{"%", familyPercent, 1},
		{"%p", familyPercent, 1},
		{"퍼센트", familyPercent, 1},
		{"명", familyCount, 1},
		{"회", familyCount, 1},
		{"시간", familyHours, 1},
		{"광년", familyUnknown, 1},
		{"", familyUnknown, 1},
	}
	for _, tc := range tests {
		info := lookupUnit(tc.in)
		assert.Equal(t, tc.family, info.family, "unit %q", tc.in)
		assert.Equal(t, tc.scale, info.scale, "unit %q", tc.in)
	}
}

func TestLookupUnitFoldsWidth(t *testing.T) {
	// full-width percent sign, as copied out of report tables
	assert.Equal(t, familyPercent, lookupUnit("％").family)
}

func TestCompatibleUnit(t *testing.T) {
	assert.True(t, compatibleUnit("tCO2eq", "tCO2eq"))
	assert.True(t, compatibleUnit("천톤", "tonnes"))
	assert.True(t, compatibleUnit("", "TJ"))       // inferred
	assert.True(t, compatibleUnit("수상한단위", "TJ")) // unknown vocabulary
	assert.False(t, compatibleUnit("TJ", "tCO2eq"))
	assert.False(t, compatibleUnit("%", "count"))
}

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"1,234.5", 1234.5},
		{"245,000", 245000},
		{"−10", -10},
		{"98.5", 98.5},
		{"１２３", 123}, // full-width digits
	} {
		v, ok := parseNumber(tc.in)
		assert.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, v, "input %q", tc.in)
	}

	_, ok := parseNumber("없음")
	assert.False(t, ok)
}

func TestValueInText(t *testing.T) {
	assert.True(t, valueInText(245000, "직접배출량: 245,000 tCO2eq"))
	assert.True(t, valueInText(92.3, "재활용률 92.3%"))
	assert.True(t, valueInText(14, "연 14회"))
	assert.False(t, valueInText(42, "재활용률 92.3%"))
	assert.False(t, valueInText(42, ""))
}
