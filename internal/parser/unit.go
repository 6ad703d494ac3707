package parser

import "strings"

// unitFamily groups interchangeable units. Candidates whose reported unit
// resolves to a different family than the metric's canonical unit get the
// unit_mismatch flag; validation turns that into a FAIL.
type unitFamily string

const (
	familyEmissions unitFamily = "emissions"
	familyMass      unitFamily = "mass"
	familyEnergy    unitFamily = "energy"
	familyPercent   unitFamily = "percent"
	familyCount     unitFamily = "count"
	familyHours     unitFamily = "hours"
	familyUnknown   unitFamily = ""
)

// unitInfo maps a normalized unit token onto its family and the scale into
// the family's canonical unit.
type unitInfo struct {
	family unitFamily
	scale  float64
}

// unitTable covers the vocabulary seen in Korean sustainability reports.
// Keys are lowercased, space-stripped forms after width folding.
var unitTable = map[string]unitInfo{
	// Emissions.
	"tco2eq":  {familyEmissions, 1},
	"tco2e":   {familyEmissions, 1},
	"tco2-eq": {familyEmissions, 1},
	"tco2":    {familyEmissions, 1},
	"톤co2eq":  {familyEmissions, 1},
	"톤co2":    {familyEmissions, 1},
	"ktco2eq": {familyEmissions, 1000},

	// Mass. 천톤 is thousands of tonnes.
	"tonnes": {familyMass, 1},
	"tonne":  {familyMass, 1},
	"tons":   {familyMass, 1},
	"ton":    {familyMass, 1},
	"t":      {familyMass, 1},
	"톤":      {familyMass, 1},
	"천톤":     {familyMass, 1000},
	"kt":     {familyMass, 1000},
	"㎥":      {familyMass, 1}, // water volume reported as ㎥; 1 ㎥ ≈ 1 tonne

	// Energy.
	"tj": {familyEnergy, 1},
	"gj": {familyEnergy, 0.001},
	"mj": {familyEnergy, 1e-6},

	// Percent. %p (percentage points) normalizes into the same family.
	"%":       {familyPercent, 1},
	"%p":      {familyPercent, 1},
	"percent": {familyPercent, 1},
	"퍼센트":     {familyPercent, 1},
	"프로":      {familyPercent, 1},

	// Counts.
	"count": {familyCount, 1},
	"명":     {familyCount, 1},
	"회":     {familyCount, 1},
	"건":     {familyCount, 1},
	"개":     {familyCount, 1},

	// Hours.
	"hours": {familyHours, 1},
	"hour":  {familyHours, 1},
	"hrs":   {familyHours, 1},
	"hr":    {familyHours, 1},
	"h":     {familyHours, 1},
	"시간":    {familyHours, 1},
}

// canonicalByFamily maps each family to the catalog's canonical unit tag.
var canonicalByFamily = map[unitFamily]string{
	familyEmissions: "tCO2eq",
	familyMass:      "tonnes",
	familyEnergy:    "TJ",
	familyPercent:   "%",
	familyCount:     "count",
	familyHours:     "hours",
}

// lookupUnit resolves a reported unit string to its family and scale.
// Unrecognized units resolve to familyUnknown.
func lookupUnit(reported string) unitInfo {
	key := strings.ToLower(strings.ReplaceAll(foldWidth(reported), " ", ""))
	key = strings.Trim(key, ".,;:()[]")
	if info, ok := unitTable[key]; ok {
		return info
	}
	// Suffixed variants like "tCO2eq/year" keep the base unit's family.
	for _, sep := range []string{"/", "·"} {
		if base, _, found := strings.Cut(key, sep); found {
			if info, ok := unitTable[base]; ok {
				return info
			}
		}
	}
	return unitInfo{family: familyUnknown, scale: 1}
}

// familyOf resolves a catalog canonical unit tag to its family.
func familyOf(canonical string) unitFamily {
	return lookupUnit(canonical).family
}

// compatibleUnit reports whether a reported unit belongs to the expected
// canonical unit's family. An empty reported unit is "inferred", which is
// not a mismatch; the confidence heuristic penalizes it instead.
func compatibleUnit(reported, canonical string) bool {
	if strings.TrimSpace(reported) == "" {
		return true
	}
	rf := lookupUnit(reported).family
	if rf == familyUnknown {
		// Unknown vocabulary is not proof of incompatibility.
		return true
	}
	return rf == familyOf(canonical)
}
