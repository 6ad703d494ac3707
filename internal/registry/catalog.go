package registry

import "github.com/greenlens/esg-cli/internal/model"

// Default returns the standard 16-metric catalog for Korean sustainability
// reports. Ranges are physical-plausibility bounds, not reporting targets:
// percentage metrics are capped at 100, absolute quantities at magnitudes no
// single company plausibly exceeds.
func Default() *Registry {
	return New([]model.MetricDefinition{
		{
			ID: "E01", Category: model.CategoryEnvironmental,
			NameKR: "온실가스 직접배출량 (Scope 1)", NameEN: "GHG Emissions Scope 1",
			Unit: "tCO2eq", GRICode: "305-1",
			ValidRange: model.Range{Min: 0, Max: 1e9}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "E02", Category: model.CategoryEnvironmental,
			NameKR: "온실가스 간접배출량 (Scope 2)", NameEN: "GHG Emissions Scope 2",
			Unit: "tCO2eq", GRICode: "305-2",
			ValidRange: model.Range{Min: 0, Max: 1e9}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "E03", Category: model.CategoryEnvironmental,
			NameKR: "기타 간접배출량 (Scope 3)", NameEN: "GHG Emissions Scope 3",
			Unit: "tCO2eq", GRICode: "305-3",
			ValidRange: model.Range{Min: 0, Max: 1e10}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "E04", Category: model.CategoryEnvironmental,
			NameKR: "총 에너지 사용량", NameEN: "Total Energy Consumption",
			Unit: "TJ", GRICode: "302-1",
			ValidRange: model.Range{Min: 0, Max: 1e7}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "E05", Category: model.CategoryEnvironmental,
			NameKR: "용수 취수량", NameEN: "Water Withdrawal",
			Unit: "tonnes", GRICode: "303-3",
			ValidRange: model.Range{Min: 0, Max: 1e9}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "E06", Category: model.CategoryEnvironmental,
			NameKR: "폐기물 발생량", NameEN: "Waste Generated",
			Unit: "tonnes", GRICode: "306-3",
			ValidRange: model.Range{Min: 0, Max: 1e8}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "E07", Category: model.CategoryEnvironmental,
			NameKR: "폐기물 재활용률", NameEN: "Waste Recycling Rate",
			Unit: "%", GRICode: "306-4",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityHigherBetter,
		},
		{
			ID: "S01", Category: model.CategorySocial,
			NameKR: "총 임직원 수", NameEN: "Total Employees",
			Unit: "count", GRICode: "2-7",
			ValidRange: model.Range{Min: 0, Max: 1e7}, Polarity: model.PolarityNeutral,
		},
		{
			ID: "S02", Category: model.CategorySocial,
			NameKR: "여성 임직원 비율", NameEN: "Female Employee Ratio",
			Unit: "%", GRICode: "405-1",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityHigherBetter,
		},
		{
			ID: "S03", Category: model.CategorySocial,
			NameKR: "산업재해율", NameEN: "Industrial Accident Rate",
			Unit: "%", GRICode: "403-9",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "S04", Category: model.CategorySocial,
			NameKR: "1인당 교육시간", NameEN: "Training Hours per Employee",
			Unit: "hours", GRICode: "404-1",
			ValidRange: model.Range{Min: 0, Max: 1e4}, Polarity: model.PolarityHigherBetter,
		},
		{
			ID: "S05", Category: model.CategorySocial,
			NameKR: "이직률", NameEN: "Employee Turnover Rate",
			Unit: "%", GRICode: "401-1",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityLowerBetter,
		},
		{
			ID: "G01", Category: model.CategoryGovernance,
			NameKR: "사외이사 비율", NameEN: "Independent Director Ratio",
			Unit: "%", GRICode: "2-9",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityHigherBetter,
		},
		{
			ID: "G02", Category: model.CategoryGovernance,
			NameKR: "이사회 개최 횟수", NameEN: "Board Meetings Held",
			Unit: "count", GRICode: "2-12",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityNeutral,
		},
		{
			ID: "G03", Category: model.CategoryGovernance,
			NameKR: "여성 이사 비율", NameEN: "Female Board Member Ratio",
			Unit: "%", GRICode: "405-1",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityHigherBetter,
		},
		{
			ID: "G04", Category: model.CategoryGovernance,
			NameKR: "반부패 교육 이수율", NameEN: "Anti-corruption Training Rate",
			Unit: "%", GRICode: "205-2",
			ValidRange: model.Range{Min: 0, Max: 100}, Polarity: model.PolarityHigherBetter,
		},
	})
}
