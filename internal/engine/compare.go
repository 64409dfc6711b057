package engine

import (
	"fmt"

	"github.com/piwi3910/PalletPack/internal/model"
)

// ComparisonScenario defines a named equipment and settings combination
// to compare.
type ComparisonScenario struct {
	Name      string
	Settings  model.LoadSettings
	Pallet    model.Pallet
	Container model.Container
}

// ComparisonResult holds the optimization report and headline statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario         ComparisonScenario
	Report           model.OptimizationReport
	CartonsPlaced    int
	RemainingCartons int
	PalletsUsed      int
	EfficiencyPct    float64
	SpaceUtilPct     float64
}

// CompareScenarios runs the optimizer for each scenario against the same
// carton demand and returns the results in scenario order. This enables
// side-by-side what-if comparison of rotation settings, load-bearing
// limits, and alternative equipment.
func CompareScenarios(scenarios []ComparisonScenario, carton model.Carton) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Settings)
		report := opt.Optimize(carton, scenario.Pallet, scenario.Container)

		results = append(results, ComparisonResult{
			Scenario:         scenario,
			Report:           report,
			CartonsPlaced:    report.Summary.CartonsPlaced,
			RemainingCartons: report.Summary.RemainingCartons,
			PalletsUsed:      report.Summary.PalletsUsed,
			EfficiencyPct:    report.Summary.EfficiencyPercent(),
			SpaceUtilPct:     report.Summary.SpaceUtilizationPercent(),
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if scenarios from the plan's
// current configuration, varying one switch or one piece of equipment at
// a time.
func BuildDefaultScenarios(plan model.Plan) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:      "Current Settings",
			Settings:  plan.Settings,
			Pallet:    plan.Pallet,
			Container: plan.Container,
		},
	}

	// Scenario: toggle rotation
	altRotation := plan.Settings
	altRotation.EnableRotation = !altRotation.EnableRotation
	name := "Rotation Off"
	if altRotation.EnableRotation {
		name = "Rotation On"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:      name,
		Settings:  altRotation,
		Pallet:    plan.Pallet,
		Container: plan.Container,
	})

	// Scenario: toggle load-bearing limit
	altBearing := plan.Settings
	altBearing.ConsiderLoadBearing = !altBearing.ConsiderLoadBearing
	name = "Ignore Stack Weight"
	if altBearing.ConsiderLoadBearing {
		name = "Apply Stack Weight"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:      name,
		Settings:  altBearing,
		Pallet:    plan.Pallet,
		Container: plan.Container,
	})

	// Scenarios: alternative pallet presets with a different footprint
	catalog := model.DefaultCatalog()
	for _, preset := range catalog.Pallets {
		if preset.Length == plan.Pallet.Length && preset.Width == plan.Pallet.Width {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:      fmt.Sprintf("Pallet %s", preset.Name),
			Settings:  plan.Settings,
			Pallet:    preset.ToPallet(),
			Container: plan.Container,
		})
	}

	return scenarios
}
