package engine

import (
	"testing"

	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_FullScenario(t *testing.T) {
	// 200 cartons of 50x30x25 on EUR pallets into a 40ft container.
	// The mixed-row layer wins with 42 cartons per pallet, so 5 pallets
	// cover the demand against a 20 pallet container capacity.
	carton := model.NewCarton("Box", 50, 30, 25, 15, 200)
	opt := New(model.LoadSettings{EnableRotation: true, ConsiderLoadBearing: false})

	report := opt.Optimize(carton, eurPallet(), fortyFoot())

	require.NotNil(t, report.PalletLayout)
	assert.Equal(t, 42, report.PalletLayout.TotalCartons)

	assert.Equal(t, 200, report.Summary.CartonsRequested)
	assert.Equal(t, 200, report.Summary.CartonsPlaced)
	assert.Equal(t, 0, report.Summary.RemainingCartons)
	assert.Equal(t, 5, report.Summary.PalletsUsed)
	assert.Equal(t, 1, report.Summary.ContainersUsed)
	assert.InDelta(t, 1.0, report.Summary.PackingEfficiency, 1e-9)

	// Pallet positions are truncated to the pallets actually used.
	assert.Len(t, report.ContainerLayout.Placements, 5)
	assert.Equal(t, 20, report.ContainerLayout.TotalPallets)
}

func TestOptimize_RotationDisabledBaseline(t *testing.T) {
	// Without rotation only the plain 2x2 grid is available: 28 cartons
	// per pallet, ceil(200/28) = 8 pallets.
	carton := model.NewCarton("Box", 50, 30, 25, 15, 200)
	opt := New(model.LoadSettings{EnableRotation: false, ConsiderLoadBearing: false})

	report := opt.Optimize(carton, eurPallet(), fortyFoot())

	require.NotNil(t, report.PalletLayout)
	assert.Equal(t, 28, report.PalletLayout.TotalCartons)
	assert.Equal(t, 8, report.Summary.PalletsUsed)
	assert.Equal(t, 200, report.Summary.CartonsPlaced)
}

func TestOptimize_CartonEqualsPalletFootprint(t *testing.T) {
	carton := model.NewCarton("FullDeck", 120, 80, 30, 20, 10)
	opt := New(model.LoadSettings{EnableRotation: true, ConsiderLoadBearing: false})

	report := opt.Optimize(carton, eurPallet(), fortyFoot())

	require.NotNil(t, report.PalletLayout)
	assert.Equal(t, model.LayoutSingle, report.PalletLayout.Kind)
	assert.Equal(t, 1, report.PalletLayout.CartonsPerLayer)
	assert.Equal(t, 10, report.Summary.CartonsPlaced+report.Summary.RemainingCartons)
}

func TestOptimize_LayerWeightOverLimitPlacesNothing(t *testing.T) {
	// With load bearing on and a stack weight limit below one layer's
	// weight, every candidate stacks zero layers. The report carries the
	// full demand as remaining instead of failing.
	pallet := eurPallet()
	pallet.MaxStackWeight = 40

	carton := model.NewCarton("Dense", 50, 30, 25, 15, 100)
	opt := New(model.LoadSettings{EnableRotation: true, ConsiderLoadBearing: true})

	report := opt.Optimize(carton, pallet, fortyFoot())

	assert.Nil(t, report.PalletLayout)
	assert.Equal(t, 0, report.Summary.CartonsPlaced)
	assert.Equal(t, 100, report.Summary.RemainingCartons)
	assert.Equal(t, 0.0, report.Summary.PackingEfficiency)
	assert.Equal(t, 0, report.ContainerLayout.TotalPallets)
}

func TestOptimize_QuantityConservation(t *testing.T) {
	pallet := eurPallet()
	container := fortyFoot()
	cartons := []model.Carton{
		model.NewCarton("A", 50, 30, 25, 15, 200),
		model.NewCarton("B", 40, 30, 20, 5, 10000),
		model.NewCarton("C", 119, 79, 100, 900, 7),
		model.NewCarton("D", 150, 130, 25, 10, 50), // fits nothing
		model.NewCarton("E", 55, 45, 35, 12, 1),
	}

	for _, settings := range []model.LoadSettings{
		{EnableRotation: true, ConsiderLoadBearing: true},
		{EnableRotation: true, ConsiderLoadBearing: false},
		{EnableRotation: false, ConsiderLoadBearing: true},
	} {
		opt := New(settings)
		for _, carton := range cartons {
			report := opt.Optimize(carton, pallet, container)
			assert.Equal(t, carton.Quantity,
				report.Summary.CartonsPlaced+report.Summary.RemainingCartons,
				"%s with %+v", carton.Label, settings)
		}
	}
}

func TestOptimize_EfficiencyBounds(t *testing.T) {
	pallet := eurPallet()
	container := fortyFoot()
	opt := New(model.LoadSettings{EnableRotation: true, ConsiderLoadBearing: true})

	for _, carton := range []model.Carton{
		model.NewCarton("A", 50, 30, 25, 15, 200),
		model.NewCarton("B", 40, 30, 20, 5, 9000),
		model.NewCarton("C", 119, 79, 100, 900, 7),
	} {
		report := opt.Optimize(carton, pallet, container)
		assert.GreaterOrEqual(t, report.Summary.PackingEfficiency, 0.0, carton.Label)
		assert.LessOrEqual(t, report.Summary.PackingEfficiency, 1.0, carton.Label)
		assert.GreaterOrEqual(t, report.Summary.SpaceUtilization, 0.0, carton.Label)
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	carton := model.NewCarton("Box", 50, 30, 25, 15, 200)
	opt := New(model.LoadSettings{EnableRotation: true, ConsiderLoadBearing: true})

	first := opt.Optimize(carton, eurPallet(), fortyFoot())
	second := opt.Optimize(carton, eurPallet(), fortyFoot())

	assert.Equal(t, first, second, "identical inputs must yield identical reports")
}

func TestOptimize_ZeroQuantityGuard(t *testing.T) {
	carton := model.NewCarton("Box", 50, 30, 25, 15, 0)
	opt := New(model.LoadSettings{EnableRotation: true})

	report := opt.Optimize(carton, eurPallet(), fortyFoot())

	assert.Equal(t, 0, report.Summary.CartonsPlaced)
	assert.Equal(t, 0, report.Summary.RemainingCartons)
	assert.Equal(t, 0.0, report.Summary.PackingEfficiency)
}

func TestOptimize_DemandBeyondOneContainer(t *testing.T) {
	// 10000 small cartons exceed one container; placement clips at the
	// container capacity and the summary reports the shortfall.
	carton := model.NewCarton("Bulk", 40, 30, 20, 5, 10000)
	opt := New(model.LoadSettings{EnableRotation: true, ConsiderLoadBearing: false})

	report := opt.Optimize(carton, eurPallet(), fortyFoot())
	require.NotNil(t, report.PalletLayout)

	capacity := report.ContainerLayout.TotalPallets * report.PalletLayout.TotalCartons
	assert.Equal(t, capacity, report.Summary.CartonsPlaced)
	assert.Equal(t, 10000-capacity, report.Summary.RemainingCartons)
	assert.Greater(t, report.Summary.ContainersUsed, 1)
	assert.Equal(t, report.ContainerLayout.TotalPallets, report.Summary.PalletsUsed)
}

func TestOptimize_NegativeDimensionPanics(t *testing.T) {
	carton := model.NewCarton("Broken", -50, 30, 25, 15, 10)
	opt := New(model.LoadSettings{})

	assert.Panics(t, func() {
		opt.Optimize(carton, eurPallet(), fortyFoot())
	}, "contract violations must fail loudly")
}
