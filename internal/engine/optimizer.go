// Package engine implements the pallet and container load optimization
// engine: orientation search, mixed-row layer search, layer stacking
// under height and weight limits, container-level pallet placement, and
// composition into a coordinate-annotated report.
//
// The engine is a pure, synchronous computation. It holds no mutable
// state between calls, performs no I/O, and is re-entrant: identical
// inputs always produce identical reports.
package engine

import (
	"fmt"

	"github.com/piwi3910/PalletPack/internal/model"
)

// Optimizer runs the load optimization. Settings and Tracer are
// read-only during a call.
type Optimizer struct {
	Settings model.LoadSettings
	Tracer   Tracer
}

// New creates an Optimizer with a no-op tracer.
func New(settings model.LoadSettings) *Optimizer {
	return &Optimizer{Settings: settings, Tracer: NopTracer{}}
}

// NewWithTracer creates an Optimizer that reports decisions to tracer.
func NewWithTracer(settings model.LoadSettings, tracer Tracer) *Optimizer {
	if tracer == nil {
		tracer = NopTracer{}
	}
	return &Optimizer{Settings: settings, Tracer: tracer}
}

// Optimize computes the full optimization report for one carton demand
// against one pallet and container type. Inputs are assumed to have
// passed boundary validation; dimensionally impossible values indicate a
// validation bug and panic rather than producing a silently wrong
// report. Geometric misfits are not errors: they come back as zero-total
// layouts with the whole demand remaining.
func (o *Optimizer) Optimize(carton model.Carton, pallet model.Pallet, container model.Container) model.OptimizationReport {
	checkContract(carton, pallet, container)

	layout := o.BestPalletLayout(carton, pallet)
	containerLayout := PackContainer(layout, carton, pallet, container, false)
	if layout != nil && containerLayout.TotalPallets == 0 {
		o.Tracer.DegenerateFit("container", fmt.Sprintf(
			"loaded pallet %.1fx%.1fx%.1f does not fit container %.1fx%.1fx%.1f",
			pallet.Length, pallet.Width, containerLayout.StackHeight,
			container.Length, container.Width, container.Height))
	}

	return compose(carton, pallet, container, o.Settings, layout, containerLayout)
}

// compose combines the pallet and container layouts into the report,
// clipping totals to the requested quantity and truncating pallet
// positions to the pallets actually used.
func compose(carton model.Carton, pallet model.Pallet, container model.Container,
	settings model.LoadSettings, layout *model.LayerLayout, containerLayout model.ContainerLayout) model.OptimizationReport {

	summary := model.Summary{
		CartonsRequested: carton.Quantity,
		RemainingCartons: carton.Quantity,
	}

	if layout != nil && layout.TotalCartons > 0 && carton.Quantity > 0 {
		perPallet := layout.TotalCartons
		palletsNeeded := ceilDiv(carton.Quantity, perPallet)

		palletsUsed := palletsNeeded
		if containerLayout.TotalPallets < palletsUsed {
			palletsUsed = containerLayout.TotalPallets
		}

		placed := palletsUsed * perPallet
		if placed > carton.Quantity {
			placed = carton.Quantity
		}

		summary.CartonsPlaced = placed
		summary.RemainingCartons = carton.Quantity - placed
		summary.PalletsUsed = palletsUsed
		summary.PackingEfficiency = float64(placed) / float64(carton.Quantity)
		summary.SpaceUtilization = containerLayout.ContainerUtilization
		summary.WeightUtilization = containerLayout.WeightUtilization
		if containerLayout.TotalPallets > 0 {
			summary.ContainersUsed = ceilDiv(palletsNeeded, containerLayout.TotalPallets)
		}

		if palletsUsed < len(containerLayout.Placements) {
			containerLayout.Placements = containerLayout.Placements[:palletsUsed]
		}
	}

	return model.OptimizationReport{
		Carton:          carton,
		Pallet:          pallet,
		Container:       container,
		Settings:        settings,
		PalletLayout:    layout,
		ContainerLayout: containerLayout,
		Summary:         summary,
	}
}

// checkContract panics on inputs that the validation boundary must never
// let through. These are programming errors, not data conditions.
func checkContract(carton model.Carton, pallet model.Pallet, container model.Container) {
	switch {
	case carton.Length <= 0 || carton.Width <= 0 || carton.Height <= 0:
		panic(fmt.Sprintf("engine: carton dimensions must be positive, got %.2fx%.2fx%.2f",
			carton.Length, carton.Width, carton.Height))
	case carton.Weight <= 0:
		panic(fmt.Sprintf("engine: carton weight must be positive, got %.2f", carton.Weight))
	case carton.Quantity < 0:
		panic(fmt.Sprintf("engine: carton quantity must not be negative, got %d", carton.Quantity))
	case pallet.Length <= 0 || pallet.Width <= 0 || pallet.Height <= 0:
		panic(fmt.Sprintf("engine: pallet dimensions must be positive, got %.2fx%.2fx%.2f",
			pallet.Length, pallet.Width, pallet.Height))
	case container.Length <= 0 || container.Width <= 0 || container.Height <= 0:
		panic(fmt.Sprintf("engine: container dimensions must be positive, got %.2fx%.2fx%.2f",
			container.Length, container.Width, container.Height))
	}
}

// ceilDiv returns ceil(a / b) for positive integers.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
