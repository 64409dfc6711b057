package engine

import "github.com/piwi3910/PalletPack/internal/model"

// Tracer receives notifications at the engine's decision points. It lets
// callers observe candidate scoring and degenerate-fit detection without
// the packing code carrying logging side effects. Implementations must
// treat all arguments as read-only.
type Tracer interface {
	// CandidateScored is called once per evaluated pallet layout candidate.
	CandidateScored(layout model.LayerLayout, score float64)
	// DegenerateFit is called when a packing stage produces zero totals.
	DegenerateFit(stage, detail string)
}

// NopTracer is the default Tracer; it discards all events.
type NopTracer struct{}

func (NopTracer) CandidateScored(model.LayerLayout, float64) {}
func (NopTracer) DegenerateFit(string, string)               {}
