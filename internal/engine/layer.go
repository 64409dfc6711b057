package engine

import (
	"fmt"

	"github.com/piwi3910/PalletPack/internal/model"
)

// Candidate scoring weights and tie-break bonuses. The bonuses are
// heuristic constants carried over from field experience: a swapped or
// mixed-row layer of equal density is usually more stable to strap and
// easier to hand-stack, so it wins ties against the plain grid.
const (
	efficiencyWeight  = 100.0
	utilizationWeight = 100.0
	swappedBonus      = 50.0
	mixedRowBonus     = 75.0
)

// layoutScore ranks a pallet layout candidate. Carton count dominates;
// efficiency and utilization break ties between equally full layers, and
// the flat bonuses order equally scored arrangements.
func layoutScore(l model.LayerLayout) float64 {
	score := float64(l.TotalCartons) +
		efficiencyWeight*l.Efficiency +
		utilizationWeight*l.Utilization
	switch {
	case l.Kind == model.LayoutMixedRows:
		score += mixedRowBonus
	case l.Orientation.Tag == model.RotationSwapped:
		score += swappedBonus
	}
	return score
}

// PackOrientation computes the uniform-grid layer layout for a single
// carton orientation: how many cartons tile one pallet layer, how many
// layers stack under the height (and optionally weight) limits, and the
// explicit pallet-relative coordinates of every carton.
func PackOrientation(carton model.Carton, pallet model.Pallet, o model.Orientation, settings model.LoadSettings) model.LayerLayout {
	alongLength := int(pallet.Length / o.Length)
	alongWidth := int(pallet.Width / o.Width)
	perLayer := alongLength * alongWidth

	layers := maxLayers(carton, pallet, settings, perLayer, o.Height)

	layout := model.LayerLayout{
		Kind:            model.LayoutSingle,
		Orientation:     o,
		CartonsPerLayer: perLayer,
		MaxLayers:       layers,
		TotalCartons:    perLayer * layers,
		Efficiency:      layerEfficiency(perLayer, o, pallet),
		Utilization:     gridUtilization(perLayer, carton, pallet),
	}

	for layer := 0; layer < layers; layer++ {
		z := pallet.Height + float64(layer)*o.Height
		for row := 0; row < alongWidth; row++ {
			for col := 0; col < alongLength; col++ {
				layout.Placements = append(layout.Placements, model.CartonPlacement{
					X:        float64(col) * o.Length,
					Y:        float64(row) * o.Width,
					Z:        z,
					Layer:    layer,
					Row:      row,
					Col:      col,
					Rotation: o.Tag,
				})
			}
		}
	}

	return layout
}

// maxLayers bounds the layer count by the remaining stack height above
// the pallet deck, and by the stack weight limit when load bearing is
// considered. An empty layer carries no defined weight, so it forces
// zero layers outright.
func maxLayers(carton model.Carton, pallet model.Pallet, settings model.LoadSettings, perLayer int, layerHeight float64) int {
	if perLayer == 0 {
		return 0
	}

	byHeight := int((pallet.MaxStackHeight - pallet.Height) / layerHeight)
	if byHeight < 0 {
		byHeight = 0
	}
	if !settings.ConsiderLoadBearing {
		return byHeight
	}

	layerWeight := float64(perLayer) * carton.Weight
	byWeight := int(pallet.MaxStackWeight / layerWeight)
	if byWeight < byHeight {
		return byWeight
	}
	return byHeight
}

// layerEfficiency is the fraction of the pallet deck covered by one layer.
func layerEfficiency(perLayer int, o model.Orientation, pallet model.Pallet) float64 {
	area := pallet.FootprintArea()
	if area == 0 {
		return 0
	}
	return float64(perLayer) * o.Length * o.Width / area
}

// gridUtilization relates the placed carton count to the nominal
// unrotated grid. Rotated or mixed layers can exceed 1.0 when they beat
// the plain grid.
func gridUtilization(perLayer int, carton model.Carton, pallet model.Pallet) float64 {
	nominal := int(pallet.Length/carton.Length) * int(pallet.Width/carton.Width)
	if nominal == 0 {
		return 0
	}
	return float64(perLayer) / float64(nominal)
}

// BestPalletLayout evaluates all layer candidates for the carton and
// returns the winner, or nil when no candidate places a single carton.
// Candidates are scored in a fixed order (as-given, swapped, mixed rows)
// and only a strictly greater score displaces the incumbent, keeping the
// result deterministic.
func (o *Optimizer) BestPalletLayout(carton model.Carton, pallet model.Pallet) *model.LayerLayout {
	var best *model.LayerLayout
	bestScore := 0.0

	consider := func(candidate model.LayerLayout) {
		score := layoutScore(candidate)
		o.Tracer.CandidateScored(candidate, score)
		if best == nil || score > bestScore {
			c := candidate
			best = &c
			bestScore = score
		}
	}

	for _, orientation := range carton.Orientations(o.Settings.EnableRotation) {
		consider(PackOrientation(carton, pallet, orientation, o.Settings))
	}
	if o.Settings.EnableRotation {
		if mixed := PackMixedRows(carton, pallet, o.Settings); mixed != nil {
			consider(*mixed)
		}
	}

	if best == nil || best.TotalCartons == 0 {
		o.Tracer.DegenerateFit("pallet", fmt.Sprintf(
			"carton %.1fx%.1fx%.1f does not fit pallet %.1fx%.1f in any arrangement",
			carton.Length, carton.Width, carton.Height, pallet.Length, pallet.Width))
		return nil
	}
	return best
}
