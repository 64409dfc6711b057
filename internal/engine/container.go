package engine

import "github.com/piwi3910/PalletPack/internal/model"

// PackContainer computes how many loaded pallets fit in the container
// and where each one stands. The pallet footprint orientation is an
// explicit parameter: rotated swaps the pallet length and width in the
// container grid. A caller wanting the best of both orientations calls
// twice and keeps the layout with more pallets.
//
// A nil or empty pallet layout yields an all-zero container layout.
func PackContainer(layout *model.LayerLayout, carton model.Carton, pallet model.Pallet, container model.Container, rotated bool) model.ContainerLayout {
	if layout == nil || layout.TotalCartons == 0 {
		return model.ContainerLayout{}
	}

	footL, footW := pallet.Length, pallet.Width
	if rotated {
		footL, footW = footW, footL
	}

	stackHeight := layout.StackHeight(carton, pallet)

	alongLength := int(container.Length / footL)
	alongWidth := int(container.Width / footW)
	perLayer := alongLength * alongWidth

	palletLayers := 0
	if stackHeight > 0 {
		palletLayers = int(container.Height / stackHeight)
	}
	total := perLayer * palletLayers

	// Weight bound: each loaded pallet carries a full carton stack.
	palletWeight := layout.LoadWeight(carton)
	actual := total
	if palletWeight > 0 {
		byWeight := int(container.WeightCapacity / palletWeight)
		if byWeight < actual {
			actual = byWeight
		}
	}

	result := model.ContainerLayout{
		PalletsPerLayer: perLayer,
		MaxPalletLayers: palletLayers,
		TotalPallets:    actual,
		StackHeight:     stackHeight,
	}
	if actual == 0 {
		return result
	}

	if v := container.Volume(); v > 0 {
		result.ContainerUtilization = float64(actual) * footL * footW * stackHeight / v
	}
	if container.WeightCapacity > 0 {
		result.WeightUtilization = float64(actual) * palletWeight / container.WeightCapacity
	}

	// Grid anchored at the container corner, coordinates measured from
	// the container center, each pallet centered on its cell. Cells fill
	// width-first within a layer.
	seq := 0
	for layer := 0; layer < palletLayers && seq < actual; layer++ {
		z := float64(layer) * stackHeight
		for i := 0; i < alongLength && seq < actual; i++ {
			x := -container.Length/2 + (float64(i)+0.5)*footL
			for j := 0; j < alongWidth && seq < actual; j++ {
				y := -container.Width/2 + (float64(j)+0.5)*footW
				result.Placements = append(result.Placements, model.PalletPlacement{
					X:        x,
					Y:        y,
					Z:        z,
					Layer:    layer,
					Sequence: seq,
				})
				seq++
			}
		}
	}

	return result
}
