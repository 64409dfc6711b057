package engine

import "github.com/piwi3910/PalletPack/internal/model"

// PackMixedRows searches layers built from two kinds of full-width rows:
// plain rows of as-given cartons (each consuming carton.Width of the
// pallet width) and swapped rows of rotated cartons (each consuming
// carton.Length). A single orientation wastes the remainder of the
// perpendicular axis when its extent does not divide the pallet width
// evenly; reserving some of that axis for rows of the other orientation
// can consume the remainder.
//
// The search tries every swapped-row count from zero up to the most that
// fit, fills the leftover width with plain rows, and keeps the densest
// combination. It returns nil when nothing fits, and also when the best
// combination uses only one row kind, since that degenerates to a pure
// orientation already covered by PackOrientation.
func PackMixedRows(carton model.Carton, pallet model.Pallet, settings model.LoadSettings) *model.LayerLayout {
	perPlainRow := int(pallet.Length / carton.Length)
	perSwappedRow := int(pallet.Length / carton.Width)
	maxSwappedRows := int(pallet.Width / carton.Length)

	bestPlain, bestSwapped, bestPerLayer := 0, 0, 0
	for swapped := 0; swapped <= maxSwappedRows; swapped++ {
		leftover := pallet.Width - float64(swapped)*carton.Length
		plain := int(leftover / carton.Width)
		perLayer := plain*perPlainRow + swapped*perSwappedRow
		if perLayer > bestPerLayer {
			bestPlain, bestSwapped, bestPerLayer = plain, swapped, perLayer
		}
	}

	if bestPerLayer == 0 || bestPlain == 0 || bestSwapped == 0 {
		return nil
	}

	layers := maxLayers(carton, pallet, settings, bestPerLayer, carton.Height)

	layout := model.LayerLayout{
		Kind:            model.LayoutMixedRows,
		Orientation:     model.Orientation{Length: carton.Length, Width: carton.Width, Height: carton.Height, Tag: model.RotationNone},
		PlainRows:       bestPlain,
		SwappedRows:     bestSwapped,
		CartonsPerLayer: bestPerLayer,
		MaxLayers:       layers,
		TotalCartons:    bestPerLayer * layers,
		Efficiency:      float64(bestPerLayer) * carton.FootprintArea() / pallet.FootprintArea(),
		Utilization:     gridUtilization(bestPerLayer, carton, pallet),
	}

	// Rows are laid back-to-front: all swapped rows first, then the plain
	// rows, each row filled left-to-right along the pallet length.
	for layer := 0; layer < layers; layer++ {
		z := pallet.Height + float64(layer)*carton.Height
		y := 0.0
		row := 0
		for r := 0; r < bestSwapped; r++ {
			for col := 0; col < perSwappedRow; col++ {
				layout.Placements = append(layout.Placements, model.CartonPlacement{
					X:        float64(col) * carton.Width,
					Y:        y,
					Z:        z,
					Layer:    layer,
					Row:      row,
					Col:      col,
					Rotation: model.RotationSwapped,
				})
			}
			y += carton.Length
			row++
		}
		for r := 0; r < bestPlain; r++ {
			for col := 0; col < perPlainRow; col++ {
				layout.Placements = append(layout.Placements, model.CartonPlacement{
					X:        float64(col) * carton.Length,
					Y:        y,
					Z:        z,
					Layer:    layer,
					Row:      row,
					Col:      col,
					Rotation: model.RotationNone,
				})
			}
			y += carton.Width
			row++
		}
	}

	return &layout
}
