package model

import "github.com/google/uuid"

// RotationTag identifies the footprint orientation of a placed carton.
type RotationTag string

const (
	RotationNone    RotationTag = "LW" // footprint as given: length along the pallet length
	RotationSwapped RotationTag = "WL" // footprint swapped: width along the pallet length
)

// Carton represents the rectangular box being palletized.
// All dimensions are in cm, weight in kg.
type Carton struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"` // total demand the optimizer tries to satisfy
}

// NewCarton creates a Carton with a generated short ID.
func NewCarton(label string, l, w, h, weight float64, qty int) Carton {
	return Carton{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   l,
		Width:    w,
		Height:   h,
		Weight:   weight,
		Quantity: qty,
	}
}

// Volume returns the carton volume in cubic cm.
func (c Carton) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// FootprintArea returns the unrotated footprint area in square cm.
func (c Carton) FootprintArea() float64 {
	return c.Length * c.Width
}

// Orientation is a candidate carton footprint derived by optionally
// swapping length and width. Height is unchanged by rotation.
type Orientation struct {
	Length float64     `json:"length"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Tag    RotationTag `json:"tag"`
}

// Orientations returns the footprint candidates for the carton. With
// rotation disabled only the as-given footprint is returned. A square
// footprint yields no distinct swapped candidate.
func (c Carton) Orientations(enableRotation bool) []Orientation {
	normal := Orientation{Length: c.Length, Width: c.Width, Height: c.Height, Tag: RotationNone}
	if !enableRotation || c.Length == c.Width {
		return []Orientation{normal}
	}
	swapped := Orientation{Length: c.Width, Width: c.Length, Height: c.Height, Tag: RotationSwapped}
	return []Orientation{normal, swapped}
}

// Pallet represents the base onto which cartons are stacked.
// MaxStackHeight is the absolute ceiling of the loaded stack measured
// from the ground, so it includes the pallet deck height.
type Pallet struct {
	Label          string  `json:"label"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	MaxStackHeight float64 `json:"max_stack_height"`
	MaxStackWeight float64 `json:"max_stack_weight"`
}

// FootprintArea returns the pallet deck area in square cm.
func (p Pallet) FootprintArea() float64 {
	return p.Length * p.Width
}

// Container represents the outer transport vessel.
type Container struct {
	Label          string  `json:"label"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	WeightCapacity float64 `json:"weight_capacity"`
}

// Volume returns the container volume in cubic cm.
func (c Container) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// LoadSettings holds the optimizer switches.
type LoadSettings struct {
	EnableRotation      bool `json:"enable_rotation"`       // allow 90 degree footprint rotation
	ConsiderLoadBearing bool `json:"consider_load_bearing"` // bound layer count by stack weight as well as height
}

// DefaultSettings returns the settings applied to new plans.
func DefaultSettings() LoadSettings {
	return LoadSettings{
		EnableRotation:      true,
		ConsiderLoadBearing: true,
	}
}

// LayoutKind distinguishes how a pallet layer is arranged.
type LayoutKind string

const (
	LayoutSingle    LayoutKind = "single" // uniform grid of one orientation
	LayoutMixedRows LayoutKind = "mixed"  // alternating full-width rows of both orientations
)

// CartonPlacement locates one carton on the pallet. Coordinates are
// pallet-relative: X along the pallet length, Y along the width, Z from
// the ground (the first layer sits on top of the pallet deck).
type CartonPlacement struct {
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Z        float64     `json:"z"`
	Layer    int         `json:"layer"`
	Row      int         `json:"row"`
	Col      int         `json:"col"`
	Rotation RotationTag `json:"rotation"`
}

// LayerLayout describes one pallet loading pattern: a repeated layer
// arrangement stacked up to MaxLayers.
type LayerLayout struct {
	Kind            LayoutKind        `json:"kind"`
	Orientation     Orientation       `json:"orientation"`            // single layouts: the chosen footprint
	PlainRows       int               `json:"plain_rows,omitempty"`   // mixed layouts: rows of as-given cartons
	SwappedRows     int               `json:"swapped_rows,omitempty"` // mixed layouts: rows of swapped cartons
	CartonsPerLayer int               `json:"cartons_per_layer"`
	MaxLayers       int               `json:"max_layers"`
	TotalCartons    int               `json:"total_cartons"`
	Placements      []CartonPlacement `json:"placements"`
	Efficiency      float64           `json:"efficiency"`  // fraction of the pallet deck area covered per layer
	Utilization     float64           `json:"utilization"` // placed cartons relative to the nominal unrotated grid
}

// LayerWeight returns the weight of one full layer in kg.
func (l LayerLayout) LayerWeight(c Carton) float64 {
	return float64(l.CartonsPerLayer) * c.Weight
}

// LoadWeight returns the weight of the full carton stack in kg,
// excluding the pallet itself.
func (l LayerLayout) LoadWeight(c Carton) float64 {
	return float64(l.TotalCartons) * c.Weight
}

// StackHeight returns the loaded pallet height from the ground in cm.
func (l LayerLayout) StackHeight(c Carton, p Pallet) float64 {
	return p.Height + float64(l.MaxLayers)*c.Height
}

// PalletPlacement locates one loaded pallet inside the container.
// X and Y are measured from the container center, Z from the floor.
type PalletPlacement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Layer    int     `json:"layer"`
	Sequence int     `json:"sequence"`
}

// ContainerLayout describes how loaded pallets fill one container.
// TotalPallets is bounded by both geometry and the container weight
// capacity, so it can be lower than PalletsPerLayer * MaxPalletLayers.
type ContainerLayout struct {
	PalletsPerLayer      int               `json:"pallets_per_layer"`
	MaxPalletLayers      int               `json:"max_pallet_layers"`
	TotalPallets         int               `json:"total_pallets"`
	StackHeight          float64           `json:"stack_height"` // height of one loaded pallet in cm
	Placements           []PalletPlacement `json:"placements"`
	ContainerUtilization float64           `json:"container_utilization"` // volume fraction consumed by the load
	WeightUtilization    float64           `json:"weight_utilization"`    // weight capacity fraction consumed
}

// Summary aggregates the headline numbers of an optimization run.
// Fractions are in the 0..1 range; use the percent helpers for display.
type Summary struct {
	CartonsRequested  int     `json:"cartons_requested"`
	CartonsPlaced     int     `json:"cartons_placed"`
	RemainingCartons  int     `json:"remaining_cartons"`
	PalletsUsed       int     `json:"pallets_used"`
	ContainersUsed    int     `json:"containers_used"`
	PackingEfficiency float64 `json:"packing_efficiency"`
	SpaceUtilization  float64 `json:"space_utilization"`
	WeightUtilization float64 `json:"weight_utilization"`
}

// EfficiencyPercent returns the packing efficiency as a percentage.
func (s Summary) EfficiencyPercent() float64 {
	return s.PackingEfficiency * 100.0
}

// SpaceUtilizationPercent returns the space utilization as a percentage.
func (s Summary) SpaceUtilizationPercent() float64 {
	return s.SpaceUtilization * 100.0
}

// OptimizationReport is the complete result of one optimization pass:
// the input echo, the derived pallet and container layouts, and the
// summary. PalletLayout is nil when no carton fits the pallet at all.
type OptimizationReport struct {
	Carton          Carton          `json:"carton"`
	Pallet          Pallet          `json:"pallet"`
	Container       Container       `json:"container"`
	Settings        LoadSettings    `json:"settings"`
	PalletLayout    *LayerLayout    `json:"pallet_layout,omitempty"`
	ContainerLayout ContainerLayout `json:"container_layout"`
	Summary         Summary         `json:"summary"`
}

// Plan ties everything together for save/load.
type Plan struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Carton    Carton              `json:"carton"`
	Pallet    Pallet              `json:"pallet"`
	Container Container           `json:"container"`
	Settings  LoadSettings        `json:"settings"`
	Report    *OptimizationReport `json:"report,omitempty"`
}

// NewPlan creates an empty plan with default equipment from the
// built-in catalog and default settings.
func NewPlan() Plan {
	catalog := DefaultCatalog()
	return Plan{
		ID:        uuid.New().String()[:8],
		Name:      "Untitled",
		Pallet:    catalog.Pallets[0].ToPallet(),
		Container: catalog.Containers[0].ToContainer(),
		Settings:  DefaultSettings(),
	}
}
