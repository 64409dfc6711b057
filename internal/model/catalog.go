package model

import "github.com/google/uuid"

// PalletPreset represents a reusable pallet definition.
type PalletPreset struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	MaxStackHeight float64 `json:"max_stack_height"`
	MaxStackWeight float64 `json:"max_stack_weight"`
}

// NewPalletPreset creates a PalletPreset with a generated ID.
func NewPalletPreset(name string, l, w, h, maxStackHeight, maxStackWeight float64) PalletPreset {
	return PalletPreset{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Length:         l,
		Width:          w,
		Height:         h,
		MaxStackHeight: maxStackHeight,
		MaxStackWeight: maxStackWeight,
	}
}

// ToPallet converts the preset into a Pallet value.
func (pp PalletPreset) ToPallet() Pallet {
	return Pallet{
		Label:          pp.Name,
		Length:         pp.Length,
		Width:          pp.Width,
		Height:         pp.Height,
		MaxStackHeight: pp.MaxStackHeight,
		MaxStackWeight: pp.MaxStackWeight,
	}
}

// ContainerPreset represents a reusable container definition.
type ContainerPreset struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	WeightCapacity float64 `json:"weight_capacity"`
}

// NewContainerPreset creates a ContainerPreset with a generated ID.
func NewContainerPreset(name string, l, w, h, capacity float64) ContainerPreset {
	return ContainerPreset{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Length:         l,
		Width:          w,
		Height:         h,
		WeightCapacity: capacity,
	}
}

// ToContainer converts the preset into a Container value.
func (cp ContainerPreset) ToContainer() Container {
	return Container{
		Label:          cp.Name,
		Length:         cp.Length,
		Width:          cp.Width,
		Height:         cp.Height,
		WeightCapacity: cp.WeightCapacity,
	}
}

// Catalog holds the user's saved pallet and container presets.
type Catalog struct {
	Pallets    []PalletPreset    `json:"pallets"`
	Containers []ContainerPreset `json:"containers"`
}

// DefaultCatalog returns a catalog populated with common equipment.
// Dimensions in cm, weights in kg.
func DefaultCatalog() Catalog {
	return Catalog{
		Pallets: []PalletPreset{
			NewPalletPreset("EUR-1 (120x80)", 120, 80, 14.5, 200, 1500),
			NewPalletPreset("EUR-2 (120x100)", 120, 100, 14.5, 200, 1500),
			NewPalletPreset("GMA (122x102)", 122, 102, 14.5, 200, 1130),
			NewPalletPreset("Asia (110x110)", 110, 110, 12, 200, 1000),
			NewPalletPreset("Half EUR (80x60)", 80, 60, 14.5, 180, 500),
		},
		Containers: []ContainerPreset{
			NewContainerPreset("20ft Standard", 589, 235, 239, 28200),
			NewContainerPreset("40ft Standard", 1203, 235, 239, 26680),
			NewContainerPreset("40ft High Cube", 1203, 235, 269, 26460),
		},
	}
}

// FindPalletByName returns a pointer to the first pallet preset with the
// given name, or nil.
func (cat *Catalog) FindPalletByName(name string) *PalletPreset {
	for i := range cat.Pallets {
		if cat.Pallets[i].Name == name {
			return &cat.Pallets[i]
		}
	}
	return nil
}

// FindContainerByName returns a pointer to the first container preset
// with the given name, or nil.
func (cat *Catalog) FindContainerByName(name string) *ContainerPreset {
	for i := range cat.Containers {
		if cat.Containers[i].Name == name {
			return &cat.Containers[i]
		}
	}
	return nil
}

// PalletNames returns the preset names for selection lists.
func (cat *Catalog) PalletNames() []string {
	names := make([]string, len(cat.Pallets))
	for i, p := range cat.Pallets {
		names[i] = p.Name
	}
	return names
}

// ContainerNames returns the preset names for selection lists.
func (cat *Catalog) ContainerNames() []string {
	names := make([]string, len(cat.Containers))
	for i, c := range cat.Containers {
		names[i] = c.Name
	}
	return names
}
