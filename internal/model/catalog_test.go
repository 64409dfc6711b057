package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	assert.NotEmpty(t, cat.Pallets)
	assert.NotEmpty(t, cat.Containers)

	for _, p := range cat.Pallets {
		assert.Len(t, p.ID, 8)
		assert.Greater(t, p.Length, 0.0, p.Name)
		assert.Greater(t, p.MaxStackHeight, p.Height, p.Name)
		assert.Greater(t, p.MaxStackWeight, 0.0, p.Name)
	}
	for _, c := range cat.Containers {
		assert.Greater(t, c.ToContainer().Volume(), 0.0, c.Name)
		assert.Greater(t, c.WeightCapacity, 0.0, c.Name)
	}
}

func TestCatalogLookups(t *testing.T) {
	cat := DefaultCatalog()

	eur := cat.FindPalletByName("EUR-1 (120x80)")
	require.NotNil(t, eur)
	assert.Equal(t, 120.0, eur.Length)
	assert.Equal(t, 80.0, eur.Width)

	forty := cat.FindContainerByName("40ft Standard")
	require.NotNil(t, forty)
	assert.Equal(t, 1203.0, forty.Length)

	assert.Nil(t, cat.FindPalletByName("nope"))
	assert.Nil(t, cat.FindContainerByName("nope"))

	assert.Len(t, cat.PalletNames(), len(cat.Pallets))
	assert.Len(t, cat.ContainerNames(), len(cat.Containers))
}

func TestPresetConversions(t *testing.T) {
	p := NewPalletPreset("Test", 100, 90, 12, 180, 800)
	pallet := p.ToPallet()
	assert.Equal(t, "Test", pallet.Label)
	assert.Equal(t, 100.0, pallet.Length)
	assert.Equal(t, 180.0, pallet.MaxStackHeight)

	c := NewContainerPreset("Box", 600, 240, 240, 20000)
	container := c.ToContainer()
	assert.Equal(t, "Box", container.Label)
	assert.Equal(t, 20000.0, container.WeightCapacity)
}

func TestVolumeHelpers(t *testing.T) {
	c := Container{Length: 100, Width: 10, Height: 10}
	assert.Equal(t, 10000.0, c.Volume())

	p := Pallet{Length: 120, Width: 80}
	assert.Equal(t, 9600.0, p.FootprintArea())
}
