package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PalletPack/internal/model"
)

func TestDefaultCatalogPath(t *testing.T) {
	path, err := DefaultCatalogPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "catalog.json" {
		t.Errorf("expected filename catalog.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".palletpack" {
		t.Errorf("expected parent dir .palletpack, got %s", dir)
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_catalog.json")

	cat := model.Catalog{
		Pallets: []model.PalletPreset{
			model.NewPalletPreset("Test Pallet", 120, 80, 14.5, 200, 1500),
		},
		Containers: []model.ContainerPreset{
			model.NewContainerPreset("Test Container", 589, 235, 239, 28200),
		},
	}

	if err := SaveCatalog(path, cat); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("catalog file was not created")
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(loaded.Pallets) != 1 {
		t.Errorf("expected 1 pallet preset, got %d", len(loaded.Pallets))
	}
	if loaded.Pallets[0].Name != "Test Pallet" {
		t.Errorf("expected pallet name 'Test Pallet', got %q", loaded.Pallets[0].Name)
	}
	if loaded.Pallets[0].MaxStackWeight != 1500 {
		t.Errorf("expected max stack weight 1500, got %f", loaded.Pallets[0].MaxStackWeight)
	}

	if len(loaded.Containers) != 1 {
		t.Errorf("expected 1 container preset, got %d", len(loaded.Containers))
	}
	if loaded.Containers[0].Length != 589 {
		t.Errorf("expected container length 589, got %f", loaded.Containers[0].Length)
	}
}

func TestLoadCatalogCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(cat.Pallets) == 0 {
		t.Error("expected default catalog to contain pallet presets")
	}
	if len(cat.Containers) == 0 {
		t.Error("expected default catalog to contain container presets")
	}

	// The default catalog should have been written to disk
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("expected default catalog to be saved to disk")
	}
}

func TestLoadCatalogInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestImportCatalogMergesAndSkipsDuplicates(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "import.json")

	shared := model.NewPalletPreset("Shared", 120, 80, 14.5, 200, 1500)
	existing := model.Catalog{
		Pallets: []model.PalletPreset{shared},
	}

	incoming := model.Catalog{
		Pallets: []model.PalletPreset{
			shared, // duplicate ID, must be skipped
			model.NewPalletPreset("New Pallet", 110, 110, 12, 200, 1000),
		},
		Containers: []model.ContainerPreset{
			model.NewContainerPreset("New Container", 1203, 235, 239, 26680),
		},
	}

	data, err := json.Marshal(incoming)
	if err != nil {
		t.Fatalf("failed to marshal incoming catalog: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportCatalog(path, existing)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}

	if len(merged.Pallets) != 2 {
		t.Errorf("expected 2 pallets after merge, got %d", len(merged.Pallets))
	}
	if len(merged.Containers) != 1 {
		t.Errorf("expected 1 container after merge, got %d", len(merged.Containers))
	}
}

func TestImportCatalogMissingFile(t *testing.T) {
	existing := model.DefaultCatalog()
	got, err := ImportCatalog(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Error("expected error for missing file")
	}
	if len(got.Pallets) != len(existing.Pallets) {
		t.Error("existing catalog must be returned unchanged on error")
	}
}
