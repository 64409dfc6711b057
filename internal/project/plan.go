package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PalletPack/internal/model"
)

// PlanFileExt is the file extension for saved plan files.
const PlanFileExt = ".ppack.json"

// DefaultPlansDir returns the default directory for saved plans,
// ~/.palletpack/plans.
func DefaultPlansDir() string {
	return filepath.Join(DefaultConfigDir(), "plans")
}

// SavePlan writes a plan to the specified JSON file, creating parent
// directories if they do not exist.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a plan from the specified JSON file.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, err
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, fmt.Errorf("invalid plan file %s: %w", path, err)
	}
	if plan.ID == "" {
		return model.Plan{}, fmt.Errorf("invalid plan file %s: missing id", path)
	}
	return plan, nil
}

// ListPlans returns the paths of all plan files in the given directory,
// sorted by the order returned from the filesystem. A missing directory
// is not an error; it returns an empty list.
func ListPlans(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var plans []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), PlanFileExt) {
			plans = append(plans, filepath.Join(dir, e.Name()))
		}
	}
	return plans, nil
}

// PlanPath builds the default path for a named plan. The plan name is
// sanitized to produce a filesystem-safe file name.
func PlanPath(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if safe == "" {
		safe = "untitled"
	}
	return filepath.Join(DefaultPlansDir(), safe+PlanFileExt)
}
