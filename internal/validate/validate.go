// Package validate implements the numeric input gate that sits between
// user-entered values and the optimization engine. Values arrive as
// strings, are coerced to numbers, and are checked against the declared
// per-field ranges. The engine assumes inputs passed this gate and does
// not re-validate.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category identifies which entity a field belongs to.
type Category string

const (
	CategoryCarton    Category = "carton"
	CategoryPallet    Category = "pallet"
	CategoryContainer Category = "container"
)

// FieldRange declares the accepted range for one numeric field.
type FieldRange struct {
	Min     float64
	Max     float64
	Integer bool   // value must be a whole number
	Unit    string // for error messages
}

// fieldRanges is the authoritative range table for all user inputs.
var fieldRanges = map[Category]map[string]FieldRange{
	CategoryCarton: {
		"length":   {Min: 1, Max: 500, Unit: "cm"},
		"width":    {Min: 1, Max: 500, Unit: "cm"},
		"height":   {Min: 1, Max: 500, Unit: "cm"},
		"weight":   {Min: 0.1, Max: 1000, Unit: "kg"},
		"quantity": {Min: 1, Max: 10000, Integer: true, Unit: "pieces"},
	},
	CategoryPallet: {
		"length":           {Min: 50, Max: 200, Unit: "cm"},
		"width":            {Min: 50, Max: 200, Unit: "cm"},
		"height":           {Min: 10, Max: 50, Unit: "cm"},
		"max_stack_height": {Min: 100, Max: 300, Unit: "cm"},
		"max_stack_weight": {Min: 100, Max: 2000, Unit: "kg"},
	},
	CategoryContainer: {
		"length":          {Min: 500, Max: 1500, Unit: "cm"},
		"width":           {Min: 200, Max: 300, Unit: "cm"},
		"height":          {Min: 200, Max: 300, Unit: "cm"},
		"weight_capacity": {Min: 10000, Max: 30000, Unit: "kg"},
	},
}

// Result reports the outcome of validating a single field.
type Result struct {
	IsValid bool
	Message string
}

// Ranges returns the range declaration for a field, and whether the
// field is known for the category.
func Ranges(category Category, field string) (FieldRange, bool) {
	fields, ok := fieldRanges[category]
	if !ok {
		return FieldRange{}, false
	}
	r, ok := fields[field]
	return r, ok
}

// Field validates one field value. The value may be a plain number or a
// numeric string; anything non-numeric or out of range is rejected with
// a human-readable message.
func Field(category Category, field, value string) Result {
	r, known := Ranges(category, field)
	if !known {
		return Result{Message: fmt.Sprintf("Unknown %s field %q", category, field)}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{Message: fmt.Sprintf("%s %s is required", category, field)}
	}

	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return Result{Message: fmt.Sprintf("%s %s must be a number, got %q", category, field, value)}
	}

	if r.Integer && n != math.Trunc(n) {
		return Result{Message: fmt.Sprintf("%s %s must be a whole number, got %s", category, field, trimmed)}
	}

	if n < r.Min || n > r.Max {
		return Result{Message: fmt.Sprintf("%s %s must be between %s and %s %s",
			category, field, formatBound(r.Min), formatBound(r.Max), r.Unit)}
	}

	return Result{IsValid: true}
}

// All validates every field in the record against the category's range
// table and reports per-field errors. Fields missing from the record are
// reported as required; fields not declared for the category are
// rejected as unknown.
func All(category Category, record map[string]string) (bool, map[string]string) {
	errors := make(map[string]string)

	declared := fieldRanges[category]
	for field := range declared {
		value, present := record[field]
		if !present {
			errors[field] = fmt.Sprintf("%s %s is required", category, field)
			continue
		}
		if res := Field(category, field, value); !res.IsValid {
			errors[field] = res.Message
		}
	}
	for field := range record {
		if _, known := declared[field]; !known {
			errors[field] = fmt.Sprintf("Unknown %s field %q", category, field)
		}
	}

	return len(errors) == 0, errors
}

// Number coerces a validated field value to float64. It should only be
// called after Field/All reported the value valid.
func Number(value string) float64 {
	n, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return n
}

// formatBound renders a range bound without trailing zeros.
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
