// Package validate implements the field validation used by the CRUD forms:
// an ordered rule list per field, with the first failing rule's message
// recorded for inline display.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule checks a single field value and returns an error message, or ""
// when the value passes.
type Rule func(value string) string

// RuleSet maps a field name to its ordered rule checks.
type RuleSet map[string][]Rule

// Result holds the outcome of one Validate call.
type Result struct {
	OK     bool
	Errors map[string]string // field -> first failing message
}

// Validate runs every field's rules in order against values. Fields absent
// from values are checked with the empty string.
func (rs RuleSet) Validate(values map[string]string) Result {
	res := Result{OK: true, Errors: make(map[string]string)}
	for field, rules := range rs {
		v := values[field]
		for _, rule := range rules {
			if msg := rule(v); msg != "" {
				res.OK = false
				res.Errors[field] = msg
				break
			}
		}
	}
	return res
}

// Required fails on empty or whitespace-only input.
func Required(label string) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return label + " is required"
		}
		return ""
	}
}

// Number fails when the input does not parse as a number.
func Number(label string) Rule {
	return func(v string) string {
		if v == "" {
			return ""
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return label + " must be a number"
		}
		return ""
	}
}

// Min fails when the input parses as a number below min. Non-numeric input
// passes; pair with Number to reject it.
func Min(label string, min float64) Rule {
	return func(v string) string {
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return ""
		}
		if n < min {
			return fmt.Sprintf("%s must be at least %g", label, min)
		}
		return ""
	}
}

// OneOf fails when the input is not one of the allowed values.
func OneOf(label string, allowed ...string) Rule {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return label + " must be one of " + strings.Join(allowed, ", ")
	}
}
