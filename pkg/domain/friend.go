// Package domain holds the core rules of the fuel ledger: what counts as a
// valid friend name, what counts as a valid amount, and the errors the rest
// of the system maps to HTTP responses.
package domain

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MinNameLength is the minimum friend name length in characters, counted
// after surrounding whitespace is trimmed.
const MinNameLength = 2

// CleanName trims surrounding whitespace from a friend name.
func CleanName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName cleans a friend name and enforces the minimum length.
// Invariants enforced:
//   - Name must have at least MinNameLength characters after trimming.
//
// Returns the cleaned name or ErrNameTooShort.
func ValidateName(name string) (string, error) {
	cleaned := CleanName(name)
	if utf8.RuneCountInString(cleaned) < MinNameLength {
		return "", ErrNameTooShort
	}
	return cleaned, nil
}

// ValidateAmount enforces that a liter or payment amount is a finite
// number greater than zero. NaN and infinities are rejected explicitly
// because they slip through a plain comparison.
//
// Returns ErrAmountNotPositive when the invariant is violated.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrAmountNotPositive
	}
	return nil
}
