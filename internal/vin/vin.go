// Package vin contains the VIN validation and normalization primitives.
//
// Everything in this package is a pure function: no I/O, no state, no errors.
// That is deliberate — these checks run in two places (an optimistic check in
// the browser and the authoritative check on the server), and the server-side
// half must be trivially testable and impossible to get "stuck" in.
package vin

import (
	"math"
	"strconv"
	"strings"
)

// Length is the fixed length of every VIN.
const Length = 17

// Year sanity bounds for decoded model years. 1886 is the year the first
// automobile was built — anything earlier is garbage data, not a vehicle.
const (
	MinYear = 1886
	MaxYear = 2100
)

// meaninglessValues are strings the NHTSA decoder uses as "no data" markers.
// Compared case-insensitively after trimming.
var meaninglessValues = map[string]struct{}{
	"0":              {},
	"not applicable": {},
	"not available":  {},
	"n/a":            {},
	"na":             {},
}

// Normalize prepares a raw user-supplied VIN for validation: surrounding
// whitespace is trimmed and the result is upper-cased. Validation itself
// never normalizes — callers are expected to Normalize first.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate reports whether s is a syntactically valid VIN: exactly 17
// characters, each a digit or an uppercase letter excluding I, O and Q
// (those three are banned from VINs to avoid confusion with 1 and 0).
//
// The input must already be normalized (see Normalize); a lowercase or
// padded VIN fails here by design of the contract, not by accident.
func Validate(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
			if c == 'I' || c == 'O' || c == 'Q' {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// NormalizeString cleans one raw decoder field into either a meaningful
// string or nil ("unknown").
//
// A value is unknown when it is not a string at all, trims to empty, or is
// one of the decoder's "no data" markers ("0", "Not Applicable", ...).
// Otherwise the trimmed string is returned with its original casing intact.
func NormalizeString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, bad := meaninglessValues[strings.ToLower(s)]; bad {
		return nil
	}
	return &s
}

// NormalizeYear cleans a raw decoder field into a model year, or nil.
// The field must first survive NormalizeString, then parse as a finite
// number within [MinYear, MaxYear].
func NormalizeYear(v any) *int {
	s := NormalizeString(v)
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f < MinYear || f > MaxYear {
		return nil
	}
	year := int(f)
	return &year
}
