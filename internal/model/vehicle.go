// Package model defines the core data types shared across the application.
//
// WHY A SEPARATE MODEL PACKAGE?
// Handlers, services, the decoder, and the catalog all need to agree on what
// a "Vehicle" or an "Issue" looks like. Putting the types in one dependency-free
// package means every layer can import them without import cycles.
//
// The structs here carry json tags because the same shapes go over the wire
// to the frontend — the Go field names follow Go conventions, the tags follow
// the API contract.
package model

// Vehicle is the normalized result of one VIN decode.
//
// NULLABLE FIELDS:
// Every field is a pointer: nil means "the decoder had no meaningful value",
// which serializes as JSON null. A present pointer always points at a
// non-empty, already-normalized value. Vehicle values are never mutated after
// the decoder builds them — each lookup produces a fresh record.
type Vehicle struct {
	Make    *string `json:"make"`
	Model   *string `json:"model"`
	Year    *int    `json:"year"`
	Engine  *string `json:"engine"`
	Fuel    *string `json:"fuel"`
	Country *string `json:"country"`
}
