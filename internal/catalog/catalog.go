// Package catalog holds the static vehicle registry: which makes, models,
// years and engine variants the manual lookup flow knows about, and the
// known-issue list for each variant.
//
// IMMUTABLE PROCESS-WIDE STATE:
// The dataset is hardcoded (see data.go), assembled once by New() at startup,
// and never modified afterwards. The Catalog is injected into handlers as a
// read-only dependency — there is no ambient global, no lazy loading, and no
// teardown. Because nothing mutates, every accessor is safe to call
// concurrently.
//
// A lookup miss (unknown make, model, year or variant id) is a normal
// outcome, not an error: list accessors return an empty slice and Variant
// reports ok=false. The user simply hasn't finished selecting yet.
package catalog

import (
	"github.com/sakif/vin-lookup/internal/model"
)

// modelKey indexes per-(make, model) data. Using a comparable struct key
// instead of nested maps keeps the lookups flat and the misses obvious.
type modelKey struct {
	Make  string
	Model string
}

// Catalog is the assembled registry. All fields are private; access goes
// through the read-only methods below.
type Catalog struct {
	makes    []string
	models   map[string][]string
	years    map[modelKey][]int
	engines  map[modelKey][]model.EngineOption
	variants map[string]*model.VehicleVariant
}

// New builds the catalog from the hardcoded variant definitions.
//
// Makes and models keep their definition order (the dropdowns mirror it).
// The per-model year list is the expansion of the variant's inclusive
// [YearFrom, YearTo] range.
func New() *Catalog {
	c := &Catalog{
		models:   make(map[string][]string),
		years:    make(map[modelKey][]int),
		engines:  make(map[modelKey][]model.EngineOption),
		variants: make(map[string]*model.VehicleVariant),
	}

	for i := range variantDefs {
		def := &variantDefs[i]
		v := &def.variant

		if !contains(c.makes, v.Make) {
			c.makes = append(c.makes, v.Make)
		}
		if !contains(c.models[v.Make], v.Model) {
			c.models[v.Make] = append(c.models[v.Make], v.Model)
		}

		key := modelKey{Make: v.Make, Model: v.Model}
		if len(c.years[key]) == 0 {
			for y := v.YearFrom; y <= v.YearTo; y++ {
				c.years[key] = append(c.years[key], y)
			}
		}
		c.engines[key] = append(c.engines[key], model.EngineOption{
			ID:    v.ID,
			Label: def.label,
		})
		c.variants[v.ID] = v
	}

	return c
}

// Makes returns the known makes in catalog order.
//
// All list accessors return a fresh, never-nil slice: callers may mutate the
// result freely, and a miss serializes as [] rather than null.
func (c *Catalog) Makes() []string {
	return copyStrings(c.makes)
}

// Models returns the models for a make, or an empty slice for an unknown make.
func (c *Catalog) Models(mk string) []string {
	return copyStrings(c.models[mk])
}

// Years returns the selectable years for a (make, model) pair, or an empty
// slice if the pair is unknown.
func (c *Catalog) Years(mk, mdl string) []int {
	years := c.years[modelKey{Make: mk, Model: mdl}]
	out := make([]int, len(years))
	copy(out, years)
	return out
}

// Engines returns the engine variants selectable for exactly this
// (make, model, year). The year must be one of the fixed years returned by
// Years — it is a membership check against that list, not a range check
// against the variant's own [YearFrom, YearTo].
func (c *Catalog) Engines(mk, mdl string, year int) []model.EngineOption {
	key := modelKey{Make: mk, Model: mdl}
	if !containsInt(c.years[key], year) {
		return []model.EngineOption{}
	}
	return append([]model.EngineOption{}, c.engines[key]...)
}

// Variant looks up a variant by its opaque id. The returned pointer refers to
// shared catalog data and must be treated as read-only.
func (c *Catalog) Variant(id string) (*model.VehicleVariant, bool) {
	v, ok := c.variants[id]
	return v, ok
}

func copyStrings(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
