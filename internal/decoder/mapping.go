package decoder

import (
	"strings"

	"github.com/sakif/vin-lookup/internal/model"
	"github.com/sakif/vin-lookup/internal/vin"
)

// mapRow turns one raw NHTSA result row into a normalized Vehicle. Every
// field goes through the vin normalizers, so a missing, empty or sentinel
// value ("0", "Not Applicable", ...) becomes nil rather than noise.
func mapRow(row map[string]any) *model.Vehicle {
	return &model.Vehicle{
		Make:    vin.NormalizeString(row["Make"]),
		Model:   vin.NormalizeString(row["Model"]),
		Year:    vin.NormalizeYear(row["ModelYear"]),
		Engine:  buildEngine(row),
		Fuel:    firstMeaningful(row, "FuelTypePrimary", "FuelTypePrimaryDesc", "FuelTypeSecondary"),
		Country: buildCountry(row),
	}
}

// buildEngine synthesizes a short human string from the engine fields, in
// fixed order: displacement, cylinder count, engine model code.
//
// Displacement prefers liters and falls back to cubic centimeters. The "L"
// unit is appended only when the raw value contains a decimal point ("2.0"
// reads as liters, a bare "1998" is passed through as-is). Present parts are
// joined with single spaces; no parts means unknown.
func buildEngine(row map[string]any) *string {
	var parts []string

	disp := vin.NormalizeString(row["DisplacementL"])
	if disp == nil {
		disp = vin.NormalizeString(row["DisplacementCC"])
	}
	if disp != nil {
		if strings.Contains(*disp, ".") {
			parts = append(parts, *disp+"L")
		} else {
			parts = append(parts, *disp)
		}
	}

	if cyl := vin.NormalizeString(row["EngineCylinders"]); cyl != nil {
		parts = append(parts, *cyl+" cyl")
	}
	if engModel := vin.NormalizeString(row["EngineModel"]); engModel != nil {
		parts = append(parts, *engModel)
	}

	// Normalize the assembled string too — it catches the all-parts-absent
	// case and any sentinel that slipped through assembly.
	return vin.NormalizeString(strings.Join(parts, " "))
}

// buildCountry resolves the region field: plant country first, then the
// manufacturer name, then the fixed display fallback — never nil.
func buildCountry(row map[string]any) *string {
	if country := firstMeaningful(row, "PlantCountry", "Manufacturer"); country != nil {
		return country
	}
	fallback := FallbackCountry
	return &fallback
}

// firstMeaningful returns the first field that normalizes to a meaningful
// value, in the given priority order.
func firstMeaningful(row map[string]any, keys ...string) *string {
	for _, key := range keys {
		if v := vin.NormalizeString(row[key]); v != nil {
			return v
		}
	}
	return nil
}
