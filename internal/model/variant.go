package model

// Severity labels, ordered from most to least severe. The catalog data is
// Danish, so the labels are too — they are compared as exact strings when
// filtering, and ranked via a fixed table when sorting.
const (
	SeverityCritical = "Kritisk"
	SeverityHigh     = "Høj"
	SeverityMedium   = "Mellem"
	SeverityLow      = "Lav"
)

// CostRange is a rough repair cost estimate in Danish kroner.
type CostRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Issue is one known mechanical issue for a specific vehicle variant.
// Issues are static catalog data — created once at startup, never mutated.
type Issue struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Severity   string     `json:"severity"`
	Tags       []string   `json:"tags"`
	Symptoms   []string   `json:"symptoms"`
	TypicalFix string     `json:"typicalFix"`
	CostDkk    *CostRange `json:"costDkk,omitempty"` // nil = no estimate available
}

// VehicleVariant is a catalog entry: one make/model/year-range/engine
// combination with its list of known issues. Looked up by its opaque ID
// (e.g. "saab95-a20dth") or by the (make, model, year) triple.
type VehicleVariant struct {
	ID         string  `json:"id"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	YearFrom   int     `json:"yearFrom"`
	YearTo     int     `json:"yearTo"`
	Engine     string  `json:"engine"`
	EngineCode string  `json:"engineCode"`
	Fuel       string  `json:"fuel"`
	Issues     []Issue `json:"issues"`
}

// EngineOption is one entry in the engine dropdown: the variant ID plus a
// short human label like "2.0 TiD (A20DTH)".
type EngineOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
