package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/vin-lookup/internal/apperror"
	"github.com/sakif/vin-lookup/internal/catalog"
	"github.com/sakif/vin-lookup/internal/issues"
	"github.com/sakif/vin-lookup/internal/model"
)

// CatalogHandler serves the manual-selection flow: the cascading
// make/model/year/engine option lists and the per-variant issue view.
//
// Misses (unknown make, model or year) are normal outcomes — the user simply
// hasn't finished selecting — so the list endpoints answer 200 with an empty
// array. Only an unknown variant id is a 404: that id came from a bookmark or
// a tampered URL, not from our own dropdowns.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewCatalogHandler(c *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: c, logger: logger}
}

// HandleMakes returns all makes.
//
// HTTP: GET /api/catalog/makes
func (h *CatalogHandler) HandleMakes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Makes())
}

// HandleModels returns the models for a make.
//
// HTTP: GET /api/catalog/models?make=Saab
func (h *CatalogHandler) HandleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Models(r.URL.Query().Get("make")))
}

// HandleYears returns the selectable years for a (make, model) pair.
//
// HTTP: GET /api/catalog/years?make=Saab&model=9-5
func (h *CatalogHandler) HandleYears(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.catalog.Years(q.Get("make"), q.Get("model")))
}

// HandleEngines returns the engine variants for an exact (make, model, year).
//
// HTTP: GET /api/catalog/engines?make=Saab&model=9-5&year=2011
//
// A missing or non-numeric year is treated like any other miss: empty list.
func (h *CatalogHandler) HandleEngines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeJSON(w, http.StatusOK, []model.EngineOption{})
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Engines(q.Get("make"), q.Get("model"), year))
}

// variantResponse is a variant with its issue list replaced by the filtered,
// sorted view the client asked for.
type variantResponse struct {
	ID         string        `json:"id"`
	Make       string        `json:"make"`
	Model      string        `json:"model"`
	YearFrom   int           `json:"yearFrom"`
	YearTo     int           `json:"yearTo"`
	Engine     string        `json:"engine"`
	EngineCode string        `json:"engineCode"`
	Fuel       string        `json:"fuel"`
	Issues     []model.Issue `json:"issues"`
}

// HandleVariant returns one variant with its issues filtered and sorted.
//
// HTTP: GET /api/catalog/variants/{id}?q=...&severity=...&category=...&sort=...
//
// All filter parameters are optional; omitted ones filter nothing and the
// default ordering is by severity.
func (h *CatalogHandler) HandleVariant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	v, ok := h.catalog.Variant(id)
	if !ok {
		writeError(w, apperror.NotFound("variant", id))
		return
	}

	q := r.URL.Query()
	filtered := issues.Apply(v.Issues, issues.Filters{
		Query:    q.Get("q"),
		Severity: q.Get("severity"),
		Category: q.Get("category"),
		Sort:     issues.SortKey(q.Get("sort")),
	})

	writeJSON(w, http.StatusOK, variantResponse{
		ID:         v.ID,
		Make:       v.Make,
		Model:      v.Model,
		YearFrom:   v.YearFrom,
		YearTo:     v.YearTo,
		Engine:     v.Engine,
		EngineCode: v.EngineCode,
		Fuel:       v.Fuel,
		Issues:     filtered,
	})
}
