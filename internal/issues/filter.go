// Package issues filters and sorts a variant's known-issue list according to
// the controls on the lookup page (free-text search, severity, category,
// sort key).
//
// The whole package is synchronous, allocation-only logic: inputs are
// immutable catalog data, the output is a freshly allocated slice, and no
// error can occur — every input combination produces a (possibly empty)
// result. That makes it safe to call concurrently from request handlers.
package issues

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sakif/vin-lookup/internal/model"
)

// SortKey selects the ordering of the filtered result.
type SortKey string

const (
	SortSeverity SortKey = "severity"
	SortPrice    SortKey = "price"
	SortAlpha    SortKey = "alphabetical"
)

// All is the severity/category value that disables that filter.
const All = "all"

// Filters is the transient UI filter state for one render. It is
// reconstructed from query parameters on every request and never persisted.
type Filters struct {
	Query    string
	Severity string
	Category string
	Sort     SortKey
}

// CategoryKeywords maps each UI category to the tag keywords it requires.
// An issue passes a category when it shares at least one tag with the set
// (OR semantics). An empty set — "all", or any category not in this table —
// passes everything. Plain data: adding a category is a table edit, not a
// code change.
var CategoryKeywords = map[string][]string{
	All:           {},
	"olie":        {"olie"},
	"udstoedning": {"udstødning", "røg"},
	"elektrisk":   {"elektrisk", "sensor", "motorlampe"},
	"koeling":     {"kølervæske", "temperatur"},
	"braendstof":  {"brændstof", "start", "tomgang"},
	"drivline":    {"gear", "vibration", "lyde"},
}

// severityRank orders severities for sorting. Anything outside the known
// labels ranks last.
var severityRank = map[string]int{
	model.SeverityCritical: 0,
	model.SeverityHigh:     1,
	model.SeverityMedium:   2,
	model.SeverityLow:      3,
}

const unrankedSeverity = 9

// searchNormalizer lower-cases happen first, so only the lowercase vowel
// forms need replacing.
var searchNormalizer = strings.NewReplacer("å", "aa", "æ", "ae", "ø", "oe")

// Apply runs the fixed filter pipeline — severity, category, free text —
// and then stable-sorts the survivors by the selected key (severity when the
// key is empty or unknown). The input slice is never modified.
func Apply(list []model.Issue, f Filters) []model.Issue {
	keywords := CategoryKeywords[f.Category]
	query := normalizeSearch(strings.TrimSpace(f.Query))

	out := make([]model.Issue, 0, len(list))
	for _, iss := range list {
		if f.Severity != "" && f.Severity != All && iss.Severity != f.Severity {
			continue
		}
		if len(keywords) > 0 && !hasAnyTag(iss.Tags, keywords) {
			continue
		}
		if query != "" && !strings.Contains(normalizeSearch(haystack(iss)), query) {
			continue
		}
		out = append(out, iss)
	}

	switch f.Sort {
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return minCost(out[i]) < minCost(out[j])
		})
	case SortAlpha:
		// Danish collation so æ/ø/å sort where a Danish reader expects them.
		// A collator is not safe for concurrent use, hence one per call.
		col := collate.New(language.Danish)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Title, out[j].Title) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return rank(out[i].Severity) < rank(out[j].Severity)
		})
	}

	return out
}

// normalizeSearch folds a string for substring matching: lower-case plus the
// ASCII digraphs for the three Danish vowels (å→aa, æ→ae, ø→oe). Applied to
// both the query and the haystack so "traek" finds "træk" and vice versa.
func normalizeSearch(s string) string {
	return searchNormalizer.Replace(strings.ToLower(s))
}

// haystack builds the searchable text for one issue: title, severity label,
// all symptoms, the fix description and all tags.
func haystack(iss model.Issue) string {
	parts := make([]string, 0, 3+len(iss.Symptoms)+len(iss.Tags))
	parts = append(parts, iss.Title, iss.Severity)
	parts = append(parts, iss.Symptoms...)
	parts = append(parts, iss.TypicalFix)
	parts = append(parts, iss.Tags...)
	return strings.Join(parts, " | ")
}

func hasAnyTag(tags, keywords []string) bool {
	for _, tag := range tags {
		for _, kw := range keywords {
			if tag == kw {
				return true
			}
		}
	}
	return false
}

func rank(severity string) int {
	if r, ok := severityRank[severity]; ok {
		return r
	}
	return unrankedSeverity
}

// minCost is the sort key for price ordering: the low end of the cost range,
// or "infinitely expensive" when no estimate exists so costless issues land
// at the end.
func minCost(iss model.Issue) int {
	if iss.CostDkk == nil {
		return math.MaxInt
	}
	return iss.CostDkk.Low
}
