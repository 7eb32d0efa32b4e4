package portfolio

import (
	"strings"

	"github.com/poofware/pm-dashboard/internal/models"
)

// TypeAll disables the property type filter.
const TypeAll = "All"

// TypeLabels is the closed label set offered for the type filter.
var TypeLabels = []string{TypeAll, "Residential", "Commercial", "Mixed Use", "Industrial"}

// Filter is the operator's current list filter.
type Filter struct {
	Search string
	Type   string
}

// Matches reports whether p passes both the type and the search predicate.
func (f Filter) Matches(p *models.Property) bool {
	typeFilter := models.NormalizeType(f.Type)
	if typeFilter != "" && typeFilter != models.NormalizeType(TypeAll) && p.NormalizedType() != typeFilter {
		return false
	}
	term := strings.ToLower(f.Search)
	if term == "" {
		return true
	}
	return strings.Contains(p.SearchText(), term)
}

// FilterProperties returns a new slice of the properties that pass f. The
// input is not modified.
func FilterProperties(props []models.Property, f Filter) []*models.Property {
	out := make([]*models.Property, 0, len(props))
	for i := range props {
		if f.Matches(&props[i]) {
			out = append(out, &props[i])
		}
	}
	return out
}
