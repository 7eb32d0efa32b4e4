package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/poofware/pm-dashboard/internal/utils"
)

// Property is a managed building or site. It owns zero or more Units.
type Property struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	PropertyType string `json:"property_type"`
	Description  string `json:"description"`
}

// NormalizedType is the property_type used for comparisons.
func (p *Property) NormalizedType() string {
	return NormalizeType(p.PropertyType)
}

// DisplayType is the property_type as shown to the operator.
func (p *Property) DisplayType() string {
	n := NormalizeType(p.PropertyType)
	if n == "" {
		return "Other"
	}
	return cases.Title(language.English).String(n)
}

// AddressLine renders "line1, line2, city, state zip" skipping empty parts.
func (p *Property) AddressLine() string {
	return utils.JoinNonEmpty(", ",
		p.AddressLine1,
		p.AddressLine2,
		p.City,
		utils.JoinNonEmpty(" ", p.State, p.ZipCode),
	)
}

// SearchText is the lowercase concatenation of name and address fields.
func (p *Property) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		p.Name, p.AddressLine1, p.AddressLine2, p.City, p.State, p.ZipCode,
	}, " "))
}

// NormalizeType trims and lowercases a property type or type filter label.
// Inner whitespace runs collapse to one space.
func NormalizeType(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
