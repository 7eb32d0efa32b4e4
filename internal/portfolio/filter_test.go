package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/testhelpers"
)

func names(props []*models.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProperties(t *testing.T) {
	props := testhelpers.SamplePortfolio().Properties
	props[1].AddressLine1 = "9 Harbor Way"

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"search lowercase", Filter{Search: "maple", Type: TypeAll}, []string{"Maple Court"}},
		{"search mixed case", Filter{Search: "MAPLE", Type: TypeAll}, []string{"Maple Court"}},
		{"type residential", Filter{Type: "Residential"}, []string{"Maple Court"}},
		{"type all lowercase", Filter{Type: "all"}, []string{"Maple Court", "Harbor Plaza"}},
		{"type empty", Filter{}, []string{"Maple Court", "Harbor Plaza"}},
		{"wrong type", Filter{Search: "maple", Type: "Commercial"}, []string{}},
		{"address match", Filter{Search: "harbor way", Type: TypeAll}, []string{"Harbor Plaza"}},
		{"zip match", Filter{Search: "62701", Type: TypeAll}, []string{"Maple Court", "Harbor Plaza"}},
		{"type case-insensitive", Filter{Type: "commercial"}, []string{"Harbor Plaza"}},
		{"unknown label", Filter{Type: "Industrial"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, names(FilterProperties(props, tc.filter)))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	props := testhelpers.SamplePortfolio().Properties
	before := append([]models.Property(nil), props...)

	out := FilterProperties(props, Filter{Search: "harbor", Type: TypeAll})
	require.Len(t, out, 1)
	require.Equal(t, before, props)
}

func TestMixedUseMatchesDespiteCasing(t *testing.T) {
	p := testhelpers.NewProperty(5, "Dockside", "mixed use")
	require.True(t, Filter{Type: "Mixed Use"}.Matches(&p))
}
