package company_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/K-dessa/VHM-api-sub000/internal/domain/company"
)

func TestNormalize_LegalForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Acme B.V.", "acme bv"},
		{"Acme bv", "acme bv"},
		{"Acme Besloten Vennootschap", "acme bv"},
		{"Acme besloten vennootschap met beperkte aansprakelijkheid", "acme bv"},
		{"Philips N.V.", "philips nv"},
		{"Jansen & Zonen V.O.F.", "jansen & zonen vof"},
		{"Jansen Vennootschap onder Firma", "jansen vof"},
		{"Stichting Het Goede Doel", "stichting goede doel"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, company.Normalize(tc.in), tc.in)
	}
}

func TestNormalize_PunctuationAndWhitespace(t *testing.T) {
	t.Parallel()

	// Hyphens are removed, not replaced, so hyphenated words fuse.
	assert.Equal(t, "acmewidgets bv", company.Normalize("  Acme-Widgets,   B.V. "))
	assert.Equal(t, "", company.Normalize(""))
	assert.Equal(t, "", company.Normalize("   "))
}

func TestNormalize_StripsArticles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bakkerij bv", company.Normalize("De Bakkerij B.V."))
	assert.Equal(t, "grand hotel", company.Normalize("The Grand Hotel"))
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Acme Besloten Vennootschap",
		"De Bakkerij B.V.",
		"Stichting Vrienden van het Park",
		"KienhuisHoving N.V.",
	}
	for _, in := range inputs {
		once := company.Normalize(in)
		assert.Equal(t, once, company.Normalize(once), in)
	}
}

func TestMainName_StripsLegalForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme widgets", company.MainName("Acme Widgets B.V."))
	assert.Equal(t, "jansen", company.MainName("Jansen VOF"))
	assert.Equal(t, "", company.MainName("B.V."))
}

func TestTooGeneric(t *testing.T) {
	t.Parallel()

	assert.True(t, company.TooGeneric("BV"))
	assert.True(t, company.TooGeneric("De B.V."))
	assert.True(t, company.TooGeneric("Holding B.V."))
	assert.True(t, company.TooGeneric("Nederland Groep"))
	assert.False(t, company.TooGeneric("Acme Holding B.V."))
	assert.False(t, company.TooGeneric("KienhuisHoving"))
}

func TestQueryVariants_OrderedAndDeduplicated(t *testing.T) {
	t.Parallel()

	variants := company.QueryVariants("Acme Widgets B.V.", "")
	assert.Equal(t, []string{"Acme Widgets B.V.", "acme widgets bv", "acme widgets"}, variants)
}

func TestQueryVariants_IncludesTradeName(t *testing.T) {
	t.Parallel()

	variants := company.QueryVariants("Acme Widgets B.V.", "WidgetWorld")
	assert.Contains(t, variants, "WidgetWorld")
	assert.Contains(t, variants, "widgetworld")
	assert.LessOrEqual(t, len(variants), 8)
}

func TestQueryVariants_SkipsIdenticalTradeName(t *testing.T) {
	t.Parallel()

	withTrade := company.QueryVariants("Acme B.V.", "acme b.v.")
	without := company.QueryVariants("Acme B.V.", "")
	assert.Equal(t, without, withTrade)
}

//Personal.AI order the ending
