package dropdown

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankim/content-admin/internal/core/domain"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultRules(), nil)
}

func TestClassifier_Classify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		key   string
		hints []string
		want  domain.Category
	}{
		{name: "city is geographic", key: "calculate_mortgage_city", want: domain.CategoryGeographic},
		{name: "citizenship is geographic", key: "borrowers_citizenship", want: domain.CategoryGeographic},
		{name: "bank falls through to credit", key: "mortgage_refinance_bank", want: domain.CategoryCredit},
		{name: "filter beats type", key: "search_filter_type", want: domain.CategoryFilter},
		{name: "ownership is property", key: "property_ownership", want: domain.CategoryProperty},
		{name: "credit type before generic type", key: "credit_type", want: domain.CategoryCredit},
		{name: "mortgage type", key: "calculate_mortgage_type", want: domain.CategoryCredit},
		{name: "plain type is property", key: "apartment_type", want: domain.CategoryProperty},
		{name: "birth date is temporal", key: "birth_date", want: domain.CategoryTemporal},
		{name: "has prefix is boolean", key: "has_children", want: domain.CategoryBoolean},
		{name: "monthly payment is financial", key: "monthly_payment", want: domain.CategoryFinancial},
		{name: "family status is personal", key: "family_status", want: domain.CategoryPersonal},
		{name: "passport is document", key: "passport_document", want: domain.CategoryDocument},
		{name: "loan purpose is credit", key: "loan_purpose", want: domain.CategoryCredit},
		{name: "filter precedence", key: "calculate_mortgage_type_filter", want: domain.CategoryFilter},
		{name: "ownership specificity", key: "calculate_mortgage_property_ownership", want: domain.CategoryProperty},
		{name: "unrecognized field is generic", key: "xyz_totally_unrecognized_field", want: domain.CategoryGeneric},
		{name: "unmatched key is generic", key: "xyz", want: domain.CategoryGeneric},
		{name: "empty input is generic", key: "", want: domain.CategoryGeneric},
		{name: "russian hint decides", key: "field_1", hints: []string{"Город", ""}, want: domain.CategoryGeographic},
		{name: "hebrew hint decides", key: "field_1", hints: []string{"", "עיר"}, want: domain.CategoryGeographic},
		{name: "key match is case insensitive", key: "Calculate_Mortgage_CITY", want: domain.CategoryGeographic},
		{name: "cyrillic hint is case insensitive", key: "field_2", hints: []string{"ГРАЖДАНСТВО"}, want: domain.CategoryGeographic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.key, tt.hints...))
		})
	}
}

func TestClassifier_FirstMatchWins(t *testing.T) {
	// Matches both the filter and the property_general patterns.
	c := newTestClassifier()
	assert.Equal(t, domain.CategoryFilter, c.Classify("sort_property_type"))
}

func TestClassifier_CustomRules(t *testing.T) {
	first, err := NewRule("first", domain.CategoryDocument, `alpha`)
	require.NoError(t, err)

	second, err := NewRule("second", domain.CategoryTemporal, `alpha|beta`)
	require.NoError(t, err)

	c := NewClassifier(NewRuleSet(first, second), nil)

	assert.Equal(t, domain.CategoryDocument, c.Classify("ALPHA"))
	assert.Equal(t, domain.CategoryTemporal, c.Classify("beta"))
	assert.Equal(t, domain.CategoryGeneric, c.Classify("gamma"), "no catch-all rule still yields generic")
}

func TestNewRule_InvalidPattern(t *testing.T) {
	_, err := NewRule("broken", domain.CategoryGeneric, `(`)
	assert.Error(t, err)
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.Equal(t, 12, rules.Len())

	list := rules.Rules()
	assert.Equal(t, "filter", list[0].Name)
	assert.Equal(t, domain.CategoryGeneric, list[len(list)-1].Category)

	list[0].Name = "mutated"
	assert.Equal(t, "filter", rules.Rules()[0].Name, "Rules returns a copy")
}

func TestSearchText(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		hints []string
		want  string
	}{
		{name: "key only", key: "City_Select", want: "city_select"},
		{name: "joins non-empty hints", key: "k", hints: []string{"Город", "", "עיר"}, want: "k город עיר"},
		{name: "empty key", key: "", hints: []string{"A"}, want: "a"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchText(tt.key, tt.hints...))
		})
	}
}

func TestClassifier_ConcurrentUse(t *testing.T) {
	c := newTestClassifier()

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 50; j++ {
				if got := c.Classify("calculate_mortgage_city"); got != domain.CategoryGeographic {
					t.Errorf("Classify() = %s, want geographic", got)
				}
			}
		}()
	}

	wg.Wait()
}

func TestClassifier_TotalAndIdempotent(t *testing.T) {
	c := newTestClassifier()

	valid := make(map[domain.Category]bool, len(domain.AllCategories))
	for _, category := range domain.AllCategories {
		valid[category] = true
	}

	inputs := []string{"a", "_", "...", "123", "app.main.action.1", "שלום", "Привет", "💳", "key_option_10"}

	for _, in := range inputs {
		first := c.Classify(in)
		assert.True(t, valid[first], "unexpected category %q for %q", first, in)
		assert.Equal(t, first, c.Classify(in), "classification of %q is not stable", in)
	}
}
