package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankim/content-admin/internal/core/domain"
)

func newTestFallback() *FallbackProvider {
	return NewFallbackProvider(newTestClassifier(), DefaultMessages())
}

func TestDefaultMessages_CoverEveryCategory(t *testing.T) {
	table := DefaultMessages()
	require.Len(t, table, len(domain.AllCategories))

	for _, category := range domain.AllCategories {
		msg, ok := table[category]
		require.True(t, ok, "missing message for %s", category)
		assert.NotEmpty(t, msg.RU, category)
		assert.NotEmpty(t, msg.HE, category)
		assert.NotEmpty(t, msg.EN, category)
	}
}

func TestFallbackProvider_FallbackMessages(t *testing.T) {
	p := newTestFallback()

	pair := p.FallbackMessages("calculate_mortgage_city")

	assert.Equal(t, domain.ContextualMessage{
		RU: "Географические варианты не настроены",
		HE: "אפשרויות גיאוגרפיות לא מוגדרות",
		EN: "Geographic options not configured",
	}, pair[0])
	assert.Equal(t, domain.ContextualMessage{
		RU: "Добавьте варианты для этого поля",
		HE: "הוסף אפשרויות עבור שדה זה",
	}, pair[1])
}

func TestFallbackProvider_ContextualMessage(t *testing.T) {
	p := newTestFallback()
	table := DefaultMessages()

	tests := []struct {
		name  string
		key   string
		hints []string
		want  domain.Category
	}{
		{name: "credit", key: "mortgage_refinance_bank", want: domain.CategoryCredit},
		{name: "property", key: "property_ownership", want: domain.CategoryProperty},
		{name: "document", key: "passport_document", want: domain.CategoryDocument},
		{name: "hint driven", key: "field_1", hints: []string{"Город"}, want: domain.CategoryGeographic},
		{name: "generic", key: "xyz", want: domain.CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, table[tt.want], p.ContextualMessage(tt.key, tt.hints...))
			assert.Equal(t, tt.want.String(), p.CategoryTag(tt.key, tt.hints...))
		})
	}
}

func TestFallbackProvider_MissingCategoryUsesGeneric(t *testing.T) {
	custom := MessageTable{
		domain.CategoryGeneric: {RU: "нет", HE: "אין", EN: "none"},
	}
	p := NewFallbackProvider(newTestClassifier(), custom)

	assert.Equal(t, custom[domain.CategoryGeneric], p.ContextualMessage("calculate_mortgage_city"))

	empty := NewFallbackProvider(newTestClassifier(), MessageTable{})
	assert.Equal(t, genericMessage, empty.ContextualMessage("calculate_mortgage_city"))
}

func TestFallbackProvider_CopiesTable(t *testing.T) {
	table := DefaultMessages()
	p := NewFallbackProvider(newTestClassifier(), table)

	table[domain.CategoryGeographic] = domain.ContextualMessage{RU: "changed"}

	assert.Equal(t, "Geographic options not configured", p.ContextualMessage("calculate_mortgage_city").EN)
}
