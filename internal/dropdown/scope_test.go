package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankim/content-admin/internal/core/domain"
	apperrors "github.com/bankim/content-admin/internal/core/errors"
)

func TestDefaultScopes_Lookup(t *testing.T) {
	scopes := DefaultScopes(false)

	tests := []struct {
		contentType string
		accepts     []string
		rejects     []string
	}{
		{contentType: ContentTypeMortgage, accepts: []string{"mortgage_step1"}, rejects: []string{"mortgage_step2", "credit_step1"}},
		{contentType: ContentTypeMortgageRefi, accepts: []string{"refinance_mortgage_1", "refinance_mortgage_4", "refinance_step1"}, rejects: []string{"refinance_credit_1"}},
		{contentType: ContentTypeCredit, accepts: []string{"credit_step1"}, rejects: []string{"credit_step2"}},
		{contentType: ContentTypeCreditRefi, accepts: []string{"refinance_credit_1"}, rejects: []string{"refinance_credit_2"}},
		{contentType: ContentTypeMenu, accepts: []string{"main_page"}, rejects: []string{"general"}},
		{contentType: ContentTypeGeneral, accepts: []string{"general"}, rejects: []string{"main_page"}},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			scope, err := scopes.Lookup(tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, scope.ContentType)

			for _, loc := range tt.accepts {
				assert.True(t, scope.Screen.Matches(loc), loc)
			}

			for _, loc := range tt.rejects {
				assert.False(t, scope.Screen.Matches(loc), loc)
			}
		})
	}
}

func TestScopeTable_LookupUnsupported(t *testing.T) {
	_, err := DefaultScopes(false).Lookup("insurance")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedContentType)
}

func TestScopeTable_ContentTypes(t *testing.T) {
	assert.Equal(t, []string{
		ContentTypeCredit,
		ContentTypeCreditRefi,
		ContentTypeGeneral,
		ContentTypeMenu,
		ContentTypeMortgage,
		ContentTypeMortgageRefi,
	}, DefaultScopes(false).ContentTypes())
}

func TestDefaultScopes_LegacyText(t *testing.T) {
	plain, err := DefaultScopes(false).Lookup(ContentTypeMortgage)
	require.NoError(t, err)
	assert.False(t, plain.ComponentTypes.Contains(domain.ComponentText))

	legacy, err := DefaultScopes(true).Lookup(ContentTypeMortgage)
	require.NoError(t, err)
	assert.True(t, legacy.ComponentTypes.Contains(domain.ComponentText))

	credit, err := DefaultScopes(true).Lookup(ContentTypeCredit)
	require.NoError(t, err)
	assert.False(t, credit.ComponentTypes.Contains(domain.ComponentText))
}

func TestContentScope_Keys(t *testing.T) {
	scopes := DefaultScopes(false)

	mortgage, err := scopes.Lookup(ContentTypeMortgage)
	require.NoError(t, err)
	assert.Equal(t, "bank", mortgage.BaseKey("bank"))
	assert.Equal(t, "bank_ph", mortgage.PlaceholderKey("bank"))
	assert.Equal(t, "bank_label", mortgage.LabelKey("bank"))

	menu, err := scopes.Lookup(ContentTypeMenu)
	require.NoError(t, err)
	assert.Equal(t, "app.main.action.3", menu.BaseKey("3"))
	assert.Equal(t, "app.main.action.3", menu.BaseKey("app.main.action.3"))
	assert.Equal(t, "app.main.action.3.ph", menu.PlaceholderKey("app.main.action.3"))
	assert.Equal(t, "app.main.action.3.label", menu.LabelKey("app.main.action.3"))
}
