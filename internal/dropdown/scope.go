package dropdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bankim/content-admin/internal/core/domain"
	apperrors "github.com/bankim/content-admin/internal/core/errors"
)

// Content types served by the admin portal.
const (
	ContentTypeMortgage     = "mortgage"
	ContentTypeMortgageRefi = "mortgage-refi"
	ContentTypeCredit       = "credit"
	ContentTypeCreditRefi   = "credit-refi"
	ContentTypeMenu         = "menu"
	ContentTypeGeneral      = "general"
)

const menuActionPrefix = "app.main.action."

// ContentScope describes where the dropdowns of one content type live.
type ContentScope struct {
	ContentType string
	Screen      domain.ScreenScope
	// KeyPrefix is prepended to bare keys, e.g. a menu action number.
	KeyPrefix      string
	Separator      string
	ComponentTypes ComponentTypeFilter
}

// BaseKey turns a request key into the parent content key.
func (s ContentScope) BaseKey(key string) string {
	if s.KeyPrefix == "" || strings.HasPrefix(key, s.KeyPrefix) {
		return key
	}

	return s.KeyPrefix + key
}

// PlaceholderKey returns the placeholder key of a parent key.
func (s ContentScope) PlaceholderKey(baseKey string) string {
	return baseKey + s.separator() + suffixPlaceholder
}

// LabelKey returns the label key of a parent key.
func (s ContentScope) LabelKey(baseKey string) string {
	return baseKey + s.separator() + suffixLabel
}

func (s ContentScope) separator() string {
	if s.Separator == "" {
		return sepUnderscore
	}

	return s.Separator
}

// ScopeTable maps content types to their scopes.
type ScopeTable map[string]ContentScope

// DefaultScopes returns the screen scopes of the portal's content sections.
// When legacyText is set, mortgage dropdowns also accept text rows.
func DefaultScopes(legacyText bool) ScopeTable {
	mortgageTypes := DefaultOptionTypes
	if legacyText {
		mortgageTypes = mortgageTypes.WithText()
	}

	return ScopeTable{
		ContentTypeMortgage: {
			ContentType:    ContentTypeMortgage,
			Screen:         domain.ScopeEquals("mortgage_step1"),
			ComponentTypes: mortgageTypes,
		},
		ContentTypeMortgageRefi: {
			ContentType:    ContentTypeMortgageRefi,
			Screen:         domain.ScopePrefix("refinance_mortgage_").Or(domain.ScopeEquals("refinance_step1")),
			ComponentTypes: DefaultOptionTypes,
		},
		ContentTypeCredit: {
			ContentType:    ContentTypeCredit,
			Screen:         domain.ScopeEquals("credit_step1"),
			ComponentTypes: DefaultOptionTypes,
		},
		ContentTypeCreditRefi: {
			ContentType:    ContentTypeCreditRefi,
			Screen:         domain.ScopeEquals("refinance_credit_1"),
			ComponentTypes: DefaultOptionTypes,
		},
		ContentTypeMenu: {
			ContentType:    ContentTypeMenu,
			Screen:         domain.ScopeEquals("main_page"),
			KeyPrefix:      menuActionPrefix,
			Separator:      sepDot,
			ComponentTypes: DefaultOptionTypes,
		},
		ContentTypeGeneral: {
			ContentType:    ContentTypeGeneral,
			Screen:         domain.ScopeEquals("general"),
			ComponentTypes: DefaultOptionTypes,
		},
	}
}

// Lookup returns the scope of contentType.
func (t ScopeTable) Lookup(contentType string) (ContentScope, error) {
	scope, ok := t[contentType]
	if !ok {
		return ContentScope{}, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedContentType, contentType)
	}

	return scope, nil
}

// ContentTypes returns the registered content types sorted by name.
func (t ScopeTable) ContentTypes() []string {
	types := make([]string, 0, len(t))
	for contentType := range t {
		types = append(types, contentType)
	}

	sort.Strings(types)

	return types
}
