package domain

// Category is the semantic tag inferred for a dropdown content key.
type Category string

// Dropdown categories.
const (
	CategoryFilter     Category = "filter"
	CategoryProperty   Category = "property"
	CategoryCredit     Category = "credit"
	CategoryGeographic Category = "geographic"
	CategoryTemporal   Category = "temporal"
	CategoryBoolean    Category = "boolean"
	CategoryFinancial  Category = "financial"
	CategoryPersonal   Category = "personal"
	CategoryDocument   Category = "document"
	CategoryGeneric    Category = "generic"
)

// AllCategories lists every category once.
var AllCategories = []Category{
	CategoryFilter,
	CategoryProperty,
	CategoryCredit,
	CategoryGeographic,
	CategoryTemporal,
	CategoryBoolean,
	CategoryFinancial,
	CategoryPersonal,
	CategoryDocument,
	CategoryGeneric,
}

func (c Category) String() string {
	return string(c)
}

// ContextualMessage is locale-tagged placeholder copy shown when a dropdown has no options.
type ContextualMessage struct {
	RU string `json:"ru"`
	HE string `json:"he"`
	EN string `json:"en,omitempty"`
}

// NamingConvention describes how an option key is derived from its parent key.
type NamingConvention string

// Option naming conventions.
const (
	ConventionNumeric     NamingConvention = "numeric"
	ConventionDescriptive NamingConvention = "descriptive"
)

// OptionRecord is one selectable choice belonging to a parent content key.
type OptionRecord struct {
	ID             int64            `json:"id"`
	ContentKey     string           `json:"content_key"`
	ComponentType  string           `json:"component_type"`
	ScreenLocation string           `json:"screen_location"`
	Order          int              `json:"order"`
	Convention     NamingConvention `json:"convention"`
	Translations   Translations     `json:"translations"`
}
