package dropdown

import "github.com/bankim/content-admin/internal/core/domain"

// MessageTable maps each category to its placeholder message.
type MessageTable map[domain.Category]domain.ContextualMessage

// AddOptionsMessage is the call-to-action shown as the second fallback row.
var AddOptionsMessage = domain.ContextualMessage{
	RU: "Добавьте варианты для этого поля",
	HE: "הוסף אפשרויות עבור שדה זה",
}

var genericMessage = domain.ContextualMessage{
	RU: "Варианты для этого поля не настроены",
	HE: "אפשרויות עבור שדה זה לא מוגדרות",
	EN: "Options for this field not configured",
}

// DefaultMessages returns the ten-entry category message table.
func DefaultMessages() MessageTable {
	property := domain.ContextualMessage{
		RU: "Варианты недвижимости не определены",
		HE: "אפשרויות נדל\"ן לא מוגדרות",
		EN: "Property options not defined",
	}
	credit := domain.ContextualMessage{
		RU: "Кредитные варианты не определены",
		HE: "אפשרויות אשראי לא מוגדרות",
		EN: "Credit options not defined",
	}

	return MessageTable{
		domain.CategoryFilter: {
			RU: "Фильтры не настроены",
			HE: "מסננים לא מוגדרים",
			EN: "Filters not configured",
		},
		domain.CategoryProperty: property,
		domain.CategoryCredit:   credit,
		domain.CategoryGeographic: {
			RU: "Географические варианты не настроены",
			HE: "אפשרויות גיאוגרפיות לא מוגדרות",
			EN: "Geographic options not configured",
		},
		domain.CategoryTemporal: {
			RU: "Временные варианты не заданы",
			HE: "אפשרויות זמן לא מוגדרות",
			EN: "Time options not configured",
		},
		domain.CategoryBoolean: {
			RU: "Варианты выбора не установлены",
			HE: "אפשרויות בחירה לא מוגדרות",
			EN: "Selection options not set up",
		},
		domain.CategoryFinancial: {
			RU: "Финансовые варианты не настроены",
			HE: "אפשרויות פיננסיות לא מוגדרות",
			EN: "Financial options not configured",
		},
		domain.CategoryPersonal: {
			RU: "Личные варианты не заданы",
			HE: "אפשרויות אישיות לא מוגדרות",
			EN: "Personal options not set up",
		},
		domain.CategoryDocument: {
			RU: "Типы документов не настроены",
			HE: "סוגי מסמכים לא מוגדרים",
			EN: "Document types not configured",
		},
		domain.CategoryGeneric: genericMessage,
	}
}

// FallbackProvider supplies placeholder copy for dropdowns with no options.
type FallbackProvider struct {
	classifier *Classifier
	messages   MessageTable
}

// NewFallbackProvider creates a provider. The table is copied.
func NewFallbackProvider(classifier *Classifier, messages MessageTable) *FallbackProvider {
	table := make(MessageTable, len(messages))
	for category, msg := range messages {
		table[category] = msg
	}

	return &FallbackProvider{classifier: classifier, messages: table}
}

// ContextualMessage returns the category-specific message for a key.
func (p *FallbackProvider) ContextualMessage(contentKey string, hints ...string) domain.ContextualMessage {
	return p.messageFor(p.classifier.Classify(contentKey, hints...))
}

// FallbackMessages returns the category message followed by the add-options call to action.
func (p *FallbackProvider) FallbackMessages(contentKey string, hints ...string) [2]domain.ContextualMessage {
	return [2]domain.ContextualMessage{
		p.ContextualMessage(contentKey, hints...),
		AddOptionsMessage,
	}
}

// CategoryTag returns only the category name, for diagnostics.
func (p *FallbackProvider) CategoryTag(contentKey string, hints ...string) string {
	return p.classifier.Classify(contentKey, hints...).String()
}

// Classifier returns the underlying classifier.
func (p *FallbackProvider) Classifier() *Classifier {
	return p.classifier
}

func (p *FallbackProvider) messageFor(category domain.Category) domain.ContextualMessage {
	if msg, ok := p.messages[category]; ok {
		return msg
	}

	if msg, ok := p.messages[domain.CategoryGeneric]; ok {
		return msg
	}

	return genericMessage
}
