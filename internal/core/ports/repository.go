// Package ports provides domain-centric interfaces for external dependencies.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern,
// allowing business logic to remain independent of infrastructure concerns.
package ports

import (
	"context"

	"github.com/bankim/content-admin/internal/core/domain"
)

// OptionSource reads candidate dropdown option rows.
type OptionSource interface {
	ListOptionCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.ContentItem, error)
}

// ContentReader provides read access to content items.
type ContentReader interface {
	GetItemByID(ctx context.Context, id int64) (*domain.ContentItem, error)
	GetItemsByKeys(ctx context.Context, scope domain.ScreenScope, keys []string) ([]domain.ContentItem, error)
	ListLanguages(ctx context.Context) ([]domain.Language, error)
}

// TranslationWriter updates translated values of content items.
type TranslationWriter interface {
	UpsertTranslation(ctx context.Context, itemID int64, lang, value string) error
}

// ContentStore combines every content operation the admin API needs.
type ContentStore interface {
	OptionSource
	ContentReader
	TranslationWriter
}
