package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/bankim/content-admin/internal/core/domain"
	"github.com/bankim/content-admin/internal/core/ports"
)

var _ ports.ContentStore = (*ContentStore)(nil)

// ContentStore is a thread-safe in-memory implementation of ports.ContentStore.
type ContentStore struct {
	mu        sync.RWMutex
	items     map[int64]domain.ContentItem
	languages []domain.Language
	nextID    int64

	// ListOptionCandidatesFn allows overriding ListOptionCandidates behavior.
	ListOptionCandidatesFn func(ctx context.Context, q domain.CandidateQuery) ([]domain.ContentItem, error)

	// GetItemsByKeysFn allows overriding GetItemsByKeys behavior.
	GetItemsByKeysFn func(ctx context.Context, scope domain.ScreenScope, keys []string) ([]domain.ContentItem, error)

	// UpsertTranslationFn allows overriding UpsertTranslation behavior.
	UpsertTranslationFn func(ctx context.Context, itemID int64, lang, value string) error
}

// NewContentStore creates a new mock content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		items: make(map[int64]domain.ContentItem),
		languages: []domain.Language{
			{Code: domain.LangRU, Name: "Russian", NativeName: "Русский", Direction: "ltr", IsActive: true, IsDefault: true},
			{Code: domain.LangHE, Name: "Hebrew", NativeName: "עברית", Direction: "rtl", IsActive: true},
			{Code: domain.LangEN, Name: "English", NativeName: "English", Direction: "ltr", IsActive: true},
		},
	}
}

// Add stores an item and returns its id. A zero id is assigned automatically.
func (s *ContentStore) Add(item domain.ContentItem) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == 0 {
		s.nextID++
		item.ID = s.nextID
	} else if item.ID > s.nextID {
		s.nextID = item.ID
	}

	s.items[item.ID] = item

	return item.ID
}

// AddOption stores an active option row with the given translations.
func (s *ContentStore) AddOption(key, screenLocation string, tr domain.Translations) int64 {
	return s.Add(domain.ContentItem{
		ContentKey:     key,
		ComponentType:  domain.ComponentOption,
		ScreenLocation: screenLocation,
		IsActive:       true,
		Translations:   tr,
	})
}

// Item returns a stored item by id.
func (s *ContentStore) Item(id int64) (domain.ContentItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]

	return item, ok
}

// Reset removes all items.
func (s *ContentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int64]domain.ContentItem)
	s.nextID = 0
}

// ListOptionCandidates returns active rows whose key starts with the prefix,
// inside the scope and with an accepted component type, ordered by id.
func (s *ContentStore) ListOptionCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.ContentItem, error) {
	if s.ListOptionCandidatesFn != nil {
		return s.ListOptionCandidatesFn(ctx, q)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ContentItem, 0)

	for _, item := range s.items {
		if !item.IsActive || !strings.HasPrefix(item.ContentKey, q.KeyPrefix) || item.ContentKey == q.KeyPrefix {
			continue
		}

		if !q.Scope.Matches(item.ScreenLocation) || !containsString(q.ComponentTypes, item.ComponentType) {
			continue
		}

		result = append(result, item)
	}

	sortByID(result)

	return result, nil
}

// GetItemByID returns the item with the given id.
func (s *ContentStore) GetItemByID(_ context.Context, id int64) (*domain.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrContentItemNotFound
	}

	return &item, nil
}

// GetItemsByKeys returns active items with one of the keys inside the scope.
func (s *ContentStore) GetItemsByKeys(ctx context.Context, scope domain.ScreenScope, keys []string) ([]domain.ContentItem, error) {
	if s.GetItemsByKeysFn != nil {
		return s.GetItemsByKeysFn(ctx, scope, keys)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ContentItem, 0, len(keys))

	for _, item := range s.items {
		if item.IsActive && scope.Matches(item.ScreenLocation) && containsString(keys, item.ContentKey) {
			result = append(result, item)
		}
	}

	sortByID(result)

	return result, nil
}

// ListLanguages returns the configured languages.
func (s *ContentStore) ListLanguages(_ context.Context) ([]domain.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Language(nil), s.languages...), nil
}

// UpsertTranslation sets a translation value on an existing item.
func (s *ContentStore) UpsertTranslation(ctx context.Context, itemID int64, lang, value string) error {
	if s.UpsertTranslationFn != nil {
		return s.UpsertTranslationFn(ctx, itemID, lang, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return ErrContentItemNotFound
	}

	item.Translations.Set(lang, value)
	s.items[itemID] = item

	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

func sortByID(items []domain.ContentItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
}
