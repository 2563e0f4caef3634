package dropdown

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bankim/content-admin/internal/core/domain"
	apperrors "github.com/bankim/content-admin/internal/core/errors"
	"github.com/bankim/content-admin/internal/core/ports"
)

// Validation issue messages.
const (
	IssueMissingContainer   = "Missing dropdown container"
	IssueMissingPlaceholder = "Missing placeholder text"
	IssueMissingLabel       = "Missing label text"
	IssueNoOptions          = "No dropdown options found"
	IssueIncompleteLangs    = "Incomplete translations (missing languages)"
)

// OptionsResult is the option list of one dropdown. Fallback is set only
// when Options is empty.
type OptionsResult struct {
	ContentType string                     `json:"content_type"`
	ContentKey  string                     `json:"content_key"`
	Category    domain.Category            `json:"category"`
	Count       int                        `json:"options_count"`
	Options     []domain.OptionRecord      `json:"options"`
	Fallback    []domain.ContextualMessage `json:"fallback,omitempty"`
}

// Container holds the dropdown row and its placeholder and label rows.
type Container struct {
	ContentType string              `json:"content_type"`
	ContentKey  string              `json:"content_key"`
	Dropdown    *domain.ContentItem `json:"container"`
	Placeholder *domain.ContentItem `json:"placeholder"`
	Label       *domain.ContentItem `json:"label"`
}

// Hints returns the ru and he labels used as classification hints.
func (c Container) Hints() []string {
	for _, item := range []*domain.ContentItem{c.Dropdown, c.Label} {
		if item != nil && (item.Translations.RU != "" || item.Translations.HE != "") {
			return []string{item.Translations.RU, item.Translations.HE}
		}
	}

	return nil
}

// Structure summarises which parts of a dropdown exist.
type Structure struct {
	HasContainer   bool `json:"has_container"`
	HasPlaceholder bool `json:"has_placeholder"`
	HasLabel       bool `json:"has_label"`
	OptionsCount   int  `json:"options_count"`
}

// Validation reports structural problems of a dropdown.
type Validation struct {
	ContentType string          `json:"content_type"`
	ContentKey  string          `json:"content_key"`
	Structure   Structure       `json:"structure"`
	Languages   map[string]bool `json:"languages"`
	Issues      []string        `json:"issues"`
	IsValid     bool            `json:"is_valid"`
}

// Service answers content-type scoped dropdown queries for the admin API.
type Service struct {
	scopes   ScopeTable
	resolver *Resolver
	fallback *FallbackProvider
	reader   ports.ContentReader
	logger   *zerolog.Logger
}

// NewService wires the dropdown components together.
func NewService(scopes ScopeTable, resolver *Resolver, fallback *FallbackProvider, reader ports.ContentReader, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Service{
		scopes:   scopes,
		resolver: resolver,
		fallback: fallback,
		reader:   reader,
		logger:   logger,
	}
}

// Fallback returns the fallback provider.
func (s *Service) Fallback() *FallbackProvider {
	return s.fallback
}

// ContentTypes returns the supported content types.
func (s *Service) ContentTypes() []string {
	return s.scopes.ContentTypes()
}

// Options resolves the options of a dropdown. When none exist, the result
// carries the contextual fallback pair.
func (s *Service) Options(ctx context.Context, contentType, rawKey string) (*OptionsResult, error) {
	scope, baseKey, err := s.prepare(ctx, contentType, rawKey)
	if err != nil {
		return nil, err
	}

	options, err := s.resolver.ResolveOptions(ctx, baseKey, scope.Screen, scope.ComponentTypes)
	if err != nil {
		return nil, err
	}

	container, err := s.container(ctx, scope, baseKey)
	if err != nil {
		return nil, err
	}

	hints := container.Hints()
	result := &OptionsResult{
		ContentType: contentType,
		ContentKey:  baseKey,
		Category:    s.fallback.Classifier().Classify(baseKey, hints...),
		Count:       len(options),
		Options:     options,
	}

	if len(options) == 0 {
		pair := s.fallback.FallbackMessages(baseKey, hints...)
		result.Fallback = pair[:]
	}

	return result, nil
}

// Container returns the dropdown, placeholder and label rows.
func (s *Service) Container(ctx context.Context, contentType, rawKey string) (*Container, error) {
	scope, baseKey, err := s.prepare(ctx, contentType, rawKey)
	if err != nil {
		return nil, err
	}

	return s.container(ctx, scope, baseKey)
}

// Validate checks that a dropdown has a container, placeholder, label,
// options and ru/he/en translations.
func (s *Service) Validate(ctx context.Context, contentType, rawKey string) (*Validation, error) {
	scope, baseKey, err := s.prepare(ctx, contentType, rawKey)
	if err != nil {
		return nil, err
	}

	container, err := s.container(ctx, scope, baseKey)
	if err != nil {
		return nil, err
	}

	options, err := s.resolver.ResolveOptions(ctx, baseKey, scope.Screen, scope.ComponentTypes)
	if err != nil {
		return nil, err
	}

	v := &Validation{
		ContentType: contentType,
		ContentKey:  baseKey,
		Structure: Structure{
			HasContainer:   container.Dropdown != nil,
			HasPlaceholder: container.Placeholder != nil,
			HasLabel:       container.Label != nil,
			OptionsCount:   len(options),
		},
		Languages: make(map[string]bool, len(domain.SupportedLanguages)),
		Issues:    []string{},
	}

	for _, lang := range domain.SupportedLanguages {
		v.Languages[lang] = false
	}

	for _, item := range []*domain.ContentItem{container.Dropdown, container.Placeholder, container.Label} {
		if item == nil {
			continue
		}

		for _, lang := range item.Translations.Languages() {
			v.Languages[lang] = true
		}
	}

	v.Issues = validationIssues(v)
	v.IsValid = len(v.Issues) == 0

	return v, nil
}

func validationIssues(v *Validation) []string {
	issues := []string{}

	if !v.Structure.HasContainer {
		issues = append(issues, IssueMissingContainer)
	}

	if !v.Structure.HasPlaceholder {
		issues = append(issues, IssueMissingPlaceholder)
	}

	if !v.Structure.HasLabel {
		issues = append(issues, IssueMissingLabel)
	}

	if v.Structure.OptionsCount == 0 {
		issues = append(issues, IssueNoOptions)
	}

	for _, lang := range domain.SupportedLanguages {
		if !v.Languages[lang] {
			issues = append(issues, IssueIncompleteLangs)
			break
		}
	}

	return issues
}

func (s *Service) container(ctx context.Context, scope ContentScope, baseKey string) (*Container, error) {
	keys := []string{baseKey, scope.PlaceholderKey(baseKey), scope.LabelKey(baseKey)}

	items, err := s.reader.GetItemsByKeys(ctx, scope.Screen, keys)
	if err != nil {
		return nil, fmt.Errorf("get dropdown container %s: %w", baseKey, err)
	}

	c := &Container{ContentType: scope.ContentType, ContentKey: baseKey}

	for i := range items {
		item := items[i]
		if !item.IsActive {
			continue
		}

		switch item.ComponentType {
		case domain.ComponentDropdown:
			c.Dropdown = &item
		case domain.ComponentPlaceholder:
			c.Placeholder = &item
		case domain.ComponentLabel:
			c.Label = &item
		}
	}

	return c, nil
}

// prepare resolves the content scope and the parent key. Numeric keys are
// treated as content item ids; an unknown id is used as a literal key.
func (s *Service) prepare(ctx context.Context, contentType, rawKey string) (ContentScope, string, error) {
	scope, err := s.scopes.Lookup(contentType)
	if err != nil {
		return ContentScope{}, "", err
	}

	if rawKey == "" {
		return ContentScope{}, "", fmt.Errorf("%w: empty content key", apperrors.ErrInvalidInput)
	}

	key := rawKey

	// Menu keys are action numbers, never item ids.
	if id, convErr := strconv.ParseInt(rawKey, 10, 64); convErr == nil && scope.KeyPrefix == "" {
		item, getErr := s.reader.GetItemByID(ctx, id)

		switch {
		case getErr == nil:
			key = item.ContentKey
		case errors.Is(getErr, apperrors.ErrContentItemNotFound):
			s.logger.Debug().Int64("id", id).Msg("content item id not found, using literal key")
		default:
			return ContentScope{}, "", fmt.Errorf("resolve content item %d: %w", id, getErr)
		}
	}

	return scope, scope.BaseKey(key), nil
}
