package dropdown

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankim/content-admin/internal/core/domain"
	"github.com/bankim/content-admin/internal/core/ports"
)

// Key delimiters of the two content key schemas.
const (
	sepUnderscore = "_"
	sepDot        = "."
)

// Reserved suffixes that belong to the dropdown itself, not to its options.
const (
	suffixPlaceholder = "ph"
	suffixLabel       = "label"
)

const logFieldBaseKey = "base_key"

// OptionOrder selects how resolved options are sorted.
type OptionOrder int

const (
	// OrderLexicographic sorts by full content key, byte-wise.
	// Unpadded numeric suffixes sort as strings: _option_10 before _option_2.
	OrderLexicographic OptionOrder = iota
	// OrderPositional puts numeric options first by their number, then
	// descriptive options by content key.
	OrderPositional
)

// ParseOptionOrder parses "lexicographic" or "positional".
func ParseOptionOrder(s string) (OptionOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lexicographic":
		return OrderLexicographic, nil
	case "positional", "natural":
		return OrderPositional, nil
	default:
		return OrderLexicographic, fmt.Errorf("unknown option order %q", s)
	}
}

// ComponentTypeFilter lists the component types accepted as options.
type ComponentTypeFilter []string

// DefaultOptionTypes accepts option and dropdown_option rows.
var DefaultOptionTypes = ComponentTypeFilter{domain.ComponentOption, domain.ComponentDropdownOption}

// WithText returns a copy of the filter that also accepts legacy text rows.
func (f ComponentTypeFilter) WithText() ComponentTypeFilter {
	if f.Contains(domain.ComponentText) {
		return append(ComponentTypeFilter(nil), f...)
	}

	return append(append(ComponentTypeFilter(nil), f...), domain.ComponentText)
}

// Contains reports whether componentType is accepted.
func (f ComponentTypeFilter) Contains(componentType string) bool {
	for _, t := range f {
		if t == componentType {
			return true
		}
	}

	return false
}

// Resolver finds the option rows that belong to a parent content key.
type Resolver struct {
	source ports.OptionSource
	order  OptionOrder
	logger *zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithOrder sets the result ordering.
func WithOrder(order OptionOrder) ResolverOption {
	return func(r *Resolver) {
		r.order = order
	}
}

// NewResolver creates a resolver reading from source.
func NewResolver(source ports.OptionSource, logger *zerolog.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	r := &Resolver{source: source, order: OrderLexicographic, logger: logger}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ResolveOptions returns the options of baseKey inside scope whose component
// type is accepted by types, under either naming convention. An empty slice
// is a valid result. Storage errors are returned wrapped, without retry.
func (r *Resolver) ResolveOptions(ctx context.Context, baseKey string, scope domain.ScreenScope, types ComponentTypeFilter) ([]domain.OptionRecord, error) {
	start := time.Now()

	defer func() {
		ResolveDuration.Observe(time.Since(start).Seconds())
	}()

	if baseKey == "" {
		r.logger.Warn().Msg("resolve options called with empty base key")
		ResolutionsTotal.WithLabelValues(OutcomeEmpty).Inc()

		return []domain.OptionRecord{}, nil
	}

	if len(types) == 0 {
		types = DefaultOptionTypes
	}

	candidates, err := r.source.ListOptionCandidates(ctx, domain.CandidateQuery{
		KeyPrefix:      baseKey,
		Scope:          scope,
		ComponentTypes: types,
	})
	if err != nil {
		ResolutionsTotal.WithLabelValues(OutcomeError).Inc()
		return nil, fmt.Errorf("list option candidates for %s: %w", baseKey, err)
	}

	options := selectOptions(baseKey, scope, types, candidates)
	r.sortOptions(options)

	for i := range options {
		options[i].Order = i + 1
	}

	outcome := OutcomeFound
	if len(options) == 0 {
		outcome = OutcomeEmpty
	}

	ResolutionsTotal.WithLabelValues(outcome).Inc()
	ResolvedOptions.Observe(float64(len(options)))

	r.logger.Debug().
		Str(logFieldBaseKey, baseKey).
		Stringer("scope", scope).
		Int("candidates", len(candidates)).
		Int("options", len(options)).
		Msg("dropdown options resolved")

	return options, nil
}

func selectOptions(baseKey string, scope domain.ScreenScope, types ComponentTypeFilter, candidates []domain.ContentItem) []domain.OptionRecord {
	options := make([]domain.OptionRecord, 0, len(candidates))
	seen := make(map[int64]struct{}, len(candidates))

	for _, item := range candidates {
		if !item.IsActive || !types.Contains(item.ComponentType) || !scope.Matches(item.ScreenLocation) {
			continue
		}

		convention, ok := MatchOption(baseKey, item.ContentKey)
		if !ok {
			continue
		}

		if _, dup := seen[item.ID]; dup {
			continue
		}

		seen[item.ID] = struct{}{}

		options = append(options, domain.OptionRecord{
			ID:             item.ID,
			ContentKey:     item.ContentKey,
			ComponentType:  item.ComponentType,
			ScreenLocation: item.ScreenLocation,
			Convention:     convention,
			Translations:   item.Translations,
		})
	}

	return options
}

func (r *Resolver) sortOptions(options []domain.OptionRecord) {
	if r.order == OrderPositional {
		sort.SliceStable(options, func(i, j int) bool {
			return positionalLess(options[i], options[j])
		})

		return
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].ContentKey < options[j].ContentKey
	})
}

func positionalLess(a, b domain.OptionRecord) bool {
	an, aNumeric := optionNumber(a)
	bn, bNumeric := optionNumber(b)

	switch {
	case aNumeric && bNumeric:
		if an != bn {
			return an < bn
		}
	case aNumeric:
		return true
	case bNumeric:
		return false
	}

	return a.ContentKey < b.ContentKey
}

func optionNumber(o domain.OptionRecord) (int, bool) {
	if o.Convention != domain.ConventionNumeric {
		return 0, false
	}

	idx := strings.LastIndexAny(o.ContentKey, sepUnderscore+sepDot)

	n, err := strconv.Atoi(o.ContentKey[idx+1:])
	if err != nil {
		return 0, false
	}

	return n, true
}

// MatchOption reports whether key is an option of baseKey and under which
// naming convention.
//
// Numeric keys are baseKey + "_option_N", "_options_N" or ".option.N".
// Descriptive keys are baseKey + delimiter + a single segment that is not
// "ph" or "label"; a segment containing the delimiter again belongs to a
// different field.
func MatchOption(baseKey, key string) (domain.NamingConvention, bool) {
	if baseKey == "" {
		return "", false
	}

	for _, sep := range []string{sepUnderscore, sepDot} {
		prefix := baseKey + sep
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		suffix := key[len(prefix):]

		if isNumericSuffix(suffix, sep) {
			return domain.ConventionNumeric, true
		}

		if suffix == "" || suffix == suffixPlaceholder || suffix == suffixLabel {
			continue
		}

		if strings.Contains(suffix, sep) {
			continue
		}

		return domain.ConventionDescriptive, true
	}

	return "", false
}

func isNumericSuffix(suffix, sep string) bool {
	markers := []string{"option" + sep}
	if sep == sepUnderscore {
		markers = append(markers, "options"+sep)
	}

	for _, marker := range markers {
		if digits, ok := strings.CutPrefix(suffix, marker); ok && isDigits(digits) {
			return true
		}
	}

	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
