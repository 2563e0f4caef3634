package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bankim/content-admin/internal/core/domain"
	apperrors "github.com/bankim/content-admin/internal/core/errors"
	"github.com/bankim/content-admin/internal/core/ports"
)

var _ ports.ContentStore = (*DB)(nil)

// selectContentItems pivots approved ru/he/en translations onto each item row.
const selectContentItems = `
	SELECT
		ci.id,
		ci.content_key,
		ci.component_type,
		ci.screen_location,
		ci.category,
		ci.is_active,
		ci.updated_at,
		ct_ru.content_value,
		ct_he.content_value,
		ct_en.content_value
	FROM content_items ci
	LEFT JOIN content_translations ct_ru ON ct_ru.content_item_id = ci.id
		AND ct_ru.language_code = 'ru' AND ct_ru.status = 'approved'
	LEFT JOIN content_translations ct_he ON ct_he.content_item_id = ci.id
		AND ct_he.language_code = 'he' AND ct_he.status = 'approved'
	LEFT JOIN content_translations ct_en ON ct_en.content_item_id = ci.id
		AND ct_en.language_code = 'en' AND ct_en.status = 'approved'
`

// scopeClause matches screen_location against $N (exact) and $N+1 (LIKE
// patterns); both arrays empty means unscoped.
func scopeClause(first int) string {
	return fmt.Sprintf(`(
		cardinality($%[1]d::text[]) + cardinality($%[2]d::text[]) = 0
		OR ci.screen_location = ANY($%[1]d::text[])
		OR ci.screen_location LIKE ANY($%[2]d::text[])
	)`, first, first+1)
}

// scopeArgs returns non-nil arrays for scopeClause.
func scopeArgs(scope domain.ScreenScope) ([]string, []string) {
	locations := make([]string, 0, len(scope.Locations))
	locations = append(locations, scope.Locations...)

	patterns := make([]string, 0, len(scope.Prefixes))
	for _, prefix := range scope.Prefixes {
		patterns = append(patterns, escapeLike(prefix)+"%")
	}

	return locations, patterns
}

// escapeLike escapes LIKE wildcards so s matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

// ListOptionCandidates returns active rows whose key starts with the query
// prefix, inside the scope and with one of the component types. The
// naming-convention filtering is left to the caller.
func (db *DB) ListOptionCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.ContentItem, error) {
	locations, patterns := scopeArgs(q.Scope)

	componentTypes := make([]string, 0, len(q.ComponentTypes))
	componentTypes = append(componentTypes, q.ComponentTypes...)

	rows, err := db.Pool.Query(ctx, selectContentItems+`
		WHERE ci.is_active = TRUE
			AND ci.content_key LIKE $1
			AND ci.content_key <> $2
			AND ci.component_type = ANY($3::text[])
			AND `+scopeClause(4)+`
		ORDER BY ci.content_key
	`, escapeLike(q.KeyPrefix)+"%", q.KeyPrefix, componentTypes, locations, patterns)
	if err != nil {
		return nil, fmt.Errorf("query option candidates: %w", err)
	}

	items, err := collectContentItems(rows)
	if err != nil {
		return nil, fmt.Errorf("collect option candidates: %w", err)
	}

	return items, nil
}

// GetItemsByKeys returns active items whose key is one of keys, inside the scope.
func (db *DB) GetItemsByKeys(ctx context.Context, scope domain.ScreenScope, keys []string) ([]domain.ContentItem, error) {
	locations, patterns := scopeArgs(scope)

	rows, err := db.Pool.Query(ctx, selectContentItems+`
		WHERE ci.is_active = TRUE
			AND ci.content_key = ANY($1::text[])
			AND `+scopeClause(2)+`
		ORDER BY ci.component_type, ci.content_key
	`, append(make([]string, 0, len(keys)), keys...), locations, patterns)
	if err != nil {
		return nil, fmt.Errorf("query items by keys: %w", err)
	}

	items, err := collectContentItems(rows)
	if err != nil {
		return nil, fmt.Errorf("collect items by keys: %w", err)
	}

	return items, nil
}

// GetItemByID returns a content item, active or not.
func (db *DB) GetItemByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	rows, err := db.Pool.Query(ctx, selectContentItems+`
		WHERE ci.id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query content item %d: %w", id, err)
	}

	items, err := collectContentItems(rows)
	if err != nil {
		return nil, fmt.Errorf("collect content item %d: %w", id, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("content item %d: %w", id, apperrors.ErrContentItemNotFound)
	}

	return &items[0], nil
}

// ListLanguages returns the active languages, default first.
func (db *DB) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT code, name, native_name, direction, is_active, is_default
		FROM languages
		WHERE is_active = TRUE
		ORDER BY is_default DESC, code
	`)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	defer rows.Close()

	var languages []domain.Language

	for rows.Next() {
		var lang domain.Language
		if err := rows.Scan(&lang.Code, &lang.Name, &lang.NativeName, &lang.Direction, &lang.IsActive, &lang.IsDefault); err != nil {
			return nil, fmt.Errorf("scan language row: %w", err)
		}

		languages = append(languages, lang)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate language rows: %w", err)
	}

	return languages, nil
}

// UpsertTranslation stores an approved translation for an existing item.
func (db *DB) UpsertTranslation(ctx context.Context, itemID int64, lang, value string) error {
	if !domain.IsSupportedLanguage(lang) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedLanguage, lang)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx) //nolint:errcheck // rollback after commit returns error, this is best-effort cleanup
	}()

	tag, err := tx.Exec(ctx, `UPDATE content_items SET updated_at = NOW() WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("touch content item %d: %w", itemID, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content item %d: %w", itemID, apperrors.ErrContentItemNotFound)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO content_translations (content_item_id, language_code, content_value, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (content_item_id, language_code) DO UPDATE SET
			content_value = EXCLUDED.content_value,
			status = EXCLUDED.status,
			updated_at = NOW()
	`, itemID, lang, NormalizeText(value), domain.TranslationApproved); err != nil {
		return fmt.Errorf("upsert translation %d/%s: %w", itemID, lang, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit translation %d/%s: %w", itemID, lang, err)
	}

	return nil
}

func collectContentItems(rows pgx.Rows) ([]domain.ContentItem, error) {
	defer rows.Close()

	var items []domain.ContentItem

	for rows.Next() {
		var (
			item       domain.ContentItem
			category   pgtype.Text
			updatedAt  pgtype.Timestamptz
			ru, he, en pgtype.Text
		)

		if err := rows.Scan(
			&item.ID,
			&item.ContentKey,
			&item.ComponentType,
			&item.ScreenLocation,
			&category,
			&item.IsActive,
			&updatedAt,
			&ru,
			&he,
			&en,
		); err != nil {
			return nil, fmt.Errorf("scan content item row: %w", err)
		}

		item.Category = fromText(category)
		item.UpdatedAt = fromTimestamptz(updatedAt)
		item.Translations = domain.Translations{RU: fromText(ru), HE: fromText(he), EN: fromText(en)}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content item rows: %w", err)
	}

	return items, nil
}
