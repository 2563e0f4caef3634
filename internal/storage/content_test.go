package db

import (
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bankim/content-admin/internal/core/domain"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "mortgage_step1", want: `mortgage\_step1`},
		{in: "100%", want: `100\%`},
		{in: `a\b`, want: `a\\b`},
		{in: "app.main.action.1", want: "app.main.action.1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := escapeLike(tt.in); got != tt.want {
				t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScopeArgs(t *testing.T) {
	locations, patterns := scopeArgs(domain.ScreenScope{})
	if locations == nil || patterns == nil {
		t.Fatal("scopeArgs must return non-nil slices for an unscoped query")
	}

	if len(locations) != 0 || len(patterns) != 0 {
		t.Errorf("unscoped args = %v, %v, want empty", locations, patterns)
	}

	scope := domain.ScopePrefix("refinance_mortgage_").Or(domain.ScopeEquals("refinance_step1"))

	locations, patterns = scopeArgs(scope)
	if len(locations) != 1 || locations[0] != "refinance_step1" {
		t.Errorf("locations = %v", locations)
	}

	if len(patterns) != 1 || patterns[0] != `refinance\_mortgage\_%` {
		t.Errorf("patterns = %v", patterns)
	}
}

func TestScopeClause(t *testing.T) {
	clause := scopeClause(4)

	for _, want := range []string{"$4::text[]", "$5::text[]", "LIKE ANY", "cardinality"} {
		if !strings.Contains(clause, want) {
			t.Errorf("scopeClause(4) missing %q:\n%s", want, clause)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	// "й" as и + combining breve.
	decomposed := "\u0438\u0306"

	if got := NormalizeText(decomposed); got != "\u0439" {
		t.Errorf("NormalizeText(%q) = %q, want composed form", decomposed, got)
	}

	if got := NormalizeText("ok\xffvalue"); got != "okvalue" {
		t.Errorf("NormalizeText dropped invalid bytes incorrectly: %q", got)
	}
}

func TestSanitizeUTF8(t *testing.T) {
	if got := SanitizeUTF8("שלום"); got != "שלום" {
		t.Errorf("valid string changed: %q", got)
	}

	if got := SanitizeUTF8("a\xc3b"); got != "ab" {
		t.Errorf("SanitizeUTF8 = %q, want %q", got, "ab")
	}
}

func TestPgtypeConversions(t *testing.T) {
	if got := fromText(pgtype.Text{}); got != "" {
		t.Errorf("fromText(invalid) = %q", got)
	}

	if got := fromText(pgtype.Text{String: "x", Valid: true}); got != "x" {
		t.Errorf("fromText(valid) = %q", got)
	}

	now := time.Now()
	if got := fromTimestamptz(pgtype.Timestamptz{Time: now, Valid: true}); !got.Equal(now) {
		t.Errorf("fromTimestamptz = %v, want %v", got, now)
	}

	if got := fromTimestamptz(pgtype.Timestamptz{}); !got.IsZero() {
		t.Errorf("fromTimestamptz(invalid) = %v, want zero", got)
	}
}
