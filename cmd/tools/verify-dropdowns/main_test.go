package main

import (
	"bytes"
	"testing"

	"github.com/bankim/content-admin/internal/core/domain"
	"github.com/bankim/content-admin/internal/dropdown"
)

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "empty", raw: "", want: 0},
		{name: "single", raw: "calculate_mortgage_city", want: 1},
		{name: "trims and skips blanks", raw: " a , ,b,", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitKeys(tt.raw); len(got) != tt.want {
				t.Errorf("splitKeys(%q) = %v, want %d keys", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     verifyConfig
		wantErr error
	}{
		{name: "missing dsn", cfg: verifyConfig{keys: []string{"a"}}, wantErr: errDSNRequired},
		{name: "missing keys", cfg: verifyConfig{dsn: "postgres://x"}, wantErr: errKeysRequired},
		{name: "valid", cfg: verifyConfig{dsn: "postgres://x", keys: []string{"a"}, order: "positional"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateConfig(tt.cfg); err != tt.wantErr {
				t.Errorf("validateConfig() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := validateConfig(verifyConfig{dsn: "postgres://x", keys: []string{"a"}, order: "random"}); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer

	printResult(&buf, &dropdown.OptionsResult{
		ContentType: dropdown.ContentTypeMortgage,
		ContentKey:  "calculate_mortgage_city",
		Category:    domain.CategoryGeographic,
		Fallback:    []domain.ContextualMessage{{RU: "нет"}, dropdown.AddOptionsMessage},
	})

	got := buf.String()
	if !bytes.Contains([]byte(got), []byte("calculate_mortgage_city [mortgage] geographic: 0 option(s)")) {
		t.Errorf("unexpected header in %q", got)
	}

	if n := bytes.Count([]byte(got), []byte("fallback:")); n != 2 {
		t.Errorf("fallback lines = %d, want 2", n)
	}
}
