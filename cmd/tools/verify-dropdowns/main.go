package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bankim/content-admin/internal/app"
	"github.com/bankim/content-admin/internal/dropdown"
	"github.com/bankim/content-admin/internal/platform/config"
	db "github.com/bankim/content-admin/internal/storage"
)

const errFmt = "%v\n"

var (
	errDSNRequired  = errors.New("POSTGRES_DSN is required (or provide -dsn)")
	errKeysRequired = errors.New("at least one key is required (-keys)")
)

type verifyConfig struct {
	dsn         string
	contentType string
	keys        []string
	order       string
	includeText bool
}

func main() {
	cfg := parseFlags()

	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, errFmt, err)
		os.Exit(1)
	}

	if err := runVerify(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, errFmt, err)
		os.Exit(1)
	}
}

func parseFlags() verifyConfig {
	cfg := verifyConfig{}

	var keys string

	flag.StringVar(&cfg.dsn, "dsn", os.Getenv("POSTGRES_DSN"), "Postgres DSN")
	flag.StringVar(&cfg.contentType, "type", dropdown.ContentTypeMortgage, "Content type (mortgage, mortgage-refi, credit, credit-refi, menu, general)")
	flag.StringVar(&keys, "keys", "", "Comma-separated dropdown keys or item ids")
	flag.StringVar(&cfg.order, "order", os.Getenv("DROPDOWN_OPTION_ORDER"), "Option order (lexicographic, positional)")
	flag.BoolVar(&cfg.includeText, "include-text", false, "Accept legacy text rows as mortgage options")

	flag.Parse()

	cfg.keys = splitKeys(keys)

	return cfg
}

func splitKeys(raw string) []string {
	var keys []string

	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

func validateConfig(cfg verifyConfig) error {
	if cfg.dsn == "" {
		return errDSNRequired
	}

	if len(cfg.keys) == 0 {
		return errKeysRequired
	}

	if _, err := dropdown.ParseOptionOrder(cfg.order); err != nil {
		return err
	}

	return nil
}

func runVerify(cfg verifyConfig, out io.Writer) error {
	ctx := context.Background()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()

	database, err := db.New(ctx, cfg.dsn, &logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	service, err := app.NewDropdownService(&config.Config{
		DropdownOptionOrder:        cfg.order,
		DropdownIncludeTextOptions: cfg.includeText,
	}, database, &logger)
	if err != nil {
		return err
	}

	for _, key := range cfg.keys {
		result, err := service.Options(ctx, cfg.contentType, key)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", key, err)
		}

		printResult(out, result)
	}

	return nil
}

func printResult(out io.Writer, result *dropdown.OptionsResult) {
	fmt.Fprintf(out, "%s [%s] %s: %d option(s)\n", result.ContentKey, result.ContentType, result.Category, result.Count)

	for _, opt := range result.Options {
		fmt.Fprintf(out, "  %2d. %-50s %-11s ru=%q he=%q\n",
			opt.Order, opt.ContentKey, opt.Convention, opt.Translations.RU, opt.Translations.HE)
	}

	for _, msg := range result.Fallback {
		fmt.Fprintf(out, "  fallback: ru=%q he=%q\n", msg.RU, msg.HE)
	}
}
