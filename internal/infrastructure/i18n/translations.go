package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"voiceskill/internal/domain"
	"voiceskill/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
}

// Catalog holds the locale table parsed from go-i18n message files
// (active.<locale>.toml, one flat MESSAGE_ID = "template" per line).
type Catalog struct {
	table domain.LocaleTable
}

// NewCatalog loads the embedded message files.
func NewCatalog(logger *slog.Logger) (*Catalog, error) {
	return LoadFS(localeFS, logger)
}

// LoadDir loads active.*.toml files from dir on disk.
func LoadDir(dir string, logger *slog.Logger) (*Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("i18n: translations dir: %w", err)
	}
	return LoadFS(os.DirFS(dir), logger)
}

// LoadFS parses every active.*.toml file at the root of fsys. Templates are
// kept verbatim: placeholders are filled per request by the localizer, not
// by go-i18n's text/template engine.
func LoadFS(fsys fs.FS, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	files, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list message files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("i18n: no active.*.toml message files found")
	}

	known := make(map[domain.StringKey]bool, len(domain.StringKeys()))
	for _, k := range domain.StringKeys() {
		known[k] = true
	}

	table := make(domain.LocaleTable, len(files))
	for _, file := range files {
		buf, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}
		mf, err := i18n.ParseMessageFileBytes(buf, path.Base(file), unmarshalFuncs)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", file, err)
		}
		locale := domain.CanonicalLocale(mf.Tag.String())
		if _, dup := table[locale]; dup {
			return nil, fmt.Errorf("i18n: locale %s defined twice (%s)", locale, file)
		}

		st := make(domain.StringTable, len(mf.Messages))
		for _, m := range mf.Messages {
			key := domain.StringKey(strings.TrimSpace(m.ID))
			if !known[key] {
				logger.Warn("i18n: ignoring unknown message id", "file", file, "id", m.ID)
				continue
			}
			st[key] = m.Other
		}
		table[locale] = st
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	logger.Info("i18n: translations loaded", "locales", table.Locales())
	return &Catalog{table: table}, nil
}

// Locales implements output.Catalog.
func (c *Catalog) Locales() domain.LocaleTable {
	return c.table
}
