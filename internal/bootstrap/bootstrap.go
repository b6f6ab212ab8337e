// Package bootstrap wires config, catalog, journal and skill service for
// the binaries under cmd/.
package bootstrap

import (
	"context"
	"log/slog"

	"voiceskill/internal/application"
	"voiceskill/internal/config"
	"voiceskill/internal/infrastructure/database"
	"voiceskill/internal/infrastructure/i18n"
	"voiceskill/internal/ports/output"
)

// Skill is the wired skill service plus what it was built from.
type Skill struct {
	Service *application.SkillService
	Journal output.InteractionJournal // nil when DATABASE_URL is unset
	close   func()
}

// Close releases the database pool, if any.
func (s *Skill) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewSkill loads translations, opens the journal when configured, and
// builds the skill service.
func NewSkill(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Skill, error) {
	var (
		catalog *i18n.Catalog
		err     error
	)
	if cfg.TranslationsDir != "" {
		catalog, err = i18n.LoadDir(cfg.TranslationsDir, logger)
	} else {
		catalog, err = i18n.NewCatalog(logger)
	}
	if err != nil {
		return nil, err
	}

	out := &Skill{}
	opts := []application.SkillOption{
		application.WithLogger(logger),
		application.WithFallbackLocale(cfg.FallbackLocale),
	}

	if cfg.JournalEnabled() {
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		out.Journal = database.NewInteractionRepository(pool)
		out.close = pool.Close
		opts = append(opts, application.WithJournal(out.Journal))
	}

	svc, err := application.NewSkillService(catalog, opts...)
	if err != nil {
		out.Close()
		return nil, err
	}
	out.Service = svc
	return out, nil
}
