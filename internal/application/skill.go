package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"voiceskill/internal/domain"
	"voiceskill/internal/domain/entities"
	"voiceskill/internal/ports/input"
	"voiceskill/internal/ports/output"
)

var _ input.SkillUseCase = (*SkillService)(nil)

// SkillService prepares each request (validation, localizer) and hands it
// to the dispatcher.
type SkillService struct {
	dispatcher     *Dispatcher
	locales        domain.LocaleTable
	fallbackLocale string
	journal        output.InteractionJournal
	logger         *slog.Logger
	now            func() time.Time
}

// SkillOption configures a SkillService.
type SkillOption func(*SkillService)

// WithFallbackLocale makes unknown request locales resolve against locale
// instead of failing with domain.ErrUnknownLocale.
func WithFallbackLocale(locale string) SkillOption {
	return func(s *SkillService) {
		if locale != "" {
			s.fallbackLocale = domain.CanonicalLocale(locale)
		}
	}
}

// WithJournal records every dispatch. Journal errors are logged only.
func WithJournal(j output.InteractionJournal) SkillOption {
	return func(s *SkillService) { s.journal = j }
}

func WithLogger(l *slog.Logger) SkillOption {
	return func(s *SkillService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) SkillOption {
	return func(s *SkillService) { s.now = now }
}

// NewSkillService wires the default handlers and error processor against the
// catalog's locales.
func NewSkillService(catalog output.Catalog, opts ...SkillOption) (*SkillService, error) {
	s := &SkillService{
		locales: catalog.Locales(),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.locales.Validate(); err != nil {
		return nil, err
	}
	if s.fallbackLocale != "" {
		if _, ok := s.locales[s.fallbackLocale]; !ok {
			return nil, fmt.Errorf("fallback locale: %w: %q", domain.ErrUnknownLocale, s.fallbackLocale)
		}
	}

	s.logger = s.logger.With("component", "skill")
	d := NewDispatcher()
	if err := d.RegisterHandlers(DefaultHandlers()...); err != nil {
		return nil, err
	}
	d.RegisterErrorHandler(ErrorProcessor(s.logger))
	s.dispatcher = d
	return s, nil
}

// Handle answers one request. It fails only when the request is malformed,
// its locale is unknown (and no fallback is configured), or the error action
// itself fails.
func (s *SkillService) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	start := s.now()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	localizer, err := s.localizerFor(ctx, req)
	if err != nil {
		s.record(ctx, req, Outcome{Cause: err}, start)
		return nil, err
	}

	outcome, err := s.dispatcher.Dispatch(ctx, &Input{Request: req, Localizer: localizer})
	s.record(ctx, req, outcome, start)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "request handled",
		"request_id", req.ID,
		"handler", outcome.Handler,
		"locale", localizer.Locale(),
	)
	return outcome.Response, nil
}

func (s *SkillService) localizerFor(ctx context.Context, req domain.Request) (*domain.Localizer, error) {
	l, err := domain.NewLocalizer(req.Locale, s.locales)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, domain.ErrUnknownLocale) || s.fallbackLocale == "" {
		return nil, err
	}
	s.logger.WarnContext(ctx, "unknown locale, using fallback",
		"request_id", req.ID,
		"locale", req.Locale,
		"fallback", s.fallbackLocale,
	)
	return domain.NewLocalizer(s.fallbackLocale, s.locales)
}

// Locales returns the supported locale ids.
func (s *SkillService) Locales() []string {
	return s.locales.Locales()
}

func (s *SkillService) record(ctx context.Context, req domain.Request, o Outcome, start time.Time) {
	if s.journal == nil {
		return
	}
	it := &entities.Interaction{
		ID:          uuid.NewString(),
		RequestID:   req.ID,
		RequestType: string(req.Type),
		IntentName:  req.IntentName,
		Locale:      req.Locale,
		Handler:     o.Handler,
		ErrorCode:   domain.Code(o.Cause),
		Duration:    s.now().Sub(start),
		CreatedAt:   start,
	}
	if o.Cause != nil {
		it.ErrorMessage = o.Cause.Error()
	}
	if o.Response != nil {
		it.ShouldEndSession = o.Response.ShouldEndSession
	}
	if err := s.journal.Record(ctx, it); err != nil {
		s.logger.WarnContext(ctx, "journal record failed", "request_id", req.ID, "error", err)
	}
}
