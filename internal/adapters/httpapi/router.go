// Package httpapi exposes the skill as an HTTPS endpoint.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"voiceskill/internal/adapters/alexa"
	"voiceskill/internal/domain"
	"voiceskill/internal/ports/input"
	"voiceskill/internal/ports/output"
)

const maxBodyBytes = 1 << 20

// Options configures the router. Journal may be nil.
type Options struct {
	Skill          input.SkillUseCase
	Journal        output.InteractionJournal
	Locales        []string
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

type api struct {
	opts   Options
	logger *slog.Logger
}

// NewRouter returns the HTTP handler tree.
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &api{opts: opts, logger: logger.With("component", "http")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", a.handleHealth)
	r.Get("/locales", a.handleLocales)
	r.Post("/skill", a.handleSkill)
	r.Get("/interactions", a.handleInteractions)
	return r
}

func (a *api) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) handleLocales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"locales": a.opts.Locales})
}

func (a *api) handleSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	req, err := alexa.Decode(body)
	if err != nil {
		a.logger.WarnContext(ctx, "rejecting malformed request", "error", err, "http_request_id", middleware.GetReqID(ctx))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := a.opts.Skill.Handle(ctx, req)
	if err != nil {
		a.logger.ErrorContext(ctx, "skill request failed", "request_id", req.ID, "error", err, "http_request_id", middleware.GetReqID(ctx))
		switch {
		case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnknownLocale):
			writeError(w, http.StatusBadRequest, domain.Code(err))
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, alexa.FromDomain(resp))
}

func (a *api) handleInteractions(w http.ResponseWriter, r *http.Request) {
	if a.opts.Journal == nil {
		writeError(w, http.StatusNotFound, "interaction journal disabled")
		return
	}
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	items, err := a.opts.Journal.ListRecent(r.Context(), limit)
	if err != nil {
		a.logger.ErrorContext(r.Context(), "list interactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]interactionView, 0, len(items))
	for _, it := range items {
		out = append(out, toView(it))
	}
	writeJSON(w, http.StatusOK, map[string]any{"interactions": out})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
