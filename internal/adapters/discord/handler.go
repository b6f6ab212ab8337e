package discord

import (
	"log/slog"

	"voiceskill/internal/ports/input"
)

// Handler turns Discord interactions into skill requests.
type Handler struct {
	skill  input.SkillUseCase
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(skill input.SkillUseCase, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		skill:  skill,
		logger: logger.With("component", "discord"),
	}
}
