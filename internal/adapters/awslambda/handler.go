// Package awslambda serves the skill as an AWS Lambda function.
package awslambda

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"voiceskill/internal/adapters/alexa"
	"voiceskill/internal/ports/input"
)

// Handler is the Lambda entry point: warmup pings first, then skill requests.
type Handler struct {
	skill  input.SkillUseCase
	warmer *Warmer
	logger *slog.Logger
}

func NewHandler(skill input.SkillUseCase, warmer *Warmer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		skill:  skill,
		warmer: warmer,
		logger: logger.With("component", "lambda"),
	}
}

// Invoke handles one raw Lambda event.
func (h *Handler) Invoke(ctx context.Context, event json.RawMessage) (any, error) {
	// Warmup detection must run before any other processing.
	if warmup, ok := IsWarmupEvent(event); ok && h.warmer != nil {
		return h.warmer.Handle(ctx, warmup)
	}

	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("aws_request_id", lc.AwsRequestID)
	}

	req, err := alexa.Decode(event)
	if err != nil {
		logger.WarnContext(ctx, "rejecting malformed request", "error", err)
		return nil, err
	}

	resp, err := h.skill.Handle(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "skill request failed", "request_id", req.ID, "error", err)
		return nil, err
	}
	return alexa.FromDomain(resp), nil
}
