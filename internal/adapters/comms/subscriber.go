package comms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"voiceskill/internal/adapters/alexa"
	"voiceskill/internal/domain"
	"voiceskill/internal/ports/input"
)

// ErrorReply is sent instead of a response envelope when a request cannot
// be answered.
type ErrorReply struct {
	Error string `json:"error"`
}

// Subscriber answers skill requests published on a subject.
type Subscriber struct {
	skill   input.SkillUseCase
	timeout time.Duration
	logger  *slog.Logger
}

func NewSubscriber(skill input.SkillUseCase, timeout time.Duration, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{
		skill:   skill,
		timeout: timeout,
		logger:  logger.With("component", "comms"),
	}
}

// Subscribe registers the subscriber on subject within a queue group so
// several instances share the load.
func (s *Subscriber) Subscribe(ctx context.Context, nc *nats.Conn, subject, queue string) (*nats.Subscription, error) {
	sub, err := nc.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		reply := s.Reply(ctx, msg.Data)
		if err := msg.Respond(reply); err != nil {
			s.logger.Error("respond failed", "subject", subject, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("comms: subscribe %s: %w", subject, err)
	}
	s.logger.Info("subscribed", "subject", subject, "queue", queue)
	return sub, nil
}

// Reply turns one request payload into the reply payload.
func (s *Subscriber) Reply(ctx context.Context, data []byte) []byte {
	reqCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := alexa.Decode(data)
	if err != nil {
		s.logger.WarnContext(reqCtx, "rejecting malformed request", "error", err)
		return encodeError(domain.Code(err))
	}
	resp, err := s.skill.Handle(reqCtx, req)
	if err != nil {
		s.logger.ErrorContext(reqCtx, "skill request failed", "request_id", req.ID, "error", err)
		return encodeError(domain.Code(err))
	}
	out, err := alexa.Encode(resp)
	if err != nil {
		s.logger.ErrorContext(reqCtx, "encode response failed", "request_id", req.ID, "error", err)
		return encodeError("internal")
	}
	return out
}

func encodeError(code string) []byte {
	data, _ := json.Marshal(ErrorReply{Error: code})
	return data
}
