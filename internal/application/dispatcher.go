package application

import (
	"context"
	"errors"
	"fmt"

	"voiceskill/internal/domain"
)

// Input is what a handler sees: the request plus the localizer selected for it.
type Input struct {
	Request   domain.Request
	Localizer *domain.Localizer
}

// Predicate decides whether a handler applies. Predicates must be pure.
type Predicate func(req domain.Request) bool

// Action produces the response for a matched request.
type Action func(ctx context.Context, in *Input) (*domain.Response, error)

// ErrorAction produces the response when routing or an action failed.
type ErrorAction func(ctx context.Context, in *Input, cause error) (*domain.Response, error)

// Handler pairs a predicate with its action.
type Handler struct {
	Name      string
	Predicate Predicate
	Action    Action
}

// Outcome describes how a request was answered.
type Outcome struct {
	Response *domain.Response
	// Handler is the name of the matched handler, or ErrorHandlerName when
	// the error action produced the response.
	Handler string
	// Cause is what was routed to the error action, nil otherwise.
	Cause error
}

const ErrorHandlerName = "Error"

// Dispatcher evaluates handlers in registration order and runs the first match.
type Dispatcher struct {
	handlers    []Handler
	errorAction ErrorAction
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// RegisterHandlers replaces the handler list. Order is precedence.
func (d *Dispatcher) RegisterHandlers(handlers ...Handler) error {
	if len(handlers) == 0 {
		return domain.ErrNoHandlers
	}
	d.handlers = append([]Handler(nil), handlers...)
	return nil
}

// RegisterErrorHandler sets the fallback action.
func (d *Dispatcher) RegisterErrorHandler(action ErrorAction) {
	d.errorAction = action
}

// Dispatch runs exactly one action: the first handler whose predicate holds,
// or the error action when none does or the chosen action fails. An error is
// returned only when the error action itself fails.
func (d *Dispatcher) Dispatch(ctx context.Context, in *Input) (Outcome, error) {
	h, ok := d.match(in.Request)
	if !ok {
		cause := fmt.Errorf("%w: type=%s intent=%q", domain.ErrNoHandlerMatched, in.Request.Type, in.Request.IntentName)
		return d.fail(ctx, in, cause)
	}

	resp, err := runAction(ctx, h, in)
	if err != nil {
		return d.fail(ctx, in, fmt.Errorf("%w: %s: %w", domain.ErrHandlerActionFailed, h.Name, err))
	}
	return Outcome{Response: resp, Handler: h.Name}, nil
}

func (d *Dispatcher) match(req domain.Request) (Handler, bool) {
	for _, h := range d.handlers {
		if h.Predicate != nil && h.Predicate(req) {
			return h, true
		}
	}
	return Handler{}, false
}

func runAction(ctx context.Context, h Handler, in *Input) (resp *domain.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	if h.Action == nil {
		return nil, errors.New("handler has no action")
	}
	resp, err = h.Action(ctx, in)
	if err == nil && resp == nil {
		err = errors.New("action returned no response")
	}
	return resp, err
}

func (d *Dispatcher) fail(ctx context.Context, in *Input, cause error) (Outcome, error) {
	if d.errorAction == nil {
		return Outcome{Cause: cause}, fmt.Errorf("%w: %w", domain.ErrNoErrorHandler, cause)
	}
	resp, err := d.errorAction(ctx, in, cause)
	if err != nil {
		return Outcome{Handler: ErrorHandlerName, Cause: cause}, fmt.Errorf("error action: %w (while handling: %v)", err, cause)
	}
	if resp == nil {
		return Outcome{Handler: ErrorHandlerName, Cause: cause}, fmt.Errorf("error action returned no response (while handling: %v)", cause)
	}
	return Outcome{Response: resp, Handler: ErrorHandlerName, Cause: cause}, nil
}
