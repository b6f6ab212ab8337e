package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceskill/internal/domain"
)

func always(domain.Request) bool { return true }
func never(domain.Request) bool  { return false }

func respond(text string, calls *[]string) Action {
	return func(context.Context, *Input) (*domain.Response, error) {
		*calls = append(*calls, text)
		return domain.NewResponseBuilder().Speak(text).Build(), nil
	}
}

func recordingErrorAction(causes *[]error) ErrorAction {
	return func(_ context.Context, _ *Input, cause error) (*domain.Response, error) {
		*causes = append(*causes, cause)
		return domain.NewResponseBuilder().Speak("error").Build(), nil
	}
}

func TestDispatcher_RegisterHandlers_Empty(t *testing.T) {
	d := NewDispatcher()
	assert.ErrorIs(t, d.RegisterHandlers(), domain.ErrNoHandlers)
}

func TestDispatcher_FirstMatchWins(t *testing.T) {
	var calls []string
	var causes []error
	evaluated := 0
	counting := func(domain.Request) bool { evaluated++; return true }

	d := NewDispatcher()
	require.NoError(t, d.RegisterHandlers(
		Handler{Name: "none", Predicate: never, Action: respond("none", &calls)},
		Handler{Name: "first", Predicate: always, Action: respond("first", &calls)},
		Handler{Name: "second", Predicate: counting, Action: respond("second", &calls)},
	))
	d.RegisterErrorHandler(recordingErrorAction(&causes))

	out, err := d.Dispatch(context.Background(), testInput(domain.Request{Type: domain.RequestLaunch, Locale: "en-US"}))
	require.NoError(t, err)
	assert.Equal(t, "first", out.Handler)
	assert.Equal(t, "first", out.Response.SpeechText)
	assert.Nil(t, out.Cause)
	assert.Equal(t, []string{"first"}, calls, "exactly one action runs")
	assert.Zero(t, evaluated, "predicates after the match are not evaluated")
	assert.Empty(t, causes)
}

func TestDispatcher_NoMatch(t *testing.T) {
	var calls []string
	var causes []error
	d := NewDispatcher()
	require.NoError(t, d.RegisterHandlers(Handler{Name: "none", Predicate: never, Action: respond("none", &calls)}))
	d.RegisterErrorHandler(recordingErrorAction(&causes))

	out, err := d.Dispatch(context.Background(), testInput(domain.Request{Type: domain.RequestLaunch, Locale: "en-US"}))
	require.NoError(t, err)
	assert.Equal(t, ErrorHandlerName, out.Handler)
	assert.Equal(t, "error", out.Response.SpeechText)
	assert.ErrorIs(t, out.Cause, domain.ErrNoHandlerMatched)
	require.Len(t, causes, 1)
	assert.Empty(t, calls)
}

func TestDispatcher_ActionFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		action Action
		isErr  error
	}{
		{
			name:   "returns error",
			action: func(context.Context, *Input) (*domain.Response, error) { return nil, boom },
			isErr:  boom,
		},
		{
			name:   "panics",
			action: func(context.Context, *Input) (*domain.Response, error) { panic("kaput") },
		},
		{
			name:   "nil response",
			action: func(context.Context, *Input) (*domain.Response, error) { return nil, nil },
		},
		{
			name:   "nil action",
			action: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var causes []error
			d := NewDispatcher()
			require.NoError(t, d.RegisterHandlers(Handler{Name: "bad", Predicate: always, Action: tt.action}))
			d.RegisterErrorHandler(recordingErrorAction(&causes))

			out, err := d.Dispatch(context.Background(), testInput(domain.Request{Type: domain.RequestLaunch, Locale: "en-US"}))
			require.NoError(t, err, "failures never escape Dispatch")
			assert.Equal(t, "error", out.Response.SpeechText)
			assert.ErrorIs(t, out.Cause, domain.ErrHandlerActionFailed)
			assert.Contains(t, out.Cause.Error(), "bad")
			if tt.isErr != nil {
				assert.ErrorIs(t, out.Cause, tt.isErr)
			}
			assert.Len(t, causes, 1)
		})
	}
}

func TestDispatcher_ErrorActionFailurePropagates(t *testing.T) {
	d := NewDispatcher()
	require.NoError(t, d.RegisterHandlers(Handler{Name: "none", Predicate: never}))
	fatal := errors.New("fatal")
	d.RegisterErrorHandler(func(context.Context, *Input, error) (*domain.Response, error) { return nil, fatal })

	out, err := d.Dispatch(context.Background(), testInput(domain.Request{Type: domain.RequestLaunch, Locale: "en-US"}))
	require.ErrorIs(t, err, fatal)
	assert.Nil(t, out.Response)
	assert.ErrorIs(t, out.Cause, domain.ErrNoHandlerMatched)
}

func TestDispatcher_MissingErrorAction(t *testing.T) {
	d := NewDispatcher()
	require.NoError(t, d.RegisterHandlers(Handler{Name: "none", Predicate: never}))

	_, err := d.Dispatch(context.Background(), testInput(domain.Request{Type: domain.RequestLaunch, Locale: "en-US"}))
	require.ErrorIs(t, err, domain.ErrNoErrorHandler)
	assert.ErrorIs(t, err, domain.ErrNoHandlerMatched)
}

func TestPredicates(t *testing.T) {
	intent := domain.Request{Type: domain.RequestIntentInvoked, IntentName: domain.IntentCancel}
	launch := domain.Request{Type: domain.RequestLaunch}

	assert.True(t, MatchesRequestType(launch, domain.RequestSessionEnded, domain.RequestLaunch))
	assert.False(t, MatchesRequestType(launch))
	assert.True(t, MatchesIntent(intent, domain.IntentStop, domain.IntentCancel))
	assert.False(t, MatchesIntent(intent, domain.IntentHelp))
	assert.False(t, MatchesIntent(domain.Request{Type: domain.RequestLaunch, IntentName: domain.IntentCancel}, domain.IntentCancel),
		"intent name only counts on intent requests")
	assert.True(t, IntentIs(domain.IntentCancel)(intent))
	assert.True(t, RequestTypeIs(domain.RequestIntentInvoked)(intent))
}
