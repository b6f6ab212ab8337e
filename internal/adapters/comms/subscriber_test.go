package comms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voiceskill/internal/adapters/alexa"
	"voiceskill/internal/domain"
)

type mockSkill struct {
	mock.Mock
}

func (m *mockSkill) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.Response)
	return resp, args.Error(1)
}

func newTestSubscriber(skill *mockSkill) *Subscriber {
	return NewSubscriber(skill, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReply(t *testing.T) {
	t.Run("answers with a response envelope", func(t *testing.T) {
		skill := &mockSkill{}
		skill.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), mock.MatchedBy(func(r domain.Request) bool {
			return r.Type == domain.RequestLaunch && r.Locale == "es-ES"
		})).Return(domain.NewResponseBuilder().Speak("Bienvenido").Reprompt("Bienvenido").Build(), nil)

		out := newTestSubscriber(skill).Reply(context.Background(),
			[]byte(`{"request":{"type":"LaunchRequest","requestId":"r1","locale":"es-ES"}}`))

		var env alexa.ResponseEnvelope
		require.NoError(t, json.Unmarshal(out, &env))
		require.NotNil(t, env.Response.OutputSpeech)
		assert.Equal(t, "Bienvenido", env.Response.OutputSpeech.Text)
		skill.AssertExpectations(t)
	})

	t.Run("malformed payload", func(t *testing.T) {
		skill := &mockSkill{}
		out := newTestSubscriber(skill).Reply(context.Background(), []byte(`nope`))

		assert.JSONEq(t, `{"error":"invalid_request"}`, string(out))
		skill.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("skill failure carries its code", func(t *testing.T) {
		skill := &mockSkill{}
		skill.On("Handle", mock.Anything, mock.Anything).Return(nil, domain.ErrUnknownLocale)

		out := newTestSubscriber(skill).Reply(context.Background(),
			[]byte(`{"request":{"type":"LaunchRequest","locale":"fr-FR"}}`))
		assert.JSONEq(t, `{"error":"unknown_locale"}`, string(out))
	})
}
