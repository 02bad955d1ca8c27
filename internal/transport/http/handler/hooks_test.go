package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ManyRagDev/brincar-educando-2/internal/application/mailer"
	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg domain.RenderedMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func newHookServer(t *testing.T, mm *mockMailer) *HookHandler {
	t.Helper()
	svc := mailer.NewService(mailer.ServiceDeps{
		Mailer: mm,
		AppID:  "brincareducando",
	})
	return NewHookHandler(svc)
}

func postHook(t *testing.T, h *HookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/hooks/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.SendEmail(rr, req)
	return rr
}

func TestSendEmail_ForeignTenantRejected(t *testing.T) {
	mm := new(mockMailer)
	h := newHookServer(t, mm)

	rr := postHook(t, h, `{
		"user": {"id": "u1", "email": "alguem@example.com", "user_metadata": {"app_id": "other_app"}},
		"mail_data": {"template_name": "confirmation", "confirmation_url": "https://auth.example.com/confirm?token=abc"}
	}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp HookRejectionEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized_app", resp.Error)
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendEmail_MissingMetadataRejected(t *testing.T) {
	mm := new(mockMailer)
	h := newHookServer(t, mm)

	rr := postHook(t, h, `{"user": {"id": "u1", "email": "alguem@example.com"}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp HookRejectionEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized_app", resp.Error)
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendEmail_AcceptedDispatches(t *testing.T) {
	mm := new(mockMailer)
	mm.On("Send", mock.Anything, mock.MatchedBy(func(msg domain.RenderedMessage) bool {
		return msg.To == "pai@example.com" &&
			strings.Contains(msg.HTMLBody, "https://auth.example.com/confirm?token=abc&type=signup")
	})).Return("msg-123", nil).Once()
	h := newHookServer(t, mm)

	rr := postHook(t, h, `{
		"user": {"id": "u1", "email": "pai@example.com", "user_metadata": {"app_id": "brincareducando"}},
		"mail_data": {"template_name": "confirmation", "confirmation_url": "https://auth.example.com/confirm?token=abc&type=signup"}
	}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp HookResultEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "msg-123", resp.MessageID)
	mm.AssertExpectations(t)
}

func TestSendEmail_TransportFailure(t *testing.T) {
	mm := new(mockMailer)
	mm.On("Send", mock.Anything, mock.Anything).
		Return("", errors.New("smtp dial: connection refused")).Once()
	h := newHookServer(t, mm)

	rr := postHook(t, h, `{
		"user": {"id": "u1", "email": "pai@example.com", "user_metadata": {"app_id": "brincareducando"}},
		"mail_data": {"template_name": "recovery", "otp": "654321"}
	}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp HookResultEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "connection refused")
	assert.NotContains(t, resp.Error, "password")
}

func TestSendEmail_MissingEmailIsServerError(t *testing.T) {
	mm := new(mockMailer)
	h := newHookServer(t, mm)

	rr := postHook(t, h, `{
		"user": {"id": "u1", "user_metadata": {"app_id": "brincareducando"}},
		"mail_data": {"template_name": "confirmation", "confirmation_url": "https://auth.example.com/confirm"}
	}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp HookResultEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "user.email")
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendEmail_MalformedBody(t *testing.T) {
	mm := new(mockMailer)
	h := newHookServer(t, mm)

	rr := postHook(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
