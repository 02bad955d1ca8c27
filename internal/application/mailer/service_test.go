package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// --- mocks ---

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, msg domain.RenderedMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

type mockMailLog struct{ mock.Mock }

func (m *mockMailLog) Put(ctx context.Context, e *domain.MailLogEntry) error {
	return m.Called(ctx, e).Error(0)
}

// --- helpers ---

const ownTenant = "brincareducando"

func newTestService(ml *mockMailer, log MailLogStore) Service {
	return NewService(ServiceDeps{Mailer: ml, MailLog: log, AppID: ownTenant})
}

func acceptedEvent() domain.NotificationEvent {
	return domain.NotificationEvent{
		UserID:          "user-1",
		UserEmail:       "a@x.com",
		TenantTag:       ownTenant,
		Kind:            domain.EventSignupConfirmation,
		ConfirmationURL: "https://x/y",
	}
}

// --- tenant admission ---

func TestHandle_TenantMismatch_NoTransportCall(t *testing.T) {
	for _, tag := range []string{"other_app", "", "Brincareducando", "brincareducando "} {
		ml := &mockMailer{}
		svc := newTestService(ml, nil)

		event := acceptedEvent()
		event.TenantTag = tag
		outcome, err := svc.Handle(context.Background(), event)

		require.NoError(t, err, "tag %q", tag)
		assert.Equal(t, domain.DispatchRejected, outcome.Status, "tag %q", tag)
		assert.Equal(t, domain.ReasonTenantMismatch, outcome.Reason, "tag %q", tag)
		ml.AssertNotCalled(t, "Send")
	}
}

func TestHandle_TenantMismatch_EvenWithoutEmail(t *testing.T) {
	// A foreign event missing its email is a routing decision, not a
	// contract violation: the gate runs before field validation.
	ml := &mockMailer{}
	svc := newTestService(ml, nil)

	outcome, err := svc.Handle(context.Background(), domain.NotificationEvent{TenantTag: "other_app"})

	require.NoError(t, err)
	assert.Equal(t, domain.DispatchRejected, outcome.Status)
	ml.AssertNotCalled(t, "Send")
}

// --- validation ---

func TestHandle_MissingEmail_ValidationError(t *testing.T) {
	ml := &mockMailer{}
	svc := newTestService(ml, nil)

	event := acceptedEvent()
	event.UserEmail = ""
	outcome, err := svc.Handle(context.Background(), event)

	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "user.email")
	ml.AssertNotCalled(t, "Send")
}

// --- dispatch ---

func TestHandle_Accepted_SingleTransportCall(t *testing.T) {
	ml := &mockMailer{}
	ml.On("Send", mock.Anything, mock.Anything).Return("msg-1@brincareducando.com.br", nil).Once()
	svc := newTestService(ml, nil)

	outcome, err := svc.Handle(context.Background(), acceptedEvent())

	require.NoError(t, err)
	assert.Equal(t, domain.DispatchDispatched, outcome.Status)
	assert.Equal(t, domain.ReasonAccepted, outcome.Reason)
	assert.Equal(t, "msg-1@brincareducando.com.br", outcome.MessageID)
	ml.AssertExpectations(t)

	sent := ml.Calls[0].Arguments.Get(1).(domain.RenderedMessage)
	assert.Equal(t, "a@x.com", sent.To)
	assert.Contains(t, sent.HTMLBody, "https://x/y")
}

func TestHandle_NoDedup_IdenticalEventsSendTwice(t *testing.T) {
	// At-most-once is per call; the component must NOT suppress a repeat of
	// an identical event.
	ml := &mockMailer{}
	ml.On("Send", mock.Anything, mock.Anything).Return("msg-1", nil).Twice()
	svc := newTestService(ml, nil)

	event := acceptedEvent()
	_, err := svc.Handle(context.Background(), event)
	require.NoError(t, err)
	_, err = svc.Handle(context.Background(), event)
	require.NoError(t, err)

	ml.AssertNumberOfCalls(t, "Send", 2)
}

func TestHandle_TransportFailure_DeliveryError(t *testing.T) {
	ml := &mockMailer{}
	ml.On("Send", mock.Anything, mock.Anything).Return("", errors.New("dial tcp: connection refused")).Once()
	svc := newTestService(ml, nil)

	outcome, err := svc.Handle(context.Background(), acceptedEvent())

	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrDelivery)
	// Provider text is kept for diagnosis; credentials must never appear.
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotContains(t, strings.ToLower(err.Error()), "password")
}

// --- mail log ---

func TestHandle_LogsSentDispatch(t *testing.T) {
	ml := &mockMailer{}
	ml.On("Send", mock.Anything, mock.Anything).Return("msg-9", nil).Once()
	logStore := &mockMailLog{}
	logStore.On("Put", mock.Anything, mock.Anything).Return(nil).Once()
	svc := newTestService(ml, logStore)

	_, err := svc.Handle(context.Background(), acceptedEvent())
	require.NoError(t, err)

	logStore.AssertExpectations(t)
	entry := logStore.Calls[0].Arguments.Get(1).(*domain.MailLogEntry)
	assert.Equal(t, "sent", entry.Status)
	assert.Equal(t, ownTenant, entry.TenantTag)
	assert.Equal(t, "msg-9", entry.MessageID)
}

func TestHandle_LogsFailedDispatch(t *testing.T) {
	ml := &mockMailer{}
	ml.On("Send", mock.Anything, mock.Anything).Return("", errors.New("smtp 550")).Once()
	logStore := &mockMailLog{}
	logStore.On("Put", mock.Anything, mock.Anything).Return(nil).Once()
	svc := newTestService(ml, logStore)

	_, err := svc.Handle(context.Background(), acceptedEvent())
	require.Error(t, err)

	entry := logStore.Calls[0].Arguments.Get(1).(*domain.MailLogEntry)
	assert.Equal(t, "failed", entry.Status)
	assert.Contains(t, entry.ErrorMsg, "smtp 550")
}

func TestHandle_LogStoreError_DoesNotFailDispatch(t *testing.T) {
	ml := &mockMailer{}
	ml.On("Send", mock.Anything, mock.Anything).Return("msg-1", nil).Once()
	logStore := &mockMailLog{}
	logStore.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down")).Once()
	svc := newTestService(ml, logStore)

	outcome, err := svc.Handle(context.Background(), acceptedEvent())

	require.NoError(t, err)
	assert.Equal(t, domain.DispatchDispatched, outcome.Status)
}

// --- parse boundary ---

func TestParseEvent_ReadsTenantTagFromMetadata(t *testing.T) {
	var p HookPayload
	p.User.ID = "user-1"
	p.User.Email = "a@x.com"
	p.User.UserMetadata = map[string]interface{}{"app_id": "other_app", "theme": "dark"}

	event := ParseEvent(p)

	assert.Equal(t, "other_app", event.TenantTag)
	assert.Equal(t, "a@x.com", event.UserEmail)
	assert.Equal(t, domain.EventOther, event.Kind)
}

func TestParseEvent_MissingMetadata_EmptyTag(t *testing.T) {
	var p HookPayload
	p.User.Email = "a@x.com"

	event := ParseEvent(p)

	assert.Empty(t, event.TenantTag)
}

func TestParseEvent_NonStringAppID_EmptyTag(t *testing.T) {
	var p HookPayload
	p.User.UserMetadata = map[string]interface{}{"app_id": 42}

	event := ParseEvent(p)

	assert.Empty(t, event.TenantTag)
}

func TestParseEvent_MailDataAndKind(t *testing.T) {
	var p HookPayload
	p.User.Email = "a@x.com"
	p.MailData = &struct {
		Subject         string `json:"subject"`
		TemplateName    string `json:"template_name"`
		OTP             string `json:"otp"`
		ConfirmationURL string `json:"confirmation_url"`
	}{
		Subject:         "Reset your password",
		TemplateName:    "recovery",
		OTP:             "123456",
		ConfirmationURL: "https://x/recover",
	}

	event := ParseEvent(p)

	assert.Equal(t, domain.EventPasswordRecovery, event.Kind)
	assert.Equal(t, "123456", event.OTPCode)
	assert.Equal(t, "https://x/recover", event.ConfirmationURL)
	assert.Equal(t, "Reset your password", event.RawSubjectHint)
}
