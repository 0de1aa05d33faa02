package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zk-contact-backend/config"
	v1 "zk-contact-backend/internal/delivery/http/v1"
	"zk-contact-backend/internal/domain"
	"zk-contact-backend/internal/usecase"
	"zk-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockMailSender) MissingCredential() string {
	return m.Called().String(0)
}

type stubHealth struct{}

func (stubHealth) Check(context.Context) map[string]string {
	return map[string]string{"status": "ok"}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(sender *MockMailSender, cfg *config.Config, limiter gin.HandlerFunc) *gin.Engine {
	contactUC := usecase.NewContactUsecase(sender, validation.New(), usecase.ContactConfig{
		From:               "no-reply@zkconcept.be",
		FromName:           "ZK Concept",
		InternalRecipients: "ops@zkconcept.be",
	})
	if limiter == nil {
		limiter = func(c *gin.Context) { c.Next() }
	}
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  stubHealth{},
		Config:    cfg,
		Limiter:   limiter,
	})
}

func testConfig() *config.Config {
	return &config.Config{
		GinMode:                  "test",
		AllowedOrigins:           "https://zkconcept.be",
		ContactRateLimit:         2,
		ContactRateWindowSeconds: 600,
	}
}

func contactPayload() map[string]any {
	return map[string]any{
		"formType": "contact",
		"fullName": "Jean Dupont",
		"email":    "jean@example.com",
		"message":  "hello\nworld",
	}
}

func post(t *testing.T, r http.Handler, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestContactEndpointSuccess(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("")

	var internal domain.OutboundEmail
	sender.On("Send", mock.Anything, mock.MatchedBy(func(m domain.OutboundEmail) bool { return m.To[0] == "ops@zkconcept.be" })).
		Return("int-1", nil).
		Run(func(args mock.Arguments) { internal = args.Get(1).(domain.OutboundEmail) })
	sender.On("Send", mock.Anything, mock.MatchedBy(func(m domain.OutboundEmail) bool { return m.To[0] == "jean@example.com" })).
		Return("cli-1", nil)

	w := post(t, newRouter(sender, testConfig(), nil), contactPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true, "internalId": "int-1", "clientId": "cli-1"}, decode(t, w))
	assert.Contains(t, internal.HTML, "hello<br/>world")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestContactEndpointNullIDs(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("")
	sender.On("Send", mock.Anything, mock.Anything).Return("", nil)

	w := post(t, newRouter(sender, testConfig(), nil), contactPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"internalId":null,"clientId":null}`, w.Body.String())
}

func TestContactEndpointWrongMethod(t *testing.T) {
	sender := new(MockMailSender)
	r := newRouter(sender, testConfig(), nil)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/contact", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "Method not allowed", decode(t, w)["error"])
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactEndpointRejections(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("")
	r := newRouter(sender, testConfig(), nil)

	missing := contactPayload()
	delete(missing, "message")
	w := post(t, r, missing)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: message", decode(t, w)["error"])

	w = post(t, r, []string{"not", "an", "object"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON body", decode(t, w)["error"])

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactEndpointMalformedReplyTo(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("")

	var internal domain.OutboundEmail
	sender.On("Send", mock.Anything, mock.MatchedBy(func(m domain.OutboundEmail) bool { return m.To[0] == "ops@zkconcept.be" })).
		Return("int-1", nil).
		Run(func(args mock.Arguments) { internal = args.Get(1).(domain.OutboundEmail) })
	sender.On("Send", mock.Anything, mock.MatchedBy(func(m domain.OutboundEmail) bool { return m.To[0] == "not-an-email" })).
		Return("cli-1", nil)

	payload := contactPayload()
	payload["email"] = "not-an-email"
	w := post(t, newRouter(sender, testConfig(), nil), payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, internal.ReplyTo)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestContactEndpointProviderFailure(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("")
	sender.On("Send", mock.Anything, mock.Anything).
		Return("", &domain.SendError{Provider: "resend", StatusCode: 422, Message: "Invalid `to` field"}).Once()

	w := post(t, newRouter(sender, testConfig(), nil), contactPayload())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Internal email failed", body["error"])
	assert.Equal(t, "Invalid `to` field", body["details"])
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestContactEndpointMissingCredential(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("RESEND_API_KEY")

	w := post(t, newRouter(sender, testConfig(), nil), contactPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Missing RESEND_API_KEY", decode(t, w)["error"])
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactEndpointRateLimited(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("MissingCredential").Return("")
	sender.On("Send", mock.Anything, mock.Anything).Return("id", nil)

	cfg := testConfig()
	r := v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(sender, validation.New(), usecase.ContactConfig{From: "no-reply@zkconcept.be"}),
		HealthUC:  stubHealth{},
		Config:    cfg,
	})

	for i := 0; i < cfg.ContactRateLimit; i++ {
		assert.Equal(t, http.StatusOK, post(t, r, contactPayload()).Code)
	}

	w := post(t, r, contactPayload())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestHealthEndpoint(t *testing.T) {
	r := newRouter(new(MockMailSender), testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestPreviewEndpoint(t *testing.T) {
	r := newRouter(new(MockMailSender), testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mail-preview/devis/internal", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "Nouvelle demande de devis")

	req = httptest.NewRequest(http.MethodGet, "/api/mail-preview/contact/pdf", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewHiddenInRelease(t *testing.T) {
	cfg := testConfig()
	cfg.GinMode = "release"
	r := newRouter(new(MockMailSender), cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mail-preview/contact/client", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
