package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/handlers"
	"github.com/diegoclair/slack-attendance-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	ReportServiceMock *mocks.MockReportService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ReportServiceMock: mocks.NewMockReportService(ctrl),
	}

	handler = handlers.New(m.ReportServiceMock, SigningSecret)

	return
}

// CreateSlackRequest creates a properly signed /attendance request. An empty
// responseURL makes the handler answer inline.
func CreateSlackRequest(t *testing.T, text, responseURL, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"general"},
		"user_id":      {"U987654321"},
		"user_name":    {"test-user"},
		"command":      {"/attendance"},
		"text":         {text},
		"response_url": {responseURL},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

// ResponseURL stands in for a slash command response_url and collects what
// the handler posts to it
type ResponseURL struct {
	server   *httptest.Server
	messages chan slack.WebhookMessage
}

func NewResponseURL(t *testing.T) *ResponseURL {
	t.Helper()

	r := &ResponseURL{messages: make(chan slack.WebhookMessage, 1)}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var msg slack.WebhookMessage
		if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		r.messages <- msg
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(r.server.Close)

	return r
}

func (r *ResponseURL) URL() string {
	return r.server.URL
}

// Wait returns the next message posted to the response_url
func (r *ResponseURL) Wait(t *testing.T) slack.WebhookMessage {
	t.Helper()

	select {
	case msg := <-r.messages:
		return msg
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no reply posted to response_url")
		return slack.WebhookMessage{}
	}
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}