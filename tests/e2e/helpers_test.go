//go:build e2e

package e2e_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/coursepilot-backend/internal/app"
	authpkg "github.com/heartmarshall/coursepilot-backend/internal/auth"
	"github.com/heartmarshall/coursepilot-backend/internal/config"
	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

const (
	testSecret = "e2e-secret-at-least-32-chars-long-for-tests"
	testIssuer = "coursepilot-e2e"
)

// fakeModel stands in for the messages API. Streaming calls return the
// chat reply; plain calls answer by prompt content.
type fakeModel struct {
	reply string
}

func (m *fakeModel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req struct {
		Stream bool `json:"stream"`
	}
	_ = json.Unmarshal(body, &req)

	if req.Stream {
		writeStream(w, m.reply)
		return
	}

	text := "- vectors\n- matrices"
	switch {
	case bytes.Contains(body, []byte(`exams`)):
		text = `{"exams":[]}`
	case bytes.Contains(body, []byte(`title`)):
		text = "New course chat"
	}
	w.Header().Set("Content-Type", "application/json")
	payload, _ := json.Marshal(text)
	fmt.Fprintf(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-test",`+
		`"content":[{"type":"text","text":%s}],"stop_reason":"end_turn","stop_sequence":null,`+
		`"usage":{"input_tokens":1,"output_tokens":1}}`, payload)
}

func writeStream(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/event-stream")
	event := func(name, data string) {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	}
	event("message_start", `{"type":"message_start","message":{"id":"msg_1","type":"message","role":"assistant",`+
		`"model":"claude-test","content":[],"stop_reason":null,"stop_sequence":null,"usage":{"input_tokens":1,"output_tokens":1}}}`)
	event("content_block_start", `{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`)
	for _, word := range strings.SplitAfter(text, " ") {
		payload, _ := json.Marshal(word)
		event("content_block_delta", fmt.Sprintf(`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":%s}}`, payload))
	}
	event("content_block_stop", `{"type":"content_block_stop","index":0}`)
	event("message_delta", `{"type":"message_delta","delta":{"stop_reason":"end_turn","stop_sequence":null},"usage":{"output_tokens":2}}`)
	event("message_stop", `{"type":"message_stop"}`)
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Model  *fakeModel
	jwt    *authpkg.JWTManager
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container and a fake model endpoint.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	model := &fakeModel{}
	modelSrv := httptest.NewServer(model)
	t.Cleanup(modelSrv.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20, EventHeartbeat: time.Second},
		Auth:   config.AuthConfig{JWTSecret: testSecret, JWTIssuer: testIssuer},
		LLM:    config.LLMConfig{APIKey: "test-key", Model: "claude-test", MaxTokens: 256, SummaryMaxTokens: 64},
		Assistant: config.AssistantConfig{
			MinCourseNameLen:  3,
			PlaceholderSlugs:  []string{"new-course", "course"},
			PlaceholderNames:  []string{"New Course", "Untitled"},
			Languages:         domain.DefaultLanguages,
			UploadConcurrency: 2,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
		RateLimit: config.RateLimitConfig{ChatPerMinute: 100, CleanupEvery: time.Minute},
	}

	stack := app.NewStack(cfg, logger, pool, option.WithBaseURL(modelSrv.URL), option.WithMaxRetries(0))
	srv := httptest.NewServer(stack.Handler)
	t.Cleanup(func() {
		srv.Close()
		stack.Close()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Model:  model,
		jwt:    authpkg.NewJWTManager(testSecret, testIssuer),
	}
}

// newUser mints a token for a fresh user.
func (ts *testServer) newUser(t *testing.T) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(uuid.New(), time.Hour)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// jsonRequest sends v as JSON and decodes the response into out when it
// is non-nil. It returns the status code.
func (ts *testServer) jsonRequest(t *testing.T, method, path, token string, v, out any) int {
	t.Helper()
	var body io.Reader
	if v != nil {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	resp := ts.do(t, method, path, token, body, "application/json")
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type chatSnapshot struct {
	Type    string                   `json:"type"`
	Display string                   `json:"display"`
	Actions []domain.CanonicalAction `json:"actions"`
	Done    bool                     `json:"done"`
	Error   string                   `json:"error"`
}

// chatWithFile sends one user turn with a text attachment and returns the
// streamed events.
func (ts *testServer) chatWithFile(t *testing.T, token, message, fileName, content string) []chatSnapshot {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	payload, err := json.Marshal(map[string]any{
		"messages": []domain.ChatMessage{{Role: domain.RoleUser, Content: message}},
	})
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("payload", string(payload)))
	fw, err := mw.CreateFormFile("files", fileName)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp := ts.do(t, http.MethodPost, "/api/chat", token, &buf, mw.FormDataContentType())
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []chatSnapshot
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line, ok := strings.CutPrefix(sc.Text(), "data: ")
		if !ok {
			continue
		}
		var ev chatSnapshot
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		events = append(events, ev)
	}
	require.NoError(t, sc.Err())
	return events
}
