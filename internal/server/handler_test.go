package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askfolio/internal/classify"
	"askfolio/internal/knowledge"
	"askfolio/internal/perception"
	"askfolio/internal/resolve"
)

type fakeBackend struct {
	response string
	err      error
}

func (f *fakeBackend) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeBackend) Available() bool { return true }

func newTestRouter(backend perception.LLMClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pipeline := resolve.New(knowledge.NewBase(), classify.New(classify.DefaultConfig()), backend, nil)
	engine := gin.New()
	Router(engine, NewAskHandler(pipeline, nil))
	return engine
}

func doAsk(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAsk_LocalAnswer(t *testing.T) {
	engine := newTestRouter(nil)

	w := doAsk(t, engine, `{"question":"what are your skills"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resolve.SourceLocal, resp.Source)
	assert.Equal(t, knowledge.NewBase().Lookup(knowledge.TopicSkills), resp.Response)
}

func TestAsk_RemoteAnswer(t *testing.T) {
	engine := newTestRouter(&fakeBackend{response: "He lives in Bengaluru."})

	w := doAsk(t, engine, `{"question":"where does he live"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resolve.SourceRemote, resp.Source)
	assert.Equal(t, "He lives in Bengaluru.", resp.Response)
}

func TestAsk_BlankQuestion(t *testing.T) {
	engine := newTestRouter(nil)

	for _, body := range []string{`{"question":""}`, `{"question":"   "}`, `{}`} {
		w := doAsk(t, engine, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestAsk_InvalidJSON(t *testing.T) {
	engine := newTestRouter(nil)

	w := doAsk(t, engine, `{"question":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAsk_BackendUnavailable(t *testing.T) {
	engine := newTestRouter(nil)

	w := doAsk(t, engine, `{"question":"what is the weather"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp DegradedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Fallback, "degraded responses must still carry an answer")
	assert.Equal(t, resolve.SourceFallback, resp.Source)
}

func TestAsk_QuotaError(t *testing.T) {
	engine := newTestRouter(&fakeBackend{err: errors.New("quota exceeded (429)")})

	w := doAsk(t, engine, `{"question":"what is the weather"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp DegradedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Fallback)
}

func TestAsk_AuthError(t *testing.T) {
	engine := newTestRouter(&fakeBackend{err: errors.New("API key not valid")})

	w := doAsk(t, engine, `{"question":"what is the weather"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	cases := []struct {
		name    string
		backend perception.LLMClient
		want    bool
	}{
		{"with backend", &fakeBackend{response: "x"}, true},
		{"without backend", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestRouter(tc.backend)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, tc.want, resp.BackendAvailable)
		})
	}
}
