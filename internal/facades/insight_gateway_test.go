package facades

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Stub gateway ---
type stubGateway struct {
	mu       sync.Mutex
	bodies   [][]byte
	headers  []http.Header
	paths    []string
	status   int
	response string
}

func (s *stubGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.bodies = append(s.bodies, body)
	s.headers = append(s.headers, r.Header.Clone())
	s.paths = append(s.paths, r.URL.Path)
	s.mu.Unlock()

	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.response))
}

func (s *stubGateway) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bodies)
}

func newStub(t *testing.T, status int, response string) (*stubGateway, *httptest.Server) {
	t.Helper()
	stub := &stubGateway{status: status, response: response}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return stub, srv
}

// --- Tests ---
func TestInsightGateway_Complete_Success(t *testing.T) {
	text := "Your heart rate is stable.\n\n- Keep hydrated  \n- Sleep 8h ✓"
	raw, err := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"role": "assistant", "content": text}},
			map[string]any{"message": map[string]any{"role": "assistant", "content": "second"}},
		},
	})
	require.NoError(t, err)

	stub, srv := newStub(t, http.StatusOK, string(raw))
	collector := metrics.NewCollector()
	gw := NewInsightGatewayHTTPFacade(srv.URL+"/v1/", "secret-key", WithGatewayMetrics(collector))

	got, err := gw.Complete(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, text, got)
	assert.Equal(t, 1, stub.calls())

	assert.Equal(t, "/v1/chat/completions", stub.paths[0])
	assert.Equal(t, "Bearer secret-key", stub.headers[0].Get("Authorization"))
	assert.Equal(t, "application/json", stub.headers[0].Get("Content-Type"))

	var sent models.ChatCompletionRequest
	require.NoError(t, json.Unmarshal(stub.bodies[0], &sent))
	assert.Equal(t, "google/gemini-2.5-flash", sent.Model)
	require.Len(t, sent.Messages, 2)
	assert.Equal(t, models.ChatMessage{Role: "system", Content: SystemInstruction}, sent.Messages[0])
	assert.Equal(t, models.ChatMessage{Role: "user", Content: "the prompt"}, sent.Messages[1])

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.GatewayCallsTotal.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestInsightGateway_Complete_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusPaymentRequired, http.StatusBadGateway, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			stub, srv := newStub(t, status, `{"error":"upstream"}`)
			gw := NewInsightGatewayHTTPFacade(srv.URL, "k")

			got, err := gw.Complete(context.Background(), "p")
			assert.Empty(t, got)

			var statusErr *GatewayStatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, status, statusErr.StatusCode)
			assert.Contains(t, err.Error(), strconv.Itoa(status))
			assert.Equal(t, 1, stub.calls(), "no retry attempts")
		})
	}
}

func TestInsightGateway_Complete_MalformedBody(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{name: "not json", response: "<html>oops</html>"},
		{name: "no choices", response: `{"choices":[]}`, wantErr: ErrEmptyCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, srv := newStub(t, http.StatusOK, tt.response)
			gw := NewInsightGatewayHTTPFacade(srv.URL, "k")

			_, err := gw.Complete(context.Background(), "p")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, 1, stub.calls())
		})
	}
}

func TestInsightGateway_Complete_SamePromptSameRequest(t *testing.T) {
	stub, srv := newStub(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`)
	gw := NewInsightGatewayHTTPFacade(srv.URL, "k")

	for i := 0; i < 2; i++ {
		_, err := gw.Complete(context.Background(), "identical prompt")
		require.NoError(t, err)
	}

	require.Equal(t, 2, stub.calls())
	assert.Equal(t, stub.bodies[0], stub.bodies[1])
}

func TestInsightGateway_NotConfigured(t *testing.T) {
	stub, srv := newStub(t, http.StatusOK, `{}`)
	gw := NewInsightGatewayHTTPFacade(srv.URL, "")

	assert.ErrorIs(t, gw.Ready(), ErrGatewayNotConfigured)

	_, err := gw.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
	assert.Equal(t, 0, stub.calls())
}

func TestInsightGateway_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := NewInsightGatewayHTTPFacade(url, "k")
	_, err := gw.Complete(context.Background(), "p")
	assert.Error(t, err)
}

func TestGatewayStatusError_Message(t *testing.T) {
	assert.Equal(t, "AI gateway error: 503", (&GatewayStatusError{StatusCode: 503}).Error())
}

func TestInsightGateway_ModelIsFixed(t *testing.T) {
	t.Setenv("INSIGHT_GATEWAY_MODEL", "openai/gpt-4o")

	stub, srv := newStub(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`)
	gw := NewInsightGatewayHTTPFacade(srv.URL, "k")

	_, err := gw.Complete(context.Background(), "p")
	require.NoError(t, err)

	var sent models.ChatCompletionRequest
	require.NoError(t, json.Unmarshal(stub.bodies[0], &sent))
	assert.Equal(t, InsightModel, sent.Model)
	assert.Equal(t, "google/gemini-2.5-flash", sent.Model)
}
