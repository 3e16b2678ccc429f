package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-health-records/internal/config"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

type nopS3 struct{}

func (nopS3) PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return &s3.PutObjectOutput{}, nil
}

func (nopS3) DeleteObject(context.Context, *s3.DeleteObjectInput, ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	return &s3.DeleteObjectOutput{}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Host = "localhost"
	cfg.App.Port = "8080"
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Exp = time.Hour
	cfg.Gateway.URL = "http://gateway.invalid/v1"
	cfg.Storage.Bucket = "medical-reports"
	cfg.Storage.MaxUploadBytes = 10 << 20
	return cfg
}

func newTestRouter(t *testing.T, apiKey string) (http.Handler, sqlmock.Sqlmock, *deps) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := testConfig()
	d := wire(sqlx.NewDb(sqlDB, "sqlmock"), nil, nil, nopS3{}, apiKey, "http://storage.local/medical-reports", cfg)
	return newRouter(d, cfg), mock, d
}

func TestRouter_PreflightAnyPath(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	for _, path := range []string{"/api/v1/insights", "/api/v1/logs", "/nowhere"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, path, nil))

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Empty(t, rr.Body.String(), path)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "authorization, x-client-info, apikey, content-type", rr.Header().Get("Access-Control-Allow-Headers"), path)
	}
}

func TestRouter_PreflightIsLoggedAndCounted(t *testing.T) {
	router, _, d := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/v1/logs", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.RequestsTotal.WithLabelValues(http.MethodOptions, "unmatched", "200")))
}

func TestRouter_InsightsEmptyBody(t *testing.T) {
	router, _, _ := newTestRouter(t, "key")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/insights", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"No health data found. Please add some health logs first."}`, rr.Body.String())
}

func TestRouter_InsightsWithoutKey(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(`{"healthData":[]}`)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"error":"INSIGHT_GATEWAY_API_KEY is not configured"}`, rr.Body.String())
}

func TestRouter_InsightsNoData(t *testing.T) {
	router, _, _ := newTestRouter(t, "key")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(`{"healthData":[]}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"No health data found. Please add some health logs first."}`, rr.Body.String())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router, _, _ := newTestRouter(t, "key")

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/me/insights"},
		{http.MethodPost, "/api/v1/logs"},
		{http.MethodGet, "/api/v1/logs"},
		{http.MethodGet, "/api/v1/logs/trends"},
		{http.MethodPost, "/api/v1/reports"},
		{http.MethodGet, "/api/v1/reports"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPut, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/roles/patient"},
		{http.MethodGet, "/api/v1/dashboard"},
	}

	for _, rt := range routes {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(rt.method, rt.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", rt.method, rt.path)
	}
}

func TestRouter_DashboardWithToken(t *testing.T) {
	router, mock, d := newTestRouter(t, "key")

	userID := uuid.New()
	token, err := d.tokener.Generate(context.Background(), userID)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM health_logs").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM medical_reports").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"logs":3,"reports":1,"insights":0}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Metrics(t *testing.T) {
	router, _, _ := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestNewKafkaWriter_DoesNotBlockRequests(t *testing.T) {
	w := newKafkaWriter([]string{"broker-1:9092", "broker-2:9092"}, "health-records.events")
	defer w.Close()

	assert.True(t, w.Async)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.NotNil(t, w.Completion)
	assert.Equal(t, "health-records.events", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
