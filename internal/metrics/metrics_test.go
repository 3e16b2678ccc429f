package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.ObserveGatewayCall(OutcomeSuccess, 0.4)
	c.ObserveGatewayCall(OutcomeStatusError, 0.1)
	c.ObserveGatewayCall(OutcomeSuccess, 1.2)
	c.IncNoData()
	c.IncHealthLogsCreated()
	c.IncReportsUploaded()
	c.IncReportsUploaded()
	c.IncOrphanedBlobs()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.GatewayCallsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.GatewayCallsTotal.WithLabelValues(OutcomeStatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.InsightsNoDataTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HealthLogsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ReportsUploadedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.OrphanedBlobsTotal))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveGatewayCall(OutcomeError, 1)
		c.IncNoData()
		c.IncHealthLogsCreated()
		c.IncReportsUploaded()
		c.IncOrphanedBlobs()
	})
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.IncReportsUploaded()
	c.RequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/logs", "200").Inc()

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "gw_health_records_records_reports_uploaded_total 1")
	assert.Contains(t, string(body), `gw_health_records_http_requests_total{method="GET",route="/api/v1/logs",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
