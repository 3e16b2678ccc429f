package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_LabelsByRoutePattern(t *testing.T) {
	c := metrics.NewCollector()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(c))
	r.Get("/api/v1/roles/{role}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, role := range []string{"patient", "doctor"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/roles/"+role, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/roles/{role}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
