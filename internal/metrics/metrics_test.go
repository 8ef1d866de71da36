package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPurchase(t *testing.T) {
	before := testutil.ToFloat64(ticketsPurchased)
	RecordPurchase(3, decimal.NewFromInt(42))
	assert.Equal(t, before+3, testutil.ToFloat64(ticketsPurchased))
	assert.Equal(t, 42.0, testutil.ToFloat64(revenue))
}

func TestRecordDraw(t *testing.T) {
	before := testutil.ToFloat64(winners.WithLabelValues("Second Tier"))
	RecordDraw(map[string]int{"Grand Prize": 1, "Second Tier": 2}, decimal.RequireFromString("59"), time.Millisecond)
	assert.Equal(t, before+2, testutil.ToFloat64(winners.WithLabelValues("Second Tier")))

	RecordDrawFailure("no_tickets")
	assert.GreaterOrEqual(t, testutil.ToFloat64(draws.WithLabelValues("no_tickets")), 1.0)
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordHTTPRequest("GET", "", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lottery_http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="unmatched"`)
}
