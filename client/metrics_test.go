package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFetch_RecordsMetrics(t *testing.T) {
	rec := &recorder{status: http.StatusTeapot, body: "no"}
	srv := rec.server(t)
	c := newTestClient(t, srv.URL)

	counter := requestsTotal.WithLabelValues(http.MethodGet, "418")
	before := testutil.ToFloat64(counter)
	_, _ = c.Fetch(context.Background(), "/jobs", nil)
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("requests_total{GET,418} delta = %v", got)
	}
}
