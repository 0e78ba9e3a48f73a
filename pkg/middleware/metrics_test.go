package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/htmlr/pkg/markup"
)

func resetGlobalMetricsForTest(t *testing.T) *prometheus.Registry {
	t.Helper()
	globalMetrics.Store(nil)
	t.Cleanup(func() {
		globalMetrics.Store(nil)
	})
	return prometheus.NewRegistry()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

// seriesCount returns how many series the named family has in reg.
func seriesCount(t *testing.T, reg *prometheus.Registry, name string) int {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return len(f.GetMetric())
		}
	}
	return 0
}

func TestPrometheusMiddleware_RecordsRoutePattern(t *testing.T) {
	reg := resetGlobalMetricsForTest(t)

	r := chi.NewRouter()
	r.Use(Prometheus(WithRegistry(reg)))
	r.Get("/greetings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r.Get("/plain", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	for _, path := range []string{"/greetings/1", "/greetings/2", "/boom", "/plain", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	tests := []struct {
		route string
		code  string
		want  float64
	}{
		{"/greetings/{id}", "201", 2},
		{"/boom", "500", 1},
		{"/plain", "200", 1},
		{"unmatched", "404", 1},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			got := metricCounterValue(t, globalMetrics.Load().requestsTotal.WithLabelValues(tt.route, tt.code))
			if got != tt.want {
				t.Errorf("http_requests_total{%s,%s} = %v, want %v", tt.route, tt.code, got, tt.want)
			}
		})
	}

	if n := seriesCount(t, reg, "htmlr_http_request_duration_seconds"); n != 4 {
		t.Errorf("request duration series = %d, want 4", n)
	}
}

func TestPrometheusMiddleware_Namespace(t *testing.T) {
	reg := resetGlobalMetricsForTest(t)
	Prometheus(WithRegistry(reg), WithNamespace("site"), WithSubsystem("web"))
	RecordLiveMessages(1)

	if seriesCount(t, reg, "site_web_live_messages_total") != 1 {
		t.Error("expected site_web_live_messages_total to be registered")
	}
}

func TestPrometheusMiddleware_InitializesOnce(t *testing.T) {
	reg := resetGlobalMetricsForTest(t)
	Prometheus(WithRegistry(reg))
	first := globalMetrics.Load()

	other := prometheus.NewRegistry()
	Prometheus(WithRegistry(other))
	if globalMetrics.Load() != first {
		t.Error("second Prometheus() call should reuse the metrics")
	}

	RecordLiveMessages(1)
	if seriesCount(t, other, "htmlr_live_messages_total") != 0 {
		t.Error("registry of a later Prometheus() call should stay empty")
	}
	if seriesCount(t, reg, "htmlr_live_messages_total") != 1 {
		t.Error("first registry should receive the recorded metrics")
	}
}

func TestRecordConcurrentWithInit(t *testing.T) {
	reg := resetGlobalMetricsForTest(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Prometheus(WithRegistry(reg))
		}()
		go func() {
			defer wg.Done()
			RecordRender(time.Millisecond, nil)
			RecordLiveMessages(1)
		}()
	}
	wg.Wait()

	if globalMetrics.Load() == nil {
		t.Fatal("metrics were not initialized")
	}
}

func TestRecordRender(t *testing.T) {
	reg := resetGlobalMetricsForTest(t)
	Prometheus(WithRegistry(reg))

	_, validation := markup.New("bad tag")
	unsupported := markup.Must("p").Append(3.5).Err()

	RecordRender(time.Millisecond, nil)
	RecordRender(time.Millisecond, nil)
	RecordRender(time.Millisecond, validation)
	RecordRender(time.Millisecond, unsupported)
	RecordRender(time.Millisecond, errors.New("disk on fire"))

	tests := []struct {
		status, errType string
		want            float64
	}{
		{"success", "", 2},
		{"error", "validation", 1},
		{"error", "unsupported_node", 1},
		{"error", "internal", 1},
	}
	for _, tt := range tests {
		got := metricCounterValue(t, globalMetrics.Load().rendersTotal.WithLabelValues(tt.status, tt.errType))
		if got != tt.want {
			t.Errorf("renders_total{%s,%s} = %v, want %v", tt.status, tt.errType, got, tt.want)
		}
	}
}

func TestRecordLive(t *testing.T) {
	reg := resetGlobalMetricsForTest(t)
	Prometheus(WithRegistry(reg))

	RecordLiveConnect()
	RecordLiveConnect()
	RecordLiveDisconnect()
	RecordLiveMessages(3)
	RecordWebSocketError("write")

	if got := metricGaugeValue(t, globalMetrics.Load().liveClients); got != 1 {
		t.Errorf("live_clients = %v, want 1", got)
	}
	if got := metricCounterValue(t, globalMetrics.Load().liveMessages); got != 3 {
		t.Errorf("live_messages_total = %v, want 3", got)
	}
	if got := metricCounterValue(t, globalMetrics.Load().wsErrors.WithLabelValues("write")); got != 1 {
		t.Errorf("websocket_errors_total{write} = %v, want 1", got)
	}
}

func TestRecordFunctions_NoopWithoutMiddleware(t *testing.T) {
	resetGlobalMetricsForTest(t)

	// Must not panic before Prometheus() is called.
	RecordRender(time.Second, nil)
	RecordLiveConnect()
	RecordLiveDisconnect()
	RecordLiveMessages(1)
	RecordWebSocketError("read")
}
