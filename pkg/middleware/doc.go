// Package middleware provides HTTP middleware for serving htmlr documents.
//
// This package includes:
//   - OpenTelemetry tracing for requests and renders
//   - Prometheus metrics for requests, renders and live clients
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.Tracing(
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Handlers wrap renders in child spans:
//
//	ctx, end := middleware.StartRenderSpan(r.Context(), "page")
//	html, err := page.Render(tokens)
//	end(len(html), err)
//
// # Prometheus Metrics
//
//	r.Use(middleware.Prometheus(middleware.WithNamespace("mysite")))
//	r.Handle("/metrics", promhttp.Handler())
//
// Request metrics are labeled with the chi route pattern, not the raw
// path. Renders and live pushes are recorded explicitly with RecordRender,
// RecordLiveConnect, RecordLiveDisconnect and RecordLiveMessages.
package middleware
