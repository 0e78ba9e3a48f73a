package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/htmlr/internal/config"
	htmlrerrors "github.com/vango-dev/htmlr/internal/errors"
	"github.com/vango-dev/htmlr/internal/site"
	"github.com/vango-dev/htmlr/pkg/content"
	"github.com/vango-dev/htmlr/pkg/live"
	"github.com/vango-dev/htmlr/pkg/middleware"
)

const htmlContentType = "text/html; charset=utf-8"

// Store supplies and updates the greetings.
type Store interface {
	Greetings(ctx context.Context) ([]content.Greeting, error)
	Put(ctx context.Context, language, text string) error
}

// Deps are the collaborators of a Server.
type Deps struct {
	Logger *slog.Logger
	Store  Store

	// Hub is created when nil and live is enabled.
	Hub *live.Hub

	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Server serves the site.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	store  Store
	hub    *live.Hub
	router chi.Router
}

// New creates a server and registers its routes.
func New(cfg *config.Config, deps Deps) *Server {
	s := &Server{
		cfg:    cfg,
		logger: deps.Logger,
		store:  deps.Store,
		hub:    deps.Hub,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.hub == nil && cfg.Live.Enabled {
		s.hub = live.NewHub(live.WithLogger(s.logger))
	}
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimw.Recoverer)
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(
			middleware.WithTracerName(cfg.Tracing.TracerName),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != cfg.Metrics.Path
			}),
		))
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Prometheus(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(deps.Registerer),
		))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/", s.handlePage)
	r.Get("/greetings", s.handleGreetings)
	r.Put("/greetings/{language}", s.handlePutGreeting)
	r.Get("/time", s.handleTime)
	r.Get(site.StyleSheetPath, s.handleStyleSheet)
	r.Get("/healthz", s.handleHealth)
	if s.hub != nil {
		r.Get("/live", s.hub.HandleWebSocket)
		r.Get(site.ScriptPath, s.handleLiveScript)
	}

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the live hub, or nil when live is disabled.
func (s *Server) Hub() *live.Hub {
	return s.hub
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return htmlrerrors.New("E132").
			WithDetail("Cannot listen on " + s.cfg.Address()).
			WithSuggestion("Choose another port in htmlr.json or with --port").
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if s.hub != nil {
		go s.hub.Run(runCtx, s.cfg.LiveInterval(), s.renderClock)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Serving", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return htmlrerrors.New("E132").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down", "timeout", s.cfg.ShutdownTimeout())
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancelShutdown()

	// Hijacked WebSocket connections are not closed by Shutdown.
	if s.hub != nil {
		s.hub.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return htmlrerrors.New("E132").WithDetail("Graceful shutdown failed").Wrap(err)
	}
	return nil
}

func (s *Server) renderClock(t time.Time) (live.Fragment, error) {
	html, err := site.RenderNode(context.Background(), "clock", site.Clock(t), nil)
	return live.Fragment{Target: site.ClockID, HTML: html}, err
}

func (s *Server) greetings(ctx context.Context) ([]content.Greeting, error) {
	if s.store == nil {
		return content.DefaultGreetings, nil
	}
	return s.store.Greetings(ctx)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	greetings, err := s.greetings(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to load greetings", err)
		return
	}
	html, err := site.Render(r.Context(), greetings, site.Options{Live: s.hub != nil})
	if err != nil {
		s.fail(w, r, "Failed to render page", err)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

func (s *Server) handleGreetings(w http.ResponseWriter, r *http.Request) {
	greetings, err := s.greetings(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to load greetings", err)
		return
	}
	html, err := site.RenderNode(r.Context(), "greetings", site.Greetings(greetings), nil)
	if err != nil {
		s.fail(w, r, "Failed to render greetings", err)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

func (s *Server) handlePutGreeting(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "greetings are read-only", http.StatusMethodNotAllowed)
		return
	}
	language := chi.URLParam(r, "language")
	text := r.FormValue("text")
	if text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}
	if err := s.store.Put(r.Context(), language, text); err != nil {
		s.fail(w, r, "Failed to store greeting", err)
		return
	}
	s.logger.Info("Greeting stored", "language", language)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTime(w http.ResponseWriter, r *http.Request) {
	html, err := site.RenderNode(r.Context(), "clock", site.Clock(time.Now()), nil)
	if err != nil {
		s.fail(w, r, "Failed to render clock", err)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

func (s *Server) handleStyleSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.StyleSheet))
}

func (s *Server) handleLiveScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(live.ClientScript))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]any{"status": "ok"}
	if s.hub != nil {
		resp["liveClients"] = s.hub.ClientCount()
	}
	json.NewEncoder(w).Encode(resp)
}

// fail logs err with its coded form and sends a bare 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	attrs := []any{"error", err, "request_id", chimw.GetReqID(r.Context())}
	if coded := htmlrerrors.FromMarkup(err); coded != nil {
		attrs = append(attrs, "code", coded.Code)
	}
	s.logger.Error(msg, attrs...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	w.Write([]byte(html))
}

// requestLogger logs one line per request with slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("Request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote_addr", r.RemoteAddr,
				"request_id", chimw.GetReqID(r.Context()),
			)
		})
	}
}
