package preview

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/html"
	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/model"
	"github.com/QAddict/ruix/pkg/telemetry"
	"github.com/QAddict/ruix/pkg/view"
)

// maxStateBody bounds PUT request bodies.
const maxStateBody = 1 << 20

// Page is rendered by the server.
type Page interface {
	// Document builds the page, reporting region passes to obs.
	Document(obs view.Observer) *memdom.Document
	// States returns the cells exposed through the state API.
	States() map[string]model.Settable
}

// Options configures the preview server.
type Options struct {
	// Addr is the listen address used by Run.
	Addr string

	// Logger receives request and lifecycle logs. Default slog.Default().
	Logger *slog.Logger

	// Registry collects metrics. Default: a fresh registry.
	Registry *prometheus.Registry

	// DisableMetrics removes the /metrics route.
	DisableMetrics bool

	// ShutdownTimeout bounds graceful shutdown in Run. Default 5s.
	ShutdownTimeout time.Duration

	// Observer additionally receives region update passes.
	Observer view.Observer
}

// Server is the preview server.
type Server struct {
	opts   Options
	logger *slog.Logger

	// mu serializes cell mutation and rendering of doc.
	mu     sync.Mutex
	doc    *memdom.Document
	states map[string]model.Settable

	hub     *Hub
	router  chi.Router
	metrics *serverMetrics
}

type serverMetrics struct {
	clients      prometheus.Gauge
	updates      *prometheus.CounterVec
	broadcasts   prometheus.Counter
	renderedSize prometheus.Gauge
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	factory := promauto.With(reg)
	return &serverMetrics{
		clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "ruix",
			Subsystem: "preview",
			Name:      "clients",
			Help:      "Number of connected preview clients",
		}),
		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ruix",
			Subsystem: "preview",
			Name:      "state_updates_total",
			Help:      "Total number of cell replacements through the state API",
		}, []string{"state"}),
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ruix",
			Subsystem: "preview",
			Name:      "broadcasts_total",
			Help:      "Total number of body updates pushed to clients",
		}),
		renderedSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "ruix",
			Subsystem: "preview",
			Name:      "body_bytes",
			Help:      "Size of the last rendered body HTML",
		}),
	}
}

// New builds the page and returns a server for it.
func New(page Page, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		opts:    opts,
		logger:  opts.Logger,
		metrics: newServerMetrics(opts.Registry),
	}
	s.hub = NewHub(s.logger, func(n int) { s.metrics.clients.Set(float64(n)) })

	obs := telemetry.Multi(
		telemetry.NewMetrics(telemetry.WithRegistry(opts.Registry)),
		telemetry.NewTracing(),
		telemetry.NewLogObserver(s.logger),
		opts.Observer,
	)
	s.doc = page.Document(obs)
	h := html.New(s.doc)
	h.Wrap(s.doc.Head(), h.El("script", ClientScript))

	s.states = page.States()
	for _, m := range s.states {
		m.ObserveChanges(func(any) { s.broadcast() })
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		s.hub.HandleWebSocket(w, req, s.BodyHTML)
	})
	r.Route("/api/state", func(r chi.Router) {
		r.Get("/", s.handleStates)
		r.Get("/{name}", s.handleGetState)
		r.Put("/{name}", s.handlePutState)
	})
	if !s.opts.DisableMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok\n")
	})
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// BodyHTML returns the current inner HTML of the body.
func (s *Server) BodyHTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memdom.InnerHTML(s.doc.Body())
}

// Set replaces the cell called name. It returns an R201 error for unknown
// names and an R202 error when the cell or one of its bindings rejects the
// value with a coded panic.
func (s *Server) Set(name string, value any) (err error) {
	m, ok := s.states[name]
	if !ok {
		return errors.New("R201").WithDetailf("no state named %q", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*errors.Error)
			if !ok {
				panic(r)
			}
			err = errors.New("R202").WithDetailf("state %q rejected the value", name).Wrap(re)
		}
	}()
	m.Set(value)
	s.metrics.updates.WithLabelValues(name).Inc()
	return nil
}

// broadcast runs inside a cell notification, with mu held by Set.
func (s *Server) broadcast() {
	body := memdom.InnerHTML(s.doc.Body())
	s.metrics.renderedSize.Set(float64(len(body)))
	s.metrics.broadcasts.Inc()
	s.hub.Broadcast(Message{Type: MessageHTML, HTML: body})
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	var sb strings.Builder
	s.mu.Lock()
	err := memdom.RenderDocument(&sb, s.doc, memdom.RenderOptions{})
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, errors.New("R200").Wrap(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, sb.String())
}

func (s *Server) handleStates(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(s.states))
	for name := range s.states {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]any, len(names))
	s.mu.Lock()
	for _, name := range names {
		out[name] = s.states[name].Get()
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetState(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	m, ok := s.states[name]
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("R201").WithDetailf("no state named %q", name))
		return
	}
	s.mu.Lock()
	v := m.Get()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) handlePutState(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if _, ok := s.states[name]; !ok {
		s.writeError(w, http.StatusNotFound, errors.New("R201").WithDetailf("no state named %q", name))
		return
	}

	var value any
	dec := json.NewDecoder(io.LimitReader(req.Body, maxStateBody))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("R202").WithDetail(err.Error()))
		return
	}

	if err := s.Set(name, normalizeNumbers(value)); err != nil {
		status := http.StatusInternalServerError
		if errors.HasCode(err, "R202") {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return
	}
	s.logger.Info("state replaced", "state", name, "request_id", middleware.GetReqID(req.Context()))
	s.handleGetState(w, req)
}

// normalizeNumbers converts json.Number values to int64 when integral and
// float64 otherwise.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []any:
		for i := range t {
			t[i] = normalizeNumbers(t[i])
		}
	case map[string]any:
		for k := range t {
			t[k] = normalizeNumbers(t[k])
		}
	}
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	body := errorBody{Message: err.Error()}
	if re, ok := errors.As(err); ok {
		body = errorBody{Code: re.Code, Message: re.Message, Detail: re.Detail}
	}
	s.writeJSON(w, status, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "error", err)
		http.Error(w, `{"code":"R200","message":"Preview server failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		s.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(req.Context()),
		)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		s.hub.Close()
		if err != nil {
			return errors.New("R200").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("R200").Wrap(err)
	}
	return <-errCh
}
