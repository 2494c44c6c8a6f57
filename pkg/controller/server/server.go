package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"
	"github.com/secmon-lab/graw/pkg/utils/metrics"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to client statuses and reports anything
// else.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrTenantNotFound), errors.Is(err, types.ErrRevisionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, types.ErrValidationFailed):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, types.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	default:
		errutil.HandleError(r.Context(), "fail to handle request", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

type config struct {
	enableMetrics bool
	apiToken      types.APIToken
}

type Option func(*config)

// WithAPIToken enables the configuration route. Its callers must present
// token as a bearer token.
func WithAPIToken(token types.APIToken) Option {
	return func(cfg *config) {
		cfg.apiToken = token
	}
}

// WithMetrics exposes the Prometheus collectors at /metrics.
func WithMetrics() Option {
	return func(cfg *config) {
		cfg.enableMetrics = true
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	if cfg.enableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Route("/tenants/{tenantID}", func(r chi.Router) {
		r.Get("/status", getStatus(uc))
		r.Get("/revisions/latest", getLatestRevision(uc))
		r.Get("/revisions/{revision}", getRevision(uc))
		if cfg.apiToken != "" {
			r.With(authorize(cfg.apiToken)).Put("/config", putConfig(uc))
		}
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
