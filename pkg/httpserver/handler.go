package httpserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form parameters read by the validate endpoint.
const (
	ParamValue     = "value"
	ParamLabel     = "label"
	ParamMinLength = "minlength"
	ParamMaxLength = "maxlength"
	ParamPattern   = "pattern"
	ParamMultiple  = "multiple"
)

const defaultMaxBodyBytes = 64 << 10

type handler struct {
	registry     *validator.Registry
	logger       *slog.Logger
	maxBodyBytes int64
	limiter      *limiter
}

// HandlerOption configures the validation API handler.
type HandlerOption func(*handler)

// WithMaxBodyBytes limits the size of a submitted form. Values <= 0 are ignored.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler returns the validation API:
//
//	GET  /healthz          liveness check
//	GET  /kinds            supported field kinds
//	POST /validate/{kind}  validate a form submitted value, rate limited
//	                       per client IP when WithRateLimit is set
//
// A nil registry uses validator.DefaultRegistry. A nil logger discards logs.
func NewHandler(reg *validator.Registry, log *slog.Logger, opts ...HandlerOption) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &handler{
		registry:     reg,
		logger:       log.With(logger.Component("http")),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", h.health)
	r.Get("/kinds", h.kinds)
	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.middleware(h.logger))
		}
		r.Post("/validate/{kind}", h.validate)
	})

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *handler) kinds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]field.Kind{"kinds": field.Kinds()})
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := field.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form: "+err.Error())
		return
	}

	opts, err := fieldOptions(r.PostForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts = append(opts, field.WithLogger(h.logger))
	if h.registry != nil {
		opts = append(opts, field.WithRegistry(h.registry))
	}

	f, err := field.New(kind, ParamValue, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	value, err := f.Validate(ctx, field.RawValue(r.PostForm, ParamValue))
	if err != nil && !validator.IsValidationError(err) {
		h.logger.WarnContext(ctx, "field misconfigured", logger.Kind(kind.String()), logger.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := field.NewResult(f.Name(), value, err)
	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}

	h.logger.InfoContext(ctx, "value validated",
		logger.Kind(kind.String()),
		slog.Bool("valid", result.Valid),
		logger.ErrorCount(len(result.Errors)),
		slog.String("client_ip", ClientIP(r)),
	)
	writeJSON(w, status, result)
}

// fieldOptions maps the optional form parameters to field options.
func fieldOptions(form url.Values) ([]field.Option, error) {
	var opts []field.Option

	if label := strings.TrimSpace(form.Get(ParamLabel)); label != "" {
		opts = append(opts, field.WithLabel(label))
	}
	if s := form.Get(ParamMinLength); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParam, ParamMinLength, err)
		}
		opts = append(opts, field.WithMinLength(n))
	}
	if s := form.Get(ParamMaxLength); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParam, ParamMaxLength, err)
		}
		opts = append(opts, field.WithMaxLength(n))
	}
	if form.Has(ParamPattern) {
		opts = append(opts, field.WithPattern(form.Get(ParamPattern)))
	}
	if s := form.Get(ParamMultiple); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParam, ParamMultiple, err)
		}
		opts = append(opts, field.WithMultiple(b))
	}

	return opts, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
