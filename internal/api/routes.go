package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Routes registers the API endpoints on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/dropdown/classify", h.handleClassify)
	mux.HandleFunc("GET /api/dropdown/content-types", h.handleContentTypes)
	mux.HandleFunc("GET /api/content/dropdown/{contentType}/{contentKey}/options", h.handleOptions)
	mux.HandleFunc("GET /api/content/dropdown/{contentType}/{contentKey}/container", h.handleContainer)
	mux.HandleFunc("GET /api/content/dropdown/{contentType}/{contentKey}/validate", h.handleValidate)
	mux.HandleFunc("GET /api/languages", h.handleLanguages)
	mux.HandleFunc("PUT /api/content-items/{id}/translations/{lang}", h.handleSaveTranslation)

	return mux
}

// RouterOptions configures the middleware stack.
type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
}

// NewRouter returns the API routes wrapped in the standard middleware chain.
// Logging must sit below every middleware that replaces the request, so the
// route pattern set by the mux is visible to it.
func NewRouter(h *Handler, opts RouterOptions, logger *zerolog.Logger) http.Handler {
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	return Chain(h.Routes(),
		RequestID(logger),
		Recovery(),
		Timeout(opts.RequestTimeout),
		Logging(),
		limiter.Middleware(),
	)
}
