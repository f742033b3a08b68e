// srv/ui/ui.go
package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	adbot "github.com/opd-ai/adbot/src"
)

// ScriptUI is the HTTP surface over the script generator. All state lives in
// the session cache; nothing is shared across sessions and nothing survives
// the TTL.
type ScriptUI struct {
	router   chi.Router
	sessions *cache.Cache
	logger   zerolog.Logger

	// newClient builds the engine client for a session. Tests swap in a
	// stub backend here.
	newClient func(cfg adbot.EngineConfig) (adbot.Generator, error)
}

// Options tune the UI; zero values fall back to sensible defaults.
type Options struct {
	SessionTTL time.Duration
	RateLimit  int // LLM calls per window per IP
	RateWindow time.Duration
	Logger     zerolog.Logger
}

// NewScriptUI wires routes, middleware and the session cache.
func NewScriptUI(opts Options) *ScriptUI {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Minute
	}

	ui := &ScriptUI{
		router:   chi.NewRouter(),
		sessions: cache.New(opts.SessionTTL, 1*time.Hour),
		logger:   opts.Logger,
		newClient: func(cfg adbot.EngineConfig) (adbot.Generator, error) {
			return adbot.NewClient(cfg)
		},
	}
	ui.setupRoutes(opts)
	return ui
}

func (ui *ScriptUI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ui.router.ServeHTTP(w, r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (ui *ScriptUI) setupRoutes(opts Options) {
	ui.router.Use(middleware.Recoverer)
	ui.router.Use(corsMiddleware)
	ui.router.Use(ui.requestLogger)

	ui.router.Get("/health", ui.handleHealth)
	ui.router.Get("/api/options", ui.handleOptions)
	ui.router.Post("/api/sessions", ui.handleCreateSession)

	ui.router.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Put("/profile", ui.handleEditProfile)
		r.Get("/script/export", ui.handleExportScript)

		// The LLM-calling routes are the expensive ones.
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(opts.RateLimit, opts.RateWindow))
			r.Post("/connect", ui.handleConnect)
			r.Post("/research", ui.handleResearch)
			r.Post("/script", ui.handleGenerateScript)
		})
	})
}

func (ui *ScriptUI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		ui.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
