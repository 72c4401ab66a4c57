package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/skyframe/skyframe/internal/facts"
	"github.com/skyframe/skyframe/internal/feed"
	"github.com/skyframe/skyframe/internal/httputil"
	"github.com/skyframe/skyframe/internal/media"
	"github.com/skyframe/skyframe/internal/ratelimit"
	"github.com/skyframe/skyframe/internal/site"
)

const (
	healthPath   = "/api/health"
	defaultRate  = 2
	defaultBurst = 10
)

type Config struct {
	Source   feed.Source
	Resolver media.Resolver
	Facts    facts.Picker
	BaseURL  string
	Title    string
	// RateLimit is requests per second per visitor on routes that hit the
	// feed. Zero selects the default.
	RateLimit float64
	Burst     int
}

type Server struct {
	router  chi.Router
	site    *site.Handler
	limiter *ratelimit.Limiter
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{BaseURL: cfg.BaseURL}))

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = defaultRate
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	handler := site.NewHandler(cfg.Source, cfg.Resolver)
	handler.SetFactPicker(cfg.Facts)
	handler.SetTitle(cfg.Title)

	s := &Server{
		router:  r,
		site:    handler,
		limiter: ratelimit.NewLimiter(rps, burst),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get(healthPath, s.handleHealth)
	s.router.Get("/", s.site.Home)

	s.router.Group(func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Get(site.GalleryPath, s.site.Gallery)
		r.Get("/api/items", s.site.Items)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
