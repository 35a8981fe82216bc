// Package api is the HTTP read surface: trending signals, narrative
// listings, and cost reporting. Handlers read through the cache layer;
// all writes happen in the background jobs.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/config"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/database"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
)

// Server wires the echo router to the services layer.
type Server struct {
	echo       *echo.Echo
	db         *database.Client
	signals    *services.SignalService
	narratives *services.NarrativeService
	articles   *services.ArticleService
	costs      *services.CostService
	cache      cache.Cache
	ttl        config.CacheConfig
	http       *http.Server
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(
	db *database.Client,
	signals *services.SignalService,
	narratives *services.NarrativeService,
	articles *services.ArticleService,
	costs *services.CostService,
	c cache.Cache,
	ttl config.CacheConfig,
) *Server {
	e := echo.New()
	e.Use(requestLogger())
	e.Use(securityHeaders())

	s := &Server{
		echo:       e,
		db:         db,
		signals:    signals,
		narratives: narratives,
		articles:   articles,
		costs:      costs,
		cache:      c,
		ttl:        ttl,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/signals/trending", s.trendingSignalsHandler)
	v1.GET("/narratives/active", s.activeNarrativesHandler)
	v1.GET("/narratives/archived", s.archivedNarrativesHandler)
	v1.GET("/narratives/resurrections", s.resurrectionsHandler)
	v1.GET("/narratives/:id", s.getNarrativeHandler)
	v1.GET("/costs/summary", s.costSummaryHandler)
}

// Start blocks serving HTTP until Shutdown or a listen error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Echo exposes the router for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
