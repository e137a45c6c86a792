package commuteroutes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shonan-transit/commute-routes/config"
	"github.com/shonan-transit/commute-routes/planner"
	"github.com/shonan-transit/commute-routes/timetable"
)

// Server owns the HTTP surface over one immutable timetable store.
type Server struct {
	cfg    *config.AppConfig
	store  *timetable.Store
	cache  *routeCache
	loc    *time.Location
	now    func() time.Time
	engine *gin.Engine
	http   *http.Server
}

// NewServer wires the store, the planner and the routes into a server that
// is ready to start.
func NewServer(cfg *config.AppConfig, store *timetable.Store) (*Server, error) {
	loc, err := time.LoadLocation(cfg.Search.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Search.Timezone, err)
	}
	s := &Server{
		cfg:   cfg,
		store: store,
		cache: newRouteCache(planner.New(store)),
		loc:   loc,
		now:   time.Now,
	}
	s.engine = s.setupRouter()
	return s, nil
}

func (s *Server) setupRouter() *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/routes", s.handleRoutes)
		api.GET("/debug/:leg", s.handleDebugLeg)
	}

	// Front end, only when a web root is configured
	if root := s.cfg.Server.WebRoot; root != "" {
		router.StaticFile("/", filepath.Join(root, "index.html"))
		router.StaticFile("/index.html", filepath.Join(root, "index.html"))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return router
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Start begins serving in the background and returns immediately.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM and then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
