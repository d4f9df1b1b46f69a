package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/limbo/agencydesk/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	statsService       service.StatsServiceI
	achievementService service.AchievementServiceI
	blocksService      service.BlocksServiceI
	projectsService    service.ProjectsServiceI
	jwtService         JWTServiceI
	limiter            *RateLimiter
	allowedOrigins     []string
}

type ServicesList struct {
	UserService        service.UserServiceI
	StatsService       service.StatsServiceI
	AchievementService service.AchievementServiceI
	BlocksService      service.BlocksServiceI
	ProjectsService    service.ProjectsServiceI
	JwtService         JWTServiceI
}

type Option func(*Server)

func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = NewRateLimiter(rps, burst)
	}
}

func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		statsService:       servicesOptions.StatsService,
		achievementService: servicesOptions.AchievementService,
		blocksService:      servicesOptions.BlocksService,
		projectsService:    servicesOptions.ProjectsService,
		jwtService:         servicesOptions.JwtService,
		limiter:            NewRateLimiter(5, 30),
		allowedOrigins:     []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mountHandlers()
	return s
}

func (s *Server) mountHandlers() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RateLimitMiddleware)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/portal/{token}", s.GetPortal)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Put("/me/telegram", s.LinkTelegram)
			r.Get("/stats", s.GetStats)
			r.Get("/achievements", s.ListAchievements)
			r.Post("/achievements/check", s.CheckAchievements)
			r.Post("/blocks", s.CreateBlock)
			r.Get("/blocks", s.ListBlocks)
			r.Patch("/blocks/{id}", s.SetBlockCompleted)
			r.Delete("/blocks/{id}", s.DeleteBlock)
			r.Post("/projects", s.CreateProject)
			r.Get("/projects", s.ListProjects)
			r.Get("/projects/{id}", s.GetProject)
			r.Post("/pricing/quote", s.Quote)
		})
	})
}

// Handler returns the router wrapped with CORS.
func (s *Server) Handler() http.Handler {
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(s.allowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length", "X-Request-ID"}),
	)
	return cors(s.mx)
}

// Run serves until ctx is done and then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:         address,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go s.limiter.CleanupVisitors(ctx)
	errCh := make(chan error, 1)
	go func() {
		log.WithField("address", address).Info("http server started")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("http server shutdown error: " + err.Error())
	}
	log.Info("http server stopped")
	return nil
}
