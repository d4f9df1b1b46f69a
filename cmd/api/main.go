// @title Agencydesk API
// @description Capacity planning, productivity streaks and client price portal for small agencies
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/limbo/agencydesk/internal/api"
	"github.com/limbo/agencydesk/internal/jobs"
	"github.com/limbo/agencydesk/internal/notifier"
	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/internal/service"
	"github.com/limbo/agencydesk/pkg/cleanup"
	"github.com/limbo/agencydesk/pkg/config"
	jwtservice "github.com/limbo/agencydesk/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.WithError(err).Fatal("config loading failed")
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg, repository.PoolOpts{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	usersRepo := repository.NewUsersRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)
	achievementsRepo := repository.NewAchievementsRepo(pool)
	blocksRepo := repository.NewBlocksRepo(pool)

	userService := service.NewUserService(usersRepo)
	statsService := service.NewStatsService(statsRepo, achievementsRepo)
	achievementService := service.NewAchievementService(blocksRepo, achievementsRepo, statsService)
	blocksService := service.NewBlocksService(blocksRepo, statsRepo, achievementService)
	projectsService := service.NewProjectsService(repository.NewProjectsRepo(pool))

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	api.RegisterMetrics(prometheus.DefaultRegisterer)

	if cfg.TelegramBotToken != "" {
		tg, err := notifier.NewTelegram(cfg.TelegramBotToken)
		if err != nil {
			log.WithError(err).Fatal("telegram notifier setup failed")
		}
		digest := service.NewDigestService(usersRepo, statsService, blocksRepo, tg)
		scheduler := jobs.NewScheduler(digest, cfg.DigestSchedule, cfg.Location())
		if err = scheduler.Start(ctx); err != nil {
			log.WithError(err).Fatal("scheduler start failed")
		}
		cleanup.Register(&cleanup.Job{
			Name: "stopping scheduler",
			F: func() error {
				scheduler.Stop()
				return nil
			},
		})
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN is empty, daily digest disabled")
	}

	serv := api.New(&api.ServicesList{
		UserService:        userService,
		StatsService:       statsService,
		AchievementService: achievementService,
		BlocksService:      blocksService,
		ProjectsService:    projectsService,
		JwtService:         jwtservice.New(cfg.JWTSecret, cfg.TokenTTL),
	},
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithAllowedOrigins(cfg.AllowedOrigins()),
	)
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		log.WithError(err).Error("server error")
	}
	if err = cleanup.CleanUp(); err != nil {
		log.WithError(err).Error("cleanup finished with errors")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.AppEnv == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
