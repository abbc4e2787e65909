package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/jobboardly/backend/internal/api"
	"github.com/jobboardly/backend/internal/clients/gemini"
	"github.com/jobboardly/backend/internal/config"
	"github.com/jobboardly/backend/internal/logger"
	"github.com/jobboardly/backend/internal/metrics"
	"github.com/jobboardly/backend/internal/notifier"
	"github.com/jobboardly/backend/internal/repositories"
	"github.com/jobboardly/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

func newMatchService(ctx context.Context, cfg *config.Config) *services.MatchService {

	aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)

	return services.NewMatchService(aiClient)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)
	companies := repositories.NewCompaniesRepository(dbContext.DB)
	cachedCompanies := repositories.NewCachedCompanies(companies)
	users := repositories.NewUsersRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	notifications := repositories.NewNotificationsRepository(dbContext.DB)

	bus := EventBus.New()

	matcher := newMatchService(ctx, cfg)

	if _, err = services.NewNotificationService(bus, notifications, cachedCompanies); err != nil {
		log.Fatalf("can't create notification service: %v", err)
	}

	cleaner, err := services.NewNotificationsCleaner(notifications, cfg.Cleanup.NotificationRetentionDays)
	if err != nil {
		log.Fatalf("can't create notifications cleaner: %v", err)
	}
	defer cleaner.Stop()

	if cfg.Telegram.Enabled() {
		if _, err = notifier.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.AdminChatID, bus); err != nil {
			log.Fatalf("can't create telegram notifier: %v", err)
		}
	}

	server := api.NewServer(api.Deps{
		Jobs:            services.NewJobService(bus, jobs, cachedCompanies),
		Companies:       services.NewCompanyService(bus, companies),
		Users:           services.NewUserService(users),
		Applications:    services.NewApplicationService(bus, applications, users, jobs),
		Moderation:      services.NewModerationService(bus, jobs, companies, users),
		Recommendations: services.NewRecommendationService(matcher, users, jobs),
		Notifications:   notifications,
	})

	go func() {
		if err := server.Run(cfg.Server.Port); err != nil {
			log.Fatalf("http server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down services...")
}
