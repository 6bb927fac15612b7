// Command server runs the coaching platform HTTP API.
//
// @title                       eSports Coaching Platform API
// @version                     1.0
// @description                 Accounts, catalog, content, testimonials and bookings for the coaching platform.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/esportscoach/coaching-platform/internal/api"
	"github.com/esportscoach/coaching-platform/internal/api/handler"
	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/service"
	mongodb "github.com/esportscoach/coaching-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/esportscoach/coaching-platform/internal/infrastructure/db/redis"
	"github.com/esportscoach/coaching-platform/internal/infrastructure/mail"
	"github.com/esportscoach/coaching-platform/internal/infrastructure/queue"
	"github.com/esportscoach/coaching-platform/internal/infrastructure/security"
	"github.com/esportscoach/coaching-platform/internal/infrastructure/seed"
	"github.com/esportscoach/coaching-platform/internal/pkg/config"
	"github.com/esportscoach/coaching-platform/pkg/logger"
)

func main() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "coaching-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Security ---
	key, err := security.DecodeSigningKey(cfg.JWT.Secret)
	if err != nil {
		return err
	}
	codec := security.NewJWTCodec(key, cfg.TokenTTL())
	hasher, err := security.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:       cfg.Mongo.URI,
		Database:  cfg.Mongo.Database,
		TLSCAFile: cfg.Mongo.TLSCAFile,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongodb.NewUserRepository(db)
	catalogRepo := mongodb.NewServiceRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	testimonialRepo := mongodb.NewTestimonialRepository(db)
	preferencesRepo := mongodb.NewPreferencesRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":    users.EnsureIndexes,
		"services": catalogRepo.EnsureIndexes,
		"content":  contentRepo.EnsureIndexes,
		"bookings": bookingRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
		log.Debug().Str("collection", name).Msg("indexes ensured")
	}

	// --- Notifications ---
	var mailer queue.Mailer = mail.NewLogMailer(log)
	if cfg.Mail.SendGridAPIKey != "" {
		mailer = mail.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromName, cfg.Mail.FromAddress)
	} else {
		log.Warn().Msg("SENDGRID_API_KEY not set, notifications will only be logged")
	}
	dispatcher := queue.NewDispatcher(cfg.Mail.Workers, cfg.Mail.QueueSize, mailer, log)
	dispatcher.Start(ctx)

	// --- Services ---
	resolver := service.NewPrincipalResolver(users)
	authService := service.NewAuthService(users, hasher, codec, dispatcher, log)
	bookingService := service.NewBookingService(
		bookingRepo,
		catalogRepo,
		resolver,
		redisdb.NewBookingGuard(rdb, cfg.Booking.GuardWindow),
		dispatcher,
		log,
	)

	if cfg.Seed.Enabled {
		seeder := seed.NewAccounts(resolver, users, hasher, log)
		if err := seeder.Ensure(ctx,
			seed.Account{Username: cfg.Seed.AdminUsername, Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword, Role: domain.RoleAdmin},
			seed.Account{Username: cfg.Seed.CoachUsername, Email: cfg.Seed.CoachEmail, Password: cfg.Seed.CoachPassword, Role: domain.RoleCoach},
		); err != nil {
			return err
		}
	}

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Log:      log,
		Tokens:   codec,
		Resolver: resolver,
		Auth:     authService,
		Profiles: service.NewProfileService(users, preferencesRepo),
		Catalog:  service.NewCatalogService(catalogRepo),
		Content:  service.NewContentService(contentRepo),
		Reviews:  service.NewTestimonialService(testimonialRepo),
		Bookings: bookingService,
		Readiness: map[string]handler.CheckFunc{
			"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: cfg.CORS.AllowCredentials,
		CORSMaxAge:       cfg.CORS.MaxAge,
		AuthRateLimit:    cfg.RateLimit.AuthRPS,
		AuthRateBurst:    cfg.RateLimit.AuthBurst,
		Registry:         prometheus.NewRegistry(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
