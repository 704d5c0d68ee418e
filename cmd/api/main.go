package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teleclinic/telemed-api/internal/config"
	"github.com/teleclinic/telemed-api/internal/handler"
	consultationHandler "github.com/teleclinic/telemed-api/internal/handler/consultation"
	labTestHandler "github.com/teleclinic/telemed-api/internal/handler/labtest"
	messageHandler "github.com/teleclinic/telemed-api/internal/handler/message"
	patientHandler "github.com/teleclinic/telemed-api/internal/handler/patient"
	"github.com/teleclinic/telemed-api/internal/handler/prometheus"
	userHandler "github.com/teleclinic/telemed-api/internal/handler/user"
	"github.com/teleclinic/telemed-api/internal/identity"
	"github.com/teleclinic/telemed-api/internal/middleware"
	fsrepo "github.com/teleclinic/telemed-api/internal/repository/firestore"
	"github.com/teleclinic/telemed-api/internal/router"
	authService "github.com/teleclinic/telemed-api/internal/service/auth"
	consultationService "github.com/teleclinic/telemed-api/internal/service/consultation"
	labTestService "github.com/teleclinic/telemed-api/internal/service/labtest"
	messageService "github.com/teleclinic/telemed-api/internal/service/message"
	patientService "github.com/teleclinic/telemed-api/internal/service/patient"
	userService "github.com/teleclinic/telemed-api/internal/service/user"
	"github.com/teleclinic/telemed-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	ctx := context.Background()

	// Backend clients are constructed once and injected everywhere;
	// both are safe for concurrent use.
	app, err := identity.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize firebase app")
	}

	provider, err := identity.NewFirebaseProvider(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize identity provider")
	}

	store, err := fsrepo.NewClient(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document store")
	}
	defer store.Close()

	// Repositories
	userRepo := fsrepo.NewUserRepository(store)
	patientRepo := fsrepo.NewPatientRepository(store)
	consultationRepo := fsrepo.NewConsultationRepository(store)
	labTestRepo := fsrepo.NewLabTestRepository(store)
	messageRepo := fsrepo.NewMessageRepository(store)

	// Services
	authSvc := authService.NewService(provider, userRepo, log)
	userSvc := userService.NewService(provider, userRepo)
	patientSvc := patientService.NewService(patientRepo)
	consultationSvc := consultationService.NewService(consultationRepo, patientSvc)
	labTestSvc := labTestService.NewService(labTestRepo, patientSvc)
	messageSvc := messageService.NewService(messageRepo, patientSvc)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	metrics := prometheus.New()

	r := router.NewRouter(
		cfg,
		log,
		authMiddleware,
		metrics,
		handler.NewHandler(),
		userHandler.NewHandler(userSvc),
		patientHandler.NewHandler(patientSvc),
		consultationHandler.NewHandler(consultationSvc),
		labTestHandler.NewHandler(labTestSvc),
		messageHandler.NewHandler(messageSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
