package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health"

	healthwatch "github.com/dtroode/volunteer-server/internal/api/grpc/health"
	grpcRouter "github.com/dtroode/volunteer-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/volunteer-server/internal/api/grpc/server"
	httpRouter "github.com/dtroode/volunteer-server/internal/api/http/router"
	httpServer "github.com/dtroode/volunteer-server/internal/api/http/server"
	"github.com/dtroode/volunteer-server/internal/config"
	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/metrics"
	"github.com/dtroode/volunteer-server/internal/model"
	"github.com/dtroode/volunteer-server/internal/notify"
	"github.com/dtroode/volunteer-server/internal/repository/postgres"
	"github.com/dtroode/volunteer-server/internal/server"
	"github.com/dtroode/volunteer-server/internal/service"
	"github.com/dtroode/volunteer-server/internal/session"
	storage "github.com/dtroode/volunteer-server/internal/storage/minio"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 15 * time.Second
)

type codeNotifier interface {
	model.CodeNotifier
	io.Closer
}

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API and the gRPC health endpoint",
		Long: `Start the REST API server and the gRPC health server. Both stop
gracefully on SIGINT, SIGTERM or SIGQUIT.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN, cfg.Database.AutoMigrate)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	storageClient, err := storage.Connect(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	notifier := newNotifier(cfg.Notify, log)
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Error("failed to close notifier", "error", err.Error())
		}
	}()

	sessions := session.New(
		session.WithTTL(cfg.Session.TTL),
		session.WithLogger(log),
	)

	hasher := service.SHA256Hasher{}
	media := service.NewMedia(storageClient, log)

	volunteerRepo := postgres.NewVolunteerRepository(db)
	associationRepo := postgres.NewAssociationRepository(db)

	authService := service.NewAuth(sessions, postgres.NewCredentialRepository(db), notifier, hasher, log, cfg.Session.ConfirmationWindow)
	volunteerService := service.NewVolunteer(volunteerRepo, media, hasher, log)
	associationService := service.NewAssociation(associationRepo, media, hasher, log)
	eventService := service.NewEvent(
		postgres.NewEventRepository(db),
		postgres.NewParticipationRepository(db),
		volunteerRepo,
		associationRepo,
		media,
		log,
	)
	interestService := service.NewInterest(postgres.NewInterestRepository(db))

	engine := httpRouter.New(httpRouter.Services{
		Auth:         authService,
		Guard:        service.NewGuard(sessions),
		Volunteers:   volunteerService,
		Associations: associationService,
		Events:       eventService,
		Interests:    interestService,
		Media:        media,
	}, metrics.New(sessions), log).Register()

	healthServer := health.NewServer()
	watcher := healthwatch.NewWatcher(healthServer, db, healthCheckInterval, log)

	servers := []struct {
		srv model.Server
		sl  model.SecurityLayer
	}{
		{
			srv: httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port)),
			sl:  server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		},
		{
			srv: grpcServer.NewGRPCServer(grpcRouter.New(healthServer, log).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
			sl:  server.NewPlainListener(),
		},
	}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		sessions.Run(ctx, cfg.Session.SweepInterval)
	}()
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			log.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				log.Error("failed to start server", "error", err.Error(), "address", s.Address())
				stop()
			}
		}(s.srv, s.sl)
	}

	logAppVersion(log)

	<-ctx.Done()
	log.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.srv.Stop(shutdownCtx); err != nil {
			log.Error("error during server shutdown", "error", err.Error(), "address", s.srv.Address())
		}
	}

	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

func newNotifier(cfg config.Notify, log *logger.Logger) codeNotifier {
	if cfg.Driver == config.NotifyKafka {
		return notify.NewKafka(notify.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), log)
	}
	return notify.NewLog(log)
}

func logAppVersion(log *logger.Logger) {
	log.Info("build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)
}
