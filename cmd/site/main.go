package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cloudstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/svitanok-centre/site/internal/di"
	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/handlers"
	"github.com/svitanok-centre/site/internal/platform/auth"
	"github.com/svitanok-centre/site/internal/platform/config"
	pfirestore "github.com/svitanok-centre/site/internal/platform/firestore"
	"github.com/svitanok-centre/site/internal/platform/observability"
	platformstorage "github.com/svitanok-centre/site/internal/platform/storage"
	"github.com/svitanok-centre/site/internal/repositories"
	firestoreRepo "github.com/svitanok-centre/site/internal/repositories/firestore"
	"github.com/svitanok-centre/site/internal/services"
)

func main() {
	ctx := context.Background()
	startedAt := time.Now().UTC()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("site")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		var validation *config.ValidationError
		if errors.As(err, &validation) {
			logger.Fatal("invalid configuration", zap.Strings("fields", validation.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	firestoreProvider := pfirestore.NewProvider(cfg.Firestore)
	defer func() {
		if err := firestoreProvider.Close(); err != nil {
			logger.Warn("firestore close error", zap.Error(err))
		}
	}()

	storageClient, err := cloudstorage.NewClient(ctx)
	if err != nil {
		logger.Fatal("failed to initialise storage client", zap.Error(err))
	}
	defer func() {
		if err := storageClient.Close(); err != nil {
			logger.Warn("storage close error", zap.Error(err))
		}
	}()

	uploader, err := platformstorage.NewUploader(cfg.Storage, storageClient)
	if err != nil {
		logger.Fatal("failed to initialise uploader", zap.Error(err))
	}

	registry, err := firestoreRepo.NewRegistry(firestoreProvider, cfg.Firestore,
		repositories.DependencyProbe{
			Name:  "storage",
			Probe: bucketProbe(storageClient, cfg.Storage.Bucket),
		},
	)
	if err != nil {
		logger.Fatal("failed to initialise repositories", zap.Error(err))
	}

	container, err := di.NewContainer(cfg, di.Deps{
		Registry: registry,
		Uploader: uploader,
		Build:    services.BuildInfo{Version: buildVersion(), StartedAt: startedAt},
	})
	if err != nil {
		logger.Fatal("failed to assemble services", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := container.Close(closeCtx); err != nil {
			logger.Warn("container close error", zap.Error(err))
		}
	}()

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase)
	if err != nil {
		logger.Fatal("failed to initialise firebase verifier", zap.Error(err))
	}

	publicHandlers, err := handlers.NewPublicHandlers(handlers.PublicHandlersDeps{
		News:     container.Services.News,
		Projects: container.Services.Projects,
		Contact:  container.Services.Contact,
		PageSize: cfg.Content.PageSize,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		logger.Fatal("failed to initialise public handlers", zap.Error(err))
	}
	adminHandlers, err := handlers.NewAdminHandlers(handlers.AdminHandlersDeps{
		News:     container.Services.News,
		Projects: container.Services.Projects,
		Uploads:  container.Services.Uploads,
	})
	if err != nil {
		logger.Fatal("failed to initialise admin handlers", zap.Error(err))
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.RequestLoggerMiddleware(),
			handlers.LocaleMiddleware(domain.Lang(cfg.Content.DefaultLang)),
		),
		handlers.WithHealthHandlers(handlers.NewHealthHandlers(container.Services.System)),
		handlers.WithPublicRoutes(publicHandlers.Routes),
		handlers.WithAdminRoutes(adminHandlers.Routes, auth.RequireAdmin(verifier, cfg.Content.AdminEmail)),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("svitanok site api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func bucketProbe(client *cloudstorage.Client, bucket string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := client.Bucket(bucket).Attrs(ctx)
		return err
	}
}

func buildVersion() string {
	if version := strings.TrimSpace(os.Getenv("BUILD_VERSION")); version != "" {
		return version
	}
	return "dev"
}
