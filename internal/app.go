package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	filestore_adapter "listing-service/internal/adapters/filestore"
	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/fluentlogger"
	"listing-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	eventsPublisher *rabbitmq_adapter.Publisher
	fluentClient    *fluent.Fluent
	logger          port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	listingStorageAdapter, err := postgres_adapter.NewPostgresListingStorageAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres listing storage adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres listing storage adapter: %w", err)
	}

	favoritesRepository, err := postgres_adapter.NewPostgresFavoritesRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres favorites repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres favorites repository: %w", err)
	}

	fileStorage, err := filestore_adapter.NewLocalFileStorage(appConfig.Uploads.Dir, appConfig.Uploads.PublicBaseURL)
	if err != nil {
		appLogger.Error("Failed to create local file storage", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create local file storage: %w", err)
	}

	// События опциональны: сервис полноценно работает и без брокера
	var eventsPublisher *rabbitmq_adapter.Publisher
	var listingEvents port.ListingEventsPort
	if appConfig.RabbitMQ.Enabled {
		eventsPublisher, err = rabbitmq_adapter.NewPublisher(rabbitmq_adapter.PublisherConfig{
			URL:             appConfig.RabbitMQ.URL,
			ExchangeName:    constants.ListingExchange,
			ExchangeType:    "direct",
			DurableExchange: true,
		}, baseLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		listingEvents, err = rabbitmq_adapter.NewListingEventsAdapter(eventsPublisher)
		if err != nil {
			appLogger.Error("Failed to create listing events adapter", err, nil)
			eventsPublisher.Close()
			dbPool.Close()
			return nil, err
		}
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	findListingsUseCase := usecase.NewFindListingsUseCase(listingStorageAdapter)
	getSimilarListingsUseCase := usecase.NewGetSimilarListingsUseCase(listingStorageAdapter)
	estimateMortgageUseCase := usecase.NewEstimateMortgageUseCase()
	getListingDetailsUseCase := usecase.NewGetListingDetailsUseCase(listingStorageAdapter)
	saveListingUseCase := usecase.NewSaveListingUseCase(listingStorageAdapter, listingEvents)
	updateListingUseCase := usecase.NewUpdateListingUseCase(listingStorageAdapter, listingEvents)
	updateListingStatusUseCase := usecase.NewUpdateListingStatusUseCase(listingStorageAdapter, listingEvents)
	deleteListingUseCase := usecase.NewDeleteListingUseCase(listingStorageAdapter, listingEvents)
	getOwnerListingsUseCase := usecase.NewGetOwnerListingsUseCase(listingStorageAdapter)
	toggleFavoriteUseCase := usecase.NewToggleFavoriteUseCase(favoritesRepository)
	getUserFavoritesUseCase := usecase.NewGetUserFavoritesUseCase(favoritesRepository, listingStorageAdapter)
	uploadAttachmentUseCase := usecase.NewUploadAttachmentUseCase(fileStorage)

	// --- 5. REST API Server ---
	discoveryHandlers := rest.NewDiscoveryHandler(findListingsUseCase, getSimilarListingsUseCase, estimateMortgageUseCase)
	listingHandlers := rest.NewListingHandler(getListingDetailsUseCase, saveListingUseCase,
		updateListingUseCase, updateListingStatusUseCase, deleteListingUseCase, getOwnerListingsUseCase)
	favoritesHandlers := rest.NewFavoritesHandler(toggleFavoriteUseCase, getUserFavoritesUseCase)
	uploadHandlers := rest.NewUploadHandler(uploadAttachmentUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, discoveryHandlers, listingHandlers,
		favoritesHandlers, uploadHandlers, appConfig.Rest.AllowedOrigins, appConfig.Uploads.Dir, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		eventsPublisher: eventsPublisher,
		fluentClient:    fluentClient,
		logger:          appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Единый контекст приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventsPublisher != nil {
			if err := a.eventsPublisher.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
