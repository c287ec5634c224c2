package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/junohq/backend/api/handler"
	"github.com/junohq/backend/internal/config"
	"github.com/junohq/backend/internal/infrastructure/buffer"
	"github.com/junohq/backend/internal/infrastructure/monitor"
	pgInfra "github.com/junohq/backend/internal/infrastructure/postgres"
	redisInfra "github.com/junohq/backend/internal/infrastructure/redis"
	"github.com/junohq/backend/internal/middleware"
	"github.com/junohq/backend/internal/router"
	"github.com/junohq/backend/internal/services"
	"github.com/junohq/backend/internal/services/lifecycle"
	"github.com/junohq/backend/pkg/httpcontext"
	"github.com/junohq/backend/pkg/logger"
	"github.com/junohq/backend/repository/postgres"
	redisRepo "github.com/junohq/backend/repository/redis"
	accountUC "github.com/junohq/backend/usecase/account"
	calendarUC "github.com/junohq/backend/usecase/calendar"
	clusterUC "github.com/junohq/backend/usecase/cluster"
	insightUC "github.com/junohq/backend/usecase/insight"
	storeUC "github.com/junohq/backend/usecase/store"
	suggestUC "github.com/junohq/backend/usecase/suggest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	clusterRepo := postgres.NewClusterRepository(pool)
	eventRepo := postgres.NewCalendarEventRepository(pool)
	updateLog := redisRepo.NewUpdateLog(redisClient, cfg.Assistant.UpdateLogCap)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		userRepo,
		taskRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	accountUseCase := accountUC.New(userRepo, bufferBridge, zapLogger, cfg.Assistant.AgentBrand)
	storeUseCase := storeUC.New(taskRepo, bufferBridge, zapLogger)
	suggestUseCase := suggestUC.New(storeUseCase, userRepo, updateLog, zapLogger, cfg.Assistant.SuggestionLimit)
	insightUseCase := insightUC.New(nil, zapLogger)
	clusterUseCase := clusterUC.New(clusterRepo, userRepo, taskRepo, eventRepo, updateLog, zapLogger, cfg.Assistant.UpdateLogCap)
	calendarUseCase := calendarUC.New(eventRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		User:       apiHandler.NewUserHandler(accountUseCase, ctxAdapter, zapLogger),
		Task:       apiHandler.NewTaskHandler(storeUseCase, ctxAdapter, zapLogger),
		Suggestion: apiHandler.NewSuggestionHandler(suggestUseCase, ctxAdapter, zapLogger),
		Cluster:    apiHandler.NewClusterHandler(clusterUseCase, ctxAdapter, zapLogger),
		Insight:    apiHandler.NewInsightHandler(insightUseCase, ctxAdapter, zapLogger),
		Calendar:   apiHandler.NewCalendarHandler(calendarUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	requireUser := middleware.RequireUser(zapLogger)
	r := router.New(handlers, requireUser)
	handler := middleware.RequestLog(zapLogger)(r.Handler)

	server := &fasthttp.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
