package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"marketplace-chat/cache"
	"marketplace-chat/config/common"
	"marketplace-chat/config/logger"
	"marketplace-chat/handler"
	"marketplace-chat/messaging"
	"marketplace-chat/metrics"
	"marketplace-chat/middleware"
	"marketplace-chat/realtime"
	"marketplace-chat/repository"
	"marketplace-chat/routes"
	"marketplace-chat/security"
	"marketplace-chat/usecase"
)

const shutdownTimeout = 10 * time.Second

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Config    *common.Config
	AppLogger *logger.AppLogger
	Redis     *redis.Client
	Metrics   *metrics.Metrics
	Publisher *messaging.Publisher
	Hub       *realtime.Hub
}

func RunServer() {
	newConfig := common.NewViper()
	level, logDir := newConfig.GetLogConfig()
	log := NewLogger(level)
	appLogger := logger.NewLogger(logDir)

	if err := run(newConfig, log, appLogger); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(newConfig *common.Config, log *logrus.Logger, appLogger *logger.AppLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newDB, err := NewDB(newConfig, appLogger)
	if err != nil {
		return err
	}
	defer newDB.Close()

	redisConfig := newConfig.GetRedisConfig()
	redisClient, err := cache.NewRedisClient(ctx, cache.RedisOptions{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := NewFiber(newConfig, log)
	_, corsOrigins := newConfig.GetServerConfig()
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	newJWT := security.NewJWT(newConfig)
	aC := &AppConfig{
		App:        app,
		Validate:   NewValidator(),
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: middleware.NewMiddleware(newJWT, log),
		Config:     newConfig,
		AppLogger:  appLogger,
		Redis:      redisClient,
		Metrics:    metrics.New(registry),
	}

	if kafkaConfig := newConfig.GetKafkaConfig(); len(kafkaConfig.Brokers) > 0 {
		aC.Publisher = messaging.NewPublisher(messaging.NewKafkaWriter(kafkaConfig.Brokers, kafkaConfig.Topic), aC.Metrics, log)
		defer func() {
			if err := aC.Publisher.Close(); err != nil {
				log.WithError(err).Warn("failed to close event publisher")
			}
		}()
	} else {
		log.Info("KAFKA_BROKERS not set, message events are disabled")
	}

	App(aC)
	defer aC.Hub.CloseAll()

	port, _ := newConfig.GetServerConfig()
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// App builds the object graph on top of the infrastructure in aC and registers every route.
func App(aC *AppConfig) {
	db := aC.GetDB()
	redisConfig := aC.Config.GetRedisConfig()
	realtimeConfig := aC.Config.GetRealtimeConfig()
	rateLimitConfig := aC.Config.GetRateLimitConfig()

	newAuthRepository := repository.NewAuthRepository(db)
	newUserRepository := repository.NewUserRepository(db)
	newMessageRepository := repository.NewMessageRepository(db, repository.NewMonotonicClock())

	presence := cache.NewPresenceStore(aC.Redis, aC.Config.GetAppConfig(), redisConfig.PresenceTTL)
	aC.Hub = realtime.NewHub(presence, aC.Metrics, aC.AppLogger)
	dispatcher := realtime.NewDispatcher(aC.Hub, realtimeConfig.PushTimeout, aC.Metrics, aC.AppLogger)

	var events usecase.MessageEventPublisher
	if aC.Publisher != nil {
		events = aC.Publisher
	}

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, aC.Validate, db, aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, presence, aC.AppLogger)
	newChatUsecase := usecase.NewChatUsecase(newMessageRepository, newUserRepository, dispatcher, events, aC.Validate, aC.Metrics, aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	wsHandler := handler.NewWebSocketHandler(newChatUsecase, aC.Hub, realtimeConfig, aC.Metrics, aC.AppLogger)

	route := routes.ConfigRoute{
		App:         aC.App,
		Middleware:  aC.Middleware,
		AuthHandler: newAuthHandler,
		UserHandler: newUserHandler,
		ChatHandler: newChatHandler,
		SendLimiter: middleware.NewRateLimiter(aC.Redis, aC.Config.GetAppConfig()+":send", rateLimitConfig.Limit, rateLimitConfig.Window, aC.Logger, aC.Metrics),
		Metrics:     aC.Metrics,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
