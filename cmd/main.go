package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/incident_dashboard/internal/config"
	"github.com/shenikar/incident_dashboard/internal/engine"
	v1 "github.com/shenikar/incident_dashboard/internal/handler/http/v1"
	"github.com/shenikar/incident_dashboard/internal/models"
	"github.com/shenikar/incident_dashboard/internal/repository"
	"github.com/shenikar/incident_dashboard/internal/service"
	"github.com/shenikar/incident_dashboard/internal/upstream"
	"github.com/shenikar/incident_dashboard/pkg/logger"
	redisclient "github.com/shenikar/incident_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Dashboard API
// @version 1.0
// @description Gateway that synchronizes incident state from the upstream response system and serves citizen and responder dashboards.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиент вышестоящей системы реагирования
	client := upstream.NewHTTPClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, log)

	clock := engine.NewClock()

	// Движок очереди ответственного: уведомления только при изменениях,
	// координатор мутаций поверх того же снапшота
	responderEngine := engine.New(engine.Config{
		Name:     "responder",
		Interval: cfg.ResponderPollInterval,
	}, client.ResponderIncidents, client, clock, log)

	// Движок страницы гражданина: уведомление на каждом успешном цикле,
	// вычислитель экстренных оповещений, выборка по зоне обслуживания
	citizenFetch := func(ctx context.Context) ([]models.Incident, error) {
		return client.NearbyIncidents(ctx, cfg.ServiceAreaLat, cfg.ServiceAreaLon, cfg.ServiceAreaRadiusM)
	}
	citizenEngine := engine.New(engine.Config{
		Name:           "citizen",
		Interval:       cfg.CitizenPollInterval,
		AlwaysNotify:   true,
		EvaluateAlerts: true,
	}, citizenFetch, nil, clock, log)

	responderEngine.Start(ctx)
	citizenEngine.Start(ctx)

	// Инициализация репозитория локального состояния
	localState := repository.NewLocalState(redisClient)

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(client, localState, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(responderEngine, citizenEngine, dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Остановка поллеров
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
