package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weatherbot-agent/docs"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/config"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/controller"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/handlers/ui"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/handlers/weather"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/repository"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/services/cache"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/services/extractor"
	loggerT "github.com/Nazarious-ucu/weatherbot-agent/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weatherbot-agent/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weatherbot-agent/internal/services/weather"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/sweeper"
)

const (
	ServiceName = "weatherbot"

	timeoutDuration = 5 * time.Second
	sessionPrefix   = "session:"
)

type App struct {
	cfg config.Config
	log *zap.Logger
}

// ServiceContainer holds the initialized dependencies of one running app.
type ServiceContainer struct {
	WeatherService *serviceWeather.ServiceProvider
	Extractor      *extractor.CityExtractor
	Controller     *controller.Controller
	Sessions       *repository.SessionRepository
	Metrics        *metricsSvc.Metrics

	// Sweeper is nil when sessions live in Redis.
	Sweeper *sweeper.Sweeper
	Redis   *redis.Client

	Router *gin.Engine
	Srv    *http.Server
}

func New(cfg config.Config, logger *zap.Logger) *App {
	return &App{
		cfg: cfg,
		log: logger,
	}
}

func (a *App) Init() (ServiceContainer, error) {
	a.log.Info("initializing application",
		zap.String("address", a.cfg.Server.Address),
		zap.String("session_store", a.cfg.Session.Store),
		zap.String("openai_model", a.cfg.OpenAI.Model))

	if a.cfg.OpenAI.APIKey == "" {
		a.log.Warn("OPENAI_API_KEY is not set, queries will be used as city names")
	}
	if a.cfg.WeatherAPIKey == "" {
		a.log.Warn("WEATHER_API_KEY is not set, weather lookups will be unavailable")
	}

	m := metricsSvc.NewMetrics(ServiceName)

	httpLogClient := &http.Client{
		Transport: loggerT.NewRoundTripper(a.log),
		Timeout:   a.cfg.HTTPClientTimeout,
	}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	weatherAPI := serviceWeather.NewBreakerClient("WeatherAPI", breakerCfg,
		serviceWeather.NewClientWeatherAPI(a.cfg.WeatherAPIKey, a.cfg.WeatherAPIURL, httpLogClient, a.log),
	)
	weatherService := serviceWeather.NewService(a.log, weatherAPI, m)

	cityExtractor := extractor.New(
		extractor.NewOpenAIClient(a.cfg.OpenAI.APIKey, a.cfg.OpenAI.BaseURL, httpLogClient),
		a.cfg.OpenAI.Model,
		a.log,
		m,
	)

	srvContainer := ServiceContainer{
		WeatherService: weatherService,
		Extractor:      cityExtractor,
		Controller:     controller.New(cityExtractor, weatherService),
		Metrics:        m,
	}

	collector := metricsSvc.NewPromCollector(ServiceName, m.Registerer())
	switch a.cfg.Session.Store {
	case config.SessionStoreMemory:
		mem := cache.NewMemoryStore[models.Session]()
		srvContainer.Sessions = repository.NewSessionRepository(
			cache.NewMetricsDecorator[models.Session](mem, collector))
		srvContainer.Sweeper = sweeper.New(mem, a.cfg.Session.TTL, a.cfg.Session.SweepSpec, a.log)
	case config.SessionStoreRedis:
		rdb := newRedisConnection(a.cfg.RedisAddress(), a.cfg.Redis.DbType)
		ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return ServiceContainer{}, fmt.Errorf("connect redis %s: %w", a.cfg.RedisAddress(), err)
		}
		srvContainer.Redis = rdb
		srvContainer.Sessions = repository.NewSessionRepository(
			cache.NewMetricsDecorator[models.Session](
				cache.NewRedisClient[models.Session](rdb, a.log, sessionPrefix, a.cfg.Session.TTL),
				collector,
			))
	default:
		return ServiceContainer{}, fmt.Errorf("unknown session store %q", a.cfg.Session.Store)
	}

	tmpl, err := ui.ParseTemplates()
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), m.HTTPMiddleware())
	router.SetHTMLTemplate(tmpl)
	srvContainer.Router = router

	srvContainer.Srv = &http.Server{
		Addr:        a.cfg.Server.Address,
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	a.registerRoutes(srvContainer)

	return srvContainer, nil
}

func (a *App) registerRoutes(srvContainer ServiceContainer) {
	uiHandler := ui.NewHandler(srvContainer.Sessions, srvContainer.Controller, srvContainer.Metrics, a.log)
	weatherHandler := weather.NewHandler(srvContainer.WeatherService, srvContainer.Controller, srvContainer.Metrics)

	r := srvContainer.Router
	r.GET("/", uiHandler.Index)
	r.POST("/search", uiHandler.Search)
	r.POST("/clear", uiHandler.Clear)

	api := r.Group("/api")
	{
		api.GET("/weather", weatherHandler.GetWeather)
		api.POST("/search", weatherHandler.Search)
	}

	r.GET("/health", weather.Health)
	r.GET("/metrics", gin.WrapH(srvContainer.Metrics.Handler()))
	r.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
}

// Start serves until ctx is cancelled or the server fails, then shuts down.
func (a *App) Start(ctx context.Context, srvContainer ServiceContainer) error {
	if srvContainer.Sweeper != nil {
		if err := srvContainer.Sweeper.Start(); err != nil {
			return err
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("starting server", zap.String("address", a.cfg.Server.Address))
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err := <-serveErr:
		runErr = err
	}

	if err := a.Stop(srvContainer); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func (a *App) Stop(srvContainer ServiceContainer) error {
	a.log.Info("stopping application")

	if srvContainer.Sweeper != nil {
		srvContainer.Sweeper.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	var errs []error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.log.Error("HTTP shutdown error", zap.Error(err))
		errs = append(errs, err)
	} else {
		a.log.Info("HTTP server stopped")
	}

	if srvContainer.Redis != nil {
		if err := srvContainer.Redis.Close(); err != nil {
			a.log.Error("redis close error", zap.Error(err))
			errs = append(errs, err)
		}
	}

	a.log.Info("shutdown complete")
	return errors.Join(errs...)
}

func newRedisConnection(connString string, dbType int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: connString, DB: dbType})
}
