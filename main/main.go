package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/app"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/config"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/services/logger"
)

// @title WeatherBot Agent API
// @version 1.0
// @description Extracts a city from free text and reports its current weather
// @host localhost:8080
// @BasePath /api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, cfg.LogLevel, app.ServiceName)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	application := app.New(*cfg, l)

	serviceContainer, err := application.Init()
	if err != nil {
		l.Fatal("failed to initialize application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx, serviceContainer); err != nil {
		l.Error("application stopped with error", zap.Error(err))
		return
	}
	l.Info("application shutdown successfully")
}
