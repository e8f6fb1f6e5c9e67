package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-scheduler-api/src/infrastructure/di"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/rest/routes"
	"go-scheduler-api/src/infrastructure/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// loadServerConfig loads server configuration from environment variables
func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            utils.GetEnv("PORT", "5000"),
		ShutdownTimeout: utils.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func main() {
	// A missing .env is fine, the process environment still applies.
	envFileErr := godotenv.Load()

	env := utils.GetEnv("GO_ENV", "development")
	var loggerInstance *logger.Logger
	var err error

	if env == "development" {
		loggerInstance, err = logger.NewDevelopmentLogger()
	} else {
		loggerInstance, err = logger.NewLogger()
	}

	if err != nil {
		panic(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() {
		_ = loggerInstance.Log.Sync()
	}()

	if envFileErr != nil {
		loggerInstance.Debug("No .env file loaded", zap.Error(envFileErr))
	}
	loggerInstance.Info("Starting go-scheduler-api application", zap.String("env", env))

	if env == "development" {
		loggerInstance.SetupGinWithZapLoggerInDevelopment()
	} else {
		loggerInstance.SetupGinWithZapLogger()
	}

	serverConfig := loadServerConfig()

	appContext, err := di.SetupDependencies(loggerInstance)
	if err != nil {
		loggerInstance.Fatal("Error initializing application context", zap.Error(err))
	}

	server := setupServer(routes.SetupRouter(appContext), serverConfig.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		loggerInstance.Info("Server starting", zap.String("port", serverConfig.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	loggerInstance.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error("Server forced to shutdown", zap.Error(err))
	}
	appContext.Shutdown()
	loggerInstance.Info("Server stopped")
}

func setupServer(handler http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
