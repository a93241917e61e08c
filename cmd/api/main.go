package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/safekids/app-safekids/internal/config"
	"github.com/safekids/app-safekids/internal/handlers"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/middleware"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/services"
	"github.com/safekids/app-safekids/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/safekids/app-safekids/docs"
)

// @title           SafeKids API
// @version         1.0
// @description     API do SafeKids para cadastro de crianças, responsáveis e tios e controle de check-in e check-out nos cultos infantis.

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name criancas
// @tag.description Cadastro de crianças e seus vínculos

// @tag.name attendance
// @tag.description Check-in e check-out nos cultos

// @tag.name health
// @tag.description Health check operations

func main() {
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	observability.InitTracer()
	defer observability.ShutdownTracer()

	config.InitMongoDB()
	config.InitRedis()

	if err := utils.RegisterBindingValidators(); err != nil {
		logging.Logger.Fatal("failed to register validators", zap.Error(err))
	}

	services.InitServices(services.MongoStores(config.MongoDB, config.AppConfig), config.Redis, config.AppConfig)

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.New(corsConfig(config.AppConfig.CORSOrigins)),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterRoutes(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}

	if config.MongoDB != nil {
		if err := config.MongoDB.Client().Disconnect(ctx); err != nil {
			logging.Logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
		}
	}

	logging.Logger.Info("server exited gracefully")
}

// corsConfig allows the console origins, or any origin when none is set
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader, "ETag"}
	return cfg
}
