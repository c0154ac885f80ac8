package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ahwlsqja/go-sigverify/docs"
	apperrors "github.com/ahwlsqja/go-sigverify/internal/common/errors"
	"github.com/ahwlsqja/go-sigverify/internal/common/handler"
	"github.com/ahwlsqja/go-sigverify/internal/common/middleware"
	"github.com/ahwlsqja/go-sigverify/internal/config"
	"github.com/ahwlsqja/go-sigverify/internal/verify"
	"github.com/ahwlsqja/go-sigverify/pkg/ethsig"
)

// @title Signature Verification API
// @version 1.0
// @description EIP-191 personal message and EIP-712 typed data signature verification
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// 1) Logger
	logger, err := initLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 2) Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger.Info("starting server",
		zap.String("environment", cfg.Server.Environment),
		zap.String("addr", cfg.Server.Addr()),
		zap.Int64("max_body_bytes", cfg.Verifier.MaxBodyBytes),
		zap.Int("max_message_bytes", cfg.Verifier.MaxMessageBytes),
	)

	// 3) Router
	router := setupRouter(cfg, logger)

	// 4) HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("server started",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
	)

	// 5) Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func initLogger() (*zap.Logger, error) {
	if os.Getenv("ENVIRONMENT") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func setupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Large uint256 values in typed data messages must reach the encoder
	// as json.Number, not float64.
	binding.EnableDecoderUseNumber = true

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.BodyLimit(cfg.Verifier.MaxBodyBytes))

	// Swagger
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(handler.DefaultSelfTest, logger)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Signature core
	verifier := ethsig.NewEthVerifier(logger.Named("ethsig"))
	verifyService := verify.NewService(verifier, cfg.Verifier.MaxMessageBytes, logger)
	verifyHandler := verify.NewHandler(verifyService)

	v1 := router.Group("/api/v1")
	verifyHandler.RegisterRoutes(v1)

	router.NoRoute(func(c *gin.Context) {
		middleware.RespondError(c, apperrors.NotFound("Route"))
	})

	return router
}
