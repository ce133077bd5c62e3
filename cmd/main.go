package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"dashboard/internal/client"
	"dashboard/internal/config"
	"dashboard/internal/handlers"
	"dashboard/internal/middleware"
	"dashboard/internal/service"
)

const version = "1.0.0"

// setupRouter configures the Gin router
func setupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	session service.SessionService,
	guildHandler *handlers.GuildHandler,
	logsHandler *handlers.LogsHandler,
	itemsHandler *handlers.ItemsHandler,
	authHandler *handlers.AuthHandler,
	lotteryHandler *handlers.LotteryHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())

	// Health probes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Readiness)
	router.GET("/health/live", healthHandler.Liveness)

	// Prometheus metrics
	if cfg.Monitoring.Enabled {
		router.GET(cfg.Monitoring.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		guilds := v1.Group("/guilds")
		{
			guilds.GET("", guildHandler.ListGuilds)
			guilds.GET("/summary", guildHandler.GetSummaries)
			guilds.GET("/:id", guildHandler.GetGuild)
			guilds.GET("/:id/members", guildHandler.GetMembers)
			guilds.GET("/:id/motd", guildHandler.GetMOTD)
			guilds.GET("/:id/logs", logsHandler.GetGuildLogs)
		}

		v1.GET("/logs", logsHandler.GetAllLogs)

		items := v1.Group("/items")
		{
			items.GET("/search", itemsHandler.SearchItems)
			items.GET("/:id", itemsHandler.GetItem)
			items.GET("", itemsHandler.GetItems)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		users := v1.Group("/users")
		{
			users.POST("/validate-api-key", authHandler.ValidateAPIKey)
			users.POST("/register", authHandler.Register)
		}

		lottery := v1.Group("/lottery")
		lottery.Use(middleware.RequireSession(session))
		{
			lottery.GET("/overview", lotteryHandler.GetOverview)
		}
	}

	return router
}

// startServer starts the HTTP server under the fx lifecycle
func startServer(lifecycle fx.Lifecycle, router *gin.Engine, cfg *config.Config, logger *logrus.Logger) {
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.WithFields(logrus.Fields{
				"host":        cfg.Server.Host,
				"port":        cfg.Server.Port,
				"environment": cfg.Server.Environment,
				"backend":     cfg.Backend.BaseURL,
			}).Info("Starting dashboard service")
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down dashboard service...")
			return server.Shutdown(ctx)
		},
	})
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure the logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	if cfg.Server.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Build the FX application
	app := fx.New(
		fx.Provide(
			func() *config.Config { return cfg },
			func() *logrus.Logger { return logger },
			// Session doubles as the client's token source
			service.NewSessionService,
			func(session service.SessionService) client.TokenSource { return session },
			client.New,
			func(c *client.Client) client.GuildsAPI { return c },
			func(c *client.Client) client.LogsAPI { return c },
			func(c *client.Client) client.ItemsAPI { return c },
			func(c *client.Client) client.AuthAPI { return c },
			func(c *client.Client) client.LotteryAPI { return c },
			// Services
			service.NewItemService,
			service.NewLogService,
			service.NewGuildService,
			service.NewAuthService,
			service.NewLotteryService,
			// Handlers
			handlers.NewGuildHandler,
			handlers.NewLogsHandler,
			handlers.NewItemsHandler,
			handlers.NewAuthHandler,
			handlers.NewLotteryHandler,
			func() *handlers.HealthHandler { return handlers.NewHealthHandler(version) },
			// Router
			setupRouter,
		),
		fx.Invoke(startServer),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for interrupt
	<-app.Done()
}
