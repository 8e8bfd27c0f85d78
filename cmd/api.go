package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/handlers"
	"github.com/thirdweb-dev/grants-insight/internal/middleware"

	// Import the generated Swagger docs
	"github.com/thirdweb-dev/grants-insight/docs"
)

const DEFAULT_API_PORT = 3000

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve the dashboard API",
		Long:  "Serve the dashboard API, refreshing the session in the background",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

// @title Grants Insight
// @version v0.1.0
// @description API for querying grants stack round, project and donation data
// @license.name Apache 2.0
// @license.url https://github.com/thirdweb-dev/grants-insight/blob/main/LICENSE
// @BasePath /v1
// @Security BasicAuth
// @securityDefinitions.basic BasicAuth
func RunApi(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := getApp(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.Close()

	handlers.SetSessionProvider(a.orchestrator)
	handlers.SetSource(a.source)
	serveMetrics()
	a.startOrchestrator(ctx)

	docs.SwaggerInfo.Host = config.Cfg.API.Host

	port := config.Cfg.API.Port
	if port == 0 {
		port = DEFAULT_API_PORT
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: newRouter(),
	}

	go func() {
		<-ctx.Done()
		a.orchestrator.Shutdown()
		log.Info().Msg("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("API server shutdown failed")
		}
	}()

	log.Info().Int("port", port).Msg("Starting API server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("API server failed")
	}
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// Add Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Add Swagger JSON endpoint
	r.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("Failed to read Swagger documentation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provide Swagger documentation"})
			return
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, doc)
	})

	root := r.Group("/v1")
	{
		root.Use(middleware.Authorization)
		root.GET("/summary", handlers.GetSummary)

		root.GET("/rounds", handlers.GetRounds)
		root.GET("/rounds/:chainId/:roundId", handlers.GetRoundDetail)
		root.GET("/chains/:chainId/rounds/live", handlers.GetLiveRounds)

		root.GET("/projects", handlers.GetProjects)
		root.GET("/votes", handlers.GetVotes)
		root.GET("/contributions/hourly", handlers.GetHourlyContributions)
		root.GET("/passports", handlers.GetPassports)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
