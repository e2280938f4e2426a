package main

import (
	"log"

	"github.com/Conceptual-Machines/vibe-chords/internal/api"
	"github.com/Conceptual-Machines/vibe-chords/internal/metrics"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the HTTP API on PORT (default 8080). Generation history is stored in
Postgres when DATABASE_URL is set; CloudWatch metrics are sent in production.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd, true)
	if err != nil {
		return err
	}
	defer a.cleanup()

	cloudwatch, err := metrics.NewClient(cmd.Context(), a.cfg.Environment)
	if err != nil {
		return err
	}

	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(api.Dependencies{
		DB:         a.db,
		Resolver:   a.resolver,
		CloudWatch: cloudwatch,
		Version:    GetVersion(),
	})

	log.Printf("🚀 Starting server on port %s", a.cfg.Port)
	if err := router.Run(":" + a.cfg.Port); err != nil {
		sentry.CaptureException(err)
		return err
	}
	return nil
}
