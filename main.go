package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/config"
	"github.com/Conceptual-Machines/vibe-chords/internal/database"
	"github.com/Conceptual-Machines/vibe-chords/internal/logger"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/Conceptual-Machines/vibe-chords/internal/services"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

var rootCmd = &cobra.Command{
	Use:   "vibe-chords",
	Short: "Generate chord progressions from a key and a mood",
	Long: `vibe-chords maps a key (C, F#, Am, ...) and a mood (feliz, triste, ...) onto a
Roman-numeral template from the mood catalogue and resolves it into concrete chords.

Run 'play' for the interactive loop, 'generate' for a single progression
or 'serve' for the HTTP API.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

var rootFlags struct {
	cataloguePath string
	seed          int64
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.cataloguePath, "catalogue", "", "mood catalogue file (.json, .yaml); overrides CATALOGUE_PATH")
	f.Int64Var(&rootFlags.seed, "seed", 0, "template selection seed; overrides RANDOM_SEED (0 = clock)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(moodsCmd)
	rootCmd.Version = releaseVersion
}

// app is everything the subcommands share
type app struct {
	cfg      *config.Config
	resolver *progression.Resolver
	db       *gorm.DB
	history  *services.HistoryService
	cleanup  func()
}

// bootstrap loads configuration, observability and the catalogue.
// The database is only opened when withDatabase is set and DATABASE_URL is configured.
func bootstrap(cmd *cobra.Command, withDatabase bool) (*app, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cmd.Flags().Changed("catalogue") {
		cfg.CataloguePath = rootFlags.cataloguePath
	}
	if cmd.Flags().Changed("seed") {
		cfg.RandomSeed = rootFlags.seed
	}

	a := &app{cfg: cfg, cleanup: func() {}}
	a.initSentry()

	cat, err := catalogue.Load(cfg.CataloguePath)
	if err != nil {
		sentry.CaptureException(err)
		a.cleanup()
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	logger.Info("Catalogue loaded", logger.Fields{"moods": cat.Len(), "path": cfg.CataloguePath})

	a.resolver = progression.NewResolver(cat, progression.NewRandomSelector(cfg.RandomSeed))

	if withDatabase && cfg.HistoryEnabled() {
		db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
		if err != nil {
			sentry.CaptureException(err)
			a.cleanup()
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			sentry.CaptureException(err)
			a.cleanup()
			return nil, err
		}
		a.db = db
	}
	a.history = services.NewHistoryService(a.db)

	return a, nil
}

func (a *app) initSentry() {
	if a.cfg.SentryDSN == "" {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              a.cfg.SentryDSN,
		Environment:      a.cfg.Environment,
		Release:          "vibe-chords@" + releaseVersion,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            a.cfg.Environment != environmentProduction,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if event.Request != nil {
				event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
			}
			return event
		},
	}); err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return
	}

	log.Printf("✅ Sentry initialized (environment: %s, release: %s)", a.cfg.Environment, releaseVersion)
	a.cleanup = func() { sentry.Flush(sentryFlushTimeout) }
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
