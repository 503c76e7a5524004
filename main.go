package main

import (
	"net/http"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"geniurl/config"
	"geniurl/genius"
	"geniurl/handlers"
	"geniurl/lyrics"
	"geniurl/sentry"
	"geniurl/songmeta"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := config.Load()
	setupLogging(cfg.Options.LogLevel)
	sentry.Init(cfg.Sentry.DSN)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	if cfg.Genius.AccessToken == "" {
		log.Warn("GENIUS_ACCESS_TOKEN is not set, upstream requests will be unauthenticated")
	}

	client := genius.New(cfg.Genius.AccessToken, cfg.Genius.Timeout)
	scraper := lyrics.NewScraper(cfg.Genius.Timeout)
	meta := songmeta.New(client, scraper)

	router := gin.Default()
	if cfg.Sentry.IsEnabled() {
		router.Use(sentry.GetSentryGin())
	}
	router.Use(handlers.APIInfoHeader(version))

	limiter := handlers.NewRateLimiter(cfg.RateLimit.Points, cfg.RateLimit.Duration)
	router.Use(limiter.Middleware())

	handlers.New(meta).Register(router)

	port := cfg.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s", port)
	return http.ListenAndServe(":"+port, router)
}

func setupLogging(level string) {
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		FieldsOrder:     []string{"module", "function"},
		TimestampFormat: "2006-01-02 15:04:05",
	})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
