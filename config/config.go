package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Genius    GeniusConfig
	Sentry    SentryConfig
	RateLimit RateLimitConfig
	Options   Options
}

type GeniusConfig struct {
	AccessToken string
	Timeout     time.Duration
}

type SentryConfig struct {
	DSN string
}

type RateLimitConfig struct {
	Points   int
	Duration time.Duration
}

type Options struct {
	Port     string
	LogLevel string
}

func (s *SentryConfig) IsEnabled() bool {
	return s.DSN != ""
}

func Load() *Config {
	return &Config{
		Genius: GeniusConfig{
			AccessToken: os.Getenv("GENIUS_ACCESS_TOKEN"),
			Timeout:     getUpstreamTimeout(),
		},
		Sentry: SentryConfig{
			DSN: os.Getenv("SENTRY_DSN"),
		},
		RateLimit: RateLimitConfig{
			Points:   getRateLimitPoints(),
			Duration: getRateLimitDuration(),
		},
		Options: Options{
			Port:     os.Getenv("PORT"),
			LogLevel: os.Getenv("LOG_LEVEL"),
		},
	}
}

func getUpstreamTimeout() time.Duration {
	timeoutStr := os.Getenv("UPSTREAM_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		return 15 * time.Second
	}
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(timeout) * time.Second
}

func getRateLimitPoints() int {
	pointsStr := os.Getenv("RATELIMIT_POINTS")
	if pointsStr == "" {
		return 20
	}
	points, err := strconv.Atoi(pointsStr)
	if err != nil || points <= 0 {
		return 20
	}
	return points
}

func getRateLimitDuration() time.Duration {
	durationStr := os.Getenv("RATELIMIT_DURATION_SECONDS")
	if durationStr == "" {
		return 30 * time.Second
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		return 30 * time.Second
	}
	return time.Duration(duration) * time.Second
}
