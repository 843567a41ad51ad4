package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	SQLitePath   string
	IsProduction bool

	// CORSAllowOrigins is the comma-separated list of allowed origins for the
	// browser frontend.
	CORSAllowOrigins []string

	// TimeLimits maps transaction number to its countdown in seconds; 0 means
	// untimed.
	TimeLimits            map[int]int
	WarningThresholdSecs  int
	CriticalThresholdSecs int

	MaxAttempts int
	HintPenalty float64

	// Performance tier cutoffs (minimum cumulative stars).
	ExcellentThreshold float64
	GoodThreshold      float64
	PassThreshold      float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SQLITE_PATH", "journalsim.db")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	viper.SetDefault("TIME_LIMITS", "180,180,120,120,60")
	viper.SetDefault("WARNING_THRESHOLD_SECS", 30)
	viper.SetDefault("CRITICAL_THRESHOLD_SECS", 10)
	viper.SetDefault("MAX_ATTEMPTS", 3)
	viper.SetDefault("HINT_PENALTY", 0.25)
	viper.SetDefault("EXCELLENT_THRESHOLD", 4.5)
	viper.SetDefault("GOOD_THRESHOLD", 3.5)
	viper.SetDefault("PASS_THRESHOLD", 2.5)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSAllowOrigins = strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",")

	cfg.TimeLimits = parseTimeLimits(viper.GetString("TIME_LIMITS"))
	cfg.WarningThresholdSecs = viper.GetInt("WARNING_THRESHOLD_SECS")
	cfg.CriticalThresholdSecs = viper.GetInt("CRITICAL_THRESHOLD_SECS")

	cfg.MaxAttempts = viper.GetInt("MAX_ATTEMPTS")
	if cfg.MaxAttempts < 1 {
		log.Printf("Warning: Invalid MAX_ATTEMPTS (%d). Defaulting to 3.\n", cfg.MaxAttempts)
		cfg.MaxAttempts = 3
	}
	cfg.HintPenalty = viper.GetFloat64("HINT_PENALTY")

	cfg.ExcellentThreshold = viper.GetFloat64("EXCELLENT_THRESHOLD")
	cfg.GoodThreshold = viper.GetFloat64("GOOD_THRESHOLD")
	cfg.PassThreshold = viper.GetFloat64("PASS_THRESHOLD")

	return cfg, nil
}

// parseTimeLimits parses a comma-separated list of per-transaction countdowns
// ("180,180,120,120,60") keyed by 1-based transaction number.
func parseTimeLimits(raw string) map[int]int {
	limits := make(map[int]int)
	for i, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		secs, err := strconv.Atoi(part)
		if err != nil || secs < 0 {
			log.Printf("Warning: Invalid TIME_LIMITS entry %q. Treating transaction %d as untimed.\n", part, i+1)
			continue
		}
		limits[i+1] = secs
	}
	return limits
}
