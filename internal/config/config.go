package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration

	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	// Dictionaries lists the stored dictionaries to serve. Empty means all.
	Dictionaries      []string
	DefaultDictionary string
	// DictionarySeed maps dictionary names to source URIs imported at
	// startup when the name is not stored yet.
	DictionarySeed map[string]string

	MaxTrayLength  int
	MaxWordLength  int
	SuggestWorkers int

	RateLimitRequests int
	RateLimitWindow   time.Duration

	// TokenSecret enables bearer token auth on the API when set.
	TokenSecret string
	TokenTTL    time.Duration

	AWSRegion string

	LogLevel  string
	LogFormat string
}

var defaults = map[string]any{
	"PORT":                "8080",
	"SHUTDOWN_TIMEOUT":    10 * time.Second,
	"DATABASE_TYPE":       "sqlite",
	"DB_PATH":             "./wordtiles.db",
	"DATABASE_URL":        "",
	"MIGRATIONS_PATH":     "./migrations",
	"DICTIONARIES":        "",
	"DEFAULT_DICTIONARY":  "en",
	"DICTIONARY_SEED":     "",
	"MAX_TRAY_LENGTH":     12,
	"MAX_WORD_LENGTH":     32,
	"SUGGEST_WORKERS":     4,
	"RATE_LIMIT_REQUESTS": 120,
	"RATE_LIMIT_WINDOW":   time.Minute,
	"TOKEN_SECRET":        "",
	"TOKEN_TTL":           24 * time.Hour,
	"AWS_REGION":          "us-east-1",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "console",
}

// Load reads configuration from the environment, an optional config file
// named by WORDTILES_CONFIG and an optional .env file, in that order of
// precedence, falling back to defaults.
func Load() (*Config, error) {
	// .env values rank as defaults so real environment and the config
	// file both override them
	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, value := range dotenv {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := v.GetString("WORDTILES_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	seed, err := parseSeed(v.GetString("DICTIONARY_SEED"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:        v.GetString("PORT"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		DatabaseType:      v.GetString("DATABASE_TYPE"),
		DatabasePath:      v.GetString("DB_PATH"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		Dictionaries:      splitList(v.GetString("DICTIONARIES")),
		DefaultDictionary: v.GetString("DEFAULT_DICTIONARY"),
		DictionarySeed:    seed,
		MaxTrayLength:     v.GetInt("MAX_TRAY_LENGTH"),
		MaxWordLength:     v.GetInt("MAX_WORD_LENGTH"),
		SuggestWorkers:    v.GetInt("SUGGEST_WORKERS"),
		RateLimitRequests: v.GetInt("RATE_LIMIT_REQUESTS"),
		RateLimitWindow:   v.GetDuration("RATE_LIMIT_WINDOW"),
		TokenSecret:       v.GetString("TOKEN_SECRET"),
		TokenTTL:          v.GetDuration("TOKEN_TTL"),
		AWSRegion:         v.GetString("AWS_REGION"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
	}
	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}
	return cfg, nil
}

// splitList splits a comma-separated value, dropping empty items
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseSeed parses "name=uri,name=uri" pairs
func parseSeed(value string) (map[string]string, error) {
	seed := make(map[string]string)
	for _, pair := range splitList(value) {
		name, uri, ok := strings.Cut(pair, "=")
		name, uri = strings.TrimSpace(name), strings.TrimSpace(uri)
		if !ok || name == "" || uri == "" {
			return nil, fmt.Errorf("invalid DICTIONARY_SEED entry %q, want name=uri", pair)
		}
		seed[name] = uri
	}
	return seed, nil
}
