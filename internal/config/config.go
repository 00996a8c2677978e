package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration settings for the application
type Config struct {
	// ListenAddr is the address and port for the web server
	ListenAddr string `toml:"listen_addr"`

	// DatabasePath is the path to the SQLite database file
	DatabasePath string `toml:"database_path"`

	// WeatherAPIKey is the OpenWeatherMap API key
	WeatherAPIKey string `toml:"weather_api_key"`

	// Twitter credentials (OAuth1 user context)
	TwitterAPIKey            string `toml:"twitter_api_key"`
	TwitterAPISecret         string `toml:"twitter_api_secret"`
	TwitterAccessToken       string `toml:"twitter_access_token"`
	TwitterAccessTokenSecret string `toml:"twitter_access_token_secret"`

	// PostingEnabled controls whether tweets are actually published.
	// When false the bot logs a simulated tweet instead.
	PostingEnabled bool `toml:"posting_enabled"`

	// Timezone is the IANA zone used for tweet timestamps
	Timezone string `toml:"timezone"`

	// ImagePath is the rain image attached to every tweet
	ImagePath string `toml:"image_path"`

	// CitiesPath optionally points to a YAML roster overriding the
	// built-in city list
	CitiesPath string `toml:"cities_path"`

	// CycleResetInterval is how long before the city cycle restarts
	CycleResetInterval time.Duration `toml:"-"`

	// CronSchedule optionally enables the internal scheduler. Empty
	// means runs are triggered only via /run-tweet-task.
	CronSchedule string `toml:"cron_schedule"`

	// MaxInFlight caps concurrent HTTP request handling
	MaxInFlight int `toml:"max_in_flight"`
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		ListenAddr:         ":" + DefaultPort,
		DatabasePath:       "rainbot.db",
		Timezone:           "America/New_York",
		ImagePath:          "assets/its_going_to_rain.png",
		CycleResetInterval: 10 * time.Hour,
		MaxInFlight:        DefaultMaxInFlight,
	}
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Start with default configuration
	config := defaultConfig()

	// Try to load from config.toml if it exists
	configPath := "config.toml"
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	// Override with environment variables if set.
	// PORT is the managed-runtime contract: read once at startup,
	// default 8080, bound on all interfaces.
	if port := os.Getenv("PORT"); port != "" {
		config.ListenAddr = ":" + port
	}

	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		config.DatabasePath = dbPath
	}

	if key := os.Getenv("WEATHER_API_KEY"); key != "" {
		config.WeatherAPIKey = key
	}

	if key := os.Getenv("TWITTER_API_KEY"); key != "" {
		config.TwitterAPIKey = key
	}

	if secret := os.Getenv("TWITTER_API_SECRET"); secret != "" {
		config.TwitterAPISecret = secret
	}

	if token := os.Getenv("TWITTER_ACCESS_TOKEN"); token != "" {
		config.TwitterAccessToken = token
	}

	if secret := os.Getenv("TWITTER_ACCESS_TOKEN_SECRET"); secret != "" {
		config.TwitterAccessTokenSecret = secret
	}

	if enabled := os.Getenv("POST_TO_TWITTER_ENABLED"); enabled != "" {
		config.PostingEnabled = strings.EqualFold(enabled, "true")
	}

	if tz := os.Getenv("BOT_TIMEZONE"); tz != "" {
		config.Timezone = tz
	}

	if imagePath := os.Getenv("IMAGE_PATH"); imagePath != "" {
		config.ImagePath = imagePath
	}

	if citiesPath := os.Getenv("CITIES_PATH"); citiesPath != "" {
		config.CitiesPath = citiesPath
	}

	if interval := os.Getenv("LOG_CLEAR_INTERVAL_HOURS"); interval != "" {
		hours, err := strconv.Atoi(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_CLEAR_INTERVAL_HOURS %q: %w", interval, err)
		}
		config.CycleResetInterval = time.Duration(hours) * time.Hour
	}

	if spec := os.Getenv("TWEET_SCHEDULE"); spec != "" {
		config.CronSchedule = spec
	}

	if maxInFlight := os.Getenv("MAX_IN_FLIGHT"); maxInFlight != "" {
		n, err := strconv.Atoi(maxInFlight)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_IN_FLIGHT %q", maxInFlight)
		}
		config.MaxInFlight = n
	}

	return config, nil
}

// HasTwitterCredentials reports whether all four Twitter credentials are set
func (c *Config) HasTwitterCredentials() bool {
	return c.TwitterAPIKey != "" &&
		c.TwitterAPISecret != "" &&
		c.TwitterAccessToken != "" &&
		c.TwitterAccessTokenSecret != ""
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// String returns a string representation of the configuration with
// credentials redacted
func (c *Config) String() string {
	return fmt.Sprintf("ListenAddr: %s, DatabasePath: %s, PostingEnabled: %t, Timezone: %s, ImagePath: %s, MaxInFlight: %d",
		c.ListenAddr, c.DatabasePath, c.PostingEnabled, c.Timezone, c.ImagePath, c.MaxInFlight)
}
