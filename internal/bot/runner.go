// Package bot orchestrates one weather tweet run: pick the next city,
// fetch its forecast, compose the tweet, post it, and record the outcome.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"rainbot/internal/cache"
	"rainbot/internal/cities"
	"rainbot/internal/config"
	"rainbot/internal/database"
	"rainbot/internal/logging"
	"rainbot/internal/telemetry"
	"rainbot/internal/tweet"
	"rainbot/internal/twitter"
	"rainbot/internal/weather"
)

// forecastCacheTTL bounds how often a city's forecast is refetched
const forecastCacheTTL = 10 * time.Minute

// ForecastFetcher fetches a forecast for a city by name
type ForecastFetcher interface {
	GetForecast(ctx context.Context, city string) (*weather.Forecast, error)
}

// RunResult describes a completed run
type RunResult struct {
	City      string `json:"city"`
	Status    string `json:"status"`
	TweetText string `json:"-"`
}

// Runner executes weather tweet runs
type Runner struct {
	cfg       *config.Config
	roster    *cities.Roster
	fetcher   ForecastFetcher
	poster    twitter.Poster
	forecasts *cache.Cache[*weather.Forecast]
	loc       *time.Location
	live      bool

	// now is swapped out in tests
	now func() time.Time
}

// New creates a runner. When posting is disabled or credentials are
// incomplete the runner posts through the simulator.
func New(cfg *config.Config, roster *cities.Roster, fetcher ForecastFetcher) (*Runner, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	live := cfg.PostingEnabled && cfg.HasTwitterCredentials()
	if cfg.PostingEnabled && !cfg.HasTwitterCredentials() {
		logging.Error("One or more Twitter API credentials are missing. Falling back to test mode.")
	}

	var poster twitter.Poster
	if live {
		poster = twitter.NewClient(twitter.Credentials{
			APIKey:            cfg.TwitterAPIKey,
			APISecret:         cfg.TwitterAPISecret,
			AccessToken:       cfg.TwitterAccessToken,
			AccessTokenSecret: cfg.TwitterAccessTokenSecret,
		}, cfg.ImagePath)
	} else {
		poster = &twitter.Simulator{ImagePath: cfg.ImagePath}
	}

	return &Runner{
		cfg:       cfg,
		roster:    roster,
		fetcher:   fetcher,
		poster:    poster,
		forecasts: cache.New[*weather.Forecast](forecastCacheTTL),
		loc:       loc,
		live:      live,
		now:       time.Now,
	}, nil
}

// Live reports whether the runner posts to Twitter for real
func (r *Runner) Live() bool {
	return r.live
}

// Close releases runner resources
func (r *Runner) Close() {
	r.forecasts.Close()
}

// Run executes one weather tweet run
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "bot.run")
	defer span.End()

	runID := uuid.NewString()
	span.SetAttributes(attribute.String("run.id", runID))

	state, err := database.GetBotState()
	if err != nil {
		return nil, fmt.Errorf("failed to load bot state: %w", err)
	}

	now := r.now().In(r.loc)

	// Restart the city cycle once the reset interval has elapsed. The
	// stamp is carried forward unchanged otherwise, and initialized on
	// the first run.
	lastCity := state.LastPostedCity
	cycleReset := state.LastCycleReset
	if !state.HasReset {
		cycleReset = now.UTC()
	} else if now.UTC().Sub(state.LastCycleReset) >= r.cfg.CycleResetInterval {
		logging.Info("Cycle state is older than %s. Restarting city cycle.", r.cfg.CycleResetInterval)
		lastCity = ""
		cycleReset = now.UTC()
	}

	city := r.roster.Next(lastCity)
	span.SetAttributes(attribute.String("run.city", city))
	logging.Info("--- Running weather tweet job for %s ---", city)

	forecast, err := r.getForecast(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve weather for %s: %w", city, err)
	}

	comps := tweet.Compose(city, forecast, now)
	text := comps.Text()

	result, err := r.poster.Post(ctx, text, comps.AltText)
	if err != nil {
		r.recordPost(runID, city, text, database.StatusFailed, err.Error())
		return nil, fmt.Errorf("tweet post for %s failed: %w", city, err)
	}

	status := database.StatusPosted
	if result.Simulated {
		status = database.StatusSimulated
	}
	r.recordPost(runID, city, text, status, "")

	if err := database.SetBotState(city, cycleReset); err != nil {
		return nil, fmt.Errorf("failed to persist bot state: %w", err)
	}

	logging.Info("Tweet task for %s completed successfully.", city)
	return &RunResult{City: city, Status: status, TweetText: text}, nil
}

// getForecast serves a cached forecast when one is fresh enough
func (r *Runner) getForecast(ctx context.Context, city string) (*weather.Forecast, error) {
	if forecast, ok := r.forecasts.Get(city); ok {
		logging.Debug("Serving cached forecast for %s", city)
		return forecast, nil
	}

	forecast, err := r.fetcher.GetForecast(ctx, city)
	if err != nil {
		return nil, err
	}

	r.forecasts.Set(city, forecast)
	return forecast, nil
}

func (r *Runner) recordPost(id, city, text, status, errMsg string) {
	entry := &database.PostLog{
		ID:           id,
		City:         city,
		TweetText:    text,
		CharCount:    len([]rune(text)),
		Status:       status,
		ErrorMessage: errMsg,
	}
	if err := database.CreatePostLog(entry); err != nil {
		logging.Error("Failed to record post log for %s: %v", city, err)
	}
}
