package database

import "time"

// BotState is the singleton row tracking the city cycle
type BotState struct {
	LastPostedCity string
	LastCycleReset time.Time
	// HasReset is false until the first cycle stamp is written
	HasReset bool
}

// Post statuses recorded in post_log
const (
	StatusPosted    = "posted"
	StatusSimulated = "simulated"
	StatusFailed    = "failed"
)

// PostLog is one recorded tweet attempt
type PostLog struct {
	ID           string    `json:"id"`
	City         string    `json:"city"`
	TweetText    string    `json:"tweet_text"`
	CharCount    int       `json:"char_count"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
