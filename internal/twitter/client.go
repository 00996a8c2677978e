// Package twitter posts tweets with media through the Twitter API
// (v1.1 for media upload, v2 for tweet creation).
package twitter

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/go-resty/resty/v2"

	"rainbot/internal/logging"
)

const (
	uploadBaseURL = "https://upload.twitter.com/1.1"
	apiBaseURL    = "https://api.twitter.com"
)

// Poster publishes a composed tweet. Implemented by Client (live) and
// Simulator (test mode).
type Poster interface {
	Post(ctx context.Context, text, altText string) (*Result, error)
}

// Result describes a completed post
type Result struct {
	TweetID   string
	Simulated bool
	WithMedia bool
}

// Credentials are the OAuth1 user-context keys
type Credentials struct {
	APIKey            string
	APISecret         string
	AccessToken       string
	AccessTokenSecret string
}

// Client posts tweets through the Twitter API
type Client struct {
	upload    *resty.Client
	api       *resty.Client
	imagePath string
}

// NewClient creates a live posting client. Requests are signed with
// OAuth1; both the v1.1 upload host and the v2 API host share the
// signing transport.
func NewClient(creds Credentials, imagePath string) *Client {
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Timeout = 30 * time.Second

	return &Client{
		upload:    resty.NewWithClient(httpClient).SetBaseURL(uploadBaseURL),
		api:       resty.NewWithClient(httpClient).SetBaseURL(apiBaseURL),
		imagePath: imagePath,
	}
}

// SetBaseURLs overrides the API endpoints, used in tests
func (c *Client) SetBaseURLs(uploadURL, apiURL string) {
	c.upload.SetBaseURL(uploadURL)
	c.api.SetBaseURL(apiURL)
}

// UploadHTTPClient exposes the upload transport, used in tests
func (c *Client) UploadHTTPClient() *http.Client {
	return c.upload.GetClient()
}

// APIHTTPClient exposes the API transport, used in tests
func (c *Client) APIHTTPClient() *http.Client {
	return c.api.GetClient()
}

type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

type createTweetRequest struct {
	Text  string      `json:"text"`
	Media *tweetMedia `json:"media,omitempty"`
}

type tweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type createTweetResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Post publishes the tweet, attaching the configured image when it is
// available. Media failures degrade to a text-only tweet; only the
// tweet creation itself is fatal.
func (c *Client) Post(ctx context.Context, text, altText string) (*Result, error) {
	mediaID := ""
	if _, err := os.Stat(c.imagePath); err != nil {
		logging.Error("Image not found at %q. Posting tweet without image.", c.imagePath)
	} else {
		id, err := c.uploadMedia(ctx, altText)
		if err != nil {
			logging.Error("Failed to upload media or add alt text: %v", err)
		} else {
			mediaID = id
		}
	}

	req := createTweetRequest{Text: text}
	if mediaID != "" {
		req.Media = &tweetMedia{MediaIDs: []string{mediaID}}
	}

	var created createTweetResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/2/tweets")
	if err != nil {
		return nil, fmt.Errorf("failed to post tweet: %w", err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit exceeded, will not retry")
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tweet creation returned status %d: %s", resp.StatusCode(), resp.String())
	}

	logging.Info("Tweet posted successfully (id=%s, media=%t)", created.Data.ID, mediaID != "")
	return &Result{TweetID: created.Data.ID, WithMedia: mediaID != ""}, nil
}

// uploadMedia uploads the image and attaches alt text to it
func (c *Client) uploadMedia(ctx context.Context, altText string) (string, error) {
	var uploaded mediaUploadResponse
	resp, err := c.upload.R().
		SetContext(ctx).
		SetFile("media", c.imagePath).
		SetResult(&uploaded).
		Post("/media/upload.json")
	if err != nil {
		return "", fmt.Errorf("media upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("media upload returned status %d", resp.StatusCode())
	}
	if uploaded.MediaIDString == "" {
		return "", fmt.Errorf("media upload response missing media id")
	}

	metadata := map[string]interface{}{
		"media_id": uploaded.MediaIDString,
		"alt_text": map[string]string{"text": altText},
	}
	resp, err = c.upload.R().
		SetContext(ctx).
		SetBody(metadata).
		Post("/media/metadata/create.json")
	if err != nil {
		return "", fmt.Errorf("media metadata failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("media metadata returned status %d", resp.StatusCode())
	}

	logging.Info("Media uploaded and alt text added successfully (media_id=%s)", uploaded.MediaIDString)
	return uploaded.MediaIDString, nil
}
