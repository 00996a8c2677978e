package twitter

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() Credentials {
	return Credentials{
		APIKey:            "k",
		APISecret:         "s",
		AccessToken:       "t",
		AccessTokenSecret: "ts",
	}
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rain.png")
	if err := os.WriteFile(path, []byte("not really a png"), 0644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return path
}

func activate(t *testing.T, c *Client) {
	t.Helper()
	httpmock.ActivateNonDefault(c.UploadHTTPClient())
	httpmock.ActivateNonDefault(c.APIHTTPClient())
	t.Cleanup(httpmock.DeactivateAndReset)
}

func TestPostWithMedia(t *testing.T) {
	client := NewClient(testCreds(), writeTestImage(t))
	activate(t, client)

	httpmock.RegisterResponder("POST", "https://upload.twitter.com/1.1/media/upload.json",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"media_id": 12345, "media_id_string": "12345",
			})
		},
	)
	httpmock.RegisterResponder("POST", "https://upload.twitter.com/1.1/media/metadata/create.json",
		httpmock.NewStringResponder(200, ""),
	)
	httpmock.RegisterResponder("POST", "https://api.twitter.com/2/tweets",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(201, map[string]interface{}{
				"data": map[string]string{"id": "999"},
			})
		},
	)

	result, err := client.Post(context.Background(), "hello chicago", "alt text")
	require.NoError(t, err)
	assert.Equal(t, "999", result.TweetID)
	assert.True(t, result.WithMedia)
	assert.False(t, result.Simulated)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["POST https://upload.twitter.com/1.1/media/upload.json"])
	assert.Equal(t, 1, info["POST https://upload.twitter.com/1.1/media/metadata/create.json"])
	assert.Equal(t, 1, info["POST https://api.twitter.com/2/tweets"])
}

func TestPostMissingImageFallsBackToText(t *testing.T) {
	client := NewClient(testCreds(), filepath.Join(t.TempDir(), "absent.png"))
	activate(t, client)

	httpmock.RegisterResponder("POST", "https://api.twitter.com/2/tweets",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(201, map[string]interface{}{
				"data": map[string]string{"id": "1000"},
			})
		},
	)

	result, err := client.Post(context.Background(), "text only", "alt")
	require.NoError(t, err)
	assert.False(t, result.WithMedia)

	info := httpmock.GetCallCountInfo()
	assert.Zero(t, info["POST https://upload.twitter.com/1.1/media/upload.json"])
}

func TestPostMediaUploadFailureFallsBackToText(t *testing.T) {
	client := NewClient(testCreds(), writeTestImage(t))
	activate(t, client)

	httpmock.RegisterResponder("POST", "https://upload.twitter.com/1.1/media/upload.json",
		httpmock.NewStringResponder(500, "upload broke"),
	)
	httpmock.RegisterResponder("POST", "https://api.twitter.com/2/tweets",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(201, map[string]interface{}{
				"data": map[string]string{"id": "1001"},
			})
		},
	)

	result, err := client.Post(context.Background(), "hello", "alt")
	require.NoError(t, err)
	assert.False(t, result.WithMedia)
}

func TestPostRateLimited(t *testing.T) {
	client := NewClient(testCreds(), filepath.Join(t.TempDir(), "absent.png"))
	activate(t, client)

	httpmock.RegisterResponder("POST", "https://api.twitter.com/2/tweets",
		httpmock.NewStringResponder(429, "slow down"),
	)

	_, err := client.Post(context.Background(), "hello", "alt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestPostCreateTweetError(t *testing.T) {
	client := NewClient(testCreds(), filepath.Join(t.TempDir(), "absent.png"))
	activate(t, client)

	httpmock.RegisterResponder("POST", "https://api.twitter.com/2/tweets",
		httpmock.NewStringResponder(403, `{"detail":"forbidden"}`),
	)

	_, err := client.Post(context.Background(), "hello", "alt")
	assert.Error(t, err)
}

func TestSimulatorPost(t *testing.T) {
	sim := &Simulator{ImagePath: "assets/its_going_to_rain.png"}
	result, err := sim.Post(context.Background(), "hello", "alt")
	require.NoError(t, err)
	assert.True(t, result.Simulated)
	assert.Empty(t, result.TweetID)
}
