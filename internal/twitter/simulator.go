package twitter

import (
	"context"

	"rainbot/internal/logging"
)

// Simulator logs the tweet instead of publishing it. Used when posting
// is disabled or credentials are incomplete.
type Simulator struct {
	ImagePath string
}

// Post logs the would-be tweet and reports success
func (s *Simulator) Post(ctx context.Context, text, altText string) (*Result, error) {
	logging.Info("[TEST MODE] Skipping actual tweet post.")
	logging.Info("--- Simulated Tweet ---")
	logging.Info("%s", text)
	logging.Info("Image: %q with Alt Text:\n%s", s.ImagePath, altText)
	logging.Info("--- End Simulated Tweet ---")
	return &Result{Simulated: true}, nil
}
