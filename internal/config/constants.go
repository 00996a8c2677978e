package config

// Port configuration constants
const (
	// DefaultPort is the port the server binds when PORT is not set.
	// Managed container runtimes (Cloud Run and friends) inject PORT.
	DefaultPort = "8080"

	// DefaultMaxInFlight caps concurrent request handling. Matches the
	// original deployment's one worker with eight threads.
	DefaultMaxInFlight = 8
)
