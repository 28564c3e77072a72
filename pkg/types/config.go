package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// CORS
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`

	// Throttle for public POST endpoints, per client address
	RateLimitPerSec float64 `envconfig:"RATE_LIMIT_PER_SEC" default:"2"`
	RateLimitBurst  int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// ClientConfig configures the app commands that talk to the backend.
type ClientConfig struct {
	BackendURL string `envconfig:"BACKEND_URL"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
}
