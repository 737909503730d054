package configs

import "time"

// Content configures the AI media provider. Without KeyID and KeySecret
// image and video requests fall back to placeholders.
type Content struct {
	BaseURL   string `env:"BASE_URL" envDefault:"https://platform.higgsfield.ai"`
	KeyID     string `env:"KEY_ID"`
	KeySecret string `env:"KEY_SECRET"`
	// PollInterval and MaxAttempts bound how long a generation is awaited.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"60"`
	// RequestTimeout applies to each individual HTTP request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Configured reports whether provider credentials are present.
func (c Content) Configured() bool {
	return c.KeyID != "" && c.KeySecret != ""
}
