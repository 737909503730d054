package configs

import "time"

// Redis configures the builder session store. An empty Addr keeps sessions
// in process memory instead.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// SessionTTL is how long an idle conversation is kept.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// LockTTL bounds how long one turn may hold a conversation.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"30s"`
}

// Enabled reports whether a Redis server is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}
