package config

// SessionConfig contains session store configuration.
//
// Sessions are kept in Redis so they survive a restart of this service. If
// Redis is unreachable at startup the service falls back to an in-process
// store: logins still work for the life of the process, they just do not
// survive a restart. Session data is cheap to re-derive by logging in again.
type SessionConfig struct {
	// RedisAddr is the Redis host:port used for session storage.
	// Leave empty to force the in-memory store.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis auth password, if any.
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`

	// RedisDB is the Redis logical database index.
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// KeyPrefix namespaces session keys in Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"hrms:session:"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.KeyPrefix == "" {
		s.KeyPrefix = "hrms:session:"
	}
	if s.RedisDB < 0 {
		s.RedisDB = 0
	}
}
