package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionTTL is the inactivity window for authenticated sessions.
	SessionTTL time.Duration `env:"SESSION_TTL, default=30m"`

	// RoleBindings is the fixed email→role allow-list, injected so it can be
	// swapped without recompilation. Entries are email:rol pairs.
	RoleBindings map[string]string `env:"ROLE_BINDINGS, default=cliente@prueba.com:cliente,doctor@prueba.com:doctor,admin@prueba.com:admin"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Mongo    MongoConfig
}

type PostgresConfig struct {
	URL string `env:"POSTGRES_URL, default=postgres://localhost:5432/veterinaria?sslmode=disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD, default="`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=veterinaria"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Bindings converts the raw allow-list into typed roles, rejecting unknown
// role labels at startup rather than at login time.
func (c *Config) Bindings() (map[string]domain.Role, error) {
	bindings := make(map[string]domain.Role, len(c.RoleBindings))
	for email, label := range c.RoleBindings {
		role := domain.Role(label)
		if !role.Valid() {
			return nil, fmt.Errorf("config: unknown role %q for email %q", label, email)
		}
		bindings[email] = role
	}
	return bindings, nil
}
