// Package config binds process-level configuration from the environment,
// generalizing the teacher's on-disk path resolution (internal/storage in
// the original) to the env-driven knobs a networked service needs.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every process-level knob the server needs at startup.
type Config struct {
	HTTPAddr  string
	DBEnabled bool
	DBURL     string
	LogLevel  string

	// AIThinkBudget is reserved for future time-boxing of the hard-tier
	// search; the bounded one-ply evaluation in internal/policy doesn't
	// need it, so it is read but otherwise unused.
	AIThinkBudget time.Duration
}

// Load reads configuration from the environment (prefix QUORIDOR_) with
// sane defaults, matching spec §6 ("Connection string and enable flag are
// read from environment (DB_ENABLED, connection URL)").
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("quoridor")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_enabled", false)
	v.SetDefault("db_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("ai_think_budget_ms", 0)

	return &Config{
		HTTPAddr:      v.GetString("http_addr"),
		DBEnabled:     v.GetBool("db_enabled"),
		DBURL:         v.GetString("db_url"),
		LogLevel:      v.GetString("log_level"),
		AIThinkBudget: time.Duration(v.GetInt("ai_think_budget_ms")) * time.Millisecond,
	}, nil
}
