package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.JWTAccessTTL < 0 {
		return fmt.Errorf("auth.jwt_access_ttl must not be negative (got %s)", c.Auth.JWTAccessTTL)
	}

	if c.Auth.Enabled && !c.Auth.JWTEnabled() && c.Auth.RemoteUserHeader == "" {
		return fmt.Errorf("auth.enabled requires auth.jwt_secret or auth.remote_user_header")
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a *AuditConfig) validate() error {
	if a.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", a.MaxPageSize)
	}
	if a.DefaultPageSize <= 0 || a.DefaultPageSize > a.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", a.MaxPageSize, a.DefaultPageSize)
	}
	if a.RecentCount <= 0 || a.RecentCount > a.MaxPageSize {
		return fmt.Errorf("recent_count must be in 1..%d (got %d)", a.MaxPageSize, a.RecentCount)
	}
	return nil
}
