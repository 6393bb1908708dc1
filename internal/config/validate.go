package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Content.Provider = strings.ToLower(strings.TrimSpace(c.Content.Provider))

	switch c.Content.Provider {
	case ProviderStatic:
	case ProviderPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres content provider")
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case ProviderSQLite:
		if strings.TrimSpace(c.Content.SQLitePath) == "" {
			return fmt.Errorf("content.sqlite_path is required for the sqlite content provider")
		}
	default:
		return fmt.Errorf("content.provider must be one of static, postgres, sqlite (got %q)", c.Content.Provider)
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	if c.Server.LookupRateLimit < 0 {
		return fmt.Errorf("server.lookup_rate_limit must be >= 0 (got %d)", c.Server.LookupRateLimit)
	}

	if c.Glossary.RenderCacheSize <= 0 {
		return fmt.Errorf("glossary.render_cache_size must be > 0 (got %d)", c.Glossary.RenderCacheSize)
	}

	return nil
}

func (c *ContentConfig) validate() error {
	sizes := []struct {
		name  string
		value int
	}{
		{"featured_size", c.FeaturedSize},
		{"recent_size", c.RecentSize},
		{"related_size", c.RelatedSize},
		{"list_size", c.ListSize},
	}
	for _, s := range sizes {
		if s.value < 1 || s.value > 100 {
			return fmt.Errorf("%s must be between 1 and 100 (got %d)", s.name, s.value)
		}
	}
	return nil
}
