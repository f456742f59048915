package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("server.api_prefix must start with '/' (got %q)", c.Server.APIPrefix)
	}
	c.Server.APIPrefix = strings.TrimRight(c.Server.APIPrefix, "/")

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerWindow <= 0 {
			return fmt.Errorf("rate_limit.requests_per_window must be > 0 (got %d)", c.RateLimit.RequestsPerWindow)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be > 0 (got %v)", c.RateLimit.Window)
		}
	}

	if c.Redis.Enabled {
		if _, err := url.Parse(c.Redis.URL); err != nil || c.Redis.URL == "" {
			return fmt.Errorf("redis.url is invalid (got %q)", c.Redis.URL)
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Backend {
	case StorageLocal:
		if strings.TrimSpace(s.LocalPath) == "" {
			return fmt.Errorf("local_path is required for the local backend")
		}
	case StorageRemote:
		if s.RemoteBucket == "" {
			return fmt.Errorf("remote_bucket is required for the remote backend")
		}
		if _, err := url.ParseRequestURI(s.RemoteBaseURL); err != nil {
			return fmt.Errorf("remote_base_url is invalid (got %q)", s.RemoteBaseURL)
		}
		s.RemoteBaseURL = strings.TrimRight(s.RemoteBaseURL, "/")
	default:
		return fmt.Errorf("backend must be %q or %q (got %q)", StorageLocal, StorageRemote, s.Backend)
	}

	if s.MaxImageSizeMB <= 0 {
		return fmt.Errorf("max_image_size_mb must be > 0 (got %d)", s.MaxImageSizeMB)
	}

	s.AllowedMimeTypes = SplitList(s.AllowedMimeTypesRaw)
	if len(s.AllowedMimeTypes) == 0 {
		return fmt.Errorf("allowed_mime_types must not be empty")
	}
	for _, m := range s.AllowedMimeTypes {
		if !strings.HasPrefix(m, "image/") {
			return fmt.Errorf("allowed_mime_types: %q is not an image type", m)
		}
	}

	return nil
}
