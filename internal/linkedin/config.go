// Package linkedin publishes composed posts through the LinkedIn REST API:
// text posts, polls, and the multi-step media upload flow, plus the OpenID
// userinfo endpoint used to resolve the author.
package linkedin

import (
	"github.com/louisbranch/postforge/internal/platform/config"
)

// Config holds LinkedIn API credentials and settings read from the
// environment. Publishing needs at least an access token; the person URN
// is derived from the userinfo subject when unset.
type Config struct {
	ClientID     string `env:"POSTFORGE_LINKEDIN_CLIENT_ID"`
	ClientSecret string `env:"POSTFORGE_LINKEDIN_CLIENT_SECRET"`
	AccessToken  string `env:"POSTFORGE_LINKEDIN_ACCESS_TOKEN"`
	PersonURN    string `env:"POSTFORGE_LINKEDIN_PERSON_URN"`
	BaseURL      string `env:"POSTFORGE_LINKEDIN_API_BASE_URL" envDefault:"https://api.linkedin.com"`
	Version      string `env:"POSTFORGE_LINKEDIN_VERSION" envDefault:"202502"`
}

// LoadConfigFromEnv reads the LinkedIn configuration from environment
// variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Configured reports whether the client holds credentials for publishing.
func (c Config) Configured() bool {
	return c.AccessToken != ""
}

// Missing lists the environment variables still needed before posts can go
// live.
func (c Config) Missing() []string {
	var missing []string
	if c.AccessToken == "" {
		missing = append(missing, "POSTFORGE_LINKEDIN_ACCESS_TOKEN")
	}
	if c.PersonURN == "" {
		missing = append(missing, "POSTFORGE_LINKEDIN_PERSON_URN")
	}
	return missing
}
