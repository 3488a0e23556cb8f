// Package srv hosts the process-scoped services the Core hands to the logic
// layer: credential verification and the country directory.
package srv

import (
	"net/http"
	"os"
	"time"

	"github.com/roamlog/roam-api/pkg/security"
)

type Srv struct {
	credentials security.Credentials
	countries   *CountryDirectory
}

type ApplyFunc func(*Srv)

func SetupSrvs(fs ...ApplyFunc) *Srv {
	s := &Srv{}
	for _, f := range fs {
		f(s)
	}
	return s
}

func (s *Srv) Credentials() security.Credentials {
	return s.credentials
}

func (s *Srv) CountryDirectory() *CountryDirectory {
	return s.countries
}

type SecurityConfig struct {
	// TokenMode selects the credential implementation: "demo" (default) or "jwt".
	TokenMode      string `toml:"token_mode"`
	JWTSecret      string `toml:"jwt_secret"`
	JWTExpiryHours int    `toml:"jwt_expiry_hours"`
}

func (c *SecurityConfig) FromENV() {
	c.TokenMode = os.Getenv("ROAM_API_TOKEN_MODE")
	c.JWTSecret = os.Getenv("ROAM_API_JWT_SECRET")
}

func ApplyCredentials(cfg SecurityConfig) ApplyFunc {
	return func(s *Srv) {
		switch cfg.TokenMode {
		case "jwt":
			s.credentials = security.NewJWTCredentials(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
		default:
			s.credentials = security.DemoCredentials{}
		}
	}
}

type CountryAPIConfig struct {
	BaseURL         string `toml:"base_url"`
	CacheTTLMinutes int    `toml:"cache_ttl_minutes"`
}

func (c *CountryAPIConfig) FromENV() {
	c.BaseURL = os.Getenv("ROAM_API_COUNTRIES_BASE_URL")
}

func ApplyCountryDirectory(cfg CountryAPIConfig, client *http.Client) ApplyFunc {
	return func(s *Srv) {
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DEFAULT_COUNTRY_API_BASE_URL
		}
		ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
		if ttl <= 0 {
			ttl = time.Hour
		}
		s.countries = NewCountryDirectory(client, baseURL, ttl)
	}
}
