// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the lockbox server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - SecretKey: HMAC secret for validating JWTs (HS256). Do not use test defaults in prod.
//   - EncryptionKey / EncryptionSalt: inputs for deriving the process master key.
//   - AccessTokenValidityDuration: lifetime of tokens minted by the dev token tool.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	EncryptionKey               string
	EncryptionSalt              string
	AccessTokenValidityDuration time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.EncryptionKey = "encryptionKey"
	c.EncryptionSalt = "lockbox"
	c.AccessTokenValidityDuration = 60 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
