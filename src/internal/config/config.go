package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultAPIURL = "http://localhost:8080/api"
const defaultStubAddr = ":8080"
const defaultLogLevel = "info"

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	ChannelID   string
	ChannelKey  string
	StubAddr    string
	LogLevel    string
}

// Load reads BANCO_* environment variables and, when BANCO_CONFIG points at a
// file, that file first. Environment values win over file values.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BANCO")
	v.AutomaticEnv()

	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("http_timeout", time.Duration(0))
	v.SetDefault("channel_id", "")
	v.SetDefault("channel_key", "")
	v.SetDefault("stub_addr", defaultStubAddr)
	v.SetDefault("log_level", defaultLogLevel)

	if path := strings.TrimSpace(os.Getenv("BANCO_CONFIG")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	apiURL, err := NormalizeBaseURL(v.GetString("api_url"))
	if err != nil {
		return Config{}, err
	}

	timeout := v.GetDuration("http_timeout")
	if timeout < 0 {
		return Config{}, fmt.Errorf("http_timeout cannot be negative")
	}

	stubAddr := strings.TrimSpace(v.GetString("stub_addr"))
	if stubAddr == "" {
		stubAddr = defaultStubAddr
	}

	logLevel := strings.ToLower(strings.TrimSpace(v.GetString("log_level")))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	return Config{
		APIBaseURL:  apiURL,
		HTTPTimeout: timeout,
		ChannelID:   strings.TrimSpace(v.GetString("channel_id")),
		ChannelKey:  strings.TrimSpace(v.GetString("channel_key")),
		StubAddr:    stubAddr,
		LogLevel:    logLevel,
	}, nil
}

// HasChannelCredentials reports whether both halves of the channel basic-auth
// pair are configured.
func (c Config) HasChannelCredentials() bool {
	return c.ChannelID != "" && c.ChannelKey != ""
}

// NormalizeBaseURL checks that raw is an absolute http(s) URL and strips
// trailing slashes. Empty input yields the default API URL.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultAPIURL
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("api_url %q is not a valid url: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("api_url %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("api_url %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
