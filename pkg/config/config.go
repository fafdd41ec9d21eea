// package config provides functions and values
// for reading and validating thumbgate service configuration
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thebartekbanach/thumbgate/pkg/thumbor"
)

type Config struct {
	LogLevel               string
	ServicePort            string
	ServiceNamespace       string
	ServiceNamespaceSyntax string
	ThumborBaseURL         string
	FormatsRaw             string
	Formats                map[string]string
	ThumborTimeoutRaw      string
	ThumborTimeout         time.Duration
	AppBackendURLRaw       string
	AppBackendURL          *url.URL
}

const (
	LOG_LEVEL_ENVIRONMENT_KEY                = "LOG_LEVEL"
	DEFAULT_LOG_LEVEL                        = "INFO"
	SERVICE_PORT_ENVIRONMENT_KEY             = "THUMBGATE_SERVICE_PORT"
	DEFAULT_SERVICE_PORT                     = "7777"
	SERVICE_NAMESPACE_ENVIRONMENT_KEY        = "THUMBGATE_SERVICE_NAMESPACE"
	DEFAULT_SERVICE_NAMESPACE                = "^/thumbor"
	SERVICE_NAMESPACE_SYNTAX_ENVIRONMENT_KEY = "THUMBGATE_SERVICE_NAMESPACE_SYNTAX"
	DEFAULT_SERVICE_NAMESPACE_SYNTAX         = string(thumbor.NamespaceSyntaxRegexp)
	THUMBOR_BASE_URL_ENVIRONMENT_KEY         = "THUMBGATE_THUMBOR_BASE_URL"
	FORMATS_ENVIRONMENT_KEY                  = "THUMBGATE_FORMATS"
	THUMBOR_TIMEOUT_SECONDS_ENVIRONMENT_KEY  = "THUMBGATE_THUMBOR_TIMEOUT_SECONDS"
	DEFAULT_THUMBOR_TIMEOUT_SECONDS          = 10
	APP_BACKEND_URL_ENVIRONMENT_KEY          = "THUMBGATE_APP_BACKEND_URL"
	FORMAT_SEPARATOR                         = ","
	FORMAT_NAME_TO_DIMENSIONS_SEPARATOR      = ">"
)

var (
	ErrEmptyFormatName       = errors.New("format name must not be empty")
	ErrEmptyFormatDimensions = errors.New("format dimensions must not be empty")
	ErrDuplicateFormatName   = errors.New("format defined more than once")
)

// EnvOrDefault fetches an environment variable value, or if not set returns the fallback value
func EnvOrDefault(key string, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// ParseRawFormats attempts to parse mappings of format name to thumbor
// dimensions, e.g. "thumb>200x200,banner>1200x0".
// An empty string yields an empty mapping.
func ParseRawFormats(raw string) (map[string]string, error) {
	formats := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return formats, nil
	}

	for _, entry := range strings.Split(raw, FORMAT_SEPARATOR) {
		parts := strings.SplitN(entry, FORMAT_NAME_TO_DIMENSIONS_SEPARATOR, 2)
		if len(parts) != 2 {
			return formats, fmt.Errorf("expected format definition like <name>%s<dimensions>, got %s", FORMAT_NAME_TO_DIMENSIONS_SEPARATOR, entry)
		}

		name := strings.TrimSpace(parts[0])
		dimensions := strings.TrimSpace(parts[1])

		if name == "" {
			return formats, fmt.Errorf("%w: %s", ErrEmptyFormatName, entry)
		}

		if dimensions == "" {
			return formats, fmt.Errorf("%w: %s", ErrEmptyFormatDimensions, entry)
		}

		if _, exists := formats[name]; exists {
			return formats, fmt.Errorf("%w: %s", ErrDuplicateFormatName, name)
		}

		formats[name] = dimensions
	}

	return formats, nil
}

// ReadConfig attempts to parse service config from environment values
// the returned config may be invalid and should be validated via the `Validate`
// function of the Config package before use
func ReadConfig() Config {
	rawFormats := os.Getenv(FORMATS_ENVIRONMENT_KEY)
	// best effort; Validate reports the parsing error
	parsedFormats, _ := ParseRawFormats(rawFormats)

	rawThumborTimeout := EnvOrDefault(THUMBOR_TIMEOUT_SECONDS_ENVIRONMENT_KEY, strconv.Itoa(DEFAULT_THUMBOR_TIMEOUT_SECONDS))
	// best effort; Validate reports the parsing error
	thumborTimeoutSeconds, _ := strconv.Atoi(rawThumborTimeout)

	rawAppBackendURL := os.Getenv(APP_BACKEND_URL_ENVIRONMENT_KEY)
	var appBackendURL *url.URL
	if rawAppBackendURL != "" {
		appBackendURL, _ = url.Parse(rawAppBackendURL)
	}

	return Config{
		LogLevel:               EnvOrDefault(LOG_LEVEL_ENVIRONMENT_KEY, DEFAULT_LOG_LEVEL),
		ServicePort:            EnvOrDefault(SERVICE_PORT_ENVIRONMENT_KEY, DEFAULT_SERVICE_PORT),
		ServiceNamespace:       EnvOrDefault(SERVICE_NAMESPACE_ENVIRONMENT_KEY, DEFAULT_SERVICE_NAMESPACE),
		ServiceNamespaceSyntax: EnvOrDefault(SERVICE_NAMESPACE_SYNTAX_ENVIRONMENT_KEY, DEFAULT_SERVICE_NAMESPACE_SYNTAX),
		ThumborBaseURL:         os.Getenv(THUMBOR_BASE_URL_ENVIRONMENT_KEY),
		FormatsRaw:             rawFormats,
		Formats:                parsedFormats,
		ThumborTimeoutRaw:      rawThumborTimeout,
		ThumborTimeout:         time.Duration(thumborTimeoutSeconds) * time.Second,
		AppBackendURLRaw:       rawAppBackendURL,
		AppBackendURL:          appBackendURL,
	}
}

// ThumborConfig returns the part of the config consumed by the interceptor.
func (c Config) ThumborConfig() thumbor.Config {
	return thumbor.Config{
		ServiceNamespace: c.ServiceNamespace,
		NamespaceSyntax:  thumbor.NamespaceSyntax(c.ServiceNamespaceSyntax),
		BaseURL:          c.ThumborBaseURL,
		Formats:          c.Formats,
		Timeout:          c.ThumborTimeout,
	}
}
