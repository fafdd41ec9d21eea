package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/thebartekbanach/thumbgate/pkg/thumbor"
)

var (
	ValidLogLevels         = [4]string{"TRACE", "DEBUG", "INFO", "ERROR"}
	ValidThumborURLSchemes = [2]string{"http", "https"}
	ValidNamespaceSyntaxes = [2]thumbor.NamespaceSyntax{thumbor.NamespaceSyntaxRegexp, thumbor.NamespaceSyntaxGlob}
)

// Validate validates the provided config
// returning a list of errors that can be unwrapped with `errors.Unwrap`
// or nil if the config is valid
func Validate(config Config) error {
	var validLogLevel bool
	var allErrs error

	for _, validLevel := range ValidLogLevels {
		if config.LogLevel == validLevel {
			validLogLevel = true
			break
		}
	}

	if !validLogLevel {
		allErrs = fmt.Errorf("invalid %s specified %s, supported values are %v", LOG_LEVEL_ENVIRONMENT_KEY, config.LogLevel, ValidLogLevels)
	}

	_, err := strconv.Atoi(config.ServicePort)

	if err != nil {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s", SERVICE_PORT_ENVIRONMENT_KEY, config.ServicePort))
	}

	if config.ServiceNamespace == "" {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s, must not be empty", SERVICE_NAMESPACE_ENVIRONMENT_KEY, config.ServiceNamespace))
	}

	if !isValidNamespaceSyntax(config.ServiceNamespaceSyntax) {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s, supported values are %v", SERVICE_NAMESPACE_SYNTAX_ENVIRONMENT_KEY, config.ServiceNamespaceSyntax, ValidNamespaceSyntaxes))
	} else if _, err := thumbor.NewNamespaceMatcher(thumbor.NamespaceSyntax(config.ServiceNamespaceSyntax), config.ServiceNamespace); err != nil {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s: %v", SERVICE_NAMESPACE_ENVIRONMENT_KEY, config.ServiceNamespace, err))
	}

	if err := validateServiceURL(config.ThumborBaseURL); err != nil {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s: %v", THUMBOR_BASE_URL_ENVIRONMENT_KEY, config.ThumborBaseURL, err))
	}

	if _, err := ParseRawFormats(config.FormatsRaw); err != nil {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s: %v", FORMATS_ENVIRONMENT_KEY, config.FormatsRaw, err))
	}

	if config.ThumborTimeoutRaw != "" {
		if _, err := strconv.Atoi(config.ThumborTimeoutRaw); err != nil {
			allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s, must be a whole number of seconds", THUMBOR_TIMEOUT_SECONDS_ENVIRONMENT_KEY, config.ThumborTimeoutRaw))
		}
	}

	if config.ThumborTimeout <= 0 {
		allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s, must be greater than zero", THUMBOR_TIMEOUT_SECONDS_ENVIRONMENT_KEY, config.ThumborTimeout))
	}

	if config.AppBackendURLRaw != "" {
		if err := validateServiceURL(config.AppBackendURLRaw); err != nil {
			allErrs = errors.Join(allErrs, fmt.Errorf("invalid %s specified %s: %v", APP_BACKEND_URL_ENVIRONMENT_KEY, config.AppBackendURLRaw, err))
		}
	}

	return allErrs
}

func isValidNamespaceSyntax(syntax string) bool {
	for _, validSyntax := range ValidNamespaceSyntaxes {
		if thumbor.NamespaceSyntax(syntax) == validSyntax {
			return true
		}
	}

	return false
}

func validateServiceURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("must not be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	for _, scheme := range ValidThumborURLSchemes {
		if parsed.Scheme == scheme {
			if parsed.Host == "" {
				return errors.New("must contain host")
			}

			return nil
		}
	}

	return fmt.Errorf("scheme must be one of %v", ValidThumborURLSchemes)
}
