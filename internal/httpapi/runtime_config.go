package httpapi

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"timesheet/internal/config"
)

const (
	envDevMode            = "DEV_MODE"
	envProductionMode     = "PRODUCTION_MODE"
	envCORSAllowedOrigins = "TIMESHEET_CORS_ALLOWED_ORIGINS"
	envMaxUploadBytes     = "TIMESHEET_MAX_UPLOAD_BYTES"
)

const defaultMaxUploadBytes int64 = 10 << 20

type RuntimeMode string

const (
	RuntimeModeDevelopment RuntimeMode = "development"
	RuntimeModeProduction  RuntimeMode = "production"
)

type RuntimeConfig struct {
	Mode               RuntimeMode
	CORSAllowedOrigins []string
	AllowAnyCORSOrigin bool
	MaxUploadBytes     int64
}

func (m RuntimeMode) IsDevelopment() bool {
	return m == RuntimeModeDevelopment
}

func (m RuntimeMode) IsProduction() bool {
	return m == RuntimeModeProduction
}

func DefaultListenAddr(mode RuntimeMode) string {
	if mode.IsDevelopment() {
		return "127.0.0.1:8070"
	}
	return ":8070"
}

func LoadRuntimeConfigFromEnv() (RuntimeConfig, error) {
	return LoadRuntimeConfig(config.ServerConfig{})
}

// LoadRuntimeConfig starts from the config file values and lets environment
// variables override them.
func LoadRuntimeConfig(file config.ServerConfig) (RuntimeConfig, error) {
	mode, err := runtimeModeFromEnv(file.DevMode)
	if err != nil {
		return RuntimeConfig{}, err
	}

	maxUploadBytes, err := maxUploadBytesFromEnv(file.MaxUploadBytes)
	if err != nil {
		return RuntimeConfig{}, err
	}

	allowedOrigins := uniqueNonEmpty(file.CORSAllowedOrigins)
	if rawOrigins, ok := os.LookupEnv(envCORSAllowedOrigins); ok && strings.TrimSpace(rawOrigins) != "" {
		allowedOrigins = parseCSV(rawOrigins)
	}

	if mode.IsProduction() {
		for _, origin := range allowedOrigins {
			if origin == "*" {
				return RuntimeConfig{}, fmt.Errorf("%s cannot include wildcard origin in production mode", envCORSAllowedOrigins)
			}
		}
		return RuntimeConfig{
			Mode:               mode,
			CORSAllowedOrigins: allowedOrigins,
			MaxUploadBytes:     maxUploadBytes,
		}, nil
	}

	if len(allowedOrigins) == 0 {
		return RuntimeConfig{
			Mode:               mode,
			CORSAllowedOrigins: []string{"*"},
			AllowAnyCORSOrigin: true,
			MaxUploadBytes:     maxUploadBytes,
		}, nil
	}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			return RuntimeConfig{
				Mode:               mode,
				CORSAllowedOrigins: []string{"*"},
				AllowAnyCORSOrigin: true,
				MaxUploadBytes:     maxUploadBytes,
			}, nil
		}
	}

	return RuntimeConfig{
		Mode:               mode,
		CORSAllowedOrigins: allowedOrigins,
		MaxUploadBytes:     maxUploadBytes,
	}, nil
}

func runtimeModeFromEnv(fileDevMode *bool) (RuntimeMode, error) {
	devMode, devSet, err := parseOptionalBoolEnv(envDevMode)
	if err != nil {
		return "", err
	}
	productionMode, productionSet, err := parseOptionalBoolEnv(envProductionMode)
	if err != nil {
		return "", err
	}
	if devMode && productionMode {
		return "", fmt.Errorf("%s and %s cannot both be true", envDevMode, envProductionMode)
	}
	if devMode {
		return RuntimeModeDevelopment, nil
	}
	if productionMode {
		return RuntimeModeProduction, nil
	}
	if !devSet && !productionSet && fileDevMode != nil && *fileDevMode {
		return RuntimeModeDevelopment, nil
	}

	return RuntimeModeProduction, nil
}

func maxUploadBytesFromEnv(fileValue *int64) (int64, error) {
	value := defaultMaxUploadBytes
	if fileValue != nil {
		value = *fileValue
	}

	if rawValue, ok := os.LookupEnv(envMaxUploadBytes); ok && strings.TrimSpace(rawValue) != "" {
		parsed, err := strconv.ParseInt(strings.TrimSpace(rawValue), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer: %w", envMaxUploadBytes, err)
		}
		value = parsed
	}

	if value <= 0 {
		return 0, fmt.Errorf("max upload bytes must be positive, got %d", value)
	}
	return value, nil
}

func parseOptionalBoolEnv(key string) (value bool, set bool, err error) {
	rawValue, exists := os.LookupEnv(key)
	if !exists {
		return false, false, nil
	}
	trimmedValue := strings.TrimSpace(rawValue)
	if trimmedValue == "" {
		return false, false, nil
	}
	parsedValue, parseErr := strconv.ParseBool(trimmedValue)
	if parseErr != nil {
		return false, true, fmt.Errorf("%s must be a boolean value: %w", key, parseErr)
	}
	return parsedValue, true, nil
}

func parseCSV(rawValue string) []string {
	return uniqueNonEmpty(strings.Split(rawValue, ","))
}

func uniqueNonEmpty(parts []string) []string {
	values := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	for _, part := range parts {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		if _, exists := seen[trimmedPart]; exists {
			continue
		}
		seen[trimmedPart] = struct{}{}
		values = append(values, trimmedPart)
	}
	return values
}
