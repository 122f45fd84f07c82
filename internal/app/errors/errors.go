package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrBackendURLRequired     = errors.New("backend url is required")
	ErrInvalidHealthTimeout   = errors.New("health timeout must be positive and below 5s")
	ErrInvalidRequestTimeout  = errors.New("request timeout must be positive")
	ErrInvalidPollInterval    = errors.New("poll interval must be positive")
	ErrInvalidWindowSize      = errors.New("telemetry window must be positive")
	ErrInvalidLogLimit        = errors.New("log limits must not be negative")
	ErrInvalidFollowThreshold = errors.New("follow threshold must not be negative")
	ErrInvalidRange           = errors.New("synthetic range min must not exceed max")
	ErrInvalidProbability     = errors.New("warn probability must be within [0, 1]")
	ErrInvalidDemoPassword    = errors.New("demo password must not exceed 72 bytes")

	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendUnhealthy   = errors.New("backend reported unhealthy")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrFailedToDecode     = errors.New("failed to decode response")
	ErrSessionLoad        = errors.New("failed to load device session")
	ErrSessionNotFound    = errors.New("session not found")

	ErrInvalidToken       = errors.New("invalid bearer token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotATerminal       = errors.New("console requires an interactive terminal")
	ErrFileExists         = errors.New("file already exists")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
