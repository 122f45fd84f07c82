//go:generate mockgen -source=client.go -destination=client_mock.go -package=device
package device

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

const (
	headerRequestID     = "X-Request-ID"
	headerAuthorization = "Authorization"
	maxBodyBytes        = 1 << 20
)

// Client is the device-session boundary
type Client interface {
	Health(ctx context.Context) (Health, error)
	Session(ctx context.Context, id string) (Session, error)
	Configuration(ctx context.Context, id string) (Configuration, error)
	Telemetry(ctx context.Context, id string) ([]byte, error)
	Logs(ctx context.Context, id string) ([]byte, error)
}

// client implements Client over HTTP
type client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

// NewClient creates a boundary client from configuration
func NewClient(cfg *config.Config, log logger.Logger) Client {
	return &client{
		baseURL: cfg.Backend.URL,
		token:   cfg.Backend.Token,
		http: &http.Client{
			Timeout: cfg.Backend.Timeout + time.Second,
		},
		log: log.WithComponent("DEVICE"),
	}
}

// Health probes the boundary
func (c *client) Health(ctx context.Context) (Health, error) {
	body, err := c.get(ctx, "/health")
	if err != nil {
		return Health{}, err
	}

	return parseHealth(body), nil
}

// Session loads session details
func (c *client) Session(ctx context.Context, id string) (Session, error) {
	body, err := c.get(ctx, sessionPath(id, ""))
	if err != nil {
		return Session{}, err
	}

	return parseSession(body, id), nil
}

// Configuration loads the radio configuration of a session
func (c *client) Configuration(ctx context.Context, id string) (Configuration, error) {
	body, err := c.get(ctx, sessionPath(id, "/configuration"))
	if err != nil {
		return Configuration{}, err
	}

	return parseConfiguration(body), nil
}

// Telemetry returns the raw current reading of a session
func (c *client) Telemetry(ctx context.Context, id string) ([]byte, error) {
	return c.get(ctx, sessionPath(id, "/monitoring"))
}

// Logs returns the raw recent log entries of a session
func (c *client) Logs(ctx context.Context, id string) ([]byte, error) {
	return c.get(ctx, sessionPath(id, "/logs"))
}

func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBackendUnavailable, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToDecode, err)
	}

	c.log.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Msgf("GET %s", path)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %w: %s", errors.ErrUnexpectedStatus, errors.ErrSessionNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: %d %s", errors.ErrUnexpectedStatus, resp.StatusCode, path)
	}

	return body, nil
}

func sessionPath(id, suffix string) string {
	return "/device-sessions/" + url.PathEscape(id) + suffix
}
