package device

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	log := logger.NewMockLogger(ctrl)
	noop := zerolog.New(io.Discard)
	log.EXPECT().Debug().Return(noop.Debug()).AnyTimes()
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()

	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctrl := gomock.NewController(t)

	cfg := config.DefaultConfig()
	cfg.Backend.URL = server.URL
	cfg.Backend.Token = token

	return NewClient(cfg, newTestLogger(ctrl))
}

func Test_Client_Health(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","backend":"running","timestamp":"2026-10-18T09:00:00","real_device_detection":true}`))
	}, "")

	health, err := c.Health(context.Background())
	require.NoError(t, err)

	assert.True(t, health.Healthy())
	assert.Equal(t, "running", health.Backend)
	assert.True(t, health.RealDeviceDetection)
}

func Test_Client_Headers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		_, _ = w.Write([]byte(`{"signal_strength":75}`))
	}, "secret")

	raw, err := c.Telemetry(context.Background(), "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"signal_strength":75}`, string(raw))
}

func Test_Client_Session(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/device-sessions/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"session_id":1,"status":"active","device_info":{"name":"Station Radio","ip_address":"10.0.0.7","ssid":"MetroNet-Real","channel":null}}`))
	}, "")

	session, err := c.Session(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", session.ID)
	assert.Equal(t, "active", session.Status)
	assert.Equal(t, "10.0.0.7", session.Device.IPAddress)
	assert.Empty(t, session.Device.Channel)
}

func Test_Client_Configuration(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/device-sessions/1/configuration", r.URL.Path)
		_, _ = w.Write([]byte(`{"config":{"systemName":"Tower-7","ipAddress":"10.0.0.7","channel":"36","sysDescr":null}}`))
	}, "")

	cfg, err := c.Configuration(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Tower-7", cfg.SystemName)
	assert.Equal(t, "36", cfg.Channel)
	assert.Equal(t, "20MHz", cfg.Bandwidth)
	assert.Empty(t, cfg.SysDescr)
}

func Test_Client_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected []error
	}{
		{name: "not found", status: http.StatusNotFound, expected: []error{errors.ErrUnexpectedStatus, errors.ErrSessionNotFound}},
		{name: "server error", status: http.StatusInternalServerError, expected: []error{errors.ErrUnexpectedStatus}},
		{name: "unauthorized", status: http.StatusUnauthorized, expected: []error{errors.ErrUnexpectedStatus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"detail":"Session not found"}`))
			}, "")

			_, err := c.Logs(context.Background(), "9")
			for _, target := range tt.expected {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func Test_Client_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	ctrl := gomock.NewController(t)

	cfg := config.DefaultConfig()
	cfg.Backend.URL = url

	_, err := NewClient(cfg, newTestLogger(ctrl)).Health(context.Background())
	assert.ErrorIs(t, err, errors.ErrBackendUnavailable)
}

func Test_Client_ContextTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Health(ctx)
	assert.ErrorIs(t, err, errors.ErrBackendUnavailable)
}

func Test_Health_Healthy(t *testing.T) {
	assert.True(t, Health{Status: "healthy"}.Healthy())
	assert.True(t, Health{Status: "OK"}.Healthy())
	assert.False(t, Health{Status: "degraded"}.Healthy())
	assert.False(t, Health{}.Healthy())
}

func Test_DefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.Equal(t, "MetroNet-Real", cfg.SSID)
	assert.Equal(t, "Auto", cfg.Channel)
	assert.Equal(t, "Access Point", cfg.RadioMode)
}
