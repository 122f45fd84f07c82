package connection

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"metroems/internal/app/device"
	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	log := logger.NewMockLogger(ctrl)
	noop := zerolog.New(io.Discard)
	log.EXPECT().Debug().Return(noop.Debug()).AnyTimes()
	log.EXPECT().Info().Return(noop.Info()).AnyTimes()
	log.EXPECT().Warn().Return(noop.Warn()).AnyTimes()
	log.EXPECT().Error().Return(noop.Error()).AnyTimes()
	log.EXPECT().WithComponent(gomock.Any()).Return(log).AnyTimes()

	return log
}

func Test_State(t *testing.T) {
	assert.False(t, Disconnected().IsConnected())
	assert.Equal(t, "Disconnected", Disconnected().String())
	assert.Empty(t, Disconnected().SessionID())

	s := Connected("1")
	assert.True(t, s.IsConnected())
	assert.Equal(t, "1", s.SessionID())
	assert.Equal(t, "Connected(1)", s.String())
	assert.Equal(t, Connected("1"), s)
}

func Test_Establish(t *testing.T) {
	healthy := device.Health{Status: "healthy", RealDeviceDetection: true}
	loaded := device.Configuration{SystemName: "Tower-7", SSID: "MetroNet-Real"}
	previous := device.Configuration{SystemName: "Previous"}

	tests := []struct {
		name      string
		sessionID string
		previous  *device.Configuration
		before    func(client *device.MockClient)
		state     State
		config    device.Configuration
		notice    error
		reason    error
	}{
		{
			name:      "health probe fails",
			sessionID: "1",
			before: func(client *device.MockClient) {
				client.EXPECT().Health(gomock.Any()).Return(device.Health{}, errors.ErrBackendUnavailable)
			},
			state:  Disconnected(),
			config: device.DefaultConfiguration(),
			reason: errors.ErrBackendUnavailable,
		},
		{
			name:      "health probe unhealthy",
			sessionID: "1",
			before: func(client *device.MockClient) {
				client.EXPECT().Health(gomock.Any()).Return(device.Health{Status: "degraded"}, nil)
			},
			state:  Disconnected(),
			config: device.DefaultConfiguration(),
			reason: errors.ErrBackendUnhealthy,
		},
		{
			name:      "healthy without session id",
			sessionID: "",
			before: func(client *device.MockClient) {
				client.EXPECT().Health(gomock.Any()).Return(healthy, nil)
			},
			state:  Disconnected(),
			config: device.DefaultConfiguration(),
		},
		{
			name:      "healthy with session loads configuration",
			sessionID: "1",
			before: func(client *device.MockClient) {
				client.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				client.EXPECT().Session(gomock.Any(), "1").Return(device.Session{ID: "1", Status: "active"}, nil)
				client.EXPECT().Configuration(gomock.Any(), "1").Return(loaded, nil)
			},
			state:  Connected("1"),
			config: loaded,
		},
		{
			name:      "session load failure stays connected with default configuration",
			sessionID: "1",
			before: func(client *device.MockClient) {
				client.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				client.EXPECT().Session(gomock.Any(), "1").Return(device.Session{}, errors.ErrSessionNotFound)
			},
			state:  Connected("1"),
			config: device.DefaultConfiguration(),
			notice: errors.ErrSessionLoad,
		},
		{
			name:      "configuration failure keeps previous configuration",
			sessionID: "1",
			previous:  &previous,
			before: func(client *device.MockClient) {
				client.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				client.EXPECT().Session(gomock.Any(), "1").Return(device.Session{ID: "1"}, nil)
				client.EXPECT().Configuration(gomock.Any(), "1").Return(device.Configuration{}, errors.ErrUnexpectedStatus)
			},
			state:  Connected("1"),
			config: previous,
			notice: errors.ErrSessionLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := device.NewMockClient(ctrl)
			tt.before(client)

			tracker := NewTracker(config.DefaultConfig(), client, newTestLogger(ctrl))
			result := tracker.Establish(context.Background(), tt.sessionID, tt.previous)

			assert.Equal(t, tt.state, result.State)
			assert.Equal(t, tt.config, result.Configuration)

			if tt.reason == nil {
				assert.NoError(t, result.Reason)
			} else {
				assert.ErrorIs(t, result.Reason, tt.reason)
			}

			if tt.notice == nil {
				assert.NoError(t, result.Notice)
				return
			}

			assert.ErrorIs(t, result.Notice, tt.notice)
		})
	}
}

func Test_Establish_HealthTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := device.NewMockClient(ctrl)
	client.EXPECT().Health(gomock.Any()).DoAndReturn(func(ctx context.Context) (device.Health, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)

		<-ctx.Done()

		return device.Health{}, ctx.Err()
	})

	cfg := config.DefaultConfig()
	cfg.Backend.HealthTimeout = 50 * time.Millisecond

	result := NewTracker(cfg, client, newTestLogger(ctrl)).Establish(context.Background(), "1", nil)

	assert.Equal(t, Disconnected(), result.State)
	assert.ErrorIs(t, result.Reason, context.DeadlineExceeded)
}
