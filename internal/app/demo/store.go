package demo

import (
	"sync"
	"time"
)

// session is a demo device session
type session struct {
	ID         int
	Name       string
	IP         string
	SystemName string
	DeviceType string
	RadioMode  string
	Bandwidth  string
	Channel    string
	SSID       string
	Status     string
	CreatedAt  time.Time
}

// store holds the demo sessions
type store struct {
	mu       sync.RWMutex
	sessions map[int]*session
}

func newStore(now time.Time) *store {
	return &store{
		sessions: map[int]*session{
			1: {
				ID:         1,
				Name:       "Station Radio",
				IP:         "192.168.1.20",
				SystemName: "MetroNet-Tower-01",
				DeviceType: "station_radio",
				RadioMode:  "Access Point",
				Bandwidth:  "20MHz",
				Channel:    "Auto",
				SSID:       "MetroNet-Real",
				Status:     "active",
				CreatedAt:  now,
			},
		},
	}
}

func (s *store) get(id int) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]

	return sess, ok
}
