package device

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Health statuses reported by the boundary
const (
	StatusHealthy = "healthy"
	StatusOK      = "ok"
)

// Health is the boundary health probe result
type Health struct {
	Status              string
	Backend             string
	Timestamp           string
	RealDeviceDetection bool
}

// Healthy reports whether the boundary can serve device sessions
func (h Health) Healthy() bool {
	status := strings.ToLower(strings.TrimSpace(h.Status))
	return status == StatusHealthy || status == StatusOK
}

// DeviceInfo identifies the radio behind a session
type DeviceInfo struct {
	Name       string
	IPAddress  string
	SystemName string
	DeviceType string
	RadioMode  string
	Bandwidth  string
	Channel    string
	SSID       string
	CreatedAt  string
}

// Session is a loaded device session
type Session struct {
	ID     string
	Status string
	Device DeviceInfo
}

// Configuration is the radio configuration shown in the console header
type Configuration struct {
	SystemName string
	IPAddress  string
	SSID       string
	Channel    string
	Bandwidth  string
	RadioMode  string
	SysDescr   string
	SysUpTime  string
}

// DefaultConfiguration is shown until a session configuration is loaded
func DefaultConfiguration() Configuration {
	return Configuration{
		SystemName: "Station Radio",
		SSID:       "MetroNet-Real",
		Channel:    "Auto",
		Bandwidth:  "20MHz",
		RadioMode:  "Access Point",
	}
}

func parseHealth(raw []byte) Health {
	doc := gjson.ParseBytes(raw)

	return Health{
		Status:              doc.Get("status").String(),
		Backend:             doc.Get("backend").String(),
		Timestamp:           doc.Get("timestamp").String(),
		RealDeviceDetection: doc.Get("real_device_detection").Bool(),
	}
}

func parseSession(raw []byte, fallbackID string) Session {
	doc := gjson.ParseBytes(raw)
	info := doc.Get("device_info")

	session := Session{
		ID:     doc.Get("session_id").String(),
		Status: doc.Get("status").String(),
		Device: DeviceInfo{
			Name:       info.Get("name").String(),
			IPAddress:  info.Get("ip_address").String(),
			SystemName: info.Get("system_name").String(),
			DeviceType: info.Get("device_type").String(),
			RadioMode:  info.Get("radio_mode").String(),
			Bandwidth:  info.Get("bandwidth").String(),
			Channel:    info.Get("channel").String(),
			SSID:       info.Get("ssid").String(),
			CreatedAt:  info.Get("created_at").String(),
		},
	}

	if session.ID == "" {
		session.ID = fallbackID
	}

	return session
}

// parseConfiguration accepts {"config": {...}} or a bare object; blanks keep defaults
func parseConfiguration(raw []byte) Configuration {
	doc := gjson.ParseBytes(raw)
	if inner := doc.Get("config"); inner.IsObject() {
		doc = inner
	}

	cfg := DefaultConfiguration()

	fields := []struct {
		key    string
		target *string
	}{
		{key: "systemName", target: &cfg.SystemName},
		{key: "ipAddress", target: &cfg.IPAddress},
		{key: "ssid", target: &cfg.SSID},
		{key: "channel", target: &cfg.Channel},
		{key: "bandwidth", target: &cfg.Bandwidth},
		{key: "radioMode", target: &cfg.RadioMode},
		{key: "sysDescr", target: &cfg.SysDescr},
		{key: "sysUpTime", target: &cfg.SysUpTime},
	}

	for _, f := range fields {
		if value := doc.Get(f.key); value.Exists() && value.Type != gjson.Null && value.String() != "" {
			*f.target = value.String()
		}
	}

	return cfg
}
