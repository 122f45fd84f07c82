package config

import "time"

// app constants
const (
	AppName        = "metroems"
	AppDescription = "Live monitoring console for metro ethernet radio sessions"
	FileName       = "metroems.yaml"
	EnvFile        = ".env"
	EnvPrefix      = "METROEMS"

	LogLevel  = "info"
	LogFormat = "console"

	Version = "0.4.0"
)

// backend constants
const (
	BackendURL     = "http://localhost:8002"
	RequestTimeout = 3 * time.Second
	HealthTimeout  = 3 * time.Second

	// MaxHealthTimeout keeps a down backend from stalling the first render
	MaxHealthTimeout = 5 * time.Second
)

// polling constants
const (
	PollInterval  = 1000 * time.Millisecond
	StatsInterval = 2 * time.Second
)

// buffer constants
const (
	TelemetryWindow     = 60
	ConnectedLogLimit   = 500
	DemoLogLimit        = 200
	FullLogLimit        = 0
	FollowThreshold     = 16
	ConfigWatchDebounce = 300 * time.Millisecond
)

// synthetic data constants
const (
	SignalMin = 70.0
	SignalMax = 80.0
	SNRMin    = 40.0
	SNRMax    = 50.0
	TxMin     = 120.0
	TxMax     = 160.0
	RxMin     = 100.0
	RxMax     = 130.0

	WarnProbability = 0.1
)

// demo backend constants
const (
	DemoAddr     = ":8002"
	DemoSecret   = "metroems-demo-secret"
	DemoUser     = "admin"
	DemoTokenTTL = 12 * time.Hour

	// MaxPasswordLength is the longest password bcrypt accepts
	MaxPasswordLength = 72
)

// shutdown constants
const (
	ShutdownTimeout = 5 * time.Second
)
