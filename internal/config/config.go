package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"metroems/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Backend   Backend   `yaml:"backend" mapstructure:"backend"`
	Session   Session   `yaml:"session" mapstructure:"session"`
	Poll      Poll      `yaml:"poll" mapstructure:"poll"`
	Telemetry Telemetry `yaml:"telemetry" mapstructure:"telemetry"`
	Logs      Logs      `yaml:"logs" mapstructure:"logs"`
	Synthetic Synthetic `yaml:"synthetic" mapstructure:"synthetic"`
	Logging   Logging   `yaml:"logging" mapstructure:"logging"`
	Sentry    Sentry    `yaml:"sentry" mapstructure:"sentry"`
	Demo      Demo      `yaml:"demo" mapstructure:"demo"`
	Version   int       `yaml:"version" mapstructure:"version"`
}

// Backend holds the device-session boundary connection settings
type Backend struct {
	URL           string        `yaml:"url" mapstructure:"url"`
	Token         string        `yaml:"token" mapstructure:"token"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	HealthTimeout time.Duration `yaml:"health_timeout" mapstructure:"health_timeout"`
}

// Session identifies the device session the console attaches to
type Session struct {
	ID string `yaml:"id" mapstructure:"id"`
}

// Poll holds the polling cadence
type Poll struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// Telemetry holds rolling window settings
type Telemetry struct {
	Window int `yaml:"window" mapstructure:"window"`
}

// Logs holds log tail limits and follow behaviour
type Logs struct {
	ConnectedLimit  int `yaml:"connected_limit" mapstructure:"connected_limit"`
	DemoLimit       int `yaml:"demo_limit" mapstructure:"demo_limit"`
	FullLimit       int `yaml:"full_limit" mapstructure:"full_limit"`
	FollowThreshold int `yaml:"follow_threshold" mapstructure:"follow_threshold"`
}

// Range is an inclusive-exclusive value range for generated readings
type Range struct {
	Min float64 `yaml:"min" mapstructure:"min"`
	Max float64 `yaml:"max" mapstructure:"max"`
}

// Synthetic holds the ranges used when no device session is usable
type Synthetic struct {
	Signal          Range   `yaml:"signal" mapstructure:"signal"`
	SNR             Range   `yaml:"snr" mapstructure:"snr"`
	Tx              Range   `yaml:"tx" mapstructure:"tx"`
	Rx              Range   `yaml:"rx" mapstructure:"rx"`
	WarnProbability float64 `yaml:"warn_probability" mapstructure:"warn_probability"`
}

// Logging holds application log settings
type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// Sentry holds optional error reporting settings
type Sentry struct {
	DSN         string `yaml:"dsn" mapstructure:"dsn"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// Demo holds the demo backend settings
type Demo struct {
	Addr        string  `yaml:"addr" mapstructure:"addr"`
	Secret      string  `yaml:"secret" mapstructure:"secret"`
	Password    string  `yaml:"password" mapstructure:"password"`
	FailureRate float64 `yaml:"failure_rate" mapstructure:"failure_rate"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Backend.URL = BackendURL
	cfg.Backend.Timeout = RequestTimeout
	cfg.Backend.HealthTimeout = HealthTimeout

	cfg.Poll.Interval = PollInterval

	cfg.Telemetry.Window = TelemetryWindow

	cfg.Logs.ConnectedLimit = ConnectedLogLimit
	cfg.Logs.DemoLimit = DemoLogLimit
	cfg.Logs.FullLimit = FullLogLimit
	cfg.Logs.FollowThreshold = FollowThreshold

	cfg.Synthetic.Signal = Range{Min: SignalMin, Max: SignalMax}
	cfg.Synthetic.SNR = Range{Min: SNRMin, Max: SNRMax}
	cfg.Synthetic.Tx = Range{Min: TxMin, Max: TxMax}
	cfg.Synthetic.Rx = Range{Min: RxMin, Max: RxMax}
	cfg.Synthetic.WarnProbability = WarnProbability

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Demo.Addr = DemoAddr
	cfg.Demo.Secret = DemoSecret

	return cfg
}

// Load loads the configuration from metroems.yaml in the working directory
func Load() (*Config, error) {
	return LoadFile(FileName)
}

// LoadFile loads the configuration from the given path, layering env overrides on top
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load(EnvFile)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := checkSyntax(data); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
		}

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every key so env overrides apply even without a config file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("backend.url", cfg.Backend.URL)
	v.SetDefault("backend.token", cfg.Backend.Token)
	v.SetDefault("backend.timeout", cfg.Backend.Timeout)
	v.SetDefault("backend.health_timeout", cfg.Backend.HealthTimeout)
	v.SetDefault("session.id", cfg.Session.ID)
	v.SetDefault("poll.interval", cfg.Poll.Interval)
	v.SetDefault("telemetry.window", cfg.Telemetry.Window)
	v.SetDefault("logs.connected_limit", cfg.Logs.ConnectedLimit)
	v.SetDefault("logs.demo_limit", cfg.Logs.DemoLimit)
	v.SetDefault("logs.full_limit", cfg.Logs.FullLimit)
	v.SetDefault("logs.follow_threshold", cfg.Logs.FollowThreshold)
	v.SetDefault("synthetic.signal.min", cfg.Synthetic.Signal.Min)
	v.SetDefault("synthetic.signal.max", cfg.Synthetic.Signal.Max)
	v.SetDefault("synthetic.snr.min", cfg.Synthetic.SNR.Min)
	v.SetDefault("synthetic.snr.max", cfg.Synthetic.SNR.Max)
	v.SetDefault("synthetic.tx.min", cfg.Synthetic.Tx.Min)
	v.SetDefault("synthetic.tx.max", cfg.Synthetic.Tx.Max)
	v.SetDefault("synthetic.rx.min", cfg.Synthetic.Rx.Min)
	v.SetDefault("synthetic.rx.max", cfg.Synthetic.Rx.Max)
	v.SetDefault("synthetic.warn_probability", cfg.Synthetic.WarnProbability)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("sentry.dsn", cfg.Sentry.DSN)
	v.SetDefault("sentry.environment", cfg.Sentry.Environment)
	v.SetDefault("demo.addr", cfg.Demo.Addr)
	v.SetDefault("demo.secret", cfg.Demo.Secret)
	v.SetDefault("demo.password", cfg.Demo.Password)
	v.SetDefault("demo.failure_rate", cfg.Demo.FailureRate)
	v.SetDefault("version", cfg.Version)
}

// checkSyntax parses the raw document so syntax errors carry yaml line information
func checkSyntax(data []byte) error {
	var root yaml.Node

	return yaml.Unmarshal(data, &root)
}

// ApplyDefaults normalizes values that viper leaves in a raw form
func (c *Config) ApplyDefaults() {
	c.Backend.URL = strings.TrimRight(strings.TrimSpace(c.Backend.URL), "/")
	c.Backend.Token = strings.TrimSpace(c.Backend.Token)
	c.Session.ID = strings.TrimSpace(c.Session.ID)

	if c.Logging.Level == "" {
		c.Logging.Level = LogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = LogFormat
	}

	if c.Demo.Addr == "" {
		c.Demo.Addr = DemoAddr
	}

	if c.Demo.Secret == "" {
		c.Demo.Secret = DemoSecret
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateBackend(); err != nil {
		return err
	}

	if c.Poll.Interval <= 0 {
		return errors.ErrInvalidPollInterval
	}

	if c.Telemetry.Window <= 0 {
		return errors.ErrInvalidWindowSize
	}

	if err := c.validateLogs(); err != nil {
		return err
	}

	if err := c.validateSynthetic(); err != nil {
		return err
	}

	if len(c.Demo.Password) > MaxPasswordLength {
		return errors.ErrInvalidDemoPassword
	}

	return nil
}

// validateBackend validates boundary settings
func (c *Config) validateBackend() error {
	if c.Backend.URL == "" {
		return errors.ErrBackendURLRequired
	}

	if c.Backend.Timeout <= 0 {
		return errors.ErrInvalidRequestTimeout
	}

	if c.Backend.HealthTimeout <= 0 || c.Backend.HealthTimeout >= MaxHealthTimeout {
		return errors.ErrInvalidHealthTimeout
	}

	return nil
}

// validateLogs validates log tail settings
func (c *Config) validateLogs() error {
	if c.Logs.ConnectedLimit < 0 || c.Logs.DemoLimit < 0 || c.Logs.FullLimit < 0 {
		return errors.ErrInvalidLogLimit
	}

	if c.Logs.FollowThreshold < 0 {
		return errors.ErrInvalidFollowThreshold
	}

	return nil
}

// validateSynthetic validates generator ranges
func (c *Config) validateSynthetic() error {
	ranges := map[string]Range{
		"signal": c.Synthetic.Signal,
		"snr":    c.Synthetic.SNR,
		"tx":     c.Synthetic.Tx,
		"rx":     c.Synthetic.Rx,
	}

	for name, r := range ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%s: %w", name, errors.ErrInvalidRange)
		}
	}

	if c.Synthetic.WarnProbability < 0 || c.Synthetic.WarnProbability > 1 {
		return errors.ErrInvalidProbability
	}

	return nil
}
