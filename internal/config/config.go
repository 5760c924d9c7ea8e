// Package config loads node addresses and run defaults from a TOML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/datacom/internal/model"
)

const (
	DefaultRelayAddr     = "127.0.0.1:8080"
	DefaultReceiverAddr  = "127.0.0.1:8081"
	DefaultMaxFrameBytes = 4096
	DefaultReportsDir    = ".datacom-reports"
)

// Config is the resolved configuration shared by all commands.
type Config struct {
	// RelayAddr is where the relay listens and the sender dials.
	RelayAddr string
	// ReceiverAddr is where the receiver listens and the relay dials.
	ReceiverAddr string

	DialTimeout   time.Duration
	ReadTimeout   time.Duration
	MaxFrameBytes int

	Method    m.Method
	Injection m.InjectionMethod
	// Seed fixes the injector sequence when non-zero.
	Seed uint64

	Trials     int
	Parallel   int
	ReportsDir m.Path
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		RelayAddr:     DefaultRelayAddr,
		ReceiverAddr:  DefaultReceiverAddr,
		DialTimeout:   3 * time.Second,
		ReadTimeout:   30 * time.Second,
		MaxFrameBytes: DefaultMaxFrameBytes,
		Method:        m.MethodParity,
		Injection:     m.InjectionRandom,
		Trials:        100,
		Parallel:      1,
		ReportsDir:    DefaultReportsDir,
	}
}

type fileConfig struct {
	RelayAddr     string `toml:"relay_addr"`
	ReceiverAddr  string `toml:"receiver_addr"`
	DialTimeout   string `toml:"dial_timeout"`
	ReadTimeout   string `toml:"read_timeout"`
	MaxFrameBytes int    `toml:"max_frame_bytes"`
	Method        string `toml:"method"`
	Injection     string `toml:"injection"`
	Seed          uint64 `toml:"seed"`
	Trials        int    `toml:"trials"`
	Parallel      int    `toml:"parallel"`
	ReportsDir    string `toml:"reports_dir"`
}

// Load reads path and overlays the keys it defines on Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("relay_addr") {
		cfg.RelayAddr = strings.TrimSpace(raw.RelayAddr)
	}

	if meta.IsDefined("receiver_addr") {
		cfg.ReceiverAddr = strings.TrimSpace(raw.ReceiverAddr)
	}

	if meta.IsDefined("dial_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.DialTimeout))
		if err != nil {
			return Config{}, fmt.Errorf("parse dial_timeout: %w", err)
		}

		cfg.DialTimeout = d
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return Config{}, fmt.Errorf("parse read_timeout: %w", err)
		}

		cfg.ReadTimeout = d
	}

	if meta.IsDefined("max_frame_bytes") {
		cfg.MaxFrameBytes = raw.MaxFrameBytes
	}

	if meta.IsDefined("method") {
		method, err := m.ParseMethod(raw.Method)
		if err != nil {
			return Config{}, fmt.Errorf("parse method: %w", err)
		}

		cfg.Method = method
	}

	if meta.IsDefined("injection") {
		injection, err := m.ParseInjection(raw.Injection)
		if err != nil {
			return Config{}, fmt.Errorf("parse injection: %w", err)
		}

		cfg.Injection = injection
	}

	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}

	if meta.IsDefined("trials") {
		cfg.Trials = raw.Trials
	}

	if meta.IsDefined("parallel") {
		cfg.Parallel = raw.Parallel
	}

	if meta.IsDefined("reports_dir") {
		cfg.ReportsDir = m.Path(strings.TrimSpace(raw.ReportsDir))
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values no command can run with.
func Validate(cfg Config) error {
	if cfg.RelayAddr == "" {
		return fmt.Errorf("relay_addr is required")
	}

	if cfg.ReceiverAddr == "" {
		return fmt.Errorf("receiver_addr is required")
	}

	if cfg.MaxFrameBytes <= 0 {
		return fmt.Errorf("max_frame_bytes must be positive, got %d", cfg.MaxFrameBytes)
	}

	if cfg.DialTimeout <= 0 || cfg.ReadTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	if cfg.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}

	return nil
}
