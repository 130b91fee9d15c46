package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type ModelsConfig struct {
	Dir string `yaml:"dir"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
	BufferSize int `yaml:"buffer_size"`
}

type SessionConfig struct {
	InactiveTimeoutMS int `yaml:"inactive_timeout_ms"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type PublishConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type Config struct {
	Locale  string        `yaml:"locale"`
	Models  ModelsConfig  `yaml:"models"`
	Audio   AudioConfig   `yaml:"audio"`
	Session SessionConfig `yaml:"session"`
	Output  OutputConfig  `yaml:"output"`
	Store   StoreConfig   `yaml:"store"`
	Publish PublishConfig `yaml:"publish"`
	Log     LogConfig     `yaml:"log"`
}

func Default() Config {
	return Config{
		Locale: "en-US",
		Models: ModelsConfig{
			Dir: "./models",
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Channels:   2,
			BufferSize: 4096,
		},
		Session: SessionConfig{
			InactiveTimeoutMS: 0,
		},
		Output: OutputConfig{
			Dir: "./out",
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    "./data/dictation.db",
		},
		Publish: PublishConfig{
			Enabled:       false,
			URL:           "nats://localhost:4222",
			SubjectPrefix: "dictation",
		},
		Log: LogConfig{
			Level: "info",
			Dir:   "./log",
		},
	}
}

// Load builds the config: defaults, then the YAML file at path if one
// is given, then DICTATION_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// InactiveTimeout returns the session inactivity timeout; zero means
// disabled.
func (c Config) InactiveTimeout() time.Duration {
	return time.Duration(c.Session.InactiveTimeoutMS) * time.Millisecond
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Locale, "DICTATION_LOCALE")
	overrideString(&cfg.Models.Dir, "DICTATION_MODELS_DIR")
	overrideInt(&cfg.Audio.SampleRate, "DICTATION_AUDIO_SAMPLE_RATE")
	overrideInt(&cfg.Audio.Channels, "DICTATION_AUDIO_CHANNELS")
	overrideInt(&cfg.Audio.BufferSize, "DICTATION_AUDIO_BUFFER_SIZE")
	overrideInt(&cfg.Session.InactiveTimeoutMS, "DICTATION_SESSION_INACTIVE_TIMEOUT_MS")
	overrideString(&cfg.Output.Dir, "DICTATION_OUTPUT_DIR")
	overrideBool(&cfg.Store.Enabled, "DICTATION_STORE_ENABLED")
	overrideString(&cfg.Store.Path, "DICTATION_STORE_PATH")
	overrideBool(&cfg.Publish.Enabled, "DICTATION_PUBLISH_ENABLED")
	overrideString(&cfg.Publish.URL, "DICTATION_PUBLISH_URL")
	overrideString(&cfg.Publish.SubjectPrefix, "DICTATION_PUBLISH_SUBJECT_PREFIX")
	overrideString(&cfg.Log.Level, "DICTATION_LOG_LEVEL")
	overrideString(&cfg.Log.Dir, "DICTATION_LOG_DIR")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideBool(target *bool, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Config) error {
	if cfg.Locale == "" {
		return errors.New("locale must not be empty")
	}
	if cfg.Models.Dir == "" {
		return errors.New("models.dir must not be empty")
	}
	if cfg.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be positive")
	}
	if cfg.Audio.Channels < 1 || cfg.Audio.Channels > 2 {
		return errors.New("audio.channels must be 1 or 2")
	}
	if cfg.Audio.BufferSize < 256 {
		return errors.New("audio.buffer_size must be at least 256")
	}
	if cfg.Session.InactiveTimeoutMS < 0 {
		return errors.New("session.inactive_timeout_ms must not be negative")
	}
	if cfg.Store.Enabled && cfg.Store.Path == "" {
		return errors.New("store.path must not be empty when store is enabled")
	}
	if cfg.Publish.Enabled {
		if cfg.Publish.URL == "" {
			return errors.New("publish.url must not be empty when publish is enabled")
		}
		if cfg.Publish.SubjectPrefix == "" {
			return errors.New("publish.subject_prefix must not be empty when publish is enabled")
		}
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return errors.New("log.level must be one of debug|info|warn|error")
	}
	return nil
}
