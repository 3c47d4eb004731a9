package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverFileSystem = "filesystem"
	DriverS3         = "s3"
	DriverMemory     = "memory"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `json:"server"`
	Storage   StorageConfig   `json:"storage"`
	Documents DocumentsConfig `json:"documents"`
	Cleanup   CleanupConfig   `json:"cleanup"`
	Logging   LoggingConfig   `json:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string   `json:"host"`
	Port         int      `json:"port"`
	ReadTimeout  Duration `json:"read_timeout"`
	WriteTimeout Duration `json:"write_timeout"`
	IdleTimeout  Duration `json:"idle_timeout"`
}

// StorageConfig selects where generated artifacts are written.
type StorageConfig struct {
	Driver            string   `json:"driver"`
	BasePath          string   `json:"base_path"`
	Bucket            string   `json:"bucket"`
	Region            string   `json:"region"`
	Endpoint          string   `json:"endpoint"`
	AccessKey         string   `json:"access_key"`
	SecretKey         string   `json:"secret_key"`
	UsePathStyle      bool     `json:"use_path_style"`
	KeyPrefix         string   `json:"key_prefix"`
	PresignExpiration Duration `json:"presign_expiration"`
}

// DocumentsConfig tunes the layout pass.
type DocumentsConfig struct {
	ObservationLines int    `json:"observation_lines"`
	Author           string `json:"author"`
}

// CleanupConfig schedules removal of abandoned temporary files.
type CleanupConfig struct {
	Enabled  bool     `json:"enabled"`
	Schedule string   `json:"schedule"`
	MaxAge   Duration `json:"max_age"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// Duration reads either a Go duration string ("15m") or nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration %s", data)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  Duration(15 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
			IdleTimeout:  Duration(60 * time.Second),
		},
		Storage: StorageConfig{
			Driver:            DriverFileSystem,
			BasePath:          "artifacts",
			Region:            "us-east-1",
			KeyPrefix:         "documents",
			PresignExpiration: Duration(15 * time.Minute),
		},
		Documents: DocumentsConfig{
			ObservationLines: 10,
			Author:           "Data Center Operations",
		},
		Cleanup: CleanupConfig{
			Enabled:  true,
			Schedule: "0 * * * *",
			MaxAge:   Duration(time.Hour),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from file and environment variables. A
// .env file in the working directory is read first when present.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	overrideWithEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks settings that would otherwise fail at first use.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFileSystem:
		if c.Storage.BasePath == "" {
			return errors.New("storage.base_path is required for the filesystem driver")
		}
	case DriverS3:
		if c.Storage.Bucket == "" {
			return errors.New("storage.bucket is required for the s3 driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Documents.ObservationLines < 0 {
		return errors.New("documents.observation_lines must not be negative")
	}
	return nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		config.Storage.Driver = driver
	}
	if path := os.Getenv("STORAGE_BASE_PATH"); path != "" {
		config.Storage.BasePath = path
	}
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		config.Storage.Bucket = bucket
	}
	if region := os.Getenv("STORAGE_REGION"); region != "" {
		config.Storage.Region = region
	}
	if endpoint := os.Getenv("STORAGE_ENDPOINT"); endpoint != "" {
		config.Storage.Endpoint = endpoint
	}
	if key := os.Getenv("STORAGE_ACCESS_KEY"); key != "" {
		config.Storage.AccessKey = key
	}
	if secret := os.Getenv("STORAGE_SECRET_KEY"); secret != "" {
		config.Storage.SecretKey = secret
	}
	if pathStyle := os.Getenv("STORAGE_USE_PATH_STYLE"); pathStyle != "" {
		if v, err := strconv.ParseBool(pathStyle); err == nil {
			config.Storage.UsePathStyle = v
		}
	}
	if schedule := os.Getenv("CLEANUP_SCHEDULE"); schedule != "" {
		config.Cleanup.Schedule = schedule
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
