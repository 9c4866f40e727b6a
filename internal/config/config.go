package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/liftlog/internal/utils"
	log "github.com/sirupsen/logrus"
)

const (
	BackendFile   = "file"
	BackendLibSQL = "libsql"
	BackendMemory = "memory"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Display DisplayConfig `toml:"display"`
}

type StorageConfig struct {
	Backend     string `toml:"backend"`      // file | libsql | memory
	DataDir     string `toml:"data_dir"`     // Used by the file backend.
	DatabaseURL string `toml:"database_url"` // The entire libsql connection string.
}

type LogConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	ToStdout bool   `toml:"to_stdout"`
	JSON     bool   `toml:"json"`
}

type DisplayConfig struct {
	Timezone         string `toml:"timezone"`
	Units            string `toml:"units"`
	DefaultTimeFrame string `toml:"default_timeframe"`
	ChartWidth       int    `toml:"chart_width"`
}

func Default() *Config {
	dataDir, err := utils.DefaultDataDir()
	if err != nil {
		dataDir = ".liftlog"
	}
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: dataDir,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Display: DisplayConfig{
			Timezone:         "Local",
			Units:            "kg",
			DefaultTimeFrame: "lastWorkout",
			ChartWidth:       40,
		},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the configuration from path (or the default location when empty).
// A missing file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
		log.Debugf("config file %s not found, using defaults", path)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Storage.DataDir = getEnv("LIFTLOG_DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.Backend = getEnv("LIFTLOG_BACKEND", cfg.Storage.Backend)
	cfg.Storage.DatabaseURL = getEnv("TURSO_DATABASE_URL", cfg.Storage.DatabaseURL)
	cfg.Log.Level = getEnv("LIFTLOG_LOG_LEVEL", cfg.Log.Level)
	cfg.Display.Timezone = getEnv("LIFTLOG_TIMEZONE", cfg.Display.Timezone)

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Storage.Backend = BackendFile
		cfg.Storage.DataDir = "./.liftlog-dev"
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case BackendFile:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("storage.data_dir is required for the %s backend", BackendFile)
		}
	case BackendLibSQL:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("storage.database_url (or TURSO_DATABASE_URL) is required for the %s backend", BackendLibSQL)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}
	if c.Display.ChartWidth <= 0 {
		c.Display.ChartWidth = 40
	}
	return nil
}

// Write encodes the config as TOML to path, refusing to overwrite an existing file.
func Write(cfg *Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
