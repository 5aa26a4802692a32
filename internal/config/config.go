// Package config resolves kanban settings from defaults, an optional
// config.yaml, KANBAN_* environment variables, and command-line flags, in
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kanban-cli/internal/board"
	"kanban-cli/internal/kv"
)

const (
	envPrefix      = "KANBAN"
	configFileName = "config"
)

type Config struct {
	// ConfigDir is where config.yaml lives; DataDir defaults to it.
	ConfigDir string
	DataDir   string

	Backend kv.Backend
	Key     string
	IDs     string

	Redis RedisConfig

	LogLevel string
	LogFile  string

	// ConfigFileUsed is empty when no config.yaml was found.
	ConfigFileUsed string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Dir returns the config directory: $KANBAN_CONFIG_DIR, else ~/.kanban.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("KANBAN_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kanban"), nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("data_dir", dir)
	v.SetDefault("backend", string(kv.BackendSQLite))
	v.SetDefault("key", kv.DefaultKey)
	v.SetDefault("ids", "random")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "kanban:")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load resolves the configuration. configFile, when set, must exist; otherwise
// config.yaml in Dir() is optional. flags may be nil; only flags the user
// actually set override file/env values.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		bind := map[string]string{
			"data-dir":   "data_dir",
			"backend":    "backend",
			"key":        "key",
			"ids":        "ids",
			"redis-addr": "redis.addr",
			"log-level":  "log.level",
		}
		for flag, key := range bind {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	backend, err := kv.ParseBackend(v.GetString("backend"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigDir: dir,
		DataDir:   v.GetString("data_dir"),
		Backend:   backend,
		Key:       strings.TrimSpace(v.GetString("key")),
		IDs:       v.GetString("ids"),
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		LogLevel:       v.GetString("log.level"),
		LogFile:        v.GetString("log.file"),
		ConfigFileUsed: v.ConfigFileUsed(),
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "kanban.log")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Key == "" {
		return errors.New("config: key must not be empty")
	}
	if strings.TrimSpace(c.DataDir) == "" && (c.Backend == kv.BackendSQLite || c.Backend == kv.BackendFile) {
		return fmt.Errorf("config: %s backend needs data_dir", c.Backend)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
	}
	if _, err := board.GeneratorByName(c.IDs); err != nil {
		return fmt.Errorf("config: ids: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// KVOptions maps the config onto the store's options.
func (c *Config) KVOptions() kv.Options {
	return kv.Options{
		Backend:       c.Backend,
		Dir:           c.DataDir,
		RedisAddr:     c.Redis.Addr,
		RedisPassword: c.Redis.Password,
		RedisDB:       c.Redis.DB,
		RedisPrefix:   c.Redis.Prefix,
	}
}
