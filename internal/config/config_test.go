package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"kanban-cli/internal/kv"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANBAN_CONFIG_DIR", dir)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != kv.BackendSQLite || cfg.Key != "kanbanItems" || cfg.DataDir != dir {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogFile != filepath.Join(dir, "kanban.log") {
		t.Fatalf("unexpected log file: %s", cfg.LogFile)
	}
	if cfg.ConfigFileUsed != "" {
		t.Fatalf("expected no config file, got %s", cfg.ConfigFileUsed)
	}
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANBAN_CONFIG_DIR", dir)
	yaml := "backend: file\nkey: board\nredis:\n  addr: redis.local:6379\n  db: 2\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != kv.BackendFile || cfg.Key != "board" || cfg.Redis.DB != 2 || cfg.LogLevel != "debug" {
		t.Fatalf("config file not applied: %+v", cfg)
	}

	t.Setenv("KANBAN_KEY", "from-env")
	cfg, err = Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Key != "from-env" {
		t.Fatalf("expected env to override file, got %q", cfg.Key)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("key", "", "")
	fs.String("backend", "", "")
	if err := fs.Parse([]string{"--key", "from-flag"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err = Load("", fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Key != "from-flag" {
		t.Fatalf("expected flag to override env, got %q", cfg.Key)
	}
	if cfg.Backend != kv.BackendFile {
		t.Fatalf("unset flag must not override file value, got %q", cfg.Backend)
	}
}

func TestLoad_ExplicitMissingConfigFileFails(t *testing.T) {
	t.Setenv("KANBAN_CONFIG_DIR", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("KANBAN_CONFIG_DIR", t.TempDir())
	t.Setenv("KANBAN_BACKEND", "etcd")
	if _, err := Load("", nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_RejectsUnknownIDsAndLogLevel(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "id generator", env: map[string]string{"KANBAN_IDS": "snowflake"}, want: "ids"},
		{name: "log level", env: map[string]string{"KANBAN_LOG_LEVEL": "chatty"}, want: "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KANBAN_CONFIG_DIR", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %s error, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_AcceptsKnownIDsAndLogLevel(t *testing.T) {
	t.Setenv("KANBAN_CONFIG_DIR", t.TempDir())
	t.Setenv("KANBAN_IDS", "seq")
	t.Setenv("KANBAN_LOG_LEVEL", "debug")
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IDs != "seq" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestConfig_KVOptions(t *testing.T) {
	t.Parallel()

	cfg := &Config{DataDir: "/tmp/x", Backend: kv.BackendRedis, Redis: RedisConfig{Addr: "a:1", DB: 3, Prefix: "p:"}}
	got := cfg.KVOptions()
	if got.Backend != kv.BackendRedis || got.Dir != "/tmp/x" || got.RedisAddr != "a:1" || got.RedisDB != 3 || got.RedisPrefix != "p:" {
		t.Fatalf("unexpected options: %+v", got)
	}
}

func TestSetupLogging_WritesJSONToLogFile(t *testing.T) {
	prevOut, prevLevel, prevFmt := log.StandardLogger().Out, log.GetLevel(), log.StandardLogger().Formatter
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
		log.SetFormatter(prevFmt)
	})

	dir := t.TempDir()
	cfg := &Config{LogLevel: "warn", LogFile: filepath.Join(dir, "logs", "kanban.log")}
	closer, err := SetupLogging(cfg)
	if err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	log.Info("dropped")
	log.WithField("key", "kanbanItems").Warn("kept")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if strings.Contains(out, "dropped") {
		t.Fatalf("info entry written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"key":"kanbanItems"`) {
		t.Fatalf("expected JSON warn entry, got: %s", out)
	}
}

func TestSetupLogging_RejectsBadLevel(t *testing.T) {
	cfg := &Config{LogLevel: "loud", LogFile: filepath.Join(t.TempDir(), "kanban.log")}
	if _, err := SetupLogging(cfg); err == nil {
		t.Fatalf("expected error for bad level")
	}
}
