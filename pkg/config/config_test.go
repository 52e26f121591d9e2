package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  address: "127.0.0.1"
  port: 9100
  db_path: /tmp/chatkv-db
logging:
  level: debug
security:
  rate_limit:
    rps: 25
    burst: 50
`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Addr() != "127.0.0.1:9100" {
		t.Fatalf("Addr: got %q", c.Addr())
	}
	if c.Server.DBPath != "/tmp/chatkv-db" {
		t.Fatalf("DBPath: got %q", c.Server.DBPath)
	}
	if c.Logging.Level != "debug" {
		t.Fatalf("Level: got %q", c.Logging.Level)
	}
	if c.Security.RateLimit.RPS != 25 || c.Security.RateLimit.Burst != 50 {
		t.Fatalf("rate limit: %+v", c.Security.RateLimit)
	}
}

func TestAddrDefaults(t *testing.T) {
	var c Config
	if c.Addr() != ":8000" {
		t.Fatalf("empty config Addr: got %q", c.Addr())
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CHATKV_ADDR", "0.0.0.0:9200")
	t.Setenv("CHATKV_DB_PATH", "/data/chatkv")
	t.Setenv("CHATKV_LOG_LEVEL", "warn")
	t.Setenv("CHATKV_RATE_RPS", "10")
	t.Setenv("CHATKV_RATE_BURST", "20")

	cfg := &Config{}
	if !applyEnv(cfg) {
		t.Fatalf("applyEnv reported no env in use")
	}
	if cfg.Addr() != "0.0.0.0:9200" {
		t.Fatalf("Addr: got %q", cfg.Addr())
	}
	if cfg.Server.DBPath != "/data/chatkv" {
		t.Fatalf("DBPath: got %q", cfg.Server.DBPath)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Level: got %q", cfg.Logging.Level)
	}
	if cfg.Security.RateLimit.RPS != 10 || cfg.Security.RateLimit.Burst != 20 {
		t.Fatalf("rate limit: %+v", cfg.Security.RateLimit)
	}
}
