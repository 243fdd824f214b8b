package settings

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDefaults(t *testing.T) {
	v, err := New(map[string]any{"precision": 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := v.GetInt("precision"); got != 2 {
		t.Errorf("precision = %d, want 2", got)
	}
	if got := v.GetString(KeyLogLevel); got != "info" {
		t.Errorf("log-level = %q, want info", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DRILLS_LOG_LEVEL", "warn")
	t.Setenv("DRILLS_PRECISION", "4")
	v, err := New(map[string]any{"precision": 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := v.GetString(KeyLogLevel); got != "warn" {
		t.Errorf("log-level = %q, want warn", got)
	}
	if got := v.GetInt("precision"); got != 4 {
		t.Errorf("precision = %d, want 4", got)
	}
}

func TestConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "drills.yaml")
	if err := os.WriteFile(fn, []byte("format: yaml\ndir: /var/tmp/orders\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DRILLS_CONFIG", fn)
	v, err := New(map[string]any{"format": "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := v.GetString("format"); got != "yaml" {
		t.Errorf("format = %q, want yaml", got)
	}
	if got := v.GetString("dir"); got != "/var/tmp/orders" {
		t.Errorf("dir = %q", got)
	}
}

func TestLogger(t *testing.T) {
	l, err := Logger("debug")
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug logger should enable debug")
	}
	l, err = Logger("error")
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	if l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("error logger should not enable warn")
	}
	if _, err := Logger("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
