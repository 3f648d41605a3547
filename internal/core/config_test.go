package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/daystack/pkg/models"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cm := NewConfigManager(t.TempDir())

	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CompletedCap != DefaultCompletedCap {
		t.Errorf("expected cap %d, got %d", DefaultCompletedCap, cfg.CompletedCap)
	}
	if !cfg.LogEvents {
		t.Error("event log should default on")
	}
	if cfg.AccentColor != "62" {
		t.Errorf("expected default accent 62, got %q", cfg.AccentColor)
	}
}

func TestLoadConfigReadsValues(t *testing.T) {
	dir := t.TempDir()
	content := `retention:
  completed_cap: 50
log:
  events: false
ui:
  accent_color: "212"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CompletedCap != 50 {
		t.Errorf("expected cap 50, got %d", cfg.CompletedCap)
	}
	if cfg.LogEvents {
		t.Error("log.events false should be honored")
	}
	if cfg.AccentColor != "212" {
		t.Errorf("expected accent 212, got %q", cfg.AccentColor)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  accent_color: \"99\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CompletedCap != DefaultCompletedCap {
		t.Errorf("unset keys should keep defaults, got cap %d", cfg.CompletedCap)
	}
	if cfg.AccentColor != "99" {
		t.Errorf("expected accent 99, got %q", cfg.AccentColor)
	}
}

func TestValidateConfig(t *testing.T) {
	cm := NewConfigManager(t.TempDir())

	cases := []struct {
		name    string
		cfg     *models.Config
		wantErr bool
	}{
		{"valid", &models.Config{CompletedCap: 200, AccentColor: "62"}, false},
		{"nil", nil, true},
		{"zero cap", &models.Config{CompletedCap: 0, AccentColor: "62"}, true},
		{"negative cap", &models.Config{CompletedCap: -1, AccentColor: "62"}, true},
		{"empty accent", &models.Config{CompletedCap: 200}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cm.ValidateConfig(tc.cfg)
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
