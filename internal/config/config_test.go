package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"imgresolve/internal/config"
)

func TestLoadDefaultConfigWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "imgresolve", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if got := cfg.TrashBinary(); got != "gio" {
		t.Fatalf("expected gio trash by default, got %q", got)
	}
	if got := cfg.InspectorBinary(); got != "jpeginfo" {
		t.Fatalf("expected jpeginfo inspector by default, got %q", got)
	}
	if cfg.Tools.ConvertQuality != 95 {
		t.Fatalf("expected convert quality 95, got %d", cfg.Tools.ConvertQuality)
	}
	if cfg.Curation.CloseTimeThreshold != 100000 {
		t.Fatalf("unexpected close time threshold: %d", cfg.Curation.CloseTimeThreshold)
	}
	if cfg.Curation.SkipSequential {
		t.Fatal("expected sequential collapsing disabled by default")
	}
	if !cfg.Curation.CollapseCloseTimes {
		t.Fatal("expected close-time collapsing enabled by default")
	}
	if cfg.Curation.MaxGroupSize != 100 {
		t.Fatalf("unexpected max group size: %d", cfg.Curation.MaxGroupSize)
	}
	if len(cfg.AutoResolve.Rules) != 2 {
		t.Fatalf("expected two default priority rules, got %d", len(cfg.AutoResolve.Rules))
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomConfigOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	custom := config.Default()
	custom.Tools.TrashCommand = []string{" trash-put "}
	custom.Tools.InspectCommand = []string{}
	custom.Curation.SkipSequential = true
	custom.Curation.CloseTimeThreshold = 500
	custom.AutoResolve.Rules = []config.PriorityRule{{Marker: "Phone/Sync/"}}
	custom.Logging.Level = "DEBUG"
	custom.Logging.File = "~/logs/imgresolve.log"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if got := cfg.TrashBinary(); got != "trash-put" {
		t.Fatalf("expected trimmed trash command, got %q", got)
	}
	if cfg.InspectorBinary() != "" {
		t.Fatalf("expected inspector disabled, got %v", cfg.Tools.InspectCommand)
	}
	if !cfg.Curation.SkipSequential || cfg.Curation.CloseTimeThreshold != 500 {
		t.Fatalf("unexpected curation config: %+v", cfg.Curation)
	}
	if len(cfg.AutoResolve.Rules) != 1 {
		t.Fatalf("expected rules from file to replace defaults, got %+v", cfg.AutoResolve.Rules)
	}
	if cfg.AutoResolve.Rules[0].Name != "rule-1" {
		t.Fatalf("expected generated rule name, got %q", cfg.AutoResolve.Rules[0].Name)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized log level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.File != filepath.Join(tempHome, "logs", "imgresolve.log") {
		t.Fatalf("expected expanded log file, got %q", cfg.Logging.File)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"missing trash", func(c *config.Config) { c.Tools.TrashCommand = nil }, "tools.trash_command"},
		{"quality too high", func(c *config.Config) { c.Tools.ConvertQuality = 101 }, "tools.convert_quality"},
		{"zero threshold", func(c *config.Config) { c.Curation.CloseTimeThreshold = 0 }, "close_time_threshold"},
		{"negative group cap", func(c *config.Config) { c.Curation.MaxGroupSize = -1 }, "max_group_size"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if len(cfg.AutoResolve.Rules) != 2 {
		t.Fatalf("expected sample rules, got %+v", cfg.AutoResolve.Rules)
	}
	if cfg.InspectorBinary() != "jpeginfo" {
		t.Fatalf("unexpected inspector %q", cfg.InspectorBinary())
	}
}
