package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools contains the argv prefixes of the external collaborators.
type Tools struct {
	InspectCommand []string `toml:"inspect_command"`
	TrashCommand   []string `toml:"trash_command"`
	ConvertCommand []string `toml:"convert_command"`
	ConvertQuality int      `toml:"convert_quality"`
	ViewerCommand  []string `toml:"viewer_command"`
}

// Curation contains the group filtering knobs.
type Curation struct {
	SkipSequential     bool  `toml:"skip_sequential"`
	CollapseCloseTimes bool  `toml:"collapse_close_times"`
	CloseTimeThreshold int64 `toml:"close_time_threshold"`
	MaxGroupSize       int   `toml:"max_group_size"`
}

// PriorityRule marks paths containing Marker as a lower-priority copy.
type PriorityRule struct {
	Name   string `toml:"name"`
	Marker string `toml:"path_contains"`
}

// AutoResolve contains configuration for the two-file auto-resolution heuristic.
type AutoResolve struct {
	Enabled bool           `toml:"enabled"`
	Rules   []PriorityRule `toml:"rules"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for imgresolve.
//
// Configuration sections by subsystem:
//   - Tools: inspector, trash, converter and viewer commands
//   - Curation: sequential and close-time collapsing, group size cap
//   - AutoResolve: low-priority source rules for two-file groups
//   - Logging: log format, level and optional file
type Config struct {
	Tools       Tools       `toml:"tools"`
	Curation    Curation    `toml:"curation"`
	AutoResolve AutoResolve `toml:"auto_resolve"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// Rules from the file replace the defaults rather than extending them.
		defaultRules := cfg.AutoResolve.Rules
		cfg.AutoResolve.Rules = nil

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
		if cfg.AutoResolve.Rules == nil {
			cfg.AutoResolve.Rules = defaultRules
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("imgresolve.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// InspectorBinary returns the executable name of the inspector, or "" when disabled.
func (c *Config) InspectorBinary() string {
	return firstArg(c.Tools.InspectCommand)
}

// TrashBinary returns the executable name of the trash mover.
func (c *Config) TrashBinary() string {
	return firstArg(c.Tools.TrashCommand)
}

// ConvertBinary returns the executable name of the format converter.
func (c *Config) ConvertBinary() string {
	return firstArg(c.Tools.ConvertCommand)
}

// ViewerBinary returns the executable name of the image viewer.
func (c *Config) ViewerBinary() string {
	return firstArg(c.Tools.ViewerCommand)
}

func firstArg(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	return argv[0]
}
