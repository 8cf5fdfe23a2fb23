package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateCuration(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if len(c.Tools.TrashCommand) == 0 {
		return errors.New("tools.trash_command must be set")
	}
	if len(c.Tools.ConvertCommand) == 0 {
		return errors.New("tools.convert_command must be set")
	}
	if len(c.Tools.ViewerCommand) == 0 {
		return errors.New("tools.viewer_command must be set")
	}
	if c.Tools.ConvertQuality < 1 || c.Tools.ConvertQuality > 100 {
		return fmt.Errorf("tools.convert_quality must be between 1 and 100, got %d", c.Tools.ConvertQuality)
	}
	return nil
}

func (c *Config) validateCuration() error {
	if c.Curation.CloseTimeThreshold <= 0 {
		return errors.New("curation.close_time_threshold must be positive")
	}
	if c.Curation.MaxGroupSize < 0 {
		return errors.New("curation.max_group_size must be zero (unlimited) or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
