package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	c.normalizeAutoResolve()
	return c.normalizeLogging()
}

func (c *Config) normalizeTools() {
	c.Tools.InspectCommand = trimArgv(c.Tools.InspectCommand)
	c.Tools.TrashCommand = trimArgv(c.Tools.TrashCommand)
	c.Tools.ConvertCommand = trimArgv(c.Tools.ConvertCommand)
	c.Tools.ViewerCommand = trimArgv(c.Tools.ViewerCommand)
	if c.Tools.ConvertQuality == 0 {
		c.Tools.ConvertQuality = defaultConvertQuality
	}
}

func (c *Config) normalizeAutoResolve() {
	rules := c.AutoResolve.Rules[:0]
	for i, rule := range c.AutoResolve.Rules {
		rule.Marker = strings.TrimSpace(rule.Marker)
		if rule.Marker == "" {
			continue
		}
		rule.Name = strings.TrimSpace(rule.Name)
		if rule.Name == "" {
			rule.Name = fmt.Sprintf("rule-%d", i+1)
		}
		rules = append(rules, rule)
	}
	c.AutoResolve.Rules = rules
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

// trimArgv drops blank elements; an argv whose program is blank collapses to nil.
func trimArgv(argv []string) []string {
	out := make([]string, 0, len(argv))
	for _, arg := range argv {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
