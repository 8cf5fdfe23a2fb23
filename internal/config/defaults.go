package config

const (
	defaultConfigPath         = "~/.config/imgresolve/config.toml"
	defaultConvertQuality     = 95
	defaultCloseTimeThreshold = 100000
	defaultMaxGroupSize       = 100
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			InspectCommand: []string{"jpeginfo", "-c"},
			TrashCommand:   []string{"gio", "trash"},
			ConvertCommand: []string{"convert"},
			ConvertQuality: defaultConvertQuality,
			ViewerCommand:  []string{"eog"},
		},
		Curation: Curation{
			CollapseCloseTimes: true,
			CloseTimeThreshold: defaultCloseTimeThreshold,
			MaxGroupSize:       defaultMaxGroupSize,
		},
		AutoResolve: AutoResolve{
			Enabled: true,
			Rules: []PriorityRule{
				{Name: "iphoto-library", Marker: "Pictures/iPhoto/"},
				{Name: "xt1254-bluetooth", Marker: "XT1254/bluetooth/"},
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
