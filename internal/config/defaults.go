package config

const (
	defaultConfigPath     = "~/.config/charkit/config.toml"
	projectConfigName     = "charkit.toml"
	defaultOutputDir      = "."
	defaultCatalogPath    = "keyboard_metadata.csv"
	defaultSentinel       = "END"
	defaultInputExtension = ".txt"
	defaultLanguage       = "output"
	defaultTopN           = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	envCatalogPath        = "CHARKIT_CATALOG"
	envOutputDir          = "CHARKIT_OUTPUT_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			CatalogPath: defaultCatalogPath,
		},
		Extract: Extract{
			Sentinel:        defaultSentinel,
			InputExtension:  defaultInputExtension,
			DefaultLanguage: defaultLanguage,
		},
		Match: Match{
			TopN: defaultTopN,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
