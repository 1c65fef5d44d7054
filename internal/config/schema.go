package config

// Log configures logging output.
type Log struct {
	Level string `mapstructure:"level" json:"level,omitempty" jsonschema:"enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	File  string `mapstructure:"file" json:"file,omitempty"`
}

// ConfigSchema is the effective configuration after defaults, config files,
// environment variables and runtime overrides are merged.
type ConfigSchema struct {
	// Storage selects the backend: "filesystem", "sqlite" or "memory".
	Storage string `mapstructure:"storage" json:"storage" validate:"oneof=filesystem sqlite memory"`
	// PromptsDir is the root directory for filesystem storage and the base
	// for relative //include paths.
	PromptsDir string `mapstructure:"promptsDir" json:"promptsDir" validate:"required"`
	// DBPath is the SQLite database file used by the sqlite backend.
	DBPath string `mapstructure:"dbPath" json:"dbPath" validate:"required"`
	// ParameterPattern is the regular expression matching keyword tokens in
	// template text, delimiters included.
	ParameterPattern string `mapstructure:"parameterPattern" json:"parameterPattern" validate:"required"`
	Log              Log    `mapstructure:"log" json:"log"`
}
