package config

// RuntimeOverrides holds configuration values that can be overridden at
// runtime via CLI flags.
type RuntimeOverrides struct {
	Storage  *string
	LogLevel *string
	LogFile  *string
}

func applyOverrides(cfg *ConfigSchema, overrides *RuntimeOverrides) {
	if overrides == nil {
		return
	}
	if overrides.Storage != nil {
		cfg.Storage = *overrides.Storage
	}
	if overrides.LogLevel != nil {
		cfg.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFile != nil {
		cfg.Log.File = *overrides.LogFile
	}
}
