package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

/*
Config precedence, highest to lowest:

 1. Runtime overrides (CLI flags)
 2. Environment variables (PROMPTSTASH_*, plus .env files)
 3. Local project config (.promptstash/*.yaml)
 4. Global user config ($XDG_CONFIG_HOME/promptstash/*.yaml)
 5. Built-in defaults

Multiple config files in a directory merge alphabetically; scalar values from
later sources override earlier ones. The final schema is validated before it
is handed out.
*/

const appDirName = "promptstash"

// defaultParameterPattern matches bracketed uppercase keywords like [NAME].
// Kept in sync with render.DefaultPattern; config carries it as a string so
// users can override it per installation.
const defaultParameterPattern = `\[[A-Z _|]+\]`

// New loads and validates the configuration, applying any runtime overrides.
func New(overrides *RuntimeOverrides) (*ConfigSchema, error) {
	v := viper.New()

	if err := setDefaults(v); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	loadEnv()
	v.SetEnvPrefix("PROMPTSTASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := loadConfigFiles(v); err != nil {
		return nil, err
	}

	var cfg ConfigSchema
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	applyOverrides(&cfg, overrides)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dataDir := filepath.Join(home, "."+appDirName)

	v.SetDefault("storage", "filesystem")
	v.SetDefault("promptsDir", filepath.Join(dataDir, "prompts"))
	v.SetDefault("dbPath", filepath.Join(dataDir, appDirName+".db"))
	v.SetDefault("parameterPattern", defaultParameterPattern)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.file", "")
	return nil
}

// loadConfigFiles merges every *.yaml file from the global config directory,
// then the local .promptstash directory, alphabetically within each.
func loadConfigFiles(v *viper.Viper) error {
	globalDir, err := globalConfigDir()
	if err != nil {
		return err
	}

	for _, dir := range []string{globalDir, "." + appDirName} {
		files, err := findConfigFiles(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		for _, f := range files {
			fv := viper.New()
			fv.SetConfigFile(f)
			if err := fv.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config file %s: %w", f, err)
			}
			if err := v.MergeConfigMap(fv.AllSettings()); err != nil {
				return fmt.Errorf("error merging config from %s: %w", f, err)
			}
		}
	}
	return nil
}

func globalConfigDir() (string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, appDirName), nil
}

// findConfigFiles returns all *.yaml/*.yml files in dir, sorted.
func findConfigFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func validate(cfg *ConfigSchema) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := regexp.Compile(cfg.ParameterPattern); err != nil {
		return fmt.Errorf("invalid parameterPattern %q: %w", cfg.ParameterPattern, err)
	}
	return nil
}
