// Package config loads cmdtarget's CLI settings from cmdtarget.config.yaml
// and CMDTARGET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/EmundoT/cmdtarget/internal/core"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "CMDTARGET"

// Settings are the CLI settings. Command-line flags override them.
type Settings struct {
	RootDir       string        // Directory holding cmdtarget.yml
	Locale        language.Tag  // Locale for unit value digits
	Output        string        // "normal", "quiet" or "json"
	Verbose       bool          // Log dispatch calls
	Yes           bool          // Auto-approve prompts
	WatchDebounce time.Duration // Settle time before a table reload
}

// OutputMode returns the parsed Output setting
func (s Settings) OutputMode() core.OutputMode {
	return core.ParseOutputMode(s.Output)
}

// setDefaults sets all default values on v
func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("locale", "")
	v.SetDefault("output", "normal")
	v.SetDefault("verbose", false)
	v.SetDefault("yes", false)
	v.SetDefault("watch-debounce", core.WatchDebounce.String())
}

// Load reads settings from dir/cmdtarget.config.yaml (optional) and the
// environment. Environment variables win over the file.
func Load(dir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(core.SettingsName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read %s.yaml: %w", core.SettingsName, err)
		}
		// No settings file; defaults and environment only
	}

	return build(v)
}

// build constructs Settings from viper values
func build(v *viper.Viper) (Settings, error) {
	s := Settings{
		RootDir: v.GetString("root"),
		Output:  strings.ToLower(v.GetString("output")),
		Verbose: v.GetBool("verbose"),
		Yes:     v.GetBool("yes"),
	}

	switch s.Output {
	case "normal", "quiet", "json":
	default:
		return Settings{}, fmt.Errorf("invalid output '%s' (want normal, quiet or json)", s.Output)
	}

	s.Locale = language.Und
	if tag := v.GetString("locale"); tag != "" {
		parsed, err := language.Parse(tag)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid locale '%s': %w", tag, err)
		}
		s.Locale = parsed
	}

	debounce, err := time.ParseDuration(v.GetString("watch-debounce"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid watch-debounce: %w", err)
	}
	if debounce <= 0 {
		return Settings{}, fmt.Errorf("invalid watch-debounce: must be positive")
	}
	s.WatchDebounce = debounce

	return s, nil
}
