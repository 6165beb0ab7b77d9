package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds application-level settings, as opposed to the domain data in
// spendtrack.yaml.
type Settings struct {
	Database DatabaseSettings
	Export   ExportSettings
}

// DatabaseSettings holds sqlite settings.
type DatabaseSettings struct {
	Path string
}

// ExportSettings controls where export files are written.
type ExportSettings struct {
	Dir string
}

// LoadSettings reads settings from file and env. Env overrides use the
// SPENDTRACK_ prefix, e.g. SPENDTRACK_DATABASE_PATH.
func LoadSettings() (Settings, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "spendtrack", "spendtrack.db"))
	v.SetDefault("export.dir", ".")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPENDTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spendtrack"))
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("SPENDTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// settings file is optional
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}
