package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vitalvas/sharks/xlogger"
)

const envPrefix = "SHARKS"

// Output and input encodings for shares.
const (
	FormatBase64 = "base64"
	FormatHex    = "hex"
	FormatYAML   = "yaml"
	FormatJSON   = "json"
)

var formats = []string{FormatBase64, FormatHex, FormatYAML, FormatJSON}

// Config is the merged flag, environment and file configuration of a command.
type Config struct {
	Threshold int       `mapstructure:"threshold"`
	Shares    int       `mapstructure:"shares"`
	Format    string    `mapstructure:"format"`
	In        string    `mapstructure:"in"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig configures the logger built by the root command.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Type  string `mapstructure:"type"`
}

// newViper returns a viper instance reading SHARKS_* variables.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// threshold and shares take their defaults from each command's flags.
	v.SetDefault("format", FormatBase64)
	v.SetDefault("in", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.type", "text")

	return v
}

// readConfigFile merges the YAML/JSON/TOML file at path, if any.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// bindFlags binds every flag of fs whose name maps to a config key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if !slices.Contains(formats, cfg.Format) {
		return nil, fmt.Errorf("unsupported format %q (want one of %s)", cfg.Format, strings.Join(formats, ", "))
	}

	if !xlogger.ValidLevel(cfg.Log.Level) {
		return nil, fmt.Errorf("unsupported log level %q", cfg.Log.Level)
	}

	return cfg, nil
}
