// Package cli implements the sharks command line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vitalvas/sharks/xlogger"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	v          *viper.Viper
	configFile string
	logger     *slog.Logger
}

// NewRootCommand builds the sharks command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper(), logger: xlogger.Discard()}

	rootCmd := &cobra.Command{
		Use:   "sharks",
		Short: "Shamir's Secret Sharing over GF(256)",
		Long: `sharks splits a secret into shares such that any threshold of them
recover it, while fewer reveal nothing.

Configuration is read from flags, SHARKS_* environment variables and an
optional config file, in that order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-type", "text", "log format (text, json)")

	rootCmd.AddCommand(
		newSplitCommand(a),
		newRecoverCommand(a),
		newVerifyCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(a.v, cmd.Flags(), map[string]string{
		"log-level": "log.level",
		"log-type":  "log.type",
	}); err != nil {
		return err
	}

	if err := readConfigFile(a.v, a.configFile); err != nil {
		return err
	}

	a.logger = xlogger.New(xlogger.Config{
		Level:   a.v.GetString("log.level"),
		LogType: a.v.GetString("log.type"),
		Output:  cmd.ErrOrStderr(),
	})

	return nil
}

// load binds the command's own flags and returns the merged configuration.
func (a *app) load(cmd *cobra.Command, keys map[string]string) (*Config, error) {
	if err := bindFlags(a.v, cmd.Flags(), keys); err != nil {
		return nil, err
	}
	return loadConfig(a.v)
}

var commonKeys = map[string]string{
	"threshold": "threshold",
	"format":    "format",
	"in":        "in",
}

func addCommonFlags(cmd *cobra.Command, thresholdUsage string) {
	cmd.Flags().IntP("threshold", "k", 0, thresholdUsage)
	cmd.Flags().StringP("format", "f", FormatBase64, "share encoding (base64, hex, yaml, json)")
	cmd.Flags().StringP("in", "i", "", "input file (default stdin)")
}
