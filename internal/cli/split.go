package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vitalvas/sharks/shamir"
)

func newSplitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Long: `Split reads a secret from --in, from piped stdin, or from a terminal
prompt, and writes one share per line (base64, hex) or one document per
share (yaml, json) to stdout.`,
		Example: `  sharks split -k 3 -n 5 -i secret.bin
  sharks split -k 2 -n 3 -f yaml < secret.bin > shares.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd, map[string]string{
				"threshold": "threshold",
				"shares":    "shares",
				"format":    "format",
				"in":        "in",
			})
			if err != nil {
				return err
			}

			secret, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg.In)
			if err != nil {
				return err
			}

			unlock, err := lockMemory(secret)
			if err != nil {
				a.logger.Debug("secret memory not locked", "error", err)
			}
			defer unlock()

			shares, err := shamir.Split(secret, cfg.Threshold, cfg.Shares)
			if err != nil {
				return fmt.Errorf("split: %w", err)
			}

			set := shareSet{Set: uuid.New(), Threshold: cfg.Threshold, Shares: shares}

			a.logger.Info("secret split",
				"set", set.Set.String(),
				"threshold", cfg.Threshold,
				"shares", cfg.Shares,
				"bytes", len(secret),
			)

			return writeShares(cmd.OutOrStdout(), cfg.Format, set)
		},
	}

	cmd.Flags().IntP("threshold", "k", 2, "shares required to recover the secret (1-255)")
	cmd.Flags().IntP("shares", "n", 3, "shares to generate (threshold-255)")
	cmd.Flags().StringP("format", "f", FormatBase64, "share encoding (base64, hex, yaml, json)")
	cmd.Flags().StringP("in", "i", "", "secret file (default stdin)")

	return cmd
}
