package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/sharks/shamir"
)

func newRecoverCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover a secret from shares",
		Long: `Recover reads shares from --in or stdin and writes the secret to stdout.

Without a threshold (from --threshold or the share documents) any two or more
shares are interpolated; too few shares then yield a wrong secret.`,
		Example: `  sharks recover -i shares.txt > secret.bin
  cat alice.yaml bob.yaml | sharks recover -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd, commonKeys)
			if err != nil {
				return err
			}

			set, err := loadShares(cmd, cfg)
			if err != nil {
				return err
			}

			threshold := effectiveThreshold(cfg, set)

			var secret []byte
			if threshold > 0 {
				scheme, err := shamir.NewScheme(threshold)
				if err != nil {
					return fmt.Errorf("recover: %w", err)
				}
				secret, err = scheme.Recover(set.Shares)
				if err != nil {
					return fmt.Errorf("recover: %w", err)
				}
			} else {
				a.logger.Warn("threshold unknown, recovered secret is only correct with enough shares")
				secret, err = shamir.Recover(set.Shares)
				if err != nil {
					return fmt.Errorf("recover: %w", err)
				}
			}

			unlock, err := lockMemory(secret)
			if err != nil {
				a.logger.Debug("secret memory not locked", "error", err)
			}
			defer unlock()

			a.logger.Info("secret recovered", "shares", len(set.Shares), "threshold", threshold, "bytes", len(secret))

			_, err = cmd.OutOrStdout().Write(secret)
			return err
		},
	}

	addCommonFlags(cmd, "shares required to recover the secret (0 = take from documents or skip the check)")

	return cmd
}

func loadShares(cmd *cobra.Command, cfg *Config) (*shareSet, error) {
	r, err := openInput(cmd.InOrStdin(), cfg.In)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readShares(r, cfg.Format)
}

// effectiveThreshold prefers an explicit threshold over the one in share documents.
func effectiveThreshold(cfg *Config, set *shareSet) int {
	if cfg.Threshold > 0 {
		return cfg.Threshold
	}
	return set.Threshold
}
