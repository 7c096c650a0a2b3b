package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/sharks/shamir"
)

func newVerifyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that shares belong to one split",
		Long: `Verify interpolates the first threshold shares and checks that every
other share lies on the same polynomials. At least threshold+1 shares are
needed to detect a bad share.`,
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
			if threshold == 0 {
				return errors.New("verify: threshold is required")
			}

			if len(set.Shares) <= threshold {
				a.logger.Warn("not enough shares to detect tampering", "shares", len(set.Shares), "threshold", threshold)
			}

			if err := shamir.Verify(set.Shares, threshold); err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			a.logger.Info("shares verified", "shares", len(set.Shares), "threshold", threshold)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "OK: %d shares consistent with threshold %d\n", len(set.Shares), threshold)
			return err
		},
	}

	addCommonFlags(cmd, "shares required to recover the secret (0 = take from documents)")

	return cmd
}
