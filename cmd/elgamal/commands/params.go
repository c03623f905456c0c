package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"elgamal/internal/crypto"
	"elgamal/internal/group"
	"elgamal/internal/primes"
)

func paramsCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Generate domain parameters (p, g) for one bit length",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			params, err := appCtx.Params.Build(cmd.Context(), bits)
			if err != nil {
				return err
			}
			if err := group.Validate(params, appCtx.Config.Rounds); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bits:        %d\n", params.BitLen())
			fmt.Fprintf(out, "p:           %s\n", crypto.Hex(params.P))
			fmt.Fprintf(out, "g:           %s\n", params.G)
			if params.Q != nil {
				fmt.Fprintf(out, "q:           %s\n", crypto.Hex(params.Q))
			}
			fmt.Fprintf(out, "safe prime:  %t\n", primes.IsSafe(params.P, appCtx.Config.Rounds))
			fmt.Fprintf(out, "fingerprint: %s\n", crypto.Fingerprint(params.P, params.G))
			fmt.Fprintf(out, "elapsed:     %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 512, "bit length of p")
	return cmd
}
