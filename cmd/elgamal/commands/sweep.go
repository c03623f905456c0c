package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"elgamal/internal/app"
	"elgamal/internal/metrics"
	"elgamal/internal/sweep"
)

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the exercise for every bit length in --from..--to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.MetricsAddr != "" {
				mctx, cancel := context.WithCancel(ctx)
				defer cancel()
				go func() {
					if err := metrics.Serve(mctx, cfg.MetricsAddr, appCtx.Log); err != nil {
						appCtx.Log.Error().Err(err).Msg("metrics server")
					}
				}()
			}

			out := cmd.OutOrStdout()
			plan := sweep.Plan{From: cfg.From, To: cfg.To, Step: cfg.Step}
			sum, err := appCtx.Sweep.Run(ctx, plan, []byte(cfg.Message), func(res sweep.Result) {
				if res.Err != nil {
					fmt.Fprintf(out, "%5d bits  FAILED  %v\n", res.Bits, res.Err)
					return
				}
				r := res.Report
				fmt.Fprintf(out, "%5d bits  digest=%t sig=%t corrupted-rejected=%t  %s  %s\n",
					r.Bits, r.DigestMatches, r.SignatureValid, !r.CorruptedSignatureValid,
					r.Elapsed.Round(time.Millisecond), r.ID)
			})
			fmt.Fprintf(out, "planned %d, completed %d, failed %d, skipped %d\n",
				sum.Planned, sum.Completed, sum.Failed, sum.Skipped)
			return err
		},
	}
	f := cmd.Flags()
	f.Int(app.KeyFrom, 320, "first bit length")
	f.Int(app.KeyTo, 512, "last bit length (inclusive)")
	f.Int(app.KeyStep, 64, "bit length increment")
	f.Int(app.KeyWorkers, 2, "concurrent runs")
	f.Bool(app.KeyStopOnError, false, "stop at the first failed run")
	f.String(app.KeyMessage, "Hello, world!", "message to encrypt and sign")
	f.String(app.KeyMetricsAddr, "", "serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}
