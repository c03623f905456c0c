package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"elgamal/internal/app"
	"elgamal/internal/crypto"
	"elgamal/internal/primes"
)

var (
	cfgFile string
	appCtx  *app.App
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "elgamal",
		Short:        "ElGamal parameter generation, encryption and signature exercises",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.NewViper(cfgFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			appCtx, err = app.New(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	addConfigFlags(root.PersistentFlags())

	root.AddCommand(paramsCmd(), runCmd(), sweepCmd(), showCmd())
	return root
}

// addConfigFlags registers the flags shared by every command. Names match
// the app.Key* config keys so viper can bind them directly.
func addConfigFlags(pf *pflag.FlagSet) {
	pf.String(app.KeyHome, "", "data dir for reports (default ~/.elgamal)")
	pf.String(app.KeyDigest, crypto.SHA256.Name(), "message digest: sha256, sha3-256 or blake2b-256")
	pf.Int(app.KeyRounds, primes.DefaultRounds, "Miller–Rabin rounds")
	pf.Int(app.KeyMaxAttempts, 0, "prime candidates per search (0 = size-based cap)")
	pf.Bool(app.KeySafe, true, "generate safe primes p = 2q+1")
	pf.String(app.KeyMode, "full", "generator mode: full or subgroup")
	pf.Bool(app.KeySave, true, "persist run reports under --home")
	pf.String(app.KeyLogLevel, "info", "log level")
	pf.String(app.KeyLogFormat, "console", "log format: console or json")
}
