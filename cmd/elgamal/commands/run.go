package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"elgamal/internal/app"
	"elgamal/internal/crypto"
	"elgamal/internal/domain"
)

func runCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Encrypt, decrypt, sign and verify once at one bit length",
		Long: "Encryption is over the message digest, so decryption recovers the\n" +
			"digest and not the message itself.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := appCtx.Runs.Run(cmd.Context(), bits, []byte(appCtx.Config.Message))
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 512, "bit length of p")
	cmd.Flags().String(app.KeyMessage, "Hello, world!", "message to encrypt and sign")
	return cmd
}

func printReport(out io.Writer, r domain.Report) {
	fmt.Fprintf(out, "run %s (%d bits, %s)\n", r.ID, r.Bits, r.Digest)
	fmt.Fprintf(out, "  p:                   %s\n", crypto.Hex(r.Params.P))
	fmt.Fprintf(out, "  g:                   %s\n", r.Params.G)
	fmt.Fprintf(out, "  public key:          %s\n", r.PublicKeyFingerprint)
	fmt.Fprintf(out, "  ciphertext x:        %s\n", crypto.Hex(r.Ciphertext.X))
	fmt.Fprintf(out, "  ciphertext y:        %s\n", crypto.Hex(r.Ciphertext.Y))
	fmt.Fprintf(out, "  decrypted digest:    %x\n", r.Decrypted)
	fmt.Fprintf(out, "  digest matches:      %t\n", r.DigestMatches)
	fmt.Fprintf(out, "  signature valid:     %t\n", r.SignatureValid)
	fmt.Fprintf(out, "  corrupted rejected:  %t\n", !r.CorruptedSignatureValid)
	fmt.Fprintf(out, "  legacy check:        %t\n", r.LegacyVerified)
	fmt.Fprintf(out, "  legacy corrupted:    %t\n", r.LegacyCorruptedVerified)
	fmt.Fprintf(out, "  elapsed:             %s\n", r.Elapsed.Round(time.Millisecond))
}
