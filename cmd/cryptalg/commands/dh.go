package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

func dhCmd(e *env) *cobra.Command {
	var params domain.DHParams
	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Run a Diffie-Hellman exchange with fresh ephemeral exponents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.wire.App.DH(params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Alice public (A): %s\n", res.Alice.Public)
			fmt.Fprintf(out, "Bob public (B): %s\n", res.Bob.Public)
			fmt.Fprintf(out, "Shared secret: %s\n", res.Shared)
			fmt.Fprintf(out, "Session key: %s\n", hex.EncodeToString(res.SessionKey))
			return nil
		},
	}
	groupFlags(cmd, &params)
	return cmd
}

func elgamalCmd(e *env) *cobra.Command {
	var params domain.DHParams
	cmd := &cobra.Command{
		Use:   "elgamal <message>",
		Short: "Encrypt and decrypt a message with ElGamal over a fresh DH exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.wire.App.ElGamal(params, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shared secret: %s\n", res.Exchange.Shared)
			fmt.Fprintf(out, "Ciphertext: (%s, %s)\n", res.Ciphertext.Y1, res.Ciphertext.Y2)
			fmt.Fprintf(out, "Decrypted plaintext: %s\n", res.Plaintext)
			return nil
		},
	}
	groupFlags(cmd, &params)
	return cmd
}
