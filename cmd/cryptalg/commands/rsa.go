package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kingaa1/Cryptography-algorithms/internal/app"
	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

func rsaCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "RSA keyring and DH-masked encryption",
	}
	cmd.AddCommand(
		rsaKeygenCmd(e),
		rsaEncryptCmd(e),
		rsaDecryptCmd(e),
		rsaListCmd(e),
		rsaDeleteCmd(e),
		rsaDemoCmd(e),
	)
	return cmd
}

func rsaKeygenCmd(e *env) *cobra.Command {
	var p, q, exp bigint.Int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive an RSA key pair from two primes and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rec, err := e.wire.Keyring.GenerateRSA(e.passphrase, p, q, exp)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key ID: %s\n", rec.ID)
			fmt.Fprintf(out, "Fingerprint: %s\n", rec.Fingerprint)
			fmt.Fprintf(out, "Public key (n): %s\n", rec.Public.N)
			fmt.Fprintf(out, "Public key (e): %s\n", rec.Public.E)
			return nil
		},
	}
	intFlag(cmd, &p, "p", app.DefaultRSAP, "first RSA prime")
	intFlag(cmd, &q, "q", app.DefaultRSAQ, "second RSA prime")
	intFlag(cmd, &exp, "e", app.DefaultE, "public exponent")
	return cmd
}

func rsaEncryptCmd(e *env) *cobra.Command {
	var shared bigint.Int
	cmd := &cobra.Command{
		Use:   "encrypt <key-id> <message>",
		Short: "Encrypt a message to a stored public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.wire.Keyring.Encrypt(domain.KeyID(args[0]), args[1], shared)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().Var(&shared, "shared", "DH shared secret masking the message")
	_ = cmd.MarkFlagRequired("shared")
	return cmd
}

func rsaDecryptCmd(e *env) *cobra.Command {
	var shared bigint.Int
	cmd := &cobra.Command{
		Use:   "decrypt <key-id> <ciphertext>",
		Short: "Decrypt a ciphertext with a stored private key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			c, err := bigint.Parse(args[1])
			if err != nil {
				return err
			}
			pt, err := e.wire.Keyring.Decrypt(e.passphrase, domain.KeyID(args[0]), c, shared)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
	cmd.Flags().Var(&shared, "shared", "DH shared secret used at encryption")
	_ = cmd.MarkFlagRequired("shared")
	return cmd
}

func rsaListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored RSA keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := e.wire.Keyring.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "no keys")
				return nil
			}
			for _, rec := range recs {
				created := time.Unix(rec.CreatedUTC, 0).UTC().Format(time.RFC3339)
				fmt.Fprintf(out, "%s  %s  %d digits  %s\n", rec.ID, rec.Fingerprint, rec.Public.N.Len(), created)
			}
			return nil
		},
	}
}

func rsaDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key-id>",
		Short: "Remove a stored RSA key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.wire.Keyring.Delete(domain.KeyID(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}

func rsaDemoCmd(e *env) *cobra.Command {
	var (
		params  domain.DHParams
		p, q, x bigint.Int
	)
	cmd := &cobra.Command{
		Use:   "demo <message>",
		Short: "Run a DH exchange, then send the message through RSA masked by the shared secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.wire.App.RSA(params, p, q, x, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shared secret: %s\n", res.Exchange.Shared)
			fmt.Fprintf(out, "Public key: (%s, %s)\n", res.Public.N, res.Public.E)
			fmt.Fprintf(out, "Ciphertext: %s\n", res.Ciphertext)
			fmt.Fprintf(out, "Decrypted plaintext: %s\n", res.Plaintext)
			return nil
		},
	}
	groupFlags(cmd, &params)
	intFlag(cmd, &p, "rsa-p", app.DefaultRSAP, "first RSA prime")
	intFlag(cmd, &q, "rsa-q", app.DefaultRSAQ, "second RSA prime")
	intFlag(cmd, &x, "e", app.DefaultE, "public exponent")
	return cmd
}
