package commands

import (
	"github.com/spf13/cobra"

	"github.com/kingaa1/Cryptography-algorithms/internal/app"
)

// env carries the persistent flags and the wired dependencies.
type env struct {
	home       string
	passphrase string
	logLevel   string
	wire       *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the cryptalg root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:          "cryptalg",
		Short:        "Big-integer arithmetic with Diffie-Hellman, ElGamal and RSA",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				Home:       e.home,
				Passphrase: e.passphrase,
				LogLevel:   e.logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			e.wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&e.home, "home", "", "keyring dir (default ~/.cryptalg)")
	root.PersistentFlags().StringVarP(&e.passphrase, "passphrase", "p", "", "passphrase to protect private keys")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		calcCmd(),
		encodeCmd(),
		decodeCmd(),
		dhCmd(e),
		elgamalCmd(e),
		rsaCmd(e),
	)
	return root
}
