package commands

import (
	"github.com/spf13/cobra"

	"github.com/kingaa1/Cryptography-algorithms/internal/app"
	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

// groupFlags binds --g and --p to params, defaulting to the demo group.
func groupFlags(cmd *cobra.Command, params *domain.DHParams) {
	*params = app.DefaultDHParams()
	cmd.Flags().Var(&params.G, "g", "DH generator")
	cmd.Flags().Var(&params.P, "p", "DH prime modulus")
}

// intFlag binds a decimal flag with a default value.
func intFlag(cmd *cobra.Command, v *bigint.Int, name, def, usage string) {
	*v = bigint.MustParse(def)
	cmd.Flags().Var(v, name, usage)
}

func parseArgs(args []string) ([]bigint.Int, error) {
	out := make([]bigint.Int, len(args))
	for i, a := range args {
		v, err := bigint.Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
