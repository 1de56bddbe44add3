package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/modular"
)

type calcOp struct {
	arity int
	run   func(v []bigint.Int) (bigint.Int, error)
}

var calcOps = map[string]calcOp{
	"add": {2, func(v []bigint.Int) (bigint.Int, error) { return bigint.Add(v[0], v[1]), nil }},
	"sub": {2, func(v []bigint.Int) (bigint.Int, error) { return bigint.Sub(v[0], v[1]), nil }},
	"mul": {2, func(v []bigint.Int) (bigint.Int, error) { return bigint.Mul(v[0], v[1]), nil }},
	"div": {2, func(v []bigint.Int) (bigint.Int, error) { return bigint.Quo(v[0], v[1]) }},
	"mod": {2, func(v []bigint.Int) (bigint.Int, error) { return bigint.Mod(v[0], v[1]) }},
	"gcd": {2, func(v []bigint.Int) (bigint.Int, error) { return modular.GCD(v[0], v[1]) }},
	"inv": {2, func(v []bigint.Int) (bigint.Int, error) { return modular.Inverse(v[0], v[1]) }},
	"pow": {3, func(v []bigint.Int) (bigint.Int, error) { return modular.Exp(v[0], v[1], v[2]) }},
}

// calc <op> <a> <b> [m]
func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> <a> <b> [m]",
		Short: "Arithmetic on decimal integers (add|sub|mul|div|mod|gcd|inv|pow)",
		Long: "calc evaluates one operation on decimal integers. div truncates toward zero,\n" +
			"mod is Euclidean (never negative), inv is a^-1 mod b and pow is a^b mod m.\n" +
			"Put -- before the operation when an operand is negative.",
		Example: "  cryptalg calc pow 4 13 497\n  cryptalg calc -- mod -7 3",
		Args:    cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := calcOps[args[0]]
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			if len(args)-1 != op.arity {
				return fmt.Errorf("%s takes %d operands, got %d", args[0], op.arity, len(args)-1)
			}
			v, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			res, err := op.run(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
