package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/codec"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>",
		Short: "Print the radix-256 integer of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(args[0]))
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <number>",
		Short: "Print the text encoded by a radix-256 integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := bigint.Parse(args[0])
			if err != nil {
				return err
			}
			text, err := codec.Decode(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
