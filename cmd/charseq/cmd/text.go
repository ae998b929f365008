package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/charseq/pkg/text"
)

func newConcatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat <fragment>...",
		Short: "Join fragments with a text builder",
		Long: `Join all fragments in order and print the result.

Example:
  charseq concat "id=" 42 ";"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := text.NewBuilderSize(configFrom(cmd).Builder.InitialCapacity)
			for _, arg := range args {
				b.AppendString(arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two texts",
		Long: `Print CompareTo(a, b): 0 when equal, 1 when one is a strict prefix
of the other and -1 on any mismatch.

Example:
  charseq compare abc abd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := text.FromString(args[0])
			b := text.FromString(args[1])
			fmt.Fprintln(cmd.OutOrStdout(), a.CompareTo(b))
			return nil
		},
	}
}
