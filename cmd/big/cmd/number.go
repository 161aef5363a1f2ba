package cmd

import (
	"fmt"
	"strconv"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/textutil"
	"github.com/spf13/cobra"
)

var (
	numberFlowery bool
	numberOrdinal bool

	numberCmd = &cobra.Command{
		Use:   "number <integer>",
		Short: "Spell out an integer in English words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return bigerr.ArgumentValueErrorf("not an integer: %q", args[0])
			}
			fmt.Println(textutil.IntToWords(i, numberFlowery, numberOrdinal))
			return nil
		},
	}
)

func init() {
	numberCmd.Flags().BoolVar(&numberFlowery, "flowery", true, "insert commas and \"and\" the way a reader expects")
	numberCmd.Flags().BoolVar(&numberOrdinal, "ordinal", false, "spell out an ordinal (\"first\") instead of a cardinal (\"one\")")
	rootCmd.AddCommand(numberCmd)
}
