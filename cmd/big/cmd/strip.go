package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/split"
	"github.com/spf13/cobra"
)

var (
	stripSeps  []string
	stripNamed string
	stripLeft  bool
	stripRight bool

	stripCmd = &cobra.Command{
		Use:   "strip [text]",
		Short: "Strip a separator set from one or both ends of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			seps, err := resolveSeparators(stripSeps, stripNamed)
			if err != nil {
				return err
			}
			left, right := stripLeft, stripRight
			if !left && !right {
				left, right = true, true
			}
			out, err := split.Multistrip(text, seps, left, right)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	stripCmd.Flags().StringSliceVar(&stripSeps, "sep", nil, "explicit separator text(s); repeatable")
	stripCmd.Flags().StringVar(&stripNamed, "named", "", "named separator preset")
	stripCmd.Flags().BoolVar(&stripLeft, "left", false, "strip only the left end")
	stripCmd.Flags().BoolVar(&stripRight, "right", false, "strip only the right end")
	rootCmd.AddCommand(stripCmd)
}
