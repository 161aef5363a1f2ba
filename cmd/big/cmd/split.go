package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/split"
	"github.com/spf13/cobra"
)

var (
	splitSeps     []string
	splitNamed    string
	splitSeparate bool
	splitReverse  bool
	splitMaxSplit int

	splitCmd = &cobra.Command{
		Use:   "split [text]",
		Short: "Split text on a separator set, printing one piece per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			seps, err := resolveSeparators(splitSeps, splitNamed)
			if err != nil {
				return err
			}
			pieces, err := split.Multisplit(text, seps, split.Options{
				MaxSplit: splitMaxSplit,
				Reverse:  splitReverse,
				Separate: splitSeparate,
				Strip:    split.StripBoth,
			})
			if err != nil {
				return err
			}
			for _, p := range split.Bare(pieces) {
				fmt.Println(p)
			}
			return nil
		},
	}
)

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	splitCmd.Flags().StringSliceVar(&splitSeps, "sep", nil, "explicit separator text(s); repeatable")
	splitCmd.Flags().StringVar(&splitNamed, "named", "", "named separator preset (whitespace, linebreaks, ...)")
	splitCmd.Flags().BoolVar(&splitSeparate, "separate", false, "treat adjacent separators as distinct splits")
	splitCmd.Flags().BoolVar(&splitReverse, "reverse", false, "split from the right")
	splitCmd.Flags().IntVar(&splitMaxSplit, "max-split", -1, "maximum number of splits, -1 for unlimited")
	rootCmd.AddCommand(splitCmd)
}
