package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/split"
	"github.com/spf13/cobra"
)

var (
	partitionSeps     []string
	partitionNamed    string
	partitionCount    int
	partitionReverse  bool
	partitionSeparate bool

	partitionCmd = &cobra.Command{
		Use:   "partition [text]",
		Short: "Partition text into 2*count+1 fields around a separator set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			seps, err := resolveSeparators(partitionSeps, partitionNamed)
			if err != nil {
				return err
			}
			result, err := split.Multipartition(text, seps, partitionCount, partitionReverse, partitionSeparate)
			if err != nil {
				return err
			}
			for _, p := range result.Parts {
				fmt.Println(p)
			}
			return nil
		},
	}
)

func init() {
	partitionCmd.Flags().StringSliceVar(&partitionSeps, "sep", nil, "explicit separator text(s); repeatable")
	partitionCmd.Flags().StringVar(&partitionNamed, "named", "", "named separator preset")
	partitionCmd.Flags().IntVar(&partitionCount, "count", 1, "number of splits to partition around")
	partitionCmd.Flags().BoolVar(&partitionReverse, "reverse", false, "partition from the right")
	partitionCmd.Flags().BoolVar(&partitionSeparate, "separate", false, "treat adjacent separators as distinct splits")
	rootCmd.AddCommand(partitionCmd)
}
