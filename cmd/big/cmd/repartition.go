package cmd

import (
	"fmt"
	"regexp"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/revscan"
	"github.com/spf13/cobra"
)

var (
	repartitionPattern string
	repartitionCount   int
	repartitionReverse bool

	repartitionCmd = &cobra.Command{
		Use:   "repartition [text]",
		Short: "Partition text around up to count regex matches, left-to-right or right-to-left",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			if repartitionPattern == "" {
				return bigerr.ArgumentValueErrorf("--pattern is required")
			}
			re, err := regexp.Compile(repartitionPattern)
			if err != nil {
				return bigerr.ArgumentValueErrorf("invalid --pattern: %v", err)
			}
			var parts []string
			if repartitionReverse {
				parts, err = revscan.ReRpartition(text, re, repartitionCount)
			} else {
				parts, err = revscan.RePartition(text, re, repartitionCount)
			}
			if err != nil {
				return err
			}
			for _, p := range parts {
				fmt.Println(p)
			}
			return nil
		},
	}
)

func init() {
	repartitionCmd.Flags().StringVar(&repartitionPattern, "pattern", "", "regular expression to partition around")
	repartitionCmd.Flags().IntVar(&repartitionCount, "count", 1, "number of matches to partition around")
	repartitionCmd.Flags().BoolVar(&repartitionReverse, "reverse", false, "scan from the right (re_rpartition) instead of the left")
	rootCmd.AddCommand(repartitionCmd)
}
