package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/delim"
	"github.com/spf13/cobra"
)

var delimCmd = &cobra.Command{
	Use:   "delim [text]",
	Short: "Split text on nested open/close delimiters using the default delimiter set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readStdinOrArg(firstArg(args))
		if err != nil {
			return err
		}
		triples, _, err := delim.SplitDelimiters(text, delim.DefaultDelimiters(), nil)
		if err != nil {
			return err
		}
		for _, t := range triples {
			fmt.Printf("%s\t%s\t%s\n", t.Open, t.Body, t.Close)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(delimCmd)
}
