package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/quoted"
	"github.com/spf13/cobra"
)

var (
	quoteMarkers          []string
	quoteMultilineMarkers []string
	quoteEscape           string

	quoteCmd = &cobra.Command{
		Use:   "quote [text]",
		Short: "Split text into unquoted/quoted triples using a quote marker set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			quotes := quoteMarkers
			if len(quotes) == 0 && len(quoteMultilineMarkers) == 0 {
				quotes = []string{`"`, `'`}
			}
			triples, err := quoted.SplitQuotedStrings(text, quoted.Options{
				Quotes:          quotes,
				MultilineQuotes: quoteMultilineMarkers,
				Escape:          quoteEscape,
			})
			if err != nil {
				return err
			}
			for _, t := range triples {
				fmt.Printf("%s\t%s\t%s\n", t.Leading, t.Body, t.Trailing)
			}
			return nil
		},
	}
)

func init() {
	quoteCmd.Flags().StringSliceVar(&quoteMarkers, "quote", nil, "single-line quote marker(s); defaults to \" and '")
	quoteCmd.Flags().StringSliceVar(&quoteMultilineMarkers, "multiline-quote", nil, "multi-line quote marker(s)")
	quoteCmd.Flags().StringVar(&quoteEscape, "escape", `\`, "escape string (empty disables escaping)")
	rootCmd.AddCommand(quoteCmd)
}
