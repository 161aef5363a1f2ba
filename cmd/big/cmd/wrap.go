package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/textutil"
	"github.com/spf13/cobra"
)

var (
	wrapMargin    int
	wrapTwoSpaces bool
	wrapAllowCode bool

	wrapCmd = &cobra.Command{
		Use:   "wrap [text]",
		Short: "Word-wrap text to a margin, preserving indented code blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			words := textutil.SplitTextWithCode(text, tabWidth(), 4, wrapAllowCode, true)
			out, err := textutil.WrapWords(words, wrapMargin, wrapTwoSpaces)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	wrapCmd.Flags().IntVar(&wrapMargin, "margin", 79, "maximum line length")
	wrapCmd.Flags().BoolVar(&wrapTwoSpaces, "two-spaces", true, "put two spaces after sentence-ending punctuation")
	wrapCmd.Flags().BoolVar(&wrapAllowCode, "allow-code", true, "preserve paragraphs indented 4+ spaces verbatim")
	rootCmd.AddCommand(wrapCmd)
}
