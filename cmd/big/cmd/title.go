package cmd

import (
	"fmt"
	"strings"

	"github.com/larryhastings/big-sub001/textutil"
	"github.com/spf13/cobra"
)

var (
	titleSplitCamel  bool
	titleSplitAllCaps bool

	titleCmd = &cobra.Command{
		Use:   "title [text]",
		Short: "Title-case text without clobbering apostrophes (gently-title)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			if titleSplitCamel {
				words := textutil.SplitTitleCase(text, titleSplitAllCaps)
				fmt.Println(strings.Join(words, " "))
				return nil
			}
			fmt.Println(textutil.GentlyTitle(text))
			return nil
		},
	}
)

func init() {
	titleCmd.Flags().BoolVar(&titleSplitCamel, "split-camel-case", false, "split CamelCase/HTTPServer-shaped identifiers into words instead")
	titleCmd.Flags().BoolVar(&titleSplitAllCaps, "split-all-caps", true, "with --split-camel-case, also split runs of capital letters")
	rootCmd.AddCommand(titleCmd)
}
