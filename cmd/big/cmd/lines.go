package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/larryhastings/big-sub001/internal/lines"
	"github.com/spf13/cobra"
)

var (
	linesRstrip       bool
	linesStrip        bool
	linesFilterEmpty  bool
	linesStripIndent  bool
	linesComment      string
	linesShowIndent   bool

	linesCmd = &cobra.Command{
		Use:   "lines",
		Short: "Run the lines pipeline (rstrip/strip/strip-indent/filter-empty/strip-line-comments) over stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			entries, err := lines.Split(string(b), lines.Options{TabWidth: tabWidth()})
			if err != nil {
				return err
			}
			if linesComment != "" {
				entries, err = lines.StripLineComments(entries, []string{linesComment}, lines.StripLineCommentsOptions{})
				if err != nil {
					return err
				}
			}
			if linesStrip {
				entries, err = lines.Strip(entries, nil)
				if err != nil {
					return err
				}
			} else if linesRstrip {
				entries, err = lines.Rstrip(entries, nil)
				if err != nil {
					return err
				}
			}
			if linesStripIndent {
				entries, err = lines.StripIndent(entries)
				if err != nil {
					return err
				}
			}
			if linesFilterEmpty {
				entries = lines.FilterEmptyLines(entries)
			}
			for _, e := range entries {
				if linesShowIndent {
					fmt.Printf("%d\t%s\n", e.Info.Indent, e.Line)
				} else {
					fmt.Println(e.Line)
				}
			}
			return nil
		},
	}
)

func init() {
	linesCmd.Flags().BoolVar(&linesRstrip, "rstrip", false, "strip trailing whitespace from each line")
	linesCmd.Flags().BoolVar(&linesStrip, "strip", false, "strip leading and trailing whitespace from each line")
	linesCmd.Flags().BoolVar(&linesFilterEmpty, "filter-empty", false, "drop empty lines")
	linesCmd.Flags().BoolVar(&linesStripIndent, "strip-indent", false, "strip leading whitespace and track indent level")
	linesCmd.Flags().StringVar(&linesComment, "strip-comment", "", "strip a line comment marker (everything from the marker to end of line)")
	linesCmd.Flags().BoolVar(&linesShowIndent, "show-indent", false, "prefix each line with its indent level")
	rootCmd.AddCommand(linesCmd)
}
