package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/textutil"
	"github.com/spf13/cobra"
)

var (
	columnsWidths   []int
	columnsSep      string
	columnsIntrude  bool

	columnsCmd = &cobra.Command{
		Use:   "columns <file>...",
		Short: "Lay out file contents side by side in columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := make([]textutil.Column, len(args))
			for i, path := range args {
				b, err := readFile(path)
				if err != nil {
					return err
				}
				width := 40
				if i < len(columnsWidths) {
					width = columnsWidths[i]
				}
				cols[i] = textutil.Column{Text: b, MaxWidth: width}
			}
			strategy := textutil.OverflowRaise
			if columnsIntrude {
				strategy = textutil.OverflowIntrudeAll
			}
			out, err := textutil.MergeColumns(cols, columnsSep, strategy)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	columnsCmd.Flags().IntSliceVar(&columnsWidths, "width", nil, "per-column max width, in file order (default 40)")
	columnsCmd.Flags().StringVar(&columnsSep, "col-sep", " ", "text printed between columns")
	columnsCmd.Flags().BoolVar(&columnsIntrude, "intrude", false, "allow an overflowing column to intrude into the next instead of raising")
	rootCmd.AddCommand(columnsCmd)
}
