package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/list"
	"github.com/spf13/cobra"
)

var (
	listReverse bool
	listRotate  int

	listCmd = &cobra.Command{
		Use:   "listop [values...]",
		Short: "Build a concurrent doubly-linked list from args and print it, optionally reversed or rotated",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args))
			for i, a := range args {
				values[i] = a
			}
			l := list.New(list.NewMutex(), values...)
			if listRotate != 0 {
				l.Rotate(listRotate)
			}
			if listReverse {
				l.Reverse()
			}
			for _, v := range l.Values() {
				fmt.Println(v)
			}
			return nil
		},
	}
)

func init() {
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "reverse the list before printing")
	listCmd.Flags().IntVar(&listRotate, "rotate", 0, "rotate the list by n before printing")
	rootCmd.AddCommand(listCmd)
}
