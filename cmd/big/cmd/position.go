package cmd

import (
	"fmt"

	"github.com/larryhastings/big-sub001/pstring"
	"github.com/spf13/cobra"
)

var (
	positionFold string

	positionCmd = &cobra.Command{
		Use:   "position [text]",
		Short: "Show a positioned-string's source location after an optional case fold",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readStdinOrArg(firstArg(args))
			if err != nil {
				return err
			}
			s := pstring.NewDefault(text)
			switch positionFold {
			case "upper":
				s = s.Upper()
			case "lower":
				s = s.Lower()
			case "title":
				s = s.Title()
			case "casefold":
				s = s.Casefold()
			case "":
			default:
				return fmt.Errorf("unknown --fold value %q (want upper, lower, title, or casefold)", positionFold)
			}
			fmt.Printf("%s\t%s\n", s.Value, s.Where())
			return nil
		},
	}
)

func init() {
	positionCmd.Flags().StringVar(&positionFold, "fold", "", "case fold to apply before reporting position: upper, lower, title, casefold")
	rootCmd.AddCommand(positionCmd)
}
