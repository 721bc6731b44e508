package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/field"
)

var fieldFlags struct {
	file string
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Print the distance field",
	Long:  `Field prints the cost of every cell to the destination. Unreached cells print as "-".`,
	Args:  cobra.NoArgs,
	RunE:  runField,
}

func init() {
	fieldCmd.Flags().StringVarP(&fieldFlags.file, "file", "f", "", "Scenario file")
}

func runField(cmd *cobra.Command, args []string) error {
	s, _, err := openSession(cmd, fieldFlags.file)
	if err != nil {
		return err
	}
	if err := s.ComputeField(cmd.Context()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, row := range s.Field().Rows2D() {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == field.Unset {
				cells[i] = fmt.Sprintf("%6s", "-")
				continue
			}
			cells[i] = fmt.Sprintf("%6.2f", v)
		}
		fmt.Fprintln(out, strings.Join(cells, " "))
	}
	return nil
}
