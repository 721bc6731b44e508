package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planFlags struct {
	file    string
	epsilon float64
	dense   bool
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the waypoints from start to destination",
	Long: `Plan computes the distance field, walks the descent from the start and
prints the reduced waypoints, one "row col" pair per line.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFlags.file, "file", "f", "", "Scenario file")
	planCmd.Flags().Float64Var(&planFlags.epsilon, "epsilon", 0, "Simplification tolerance (overrides the scenario)")
	planCmd.Flags().BoolVar(&planFlags.dense, "dense", false, "Print the unreduced walk")
}

func runPlan(cmd *cobra.Command, args []string) error {
	s, sc, err := openSession(cmd, planFlags.file)
	if err != nil {
		return err
	}
	eps := sc.Epsilon
	if cmd.Flags().Changed("epsilon") {
		eps = planFlags.epsilon
	}

	ctx := cmd.Context()
	if planFlags.dense {
		if err := s.ComputeField(ctx); err != nil {
			return err
		}
		if _, err := s.BuildPath(ctx); err != nil {
			return err
		}
	} else if _, err := s.Plan(ctx, eps); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range s.Path() {
		fmt.Fprintf(out, "%d %d\n", c.Row, c.Col)
	}
	return nil
}
