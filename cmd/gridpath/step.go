package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/steer"
)

var stepFlags struct {
	file  string
	naive bool
}

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Print the next steering vector from the start",
	Args:  cobra.NoArgs,
	RunE:  runStep,
}

func init() {
	stepCmd.Flags().StringVarP(&stepFlags.file, "file", "f", "", "Scenario file")
	stepCmd.Flags().BoolVar(&stepFlags.naive, "naive", false, "Look ahead with the naive line follower")
}

func runStep(cmd *cobra.Command, args []string) error {
	s, sc, err := openSession(cmd, stepFlags.file)
	if err != nil {
		return err
	}
	if err := s.ComputeField(cmd.Context()); err != nil {
		return err
	}
	arrived, err := s.AtDestination()
	if err != nil {
		return err
	}

	var step steer.Step
	if stepFlags.naive {
		step, err = s.FollowNaive(sc.Epsilon)
	} else {
		step, err = s.Translation(nil)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "target: %v\n", step.Target)
	fmt.Fprintf(out, "vector: %v\n", step.Vector)
	fmt.Fprintf(out, "fallback: %t\n", step.Fallback)
	fmt.Fprintf(out, "arrived: %t\n", arrived)
	return nil
}
