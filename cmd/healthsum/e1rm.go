// ABOUTME: CLI command for one-rep max estimation.
// ABOUTME: One-shot Epley estimate, or a rolling best-total table from a workout CSV.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namtonthat/healthsum/internal/derive"
	"github.com/namtonthat/healthsum/internal/ingest"
)

var e1rmWorkouts string

var e1rmCmd = &cobra.Command{
	Use:   "e1rm [weight-kg] [reps]",
	Short: "Estimate a one-rep max",
	Long: `Estimate a one-rep max from a weight and rep count using the Epley
formula: weight * (1 + reps/30). A single rep returns the weight itself.

With --workouts, read a workout set export (start_time, exercise_title,
weight_kg, reps columns) and print the running best estimated total
across squat, bench, and deadlift. The total only appears once all three
lifts have been seen; the lift-to-exercise-name mapping comes from the
config file.

EXAMPLES:

  healthsum e1rm 150 3                      # One-shot estimate
  healthsum e1rm --workouts hevy.csv        # Rolling best-total table`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if e1rmWorkouts != "" {
			return runRollingTotal(e1rmWorkouts)
		}

		if len(args) != 2 {
			return fmt.Errorf("expected <weight-kg> <reps> (or --workouts)")
		}
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q: %w", args[0], err)
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps %q: %w", args[1], err)
		}

		est := derive.EstimateOneRepMax(weight, reps)
		if est == nil {
			return fmt.Errorf("cannot estimate from %.1f kg x %d reps", weight, reps)
		}

		bold := color.New(color.Bold)
		fmt.Printf("%.1f kg x %d: estimated 1RM %s kg\n", weight, reps, bold.Sprintf("%.1f", *est))
		return nil
	},
}

func runRollingTotal(path string) error {
	sets, err := ingest.ReadWorkoutCSV(path, logger)
	if err != nil {
		return fmt.Errorf("failed to read workouts: %w", err)
	}

	points := derive.RollingBestTotal(sets, cfg.LiftNames())
	if len(points) == 0 {
		fmt.Println("No squat, bench, or deadlift sets found.")
		return nil
	}

	bold := color.New(color.Bold)
	bold.Println("DATE        SQUAT   BENCH   DEADLIFT  TOTAL")
	for _, p := range points {
		fmt.Printf("%s  %-6s  %-6s  %-8s  %s\n",
			p.Date.Format("2006-01-02"),
			optFloat(p.Squat, 1),
			optFloat(p.Bench, 1),
			optFloat(p.Deadlift, 1),
			optFloat(p.EstimatedTotal, 1))
	}
	return nil
}

func init() {
	e1rmCmd.Flags().StringVar(&e1rmWorkouts, "workouts", "", "workout set CSV to compute a rolling best total from")
	rootCmd.AddCommand(e1rmCmd)
}
