// ABOUTME: CLI command for one-shot DOTS scoring.
// ABOUTME: Falls back to the configured athlete for bodyweight and sex.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namtonthat/healthsum/internal/derive"
	"github.com/namtonthat/healthsum/internal/models"
)

var dotsCmd = &cobra.Command{
	Use:   "dots <total-kg> [bodyweight-kg] [sex]",
	Short: "Compute a DOTS score for a powerlifting total",
	Long: `Compute a bodyweight-adjusted DOTS score for a powerlifting total.

Bodyweight and sex default to the athlete section of the config file, so
with a configured athlete you only pass the total.

EXAMPLES:

  healthsum dots 500                # Use configured bodyweight and sex
  healthsum dots 500 83 male        # Fully explicit
  healthsum dots 500 83 female`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid total %q: %w", args[0], err)
		}

		bodyweight := cfg.Athlete.BodyweightKg
		if len(args) > 1 {
			bodyweight, err = strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid bodyweight %q: %w", args[1], err)
			}
		}

		var sex models.Sex
		if len(args) > 2 {
			sex, err = models.ParseSex(args[2])
		} else {
			sex, err = cfg.Sex()
		}
		if err != nil {
			return err
		}

		score, err := derive.DOTS(total, bodyweight, sex)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		fmt.Printf("%.1f kg total @ %.1f kg bodyweight (%s): DOTS %s\n",
			total, bodyweight, sex, bold.Sprintf("%.2f", score))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dotsCmd)
}
