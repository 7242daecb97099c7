// ABOUTME: CLI command for listing stored daily summaries and weekly averages.
// ABOUTME: Formats numbers with comma grouping at presentation time only.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namtonthat/healthsum/internal/models"
)

var (
	showLimit  int
	showWeekly bool
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls", "list"},
	Short:   "Show stored daily summaries",
	Long: `Show stored daily summaries, newest first.

OUTPUT FORMAT:

  Each line shows: DATE  CALORIES  MACROS (C/P/F)  SLEEP  EFF%  STEPS  FLAGS

  Missing metrics render as "-". Steps and calories are comma-grouped for
  display; stored values stay numeric.

EXAMPLES:

  healthsum show              # Last 14 days
  healthsum show -n 30        # Last 30 days
  healthsum show --weekly     # Trailing 7-day averages instead`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}

		if showWeekly {
			return showWeeklyAverages(r.ListWeeklyAverages(showLimit))
		}

		days, err := r.ListSummaries(showLimit)
		if err != nil {
			return fmt.Errorf("failed to list summaries: %w", err)
		}
		if len(days) == 0 {
			fmt.Println("No summaries found. Run `healthsum summarize <dir>` first.")
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		bold.Println("DATE        CAL     C/P/F (g)        SLEEP   EFF%  STEPS   FLAGS")
		for _, d := range days {
			flags := summaryFlags(d)
			fmt.Printf("%s  %-6s  %-15s  %-6s  %-4s  %-6s  %s\n",
				d.Date.Format("2006-01-02"),
				grouped(d.Calories, 0),
				fmt.Sprintf("%s/%s/%s", optFloat(d.CarbsG, 0), optFloat(d.ProteinG, 0), optFloat(d.FatG, 0)),
				optFloat(d.SleepAsleepHours, 1),
				efficiency(d),
				grouped(d.Steps, 0),
				faint.Sprint(flags))
		}
		return nil
	},
}

func showWeeklyAverages(weeks []*models.WeeklyAverage, err error) error {
	if err != nil {
		return fmt.Errorf("failed to list weekly averages: %w", err)
	}
	if len(weeks) == 0 {
		fmt.Println("No weekly averages found. A full Sunday-anchored week of data is required.")
		return nil
	}

	bold := color.New(color.Bold)
	bold.Println("WEEK ENDING  CAL/DAY  CAL/WEEK  C/P/F (g)        SLEEP   STEPS")
	for _, w := range weeks {
		fmt.Printf("%s   %-7s  %-8s  %-15s  %-6s  %s\n",
			w.WeekEnding.Format("2006-01-02"),
			grouped(w.Calories, 0),
			grouped(w.CaloriesSum, 0),
			fmt.Sprintf("%s/%s/%s", optFloat(w.CarbsG, 0), optFloat(w.ProteinG, 0), optFloat(w.FatG, 0)),
			optFloat(w.SleepAsleepHours, 1),
			grouped(w.Steps, 0))
	}
	return nil
}

func summaryFlags(d *models.DailySummary) string {
	var flags []string
	if d.ActiveDay {
		flags = append(flags, "active")
	}
	if d.MindfulDay {
		flags = append(flags, "mindful")
	}
	return strings.Join(flags, ",")
}

func efficiency(d *models.DailySummary) string {
	if d.SleepInBedHours == nil {
		return "-"
	}
	return strconv.Itoa(d.SleepEfficiencyPct)
}

// optFloat renders a nullable metric, "-" when absent.
func optFloat(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// grouped renders a nullable metric with thousands separators for display.
func grouped(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return groupThousands(strconv.FormatFloat(*v, 'f', decimals, 64))
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

func init() {
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 14, "max rows to show")
	showCmd.Flags().BoolVar(&showWeekly, "weekly", false, "show trailing 7-day averages instead of daily rows")
	rootCmd.AddCommand(showCmd)
}
