// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Covers number formatting, flag rendering, and registered commands.
package main

import (
	"testing"

	"github.com/namtonthat/healthsum/internal/models"
)

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"9100", "9,100"},
		{"1234567", "1,234,567"},
		{"-9100", "-9,100"},
		{"1234.5", "1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := groupThousands(tt.input); got != tt.want {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOptFloat(t *testing.T) {
	if got := optFloat(nil, 1); got != "-" {
		t.Errorf("optFloat(nil) = %q, want -", got)
	}
	v := 6.99
	if got := optFloat(&v, 1); got != "7.0" {
		t.Errorf("optFloat(6.99, 1) = %q, want 7.0", got)
	}
	if got := optFloat(&v, 2); got != "6.99" {
		t.Errorf("optFloat(6.99, 2) = %q, want 6.99", got)
	}
}

func TestGrouped(t *testing.T) {
	if got := grouped(nil, 0); got != "-" {
		t.Errorf("grouped(nil) = %q, want -", got)
	}
	v := 9100.0
	if got := grouped(&v, 0); got != "9,100" {
		t.Errorf("grouped(9100) = %q, want 9,100", got)
	}
}

func TestSummaryFlags(t *testing.T) {
	d := &models.DailySummary{ActiveDay: true, MindfulDay: true}
	if got := summaryFlags(d); got != "active,mindful" {
		t.Errorf("summaryFlags = %q, want active,mindful", got)
	}
	if got := summaryFlags(&models.DailySummary{}); got != "" {
		t.Errorf("summaryFlags on empty day = %q, want empty", got)
	}
}

func TestEfficiencyRendering(t *testing.T) {
	if got := efficiency(&models.DailySummary{}); got != "-" {
		t.Errorf("efficiency without in-bed hours = %q, want -", got)
	}
	inBed := 8.0
	d := &models.DailySummary{SleepInBedHours: &inBed, SleepEfficiencyPct: 87}
	if got := efficiency(d); got != "87" {
		t.Errorf("efficiency = %q, want 87", got)
	}
}

func TestRegisteredCommands(t *testing.T) {
	want := map[string]bool{
		"summarize": false,
		"show":      false,
		"dots":      false,
		"e1rm":      false,
		"mcp":       false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestSummarizeFlags(t *testing.T) {
	if summarizeCmd.Flags().Lookup("parquet") == nil {
		t.Error("summarize missing --parquet flag")
	}
	if showCmd.Flags().Lookup("weekly") == nil {
		t.Error("show missing --weekly flag")
	}
	if e1rmCmd.Flags().Lookup("workouts") == nil {
		t.Error("e1rm missing --workouts flag")
	}
}
