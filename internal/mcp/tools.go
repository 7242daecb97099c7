// ABOUTME: MCP tool implementations for daily summaries and strength math.
// ABOUTME: Exposes summary lookups, weekly averages, DOTS, and e1RM estimates.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/namtonthat/healthsum/internal/derive"
	"github.com/namtonthat/healthsum/internal/models"
)

func (s *Server) registerTools() {
	// get_daily_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_daily_summary",
		Description: "Get the derived health summary for a single date (YYYY-MM-DD)",
	}, s.handleGetDailySummary)

	// list_daily_summaries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_daily_summaries",
		Description: "List recent daily summaries, newest first",
	}, s.handleListDailySummaries)

	// list_weekly_averages
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_weekly_averages",
		Description: "List trailing 7-day averages anchored on Sundays, newest first",
	}, s.handleListWeeklyAverages)

	// compute_dots
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_dots",
		Description: "Compute a bodyweight-adjusted DOTS score for a powerlifting total",
	}, s.handleComputeDOTS)

	// estimate_one_rep_max
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_one_rep_max",
		Description: "Estimate a one-rep max from a weight and rep count using the Epley formula",
	}, s.handleEstimateOneRepMax)
}

// Tool input/output types

type getDailySummaryInput struct {
	Date string `json:"date" jsonschema:"Date in YYYY-MM-DD format"`
}

type listSummariesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type computeDOTSInput struct {
	TotalKg      float64 `json:"total_kg" jsonschema:"Powerlifting total in kilograms"`
	BodyweightKg float64 `json:"bodyweight_kg" jsonschema:"Lifter bodyweight in kilograms"`
	Sex          string  `json:"sex" jsonschema:"Lifter sex (male or female)"`
}

type dotsOutput struct {
	Score   float64 `json:"score"`
	Message string  `json:"message"`
}

type e1rmInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight lifted in kilograms"`
	Reps     int     `json:"reps" jsonschema:"Number of reps performed"`
}

type e1rmOutput struct {
	EstimateKg float64 `json:"estimate_kg"`
	Message    string  `json:"message"`
}

// Tool handlers

func (s *Server) handleGetDailySummary(ctx context.Context, req *mcp.CallToolRequest, input getDailySummaryInput) (*mcp.CallToolResult, any, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", input.Date)
	}

	day, err := s.repo.GetSummary(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return nil, day, nil
}

func (s *Server) handleListDailySummaries(ctx context.Context, req *mcp.CallToolRequest, input listSummariesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	days, err := s.repo.ListSummaries(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	if len(days) == 0 {
		return nil, map[string]interface{}{"message": "No summaries found. Run `healthsum summarize` first."}, nil
	}

	return nil, days, nil
}

func (s *Server) handleListWeeklyAverages(ctx context.Context, req *mcp.CallToolRequest, input listSummariesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	weeks, err := s.repo.ListWeeklyAverages(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list weekly averages: %w", err)
	}

	if len(weeks) == 0 {
		return nil, map[string]interface{}{"message": "No weekly averages found. Run `healthsum summarize` first."}, nil
	}

	return nil, weeks, nil
}

func (s *Server) handleComputeDOTS(ctx context.Context, req *mcp.CallToolRequest, input computeDOTSInput) (*mcp.CallToolResult, dotsOutput, error) {
	sex, err := models.ParseSex(input.Sex)
	if err != nil {
		return nil, dotsOutput{}, err
	}

	score, err := derive.DOTS(input.TotalKg, input.BodyweightKg, sex)
	if err != nil {
		return nil, dotsOutput{}, err
	}

	return nil, dotsOutput{
		Score:   score,
		Message: fmt.Sprintf("DOTS %.2f for a %.1f kg total at %.1f kg bodyweight", score, input.TotalKg, input.BodyweightKg),
	}, nil
}

func (s *Server) handleEstimateOneRepMax(ctx context.Context, req *mcp.CallToolRequest, input e1rmInput) (*mcp.CallToolResult, e1rmOutput, error) {
	est := derive.EstimateOneRepMax(input.WeightKg, input.Reps)
	if est == nil {
		return nil, e1rmOutput{}, fmt.Errorf("cannot estimate from %.1f kg x %d reps", input.WeightKg, input.Reps)
	}

	return nil, e1rmOutput{
		EstimateKg: *est,
		Message:    fmt.Sprintf("Estimated 1RM %.1f kg from %.1f kg x %d", *est, input.WeightKg, input.Reps),
	}, nil
}
