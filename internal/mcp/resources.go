// ABOUTME: MCP resource implementations for the summary store.
// ABOUTME: Provides healthsum://recent, healthsum://latest, and healthsum://weekly resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// healthsum://recent - last 14 daily summaries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthsum://recent",
		Name:        "Recent Daily Summaries",
		Description: "The last 14 derived daily summaries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// healthsum://latest - most recent summarized day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthsum://latest",
		Name:        "Latest Daily Summary",
		Description: "The most recent derived daily summary",
		MIMEType:    "application/json",
	}, s.handleLatestResource)

	// healthsum://weekly - trailing 7-day averages
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthsum://weekly",
		Name:        "Weekly Averages",
		Description: "Trailing 7-day averages anchored on Sundays",
		MIMEType:    "application/json",
	}, s.handleWeeklyResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	days, err := s.repo.ListSummaries(14)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	result := map[string]interface{}{
		"days":  days,
		"count": len(days),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "healthsum://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleLatestResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	days, err := s.repo.ListSummaries(1)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if len(days) > 0 {
		result["day"] = days[0]
	} else {
		result["message"] = "No summaries found."
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "healthsum://latest",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleWeeklyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	weeks, err := s.repo.ListWeeklyAverages(12)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly averages: %w", err)
	}

	result := map[string]interface{}{
		"weeks": weeks,
		"count": len(weeks),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "healthsum://weekly",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
