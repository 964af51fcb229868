package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"directory/internal/directory"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for reading the directory
func NewServer(svc *directory.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Directory",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: get_directory - Load users and albums and return every card
	s.AddTool(
		mcp.NewTool("get_directory",
			mcp.WithDescription("Load the user directory: every user with their full album list and the first three album titles. Each call fetches fresh data."),
		),
		handleGetDirectory(svc),
	)

	// Tool: get_user_card - One user's card
	s.AddTool(
		mcp.NewTool("get_user_card",
			mcp.WithDescription("Load the directory and return a single user's card, including the untruncated album list."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The user ID"),
			),
		),
		handleGetUserCard(svc),
	)

	// Tool: recent_loads - Load audit
	s.AddTool(
		mcp.NewTool("recent_loads",
			mcp.WithDescription("List recent directory load attempts, newest first, with their outcome and counts."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of loads to return (default: 20, max: 100)"),
			),
		),
		handleRecentLoads(svc),
	)

	return s
}

func handleGetDirectory(svc *directory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := svc.Load(ctx)
		if !res.OK() {
			return mcp.NewToolResultError(directory.StatusLoadFailed), nil
		}

		data, _ := json.MarshalIndent(directory.NewDirectoryResponse(res), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleGetUserCard(svc *directory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		if _, ok := args["id"]; !ok {
			return mcp.NewToolResultError("id is required"), nil
		}
		id := req.GetInt("id", 0)

		res := svc.Load(ctx)
		if !res.OK() {
			return mcp.NewToolResultError(directory.StatusLoadFailed), nil
		}

		card, err := res.Card(id)
		if errors.Is(err, directory.ErrCardNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no user with id %d", id)), nil
		}

		data, _ := json.MarshalIndent(card.Payload(), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleRecentLoads(svc *directory.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		recs, err := svc.RecentLoads(ctx, req.GetInt("limit", 20))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list loads: %v", err)), nil
		}

		data, _ := json.MarshalIndent(recs, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
