package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/netcourse/netcourse/internal/chatclient"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/simcli"
)

func (s *Server) handleListModules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, m := range s.catalog.Modules() {
		fmt.Fprintf(&sb, "## %s (%s)\n", m.Title, m.ID)
		if m.Summary != "" {
			fmt.Fprintf(&sb, "%s\n", m.Summary)
		}
		for _, l := range m.Lessons {
			fmt.Fprintf(&sb, "- %s: %s\n", l.ID, l.Title)
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}

func (s *Server) handleGetLesson(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	moduleID, err := request.RequireString("module")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module"), nil
	}
	lessonID, err := request.RequireString("lesson")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: lesson"), nil
	}

	l, err := s.catalog.Lesson(moduleID, lessonID)
	if errors.Is(err, course.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("No lesson %q in module %q. Use list_modules to see what exists.", lessonID, moduleID)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(l.Body), nil
}

func (s *Server) handleGetHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	return mcp.NewToolResultText(simcli.Hint(topic)), nil
}

func (s *Server) handleAskTutor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil || strings.TrimSpace(question) == "" {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	answer, err := s.asker.Ask(ctx, question, []chatclient.Message{})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("tutor unavailable: %v", err)), nil
	}
	return mcp.NewToolResultText(answer), nil
}

func (s *Server) handleSearchLessons(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	hits, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(hits) == 0 {
		return mcp.NewToolResultText("No results found. The lesson index may be empty. Run `netcourse index` to build it."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d lesson(s):\n", len(hits))
	for _, h := range hits {
		fmt.Fprintf(&sb, "- %s/%s: %s (%.1f%%)\n", h.ModuleID, h.LessonID, h.Title, h.Similarity*100)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
