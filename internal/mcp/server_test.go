package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/netcourse/netcourse/internal/chatclient"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/lessonindex"
	"github.com/netcourse/netcourse/internal/simcli"
)

type fakeAsker struct {
	answer  string
	err     error
	history []chatclient.Message
}

func (f *fakeAsker) Ask(_ context.Context, question string, history []chatclient.Message) (string, error) {
	f.history = history
	if f.err != nil {
		return "", f.err
	}
	return f.answer + question, nil
}

type fakeSearcher struct {
	hits []lessonindex.Hit
	err  error
}

func (f *fakeSearcher) Search(_ context.Context, _ string, limit int) ([]lessonindex.Hit, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.hits) {
		return f.hits[:limit], nil
	}
	return f.hits, nil
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	switch c := result.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("unexpected content type %T", c)
		return ""
	}
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{listModulesTool, "list_modules"},
		{getLessonTool, "get_lesson"},
		{getHintTool, "get_hint"},
		{askTutorTool, "ask_tutor"},
		{searchLessonsTool, "search_lessons"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := NewServer(course.Default(), nil, nil)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleListModules(t *testing.T) {
	srv := NewServer(course.Default(), nil, nil)
	result, err := srv.handleListModules(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	for _, want := range []string{"(foundations)", "- subnetting: Subnetting and CIDR", "(routing)"} {
		if !strings.Contains(text, want) {
			t.Errorf("list_modules output missing %q:\n%s", want, text)
		}
	}
}

func TestHandleGetLesson(t *testing.T) {
	srv := NewServer(course.Default(), nil, nil)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		result, err := srv.handleGetLesson(ctx, call(map[string]any{"module": "transport", "lesson": "dns"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		want, _ := course.Default().Lesson("transport", "dns")
		if got := resultText(t, result); got != want.Body {
			t.Errorf("lesson body mismatch")
		}
	})

	t.Run("unknown lesson", func(t *testing.T) {
		result, err := srv.handleGetLesson(ctx, call(map[string]any{"module": "transport", "lesson": "quic"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected tool error for unknown lesson")
		}
	})

	t.Run("missing module", func(t *testing.T) {
		result, err := srv.handleGetLesson(ctx, call(map[string]any{"lesson": "dns"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected tool error for missing module")
		}
	})
}

func TestHandleGetHint(t *testing.T) {
	srv := NewServer(course.Default(), nil, nil)
	result, err := srv.handleGetHint(context.Background(), call(map[string]any{"topic": "arp"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, result); got != simcli.Hint("arp") {
		t.Errorf("hint = %q", got)
	}
}

func TestHandleAskTutor(t *testing.T) {
	ctx := context.Background()

	t.Run("answer", func(t *testing.T) {
		asker := &fakeAsker{answer: "A: "}
		srv := NewServer(course.Default(), asker, nil)
		result, err := srv.handleAskTutor(ctx, call(map[string]any{"question": "what is TTL?"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resultText(t, result); got != "A: what is TTL?" {
			t.Errorf("answer = %q", got)
		}
		if asker.history == nil || len(asker.history) != 0 {
			t.Errorf("expected empty non-nil history, got %#v", asker.history)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := NewServer(course.Default(), &fakeAsker{err: &chatclient.BackendUnreachableError{Message: chatclient.GenericErrorMessage}}, nil)
		result, err := srv.handleAskTutor(ctx, call(map[string]any{"question": "hello"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected tool error")
		}
		if got := resultText(t, result); !strings.Contains(got, chatclient.GenericErrorMessage) {
			t.Errorf("error text = %q", got)
		}
	})

	t.Run("blank question", func(t *testing.T) {
		srv := NewServer(course.Default(), &fakeAsker{}, nil)
		result, _ := srv.handleAskTutor(ctx, call(map[string]any{"question": "  "}))
		if !result.IsError {
			t.Error("expected tool error for blank question")
		}
	})
}

func TestHandleSearchLessons(t *testing.T) {
	ctx := context.Background()
	searcher := &fakeSearcher{hits: []lessonindex.Hit{
		{ModuleID: "addressing", LessonID: "subnetting", Title: "Subnetting and CIDR", Similarity: 0.91},
		{ModuleID: "addressing", LessonID: "ipv4", Title: "IPv4 Addresses", Similarity: 0.75},
	}}
	srv := NewServer(course.Default(), nil, searcher)

	result, err := srv.handleSearchLessons(ctx, call(map[string]any{"query": "mask", "limit": float64(1)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "addressing/subnetting") || strings.Contains(text, "ipv4") {
		t.Errorf("unexpected search output:\n%s", text)
	}

	empty := NewServer(course.Default(), nil, &fakeSearcher{})
	result, _ = empty.handleSearchLessons(ctx, call(map[string]any{"query": "x"}))
	if result.IsError || !strings.Contains(resultText(t, result), "netcourse index") {
		t.Error("expected a no-results hint")
	}

	failing := NewServer(course.Default(), nil, &fakeSearcher{err: errors.New("index offline")})
	result, _ = failing.handleSearchLessons(ctx, call(map[string]any{"query": "x"}))
	if !result.IsError {
		t.Error("expected tool error when search fails")
	}
}
