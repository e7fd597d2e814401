// Package mcp exposes the course to AI agents over the Model Context Protocol.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/netcourse/netcourse/internal/chatclient"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/lessonindex"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Searcher finds lessons related to a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]lessonindex.Hit, error)
}

// Server wraps an MCP server that exposes course tools.
type Server struct {
	catalog  *course.Catalog
	asker    chatclient.Asker
	searcher Searcher
	mcp      *server.MCPServer
}

// NewServer creates an MCP server. asker and searcher may be nil, in which
// case ask_tutor and search_lessons are not offered.
func NewServer(catalog *course.Catalog, asker chatclient.Asker, searcher Searcher) *Server {
	s := &Server{
		catalog:  catalog,
		asker:    asker,
		searcher: searcher,
	}

	s.mcp = server.NewMCPServer(
		"netcourse",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listModulesTool, s.handleListModules)
	s.mcp.AddTool(getLessonTool, s.handleGetLesson)
	s.mcp.AddTool(getHintTool, s.handleGetHint)
	if s.asker != nil {
		s.mcp.AddTool(askTutorTool, s.handleAskTutor)
	}
	if s.searcher != nil {
		s.mcp.AddTool(searchLessonsTool, s.handleSearchLessons)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
