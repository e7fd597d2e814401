package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listModulesTool = mcp.NewTool("list_modules",
	mcp.WithDescription("List the networking course modules and their lessons, in course order."),
)

var getLessonTool = mcp.NewTool("get_lesson",
	mcp.WithDescription("Get the Markdown text of one lesson."),
	mcp.WithString("module",
		mcp.Required(),
		mcp.Description("Module id, as returned by list_modules"),
	),
	mcp.WithString("lesson",
		mcp.Required(),
		mcp.Description("Lesson id within the module"),
	),
)

var getHintTool = mcp.NewTool("get_hint",
	mcp.WithDescription("Get the practice hint for a lesson topic, suggesting simulated CLI commands to try."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("Lesson topic, e.g. subnetting or dns"),
	),
)

var askTutorTool = mcp.NewTool("ask_tutor",
	mcp.WithDescription("Ask the course tutor (the language-model backend) a networking question."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to ask"),
	),
)

var searchLessonsTool = mcp.NewTool("search_lessons",
	mcp.WithDescription("Find lessons semantically related to a query."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)
