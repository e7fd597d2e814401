package site

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/netcourse/netcourse/internal/config"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/lessonindex"
	"github.com/netcourse/netcourse/internal/simcli"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 20
	maxCLILineBytes    = 1 << 10
)

// Searcher finds lessons related to a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]lessonindex.Hit, error)
}

// Options configures a Handler.
type Options struct {
	Catalog      *course.Catalog
	Renderer     *course.Renderer
	TerminalURL  string
	DefaultTheme config.Theme
	// Searcher is optional; the search route is only mounted when set.
	Searcher Searcher
	Logger   *zap.Logger
}

// Handler serves the course page and its JSON routes.
type Handler struct {
	opts Options
	tmpl *template.Template
}

// NewHandler parses the page template.
func NewHandler(opts Options) (*Handler, error) {
	if opts.Catalog == nil {
		opts.Catalog = course.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = course.NewRenderer(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"lessonURL": func(moduleID, lessonID string, tab Tab) string {
			return PageURL(course.Ref{ModuleID: moduleID, LessonID: lessonID}, tab, "")
		},
		"join": strings.Join,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, err
	}
	return &Handler{opts: opts, tmpl: tmpl}, nil
}

// RegisterRoutes mounts the page and the course API onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get("/api/modules", h.handleModules)
	r.Get("/api/modules/{module}/lessons/{lesson}", h.handleLesson)
	r.Get("/api/hints/{topic}", h.handleHint)
	r.Post("/api/cli/run", h.handleCLI)
	if h.opts.Searcher != nil {
		r.Get("/api/lessons/search", h.handleSearch)
	}
}

type pageData struct {
	View          View
	Modules       []course.Module
	LessonHTML    template.HTML
	TerminalURL   string
	Commands      []string
	SearchEnabled bool
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	var cookieTheme string
	if c, err := r.Cookie(ThemeCookie); err == nil {
		cookieTheme = c.Value
	}

	view, err := ResolveView(h.opts.Catalog, r.URL.Query(), cookieTheme, h.opts.DefaultTheme)
	if err != nil {
		h.opts.Logger.Error("resolving page view", zap.Error(err))
		http.Error(w, "course unavailable", http.StatusInternalServerError)
		return
	}

	html, err := h.opts.Renderer.Render(view.Ref.ModuleID, view.Lesson)
	if err != nil {
		h.opts.Logger.Error("rendering lesson", zap.Error(err), zap.String("lesson", view.Ref.LessonID))
		http.Error(w, "lesson unavailable", http.StatusInternalServerError)
		return
	}

	if view.ThemeChanged {
		http.SetCookie(w, &http.Cookie{
			Name:     ThemeCookie,
			Value:    string(view.Theme),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = h.tmpl.Execute(w, pageData{
		View:          view,
		Modules:       h.opts.Catalog.Modules(),
		LessonHTML:    html,
		TerminalURL:   h.opts.TerminalURL,
		Commands:      simcli.Commands(),
		SearchEnabled: h.opts.Searcher != nil,
	})
	if err != nil {
		h.opts.Logger.Error("executing page template", zap.Error(err))
	}
}

func (h *Handler) handleModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"modules": h.opts.Catalog.Modules()})
}

type lessonResponse struct {
	Module string        `json:"module"`
	Lesson course.Lesson `json:"lesson"`
	HTML   string        `json:"html"`
	Hint   string        `json:"hint"`
	Prev   *course.Ref   `json:"prev,omitempty"`
	Next   *course.Ref   `json:"next,omitempty"`
}

func (h *Handler) handleLesson(w http.ResponseWriter, r *http.Request) {
	ref := course.Ref{ModuleID: chi.URLParam(r, "module"), LessonID: chi.URLParam(r, "lesson")}
	l, err := h.opts.Catalog.Lesson(ref.ModuleID, ref.LessonID)
	if errors.Is(err, course.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	html, err := h.opts.Renderer.Render(ref.ModuleID, l)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp := lessonResponse{
		Module: ref.ModuleID,
		Lesson: l,
		HTML:   string(html),
		Hint:   simcli.Hint(l.Topic),
	}
	if prev, ok := h.opts.Catalog.Prev(ref); ok {
		resp.Prev = &prev
	}
	if next, ok := h.opts.Catalog.Next(ref); ok {
		resp.Next = &next
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	writeJSON(w, http.StatusOK, map[string]string{"topic": topic, "hint": simcli.Hint(topic)})
}

type cliRequest struct {
	Line string `json:"line"`
}

func (h *Handler) handleCLI(w http.ResponseWriter, r *http.Request) {
	var req cliRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCLILineBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, simcli.Run(req.Line))
}

type searchResult struct {
	Module     string  `json:"module"`
	Lesson     string  `json:"lesson"`
	Title      string  `json:"title"`
	Similarity float32 `json:"similarity"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	limit := defaultSearchLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxSearchLimit)
	}

	hits, err := h.opts.Searcher.Search(r.Context(), query, limit)
	if err != nil {
		h.opts.Logger.Warn("lesson search failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "search unavailable"})
		return
	}

	results := make([]searchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, searchResult{
			Module:     hit.ModuleID,
			Lesson:     hit.LessonID,
			Title:      hit.Title,
			Similarity: hit.Similarity,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": query, "results": results})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
