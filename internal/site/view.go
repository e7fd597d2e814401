// Package site serves the course page and the JSON routes behind it.
package site

import (
	"net/url"

	"github.com/netcourse/netcourse/internal/config"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/simcli"
)

// Tab selects what the main panel shows.
type Tab string

const (
	TabLesson   Tab = "lesson"
	TabCLI      Tab = "cli"
	TabTerminal Tab = "terminal"
)

// ThemeCookie remembers the reader's theme between visits.
const ThemeCookie = "netcourse_theme"

// View is the navigation state of one page render.
type View struct {
	Module course.Module
	Lesson course.Lesson
	Ref    course.Ref
	Tab    Tab
	Theme  config.Theme
	// ThemeChanged is set when the query asked for a theme that should be
	// written back to the cookie.
	ThemeChanged bool
	Prev         *course.Ref
	Next         *course.Ref
	Hint         string
}

// ResolveView reads module, lesson, tab and theme query parameters. Unknown
// modules fall back to the first lesson of the course, unknown lessons to the
// first lesson of the module, unknown tabs to the lesson tab. The theme comes
// from the query, then the cookie, then fallback.
func ResolveView(c *course.Catalog, q url.Values, cookieTheme string, fallback config.Theme) (View, error) {
	ref, err := resolveRef(c, q.Get("module"), q.Get("lesson"))
	if err != nil {
		return View{}, err
	}
	m, err := c.Module(ref.ModuleID)
	if err != nil {
		return View{}, err
	}
	l, err := c.Lesson(ref.ModuleID, ref.LessonID)
	if err != nil {
		return View{}, err
	}

	v := View{
		Module: m,
		Lesson: l,
		Ref:    ref,
		Tab:    parseTab(q.Get("tab")),
		Hint:   simcli.Hint(l.Topic),
	}

	switch {
	case validTheme(q.Get("theme")):
		v.Theme = config.Theme(q.Get("theme"))
		v.ThemeChanged = true
	case validTheme(cookieTheme):
		v.Theme = config.Theme(cookieTheme)
	case validTheme(string(fallback)):
		v.Theme = fallback
	default:
		v.Theme = config.ThemeLight
	}

	if prev, ok := c.Prev(ref); ok {
		v.Prev = &prev
	}
	if next, ok := c.Next(ref); ok {
		v.Next = &next
	}
	return v, nil
}

func resolveRef(c *course.Catalog, moduleID, lessonID string) (course.Ref, error) {
	m, err := c.Module(moduleID)
	if err != nil {
		return c.FirstLesson()
	}
	if _, err := c.Lesson(moduleID, lessonID); err == nil {
		return course.Ref{ModuleID: moduleID, LessonID: lessonID}, nil
	}
	return course.Ref{ModuleID: m.ID, LessonID: m.Lessons[0].ID}, nil
}

func parseTab(s string) Tab {
	switch Tab(s) {
	case TabCLI, TabTerminal:
		return Tab(s)
	default:
		return TabLesson
	}
}

func validTheme(s string) bool {
	return config.Theme(s) == config.ThemeLight || config.Theme(s) == config.ThemeDark
}

// OtherTheme is the theme the toggle switches to.
func (v View) OtherTheme() config.Theme {
	if v.Theme == config.ThemeDark {
		return config.ThemeLight
	}
	return config.ThemeDark
}

// Link builds a page URL for ref, keeping the current tab.
func (v View) Link(ref course.Ref) string {
	return PageURL(ref, v.Tab, "")
}

// TabLink builds a page URL for the current lesson on tab t.
func (v View) TabLink(t Tab) string {
	return PageURL(v.Ref, t, "")
}

// ThemeLink builds the toggle URL for the current page.
func (v View) ThemeLink() string {
	return PageURL(v.Ref, v.Tab, v.OtherTheme())
}

// PageURL builds "/?module=..&lesson=..&tab=..[&theme=..]".
func PageURL(ref course.Ref, tab Tab, theme config.Theme) string {
	q := url.Values{}
	q.Set("module", ref.ModuleID)
	q.Set("lesson", ref.LessonID)
	if tab != "" && tab != TabLesson {
		q.Set("tab", string(tab))
	}
	if theme != "" {
		q.Set("theme", string(theme))
	}
	return "/?" + q.Encode()
}
