package course

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Modules(), 4)
	assert.Equal(t, 12, c.Count())

	for _, m := range c.Modules() {
		for _, l := range m.Lessons {
			assert.NotEmpty(t, l.Topic, "%s/%s has no topic", m.ID, l.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	m, err := c.Module("addressing")
	require.NoError(t, err)
	assert.Equal(t, "Addressing", m.Title)

	l, err := c.Lesson("addressing", "subnetting")
	require.NoError(t, err)
	assert.Equal(t, "subnetting", l.Topic)
	assert.Contains(t, l.Body, "CIDR")

	_, err = c.Module("nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Lesson("addressing", "nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Lesson("nope", "ipv4")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNavigation(t *testing.T) {
	c := Default()

	first, err := c.FirstLesson()
	require.NoError(t, err)
	assert.Equal(t, Ref{ModuleID: "foundations", LessonID: "what-is-a-network"}, first)

	_, ok := c.Prev(first)
	assert.False(t, ok, "nothing before the first lesson")

	// Crossing a module boundary.
	next, ok := c.Next(Ref{ModuleID: "foundations", LessonID: "tcp-ip-model"})
	require.True(t, ok)
	assert.Equal(t, Ref{ModuleID: "addressing", LessonID: "ipv4"}, next)

	prev, ok := c.Prev(next)
	require.True(t, ok)
	assert.Equal(t, Ref{ModuleID: "foundations", LessonID: "tcp-ip-model"}, prev)

	_, ok = c.Next(Ref{ModuleID: "routing", LessonID: "traceroute"})
	assert.False(t, ok, "nothing after the last lesson")

	_, ok = c.Next(Ref{ModuleID: "missing", LessonID: "x"})
	assert.False(t, ok)
}

func TestValidateRejectsEmptyFields(t *testing.T) {
	lesson := Lesson{ID: "l", Title: "L", Body: "body"}

	tests := []struct {
		name    string
		modules []Module
	}{
		{"no modules", nil},
		{"empty module id", []Module{{Title: "M", Lessons: []Lesson{lesson}}}},
		{"empty module title", []Module{{ID: "m", Lessons: []Lesson{lesson}}}},
		{"no lessons", []Module{{ID: "m", Title: "M"}}},
		{"duplicate module", []Module{
			{ID: "m", Title: "M", Lessons: []Lesson{lesson}},
			{ID: "m", Title: "M2", Lessons: []Lesson{lesson}},
		}},
		{"empty lesson id", []Module{{ID: "m", Title: "M", Lessons: []Lesson{{Title: "L", Body: "b"}}}}},
		{"empty lesson title", []Module{{ID: "m", Title: "M", Lessons: []Lesson{{ID: "l", Body: "b"}}}}},
		{"empty lesson body", []Module{{ID: "m", Title: "M", Lessons: []Lesson{{ID: "l", Title: "L", Body: "  "}}}}},
		{"duplicate lesson", []Module{{ID: "m", Title: "M", Lessons: []Lesson{lesson, lesson}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.modules)
			assert.Error(t, err)
		})
	}
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDirAndMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "routing/bgp.md", `---
module: routing
id: bgp
title: BGP Basics
topic: routing
---
# BGP

Autonomous systems exchange routes.
`)
	writeFile(t, dir, "addressing/ipv4.md", `---
module: addressing
id: ipv4
title: IPv4 (revised)
topic: ip-addressing
---
Revised content.
`)
	writeFile(t, dir, "security/nested/firewalls.md", `---
module: security
module_title: Network Security
id: firewalls
title: Firewalls
topic: firewall
---
Stateful filtering.
`)
	writeFile(t, dir, "notes.txt", "not a lesson")

	files, err := LoadDir(dir, []string{"**/*.md"})
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "addressing/ipv4.md", files[0].Path)

	merged, err := Default().Merge(files)
	require.NoError(t, err)

	replaced, err := merged.Lesson("addressing", "ipv4")
	require.NoError(t, err)
	assert.Equal(t, "IPv4 (revised)", replaced.Title)
	assert.Equal(t, "Revised content.\n", replaced.Body)

	appended, err := merged.Lesson("routing", "bgp")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(appended.Body, "# BGP"))

	security, err := merged.Module("security")
	require.NoError(t, err)
	assert.Equal(t, "Network Security", security.Title)

	// The built-in catalog is untouched.
	orig, err := Default().Lesson("addressing", "ipv4")
	require.NoError(t, err)
	assert.Equal(t, "IPv4 Addresses", orig.Title)
	_, err = Default().Lesson("routing", "bgp")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDirIncludeFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/one.md", "---\nmodule: routing\nid: one\ntitle: One\n---\nbody\n")
	writeFile(t, dir, "b/two.md", "---\nmodule: routing\nid: two\ntitle: Two\n---\nbody\n")

	files, err := LoadDir(dir, []string{"a/*.md"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "one", files[0].Lesson.ID)
}

func TestLoadDirRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"no front matter": "# just markdown\n",
		"unterminated":    "---\nmodule: routing\nid: x\n",
		"missing id":      "---\nmodule: routing\n---\nbody\n",
		"invalid yaml":    "---\nmodule: [routing\n---\nbody\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "lesson.md", content)
			_, err := LoadDir(dir, []string{"*.md"})
			assert.Error(t, err)
		})
	}
}

func TestMergeNewModuleNeedsTitle(t *testing.T) {
	files := []LessonFile{{
		Path:     "x.md",
		ModuleID: "brand-new",
		Lesson:   Lesson{ID: "l", Title: "L", Body: "b"},
	}}
	_, err := Default().Merge(files)
	assert.Error(t, err)
}

func TestRendererProducesHTML(t *testing.T) {
	r := NewRenderer(0)
	l, err := Default().Lesson("foundations", "osi-model")
	require.NoError(t, err)

	html, err := r.Render("foundations", l)
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `<h1 id="the-osi-model">The OSI Model</h1>`)
	assert.Contains(t, out, "<table>")

	again, err := r.Render("foundations", l)
	require.NoError(t, err)
	assert.Equal(t, html, again)
}

func TestRendererRefreshesChangedBody(t *testing.T) {
	r := NewRenderer(0)
	l := Lesson{ID: "l", Title: "L", Body: "first"}

	html, err := r.Render("m", l)
	require.NoError(t, err)
	assert.Contains(t, string(html), "first")

	l.Body = "second"
	html, err = r.Render("m", l)
	require.NoError(t, err)
	assert.Contains(t, string(html), "second")
}

func TestRendererOmitsRawHTML(t *testing.T) {
	r := NewRenderer(0)
	html, err := r.Render("m", Lesson{ID: "x", Title: "X", Body: "<script>alert(1)</script>\n\nafter\n"})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.NotContains(t, string(html), "alert(1)")
	assert.Contains(t, string(html), "<!-- raw HTML omitted -->")
	assert.Contains(t, string(html), "<p>after</p>")
}
