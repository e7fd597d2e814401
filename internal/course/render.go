package course

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts lesson Markdown to HTML and keeps the results in memory.
type Renderer struct {
	md    goldmark.Markdown
	cache *cache.Cache
}

// NewRenderer returns a renderer whose cached pages expire after ttl.
// A ttl of zero caches for the life of the process.
func NewRenderer(ttl time.Duration) *Renderer {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = 2 * ttl
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		cache: cache.New(expiration, cleanup),
	}
}

// Render returns the HTML for a lesson. Raw HTML in lesson sources is
// omitted by goldmark's default renderer.
func (r *Renderer) Render(moduleID string, l Lesson) (template.HTML, error) {
	key := moduleID + "/" + l.ID
	if cached, ok := r.cache.Get(key); ok {
		if entry := cached.(renderedLesson); entry.source == l.Body {
			return entry.html, nil
		}
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(l.Body), &buf); err != nil {
		return "", fmt.Errorf("rendering lesson %s: %w", key, err)
	}
	out := template.HTML(buf.String())
	r.cache.SetDefault(key, renderedLesson{source: l.Body, html: out})
	return out, nil
}

type renderedLesson struct {
	source string
	html   template.HTML
}
