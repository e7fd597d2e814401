package course

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a module or lesson id is unknown.
var ErrNotFound = errors.New("not found")

// Lesson is one page of course content. Body is Markdown.
type Lesson struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	// Topic selects the hint text shown next to the simulated CLI.
	Topic string `json:"topic" yaml:"topic"`
	Body  string `json:"-" yaml:"-"`
}

// Module groups lessons under a heading.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Lessons []Lesson `json:"lessons"`
}

// Ref addresses one lesson.
type Ref struct {
	ModuleID string `json:"module"`
	LessonID string `json:"lesson"`
}

// Catalog is an ordered, read-only set of modules.
type Catalog struct {
	modules []Module
}

// NewCatalog wraps modules after checking that they are well formed.
func NewCatalog(modules []Module) (*Catalog, error) {
	c := &Catalog{modules: modules}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in networking course.
func Default() *Catalog {
	return &Catalog{modules: builtinModules}
}

// Modules returns all modules in course order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Module looks a module up by id.
func (c *Catalog) Module(id string) (Module, error) {
	for _, m := range c.modules {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("module %q: %w", id, ErrNotFound)
}

// Lesson looks a lesson up by module and lesson id.
func (c *Catalog) Lesson(moduleID, lessonID string) (Lesson, error) {
	m, err := c.Module(moduleID)
	if err != nil {
		return Lesson{}, err
	}
	for _, l := range m.Lessons {
		if l.ID == lessonID {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("lesson %q in module %q: %w", lessonID, moduleID, ErrNotFound)
}

// FirstLesson returns the reference of the course's opening lesson.
func (c *Catalog) FirstLesson() (Ref, error) {
	for _, m := range c.modules {
		if len(m.Lessons) > 0 {
			return Ref{ModuleID: m.ID, LessonID: m.Lessons[0].ID}, nil
		}
	}
	return Ref{}, fmt.Errorf("first lesson: %w", ErrNotFound)
}

// Next returns the lesson after ref in course order, crossing module
// boundaries. ok is false at the end of the course.
func (c *Catalog) Next(ref Ref) (next Ref, ok bool) {
	refs := c.flatten()
	for i, r := range refs {
		if r == ref && i+1 < len(refs) {
			return refs[i+1], true
		}
	}
	return Ref{}, false
}

// Prev returns the lesson before ref in course order.
func (c *Catalog) Prev(ref Ref) (prev Ref, ok bool) {
	refs := c.flatten()
	for i, r := range refs {
		if r == ref && i > 0 {
			return refs[i-1], true
		}
	}
	return Ref{}, false
}

// Count returns the total number of lessons.
func (c *Catalog) Count() int {
	return len(c.flatten())
}

func (c *Catalog) flatten() []Ref {
	var refs []Ref
	for _, m := range c.modules {
		for _, l := range m.Lessons {
			refs = append(refs, Ref{ModuleID: m.ID, LessonID: l.ID})
		}
	}
	return refs
}

// Validate checks that every module and lesson has an id, a title and
// content, and that ids are unique within their scope.
func (c *Catalog) Validate() error {
	if len(c.modules) == 0 {
		return fmt.Errorf("course has no modules")
	}
	moduleIDs := make(map[string]bool)
	for _, m := range c.modules {
		if strings.TrimSpace(m.ID) == "" {
			return fmt.Errorf("module %q has an empty id", m.Title)
		}
		if moduleIDs[m.ID] {
			return fmt.Errorf("duplicate module id %q", m.ID)
		}
		moduleIDs[m.ID] = true
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("module %q has an empty title", m.ID)
		}
		if len(m.Lessons) == 0 {
			return fmt.Errorf("module %q has no lessons", m.ID)
		}

		lessonIDs := make(map[string]bool)
		for _, l := range m.Lessons {
			switch {
			case strings.TrimSpace(l.ID) == "":
				return fmt.Errorf("module %q: lesson %q has an empty id", m.ID, l.Title)
			case lessonIDs[l.ID]:
				return fmt.Errorf("module %q: duplicate lesson id %q", m.ID, l.ID)
			case strings.TrimSpace(l.Title) == "":
				return fmt.Errorf("module %q: lesson %q has an empty title", m.ID, l.ID)
			case strings.TrimSpace(l.Body) == "":
				return fmt.Errorf("module %q: lesson %q has no content", m.ID, l.ID)
			}
			lessonIDs[l.ID] = true
		}
	}
	return nil
}
