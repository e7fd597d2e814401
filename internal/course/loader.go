package course

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of a lesson file.
type frontMatter struct {
	Module        string `yaml:"module"`
	ModuleTitle   string `yaml:"module_title"`
	ModuleSummary string `yaml:"module_summary"`
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Topic         string `yaml:"topic"`
}

// LessonFile is a lesson read from disk together with its placement.
type LessonFile struct {
	Path          string
	ModuleID      string
	ModuleTitle   string
	ModuleSummary string
	Lesson        Lesson
}

// LoadDir reads every file under dir whose slash-separated relative path
// matches one of the include globs (doublestar syntax, so ** crosses
// directories). Files are returned in lexical path order.
func LoadDir(dir string, include []string) ([]LessonFile, error) {
	fsys := os.DirFS(dir)
	var files []LessonFile

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesAny(include, path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		lf, err := parseLessonFile(path, data)
		if err != nil {
			return err
		}
		files = append(files, lf)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}
	return files, nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(filepath.ToSlash(pattern), path); err == nil && ok {
			return true
		}
	}
	return false
}

// parseLessonFile splits a "---" delimited YAML header from the Markdown body.
func parseLessonFile(path string, data []byte) (LessonFile, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, []byte("---\n")) {
		return LessonFile{}, fmt.Errorf("%s: missing front matter", path)
	}
	rest := data[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return LessonFile{}, fmt.Errorf("%s: unterminated front matter", path)
	}

	var fm frontMatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return LessonFile{}, fmt.Errorf("%s: parsing front matter: %w", path, err)
	}

	body := rest[end+len("\n---"):]
	body = bytes.TrimPrefix(body, []byte("\n"))

	if fm.Module == "" || fm.ID == "" {
		return LessonFile{}, fmt.Errorf("%s: front matter needs module and id", path)
	}
	title := fm.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return LessonFile{
		Path:          path,
		ModuleID:      fm.Module,
		ModuleTitle:   fm.ModuleTitle,
		ModuleSummary: fm.ModuleSummary,
		Lesson: Lesson{
			ID:    fm.ID,
			Title: title,
			Topic: fm.Topic,
			Body:  string(body),
		},
	}, nil
}

// Merge overlays files on top of the catalog and returns a new catalog.
// A file whose module and id match an existing lesson replaces it; other
// files are appended to their module, and unknown modules are appended to
// the course in file order.
func (c *Catalog) Merge(files []LessonFile) (*Catalog, error) {
	modules := make([]Module, len(c.modules))
	for i, m := range c.modules {
		m.Lessons = append([]Lesson(nil), m.Lessons...)
		modules[i] = m
	}

	index := make(map[string]int, len(modules))
	for i, m := range modules {
		index[m.ID] = i
	}

	for _, f := range files {
		mi, ok := index[f.ModuleID]
		if !ok {
			if f.ModuleTitle == "" {
				return nil, fmt.Errorf("%s: new module %q needs module_title", f.Path, f.ModuleID)
			}
			modules = append(modules, Module{ID: f.ModuleID, Title: f.ModuleTitle, Summary: f.ModuleSummary})
			mi = len(modules) - 1
			index[f.ModuleID] = mi
		}

		m := &modules[mi]
		replaced := false
		for li := range m.Lessons {
			if m.Lessons[li].ID == f.Lesson.ID {
				m.Lessons[li] = f.Lesson
				replaced = true
				break
			}
		}
		if !replaced {
			m.Lessons = append(m.Lessons, f.Lesson)
		}
	}

	return NewCatalog(modules)
}
