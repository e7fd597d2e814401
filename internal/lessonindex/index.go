// Package lessonindex keeps an embedding index of course lessons for
// semantic search.
package lessonindex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	chromem "github.com/philippgille/chromem-go"

	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/embeddings"
	"github.com/netcourse/netcourse/internal/progress"
)

const (
	collectionName = "lessons"
	indexFile      = "lessons.gob.gz"
)

// ErrNoIndex is returned by Load when dir holds no saved index.
var ErrNoIndex = errors.New("no lesson index found")

// Hit is one search result.
type Hit struct {
	ModuleID   string
	LessonID   string
	Title      string
	Similarity float32
}

// Index stores one document per lesson in a chromem collection.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedFunc  chromem.EmbeddingFunc
}

// New creates an empty in-memory index.
func New(embedder embeddings.Embedder) (*Index, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &Index{db: db, collection: col, embedFunc: ef}, nil
}

// Build replaces the index contents with every lesson in c. reporter may be nil.
func (x *Index) Build(ctx context.Context, c *course.Catalog, reporter progress.Reporter) error {
	if err := x.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("reset collection: %w", err)
	}
	col, err := x.db.GetOrCreateCollection(collectionName, nil, x.embedFunc)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	x.collection = col

	if reporter != nil {
		reporter.Start(c.Count())
		defer reporter.Finish()
	}

	n := 0
	for _, m := range c.Modules() {
		for _, l := range m.Lessons {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc := chromem.Document{
				ID:      documentID(m.ID, l.ID),
				Content: documentText(m, l),
				Metadata: map[string]string{
					"module": m.ID,
					"lesson": l.ID,
					"title":  l.Title,
					"topic":  l.Topic,
				},
			}
			if err := col.AddDocument(ctx, doc); err != nil {
				return fmt.Errorf("embedding %s: %w", doc.ID, err)
			}
			n++
			if reporter != nil {
				reporter.Update(n, doc.ID)
			}
		}
	}
	return nil
}

func documentID(moduleID, lessonID string) string {
	return moduleID + "/" + lessonID
}

func documentText(m course.Module, l course.Lesson) string {
	return m.Title + ": " + l.Title + "\n\n" + l.Body
}

// Search returns up to limit lessons ordered by similarity to query.
func (x *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 5
	}
	// chromem-go requires nResults <= collection size.
	count := x.collection.Count()
	if count == 0 {
		return nil, nil
	}
	limit = min(limit, count)

	results, err := x.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	hits := make([]Hit, len(results))
	for i, r := range results {
		hits[i] = Hit{
			ModuleID:   r.Metadata["module"],
			LessonID:   r.Metadata["lesson"],
			Title:      r.Metadata["title"],
			Similarity: r.Similarity,
		}
	}
	return hits, nil
}

// Count returns the number of indexed lessons.
func (x *Index) Count() int {
	return x.collection.Count()
}

// Persist writes the index to dir, creating it if needed.
func (x *Index) Persist(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	return x.db.ExportToFile(filepath.Join(dir, indexFile), true, "")
}

// Load replaces the index contents with the copy saved in dir.
func (x *Index) Load(dir string) error {
	path := filepath.Join(dir, indexFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w in %s", ErrNoIndex, dir)
	}
	if err := x.db.ImportFromFile(path, ""); err != nil {
		return fmt.Errorf("import from file: %w", err)
	}

	col := x.db.GetCollection(collectionName, x.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	x.collection = col
	return nil
}
