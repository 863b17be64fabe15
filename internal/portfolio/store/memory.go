package store

import (
	"context"
	"sync"

	"github.com/devfolio/devfolio-api/internal/apperror"
	"github.com/devfolio/devfolio-api/internal/portfolio"
)

// Memory keeps the document in process. It serves two roles: the dev-mode
// fallback when no bin is configured, and the test harness for the
// last-writer-wins race — LoadHook and SaveHook let a test hold both loads
// until each request has read the pre-mutation document.
type Memory struct {
	mu  sync.Mutex
	doc portfolio.Document

	// LoadHook runs after the copy is taken and the lock released, so a
	// rendezvous there guarantees every blocked load already holds the same
	// base document. SaveHook runs before the lock is taken.
	LoadHook func()
	SaveHook func()

	// FailLoads / FailSaves simulate a store outage.
	FailLoads bool
	FailSaves bool
}

// NewMemory seeds the store; a nil seed starts from an empty document.
func NewMemory(seed *portfolio.Document) *Memory {
	m := &Memory{}
	if seed != nil {
		m.doc = *copyDocument(seed)
	}
	m.doc.Normalize()
	return m
}

func (m *Memory) Load(ctx context.Context) (*portfolio.Document, error) {
	m.mu.Lock()
	if m.FailLoads {
		m.mu.Unlock()
		return nil, apperror.StoreUnavailable("load", nil)
	}
	doc := copyDocument(&m.doc)
	m.mu.Unlock()
	if m.LoadHook != nil {
		m.LoadHook()
	}
	return doc, nil
}

func (m *Memory) Save(ctx context.Context, doc *portfolio.Document) error {
	if m.SaveHook != nil {
		m.SaveHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return apperror.StoreUnavailable("save", nil)
	}
	doc.Normalize()
	m.doc = *copyDocument(doc)
	return nil
}

// Snapshot returns a copy of the stored document for assertions.
func (m *Memory) Snapshot() *portfolio.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyDocument(&m.doc)
}

// copyDocument deep-copies the collections so callers never share slices with
// the stored document — each request must own its Document, as it would with
// a real remote store.
func copyDocument(doc *portfolio.Document) *portfolio.Document {
	out := &portfolio.Document{
		Projects: make([]portfolio.Project, len(doc.Projects)),
		Codes:    make([]portfolio.CodeSnippet, len(doc.Codes)),
		Users:    make([]portfolio.User, len(doc.Users)),
	}
	copy(out.Projects, doc.Projects)
	copy(out.Codes, doc.Codes)
	copy(out.Users, doc.Users)
	for i := range out.Projects {
		tags := make([]string, len(doc.Projects[i].Tags))
		copy(tags, doc.Projects[i].Tags)
		out.Projects[i].Tags = tags
	}
	return out
}
