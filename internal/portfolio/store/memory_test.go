package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio-api/internal/apperror"
	"github.com/devfolio/devfolio-api/internal/portfolio"
)

func TestMemoryLoadReturnsIsolatedCopies(t *testing.T) {
	m := NewMemory(&portfolio.Document{
		Projects: []portfolio.Project{{ID: "p1", Title: "t", Tags: []string{"go"}}},
	})

	a, err := m.Load(context.Background())
	require.NoError(t, err)
	b, err := m.Load(context.Background())
	require.NoError(t, err)

	a.Projects[0].Title = "changed"
	a.Projects[0].Tags[0] = "changed"
	require.Equal(t, "t", b.Projects[0].Title)
	require.Equal(t, "go", b.Projects[0].Tags[0])
}

func TestMemorySaveOverwritesWholeDocument(t *testing.T) {
	m := NewMemory(&portfolio.Document{
		Codes: []portfolio.CodeSnippet{{ID: "c1", Title: "a", Code: "x"}},
	})

	err := m.Save(context.Background(), &portfolio.Document{
		Users: []portfolio.User{{ID: "u1", Username: "alice"}},
	})
	require.NoError(t, err)

	doc := m.Snapshot()
	require.Empty(t, doc.Codes)
	require.Len(t, doc.Users, 1)
}

// The load hook must fire after the snapshot is taken: a write made inside
// the hook is not visible in the returned document. Two concurrent writers
// rendezvousing in the hook are therefore guaranteed to hold the same base
// document.
func TestMemoryLoadHookRunsAfterSnapshot(t *testing.T) {
	m := NewMemory(&portfolio.Document{
		Projects: []portfolio.Project{{ID: "p1", Title: "t"}},
	})
	m.LoadHook = func() {
		require.NoError(t, m.Save(context.Background(), &portfolio.Document{}))
	}

	doc, err := m.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Projects, 1)
	require.Empty(t, m.Snapshot().Projects)
}

func TestMemoryFailureSwitches(t *testing.T) {
	m := NewMemory(nil)
	m.FailLoads = true
	_, err := m.Load(context.Background())
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)

	m.FailSaves = true
	err = m.Save(context.Background(), &portfolio.Document{})
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}
