package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio-api/internal/apperror"
	"github.com/devfolio/devfolio-api/internal/portfolio"
)

func TestClientLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/b/bin123/latest", r.URL.Path)
		require.Equal(t, "secret-key", r.Header.Get("X-Master-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"record":{"projects":[{"id":"1","title":"t","description":"d","createdAt":"2024-01-02T03:04:05Z"}]},"metadata":{"id":"bin123"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bin123", "secret-key", 5*time.Second)
	doc, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Projects, 1)
	require.Equal(t, "t", doc.Projects[0].Title)

	// collections absent from the stored revision come back empty, not nil
	require.NotNil(t, doc.Codes)
	require.NotNil(t, doc.Users)
	require.Empty(t, doc.Codes)
}

func TestClientLoadUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bin not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bin123", "k", 5*time.Second)
	_, err := c.Load(context.Background())
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)

	// network failure surfaces the same way
	srv.Close()
	_, err = c.Load(context.Background())
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestClientSave(t *testing.T) {
	var saved portfolio.Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/b/bin123", r.URL.Path)
		require.Equal(t, "secret-key", r.Header.Get("X-Master-Key"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
		_, _ = w.Write([]byte(`{"record":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bin123", "secret-key", 5*time.Second)
	err := c.Save(context.Background(), &portfolio.Document{
		Codes: []portfolio.CodeSnippet{{ID: "c1", Title: "t", Code: "x"}},
	})
	require.NoError(t, err)
	require.Len(t, saved.Codes, 1)
	// the whole document travels: missing collections are serialized empty
	require.NotNil(t, saved.Projects)
	require.NotNil(t, saved.Users)
}

func TestClientSaveUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bin123", "bad-key", 5*time.Second)
	err := c.Save(context.Background(), &portfolio.Document{})
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}
