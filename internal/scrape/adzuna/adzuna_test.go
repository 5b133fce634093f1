package adzuna

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_SearchParamsAndMerge(t *testing.T) {
	var paths []string
	var whats []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "id123", q.Get("app_id"))
		assert.Equal(t, "key456", q.Get("app_key"))
		assert.Equal(t, "25", q.Get("results_per_page"))
		whats = append(whats, q.Get("what"))

		_ = json.NewEncoder(w).Encode(searchResponse{Results: []map[string]any{
			{"title": q.Get("what") + " role"},
		}})
	}))
	defer srv.Close()

	c := New(Config{
		AppID: "id123", AppKey: "key456",
		Country: "us", Keywords: []string{"python developer", "data engineer"},
		ResultsPerPage: 25, BaseURL: srv.URL,
	}, nil)

	got, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/jobs/us/search/1", "/jobs/us/search/1"}, paths)
	assert.Equal(t, []string{"python developer", "data engineer"}, whats)
	require.Len(t, got, 2)
	assert.Equal(t, "python developer role", got[0]["title"])
}

func TestFetch_FailingKeywordIsSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("what") == "bad" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []map[string]any{{"title": "ok"}}})
	}))
	defer srv.Close()

	c := New(Config{
		AppID: "a", AppKey: "b",
		Keywords: []string{"bad", "good"}, BaseURL: srv.URL,
	}, nil)

	got, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0]["title"])
}

func TestFetch_MissingCredentialsIsAnError(t *testing.T) {
	c := New(Config{Keywords: []string{"x"}}, nil)

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app_id")
}
