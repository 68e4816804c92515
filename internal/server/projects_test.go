package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestProjectsFileServer(t *testing.T) {
	t.Parallel()

	projects := fstest.MapFS{
		"demo-app/index.html":    {Data: []byte("<h1>demo</h1>")},
		"demo-app/css/style.css": {Data: []byte("body{}")},
		"demo-app/.git/config":   {Data: []byte("[core]")},
		"bare-repo/readme.txt":   {Data: []byte("no index here")},
	}
	handler := projectsFileServer(projects)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("serves_files", func(t *testing.T) {
		t.Parallel()

		rec := get("/demo-app/css/style.css")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body{}", rec.Body.String())
	})

	t.Run("serves_repo_root_index", func(t *testing.T) {
		t.Parallel()

		rec := get("/demo-app/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "demo")
	})

	t.Run("missing_file_is_404_not_index_fallback", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotFound, get("/demo-app/ghost.html").Code)
	})

	t.Run("directory_without_index_is_404", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotFound, get("/bare-repo/").Code)
	})

	t.Run("tree_root_is_404", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotFound, get("/").Code)
	})

	t.Run("git_internals_are_hidden", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotFound, get("/demo-app/.git/config").Code)
	})

	t.Run("traversal_is_rejected", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotFound, get("/../etc/passwd").Code)
		assert.Equal(t, http.StatusNotFound, get("/demo-app/../../etc/passwd").Code)
	})
}
