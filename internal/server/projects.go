package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// projectsFileServer serves the deployed checkout tree read-only so
// attached repositories get a live preview under /projects/. Unlike an
// SPA server there is no index fallback: a missing file is a 404, and
// anything trying to walk out of the tree (or into .git) is rejected.
func projectsFileServer(projects fs.FS) http.Handler {
	fileServer := http.FileServerFS(projects)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cleaned := path.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			http.NotFound(w, r)
			return
		}
		for _, part := range strings.Split(cleaned, "/") {
			if part == ".git" {
				http.NotFound(w, r)
				return
			}
		}

		// Serve index.html for a repository root, 404 for anything else
		// that is not a real file.
		if cleaned == "." {
			http.NotFound(w, r)
			return
		}
		if info, err := fs.Stat(projects, cleaned); err == nil && info.IsDir() {
			index := path.Join(cleaned, "index.html")
			if _, err := fs.Stat(projects, index); err != nil {
				http.NotFound(w, r)
				return
			}
		}

		fileServer.ServeHTTP(w, r)
	})
}
