package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves the single-page frontend from a static directory,
// falling back to index.html for client-side routes. Without a static
// directory it answers with a liveness payload instead.
type SPAHandler struct {
	staticDir string
}

// NewSPAHandler creates a new SPA handler
func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

// ServeHTTP handles every request no other route claimed
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.staticDir != "" {
		// Serve the asset if it exists, otherwise hand the path to the
		// SPA router via index.html.
		requested := filepath.Join(h.staticDir, filepath.Clean("/"+strings.TrimPrefix(r.URL.Path, "/")))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		index := filepath.Join(h.staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "API online 🚀"})
}
