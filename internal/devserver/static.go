package devserver

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrForbidden is returned by Resolve for paths that leave the root.
var ErrForbidden = errors.New("path escapes root")

// contentTypes maps file extensions to Content-Type values.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".ico":  "image/x-icon",
}

const defaultContentType = "application/octet-stream"

// ContentType returns the Content-Type for a file name.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// Resolve maps a URL path to a file under root. "/" resolves to index.html.
// The URL path is joined as-is, so ".." segments can climb out of root;
// those results are rejected with ErrForbidden.
func Resolve(root, urlPath string) (string, error) {
	if urlPath == "" || urlPath == "/" {
		urlPath = "/index.html"
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	full := filepath.Join(absRoot, filepath.FromSlash(urlPath))
	rel, err := filepath.Rel(absRoot, full)
	if err != nil {
		return "", ErrForbidden
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrForbidden
	}
	return full, nil
}

// handleStatic serves files from the configured root.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	path, err := Resolve(s.config.Root, r.URL.Path)
	if err != nil {
		writePlain(w, http.StatusForbidden, "Forbidden")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		writePlain(w, http.StatusNotFound, "Not Found")
		return
	}

	w.Header().Set("Content-Type", ContentType(path))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
