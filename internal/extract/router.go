package extract

import (
	"context"
	"strings"
)

// Router dispatches each source to the file or HTTP extractor based on its
// path, so one batch can mix local files and URLs.
type Router struct {
	file *FileExtractor
	http *HTTPExtractor
}

func NewRouter(file *FileExtractor, http *HTTPExtractor) *Router {
	return &Router{file: file, http: http}
}

func (r *Router) ExtractText(ctx context.Context, path string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return r.http.ExtractText(ctx, path)
	}
	return r.file.ExtractText(ctx, path)
}
