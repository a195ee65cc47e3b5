package extract

import (
	"context"
	"fmt"
)

// Source names a unit of text to acquire. Path is a filesystem path or a URL
// depending on which extractor handles it.
type Source struct {
	Name string
	Path string
}

// Result carries one source's extracted text, or its failure.
type Result struct {
	Name string
	Text string
	Err  error
}

// Extractor resolves a source into raw text. Implementations own all format
// and transport concerns; downstream analysis only ever sees strings.
type Extractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// ExtractionError marks a per-source acquisition failure. Batches collect
// these instead of aborting on the first one.
type ExtractionError struct {
	Name string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %q: %v", e.Name, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
