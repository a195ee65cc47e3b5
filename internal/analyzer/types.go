package analyzer

import (
	"fmt"
	"strings"
)

// Document is a named unit of input text with its derived token forms.
// Tokens and WordSet are computed once at construction and never mutated.
type Document struct {
	Name    string
	RawText string
	Tokens  []string
	WordSet map[string]bool
}

func NewDocument(name, rawText string) Document {
	tokens, wordSet := Tokenize(rawText)

	return Document{
		Name:    name,
		RawText: rawText,
		Tokens:  tokens,
		WordSet: wordSet,
	}
}

func (d Document) WordCount() int { return len(d.Tokens) }

func (d Document) UniqueWordCount() int { return len(d.WordSet) }

// NamedText is an already-extracted document body, as supplied by an
// acquisition collaborator.
type NamedText struct {
	Name string
	Text string
}

// PairResult is the outcome of scoring one candidate against the reference.
type PairResult struct {
	Name            string
	Score           float64
	Bucket          string
	WordCount       int
	UniqueWordCount int
	CommonWordCount int
}

// DocumentSummary aggregates one document's standing within a matrix run.
type DocumentSummary struct {
	Name              string
	AverageSimilarity float64
	Bucket            string
	WordCount         int
	UniqueWordCount   int
}

// MatrixResult holds the full N x N score table. Names and Matrix keep the
// caller's document order; Documents is sorted by average similarity.
type MatrixResult struct {
	Names     []string
	Matrix    [][]float64
	Documents []DocumentSummary
}

// Failure records one source that could not be processed.
type Failure struct {
	Name    string
	Message string
}

// InsufficientDocumentsError reports an analysis run that ended up with fewer
// usable documents than its mode requires. Failures carries the sources that
// were lost to extraction errors, if any.
type InsufficientDocumentsError struct {
	Mode      string
	Processed int
	Required  int
	Failures  []Failure
}

func (e *InsufficientDocumentsError) Error() string {
	msg := fmt.Sprintf(
		"%s mode requires at least %d documents, got %d",
		e.Mode,
		e.Required,
		e.Processed,
	)

	if len(e.Failures) > 0 {
		names := make([]string, len(e.Failures))
		for i, failure := range e.Failures {
			names[i] = failure.Name
		}
		msg += fmt.Sprintf(" (failed to process: %s)", strings.Join(names, ", "))
	}

	return msg
}
