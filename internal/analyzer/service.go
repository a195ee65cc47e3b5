package analyzer

import (
	"context"

	"github.com/wgomg/hunbatz/internal/config"
	"github.com/wgomg/hunbatz/internal/extract"
	"github.com/wgomg/hunbatz/internal/utils"
)

// Service bridges acquisition and scoring: it turns extraction results into
// documents, collects per-source failures without aborting the batch, and
// runs the engine over whatever survived.
type Service struct {
	logger    *utils.Logger
	cache     *utils.DocumentCache
	extractor extract.Extractor
	cfg       *config.Config
}

func NewService(
	logger *utils.Logger,
	cache *utils.DocumentCache,
	extractor extract.Extractor,
	cfg *config.Config,
) *Service {
	return &Service{
		logger:    logger,
		cache:     cache,
		extractor: extractor,
		cfg:       cfg,
	}
}

// ReferenceStats describes the reference document in a one-to-many report.
type ReferenceStats struct {
	Name            string
	WordCount       int
	UniqueWordCount int
}

type OneToManyReport struct {
	Reference ReferenceStats
	Results   []PairResult
	Failures  []Failure
}

type MatrixReport struct {
	Matrix   *MatrixResult
	Failures []Failure
}

// documentFromText tokenizes through the cache so repeated content skips the
// tokenizer.
func (s *Service) documentFromText(name, text string) Document {
	key := utils.HashText(text)
	if cached, ok := s.cache.Get(key); ok {
		return Document{
			Name:    name,
			RawText: text,
			Tokens:  cached.Tokens,
			WordSet: cached.WordSet,
		}
	}

	document := NewDocument(name, text)
	s.cache.Add(key, utils.CachedDocument{
		Tokens:  document.Tokens,
		WordSet: document.WordSet,
	})

	return document
}

// CheckAgainstReference extracts the reference and all candidates, then runs
// the one-to-many comparison. Candidate extraction failures are reported per
// source; a reference failure is fatal for the run.
func (s *Service) CheckAgainstReference(
	ctx context.Context,
	reference extract.Source,
	candidates []extract.Source,
	reqID string,
) (*OneToManyReport, error) {
	all := append([]extract.Source{reference}, candidates...)
	extracted := extract.LoadAll(ctx, s.extractor, all, s.cfg.Extract.WorkerCount, s.logger)

	if extracted[0].Err != nil {
		return nil, extracted[0].Err
	}
	refDoc := s.documentFromText(extracted[0].Name, extracted[0].Text)

	documents, failures := s.collectDocuments(extracted[1:])

	if len(documents) < 1 {
		return nil, &InsufficientDocumentsError{
			Mode:      "one-to-many",
			Processed: len(documents),
			Required:  1,
			Failures:  failures,
		}
	}

	s.logger.Info(&reqID, "Comparing %d candidates against %s (%d failed extraction)",
		len(documents), refDoc.Name, len(failures))

	results, err := CompareOneToMany(refDoc, documents)
	if err != nil {
		return nil, err
	}

	return &OneToManyReport{
		Reference: ReferenceStats{
			Name:            refDoc.Name,
			WordCount:       refDoc.WordCount(),
			UniqueWordCount: refDoc.UniqueWordCount(),
		},
		Results:  results,
		Failures: failures,
	}, nil
}

// BuildMatrixFromSources extracts every source and builds the all-pairs
// matrix over the ones that succeeded. If fewer than two remain, the error
// names the sources that were lost.
func (s *Service) BuildMatrixFromSources(
	ctx context.Context,
	sources []extract.Source,
	reqID string,
) (*MatrixReport, error) {
	extracted := extract.LoadAll(ctx, s.extractor, sources, s.cfg.Extract.WorkerCount, s.logger)

	documents, failures := s.collectDocuments(extracted)

	if len(documents) < 2 {
		return nil, &InsufficientDocumentsError{
			Mode:      "matrix",
			Processed: len(documents),
			Required:  2,
			Failures:  failures,
		}
	}

	s.logger.Info(&reqID, "Building similarity matrix over %d documents (%d failed extraction)",
		len(documents), len(failures))

	matrix, err := BuildMatrix(documents)
	if err != nil {
		return nil, err
	}

	return &MatrixReport{Matrix: matrix, Failures: failures}, nil
}

// CompareTexts runs the one-to-many comparison over already-extracted texts,
// as handed in by the HTTP API.
func (s *Service) CompareTexts(
	reference NamedText,
	candidates []NamedText,
	reqID string,
) (*OneToManyReport, error) {
	refDoc := s.documentFromText(reference.Name, reference.Text)

	documents := make([]Document, len(candidates))
	for i, candidate := range candidates {
		documents[i] = s.documentFromText(candidate.Name, candidate.Text)
	}

	s.logger.Debug(&reqID, "Comparing %d candidates against %s", len(documents), refDoc.Name)

	results, err := CompareOneToMany(refDoc, documents)
	if err != nil {
		return nil, err
	}

	return &OneToManyReport{
		Reference: ReferenceStats{
			Name:            refDoc.Name,
			WordCount:       refDoc.WordCount(),
			UniqueWordCount: refDoc.UniqueWordCount(),
		},
		Results: results,
	}, nil
}

// MatrixFromTexts builds the all-pairs matrix over already-extracted texts.
func (s *Service) MatrixFromTexts(documents []NamedText, reqID string) (*MatrixReport, error) {
	docs := make([]Document, len(documents))
	for i, document := range documents {
		docs[i] = s.documentFromText(document.Name, document.Text)
	}

	s.logger.Debug(&reqID, "Building similarity matrix over %d documents", len(docs))

	matrix, err := BuildMatrix(docs)
	if err != nil {
		return nil, err
	}

	return &MatrixReport{Matrix: matrix}, nil
}

func (s *Service) collectDocuments(extracted []extract.Result) ([]Document, []Failure) {
	var documents []Document
	var failures []Failure

	for _, result := range extracted {
		if result.Err != nil {
			failures = append(failures, Failure{
				Name:    result.Name,
				Message: result.Err.Error(),
			})
			continue
		}
		documents = append(documents, s.documentFromText(result.Name, result.Text))
	}

	return documents, failures
}
