package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/hunbatz/internal/config"
	"github.com/wgomg/hunbatz/internal/extract"
	"github.com/wgomg/hunbatz/internal/utils"
)

// stubExtractor resolves paths from a fixed map and fails everything else.
type stubExtractor struct {
	texts map[string]string
}

func (s *stubExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	text, ok := s.texts[path]
	if !ok {
		return "", errors.New("no such source")
	}
	return text, nil
}

func newTestService(texts map[string]string) *Service {
	cfg := &config.Config{
		Extract: config.ExtractConfig{WorkerCount: 2, MaxFileSizeBytes: 1 << 20},
	}
	return NewService(utils.NewDiscardLogger(), utils.NewDocumentCache(), &stubExtractor{texts: texts}, cfg)
}

func TestCheckAgainstReference(t *testing.T) {
	service := newTestService(map[string]string{
		"ref.txt":  "a b c d e",
		"good.txt": "a b c d",
		"far.txt":  "x y z",
	})

	report, err := service.CheckAgainstReference(
		context.Background(),
		extract.Source{Name: "ref.txt", Path: "ref.txt"},
		[]extract.Source{
			{Name: "far.txt", Path: "far.txt"},
			{Name: "good.txt", Path: "good.txt"},
		},
		"test",
	)
	require.NoError(t, err)

	assert.Equal(t, "ref.txt", report.Reference.Name)
	assert.Equal(t, 5, report.Reference.WordCount)
	assert.Empty(t, report.Failures)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "good.txt", report.Results[0].Name)
	assert.InDelta(t, 80.0, report.Results[0].Score, 1e-9)
	assert.Equal(t, "far.txt", report.Results[1].Name)
	assert.InDelta(t, 0.0, report.Results[1].Score, 1e-9)
}

func TestCheckAgainstReferenceCollectsFailures(t *testing.T) {
	service := newTestService(map[string]string{
		"ref.txt":  "a b c",
		"good.txt": "a b",
	})

	report, err := service.CheckAgainstReference(
		context.Background(),
		extract.Source{Name: "ref.txt", Path: "ref.txt"},
		[]extract.Source{
			{Name: "good.txt", Path: "good.txt"},
			{Name: "missing.txt", Path: "missing.txt"},
		},
		"test",
	)
	require.NoError(t, err)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "missing.txt", report.Failures[0].Name)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "good.txt", report.Results[0].Name)
}

func TestCheckAgainstReferenceFailingReference(t *testing.T) {
	service := newTestService(map[string]string{"cand.txt": "a b"})

	_, err := service.CheckAgainstReference(
		context.Background(),
		extract.Source{Name: "missing.txt", Path: "missing.txt"},
		[]extract.Source{{Name: "cand.txt", Path: "cand.txt"}},
		"test",
	)

	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "missing.txt", extractionErr.Name)
}

func TestCheckAgainstReferenceAllCandidatesFail(t *testing.T) {
	service := newTestService(map[string]string{"ref.txt": "a b c"})

	_, err := service.CheckAgainstReference(
		context.Background(),
		extract.Source{Name: "ref.txt", Path: "ref.txt"},
		[]extract.Source{{Name: "gone.txt", Path: "gone.txt"}},
		"test",
	)

	var insufficient *InsufficientDocumentsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Processed)
	require.Len(t, insufficient.Failures, 1)
	assert.Equal(t, "gone.txt", insufficient.Failures[0].Name)
}

func TestBuildMatrixFromSources(t *testing.T) {
	service := newTestService(map[string]string{
		"one.txt":   "a b c",
		"two.txt":   "a b d",
		"three.txt": "x y z",
	})

	report, err := service.BuildMatrixFromSources(
		context.Background(),
		[]extract.Source{
			{Name: "one.txt", Path: "one.txt"},
			{Name: "two.txt", Path: "two.txt"},
			{Name: "three.txt", Path: "three.txt"},
		},
		"test",
	)
	require.NoError(t, err)

	assert.Empty(t, report.Failures)
	assert.Equal(t, []string{"one.txt", "two.txt", "three.txt"}, report.Matrix.Names)
	assert.InDelta(t, 50.0, report.Matrix.Matrix[0][1], 1e-9)
}

func TestBuildMatrixFromSourcesTooFewUsable(t *testing.T) {
	service := newTestService(map[string]string{"one.txt": "a b c"})

	_, err := service.BuildMatrixFromSources(
		context.Background(),
		[]extract.Source{
			{Name: "one.txt", Path: "one.txt"},
			{Name: "broken.txt", Path: "broken.txt"},
		},
		"test",
	)

	var insufficient *InsufficientDocumentsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "matrix", insufficient.Mode)
	assert.Equal(t, 1, insufficient.Processed)
	require.Len(t, insufficient.Failures, 1)
	assert.Equal(t, "broken.txt", insufficient.Failures[0].Name)
	assert.Contains(t, insufficient.Error(), "broken.txt")
}

func TestCompareTextsUsesCache(t *testing.T) {
	cache := utils.NewDocumentCache()
	cfg := &config.Config{Extract: config.ExtractConfig{WorkerCount: 1}}
	service := NewService(utils.NewDiscardLogger(), cache, &stubExtractor{}, cfg)

	reference := NamedText{Name: "ref", Text: "a b c"}
	candidates := []NamedText{{Name: "cand", Text: "a b c"}}

	report, err := service.CompareTexts(reference, candidates, "test")
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.InDelta(t, 100.0, report.Results[0].Score, 1e-9)

	// reference and candidate share identical text, so the second
	// tokenization is a cache hit
	assert.Equal(t, 1, cache.Size())
	assert.Greater(t, cache.HitRate(), 0.0)
}

func TestMatrixFromTextsRequiresTwo(t *testing.T) {
	service := newTestService(nil)

	_, err := service.MatrixFromTexts([]NamedText{{Name: "solo", Text: "a"}}, "test")

	var insufficient *InsufficientDocumentsError
	require.ErrorAs(t, err, &insufficient)
}
