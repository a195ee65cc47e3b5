package analyzer

import (
	"cmp"
	"slices"
)

const (
	BucketLow    = "Low Similarity"
	BucketMedium = "Medium Similarity"
	BucketHigh   = "High Similarity"
)

// Matrix diagonal entries are assigned, never computed.
const selfSimilarity = 100.0

// Similarity computes the Jaccard index of two word sets as a percentage.
// An empty union scores 0 by convention so callers always get a number.
func Similarity(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for word := range a {
		if b[word] {
			intersection++
		}
	}

	// union = |A| + |B| - intersection
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union) * 100.0
}

// Classify maps a score to its reporting bucket. Boundary values belong to
// the higher bucket.
func Classify(score float64) string {
	switch {
	case score >= 60:
		return BucketHigh
	case score >= 30:
		return BucketMedium
	default:
		return BucketLow
	}
}

func commonWordCount(a, b map[string]bool) int {
	count := 0
	for word := range a {
		if b[word] {
			count++
		}
	}
	return count
}

// ComparePair scores one candidate against the reference, with the
// candidate's word statistics attached.
func ComparePair(reference, candidate Document) PairResult {
	score := Similarity(reference.WordSet, candidate.WordSet)

	return PairResult{
		Name:            candidate.Name,
		Score:           score,
		Bucket:          Classify(score),
		WordCount:       candidate.WordCount(),
		UniqueWordCount: candidate.UniqueWordCount(),
		CommonWordCount: commonWordCount(reference.WordSet, candidate.WordSet),
	}
}

// CompareOneToMany scores every candidate against the reference, sorted by
// score descending. The sort is stable so tied scores keep the caller's
// candidate order.
func CompareOneToMany(reference Document, candidates []Document) ([]PairResult, error) {
	if len(candidates) < 1 {
		return nil, &InsufficientDocumentsError{
			Mode:      "one-to-many",
			Processed: len(candidates),
			Required:  1,
		}
	}

	results := make([]PairResult, len(candidates))
	for i, candidate := range candidates {
		results[i] = ComparePair(reference, candidate)
	}

	slices.SortStableFunc(results, func(a, b PairResult) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return results, nil
}

// BuildMatrix computes the all-pairs similarity matrix over at least two
// documents. Each off-diagonal pair is scored once and mirrored; per-document
// averages exclude the diagonal. Summaries come back sorted by average
// similarity descending, stable on ties.
func BuildMatrix(documents []Document) (*MatrixResult, error) {
	if len(documents) < 2 {
		return nil, &InsufficientDocumentsError{
			Mode:      "matrix",
			Processed: len(documents),
			Required:  2,
		}
	}

	n := len(documents)

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = selfSimilarity
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := Similarity(documents[i].WordSet, documents[j].WordSet)
			matrix[i][j] = score
			matrix[j][i] = score
		}
	}

	names := make([]string, n)
	summaries := make([]DocumentSummary, n)
	for i, document := range documents {
		names[i] = document.Name

		sum := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			sum += matrix[i][j]
		}
		average := sum / float64(n-1)

		summaries[i] = DocumentSummary{
			Name:              document.Name,
			AverageSimilarity: average,
			Bucket:            Classify(average),
			WordCount:         document.WordCount(),
			UniqueWordCount:   document.UniqueWordCount(),
		}
	}

	slices.SortStableFunc(summaries, func(a, b DocumentSummary) int {
		return cmp.Compare(b.AverageSimilarity, a.AverageSimilarity)
	})

	return &MatrixResult{
		Names:     names,
		Matrix:    matrix,
		Documents: summaries,
	}, nil
}
