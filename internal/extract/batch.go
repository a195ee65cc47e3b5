package extract

import (
	"context"
	"sync"

	"github.com/wgomg/hunbatz/internal/utils"
)

// LoadAll extracts every source with a bounded worker pool and waits for the
// whole batch. Results come back in input order regardless of which worker
// finished first; each failure stays attached to its source instead of
// aborting the rest.
func LoadAll(
	ctx context.Context,
	extractor Extractor,
	sources []Source,
	workerCount int,
	logger *utils.Logger,
) []Result {
	if workerCount < 1 {
		workerCount = 1
	}

	results := make([]Result, len(sources))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				source := sources[i]

				text, err := extractor.ExtractText(ctx, source.Path)
				if err != nil {
					logger.Error(nil, "Extraction failed for %s: %v", source.Name, err)
					results[i] = Result{
						Name: source.Name,
						Err:  &ExtractionError{Name: source.Name, Err: err},
					}
					continue
				}

				results[i] = Result{Name: source.Name, Text: text}
			}
		}()
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
