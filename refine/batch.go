package refine

import (
	"io"
	"sync"
)

// OpenFunc opens one sample's per-read stream. If the returned reader
// is an io.Closer it is closed after the fold.
type OpenFunc func() (RecordReader, error)

type FoldJob struct {
	Sample string
	Open   OpenFunc
}

type foldResult struct {
	sample string
	agg    *SampleAggregate
	err    error
}

// FoldAll folds every sample's stream, fanned out over numWorkers
// goroutines. Samples share no state, so workers only partition; the
// result maps are joined by the single collecting goroutine. A failed
// sample lands in the failures map and never aborts the batch; an
// empty stream appears in neither map.
func FoldAll(jobs []FoldJob, numWorkers int) (map[string]*SampleAggregate, map[string]error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobCh := make(chan FoldJob)
	resultCh := make(chan foldResult)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				agg, err := foldOne(job)
				resultCh <- foldResult{sample: job.Sample, agg: agg, err: err}
			}
		}()
	}
	go func() {
		for _, job := range jobs {
			jobCh <- job
		}
		close(jobCh)
		wg.Wait()
		close(resultCh)
	}()

	aggregates := make(map[string]*SampleAggregate)
	failures := make(map[string]error)
	for result := range resultCh {
		if result.err != nil {
			failures[result.sample] = result.err
			continue
		}
		if result.agg != nil {
			aggregates[result.sample] = result.agg
		}
	}
	return aggregates, failures
}

func foldOne(job FoldJob) (*SampleAggregate, error) {
	reader, err := job.Open()
	if err != nil {
		return nil, err
	}
	if closer, ok := reader.(io.Closer); ok {
		defer closer.Close()
	}
	return Fold(reader)
}
