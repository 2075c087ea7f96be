package count

import (
	"sync"

	"github.com/ngu132/eiken-vocab/annotate"
)

const DefaultBatchSize = 256

// Options configures a corpus scan.
type Options struct {
	// BatchSize is the number of texts handed to the annotator per
	// call. Defaults to DefaultBatchSize.
	BatchSize int

	// NProcess is the number of parallel scan workers. Defaults to 1.
	NProcess int

	// IncludeEdges also folds the diagnostic edge dump into the
	// phrase table. This changes the phrase total; results are not
	// comparable with default runs.
	IncludeEdges bool

	// Strict aborts the whole scan on the first malformed sentence
	// instead of skipping it.
	Strict bool
}

// Collocations annotates texts in batches and folds every sentence
// into a unigram table and a phrase table.
//
// With NProcess > 1 each worker annotates and counts into private
// tables, and a single reduction merges them at the end. No partial
// tables of a failed run are ever merged.
func Collocations(texts []string, an annotate.Annotator, opts Options) (Result, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.NProcess <= 0 {
		opts.NProcess = 1
	}

	if len(texts) == 0 {
		return NewResult(), nil
	}

	if opts.NProcess == 1 {
		c := NewCounter(opts.IncludeEdges, opts.Strict)
		for start := 0; start < len(texts); start += opts.BatchSize {
			end := min(start+opts.BatchSize, len(texts))
			if err := countBatch(texts[start:end], an, c); err != nil {
				return NewResult(), err
			}
		}
		return c.Result(), nil
	}

	batches := make(chan []string, opts.NProcess)

	counters := make([]*Counter, opts.NProcess)
	errs := make([]error, opts.NProcess)

	var worker sync.WaitGroup
	worker.Add(opts.NProcess)
	for i := 0; i < opts.NProcess; i++ {
		counters[i] = NewCounter(opts.IncludeEdges, opts.Strict)

		go func(c *Counter, errSlot *error) {
			defer worker.Done()
			for batch := range batches {
				if *errSlot != nil {
					// drain remaining batches after a failure
					continue
				}
				*errSlot = countBatch(batch, an, c)
			}
		}(counters[i], &errs[i])
	}

	for start := 0; start < len(texts); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(texts))
		batches <- texts[start:end]
	}
	close(batches)
	worker.Wait()

	for _, err := range errs {
		if err != nil {
			return NewResult(), err
		}
	}

	res := NewResult()
	for _, c := range counters {
		res.Merge(c.Result())
	}
	return res, nil
}

func countBatch(batch []string, an annotate.Annotator, c *Counter) error {
	docs, err := an.Annotate(batch)
	if err != nil {
		return err
	}

	for _, sentences := range docs {
		for _, s := range sentences {
			if err := c.Sentence(s); err != nil {
				return err
			}
		}
	}

	return nil
}
