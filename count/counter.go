package count

import (
	"errors"
	"fmt"

	"github.com/ngu132/eiken-vocab/colloc"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

// Counter folds sentences into a Result. It is not safe for
// concurrent use; the parallel scan gives each worker its own Counter
// and merges afterwards.
type Counter struct {
	res Result

	includeEdges bool
	strict       bool
}

func NewCounter(includeEdges, strict bool) *Counter {
	return &Counter{
		res:          NewResult(),
		includeEdges: includeEdges,
		strict:       strict,
	}
}

// Sentence runs all extractors over one annotated sentence and folds
// their events. A sentence with malformed head links is skipped and
// counted separately; in strict mode it aborts the fold instead.
func (c *Counter) Sentence(s sent.Sentence) error {
	tr, err := sent.NewTree(s)
	if err != nil {
		if c.strict {
			return fmt.Errorf("sentence %d of doc %d: %w", s.Id, s.DocId, err)
		}
		if errors.Is(err, sent.ErrMalformed) {
			c.res.Skipped++
			return nil
		}
		return err
	}

	for _, w := range colloc.Unigrams(tr) {
		c.res.Unigram.Add(w)
	}

	for _, p := range colloc.Bundles(tr) {
		c.res.Phrase.Add(p)
	}

	if c.includeEdges {
		for _, e := range colloc.Edges(tr) {
			c.res.Phrase.Add(e)
		}
	}

	return nil
}

// Doc folds every sentence of the doc.
func (c *Counter) Doc(d sent.Doc) error {
	for _, s := range d.Sentences {
		if err := c.Sentence(s); err != nil {
			return err
		}
	}
	return nil
}

// Result returns the tables accumulated so far.
func (c *Counter) Result() Result {
	return c.res
}
