// Package annotate defines the capability handle for the external
// linguistic analyzer. The engine never tokenizes, tags or parses
// text itself; it consumes sentences that arrive fully annotated.
package annotate

import (
	sent "github.com/ngu132/eiken-vocab/sentence"
)

// Annotator turns raw texts into annotated sentences. The result has
// one entry per input text, in input order; a text may segment into
// several sentences.
//
// Implementations are expected to be heavyweight handles (a loaded
// model, a connection to a tagging server) created once and reused
// across batches.
type Annotator interface {
	Annotate(texts []string) ([][]sent.Sentence, error)
}

// Func adapts a function to the Annotator interface.
type Func func(texts []string) ([][]sent.Sentence, error)

func (f Func) Annotate(texts []string) ([][]sent.Sentence, error) {
	return f(texts)
}
