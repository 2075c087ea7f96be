package storage

import (
	"github.com/ngu132/eiken-vocab/count"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

// DocReader defines read operations for annotated-document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID, sentences included
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for annotated-document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Run is the stored metadata of one counting run. IncludeEdges marks
// runs whose phrase table also holds edge-dump events; their phrase
// totals are not comparable with default runs.
type Run struct {
	Name         string `json:"name"`
	IncludeEdges bool   `json:"include_edges"`
}

// VocabReader defines read operations for mined vocabulary storage
type VocabReader interface {
	// Runs returns the metadata of all stored counting runs.
	Runs() ([]Run, error)

	// ReadResult returns the frequency tables of a run by name.
	ReadResult(name string) (count.Result, error)
}

// VocabWriter defines write operations for mined vocabulary storage
type VocabWriter interface {
	// WriteResult persists the frequency tables of a counting run.
	WriteResult(run Run, res count.Result) error
}

// VocabRepository combines read and write operations
type VocabRepository interface {
	VocabReader
	VocabWriter
}
