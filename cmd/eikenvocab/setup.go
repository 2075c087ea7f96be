package main

import (
	"fmt"
	"os"

	"github.com/ngu132/eiken-vocab/storage"
	"github.com/ngu132/eiken-vocab/storage/filesystem"
	"github.com/ngu132/eiken-vocab/storage/sqlite/zombiezen"
)

// NewDocRepository selects the backend by path: a directory is a
// filesystem store of JSON docs, anything else a SQLite file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

func NewVocabRepository(p *Pool, path string) (storage.VocabRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewVocabStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "vocab.sql"); err != nil {
		return nil, fmt.Errorf("failed to create vocab tables: %w", err)
	}
	return zombiezen.NewVocabStore(pool), nil
}
