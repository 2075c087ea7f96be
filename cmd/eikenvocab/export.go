package main

import (
	"fmt"

	"github.com/ngu132/eiken-vocab/storage/filesystem"
	"github.com/ngu132/eiken-vocab/storage/sqlite/zombiezen"
)

func exportCommand(pool *Pool, opts ExportOptions, runName string, ui UI) error {
	src := filesystem.NewVocabStore(opts.From)

	p, err := pool.Open(opts.To)
	if err != nil {
		return err
	}

	if err := zombiezen.CreateSchemas(p, "vocab.sql"); err != nil {
		return fmt.Errorf("failed to create vocab tables: %w", err)
	}

	dst := zombiezen.NewVocabStore(p)

	runs, err := src.Runs()
	if err != nil {
		return err
	}

	count := 0
	for _, run := range runs {
		if runName != "" && run.Name != runName {
			continue
		}

		res, err := src.ReadResult(run.Name)
		if err != nil {
			return fmt.Errorf("failed to read run %s: %w", run.Name, err)
		}

		if err := dst.WriteResult(run, res); err != nil {
			return fmt.Errorf("failed to write run %s: %w", run.Name, err)
		}
		count++
	}

	if runName != "" && count == 0 {
		return fmt.Errorf("run not found: %s", runName)
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d runs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
