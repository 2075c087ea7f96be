package main

import (
	"fmt"

	"github.com/ngu132/eiken-vocab/storage/filesystem"
	"github.com/ngu132/eiken-vocab/storage/sqlite/zombiezen"

	"github.com/gosuri/uiprogress"
)

func importCommand(pool *Pool, opts ImportOptions, ui UI) error {
	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	p, err := pool.Open(opts.To)
	if err != nil {
		return err
	}

	if err := zombiezen.CreateSchemas(p, "docs.sql"); err != nil {
		return fmt.Errorf("failed to create docs tables: %w", err)
	}

	dst := zombiezen.NewDocStore(p)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
