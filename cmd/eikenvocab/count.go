package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ngu132/eiken-vocab/annotate"
	"github.com/ngu132/eiken-vocab/annotate/shallow"
	"github.com/ngu132/eiken-vocab/annotate/spacyd"
	"github.com/ngu132/eiken-vocab/count"
	"github.com/ngu132/eiken-vocab/render"
	"github.com/ngu132/eiken-vocab/storage"

	"github.com/gosuri/uiprogress"
)

func countCommand(pool *Pool, opts CountOptions, textPath string, ui UI) error {
	var res count.Result
	var err error

	if textPath != "" {
		res, err = countTexts(opts, textPath)
	} else {
		res, err = countDocs(pool, opts)
	}
	if err != nil {
		return err
	}

	if opts.Save != "" {
		repo, err := NewVocabRepository(pool, opts.VocabPath)
		if err != nil {
			return err
		}

		run := storage.Run{Name: opts.Save, IncludeEdges: opts.Edges}
		if err := repo.WriteResult(run, res); err != nil {
			return fmt.Errorf("failed to save run %s: %w", opts.Save, err)
		}
		fmt.Fprintf(ui.Out, "Saved run %s\n", opts.Save)
	}

	var r render.Renderer
	if opts.Format == "json" {
		r = render.NewJSONRenderer(ui.Out)
	} else {
		tr := render.NewTextRenderer(ui.Out)
		tr.HasColor = !opts.NoColor
		tr.Limit = opts.Limit
		r = tr
	}

	r.Result(res)
	return nil
}

// countTexts annotates raw texts, then counts.
func countTexts(opts CountOptions, textPath string) (count.Result, error) {
	texts, err := readTexts(textPath)
	if err != nil {
		return count.Result{}, err
	}

	var an annotate.Annotator
	if opts.Annotator == "shallow" {
		an, err = shallow.New()
		if err != nil {
			return count.Result{}, err
		}
	} else {
		an = spacyd.New(opts.Annotator)
	}

	return count.Collocations(texts, an, count.Options{
		BatchSize:    opts.Batch,
		NProcess:     opts.NProc,
		IncludeEdges: opts.Edges,
		Strict:       opts.Strict,
	})
}

// countDocs counts already-annotated docs from a repository.
func countDocs(pool *Pool, opts CountOptions) (count.Result, error) {
	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return count.Result{}, err
	}

	docs, err := repo.List()
	if err != nil {
		return count.Result{}, err
	}

	c := count.NewCounter(opts.Edges, opts.Strict)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	for _, meta := range docs {
		doc, err := repo.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return count.Result{}, fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		if err := c.Doc(doc); err != nil {
			uiprogress.Stop()
			return count.Result{}, err
		}
		bar.Incr()
	}
	uiprogress.Stop()

	return c.Result(), nil
}

var paraEnd = regexp.MustCompile(`\n\s*\n`)

// splitPara is a paragraph splitter for bufio.Scanner.
func splitPara(data []byte, atEOF bool) (advance int, token []byte, err error) {
	loc := paraEnd.FindIndex(data)
	if loc != nil {
		advance = loc[1]
		token = data[:loc[0]]
	} else if atEOF {
		advance = len(data)
		token = data
	}
	return
}

// readTexts reads a corpus file as blank-line separated paragraphs,
// one text each.
func readTexts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var texts []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	scanner.Split(splitPara)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}

	return texts, scanner.Err()
}
