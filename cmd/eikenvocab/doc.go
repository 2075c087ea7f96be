package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ngu132/eiken-vocab/render"
	"github.com/ngu132/eiken-vocab/stat"
)

func docCommand(pool *Pool, opts DocOptions, first string, ui UI) error {
	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	if first == "" {
		docs, err := repo.List()
		if err != nil {
			return err
		}

		for _, doc := range docs {
			fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
		}

		return nil
	}

	docId, err := strconv.Atoi(first)
	if err != nil {
		return fmt.Errorf("doc id: %w", err)
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	shown := 0
	for i, sentence := range doc.Sentences {
		if i < opts.Start {
			continue
		}
		if opts.Count >= 0 && shown >= opts.Count {
			break
		}

		prefix := fmt.Sprintf("✍  %d-%d ", docId, i)
		r.Sentence(sentence.Tokens, prefix)
		shown++
	}

	return nil
}

func sentenceCommand(pool *Pool, opts SentenceOptions, docId, sentId int, ui UI) error {
	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
	}

	s := doc.Sentences[sentId].Tokens
	r := render.NewTextRenderer(ui.Out)
	prefix := fmt.Sprintf("✍  %d-%d ", docId, sentId)
	r.Sentence(s, prefix)
	fmt.Fprintln(ui.Out)

	offVal := 0
	if opts.Offset != nil {
		offVal = *opts.Offset
	}

	if offVal > len(s) {
		return fmt.Errorf("offset %d is greater than sentence length %d", offVal, len(s))
	}

	for _, token := range s[offVal:] {
		fmt.Fprintf(ui.Out, "%20q %15q %8s %6d %6d %8s %8s %s\n",
			token.Text, token.Lemma, token.Pos, token.Index, token.Head, token.Dep, token.Ent, token.Tag)
	}

	return nil
}

func statCommand(pool *Pool, opts StatOptions, docId *int, ui UI) error {
	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()

	if docId != nil {
		doc, err := repo.Read(*docId)
		if err != nil {
			return err
		}
		hdl.Aggregate(doc)
	} else {
		docs, err := repo.List()
		if err != nil {
			return err
		}
		for _, meta := range docs {
			doc, err := repo.Read(meta.Id)
			if err != nil {
				return err
			}
			hdl.Aggregate(doc)
		}
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Docs %d, sentences %d, tokens %d, tokens per sentence %d\n",
		stats.NumDocs, stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
	fmt.Fprint(ui.Out, formatDistribution(stats.TokensPerSentenceDis))

	return nil
}

// formatDistribution lists the sentence-length histogram, shortest
// sentences first.
func formatDistribution(dis map[int]int) string {
	lengths := make([]int, 0, len(dis))
	for l := range dis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	var b strings.Builder
	for _, l := range lengths {
		fmt.Fprintf(&b, "%6d sentences with %d tokens\n", dis[l], l)
	}
	return b.String()
}
