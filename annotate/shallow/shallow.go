// Package shallow is a local, dependency-free annotation fallback
// built on prose (POS tagging, NER) and golem (English lemmas).
//
// It produces flat trees: every token is its own head, so the phrase
// extractors find nothing to match. Use it for unigram counting when
// no parsing server is available; full collocation mining needs the
// spacyd client.
package shallow

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"

	"github.com/ngu132/eiken-vocab/annotate"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

type Annotator struct {
	lemmatizer *golem.Lemmatizer
}

var _ annotate.Annotator = (*Annotator)(nil)

// New loads the English lemma dictionary. The returned Annotator is
// reusable across batches.
func New() (*Annotator, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Annotator{lemmatizer: l}, nil
}

func (a *Annotator) Annotate(texts []string) ([][]sent.Sentence, error) {
	out := make([][]sent.Sentence, len(texts))

	for i, text := range texts {
		doc, err := prose.NewDocument(text,
			prose.WithSegmentation(false),
			prose.WithExtraction(true),
		)
		if err != nil {
			return nil, err
		}

		out[i] = []sent.Sentence{a.sentence(doc)}
	}

	return out, nil
}

func (a *Annotator) sentence(doc *prose.Document) sent.Sentence {
	proseToks := doc.Tokens()
	tokens := make([]sent.Token, len(proseToks))

	for i, pt := range proseToks {
		pos := posFromTag(pt.Tag)
		tokens[i] = sent.Token{
			Index:   i,
			Head:    i, // no parse: flat forest of roots
			Pos:     pos,
			Tag:     pt.Tag,
			Text:    pt.Text,
			Lemma:   strings.ToLower(a.lemmatizer.Lemma(pt.Text)),
			IsPunct: pos == sent.Punct,
			IsAlpha: isAlpha(pt.Text),
			LikeNum: pt.Tag == "CD",
		}
	}

	markEntities(tokens, doc.Entities())

	return sent.Sentence{Tokens: tokens}
}

// markEntities sets the Ent type on token runs covered by a
// recognized entity span. Prose reports entity surface text, not
// offsets, so spans are re-located by matching consecutive token
// texts.
func markEntities(tokens []sent.Token, ents []prose.Entity) {
	for _, e := range ents {
		parts := strings.Fields(e.Text)
		if len(parts) == 0 {
			continue
		}

		for i := 0; i+len(parts) <= len(tokens); i++ {
			if tokens[i].Ent != "" {
				continue
			}

			found := true
			for j, p := range parts {
				if tokens[i+j].Text != p {
					found = false
					break
				}
			}
			if !found {
				continue
			}

			for j := range parts {
				tokens[i+j].Ent = e.Label
			}
			i += len(parts) - 1
		}
	}
}

// posFromTag maps a Penn treebank tag to the coarse universal tag.
func posFromTag(tag string) sent.Pos {
	switch {
	case strings.HasPrefix(tag, "NNP"):
		return sent.Propn
	case strings.HasPrefix(tag, "NN"):
		return sent.Noun
	case strings.HasPrefix(tag, "VB"):
		return sent.Verb
	case strings.HasPrefix(tag, "JJ"):
		return sent.Adj
	case strings.HasPrefix(tag, "RB"):
		return sent.Adv
	case strings.HasPrefix(tag, "PRP"), tag == "WP", tag == "WP$":
		return sent.Pron
	}

	switch tag {
	case "IN":
		return sent.Adp
	case "CD":
		return sent.Num
	case "DT", "PDT", "WDT":
		return sent.Det
	case "CC":
		return sent.Cconj
	case "MD":
		return sent.Aux
	case "TO", "RP", "POS":
		return sent.Part
	case "UH":
		return sent.Intj
	case "SYM", "$", "#":
		return sent.Sym
	case ".", ",", ":", "``", "''", "(", ")", "-LRB-", "-RRB-", "HYPH":
		return sent.Punct
	case "FW", "LS", "XX":
		return sent.X
	}

	return sent.X
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
