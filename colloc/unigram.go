package colloc

import (
	"strings"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

// Unigrams returns the countable single-word lemmas of the sentence.
//
// Proper nouns and named-entity tokens are excluded: they are not
// generalizable vocabulary items, and an occurrence of the same lemma
// outside an entity span is counted independently.
func Unigrams(tr *sent.Tree) []string {
	var out []string

	for _, t := range tr.Tokens() {
		if t.IsSpace || t.IsPunct {
			continue
		}
		if !t.IsAlpha {
			continue
		}
		if t.Pos == sent.Propn {
			continue
		}
		if t.Ent != "" {
			continue
		}

		lemma := strings.ToLower(t.Lemma)
		if lemma == "" {
			continue
		}

		out = append(out, lemma)
	}

	return out
}
