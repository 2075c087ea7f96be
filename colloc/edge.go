package colloc

import (
	"strings"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

// Edges dumps every dependency edge of the sentence as a countable
// event. Diagnostic only: when enabled these events share the phrase
// table, so its total is not comparable with default runs.
func Edges(tr *sent.Tree) []string {
	var out []string

	for _, c := range tr.Tokens() {
		if c.IsSpace || c.IsPunct {
			continue
		}
		if c.IsRoot() {
			continue
		}

		head := tr.Head(c)
		x := strings.ToLower(head.Lemma) + ":" + string(head.Pos)
		out = append(out, "edge:"+string(c.Dep)+" "+x+" -> "+NormArg(c))
	}

	return out
}
