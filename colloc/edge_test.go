package colloc

import (
	"reflect"
	"testing"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

func TestEdgesFormat(t *testing.T) {
	// "give it ." — root and punctuation emit nothing
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb, Dep: sent.Root},
		sent.Token{Index: 1, Head: 0, Lemma: "it", Pos: sent.Pron, Dep: sent.Obj},
		sent.Token{Index: 2, Head: 0, Lemma: ".", Dep: "punct", IsPunct: true},
	)

	got := Edges(tr)
	want := []string{"edge:obj give:VERB -> <PRON>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEdgesEmptySentence(t *testing.T) {
	tr := mustTree(t)
	if got := Edges(tr); len(got) != 0 {
		t.Errorf("expected no events, got %v", got)
	}
}
