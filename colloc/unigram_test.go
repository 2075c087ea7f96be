package colloc

import (
	"reflect"
	"testing"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

func mustTree(t *testing.T, tokens ...sent.Token) *sent.Tree {
	t.Helper()
	tr, err := sent.NewTree(sent.Sentence{Tokens: tokens})
	if err != nil {
		t.Fatalf("bad test sentence: %v", err)
	}
	return tr
}

func TestUnigramsExclusions(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "Give", Pos: sent.Verb, IsAlpha: true},
		sent.Token{Index: 1, Head: 0, Lemma: ",", IsPunct: true},
		sent.Token{Index: 2, Head: 0, Lemma: " ", IsSpace: true},
		sent.Token{Index: 3, Head: 0, Lemma: "42", IsAlpha: false},
		sent.Token{Index: 4, Head: 0, Lemma: "London", Pos: sent.Propn, IsAlpha: true},
		sent.Token{Index: 5, Head: 0, Lemma: "apple", Pos: sent.Noun, Ent: "ORG", IsAlpha: true},
		sent.Token{Index: 6, Head: 0, Lemma: "", Pos: sent.Noun, IsAlpha: true},
		sent.Token{Index: 7, Head: 0, Lemma: "book", Pos: sent.Noun, IsAlpha: true},
	)

	got := Unigrams(tr)
	want := []string{"give", "book"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// The same lemma excluded in one position is still counted in another:
// each token is judged on its own flags.
func TestUnigramsPerOccurrence(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "apple", Pos: sent.Propn, IsAlpha: true},
		sent.Token{Index: 1, Head: 0, Lemma: "apple", Pos: sent.Noun, IsAlpha: true},
	)

	got := Unigrams(tr)
	want := []string{"apple"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUnigramsEmptySentence(t *testing.T) {
	tr := mustTree(t)
	if got := Unigrams(tr); len(got) != 0 {
		t.Errorf("expected no unigrams, got %v", got)
	}
}
