package count

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/ngu132/eiken-vocab/annotate"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

// canned sentences keyed by input text, standing in for the external
// annotator.
var canned = map[string]sent.Sentence{
	"give it up": {Tokens: []sent.Token{
		{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb, Dep: sent.Root, IsAlpha: true},
		{Index: 1, Head: 0, Lemma: "it", Pos: sent.Pron, Dep: sent.Obj, IsAlpha: true},
		{Index: 2, Head: 0, Lemma: "up", Pos: sent.Adp, Dep: sent.Particle, IsAlpha: true},
	}},
	"depend on weather": {Tokens: []sent.Token{
		{Index: 0, Head: 0, Lemma: "depend", Pos: sent.Verb, Dep: sent.Root, IsAlpha: true},
		{Index: 1, Head: 0, Lemma: "on", Pos: sent.Adp, Dep: sent.Prep, IsAlpha: true},
		{Index: 2, Head: 1, Lemma: "weather", Pos: sent.Noun, Dep: sent.Pobj, IsAlpha: true},
	}},
	"broken": {Tokens: []sent.Token{
		{Index: 0, Head: 7, Lemma: "broken"},
	}},
}

func stubAnnotator(t *testing.T) annotate.Annotator {
	t.Helper()
	return annotate.Func(func(texts []string) ([][]sent.Sentence, error) {
		out := make([][]sent.Sentence, len(texts))
		for i, text := range texts {
			s, ok := canned[text]
			if !ok {
				return nil, fmt.Errorf("no canned sentence for %q", text)
			}
			out[i] = []sent.Sentence{s}
		}
		return out, nil
	})
}

func TestCollocationsEmptyInput(t *testing.T) {
	res, err := Collocations(nil, stubAnnotator(t), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Unigram.N != 0 || res.Phrase.N != 0 || res.Skipped != 0 {
		t.Errorf("expected zero totals, got %+v", res)
	}
}

func TestCollocationsCounts(t *testing.T) {
	res, err := Collocations([]string{"give it up", "depend on weather"}, stubAnnotator(t), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantUnigram := map[string]int{"give": 1, "up": 1, "depend": 1, "on": 1, "weather": 1}
	if !reflect.DeepEqual(res.Unigram.Freq, wantUnigram) {
		t.Errorf("unigram: expected %v, got %v", wantUnigram, res.Unigram.Freq)
	}
	if res.Unigram.N != 5 {
		t.Errorf("unigram total: expected 5, got %d", res.Unigram.N)
	}

	wantPhrase := map[string]int{"give up": 1, "give up <PRON>": 1, "depend on O": 1}
	if !reflect.DeepEqual(res.Phrase.Freq, wantPhrase) {
		t.Errorf("phrase: expected %v, got %v", wantPhrase, res.Phrase.Freq)
	}
	if res.Phrase.N != 3 {
		t.Errorf("phrase total: expected 3, got %d", res.Phrase.N)
	}
}

func TestCollocationsOrderIndependent(t *testing.T) {
	an := stubAnnotator(t)

	ab, err := Collocations([]string{"give it up", "depend on weather"}, an, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := Collocations([]string{"depend on weather", "give it up"}, an, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("results differ by input order: %+v vs %+v", ab, ba)
	}

	// Separate runs merged entry-wise give the same tables.
	a, err := Collocations([]string{"give it up"}, an, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Collocations([]string{"depend on weather"}, an, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Merge(b)

	if !reflect.DeepEqual(ab, a) {
		t.Errorf("merged result differs: %+v vs %+v", ab, a)
	}
}

func TestCollocationsParallelMatchesSerial(t *testing.T) {
	an := stubAnnotator(t)
	texts := []string{
		"give it up", "depend on weather", "give it up",
		"depend on weather", "give it up", "depend on weather",
	}

	serial, err := Collocations(texts, an, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parallel, err := Collocations(texts, an, Options{BatchSize: 2, NProcess: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(serial, parallel) {
		t.Errorf("parallel result differs from serial: %+v vs %+v", parallel, serial)
	}
}

func TestCollocationsEdgeModeGrowsPhraseTotal(t *testing.T) {
	an := stubAnnotator(t)
	texts := []string{"give it up", "depend on weather"}

	plain, err := Collocations(texts, an, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	edges, err := Collocations(texts, an, Options{IncludeEdges: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if edges.Phrase.N <= plain.Phrase.N {
		t.Errorf("expected edge mode to grow phrase total: %d <= %d", edges.Phrase.N, plain.Phrase.N)
	}
	if edges.Unigram.N != plain.Unigram.N {
		t.Errorf("edge mode must not touch the unigram lane: %d != %d", edges.Unigram.N, plain.Unigram.N)
	}
}

func TestCollocationsSkipsMalformed(t *testing.T) {
	res, err := Collocations([]string{"broken", "give it up"}, stubAnnotator(t), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Skipped != 1 {
		t.Errorf("expected 1 skipped sentence, got %d", res.Skipped)
	}
	if res.Unigram.N != 2 {
		t.Errorf("expected the well-formed sentence to be counted, got total %d", res.Unigram.N)
	}
}

func TestCollocationsStrictMode(t *testing.T) {
	res, err := Collocations([]string{"give it up", "broken"}, stubAnnotator(t), Options{Strict: true})
	if err == nil {
		t.Fatal("expected error in strict mode")
	}
	if !errors.Is(err, sent.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
	if res.Unigram.N != 0 || res.Phrase.N != 0 {
		t.Errorf("partial tables must be discarded on failure, got %+v", res)
	}
}

func TestCollocationsAnnotatorError(t *testing.T) {
	boom := errors.New("tagger down")
	an := annotate.Func(func([]string) ([][]sent.Sentence, error) {
		return nil, boom
	})

	_, err := Collocations([]string{"anything"}, an, Options{})
	if !errors.Is(err, boom) {
		t.Errorf("expected annotator error to surface, got %v", err)
	}
}
