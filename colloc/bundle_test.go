package colloc

import (
	"reflect"
	"testing"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

func TestPhrasalVerbPronounObject(t *testing.T) {
	// "give it up"
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "it", Pos: sent.Pron, Dep: sent.Obj},
		sent.Token{Index: 2, Head: 0, Lemma: "up", Pos: sent.Adp, Dep: sent.Particle},
	)

	got := PhrasalVerbs(tr)
	want := []string{"give up", "give up <PRON>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPhrasalVerbConcreteObject(t *testing.T) {
	// "give up smoking" with a plain noun instead of the gerund
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "up", Pos: sent.Adp, Dep: sent.Particle},
		sent.Token{Index: 2, Head: 0, Lemma: "habit", Pos: sent.Noun, Dep: sent.Obj},
	)

	got := PhrasalVerbs(tr)
	want := []string{"give up", "give up O"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// Two plain-noun objects produce two O events for one phrasal-verb
// mention. The multiplicity is intentional.
func TestPhrasalVerbObjectMultiplicity(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "up", Pos: sent.Adp, Dep: sent.Particle},
		sent.Token{Index: 2, Head: 0, Lemma: "job", Pos: sent.Noun, Dep: sent.Obj},
		sent.Token{Index: 3, Head: 0, Lemma: "house", Pos: sent.Noun, Dep: sent.Obj},
	)

	got := PhrasalVerbs(tr)
	want := []string{"give up", "give up O", "give up O"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPhrasalVerbEntityObject(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "call", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "up", Pos: sent.Adp, Dep: sent.Particle},
		sent.Token{Index: 2, Head: 0, Lemma: "alice", Pos: sent.Propn, Dep: sent.Obj, Ent: "PERSON"},
	)

	got := PhrasalVerbs(tr)
	want := []string{"call up", "call up <NE:PERSON>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// Only the "obj" label marks an object; annotation schemes using
// "dobj" leave the bare phrase without an object variant.
func TestPhrasalVerbIgnoresDobjLabel(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "up", Pos: sent.Adp, Dep: sent.Particle},
		sent.Token{Index: 2, Head: 0, Lemma: "habit", Pos: sent.Noun, Dep: "dobj"},
	)

	got := PhrasalVerbs(tr)
	want := []string{"give up"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPhrasalVerbNoParticle(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "give", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "book", Pos: sent.Noun, Dep: sent.Obj},
	)

	if got := PhrasalVerbs(tr); len(got) != 0 {
		t.Errorf("expected no events without a particle, got %v", got)
	}
}

func TestPrepComplementPlainNoun(t *testing.T) {
	// "depend on weather"
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "depend", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "on", Pos: sent.Adp, Dep: sent.Prep},
		sent.Token{Index: 2, Head: 1, Lemma: "weather", Pos: sent.Noun, Dep: sent.Pobj},
	)

	got := PrepComplements(tr)
	want := []string{"depend on O"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPrepComplementGerund(t *testing.T) {
	// "depend on swimming", complement tagged VBG
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "depend", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "on", Pos: sent.Adp, Dep: sent.Prep},
		sent.Token{Index: 2, Head: 1, Lemma: "swim", Pos: sent.Verb, Tag: sent.TagGerund, Dep: sent.Pcomp},
	)

	got := PrepComplements(tr)
	want := []string{"depend on <V-ing>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPrepComplementAdjHead(t *testing.T) {
	// "responsible for taxes"
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "responsible", Pos: sent.Adj},
		sent.Token{Index: 1, Head: 0, Lemma: "for", Pos: sent.Adp, Dep: sent.Prep},
		sent.Token{Index: 2, Head: 1, Lemma: "tax", Pos: sent.Noun, Dep: sent.Pobj},
	)

	got := PrepComplements(tr)
	want := []string{"responsible for O"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// A preposition child whose coarse tag is not ADP never matches, even
// with the right dependency label.
func TestPrepComplementRequiresAdp(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "depend", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "on", Pos: sent.Adv, Dep: sent.Prep},
		sent.Token{Index: 2, Head: 1, Lemma: "weather", Pos: sent.Noun, Dep: sent.Pobj},
	)

	if got := PrepComplements(tr); len(got) != 0 {
		t.Errorf("expected no events, got %v", got)
	}
}

func TestVerbModPrepComplement(t *testing.T) {
	// "look forward to swimming"
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 0, Lemma: "look", Pos: sent.Verb},
		sent.Token{Index: 1, Head: 0, Lemma: "forward", Pos: sent.Adv, Dep: sent.Advmod},
		sent.Token{Index: 2, Head: 1, Lemma: "to", Pos: sent.Adp, Dep: sent.Prep},
		sent.Token{Index: 3, Head: 2, Lemma: "swim", Pos: sent.Verb, Tag: sent.TagGerund, Dep: sent.Pcomp},
	)

	got := VerbModPrepComplements(tr)
	want := []string{"look forward to <V-ing>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNounCompoundPositionOrder(t *testing.T) {
	// Modifiers sit at positions 0 and 1, head at 2; the phrase must
	// follow sentence positions whatever the head relation looks like.
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 2, Lemma: "high", Pos: sent.Noun, Dep: sent.Compound},
		sent.Token{Index: 1, Head: 2, Lemma: "school", Pos: sent.Noun, Dep: sent.Compound},
		sent.Token{Index: 2, Head: 2, Lemma: "student", Pos: sent.Noun},
	)

	got := NounCompounds(tr)
	want := []string{"high school student"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNounCompoundExcludesProperNouns(t *testing.T) {
	tr := mustTree(t,
		sent.Token{Index: 0, Head: 1, Lemma: "london", Pos: sent.Propn, Dep: sent.Compound},
		sent.Token{Index: 1, Head: 1, Lemma: "office", Pos: sent.Noun},
	)

	if got := NounCompounds(tr); len(got) != 0 {
		t.Errorf("expected no events, got %v", got)
	}
}

func TestBundlesEmptySentence(t *testing.T) {
	tr := mustTree(t)
	if got := Bundles(tr); len(got) != 0 {
		t.Errorf("expected no events, got %v", got)
	}
}
