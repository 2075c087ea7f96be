package colloc

import (
	"strings"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

// Extractor yields the collocation events of one sentence. The
// returned slice is a finite, restartable event sequence; aggregation
// does not depend on the order of events within it.
type Extractor func(*sent.Tree) []string

// Compose runs extractors in sequence and concatenates their events.
func Compose(extractors ...Extractor) Extractor {
	return func(tr *sent.Tree) []string {
		var out []string
		for _, ex := range extractors {
			out = append(out, ex(tr)...)
		}
		return out
	}
}

// Bundles is the composition of all phrase-pattern extractors: phrasal
// verbs, preposition complements, verb-modifier-preposition idioms and
// noun compounds.
var Bundles = Compose(PhrasalVerbs, PrepComplements, VerbModPrepComplements, NounCompounds)

// prepHeadPos are the coarse tags that can govern a preposition
// pattern.
var prepHeadPos = map[sent.Pos]bool{
	sent.Verb:  true,
	sent.Adj:   true,
	sent.Noun:  true,
	sent.Propn: true,
	sent.Adv:   true,
}

// modDeps are the modifier labels bridging a verb to a preposition in
// three-part idioms ("look forward to").
var modDeps = map[sent.Dep]bool{
	sent.Advmod:   true,
	sent.Compound: true,
	sent.Acomp:    true,
}

// PhrasalVerbs emits verb+particle pairs, plus one object variant per
// direct object of the verb: the argument placeholder when the object
// generalizes to <PRON>, <V-ing> or a named entity, the generic O
// otherwise. Two plain-noun objects yield two O events for one verb
// mention; the multiplicity is kept.
func PhrasalVerbs(tr *sent.Tree) []string {
	var out []string

	for _, v := range tr.Tokens() {
		if v.Pos != sent.Verb {
			continue
		}

		var prts, objs []sent.Token
		for _, c := range tr.Children(v.Index) {
			if c.IsPunct {
				continue
			}
			switch c.Dep {
			case sent.Particle:
				prts = append(prts, c)
			case sent.Obj:
				objs = append(objs, c)
			}
		}

		for _, p := range prts {
			pv := strings.ToLower(v.Lemma) + " " + strings.ToLower(p.Lemma)
			out = append(out, pv)

			for _, o := range objs {
				out = append(out, pv+" "+generalize(o))
			}
		}
	}

	return out
}

// PrepComplements emits head+preposition patterns with the shape of
// their complement ("depend on O", "responsible for <V-ing>").
func PrepComplements(tr *sent.Tree) []string {
	var out []string

	for _, head := range tr.Tokens() {
		if !prepHeadPos[head.Pos] {
			continue
		}

		for _, prep := range tr.Children(head.Index) {
			if !isPrep(prep) {
				continue
			}

			phrase := strings.ToLower(head.Lemma) + " " + strings.ToLower(prep.Lemma)
			for _, comp := range complements(tr, prep) {
				out = append(out, phrase+" "+generalize(comp))
			}
		}
	}

	return out
}

// VerbModPrepComplements generalizes PrepComplements for three-token
// idioms: the preposition search of the two-hop rule is repeated on a
// modifier of the verb, with the verb and modifier lemmas both in the
// pattern ("look forward to <V-ing>").
func VerbModPrepComplements(tr *sent.Tree) []string {
	var out []string

	for _, v := range tr.Tokens() {
		if v.Pos != sent.Verb {
			continue
		}

		for _, mod := range tr.Children(v.Index) {
			if mod.IsPunct || !modDeps[mod.Dep] {
				continue
			}

			for _, prep := range tr.Children(mod.Index) {
				if !isPrep(prep) {
					continue
				}

				phrase := strings.ToLower(v.Lemma) + " " + strings.ToLower(mod.Lemma) + " " + strings.ToLower(prep.Lemma)
				for _, comp := range complements(tr, prep) {
					out = append(out, phrase+" "+generalize(comp))
				}
			}
		}
	}

	return out
}

// NounCompounds emits one phrase per head noun covering all its noun
// compound modifiers in sentence position order ("high school
// student"). Proper nouns do not qualify as head or modifier.
func NounCompounds(tr *sent.Tree) []string {
	var out []string

	for _, head := range tr.Tokens() {
		if head.Pos != sent.Noun {
			continue
		}

		var parts []string
		for _, c := range tr.Children(head.Index) {
			// Children arrive in position order, which is the
			// order the phrase needs.
			if c.Dep == sent.Compound && c.Pos == sent.Noun && !c.IsPunct {
				parts = append(parts, strings.ToLower(c.Lemma))
			}
		}
		if len(parts) == 0 {
			continue
		}

		parts = append(parts, strings.ToLower(head.Lemma))
		out = append(out, strings.Join(parts, " "))
	}

	return out
}

func isPrep(t sent.Token) bool {
	return t.Dep == sent.Prep && t.Pos == sent.Adp && !t.IsPunct
}

// complements returns the candidate complement children of a
// preposition token.
func complements(tr *sent.Tree, prep sent.Token) []sent.Token {
	var out []sent.Token
	for _, c := range tr.Children(prep.Index) {
		if c.IsPunct {
			continue
		}
		switch c.Dep {
		case sent.Pobj, sent.Pcomp, sent.Obl, sent.Obj:
			out = append(out, c)
		}
	}
	return out
}

// generalize maps an argument token to the string that appears in the
// emitted pattern: its placeholder category when that category
// survives generalization, the generic object O otherwise.
func generalize(t sent.Token) string {
	if n := NormArg(t); keepsPlaceholder(n) {
		return n
	}
	return GenericObject
}
