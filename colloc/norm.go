// Package colloc mines vocabulary and collocation events from
// dependency-annotated sentences. Extractors are pure functions over a
// sentence tree; they emit normalized event strings and never touch
// the frequency tables themselves.
package colloc

import (
	"strings"

	sent "github.com/ngu132/eiken-vocab/sentence"
)

// Placeholder categories substituted for concrete argument fillers so
// that semantically similar fillers collapse to one collocation key.
const (
	PlaceholderPunct  = "<PUNCT>"
	PlaceholderPron   = "<PRON>"
	PlaceholderNum    = "<NUM>"
	PlaceholderGerund = "<V-ing>"

	// entPrefix starts the named-entity placeholder <NE:TYPE>.
	entPrefix = "<NE:"

	// GenericObject stands in for a concrete, non-generalizable
	// object filler in a bundle pattern.
	GenericObject = "O"
)

// NormArg normalizes a token in its role as argument filler of a
// larger pattern. Rules are checked in order, first match wins.
func NormArg(t sent.Token) string {
	switch {
	case t.IsPunct || t.IsSpace:
		return PlaceholderPunct
	case t.Ent != "":
		return entPrefix + t.Ent + ">"
	case t.Pos == sent.Pron:
		return PlaceholderPron
	case t.LikeNum:
		return PlaceholderNum
	case t.Tag == sent.TagGerund:
		return PlaceholderGerund
	}

	return strings.ToLower(t.Lemma)
}

// keepsPlaceholder reports whether a normalized argument is one of
// the filler categories that stay in the emitted pattern. Everything
// else is collapsed to the generic object O.
func keepsPlaceholder(norm string) bool {
	if norm == PlaceholderPron || norm == PlaceholderGerund {
		return true
	}
	return strings.HasPrefix(norm, entPrefix)
}
