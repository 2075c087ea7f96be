package sentence

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a sentence whose head links do not form a tree.
// Callers can detect it with errors.Is to separate structural errors
// from everything else.
var ErrMalformed = errors.New("malformed head structure")

// Tree is a read-only view of one sentence with its head relation
// indexed for child lookup. The children of a token are all tokens
// whose Head points to it, ordered by sentence position.
//
// Building the index once per sentence avoids the repeated linear
// scans that per-extractor child discovery would need.
type Tree struct {
	tokens   []Token
	children [][]int
}

// NewTree validates the head links of the sentence and builds the
// child index. It fails on a token index that disagrees with its
// slice position, on a head index outside the sentence and on cyclic
// head chains, because the extractors assume a well-formed tree
// before dereferencing heads and child lists.
func NewTree(s Sentence) (*Tree, error) {
	n := len(s.Tokens)

	for i, tok := range s.Tokens {
		if tok.Index != i {
			return nil, fmt.Errorf("token %d: index %d does not match position: %w", i, tok.Index, ErrMalformed)
		}
		if tok.Head < 0 || tok.Head >= n {
			return nil, fmt.Errorf("token %d: head %d out of range [0,%d): %w", i, tok.Head, n, ErrMalformed)
		}
	}

	// Every head chain must reach a root (a self-headed token)
	// within n steps, otherwise it loops.
	for i := range s.Tokens {
		cur := i
		steps := 0
		for !s.Tokens[cur].IsRoot() {
			cur = s.Tokens[cur].Head
			steps++
			if steps > n {
				return nil, fmt.Errorf("token %d: head chain does not reach a root: %w", i, ErrMalformed)
			}
		}
	}

	t := &Tree{
		tokens:   s.Tokens,
		children: make([][]int, n),
	}

	// Tokens are scanned in position order, so each child list is
	// already sorted by Index.
	for i, tok := range s.Tokens {
		if tok.IsRoot() {
			continue
		}
		t.children[tok.Head] = append(t.children[tok.Head], i)
	}

	return t, nil
}

// Len returns the number of tokens in the sentence.
func (t *Tree) Len() int {
	return len(t.tokens)
}

// Tokens returns the tokens of the sentence in position order.
func (t *Tree) Tokens() []Token {
	return t.tokens
}

// At returns the token at position i.
func (t *Tree) At(i int) Token {
	return t.tokens[i]
}

// Head returns the governing token of tok. For the sentence root the
// head is the token itself.
func (t *Tree) Head(tok Token) Token {
	return t.tokens[tok.Head]
}

// Children returns the dependents of the token at position i, in
// sentence position order.
func (t *Tree) Children(i int) []Token {
	idx := t.children[i]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Token, len(idx))
	for k, c := range idx {
		out[k] = t.tokens[c]
	}
	return out
}
