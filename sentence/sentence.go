package sentence

// Pos is the coarse part-of-speech tag of a token, following the
// universal tag set emitted by spacy and stanza.
type Pos string

const (
	Adj   Pos = "ADJ"
	Adp   Pos = "ADP"
	Adv   Pos = "ADV"
	Aux   Pos = "AUX"
	Cconj Pos = "CCONJ"
	Det   Pos = "DET"
	Intj  Pos = "INTJ"
	Noun  Pos = "NOUN"
	Num   Pos = "NUM"
	Part  Pos = "PART"
	Pron  Pos = "PRON"
	Propn Pos = "PROPN"
	Punct Pos = "PUNCT"
	Sconj Pos = "SCONJ"
	Sym   Pos = "SYM"
	Verb  Pos = "VERB"
	X     Pos = "X"
)

// Dep is the dependency label of a token relative to its head.
// Only the labels the extractors match on are named here; anything
// else passes through as an opaque string and simply never matches.
type Dep string

const (
	Particle Dep = "prt"
	Prep     Dep = "prep"
	Obj      Dep = "obj"
	Pobj     Dep = "pobj"
	Pcomp    Dep = "pcomp"
	Obl      Dep = "obl"
	Advmod   Dep = "advmod"
	Acomp    Dep = "acomp"
	Compound Dep = "compound"
	Root     Dep = "ROOT"
)

// TagGerund is the fine-grained tag marking a present participle or
// gerund (Penn treebank VBG).
const TagGerund = "VBG"

// Token represents one word of a sentence, with POS and metadata.
type Token struct {
	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// Head is the sentence index of the governing token. The
	// sentence root is its own head.
	Head int `json:"head"`

	Pos Pos `json:"pos"`
	Dep Dep `json:"dep"`

	// A string containing detailed POS data (e.g. "VBG")
	Tag string `json:"tag"`

	// Ent is the named-entity type, empty if the token is not part
	// of an entity span.
	Ent string `json:"ent"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	IsPunct bool `json:"is_punct"`
	IsSpace bool `json:"is_space"`
	IsAlpha bool `json:"is_alpha"`
	LikeNum bool `json:"like_num"`
}

// IsRoot reports whether the token is the syntactic root of its
// sentence.
func (t Token) IsRoot() bool {
	return t.Head == t.Index
}

// Sentence is an ordered sequence of annotated tokens whose Head
// links form a dependency tree.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc"`
	Tokens []Token `json:"tokens"`
}

type Doc struct {
	Id int

	Title string

	Labels    []string   `json:"labels"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc
