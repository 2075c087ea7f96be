package stat

import (
	sent "github.com/ngu132/eiken-vocab/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs               int
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate folds one doc into the corpus stats. Call once per doc.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(doc.Sentences)

	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
