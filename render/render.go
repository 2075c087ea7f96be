package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ngu132/eiken-vocab/count"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Gray   = "\033[0;37m"
	Off    = "\033[0m"
)

// Renderer writes counting results.
type Renderer interface {
	Result(res count.Result)
}

// TextRenderer writes ranked frequency tables as aligned text.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	// Limit caps the rows shown per table, 0 shows all.
	Limit int
}

var _ Renderer = (*TextRenderer)(nil)

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Result(res count.Result) {
	r.Table("unigram", res.Unigram)
	fmt.Fprintln(r.W)
	r.Table("phrase", res.Phrase)

	if res.Skipped > 0 {
		fmt.Fprintf(r.W, "\n%d sentences skipped (malformed head structure)\n", res.Skipped)
	}
}

// Table writes one lane ranked by descending count.
func (r *TextRenderer) Table(title string, tb count.Table) {
	header := fmt.Sprintf("%s: %d events, %d distinct", title, tb.N, len(tb.Freq))
	if r.HasColor {
		header = Teal + header + Off
	}
	fmt.Fprintln(r.W, header)

	for i, e := range tb.Ranked() {
		if r.Limit > 0 && i >= r.Limit {
			break
		}

		if r.HasColor {
			fmt.Fprintf(r.W, "%s%6d%s %s\n", Yellow, e.Count, Off, e.Key)
			continue
		}
		fmt.Fprintf(r.W, "%6d %s\n", e.Count, e.Key)
	}
}

// Sentence writes the surface text of a sentence with a prefix, one
// line, for the inspection commands.
func (r *TextRenderer) Sentence(s []sent.Token, prefix string) {
	words := make([]string, 0, len(s))
	for _, t := range s {
		if t.IsSpace {
			continue
		}
		words = append(words, t.Text)
	}

	text := strings.Join(words, " ")
	fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(text, "\n", " "))
}
