package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ngu132/eiken-vocab/count"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

func TestTextRendererRanked(t *testing.T) {
	res := count.NewResult()
	res.Unigram.Add("give")
	res.Unigram.Add("give")
	res.Unigram.Add("book")
	res.Phrase.Add("give up")

	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Result(res)

	out := buf.String()
	if !strings.Contains(out, "unigram: 3 events, 2 distinct") {
		t.Errorf("missing unigram header in output:\n%s", out)
	}

	// "give" (2) must rank above "book" (1)
	if strings.Index(out, "give") > strings.Index(out, "book") {
		t.Errorf("expected give before book:\n%s", out)
	}
}

func TestTextRendererLimit(t *testing.T) {
	tb := count.NewTable()
	tb.Add("a")
	tb.Add("b")
	tb.Add("c")

	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Limit = 1
	r.Table("unigram", tb)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header plus one row
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
}

func TestTextRendererSentence(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Sentence([]sent.Token{
		{Text: "Give"},
		{Text: " ", IsSpace: true},
		{Text: "up"},
	}, "0-0 ")

	if got := buf.String(); got != "0-0 Give up\n" {
		t.Errorf("expected %q, got %q", "0-0 Give up\n", got)
	}
}

func TestJSONRendererRoundTrip(t *testing.T) {
	res := count.NewResult()
	res.Unigram.Add("give")
	res.Phrase.Add("give up")

	var buf bytes.Buffer
	NewJSONRenderer(&buf).Result(res)

	var got count.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Unigram.N != 1 || got.Phrase.Freq["give up"] != 1 {
		t.Errorf("unexpected result: %+v", got)
	}
}
