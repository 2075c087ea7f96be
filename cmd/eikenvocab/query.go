package main

import (
	"fmt"
	"strings"

	"github.com/ngu132/eiken-vocab/count"
	"github.com/ngu132/eiken-vocab/render"

	"github.com/c-bata/go-prompt"
)

const completionThreshold = 2

var lanes = []string{"all", "unigram", "phrase"}

func queryCommand(pool *Pool, opts QueryOptions, runName string, ui UI) error {
	repo, err := NewVocabRepository(pool, opts.VocabPath)
	if err != nil {
		return err
	}

	if runName == "" {
		runs, err := repo.Runs()
		if err != nil {
			return err
		}

		for _, run := range runs {
			marker := ""
			if run.IncludeEdges {
				marker = " (with edges)"
			}
			fmt.Fprintf(ui.Out, "📖 %s%s\n", run.Name, marker)
		}

		return nil
	}

	res, err := repo.ReadResult(runName)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.Limit = opts.Limit

	lane := 0
	fmt.Println("🔑 Ctrl+F: next lane, quit to exit")

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", completer(res),
			prompt.OptionTitle("eikenvocab query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					lane = (lane + 1) % len(lanes)
					fmt.Println("Lane set to: " + lanes[lane])
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		pattern := strings.TrimSpace(in)
		if pattern == "" {
			continue
		}

		if lanes[lane] != "phrase" {
			r.Table("unigram", filterTable(res.Unigram, pattern))
		}
		if lanes[lane] != "unigram" {
			r.Table("phrase", filterTable(res.Phrase, pattern))
		}
	}
}

// filterTable keeps the entries whose key contains the pattern. The
// filtered table keeps the original total so the header stays honest
// about the lane it was cut from.
func filterTable(tb count.Table, pattern string) count.Table {
	out := count.NewTable()
	for k, v := range tb.Freq {
		if strings.Contains(k, pattern) {
			out.Freq[k] = v
		}
	}
	out.N = tb.N
	return out
}

func completer(res count.Result) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) < completionThreshold {
			return nil
		}

		suggests := []prompt.Suggest{}
		for k := range res.Unigram.Freq {
			if strings.HasPrefix(k, word) {
				suggests = append(suggests, prompt.Suggest{Text: k})
			}
		}
		for k := range res.Phrase.Freq {
			if strings.HasPrefix(k, word) {
				suggests = append(suggests, prompt.Suggest{Text: k})
			}
		}

		return prompt.FilterHasPrefix(suggests, word, true)
	}
}
