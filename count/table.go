// Package count folds collocation events into frequency tables. The
// fold is an additive, commutative reduction: per-sentence or
// per-batch tables can be merged in any order without changing the
// final counts, which is what the parallel scan relies on.
package count

import "sort"

// Table maps an event key to its occurrence count. N is the running
// total of all events folded into the table; it can exceed the number
// of distinct keys and is the denominator for downstream probability
// estimates.
type Table struct {
	Freq map[string]int `json:"freq"`
	N    int            `json:"n"`
}

func NewTable() Table {
	return Table{Freq: map[string]int{}}
}

// Add folds one event occurrence into the table.
func (t *Table) Add(key string) {
	t.Freq[key]++
	t.N++
}

// Merge adds the counts of other into t entry-wise.
func (t *Table) Merge(other Table) {
	for k, v := range other.Freq {
		t.Freq[k] += v
	}
	t.N += other.N
}

// Entry is one ranked row of a frequency table.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Ranked returns the table entries sorted by descending count, ties
// broken alphabetically.
func (t Table) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.Freq))
	for k, v := range t.Freq {
		entries = append(entries, Entry{Key: k, Count: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	return entries
}

// Result bundles the two counting lanes: unigram vocabulary and
// phrase bundles (plus edge events when the diagnostic dump is on).
// Skipped counts sentences rejected for malformed head structure;
// they contribute to neither lane.
type Result struct {
	Unigram Table `json:"unigram"`
	Phrase  Table `json:"phrase"`
	Skipped int   `json:"skipped"`
}

func NewResult() Result {
	return Result{Unigram: NewTable(), Phrase: NewTable()}
}

// Merge adds the counts of other into r.
func (r *Result) Merge(other Result) {
	r.Unigram.Merge(other.Unigram)
	r.Phrase.Merge(other.Phrase)
	r.Skipped += other.Skipped
}
