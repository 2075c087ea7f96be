package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ngu132/eiken-vocab/count"
	"github.com/ngu132/eiken-vocab/storage"
)

// VocabStore keeps counting runs as one JSON file per run.
type VocabStore struct {
	root string
}

var _ storage.VocabRepository = (*VocabStore)(nil)

func NewVocabStore(root string) *VocabStore {
	return &VocabStore{root: root}
}

type runFile struct {
	Run    storage.Run  `json:"run"`
	Result count.Result `json:"result"`
}

func (h *VocabStore) Runs() ([]storage.Run, error) {
	files, err := os.ReadDir(h.root)
	if err != nil {
		return nil, err
	}

	runs := []storage.Run{}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		name := strings.TrimSuffix(file.Name(), ".json")
		rf, err := h.read(name)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rf.Run)
	}

	return runs, nil
}

func (h *VocabStore) ReadResult(name string) (count.Result, error) {
	rf, err := h.read(name)
	if err != nil {
		return count.Result{}, err
	}
	return rf.Result, nil
}

func (h *VocabStore) WriteResult(run storage.Run, res count.Result) error {
	data, err := json.MarshalIndent(runFile{Run: run, Result: res}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(h.root, run.Name+".json"), data, 0644)
}

func (h *VocabStore) read(name string) (runFile, error) {
	data, err := os.ReadFile(filepath.Join(h.root, name+".json"))
	if err != nil {
		return runFile{}, err
	}

	var rf runFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return runFile{}, err
	}

	return rf, nil
}
