package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	sent "github.com/ngu132/eiken-vocab/sentence"
	"github.com/ngu132/eiken-vocab/storage"
)

// DocStore keeps annotated documents as one JSON file per doc in a
// directory. Doc ids are positions in the alphabetical file listing.
type DocStore struct {
	docDir string

	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over docDir.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, sent.Doc{
				Id:    idx,
				Title: file.Name(),
			})
			idx++
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc, err := readDoc(filepath.Join(h.docDir, h.docs[id].Title))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = id
	doc.Title = h.docs[id].Title
	return doc, nil
}

func (h *DocStore) Write(doc sent.Doc) error {
	title := doc.Title
	if filepath.Ext(title) != ".json" {
		title += ".json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(h.docDir, title), data, 0644); err != nil {
		return err
	}

	doc.Id = len(h.docs)
	doc.Title = title
	h.docs = append(h.docs, sent.Doc{Id: doc.Id, Title: title, Labels: doc.Labels})
	return nil
}

// readDoc reads a Doc JSON from the given path and unmarshals it.
func readDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, err
	}

	var doc sent.Doc
	if err := json.Unmarshal(f, &doc); err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}
