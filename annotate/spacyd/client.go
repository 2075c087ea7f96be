// Package spacyd is an HTTP client for a spacy-style annotation
// server: texts go out as a JSON batch, fully parsed sentences come
// back. This is the production path for dependency-complete
// annotation; the server owns the heavyweight model.
package spacyd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ngu132/eiken-vocab/annotate"
	sent "github.com/ngu132/eiken-vocab/sentence"
)

const DefaultTimeout = 120 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
}

var _ annotate.Annotator = (*Client)(nil)

// New creates a client for the annotation server at baseURL
// (e.g. "http://localhost:8090").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

type annotateRequest struct {
	Texts []string `json:"texts"`
}

type annotateResponse struct {
	// One sentence list per input text, in request order.
	Docs [][]sent.Sentence `json:"docs"`
}

func (c *Client) Annotate(texts []string) ([][]sent.Sentence, error) {
	body, err := json.Marshal(annotateRequest{Texts: texts})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.baseURL+"/annotate", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("annotation server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation server: unexpected status %s", resp.Status)
	}

	var ar annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("annotation server: decoding response: %w", err)
	}

	if len(ar.Docs) != len(texts) {
		return nil, fmt.Errorf("annotation server: got %d docs for %d texts", len(ar.Docs), len(texts))
	}

	return ar.Docs, nil
}
