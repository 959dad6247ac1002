//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// fakeDoc is one document served by the fake search backend
type fakeDoc struct {
	DocumentID         string `json:"document_id"`
	SemanticIdentifier string `json:"semantic_identifier"`
	Blurb              string `json:"blurb"`
	Content            string `json:"content"`
	SourceType         string `json:"source_type"`
	Link               string `json:"link"`
}

// FakeBackend is an httptest server speaking the keyword/semantic search API
type FakeBackend struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
	paths   []string
	docs    []fakeDoc
}

// CreateTestWorkspace creates a temporary directory for config and logs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes a config file pointing at backendURL and returns its path
func (tf *TUITestFramework) WriteConfig(backendURL string, extra string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "config.toml")
	content := fmt.Sprintf(`version = 1
%s
[backend]
url = %q
collection = "danswer_index"
search_type = "keyword"
timeout_seconds = 5
result_limit = 20

[ui]
baseline_height = 1
max_height = 8
placeholder = "Search your documents..."
show_blurbs = true
log_level = "debug"
`, extra, backendURL)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// StartFakeBackend serves docs for every query
func (tf *TUITestFramework) StartFakeBackend(docs ...fakeDoc) *FakeBackend {
	fb := &FakeBackend{docs: docs}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.handle))
	tf.t.Cleanup(fb.Close)
	return fb
}

func (fb *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !strings.HasSuffix(r.URL.Path, "-search") {
		http.NotFound(w, r)
		return
	}

	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	fb.queries = append(fb.queries, body.Query)
	fb.paths = append(fb.paths, r.URL.Path)
	docs := fb.docs
	fb.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"top_ranked_docs":  docs,
		"semi_ranked_docs": []fakeDoc{},
	})
}

// Queries returns the queries received so far
func (fb *FakeBackend) Queries() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.queries...)
}

// Paths returns the endpoint paths hit so far
func (fb *FakeBackend) Paths() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.paths...)
}

func petDocs() []fakeDoc {
	return []fakeDoc{
		{
			DocumentID:         "doc-1",
			SemanticIdentifier: "Caring for cats",
			Blurb:              "Cats need fresh water every day.",
			Content:            "Cats need fresh water every day.\nBrush long-haired breeds weekly.",
			SourceType:         "confluence",
			Link:               "https://wiki.example.com/cats",
		},
		{
			DocumentID:         "doc-2",
			SemanticIdentifier: "Walking dogs",
			Blurb:              "Dogs enjoy two walks a day.",
			Content:            "Dogs enjoy two walks a day.",
			SourceType:         "slack",
			Link:               "https://chat.example.com/dogs",
		},
	}
}
