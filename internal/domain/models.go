package domain

// SearchType selects the backend retrieval strategy
type SearchType string

const (
	SearchKeyword  SearchType = "keyword"
	SearchSemantic SearchType = "semantic"
)

// ParseSearchType maps a config/env value onto a SearchType, defaulting to keyword
func ParseSearchType(s string) SearchType {
	if SearchType(s) == SearchSemantic {
		return SearchSemantic
	}
	return SearchKeyword
}

// Toggle returns the other search type
func (t SearchType) Toggle() SearchType {
	if t == SearchSemantic {
		return SearchKeyword
	}
	return SearchSemantic
}

// SearchRequest is what gets sent to the search backend
type SearchRequest struct {
	Query      string
	Collection string
	SearchType SearchType
	Sources    []DocumentSource // empty means all sources
	Offset     int
	Limit      int
}

// SearchResult is one ranked document chunk returned by the backend
type SearchResult struct {
	DocumentID         string         `json:"document_id"`
	ChunkID            int            `json:"chunk_id"`
	SemanticIdentifier string         `json:"semantic_identifier"`
	Blurb              string         `json:"blurb"`
	Content            string         `json:"content"`
	SourceType         DocumentSource `json:"source_type"`
	Link               string         `json:"link"`
	Score              float64        `json:"score"`
}

// Title returns the best human-readable name for the result
func (r SearchResult) Title() string {
	if r.SemanticIdentifier != "" {
		return r.SemanticIdentifier
	}
	return r.DocumentID
}

// SearchResponse holds ranked results for a query
type SearchResponse struct {
	Query   string
	Results []SearchResult
}
