package search

import "searchgrip/internal/domain"

// State holds search state
type State struct {
	Query        string // query the current results answer
	Results      []domain.SearchResult
	CurrentMatch int // index into Results
	SearchType   domain.SearchType
	Sources      []domain.DocumentSource // empty means all
	sourceCursor int                     // position in the source cycle, 0 means all
}

// Settings are the fixed request parameters
type Settings struct {
	Collection string
	Limit      int
}
