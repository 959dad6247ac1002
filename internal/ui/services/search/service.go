package search

import (
	"context"
	"strings"

	"searchgrip/internal/backend"
	"searchgrip/internal/domain"
	"searchgrip/internal/eventbus"
	"searchgrip/internal/logging"
)

// Service runs submitted queries and tracks the result cursor. It is
// driven from the UI goroutine only; Run is the one method meant to be
// called from a tea.Cmd, and it does not touch State.
type Service struct {
	state    *State
	settings Settings
	bus      eventbus.EventBus
	searcher backend.Searcher
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus, searcher backend.Searcher, settings Settings, searchType domain.SearchType, sources []domain.DocumentSource) *Service {
	return &Service{
		state: &State{
			SearchType: searchType,
			Sources:    sources,
		},
		settings: settings,
		bus:      bus,
		searcher: searcher,
	}
}

// BuildRequest turns a query into a backend request using current filters
func (s *Service) BuildRequest(query string) domain.SearchRequest {
	sources := make([]domain.DocumentSource, len(s.state.Sources))
	copy(sources, s.state.Sources)
	return domain.SearchRequest{
		Query:      query,
		Collection: s.settings.Collection,
		SearchType: s.state.SearchType,
		Sources:    sources,
		Limit:      s.settings.Limit,
	}
}

// Run executes req against the backend. Safe to call off the UI goroutine.
func (s *Service) Run(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, backend.ErrEmptyQuery
	}

	s.publish(eventbus.SearchRequestedEvent{Request: req})

	resp, err := s.searcher.Search(ctx, req)
	if err != nil {
		logging.L().WithError(err).Warnf("Search failed for %q", req.Query)
		s.publish(eventbus.SearchFailedEvent{Query: req.Query, Err: err})
		return nil, err
	}

	s.publish(eventbus.SearchCompletedEvent{Query: req.Query, ResultCount: len(resp.Results)})
	return resp, nil
}

// Apply stores a response as the current result set
func (s *Service) Apply(resp *domain.SearchResponse) {
	s.state.Query = resp.Query
	s.state.Results = resp.Results
	s.state.CurrentMatch = 0
	logging.L().Infof("Search completed for '%s': found %d results", resp.Query, len(resp.Results))
}

// ClearResults drops the current result set
func (s *Service) ClearResults() {
	s.state.Query = ""
	s.state.Results = nil
	s.state.CurrentMatch = 0
}

// NavigateNext moves to the next result, wrapping around
func (s *Service) NavigateNext() {
	if len(s.state.Results) == 0 {
		return
	}
	s.state.CurrentMatch = (s.state.CurrentMatch + 1) % len(s.state.Results)
}

// NavigatePrevious moves to the previous result, wrapping around
func (s *Service) NavigatePrevious() {
	if len(s.state.Results) == 0 {
		return
	}
	s.state.CurrentMatch--
	if s.state.CurrentMatch < 0 {
		s.state.CurrentMatch = len(s.state.Results) - 1
	}
}

// Current returns the selected result
func (s *Service) Current() (domain.SearchResult, bool) {
	if len(s.state.Results) == 0 {
		return domain.SearchResult{}, false
	}
	return s.state.Results[s.state.CurrentMatch], true
}

// GetQuery returns the query the current results answer
func (s *Service) GetQuery() string { return s.state.Query }

// Results returns the current result set
func (s *Service) Results() []domain.SearchResult { return s.state.Results }

// GetCurrentMatchIndex returns the cursor, -1 without results
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Results) == 0 {
		return -1
	}
	return s.state.CurrentMatch
}

// SearchType returns the active search type
func (s *Service) SearchType() domain.SearchType { return s.state.SearchType }

// ToggleSearchType flips between keyword and semantic search
func (s *Service) ToggleSearchType() domain.SearchType {
	s.state.SearchType = s.state.SearchType.Toggle()
	s.publishSettings()
	return s.state.SearchType
}

// CycleSource steps the filter through all sources, then each single source
func (s *Service) CycleSource() []domain.DocumentSource {
	s.state.sourceCursor = (s.state.sourceCursor + 1) % (len(domain.AllSources) + 1)
	if s.state.sourceCursor == 0 {
		s.state.Sources = nil
	} else {
		s.state.Sources = []domain.DocumentSource{domain.AllSources[s.state.sourceCursor-1]}
	}
	s.publishSettings()
	return s.state.Sources
}

// SourceLabel describes the active filter for the status line
func (s *Service) SourceLabel() string {
	if len(s.state.Sources) == 0 {
		return "all sources"
	}
	labels := make([]string, len(s.state.Sources))
	for i, src := range s.state.Sources {
		labels[i] = src.Label()
	}
	return strings.Join(labels, ", ")
}

func (s *Service) publishSettings() {
	s.publish(eventbus.ConfigChangedEvent{
		SearchType: s.state.SearchType,
		Sources:    s.state.Sources,
	})
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
