package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	http_request "github.com/xhd2015/go-http-request"

	"searchgrip/internal/domain"
	"searchgrip/internal/logging"
)

// searchPayload is the JSON body the backend search endpoints accept
type searchPayload struct {
	Query      string         `json:"query"`
	Collection string         `json:"collection"`
	Filters    []sourceFilter `json:"filters,omitempty"`
	Offset     int            `json:"offset"`
	NumResults int            `json:"num_results,omitempty"`
}

type sourceFilter struct {
	SourceType []domain.DocumentSource `json:"source_type"`
}

// searchReply is the JSON body returned by the backend
type searchReply struct {
	TopRankedDocs  []domain.SearchResult `json:"top_ranked_docs"`
	SemiRankedDocs []domain.SearchResult `json:"semi_ranked_docs"`
}

// HTTPSearcher talks to a Danswer-style search API
type HTTPSearcher struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewHTTPSearcher creates a searcher for the API at baseURL. A zero timeout
// leaves deadlines to the caller's context.
func NewHTTPSearcher(baseURL, apiKey string, timeout time.Duration) *HTTPSearcher {
	return &HTTPSearcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// Endpoint returns the URL used for the given search type
func (s *HTTPSearcher) Endpoint(t domain.SearchType) string {
	if t == domain.SearchSemantic {
		return s.baseURL + "/semantic-search"
	}
	return s.baseURL + "/keyword-search"
}

// Search implements Searcher
func (s *HTTPSearcher) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	payload := searchPayload{
		Query:      req.Query,
		Collection: req.Collection,
		Offset:     req.Offset,
		NumResults: req.Limit,
	}
	if len(req.Sources) > 0 {
		payload.Filters = []sourceFilter{{SourceType: req.Sources}}
	}

	httpReq := http_request.New()
	if s.apiKey != "" {
		httpReq = httpReq.Header("Authorization", "Bearer "+s.apiKey)
	}

	url := s.Endpoint(req.SearchType)
	start := time.Now()

	var reply searchReply
	if err := httpReq.PostJSON(ctx, url, payload, &reply); err != nil {
		logging.L().WithError(err).WithField("url", url).Warn("search request failed")
		return nil, classifyError(err)
	}

	results := make([]domain.SearchResult, 0, len(reply.TopRankedDocs)+len(reply.SemiRankedDocs))
	results = append(results, reply.TopRankedDocs...)
	results = append(results, reply.SemiRankedDocs...)
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	logging.L().WithFields(logrus.Fields{
		"url":     url,
		"results": len(results),
		"elapsed": time.Since(start).String(),
	}).Info("search completed")

	return &domain.SearchResponse{
		Query:   req.Query,
		Results: results,
	}, nil
}

// statusPrefix starts the error go-http-request returns for non-2xx replies:
// "response err: <code> <status> <body>"
const statusPrefix = "response err: "

// classifyError separates transport failures from replies the backend sent
// back with an error status. Anything else is a reply we could not decode.
func classifyError(err error) error {
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	if rest, ok := strings.CutPrefix(err.Error(), statusPrefix); ok {
		codeText, tail, _ := strings.Cut(rest, " ")
		if code, convErr := strconv.Atoi(codeText); convErr == nil {
			// tail repeats the code and reason before the body
			body := strings.TrimPrefix(tail, fmt.Sprintf("%d %s", code, http.StatusText(code)))
			return &RejectedError{StatusCode: code, Body: strings.TrimSpace(body)}
		}
	}

	return fmt.Errorf("failed to decode search reply: %w", err)
}
