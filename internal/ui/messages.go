package ui

import (
	"searchgrip/internal/domain"
	"searchgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultMsg carries a finished backend call
type searchResultMsg struct {
	query string
	resp  *domain.SearchResponse
	err   error
}

// pagerMsg contains the result of showing content in the pager
type pagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying a link
type clipboardMsg struct {
	link string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
