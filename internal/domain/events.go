package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged    EventType = "QueryChanged"
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted whenever the owned query text changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SearchRequestedEvent is emitted when the user submits a query
type SearchRequestedEvent struct {
	Request SearchRequest
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the backend answered
type SearchCompletedEvent struct {
	Query       string
	ResultCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the backend call failed
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BackendURL string
	SearchType SearchType
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when user-facing settings change and should be persisted
type ConfigChangedEvent struct {
	SearchType SearchType
	Sources    []DocumentSource
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
