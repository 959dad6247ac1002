package domain

import (
	"fmt"
	"strings"
)

// DocumentSource identifies where an indexed document came from
type DocumentSource string

const (
	SourceWeb         DocumentSource = "web"
	SourceFile        DocumentSource = "file"
	SourceSlack       DocumentSource = "slack"
	SourceGithub      DocumentSource = "github"
	SourceGoogleDrive DocumentSource = "google_drive"
	SourceConfluence  DocumentSource = "confluence"
	SourceJira        DocumentSource = "jira"
)

// AllSources lists every known source in display order
var AllSources = []DocumentSource{
	SourceWeb,
	SourceFile,
	SourceSlack,
	SourceGithub,
	SourceGoogleDrive,
	SourceConfluence,
	SourceJira,
}

// InputType is how a connector feeds documents into the index
type InputType string

const (
	InputLoadState InputType = "load_state"
	InputPoll      InputType = "poll"
	InputEvent     InputType = "event"
)

// AllInputTypes lists every input type in display order
var AllInputTypes = []InputType{InputLoadState, InputPoll, InputEvent}

// Display labels used in the results pane
var sourceLabels = map[DocumentSource]string{
	SourceWeb:         "Web",
	SourceFile:        "File",
	SourceSlack:       "Slack",
	SourceGithub:      "GitHub",
	SourceGoogleDrive: "Google Drive",
	SourceConfluence:  "Confluence",
	SourceJira:        "Jira",
}

// connectorInputs records which input types each source's connector accepts
var connectorInputs = map[DocumentSource][]InputType{
	SourceWeb:         {InputLoadState},
	SourceFile:        {InputLoadState},
	SourceSlack:       {InputLoadState, InputPoll},
	SourceGithub:      {InputLoadState},
	SourceGoogleDrive: {InputLoadState},
	SourceConfluence:  {InputLoadState},
	SourceJira:        {InputLoadState},
}

// ParseSource converts a user supplied name ("Google Drive", "google_drive", "gdrive") to a source
func ParseSource(s string) (DocumentSource, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "gdrive" {
		normalized = string(SourceGoogleDrive)
	}
	source := DocumentSource(normalized)
	if _, ok := connectorInputs[source]; !ok {
		return "", fmt.Errorf("unknown document source %q", s)
	}
	return source, nil
}

// Label returns the display label for the source
func (s DocumentSource) Label() string {
	if label, ok := sourceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Inputs returns the input types the source's connector accepts
func (s DocumentSource) Inputs() []InputType {
	var inputs []InputType
	for _, input := range AllInputTypes {
		if SourceAcceptsInput(s, input) {
			inputs = append(inputs, input)
		}
	}
	return inputs
}

// SourceAcceptsInput reports whether the source's connector can run with the given input type
func SourceAcceptsInput(source DocumentSource, input InputType) bool {
	for _, accepted := range connectorInputs[source] {
		if accepted == input {
			return true
		}
	}
	return false
}
