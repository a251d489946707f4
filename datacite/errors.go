package datacite

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid datacite configuration")
	// ErrMemberRequired indicates a member-only request sent by a public client
	ErrMemberRequired = errors.New("member API access required")
)

// APIError represents a non-2xx response from the DataCite API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("datacite API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// errorDocument is the JSON:API error payload
type errorDocument struct {
	Errors []struct {
		Status string `json:"status"`
		Title  string `json:"title"`
		Source string `json:"source"`
	} `json:"errors"`
}

// newAPIError builds an APIError, taking the message from the error titles
// when the body is a JSON:API error document
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var doc errorDocument
	if err := json.Unmarshal(body, &doc); err == nil && len(doc.Errors) > 0 {
		titles := make([]string, 0, len(doc.Errors))
		for _, e := range doc.Errors {
			title := e.Title
			if e.Source != "" {
				title = e.Source + ": " + title
			}
			if title != "" {
				titles = append(titles, title)
			}
		}
		apiErr.Message = strings.Join(titles, "; ")
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
