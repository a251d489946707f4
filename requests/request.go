package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	qs "github.com/google/go-querystring/query"
)

// Request describes a single DataCite API call. Implementations are
// immutable values; every With method returns a modified copy.
type Request interface {
	// Name identifies the request in errors, logs and metrics
	Name() string
	Method() string
	// Endpoint is the path relative to the API base URL
	Endpoint() string
	// Params returns the query string, or the first parameter error
	Params() (url.Values, error)
	// Body returns the JSON:API document to send, nil when there is none
	Body() ([]byte, error)
	// MemberOnly reports whether the call needs member credentials
	MemberOnly() bool
}

// ErrInvalidParameter matches every ParameterError
var ErrInvalidParameter = errors.New("invalid request parameter")

// ParameterError reports a query parameter outside its allowed range
type ParameterError struct {
	Param  string
	Value  int
	Reason string
}

// Error implements the error interface
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%d: %s", e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidParameter) match
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

const (
	minPageSize = 1
	maxPageSize = 1000
)

func checkBounds(param string, value int) error {
	if value < minPageSize || value > maxPageSize {
		return &ParameterError{
			Param:  param,
			Value:  value,
			Reason: fmt.Sprintf("must be between %d and %d", minPageSize, maxPageSize),
		}
	}
	return nil
}

// encodeParams turns a tagged params struct into url.Values
func encodeParams(params any, errs ...error) (url.Values, error) {
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	values, err := qs.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encode query parameters: %w", err)
	}
	return values, nil
}

// writeDocument is the JSON:API envelope for create and update bodies
type writeDocument struct {
	Data writeData `json:"data"`
}

type writeData struct {
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

func encodeBody(name string, attributes any) ([]byte, error) {
	body, err := json.Marshal(writeDocument{Data: writeData{Type: "dois", Attributes: attributes}})
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", name, err)
	}
	return body, nil
}

// doiPath escapes each segment of a DOI while keeping the prefix/suffix slash
func doiPath(doi string) string {
	segments := strings.Split(strings.TrimPrefix(doi, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// readRequest supplies the defaults of requests without a body
type readRequest struct{}

func (readRequest) Body() ([]byte, error) { return nil, nil }
func (readRequest) MemberOnly() bool       { return false }

// boolPtr returns a pointer to a copy of b
func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
