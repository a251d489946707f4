package requests

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/s0up4200/datacite/metadata"
)

// GetEvent fetches a single Event Data event by id
type GetEvent struct {
	readRequest
	id string
}

// NewGetEvent returns a request for the event with the given id
func NewGetEvent(id string) GetEvent {
	return GetEvent{id: id}
}

func (r GetEvent) Name() string                { return "GetEvent" }
func (r GetEvent) Method() string              { return http.MethodGet }
func (r GetEvent) Endpoint() string            { return "/events/" + url.PathEscape(r.id) }
func (r GetEvent) Params() (url.Values, error) { return nil, nil }

// ListEvents searches Event Data events
type ListEvents struct {
	readRequest
	params listEventsParams
}

type listEventsParams struct {
	pagination
	sorting

	Query           string   `url:"query,omitempty"`
	SubjID          string   `url:"subj-id,omitempty"`
	ObjID           string   `url:"obj-id,omitempty"`
	DOI             string   `url:"doi,omitempty"`
	Prefix          []string `url:"prefix,omitempty,comma"`
	ORCID           string   `url:"orcid,omitempty"`
	YearMonth       string   `url:"year-month,omitempty"`
	SourceID        []string `url:"source-id,omitempty,comma"`
	RelationTypeID  []string `url:"relation-type-id,omitempty,comma"`
	Subtype         string   `url:"subtype,omitempty"`
	CitationType    string   `url:"citation-type,omitempty"`
	RegistrantID    string   `url:"registrant-id,omitempty"`
	PublicationYear string   `url:"publication-year,omitempty"`
}

// NewListEvents returns an unfiltered event search
func NewListEvents() ListEvents {
	return ListEvents{}
}

func (r ListEvents) Name() string     { return "ListEvents" }
func (r ListEvents) Method() string   { return http.MethodGet }
func (r ListEvents) Endpoint() string { return "/events" }

// Params encodes every parameter that was set
func (r ListEvents) Params() (url.Values, error) {
	return encodeParams(r.params, r.Err())
}

// Err returns the first parameter error recorded by a With method
func (r ListEvents) Err() error {
	return r.params.sizeErr
}

func (r ListEvents) WithQuery(q string) ListEvents {
	r.params.Query = q
	return r
}

func (r ListEvents) WithPage(n int) ListEvents {
	r.params.Number = n
	return r
}

// WithPageSize sets page[size]; values outside 1-1000 are reported by Err and Params
func (r ListEvents) WithPageSize(n int) ListEvents {
	r.params.pagination = r.params.pagination.withSize(n)
	return r
}

func (r ListEvents) WithCursor(cursor string) ListEvents {
	r.params.Cursor = cursor
	return r
}

// Cursor returns the page[cursor] value, if any
func (r ListEvents) Cursor() string {
	return r.params.Cursor
}

func (r ListEvents) WithSort(opt EventSortOption, dir SortDirection) ListEvents {
	r.params.Sort = sortValue(string(opt), dir)
	return r
}

func (r ListEvents) WithSortAsc(opt EventSortOption) ListEvents {
	return r.WithSort(opt, SortAsc)
}

func (r ListEvents) WithSortDesc(opt EventSortOption) ListEvents {
	return r.WithSort(opt, SortDesc)
}

// WithSubjID filters by subject, e.g. "https://doi.org/10.1234/abc"
func (r ListEvents) WithSubjID(id string) ListEvents {
	r.params.SubjID = id
	return r
}

// WithObjID filters by object
func (r ListEvents) WithObjID(id string) ListEvents {
	r.params.ObjID = id
	return r
}

// WithDOI matches events where the DOI is either subject or object
func (r ListEvents) WithDOI(doi string) ListEvents {
	r.params.DOI = doi
	return r
}

func (r ListEvents) WithPrefix(prefixes ...string) ListEvents {
	r.params.Prefix = slices.Clone(prefixes)
	return r
}

func (r ListEvents) WithORCID(orcid string) ListEvents {
	r.params.ORCID = orcid
	return r
}

// WithYearMonth filters by month of occurrence, e.g. "2023-04"
func (r ListEvents) WithYearMonth(yearMonth string) ListEvents {
	r.params.YearMonth = yearMonth
	return r
}

func (r ListEvents) WithSourceID(sources ...metadata.EventSource) ListEvents {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = string(s)
	}
	r.params.SourceID = out
	return r
}

func (r ListEvents) WithRelationTypeID(types ...metadata.EventRelationType) ListEvents {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	r.params.RelationTypeID = out
	return r
}

func (r ListEvents) WithSubtype(subtype string) ListEvents {
	r.params.Subtype = subtype
	return r
}

func (r ListEvents) WithCitationType(citationType string) ListEvents {
	r.params.CitationType = citationType
	return r
}

func (r ListEvents) WithRegistrantID(id string) ListEvents {
	r.params.RegistrantID = id
	return r
}

func (r ListEvents) WithPublicationYear(year string) ListEvents {
	r.params.PublicationYear = year
	return r
}

// GetHeartbeat checks that the API is up
type GetHeartbeat struct {
	readRequest
}

// NewGetHeartbeat returns a heartbeat request
func NewGetHeartbeat() GetHeartbeat {
	return GetHeartbeat{}
}

func (r GetHeartbeat) Name() string                { return "GetHeartbeat" }
func (r GetHeartbeat) Method() string              { return http.MethodGet }
func (r GetHeartbeat) Endpoint() string            { return "/heartbeat" }
func (r GetHeartbeat) Params() (url.Values, error) { return nil, nil }
