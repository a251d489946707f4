package requests

import (
	"fmt"
	"slices"
	"strconv"
)

// SortDirection orders sorted results
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOption is a sortable DOI field
type SortOption string

const (
	SortByName          SortOption = "name"
	SortByCreated       SortOption = "created"
	SortByUpdated       SortOption = "updated"
	SortByPublished     SortOption = "published"
	SortByViewCount     SortOption = "view-count"
	SortByDownloadCount SortOption = "download-count"
	SortByCitationCount SortOption = "citation-count"
	SortByTitle         SortOption = "title"
	SortByRelevance     SortOption = "relevance"
)

var sortOptions = []SortOption{
	SortByName, SortByCreated, SortByUpdated, SortByPublished, SortByViewCount,
	SortByDownloadCount, SortByCitationCount, SortByTitle, SortByRelevance,
}

// ParseSortOption resolves a sort field name
func ParseSortOption(s string) (SortOption, error) {
	if opt := SortOption(s); slices.Contains(sortOptions, opt) {
		return opt, nil
	}
	return "", fmt.Errorf("unknown sort option %q", s)
}

// SortOptions returns every DOI sort field
func SortOptions() []SortOption {
	return slices.Clone(sortOptions)
}

func (s SortOption) String() string {
	return string(s)
}

// EventSortOption is a sortable event field
type EventSortOption string

const (
	EventSortByRelevance EventSortOption = "relevance"
	EventSortByObjID     EventSortOption = "obj-id"
	EventSortByTotal     EventSortOption = "total"
	EventSortByCreated   EventSortOption = "created"
	EventSortByUpdated   EventSortOption = "updated"
)

var eventSortOptions = []EventSortOption{
	EventSortByRelevance, EventSortByObjID, EventSortByTotal, EventSortByCreated, EventSortByUpdated,
}

// ParseEventSortOption resolves an event sort field name
func ParseEventSortOption(s string) (EventSortOption, error) {
	if opt := EventSortOption(s); slices.Contains(eventSortOptions, opt) {
		return opt, nil
	}
	return "", fmt.Errorf("unknown event sort option %q", s)
}

func (s EventSortOption) String() string {
	return string(s)
}

// SampleGroup restricts a random sample to one bucket per group
type SampleGroup string

const (
	SampleByClient       SampleGroup = "client"
	SampleByProvider     SampleGroup = "provider"
	SampleByResourceType SampleGroup = "resource-type"
)

func (g SampleGroup) String() string {
	return string(g)
}

// sortValue encodes a field and direction. Descending adds a "-" prefix;
// relevance is always descending and ignores the direction.
func sortValue(field string, dir SortDirection) string {
	if field == string(SortByRelevance) {
		return field
	}
	if dir == SortDesc {
		return "-" + field
	}
	return field
}

type pagination struct {
	Number int    `url:"page[number],omitempty"`
	Size   int    `url:"page[size],omitempty"`
	Cursor string `url:"page[cursor],omitempty"`

	sizeErr error
}

func (p pagination) withSize(size int) pagination {
	p.sizeErr = checkBounds("page[size]", size)
	if p.sizeErr == nil {
		p.Size = size
	}
	return p
}

type sorting struct {
	Sort string `url:"sort,omitempty"`
}

type sampling struct {
	Random      *bool       `url:"random,omitempty"`
	SampleGroup SampleGroup `url:"sample-group,omitempty"`
	SampleSize  int         `url:"sample-size,omitempty"`

	sizeErr error
}

func (s sampling) withSize(size int) sampling {
	s.sizeErr = checkBounds("sample-size", size)
	if s.sizeErr == nil {
		s.SampleSize = size
	}
	return s
}

// additional toggles extra detail in DOI responses
type additional struct {
	Affiliation *bool `url:"affiliation,omitempty"`
	Publisher   *bool `url:"publisher,omitempty"`
}

func joinInts(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}
