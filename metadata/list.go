package metadata

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// ListDOIData is one page of a DOI search
type ListDOIData struct {
	Data  []DOIData `json:"data"`
	Meta  ListMeta  `json:"meta"`
	Links ListLinks `json:"links"`
}

// UnmarshalJSON requires data and meta
func (l *ListDOIData) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias ListDOIData
	var v alias
	if err := decodeObject(data, "ListDOIData", &v, "data", "meta"); err != nil {
		return err
	}
	*l = ListDOIData(v)
	return nil
}

// ListMeta carries the totals and facet counts of a DOI search.
// Facets are only present when not disabled with disable-facets.
type ListMeta struct {
	Total            int        `json:"total"`
	TotalPages       int        `json:"totalPages,omitempty"`
	Page             int        `json:"page,omitempty"`
	States           []MetaItem `json:"states,omitempty"`
	ResourceTypes    []MetaItem `json:"resourceTypes,omitempty"`
	Created          []MetaItem `json:"created,omitempty"`
	Published        []MetaItem `json:"published,omitempty"`
	Registered       []MetaItem `json:"registered,omitempty"`
	Providers        []MetaItem `json:"providers,omitempty"`
	Clients          []MetaItem `json:"clients,omitempty"`
	Affiliations     []MetaItem `json:"affiliations,omitempty"`
	Prefixes         []MetaItem `json:"prefixes,omitempty"`
	Certificates     []MetaItem `json:"certificates,omitempty"`
	Licenses         []MetaItem `json:"licenses,omitempty"`
	SchemaVersions   []MetaItem `json:"schemaVersions,omitempty"`
	LinkChecksStatus []MetaItem `json:"linkChecksStatus,omitempty"`
	Subjects         []MetaItem `json:"subjects,omitempty"`
	FieldsOfScience  []MetaItem `json:"fieldsOfScience,omitempty"`
	Citations        []MetaItem `json:"citations,omitempty"`
	Views            []MetaItem `json:"views,omitempty"`
	Downloads        []MetaItem `json:"downloads,omitempty"`
}

// UnmarshalJSON requires total
func (m *ListMeta) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias ListMeta
	var v alias
	if err := decodeObject(data, "ListMeta", &v, "total"); err != nil {
		return err
	}
	*m = ListMeta(v)
	return nil
}

// MetaItem is one facet bucket
type MetaItem struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Count int    `json:"count"`
}

// UnmarshalJSON requires id and count. Numeric ids such as years are kept as text.
func (m *MetaItem) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var v struct {
		ID    json.RawMessage `json:"id"`
		Title string          `json:"title"`
		Count int             `json:"count"`
	}
	if err := decodeObject(data, "MetaItem", &v, "id", "count"); err != nil {
		return err
	}
	id := string(bytes.TrimSpace(v.ID))
	if strings.HasPrefix(id, `"`) {
		if err := json.Unmarshal(v.ID, &id); err != nil {
			return &DecodeError{Type: "MetaItem", Field: "id", Reason: "invalid field", Err: err}
		}
	}
	*m = MetaItem{ID: id, Title: v.Title, Count: v.Count}
	return nil
}

// ListLinks are the pagination links of a list response
type ListLinks struct {
	Self string `json:"self,omitempty"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// HasNext reports whether another page follows
func (l ListLinks) HasNext() bool {
	return l.Next != ""
}

// NextCursor extracts page[cursor] from the next link, if any
func (l ListLinks) NextCursor() string {
	if l.Next == "" {
		return ""
	}
	u, err := url.Parse(l.Next)
	if err != nil {
		return ""
	}
	return u.Query().Get("page[cursor]")
}

// NextPage extracts page[number] from the next link, if any
func (l ListLinks) NextPage() string {
	if l.Next == "" {
		return ""
	}
	u, err := url.Parse(l.Next)
	if err != nil {
		return ""
	}
	return u.Query().Get("page[number]")
}
