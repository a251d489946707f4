package metadata

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// DOIData is a single DOI record as returned by the API
type DOIData struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Attributes    DOIAttributes `json:"attributes"`
	Relationships Relationships `json:"relationships"`
}

// Validate checks the record attributes
func (d DOIData) Validate() error {
	return d.Attributes.Validate()
}

// MarshalJSON validates before encoding
func (d DOIData) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type alias DOIData
	return json.Marshal(alias(d))
}

// UnmarshalJSON requires id, type, attributes and relationships
func (d *DOIData) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias DOIData
	var v alias
	if err := decodeObject(data, "DOIData", &v, "id", "type", "attributes", "relationships"); err != nil {
		return err
	}
	*d = DOIData(v)
	return nil
}

// Title returns the first main title, falling back to the first title of any type
func (d DOIData) Title() string {
	for _, t := range d.Attributes.Titles {
		if t.TitleType == "" {
			return t.Title
		}
	}
	if len(d.Attributes.Titles) > 0 {
		return d.Attributes.Titles[0].Title
	}
	return ""
}

// Input copies the editable metadata of the record into an update input.
// Server-maintained attributes such as state, counts and timestamps are left out.
func (d DOIData) Input() DOIInput {
	a := d.Attributes
	in := DOIInput{
		DOI:                  a.DOI,
		Identifiers:          a.Identifiers,
		AlternateIdentifiers: a.AlternateIdentifiers,
		Creators:             a.Creators,
		Titles:               a.Titles,
		Publisher:            a.Publisher,
		Subjects:             a.Subjects,
		Contributors:         a.Contributors,
		Dates:                a.Dates,
		Language:             a.Language,
		Types:                a.Types,
		RelatedIdentifiers:   a.RelatedIdentifiers,
		RelatedItems:         a.RelatedItems,
		Sizes:                a.Sizes,
		Formats:              a.Formats,
		Version:              a.Version,
		RightsList:           a.RightsList,
		Descriptions:         a.Descriptions,
		GeoLocations:         a.GeoLocations,
		FundingReferences:    a.FundingReferences,
		URL:                  a.URL,
		ContentURL:           a.ContentURL,
		SchemaVersion:        a.SchemaVersion,
	}
	if !a.Container.IsZero() {
		container := a.Container
		in.Container = &container
	}
	if a.PublicationYear != 0 {
		year := a.PublicationYear
		in.PublicationYear = &year
	}
	return in
}

// DOIAttributes holds the metadata and server-maintained state of a DOI.
// Drafts may lack publisher, publicationYear and types, so those are
// optional when reading.
type DOIAttributes struct {
	DOI                  string                `json:"doi"`
	Prefix               string                `json:"prefix,omitempty"`
	Suffix               string                `json:"suffix,omitempty"`
	Identifiers          []Identifier          `json:"identifiers,omitempty"`
	AlternateIdentifiers []AlternateIdentifier `json:"alternateIdentifiers,omitempty"`
	Creators             Creators              `json:"creators"`
	Titles               []Title               `json:"titles"`
	Publisher            *Publisher            `json:"publisher,omitempty"`
	Container            Container             `json:"container,omitzero"`
	PublicationYear      Year                  `json:"publicationYear,omitempty"`
	Subjects             []Subject             `json:"subjects,omitempty"`
	Contributors         []Contributor         `json:"contributors,omitempty"`
	Dates                []Date                `json:"dates,omitempty"`
	Language             string                `json:"language,omitempty"`
	Types                *ResourceType         `json:"types,omitempty"`
	RelatedIdentifiers   []RelatedIdentifier   `json:"relatedIdentifiers,omitempty"`
	RelatedItems         []RelatedItem         `json:"relatedItems,omitempty"`
	Sizes                []string              `json:"sizes,omitempty"`
	Formats              []string              `json:"formats,omitempty"`
	Version              string                `json:"version,omitempty"`
	RightsList           []Rights              `json:"rightsList,omitempty"`
	Descriptions         Descriptions          `json:"descriptions,omitempty"`
	GeoLocations         []GeoLocation         `json:"geoLocations,omitempty"`
	FundingReferences    []FundingReference    `json:"fundingReferences,omitempty"`
	URL                  string                `json:"url,omitempty"`
	ContentURL           StringList            `json:"contentUrl,omitempty"`
	XML                  string                `json:"xml,omitempty"`
	MetadataVersion      int                   `json:"metadataVersion,omitempty"`
	SchemaVersion        string                `json:"schemaVersion,omitempty"`
	Source               string                `json:"source,omitempty"`
	IsActive             bool                  `json:"isActive,omitempty"`
	State                DOIState              `json:"state,omitempty"`
	Reason               string                `json:"reason,omitempty"`
	ViewCount            int                   `json:"viewCount,omitempty"`
	ViewsOverTime        TimeSeries            `json:"viewsOverTime,omitempty"`
	DownloadCount        int                   `json:"downloadCount,omitempty"`
	DownloadsOverTime    TimeSeries            `json:"downloadsOverTime,omitempty"`
	ReferenceCount       int                   `json:"referenceCount,omitempty"`
	CitationCount        int                   `json:"citationCount,omitempty"`
	CitationsOverTime    TimeSeries            `json:"citationsOverTime,omitempty"`
	PartCount            int                   `json:"partCount,omitempty"`
	PartOfCount          int                   `json:"partOfCount,omitempty"`
	VersionCount         int                   `json:"versionCount,omitempty"`
	VersionOfCount       int                   `json:"versionOfCount,omitempty"`
	Created              time.Time             `json:"created,omitzero"`
	Registered           *time.Time            `json:"registered,omitempty"`
	Published            string                `json:"published,omitempty"`
	Updated              time.Time             `json:"updated,omitzero"`
}

// Validate checks the mandatory schema properties and every nested value
func (a DOIAttributes) Validate() error {
	const typeName = "DOIAttributes"
	if err := requireField(typeName, "doi", a.DOI); err != nil {
		return err
	}
	if len(a.Creators) == 0 {
		return &ValidationError{Type: typeName, Field: "creators", Reason: "needs at least one creator"}
	}
	if len(a.Titles) == 0 {
		return &ValidationError{Type: typeName, Field: "titles", Reason: "needs at least one title"}
	}
	if err := validateEnum(typeName, "state", a.State); err != nil {
		return err
	}
	if a.Publisher != nil {
		if err := a.Publisher.Validate(); err != nil {
			return err
		}
	}
	if a.Types != nil {
		if err := a.Types.Validate(); err != nil {
			return err
		}
	}
	return validateMetadata(metadataLists{
		identifiers:          a.Identifiers,
		alternateIdentifiers: a.AlternateIdentifiers,
		creators:             a.Creators,
		titles:               a.Titles,
		subjects:             a.Subjects,
		contributors:         a.Contributors,
		dates:                a.Dates,
		relatedIdentifiers:   a.RelatedIdentifiers,
		relatedItems:         a.RelatedItems,
		rightsList:           a.RightsList,
		descriptions:         a.Descriptions,
		geoLocations:         a.GeoLocations,
		fundingReferences:    a.FundingReferences,
	})
}

// UnmarshalJSON requires doi, state, creators and titles
func (a *DOIAttributes) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias DOIAttributes
	var v alias
	if err := decodeObject(data, "DOIAttributes", &v, "doi", "state", "creators", "titles"); err != nil {
		return err
	}
	*a = DOIAttributes(v)
	return nil
}

// metadataLists groups the repeatable schema properties shared by records and inputs
type metadataLists struct {
	identifiers          []Identifier
	alternateIdentifiers []AlternateIdentifier
	creators             []Creator
	titles               []Title
	subjects             []Subject
	contributors         []Contributor
	dates                []Date
	relatedIdentifiers   []RelatedIdentifier
	relatedItems         []RelatedItem
	rightsList           []Rights
	descriptions         []Description
	geoLocations         []GeoLocation
	fundingReferences    []FundingReference
}

func validateMetadata(m metadataLists) error {
	checks := []func() error{
		func() error { return validateEach(m.identifiers) },
		func() error { return validateEach(m.alternateIdentifiers) },
		func() error { return validateEach(m.creators) },
		func() error { return validateEach(m.titles) },
		func() error { return validateEach(m.subjects) },
		func() error { return validateEach(m.contributors) },
		func() error { return validateEach(m.dates) },
		func() error { return validateEach(m.relatedIdentifiers) },
		func() error { return validateEach(m.relatedItems) },
		func() error { return validateEach(m.rightsList) },
		func() error { return validateEach(m.descriptions) },
		func() error { return validateEach(m.geoLocations) },
		func() error { return validateEach(m.fundingReferences) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// StringList is a list of strings that the API sometimes sends as a single string
type StringList []string

// UnmarshalJSON accepts "a" and ["a", "b"]
func (s *StringList) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		if one != "" {
			*s = StringList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// TimeSeries maps a period ("2023" or "2023-04") to a count
type TimeSeries map[string]int

// UnmarshalJSON accepts both a plain object and the API's list form
// [{"yearMonth": "2023-04", "total": 3}] or [{"year": "2023", "total": 3}]
func (t *TimeSeries) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		var m map[string]int
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return &DecodeError{Type: "TimeSeries", Reason: "expected period counts", Err: err}
		}
		*t = m
		return nil
	}

	var entries []struct {
		YearMonth string `json:"yearMonth"`
		Year      Year   `json:"year"`
		Total     int    `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return &DecodeError{Type: "TimeSeries", Reason: "expected period counts", Err: err}
	}
	if len(entries) == 0 {
		return nil
	}
	series := make(TimeSeries, len(entries))
	for _, e := range entries {
		period := e.YearMonth
		if period == "" && e.Year != 0 {
			period = strconv.Itoa(int(e.Year))
		}
		if period == "" {
			return &DecodeError{Type: "TimeSeries", Field: "yearMonth", Reason: "missing required field"}
		}
		series[period] += e.Total
	}
	*t = series
	return nil
}

// Periods returns the periods in ascending order
func (t TimeSeries) Periods() []string {
	periods := make([]string, 0, len(t))
	for p := range t {
		periods = append(periods, p)
	}
	sort.Strings(periods)
	return periods
}

// Total sums every period
func (t TimeSeries) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Relationships links a DOI to its repository, provider and related DOIs.
// Only client is guaranteed.
type Relationships struct {
	Client     RelationshipOne  `json:"client"`
	Provider   *RelationshipOne `json:"provider,omitempty"`
	Media      *RelationshipOne `json:"media,omitempty"`
	References RelationshipMany `json:"references,omitzero"`
	Citations  RelationshipMany `json:"citations,omitzero"`
	Parts      RelationshipMany `json:"parts,omitzero"`
	PartOf     RelationshipMany `json:"partOf,omitzero"`
	Versions   RelationshipMany `json:"versions,omitzero"`
	VersionOf  RelationshipMany `json:"versionOf,omitzero"`
}

// UnmarshalJSON requires a client with data
func (r *Relationships) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Relationships
	var v alias
	if err := decodeObject(data, "Relationships", &v, "client"); err != nil {
		return err
	}
	if v.Client.Data == nil {
		return &DecodeError{Type: "Relationships", Field: "client", Reason: "missing required field"}
	}
	*r = Relationships(v)
	return nil
}

// ClientID returns the id of the repository that manages the DOI
func (r Relationships) ClientID() string {
	if r.Client.Data == nil {
		return ""
	}
	return r.Client.Data.ID
}

// RelationshipOne is a to-one relationship
type RelationshipOne struct {
	Data *RelationshipItem `json:"data"`
}

// RelationshipMany is a to-many relationship
type RelationshipMany struct {
	Data []RelationshipItem `json:"data"`
}

// IsZero reports whether the relationship has no members
func (r RelationshipMany) IsZero() bool {
	return len(r.Data) == 0
}

// IDs returns the related resource ids in order
func (r RelationshipMany) IDs() []string {
	ids := make([]string, len(r.Data))
	for i, item := range r.Data {
		ids[i] = item.ID
	}
	return ids
}

// RelationshipItem is a resource identifier object
type RelationshipItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// UnmarshalJSON requires id and type
func (r *RelationshipItem) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias RelationshipItem
	var v alias
	if err := decodeObject(data, "RelationshipItem", &v, "id", "type"); err != nil {
		return err
	}
	*r = RelationshipItem(v)
	return nil
}
