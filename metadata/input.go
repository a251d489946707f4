package metadata

import (
	"encoding/json"
)

// CreateDOIInput is the attribute set sent when registering a new DOI.
// Either Prefix (the API mints a suffix) or a full DOI must be given.
// An empty Event creates a draft.
type CreateDOIInput struct {
	Event                DOIEvent              `json:"event,omitempty"`
	Prefix               string                `json:"prefix,omitempty"`
	DOI                  string                `json:"doi,omitempty"`
	Identifiers          []Identifier          `json:"identifiers,omitempty"`
	AlternateIdentifiers []AlternateIdentifier `json:"alternateIdentifiers,omitempty"`
	Creators             []Creator             `json:"creators"`
	Titles               []Title               `json:"titles"`
	Publisher            Publisher             `json:"publisher"`
	Container            *Container            `json:"container,omitempty"`
	PublicationYear      Year                  `json:"publicationYear"`
	Subjects             []Subject             `json:"subjects,omitempty"`
	Contributors         []Contributor         `json:"contributors,omitempty"`
	Dates                []Date                `json:"dates,omitempty"`
	Language             string                `json:"language,omitempty"`
	Types                ResourceType          `json:"types"`
	RelatedIdentifiers   []RelatedIdentifier   `json:"relatedIdentifiers,omitempty"`
	RelatedItems         []RelatedItem         `json:"relatedItems,omitempty"`
	Sizes                []string              `json:"sizes,omitempty"`
	Formats              []string              `json:"formats,omitempty"`
	Version              string                `json:"version,omitempty"`
	RightsList           []Rights              `json:"rightsList,omitempty"`
	Descriptions         []Description         `json:"descriptions,omitempty"`
	GeoLocations         []GeoLocation         `json:"geoLocations,omitempty"`
	FundingReferences    []FundingReference    `json:"fundingReferences,omitempty"`
	URL                  string                `json:"url"`
	ContentURL           StringList            `json:"contentUrl,omitempty"`
	SchemaVersion        string                `json:"schemaVersion,omitempty"`
}

// Validate checks the properties DataCite requires for a new DOI
func (c CreateDOIInput) Validate() error {
	const typeName = "CreateDOIInput"
	if c.Prefix == "" && c.DOI == "" {
		return &ValidationError{Type: typeName, Field: "prefix", Reason: "is required when doi is not set"}
	}
	if err := validateEnum(typeName, "event", c.Event); err != nil {
		return err
	}
	if len(c.Creators) == 0 {
		return &ValidationError{Type: typeName, Field: "creators", Reason: "needs at least one creator"}
	}
	if len(c.Titles) == 0 {
		return &ValidationError{Type: typeName, Field: "titles", Reason: "needs at least one title"}
	}
	if err := c.Publisher.Validate(); err != nil {
		return err
	}
	if c.PublicationYear == 0 {
		return &ValidationError{Type: typeName, Field: "publicationYear", Reason: "is required"}
	}
	if err := c.Types.Validate(); err != nil {
		return err
	}
	if err := requireField(typeName, "url", c.URL); err != nil {
		return err
	}
	return validateMetadata(metadataLists{
		identifiers:          c.Identifiers,
		alternateIdentifiers: c.AlternateIdentifiers,
		creators:             c.Creators,
		titles:               c.Titles,
		subjects:             c.Subjects,
		contributors:         c.Contributors,
		dates:                c.Dates,
		relatedIdentifiers:   c.RelatedIdentifiers,
		relatedItems:         c.RelatedItems,
		rightsList:           c.RightsList,
		descriptions:         c.Descriptions,
		geoLocations:         c.GeoLocations,
		fundingReferences:    c.FundingReferences,
	})
}

// MarshalJSON validates before encoding
func (c CreateDOIInput) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias CreateDOIInput
	return json.Marshal(alias(c))
}

// DOIInput is the attribute set sent when updating a DOI. Every member is
// optional; only the ones set are written, so the API leaves the rest alone.
type DOIInput struct {
	Event                DOIEvent              `json:"event,omitempty"`
	DOI                  string                `json:"doi,omitempty"`
	Identifiers          []Identifier          `json:"identifiers,omitempty"`
	AlternateIdentifiers []AlternateIdentifier `json:"alternateIdentifiers,omitempty"`
	Creators             []Creator             `json:"creators,omitempty"`
	Titles               []Title               `json:"titles,omitempty"`
	Publisher            *Publisher            `json:"publisher,omitempty"`
	Container            *Container            `json:"container,omitempty"`
	PublicationYear      *Year                 `json:"publicationYear,omitempty"`
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
	Descriptions         []Description         `json:"descriptions,omitempty"`
	GeoLocations         []GeoLocation         `json:"geoLocations,omitempty"`
	FundingReferences    []FundingReference    `json:"fundingReferences,omitempty"`
	URL                  string                `json:"url,omitempty"`
	ContentURL           StringList            `json:"contentUrl,omitempty"`
	SchemaVersion        string                `json:"schemaVersion,omitempty"`
}

// Validate checks the members that are set
func (d DOIInput) Validate() error {
	if err := validateEnum("DOIInput", "event", d.Event); err != nil {
		return err
	}
	if d.Publisher != nil {
		if err := d.Publisher.Validate(); err != nil {
			return err
		}
	}
	if d.Types != nil {
		if err := d.Types.Validate(); err != nil {
			return err
		}
	}
	return validateMetadata(metadataLists{
		identifiers:          d.Identifiers,
		alternateIdentifiers: d.AlternateIdentifiers,
		creators:             d.Creators,
		titles:               d.Titles,
		subjects:             d.Subjects,
		contributors:         d.Contributors,
		dates:                d.Dates,
		relatedIdentifiers:   d.RelatedIdentifiers,
		relatedItems:         d.RelatedItems,
		rightsList:           d.RightsList,
		descriptions:         d.Descriptions,
		geoLocations:         d.GeoLocations,
		fundingReferences:    d.FundingReferences,
	})
}

// MarshalJSON validates before encoding
func (d DOIInput) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type alias DOIInput
	return json.Marshal(alias(d))
}
