package metadata

import (
	"encoding/json"
)

// RelatedItem describes a related resource that may not have an identifier,
// such as a journal or book the resource is part of
type RelatedItem struct {
	Titles                []Title                  `json:"titles"`
	RelationType          RelationType             `json:"relationType"`
	RelatedItemType       ResourceTypeGeneral      `json:"relatedItemType"`
	RelatedItemIdentifier *RelatedItemIdentifier   `json:"relatedItemIdentifier,omitempty"`
	Creators              []RelatedItemCreator     `json:"creators,omitempty"`
	Contributors          []RelatedItemContributor `json:"contributors,omitempty"`
	PublicationYear       Year                     `json:"publicationYear,omitempty"`
	Volume                string                   `json:"volume,omitempty"`
	Issue                 string                   `json:"issue,omitempty"`
	Number                string                   `json:"number,omitempty"`
	NumberType            string                   `json:"numberType,omitempty"`
	FirstPage             string                   `json:"firstPage,omitempty"`
	LastPage              string                   `json:"lastPage,omitempty"`
	Publisher             string                   `json:"publisher,omitempty"`
	Edition               string                   `json:"edition,omitempty"`
}

// describesMetadata reports whether the relation is HasMetadata or IsMetadataFor
func (r RelatedItem) describesMetadata() bool {
	return r.RelationType == RelationTypeHasMetadata || r.RelationType == RelationTypeIsMetadataFor
}

// Validate checks mandatory members and nested values
func (r RelatedItem) Validate() error {
	const typeName = "RelatedItem"
	if len(r.Titles) == 0 {
		return &ValidationError{Type: typeName, Field: "titles", Reason: "needs at least one title"}
	}
	if err := requireField(typeName, "relationType", string(r.RelationType)); err != nil {
		return err
	}
	if err := requireField(typeName, "relatedItemType", string(r.RelatedItemType)); err != nil {
		return err
	}
	if err := validateEnum(typeName, "relationType", r.RelationType); err != nil {
		return err
	}
	if err := validateEnum(typeName, "relatedItemType", r.RelatedItemType); err != nil {
		return err
	}
	if err := validateEach(r.Titles); err != nil {
		return err
	}
	if r.RelatedItemIdentifier != nil {
		if err := r.RelatedItemIdentifier.Validate(); err != nil {
			return err
		}
	}
	if err := validateEach(r.Creators); err != nil {
		return err
	}
	return validateEach(r.Contributors)
}

// MarshalJSON validates before encoding. The identifier's
// relatedMetadataScheme, schemeURI and schemeType are only written for
// HasMetadata and IsMetadataFor relations.
func (r RelatedItem) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type alias RelatedItem
	v := alias(r)
	if v.RelatedItemIdentifier != nil && !r.describesMetadata() {
		id := *v.RelatedItemIdentifier
		id.RelatedMetadataScheme = ""
		id.SchemeURI = ""
		id.SchemeType = ""
		v.RelatedItemIdentifier = &id
	}
	return json.Marshal(v)
}

// UnmarshalJSON requires titles, relationType and relatedItemType
func (r *RelatedItem) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias RelatedItem
	var v alias
	if err := decodeObject(data, "RelatedItem", &v, "titles", "relationType", "relatedItemType"); err != nil {
		return err
	}
	*r = RelatedItem(v)
	return nil
}

// RelatedItemIdentifier identifies a related item
type RelatedItemIdentifier struct {
	RelatedItemIdentifier     string                `json:"relatedItemIdentifier"`
	RelatedItemIdentifierType RelatedIdentifierType `json:"relatedItemIdentifierType"`
	RelatedMetadataScheme     string                `json:"relatedMetadataScheme,omitempty"`
	SchemeURI                 string                `json:"schemeURI,omitempty"`
	SchemeType                string                `json:"schemeType,omitempty"`
}

// Validate checks mandatory members
func (r RelatedItemIdentifier) Validate() error {
	const typeName = "RelatedItemIdentifier"
	if err := requireField(typeName, "relatedItemIdentifier", r.RelatedItemIdentifier); err != nil {
		return err
	}
	if err := requireField(typeName, "relatedItemIdentifierType", string(r.RelatedItemIdentifierType)); err != nil {
		return err
	}
	return validateEnum(typeName, "relatedItemIdentifierType", r.RelatedItemIdentifierType)
}

// UnmarshalJSON requires relatedItemIdentifier and relatedItemIdentifierType
func (r *RelatedItemIdentifier) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias RelatedItemIdentifier
	var v alias
	if err := decodeObject(data, "RelatedItemIdentifier", &v,
		"relatedItemIdentifier", "relatedItemIdentifierType"); err != nil {
		return err
	}
	*r = RelatedItemIdentifier(v)
	return nil
}

// RelatedItemCreator is a creator of a related item. The API reads and
// writes its name as "name"; older payloads use "creatorName".
type RelatedItemCreator struct {
	Name       string   `json:"name"`
	NameType   NameType `json:"nameType,omitempty"`
	GivenName  string   `json:"givenName,omitempty"`
	FamilyName string   `json:"familyName,omitempty"`
	Lang       string   `json:"lang,omitempty"`
}

// Validate checks mandatory members
func (c RelatedItemCreator) Validate() error {
	if err := requireField("RelatedItemCreator", "name", c.Name); err != nil {
		return err
	}
	return validateEnum("RelatedItemCreator", "nameType", c.NameType)
}

// MarshalJSON validates before encoding
func (c RelatedItemCreator) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias RelatedItemCreator
	return json.Marshal(alias(c))
}

// UnmarshalJSON requires name or creatorName
func (c *RelatedItemCreator) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias RelatedItemCreator
	var v struct {
		alias
		CreatorName string `json:"creatorName"`
	}
	if err := decodeObject(data, "RelatedItemCreator", &v); err != nil {
		return err
	}
	if v.Name == "" {
		v.Name = v.CreatorName
	}
	if v.Name == "" {
		return &DecodeError{Type: "RelatedItemCreator", Field: "name", Reason: "missing required field"}
	}
	*c = RelatedItemCreator(v.alias)
	return nil
}

// RelatedItemContributor is a contributor to a related item
type RelatedItemContributor struct {
	Name            string          `json:"name"`
	ContributorType ContributorType `json:"contributorType"`
	NameType        NameType        `json:"nameType,omitempty"`
	GivenName       string          `json:"givenName,omitempty"`
	FamilyName      string          `json:"familyName,omitempty"`
	Lang            string          `json:"lang,omitempty"`
}

// Validate checks mandatory members
func (c RelatedItemContributor) Validate() error {
	const typeName = "RelatedItemContributor"
	if err := requireField(typeName, "name", c.Name); err != nil {
		return err
	}
	if err := requireField(typeName, "contributorType", string(c.ContributorType)); err != nil {
		return err
	}
	if err := validateEnum(typeName, "contributorType", c.ContributorType); err != nil {
		return err
	}
	return validateEnum(typeName, "nameType", c.NameType)
}

// MarshalJSON validates before encoding
func (c RelatedItemContributor) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias RelatedItemContributor
	return json.Marshal(alias(c))
}

// UnmarshalJSON requires name (or contributorName) and contributorType
func (c *RelatedItemContributor) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias RelatedItemContributor
	var v struct {
		alias
		ContributorName string `json:"contributorName"`
	}
	if err := decodeObject(data, "RelatedItemContributor", &v, "contributorType"); err != nil {
		return err
	}
	if v.Name == "" {
		v.Name = v.ContributorName
	}
	if v.Name == "" {
		return &DecodeError{Type: "RelatedItemContributor", Field: "name", Reason: "missing required field"}
	}
	*c = RelatedItemContributor(v.alias)
	return nil
}
