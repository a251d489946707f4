package metadata

import (
	"encoding/json"
)

// Creator is a person or organization responsible for the resource
type Creator struct {
	Name            string           `json:"name"`
	NameType        NameType         `json:"nameType,omitempty"`
	GivenName       string           `json:"givenName,omitempty"`
	FamilyName      string           `json:"familyName,omitempty"`
	Lang            string           `json:"lang,omitempty"`
	Affiliation     []Affiliation    `json:"affiliation,omitempty"`
	NameIdentifiers []NameIdentifier `json:"nameIdentifiers,omitempty"`
}

// IsPerson reports whether the creator is explicitly typed as a person
func (c Creator) IsPerson() bool {
	return c.NameType == NameTypePersonal
}

// Validate checks the creator and its nested identifiers and affiliations
func (c Creator) Validate() error {
	if err := requireField("Creator", "name", c.Name); err != nil {
		return err
	}
	if err := validateEnum("Creator", "nameType", c.NameType); err != nil {
		return err
	}
	if err := validateEach(c.Affiliation); err != nil {
		return err
	}
	return validateEach(c.NameIdentifiers)
}

// MarshalJSON validates before encoding
func (c Creator) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Creator
	return json.Marshal(alias(c))
}

// UnmarshalJSON requires name
func (c *Creator) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Creator
	var v alias
	if err := decodeObject(data, "Creator", &v, "name"); err != nil {
		return err
	}
	*c = Creator(v)
	return nil
}

// Creators is a creator list. Decoding drops individual malformed entries
// instead of failing, since upstream creator data is known to be uneven.
type Creators []Creator

// UnmarshalJSON decodes the list, skipping entries that do not decode
func (c *Creators) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	items, err := decodeLenient[Creator](data)
	if err != nil {
		return &DecodeError{Type: "Creators", Reason: "expected an array", Err: err}
	}
	*c = items
	return nil
}

// Names returns the creator names in order
func (c Creators) Names() []string {
	names := make([]string, len(c))
	for i, creator := range c {
		names[i] = creator.Name
	}
	return names
}

// Contributor is an institution or person responsible for collecting,
// managing, distributing or otherwise contributing to the resource
type Contributor struct {
	Name            string           `json:"name"`
	ContributorType ContributorType  `json:"contributorType"`
	NameType        NameType         `json:"nameType,omitempty"`
	GivenName       string           `json:"givenName,omitempty"`
	FamilyName      string           `json:"familyName,omitempty"`
	Lang            string           `json:"lang,omitempty"`
	Affiliation     []Affiliation    `json:"affiliation,omitempty"`
	NameIdentifiers []NameIdentifier `json:"nameIdentifiers,omitempty"`
}

// Validate checks the contributor and its nested identifiers and affiliations
func (c Contributor) Validate() error {
	if err := requireField("Contributor", "name", c.Name); err != nil {
		return err
	}
	if err := requireField("Contributor", "contributorType", string(c.ContributorType)); err != nil {
		return err
	}
	if err := validateEnum("Contributor", "contributorType", c.ContributorType); err != nil {
		return err
	}
	if err := validateEnum("Contributor", "nameType", c.NameType); err != nil {
		return err
	}
	if err := validateEach(c.Affiliation); err != nil {
		return err
	}
	return validateEach(c.NameIdentifiers)
}

// MarshalJSON validates before encoding
func (c Contributor) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Contributor
	return json.Marshal(alias(c))
}

// UnmarshalJSON requires name and contributorType
func (c *Contributor) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Contributor
	var v alias
	if err := decodeObject(data, "Contributor", &v, "name", "contributorType"); err != nil {
		return err
	}
	*c = Contributor(v)
	return nil
}
