package metadata

import (
	"encoding/json"
)

// Affiliation is the organizational affiliation of a creator or contributor.
// The API sends either a bare name or an object.
type Affiliation struct {
	Name                        string `json:"name"`
	SchemeURI                   string `json:"schemeUri,omitempty"`
	AffiliationIdentifier       string `json:"affiliationIdentifier,omitempty"`
	AffiliationIdentifierScheme string `json:"affiliationIdentifierScheme,omitempty"`
}

// Validate checks the affiliationIdentifier/affiliationIdentifierScheme dependency
func (a Affiliation) Validate() error {
	if err := requireField("Affiliation", "name", a.Name); err != nil {
		return err
	}
	return requirePair("Affiliation",
		"affiliationIdentifier", a.AffiliationIdentifier,
		"affiliationIdentifierScheme", a.AffiliationIdentifierScheme)
}

// MarshalJSON validates before encoding
func (a Affiliation) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	type alias Affiliation
	return json.Marshal(alias(a))
}

// UnmarshalJSON accepts a name string or an affiliation object
func (a *Affiliation) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*a = Affiliation{Name: name}
		return nil
	}

	type alias Affiliation
	var v alias
	if err := decodeObject(data, "Affiliation", &v, "name"); err != nil {
		return err
	}
	*a = Affiliation(v)
	return nil
}

// Publisher is the entity that holds, archives, publishes or distributes the
// resource. The API sends a bare name unless publisher=true is requested.
type Publisher struct {
	Name                      string `json:"name"`
	Lang                      string `json:"lang,omitempty"`
	SchemeURI                 string `json:"schemeUri,omitempty"`
	PublisherIdentifier       string `json:"publisherIdentifier,omitempty"`
	PublisherIdentifierScheme string `json:"publisherIdentifierScheme,omitempty"`
}

// Structured reports whether the publisher carries more than a name
func (p Publisher) Structured() bool {
	return p.Lang != "" || p.SchemeURI != "" || p.PublisherIdentifier != "" || p.PublisherIdentifierScheme != ""
}

// Validate checks the publisherIdentifier/publisherIdentifierScheme dependency
func (p Publisher) Validate() error {
	if err := requireField("Publisher", "name", p.Name); err != nil {
		return err
	}
	return requirePair("Publisher",
		"publisherIdentifier", p.PublisherIdentifier,
		"publisherIdentifierScheme", p.PublisherIdentifierScheme)
}

// MarshalJSON writes a plain name string when nothing else is set, and an
// object otherwise
func (p Publisher) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.Structured() {
		return json.Marshal(p.Name)
	}
	type alias Publisher
	return json.Marshal(alias(p))
}

// UnmarshalJSON accepts a name string or a publisher object
func (p *Publisher) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = Publisher{Name: name}
		return nil
	}

	type alias Publisher
	var v alias
	if err := decodeObject(data, "Publisher", &v, "name"); err != nil {
		return err
	}
	*p = Publisher(v)
	return nil
}
