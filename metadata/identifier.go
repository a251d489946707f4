package metadata

import (
	"encoding/json"
)

// Identifier is an identifier of the resource other than its DOI
type Identifier struct {
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifierType"`
}

// Validate checks mandatory members
func (i Identifier) Validate() error {
	if err := requireField("Identifier", "identifier", i.Identifier); err != nil {
		return err
	}
	return requireField("Identifier", "identifierType", i.IdentifierType)
}

// MarshalJSON validates before encoding
func (i Identifier) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Identifier
	return json.Marshal(alias(i))
}

// UnmarshalJSON requires identifier and identifierType
func (i *Identifier) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Identifier
	var v alias
	if err := decodeObject(data, "Identifier", &v, "identifier", "identifierType"); err != nil {
		return err
	}
	*i = Identifier(v)
	return nil
}

// AlternateIdentifier is a local or private identifier of the resource
type AlternateIdentifier struct {
	AlternateIdentifier     string `json:"alternateIdentifier"`
	AlternateIdentifierType string `json:"alternateIdentifierType"`
}

// Validate checks mandatory members
func (a AlternateIdentifier) Validate() error {
	if err := requireField("AlternateIdentifier", "alternateIdentifier", a.AlternateIdentifier); err != nil {
		return err
	}
	return requireField("AlternateIdentifier", "alternateIdentifierType", a.AlternateIdentifierType)
}

// MarshalJSON validates before encoding
func (a AlternateIdentifier) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	type alias AlternateIdentifier
	return json.Marshal(alias(a))
}

// UnmarshalJSON requires both members
func (a *AlternateIdentifier) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias AlternateIdentifier
	var v alias
	if err := decodeObject(data, "AlternateIdentifier", &v, "alternateIdentifier", "alternateIdentifierType"); err != nil {
		return err
	}
	*a = AlternateIdentifier(v)
	return nil
}

// NameIdentifier uniquely identifies a person or organization, e.g. an ORCID iD or a ROR ID
type NameIdentifier struct {
	NameIdentifier       string `json:"nameIdentifier,omitempty"`
	NameIdentifierScheme string `json:"nameIdentifierScheme,omitempty"`
	SchemeURI            string `json:"schemeUri,omitempty"`
}

// Validate checks the nameIdentifier/nameIdentifierScheme dependency
func (n NameIdentifier) Validate() error {
	return requirePair("NameIdentifier",
		"nameIdentifier", n.NameIdentifier,
		"nameIdentifierScheme", n.NameIdentifierScheme)
}

// MarshalJSON validates before encoding
func (n NameIdentifier) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	type alias NameIdentifier
	return json.Marshal(alias(n))
}

// UnmarshalJSON decodes a name identifier; every member is optional on read
func (n *NameIdentifier) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias NameIdentifier
	var v alias
	if err := decodeObject(data, "NameIdentifier", &v); err != nil {
		return err
	}
	*n = NameIdentifier(v)
	return nil
}

// RelatedIdentifier links the resource to another resource by identifier
type RelatedIdentifier struct {
	RelatedIdentifier     string                `json:"relatedIdentifier"`
	RelatedIdentifierType RelatedIdentifierType `json:"relatedIdentifierType"`
	RelationType          RelationType          `json:"relationType"`
	ResourceTypeGeneral   ResourceTypeGeneral   `json:"resourceTypeGeneral,omitempty"`
	RelatedMetadataScheme string                `json:"relatedMetadataScheme,omitempty"`
	SchemeURI             string                `json:"schemeUri,omitempty"`
	SchemeType            string                `json:"schemeType,omitempty"`
}

// Validate checks mandatory members and vocabularies
func (r RelatedIdentifier) Validate() error {
	const typeName = "RelatedIdentifier"
	if err := requireField(typeName, "relatedIdentifier", r.RelatedIdentifier); err != nil {
		return err
	}
	if err := requireField(typeName, "relatedIdentifierType", string(r.RelatedIdentifierType)); err != nil {
		return err
	}
	if err := requireField(typeName, "relationType", string(r.RelationType)); err != nil {
		return err
	}
	if err := validateEnum(typeName, "relatedIdentifierType", r.RelatedIdentifierType); err != nil {
		return err
	}
	if err := validateEnum(typeName, "relationType", r.RelationType); err != nil {
		return err
	}
	return validateEnum(typeName, "resourceTypeGeneral", r.ResourceTypeGeneral)
}

// MarshalJSON validates before encoding
func (r RelatedIdentifier) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type alias RelatedIdentifier
	return json.Marshal(alias(r))
}

// UnmarshalJSON requires relatedIdentifier, relatedIdentifierType and relationType
func (r *RelatedIdentifier) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias RelatedIdentifier
	var v alias
	if err := decodeObject(data, "RelatedIdentifier", &v,
		"relatedIdentifier", "relatedIdentifierType", "relationType"); err != nil {
		return err
	}
	*r = RelatedIdentifier(v)
	return nil
}
