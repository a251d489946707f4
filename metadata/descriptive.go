package metadata

import (
	"encoding/json"
)

// Title is a name or title of the resource. A title without TitleType is a main title.
type Title struct {
	Title     string    `json:"title"`
	TitleType TitleType `json:"titleType,omitempty"`
	Lang      string    `json:"lang,omitempty"`
}

// Validate checks mandatory members
func (t Title) Validate() error {
	if err := requireField("Title", "title", t.Title); err != nil {
		return err
	}
	return validateEnum("Title", "titleType", t.TitleType)
}

// MarshalJSON validates before encoding
func (t Title) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	type alias Title
	return json.Marshal(alias(t))
}

// UnmarshalJSON requires title. An unknown titleType is dropped instead of
// failing the decode.
func (t *Title) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var v struct {
		Title     string `json:"title"`
		TitleType string `json:"titleType"`
		Lang      string `json:"lang"`
	}
	if err := decodeObject(data, "Title", &v, "title"); err != nil {
		return err
	}
	*t = Title{
		Title:     v.Title,
		TitleType: titleTypeVocabulary.tryParse(v.TitleType),
		Lang:      v.Lang,
	}
	return nil
}

// Description is additional information about the resource
type Description struct {
	Description     string          `json:"description"`
	DescriptionType DescriptionType `json:"descriptionType"`
	Lang            string          `json:"lang,omitempty"`
}

// Validate checks mandatory members
func (d Description) Validate() error {
	if err := requireField("Description", "description", d.Description); err != nil {
		return err
	}
	if err := requireField("Description", "descriptionType", string(d.DescriptionType)); err != nil {
		return err
	}
	return validateEnum("Description", "descriptionType", d.DescriptionType)
}

// MarshalJSON validates before encoding
func (d Description) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type alias Description
	return json.Marshal(alias(d))
}

// UnmarshalJSON requires description and descriptionType
func (d *Description) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Description
	var v alias
	if err := decodeObject(data, "Description", &v, "description", "descriptionType"); err != nil {
		return err
	}
	*d = Description(v)
	return nil
}

// Descriptions is a description list. Like Creators, decoding drops
// individual malformed entries.
type Descriptions []Description

// UnmarshalJSON decodes the list, skipping entries that do not decode
func (d *Descriptions) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	items, err := decodeLenient[Description](data)
	if err != nil {
		return &DecodeError{Type: "Descriptions", Reason: "expected an array", Err: err}
	}
	*d = items
	return nil
}

// Abstract returns the first abstract, if any
func (d Descriptions) Abstract() (Description, bool) {
	for _, desc := range d {
		if desc.DescriptionType == DescriptionTypeAbstract {
			return desc, true
		}
	}
	return Description{}, false
}

// Subject is a keyword, classification code or key phrase
type Subject struct {
	Subject            string `json:"subject"`
	SubjectScheme      string `json:"subjectScheme,omitempty"`
	SchemeURI          string `json:"schemeUri,omitempty"`
	ValueURI           string `json:"valueUri,omitempty"`
	ClassificationCode string `json:"classificationCode,omitempty"`
	Lang               string `json:"lang,omitempty"`
}

// Validate checks mandatory members
func (s Subject) Validate() error {
	return requireField("Subject", "subject", s.Subject)
}

// MarshalJSON validates before encoding
func (s Subject) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Subject
	return json.Marshal(alias(s))
}

// UnmarshalJSON requires subject
func (s *Subject) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Subject
	var v alias
	if err := decodeObject(data, "Subject", &v, "subject"); err != nil {
		return err
	}
	*s = Subject(v)
	return nil
}

// Date is a date relevant to the work. Date values follow W3CDTF or RKMS-ISO8601 ranges.
type Date struct {
	Date            string   `json:"date"`
	DateType        DateType `json:"dateType"`
	DateInformation string   `json:"dateInformation,omitempty"`
}

// Validate checks mandatory members
func (d Date) Validate() error {
	if err := requireField("Date", "date", d.Date); err != nil {
		return err
	}
	if err := requireField("Date", "dateType", string(d.DateType)); err != nil {
		return err
	}
	return validateEnum("Date", "dateType", d.DateType)
}

// MarshalJSON validates before encoding
func (d Date) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type alias Date
	return json.Marshal(alias(d))
}

// UnmarshalJSON requires date and dateType
func (d *Date) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Date
	var v alias
	if err := decodeObject(data, "Date", &v, "date", "dateType"); err != nil {
		return err
	}
	*d = Date(v)
	return nil
}

// Rights is a rights statement, typically a license
type Rights struct {
	Rights                 string `json:"rights"`
	RightsURI              string `json:"rightsUri,omitempty"`
	RightsIdentifier       string `json:"rightsIdentifier,omitempty"`
	RightsIdentifierScheme string `json:"rightsIdentifierScheme,omitempty"`
	SchemeURI              string `json:"schemeUri,omitempty"`
	Lang                   string `json:"lang,omitempty"`
}

// Validate checks mandatory members
func (r Rights) Validate() error {
	return requireField("Rights", "rights", r.Rights)
}

// MarshalJSON validates before encoding
func (r Rights) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type alias Rights
	return json.Marshal(alias(r))
}

// UnmarshalJSON requires rights
func (r *Rights) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias Rights
	var v alias
	if err := decodeObject(data, "Rights", &v, "rights"); err != nil {
		return err
	}
	*r = Rights(v)
	return nil
}

// FundingReference describes financial support for the resource
type FundingReference struct {
	FunderName           string `json:"funderName"`
	FunderIdentifier     string `json:"funderIdentifier,omitempty"`
	FunderIdentifierType string `json:"funderIdentifierType,omitempty"`
	AwardNumber          string `json:"awardNumber,omitempty"`
	AwardURI             string `json:"awardUri,omitempty"`
	AwardTitle           string `json:"awardTitle,omitempty"`
}

// Validate checks funderName and the funderIdentifier/funderIdentifierType dependency
func (f FundingReference) Validate() error {
	if err := requireField("FundingReference", "funderName", f.FunderName); err != nil {
		return err
	}
	return requirePair("FundingReference",
		"funderIdentifier", f.FunderIdentifier,
		"funderIdentifierType", f.FunderIdentifierType)
}

// MarshalJSON validates before encoding
func (f FundingReference) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	type alias FundingReference
	return json.Marshal(alias(f))
}

// UnmarshalJSON requires funderName
func (f *FundingReference) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias FundingReference
	var v alias
	if err := decodeObject(data, "FundingReference", &v, "funderName"); err != nil {
		return err
	}
	*f = FundingReference(v)
	return nil
}

// Container describes the series or repository that holds the resource
type Container struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	FirstPage string `json:"firstPage,omitempty"`
}

// IsZero reports whether no member is set
func (c Container) IsZero() bool {
	return c == Container{}
}

// ResourceType is the type of the resource. ResourceTypeGeneral is mandatory;
// the citation style members are filled in by the API on read.
type ResourceType struct {
	ResourceTypeGeneral ResourceTypeGeneral `json:"resourceTypeGeneral"`
	ResourceType        string              `json:"resourceType,omitempty"`
	RIS                 string              `json:"ris,omitempty"`
	BibTeX              string              `json:"bibtex,omitempty"`
	Citeproc            string              `json:"citeproc,omitempty"`
	SchemaOrg           string              `json:"schemaOrg,omitempty"`
}

// Validate checks resourceTypeGeneral
func (r ResourceType) Validate() error {
	if err := requireField("ResourceType", "resourceTypeGeneral", string(r.ResourceTypeGeneral)); err != nil {
		return err
	}
	return validateEnum("ResourceType", "resourceTypeGeneral", r.ResourceTypeGeneral)
}

// MarshalJSON validates before encoding
func (r ResourceType) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type alias ResourceType
	return json.Marshal(alias(r))
}

// UnmarshalJSON requires resourceTypeGeneral
func (r *ResourceType) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias ResourceType
	var v alias
	if err := decodeObject(data, "ResourceType", &v, "resourceTypeGeneral"); err != nil {
		return err
	}
	*r = ResourceType(v)
	return nil
}
