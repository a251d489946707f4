package metadata

// DOIActivitiesData is the change history of a DOI
type DOIActivitiesData struct {
	Data  []ActivityData `json:"data"`
	Meta  ActivityMeta   `json:"meta"`
	Links ListLinks      `json:"links"`
}

// UnmarshalJSON requires data
func (d *DOIActivitiesData) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias DOIActivitiesData
	var v alias
	if err := decodeObject(data, "DOIActivitiesData", &v, "data"); err != nil {
		return err
	}
	*d = DOIActivitiesData(v)
	return nil
}

// ActivityData is one recorded change
type ActivityData struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes ActivityAttributes `json:"attributes"`
}

// UnmarshalJSON requires id, type and attributes
func (a *ActivityData) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias ActivityData
	var v alias
	if err := decodeObject(data, "ActivityData", &v, "id", "type", "attributes"); err != nil {
		return err
	}
	*a = ActivityData(v)
	return nil
}

// ActivityAttributes uses W3C PROV terms to describe who changed what.
// Changes maps attribute names to their new value, or an [old, new] pair.
type ActivityAttributes struct {
	WasGeneratedBy  string         `json:"prov:wasGeneratedBy"`
	GeneratedAtTime string         `json:"prov:generatedAtTime"`
	WasDerivedFrom  string         `json:"prov:wasDerivedFrom"`
	WasAttributedTo string         `json:"prov:wasAttributedTo,omitempty"`
	Action          string         `json:"action"`
	Version         int            `json:"version"`
	Changes         map[string]any `json:"changes,omitempty"`
}

// UnmarshalJSON requires the generation, derivation and action members
func (a *ActivityAttributes) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias ActivityAttributes
	var v alias
	if err := decodeObject(data, "ActivityAttributes", &v,
		"prov:wasGeneratedBy", "prov:generatedAtTime", "prov:wasDerivedFrom", "action"); err != nil {
		return err
	}
	*a = ActivityAttributes(v)
	return nil
}

// ActivityMeta carries the totals of an activity listing
type ActivityMeta struct {
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
}
