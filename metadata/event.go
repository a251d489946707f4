package metadata

import (
	"encoding/json"
	"time"
)

// EventData is an Event Data event linking a subject to an object, e.g. a
// DOI cited by another DOI or a usage count for a month
type EventData struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Attributes    EventAttributes    `json:"attributes"`
	Relationships EventRelationships `json:"relationships"`
}

// UnmarshalJSON requires id, type, attributes and relationships
func (e *EventData) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias EventData
	var v alias
	if err := decodeObject(data, "EventData", &v, "id", "type", "attributes", "relationships"); err != nil {
		return err
	}
	*e = EventData(v)
	return nil
}

// EventAttributes describes the event. Source, relation type and message
// action are resolved against their vocabularies.
type EventAttributes struct {
	SubjID         string             `json:"subj-id"`
	ObjID          string             `json:"obj-id"`
	SourceID       EventSource        `json:"source-id"`
	RelationTypeID EventRelationType  `json:"relation-type-id"`
	Total          int                `json:"total"`
	MessageAction  EventMessageAction `json:"message-action,omitempty"`
	SourceToken    string             `json:"source-token,omitempty"`
	License        string             `json:"license,omitempty"`
	OccurredAt     time.Time          `json:"occurred-at,omitzero"`
	Timestamp      time.Time          `json:"timestamp,omitzero"`
}

// Validate checks mandatory members and vocabularies
func (e EventAttributes) Validate() error {
	const typeName = "EventAttributes"
	if err := requireField(typeName, "subj-id", e.SubjID); err != nil {
		return err
	}
	if err := requireField(typeName, "obj-id", e.ObjID); err != nil {
		return err
	}
	if err := requireField(typeName, "source-id", string(e.SourceID)); err != nil {
		return err
	}
	if err := requireField(typeName, "relation-type-id", string(e.RelationTypeID)); err != nil {
		return err
	}
	if err := validateEnum(typeName, "source-id", e.SourceID); err != nil {
		return err
	}
	if err := validateEnum(typeName, "relation-type-id", e.RelationTypeID); err != nil {
		return err
	}
	return validateEnum(typeName, "message-action", e.MessageAction)
}

// MarshalJSON validates before encoding
func (e EventAttributes) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias EventAttributes
	return json.Marshal(alias(e))
}

// UnmarshalJSON requires subj-id, obj-id, source-id and relation-type-id
func (e *EventAttributes) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias EventAttributes
	var v alias
	if err := decodeObject(data, "EventAttributes", &v,
		"subj-id", "obj-id", "source-id", "relation-type-id"); err != nil {
		return err
	}
	*e = EventAttributes(v)
	return nil
}

// EventRelationships points at the subject and object resources
type EventRelationships struct {
	Subj RelationshipOne `json:"subj"`
	Obj  RelationshipOne `json:"obj"`
}

// UnmarshalJSON requires subj and obj
func (r *EventRelationships) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias EventRelationships
	var v alias
	if err := decodeObject(data, "EventRelationships", &v, "subj", "obj"); err != nil {
		return err
	}
	*r = EventRelationships(v)
	return nil
}

// ListEventData is one page of an event search
type ListEventData struct {
	Data  []EventData `json:"data"`
	Meta  EventMeta   `json:"meta"`
	Links ListLinks   `json:"links"`
}

// UnmarshalJSON requires data and meta
func (l *ListEventData) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias ListEventData
	var v alias
	if err := decodeObject(data, "ListEventData", &v, "data", "meta"); err != nil {
		return err
	}
	*l = ListEventData(v)
	return nil
}

// EventMeta carries the totals and facets of an event search
type EventMeta struct {
	Total         int        `json:"total"`
	TotalPages    int        `json:"total-pages"`
	Page          int        `json:"page"`
	Sources       []MetaItem `json:"sources,omitempty"`
	Occurred      []MetaItem `json:"occurred,omitempty"`
	Prefixes      []MetaItem `json:"prefixes,omitempty"`
	CitationTypes []MetaItem `json:"citation-types,omitempty"`
	RelationTypes []MetaItem `json:"relation-types,omitempty"`
	Registrants   []MetaItem `json:"registrants,omitempty"`
}

// UnmarshalJSON requires total
func (m *EventMeta) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias EventMeta
	var v alias
	if err := decodeObject(data, "EventMeta", &v, "total"); err != nil {
		return err
	}
	*m = EventMeta(v)
	return nil
}
