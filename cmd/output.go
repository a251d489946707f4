package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/operations"
)

// Output formats accepted by --output
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be 'table', 'json' or 'yaml')", format)
	}
}

// doiView is the flattened record printed by json and yaml output
type doiView struct {
	DOI                 string     `json:"doi" yaml:"doi"`
	Title               string     `json:"title" yaml:"title"`
	Creators            []string   `json:"creators,omitempty" yaml:"creators,omitempty"`
	Publisher           string     `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	PublicationYear     int        `json:"publicationYear,omitempty" yaml:"publicationYear,omitempty"`
	ResourceTypeGeneral string     `json:"resourceTypeGeneral,omitempty" yaml:"resourceTypeGeneral,omitempty"`
	State               string     `json:"state,omitempty" yaml:"state,omitempty"`
	URL                 string     `json:"url,omitempty" yaml:"url,omitempty"`
	Client              string     `json:"client,omitempty" yaml:"client,omitempty"`
	Citations           int        `json:"citations" yaml:"citations"`
	Views               int        `json:"views" yaml:"views"`
	Downloads           int        `json:"downloads" yaml:"downloads"`
	Created             *time.Time `json:"created,omitempty" yaml:"created,omitempty"`
	Registered          *time.Time `json:"registered,omitempty" yaml:"registered,omitempty"`
	Updated             *time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`
}

func newDOIView(d metadata.DOIData) doiView {
	a := d.Attributes
	v := doiView{
		DOI:             a.DOI,
		Title:           d.Title(),
		Creators:        a.Creators.Names(),
		PublicationYear: int(a.PublicationYear),
		State:           a.State.String(),
		URL:             a.URL,
		Client:          d.Relationships.ClientID(),
		Citations:       a.CitationCount,
		Views:           a.ViewCount,
		Downloads:       a.DownloadCount,
		Created:         timePtr(a.Created),
		Registered:      a.Registered,
		Updated:         timePtr(a.Updated),
	}
	if a.Publisher != nil {
		v.Publisher = a.Publisher.Name
	}
	if a.Types != nil {
		v.ResourceTypeGeneral = a.Types.ResourceTypeGeneral.String()
	}
	return v
}

type eventView struct {
	ID             string     `json:"id" yaml:"id"`
	SubjID         string     `json:"subjId" yaml:"subjId"`
	RelationTypeID string     `json:"relationTypeId" yaml:"relationTypeId"`
	ObjID          string     `json:"objId" yaml:"objId"`
	SourceID       string     `json:"sourceId" yaml:"sourceId"`
	Total          int        `json:"total" yaml:"total"`
	OccurredAt     *time.Time `json:"occurredAt,omitempty" yaml:"occurredAt,omitempty"`
}

func newEventView(e metadata.EventData) eventView {
	a := e.Attributes
	return eventView{
		ID:             e.ID,
		SubjID:         a.SubjID,
		RelationTypeID: string(a.RelationTypeID),
		ObjID:          a.ObjID,
		SourceID:       string(a.SourceID),
		Total:          a.Total,
		OccurredAt:     timePtr(a.OccurredAt),
	}
}

type activityView struct {
	ID        string         `json:"id" yaml:"id"`
	Action    string         `json:"action" yaml:"action"`
	Version   int            `json:"version" yaml:"version"`
	Generated string         `json:"generatedAt" yaml:"generatedAt"`
	By        string         `json:"by,omitempty" yaml:"by,omitempty"`
	Changes   map[string]any `json:"changes,omitempty" yaml:"changes,omitempty"`
}

func newActivityView(a metadata.ActivityData) activityView {
	return activityView{
		ID:        a.ID,
		Action:    a.Attributes.Action,
		Version:   a.Attributes.Version,
		Generated: a.Attributes.GeneratedAtTime,
		By:        a.Attributes.WasAttributedTo,
		Changes:   a.Attributes.Changes,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// printer renders command results in the selected output format
type printer struct {
	w         io.Writer
	format    string
	formatter *operations.ConsoleFormatter
	options   operations.FormatOptions
}

func newPrinter(w io.Writer, format string, options operations.FormatOptions) *printer {
	return &printer{
		w:         w,
		format:    format,
		formatter: operations.NewConsoleFormatter(),
		options:   options,
	}
}

func (p *printer) encode(v any) error {
	switch p.format {
	case outputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *printer) DOIs(dois []metadata.DOIData) error {
	if p.format == outputTable {
		_, err := fmt.Fprint(p.w, p.formatter.FormatDOIList(dois, p.options))
		return err
	}
	views := make([]doiView, len(dois))
	for i, d := range dois {
		views[i] = newDOIView(d)
	}
	return p.encode(views)
}

func (p *printer) Events(events []metadata.EventData) error {
	if p.format == outputTable {
		_, err := fmt.Fprint(p.w, p.formatter.FormatEventList(events))
		return err
	}
	views := make([]eventView, len(events))
	for i, e := range events {
		views[i] = newEventView(e)
	}
	return p.encode(views)
}

func (p *printer) Activities(activities []metadata.ActivityData) error {
	if p.format == outputTable {
		_, err := fmt.Fprint(p.w, p.formatter.FormatActivities(activities))
		return err
	}
	views := make([]activityView, len(activities))
	for i, a := range activities {
		views[i] = newActivityView(a)
	}
	return p.encode(views)
}
