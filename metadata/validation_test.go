package metadata

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalDependencies(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantErr  string
		wantKeys []string
		skipKeys []string
	}{
		{
			name:    "affiliation identifier without scheme",
			value:   Affiliation{Name: "DataCite", AffiliationIdentifier: "https://ror.org/04wxnsj81"},
			wantErr: "invalid Affiliation: affiliationIdentifierScheme is required when affiliationIdentifier is set",
		},
		{
			name:    "affiliation scheme without identifier",
			value:   Affiliation{Name: "DataCite", AffiliationIdentifierScheme: "ROR"},
			wantErr: "invalid Affiliation: affiliationIdentifierScheme cannot be used without affiliationIdentifier",
		},
		{
			name:     "affiliation with both",
			value:    Affiliation{Name: "DataCite", AffiliationIdentifier: "https://ror.org/04wxnsj81", AffiliationIdentifierScheme: "ROR"},
			wantKeys: []string{"name", "affiliationIdentifier", "affiliationIdentifierScheme"},
		},
		{
			name:     "affiliation with neither",
			value:    Affiliation{Name: "DataCite"},
			wantKeys: []string{"name"},
			skipKeys: []string{"affiliationIdentifier", "affiliationIdentifierScheme", "schemeUri"},
		},
		{
			name:    "publisher identifier without scheme",
			value:   Publisher{Name: "DataCite", PublisherIdentifier: "https://ror.org/04wxnsj81"},
			wantErr: "invalid Publisher: publisherIdentifierScheme is required when publisherIdentifier is set",
		},
		{
			name:    "publisher scheme without identifier",
			value:   Publisher{Name: "DataCite", PublisherIdentifierScheme: "ROR"},
			wantErr: "invalid Publisher: publisherIdentifierScheme cannot be used without publisherIdentifier",
		},
		{
			name:     "publisher with both",
			value:    Publisher{Name: "DataCite", PublisherIdentifier: "https://ror.org/04wxnsj81", PublisherIdentifierScheme: "ROR"},
			wantKeys: []string{"name", "publisherIdentifier", "publisherIdentifierScheme"},
		},
		{
			name:    "name identifier without scheme",
			value:   NameIdentifier{NameIdentifier: "https://orcid.org/0000-0001-5727-2427"},
			wantErr: "invalid NameIdentifier: nameIdentifierScheme is required when nameIdentifier is set",
		},
		{
			name:    "name identifier scheme alone",
			value:   NameIdentifier{NameIdentifierScheme: "ORCID"},
			wantErr: "invalid NameIdentifier: nameIdentifierScheme cannot be used without nameIdentifier",
		},
		{
			name:     "name identifier with neither",
			value:    NameIdentifier{SchemeURI: "https://orcid.org"},
			wantKeys: []string{"schemeUri"},
			skipKeys: []string{"nameIdentifier", "nameIdentifierScheme"},
		},
		{
			name:    "funder identifier without type",
			value:   FundingReference{FunderName: "European Commission", FunderIdentifier: "https://doi.org/10.13039/501100000780"},
			wantErr: "invalid FundingReference: funderIdentifierType is required when funderIdentifier is set",
		},
		{
			name:    "funder type without identifier",
			value:   FundingReference{FunderName: "European Commission", FunderIdentifierType: "Crossref Funder ID"},
			wantErr: "invalid FundingReference: funderIdentifierType cannot be used without funderIdentifier",
		},
		{
			name: "funder with both",
			value: FundingReference{
				FunderName:           "European Commission",
				FunderIdentifier:     "https://doi.org/10.13039/501100000780",
				FunderIdentifierType: "Crossref Funder ID",
			},
			wantKeys: []string{"funderName", "funderIdentifier", "funderIdentifierType"},
			skipKeys: []string{"awardNumber", "awardUri", "awardTitle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var members map[string]any
			require.NoError(t, json.Unmarshal(out, &members))
			for _, key := range tt.wantKeys {
				assert.Contains(t, members, key)
			}
			for _, key := range tt.skipKeys {
				assert.NotContains(t, members, key)
			}
		})
	}
}

func TestNestedValidationSurfacesFromParent(t *testing.T) {
	creator := Creator{
		Name: "Fenner, Martin",
		Affiliation: []Affiliation{
			{Name: "DataCite", AffiliationIdentifier: "https://ror.org/04wxnsj81"},
		},
	}

	_, err := json.Marshal(creator)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Affiliation", validationErr.Type)
	assert.Equal(t, "affiliationIdentifierScheme", validationErr.Field)
}

func TestPublisherEncoding(t *testing.T) {
	out, err := json.Marshal(Publisher{Name: "DataCite e.V."})
	require.NoError(t, err)
	assert.JSONEq(t, `"DataCite e.V."`, string(out))

	out, err = json.Marshal(Publisher{Name: "DataCite e.V.", Lang: "en"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"DataCite e.V.","lang":"en"}`, string(out))

	var p Publisher
	require.NoError(t, json.Unmarshal([]byte(`"Zenodo"`), &p))
	assert.Equal(t, Publisher{Name: "Zenodo"}, p)
	assert.False(t, p.Structured())

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Zenodo","publisherIdentifier":"https://ror.org/01ggx4157","publisherIdentifierScheme":"ROR"}`), &p))
	assert.True(t, p.Structured())
}

func TestRelatedItemIdentifierSchemes(t *testing.T) {
	identifier := &RelatedItemIdentifier{
		RelatedItemIdentifier:     "10.1234/metadata",
		RelatedItemIdentifierType: RelatedIdentifierTypeDOI,
		RelatedMetadataScheme:     "citeproc+json",
		SchemeURI:                 "https://github.com/citation-style-language/schema",
		SchemeType:                "JSON",
	}

	tests := []struct {
		name         string
		relationType RelationType
		keepSchemes  bool
	}{
		{name: "has metadata keeps schemes", relationType: RelationTypeHasMetadata, keepSchemes: true},
		{name: "is metadata for keeps schemes", relationType: RelationTypeIsMetadataFor, keepSchemes: true},
		{name: "is part of drops schemes", relationType: RelationTypeIsPartOf},
		{name: "references drops schemes", relationType: RelationTypeReferences},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := RelatedItem{
				Titles:                []Title{{Title: "Journal of Metadata"}},
				RelationType:          tt.relationType,
				RelatedItemType:       ResourceTypeGeneralJournal,
				RelatedItemIdentifier: identifier,
			}

			out, err := json.Marshal(item)
			require.NoError(t, err)

			var decoded struct {
				RelatedItemIdentifier map[string]any `json:"relatedItemIdentifier"`
			}
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, "10.1234/metadata", decoded.RelatedItemIdentifier["relatedItemIdentifier"])

			for _, key := range []string{"relatedMetadataScheme", "schemeURI", "schemeType"} {
				if tt.keepSchemes {
					assert.Contains(t, decoded.RelatedItemIdentifier, key)
				} else {
					assert.NotContains(t, decoded.RelatedItemIdentifier, key)
				}
			}
		})
	}

	// the caller's value is not modified
	assert.Equal(t, "JSON", identifier.SchemeType)
}

func TestRelatedItemCreatorNames(t *testing.T) {
	var c RelatedItemCreator
	require.NoError(t, json.Unmarshal([]byte(`{"creatorName":"Smith, John","nameType":"Personal"}`), &c))
	assert.Equal(t, "Smith, John", c.Name)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Smith, John","nameType":"Personal"}`, string(out))

	err = json.Unmarshal([]byte(`{"nameType":"Personal"}`), &c)
	assert.ErrorIs(t, err, ErrContract)
}

func TestGeoLocationPolygon(t *testing.T) {
	const wire = `{
		"geoLocationPlace": "Atlantic Ocean",
		"geoLocationPolygon": [
			{"polygonPoint": {"pointLatitude": "41.991", "pointLongitude": "-71.032"}},
			{"polygonPoint": {"pointLatitude": "42.893", "pointLongitude": "-69.622"}},
			{"polygonPoint": {"pointLatitude": "41.991", "pointLongitude": "-68.211"}},
			{"polygonPoint": {"pointLatitude": "41.991", "pointLongitude": "-71.032"}},
			{"inPolygonPoint": {"pointLatitude": "42.0", "pointLongitude": "-69.9"}}
		]
	}`

	var geo GeoLocation
	require.NoError(t, json.Unmarshal([]byte(wire), &geo))
	assert.Equal(t, "Atlantic Ocean", geo.GeoLocationPlace)
	require.Len(t, geo.GeoLocationPolygon, 5)

	points := geo.PolygonPoints()
	require.Len(t, points, 4)
	assert.Equal(t, GeoLocationPoint{PointLatitude: 42.893, PointLongitude: -69.622}, points[1])
	require.NotNil(t, geo.InPolygonPoint())
	assert.Equal(t, Coordinate(-69.9), geo.InPolygonPoint().PointLongitude)

	out, err := json.Marshal(geo)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"geoLocationPlace": "Atlantic Ocean",
		"geoLocationPolygon": [
			{"polygonPoint": {"pointLatitude": 41.991, "pointLongitude": -71.032}},
			{"polygonPoint": {"pointLatitude": 42.893, "pointLongitude": -69.622}},
			{"polygonPoint": {"pointLatitude": 41.991, "pointLongitude": -68.211}},
			{"polygonPoint": {"pointLatitude": 41.991, "pointLongitude": -71.032}},
			{"inPolygonPoint": {"pointLatitude": 42, "pointLongitude": -69.9}}
		]
	}`, string(out))

	err = json.Unmarshal([]byte(`{"geoLocationPolygon":[{}]}`), &geo)
	assert.ErrorIs(t, err, ErrContract)
}

func TestGeoLocationPolygonRing(t *testing.T) {
	vertex := func(lat, lon Coordinate) GeoLocationPolygon {
		return GeoLocationPolygon{PolygonPoint: &GeoLocationPoint{PointLatitude: lat, PointLongitude: lon}}
	}
	ring := []GeoLocationPolygon{
		vertex(41.991, -71.032),
		vertex(42.893, -69.622),
		vertex(41.991, -68.211),
		vertex(41.991, -71.032),
	}

	assert.NoError(t, GeoLocation{GeoLocationPolygon: ring}.Validate())
	assert.NoError(t, GeoLocation{GeoLocationPlace: "Berlin"}.Validate())

	_, err := json.Marshal(GeoLocation{GeoLocationPolygon: ring[:3]})
	assert.ErrorIs(t, err, ErrValidation)

	open := append([]GeoLocationPolygon{}, ring[:3]...)
	open = append(open, vertex(40, -70))
	_, err = json.Marshal(GeoLocation{GeoLocationPolygon: open})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = json.Marshal(GeoLocation{GeoLocationPolygon: append(ring, GeoLocationPolygon{})})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateDOIInputValidation(t *testing.T) {
	valid := func() CreateDOIInput {
		return CreateDOIInput{
			Event:           DOIEventPublish,
			Prefix:          "10.5438",
			Creators:        []Creator{{Name: "DataCite Metadata Working Group"}},
			Titles:          []Title{{Title: "DataCite Metadata Schema Documentation"}},
			Publisher:       Publisher{Name: "DataCite e.V."},
			PublicationYear: 2016,
			Types:           ResourceType{ResourceTypeGeneral: ResourceTypeGeneralText},
			URL:             "https://schema.datacite.org/meta/kernel-4.0/",
		}
	}

	tests := []struct {
		name    string
		modify  func(*CreateDOIInput)
		wantErr string
	}{
		{name: "valid", modify: func(*CreateDOIInput) {}},
		{name: "doi instead of prefix", modify: func(c *CreateDOIInput) { c.Prefix = ""; c.DOI = "10.5438/0012" }},
		{name: "no prefix or doi", modify: func(c *CreateDOIInput) { c.Prefix = "" }, wantErr: "prefix is required"},
		{name: "no creators", modify: func(c *CreateDOIInput) { c.Creators = nil }, wantErr: "creators needs at least one creator"},
		{name: "no titles", modify: func(c *CreateDOIInput) { c.Titles = nil }, wantErr: "titles needs at least one title"},
		{name: "no publisher", modify: func(c *CreateDOIInput) { c.Publisher = Publisher{} }, wantErr: "invalid Publisher: name is required"},
		{name: "no publication year", modify: func(c *CreateDOIInput) { c.PublicationYear = 0 }, wantErr: "publicationYear is required"},
		{name: "no resource type", modify: func(c *CreateDOIInput) { c.Types = ResourceType{} }, wantErr: "resourceTypeGeneral is required"},
		{name: "no url", modify: func(c *CreateDOIInput) { c.URL = "" }, wantErr: "url is required"},
		{name: "unknown event", modify: func(c *CreateDOIInput) { c.Event = "retract" }, wantErr: "event has unknown value"},
		{
			name: "nested creator is validated",
			modify: func(c *CreateDOIInput) {
				c.Creators[0].NameIdentifiers = []NameIdentifier{{NameIdentifierScheme: "ORCID"}}
			},
			wantErr: "cannot be used without nameIdentifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.modify(&input)

			out, err := json.Marshal(input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var members map[string]any
			require.NoError(t, json.Unmarshal(out, &members))
			assert.Equal(t, "DataCite e.V.", members["publisher"])
			assert.NotContains(t, members, "subjects")
			assert.NotContains(t, members, "container")
		})
	}
}

func TestDOIInputOnlyWritesSetMembers(t *testing.T) {
	year := Year(2020)
	out, err := json.Marshal(DOIInput{Event: DOIEventHide, PublicationYear: &year})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"hide","publicationYear":2020}`, string(out))

	out, err = json.Marshal(DOIInput{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}
