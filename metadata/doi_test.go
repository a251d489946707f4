package metadata

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDOI() DOIData {
	registered := time.Date(2016, 9, 19, 21, 53, 56, 0, time.UTC)
	return DOIData{
		ID:   "10.5438/0012",
		Type: "dois",
		Attributes: DOIAttributes{
			DOI:    "10.5438/0012",
			Prefix: "10.5438",
			Suffix: "0012",
			Identifiers: []Identifier{
				{Identifier: "https://doi.org/10.5438/0012", IdentifierType: "DOI"},
			},
			Creators: Creators{
				{
					Name:     "DataCite Metadata Working Group",
					NameType: NameTypeOrganizational,
					Affiliation: []Affiliation{
						{Name: "DataCite", AffiliationIdentifier: "https://ror.org/04wxnsj81", AffiliationIdentifierScheme: "ROR"},
					},
				},
			},
			Titles: []Title{
				{Title: "DataCite Metadata Schema Documentation for the Publication and Citation of Research Data v4.0", Lang: "en"},
				{Title: "Version 4.0", TitleType: TitleTypeSubtitle},
			},
			Publisher:       &Publisher{Name: "DataCite e.V."},
			Container:       Container{Type: "Series", Title: "DataCite Metadata Schema"},
			PublicationYear: 2016,
			Subjects:        []Subject{{Subject: "metadata", SubjectScheme: "keyword"}},
			Contributors: []Contributor{
				{Name: "Fenner, Martin", ContributorType: ContributorTypeEditor, NameType: NameTypePersonal, GivenName: "Martin", FamilyName: "Fenner",
					NameIdentifiers: []NameIdentifier{{NameIdentifier: "https://orcid.org/0000-0003-1419-2405", NameIdentifierScheme: "ORCID", SchemeURI: "https://orcid.org"}}},
			},
			Dates:    []Date{{Date: "2016-09-19", DateType: DateTypeIssued}},
			Language: "en",
			Types:    &ResourceType{ResourceTypeGeneral: ResourceTypeGeneralText, ResourceType: "Documentation", RIS: "RPRT"},
			RelatedIdentifiers: []RelatedIdentifier{
				{RelatedIdentifier: "10.5438/0013", RelatedIdentifierType: RelatedIdentifierTypeDOI, RelationType: RelationTypeIsDocumentedBy, ResourceTypeGeneral: ResourceTypeGeneralText},
			},
			RelatedItems: []RelatedItem{
				{
					Titles:          []Title{{Title: "Journal of Metadata"}},
					RelationType:    RelationTypeIsPartOf,
					RelatedItemType: ResourceTypeGeneralJournal,
					RelatedItemIdentifier: &RelatedItemIdentifier{
						RelatedItemIdentifier:     "1234-5678",
						RelatedItemIdentifierType: RelatedIdentifierTypeISSN,
					},
					Creators:        []RelatedItemCreator{{Name: "Smith, John", NameType: NameTypePersonal}},
					Contributors:    []RelatedItemContributor{{Name: "Doe, Jane", ContributorType: ContributorTypeEditor}},
					PublicationYear: 2015,
					Volume:          "4",
					FirstPage:       "1",
					LastPage:        "45",
				},
			},
			Sizes:   []string{"45 pages"},
			Formats: []string{"application/pdf"},
			Version: "4.0",
			RightsList: []Rights{
				{Rights: "Creative Commons Attribution 4.0 International", RightsURI: "https://creativecommons.org/licenses/by/4.0/legalcode", RightsIdentifier: "cc-by-4.0", RightsIdentifierScheme: "SPDX"},
			},
			Descriptions: Descriptions{
				{Description: "Documentation of the DataCite Metadata Schema", DescriptionType: DescriptionTypeAbstract},
			},
			GeoLocations: []GeoLocation{
				{
					GeoLocationPlace: "Hannover",
					GeoLocationPoint: &GeoLocationPoint{PointLatitude: 52.3759, PointLongitude: 9.732},
					GeoLocationBox:   &GeoLocationBox{WestBoundLongitude: 9.6, EastBoundLongitude: 9.9, SouthBoundLatitude: 52.3, NorthBoundLatitude: 52.4},
				},
			},
			FundingReferences: []FundingReference{
				{FunderName: "European Commission", FunderIdentifier: "https://doi.org/10.13039/501100000780", FunderIdentifierType: "Crossref Funder ID", AwardNumber: "654039"},
			},
			URL:               "https://schema.datacite.org/meta/kernel-4.0/index.html",
			MetadataVersion:   3,
			SchemaVersion:     "http://datacite.org/schema/kernel-4",
			Source:            "mds",
			IsActive:          true,
			State:             DOIStateFindable,
			ViewCount:         12,
			ViewsOverTime:     TimeSeries{"2023-01": 5, "2023-02": 7},
			CitationCount:     2,
			CitationsOverTime: TimeSeries{"2019": 2},
			Created:           registered,
			Registered:        &registered,
			Published:         "2016",
			Updated:           registered.Add(24 * time.Hour),
		},
		Relationships: Relationships{
			Client:    RelationshipOne{Data: &RelationshipItem{ID: "datacite.datacite", Type: "clients"}},
			Provider:  &RelationshipOne{Data: &RelationshipItem{ID: "datacite", Type: "providers"}},
			Media:     &RelationshipOne{Data: &RelationshipItem{ID: "10.5438/0012", Type: "media"}},
			Citations: RelationshipMany{Data: []RelationshipItem{{ID: "10.1234/abc", Type: "dois"}, {ID: "10.1234/def", Type: "dois"}}},
		},
	}
}

func TestDOIDataRoundTrip(t *testing.T) {
	original := sampleDOI()

	out, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded DOIData
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, original, decoded)

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(out), string(again))
}

func TestDOIDataElidesEmptyOptionals(t *testing.T) {
	doi := DOIData{
		ID:   "10.5438/draft",
		Type: "dois",
		Attributes: DOIAttributes{
			DOI:      "10.5438/draft",
			State:    DOIStateDraft,
			Creators: Creators{{Name: "Someone"}},
			Titles:   []Title{{Title: "Untitled"}},
		},
		Relationships: Relationships{
			Client: RelationshipOne{Data: &RelationshipItem{ID: "datacite.test", Type: "clients"}},
		},
	}

	out, err := json.Marshal(doi)
	require.NoError(t, err)

	var envelope struct {
		Attributes    map[string]any `json:"attributes"`
		Relationships map[string]any `json:"relationships"`
	}
	require.NoError(t, json.Unmarshal(out, &envelope))

	assert.ElementsMatch(t, []string{"doi", "creators", "titles", "state"}, keys(envelope.Attributes))
	assert.ElementsMatch(t, []string{"client"}, keys(envelope.Relationships))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDOIDataHelpers(t *testing.T) {
	doi := sampleDOI()

	assert.Contains(t, doi.Title(), "DataCite Metadata Schema Documentation")
	assert.Equal(t, "datacite.datacite", doi.Relationships.ClientID())
	assert.Equal(t, []string{"10.1234/abc", "10.1234/def"}, doi.Relationships.Citations.IDs())
	assert.Equal(t, []string{"DataCite Metadata Working Group"}, doi.Attributes.Creators.Names())

	abstract, ok := doi.Attributes.Descriptions.Abstract()
	require.True(t, ok)
	assert.Equal(t, "Documentation of the DataCite Metadata Schema", abstract.Description)

	assert.Equal(t, []string{"2023-01", "2023-02"}, doi.Attributes.ViewsOverTime.Periods())
	assert.Equal(t, 12, doi.Attributes.ViewsOverTime.Total())

	input := doi.Input()
	assert.Equal(t, "10.5438/0012", input.DOI)
	require.NotNil(t, input.PublicationYear)
	assert.Equal(t, Year(2016), *input.PublicationYear)
	require.NotNil(t, input.Container)
	assert.Equal(t, "Series", input.Container.Type)
	assert.Empty(t, input.Event)

	out, err := json.Marshal(input)
	require.NoError(t, err)
	var members map[string]any
	require.NoError(t, json.Unmarshal(out, &members))
	assert.NotContains(t, members, "state")
	assert.NotContains(t, members, "viewCount")
	assert.Equal(t, "DataCite e.V.", members["publisher"])
}

func TestDOIAttributesLenientDecoding(t *testing.T) {
	payload := `{
		"doi": "10.5438/lenient",
		"state": "findable",
		"publicationYear": "2021",
		"creators": [
			{"name": "Kept, First", "nameType": "Personal"},
			null,
			{"nameType": "Personal"},
			{"name": "Bad Type", "nameType": "Robot"},
			{"name": "Kept, Second", "affiliation": ["Plain Affiliation"]}
		],
		"titles": [{"title": "A title", "titleType": "Headline"}],
		"descriptions": [
			{"description": "Good", "descriptionType": "Abstract"},
			{"description": "Unknown type", "descriptionType": "Summary"}
		],
		"contentUrl": "https://example.org/file.csv",
		"viewsOverTime": [{"yearMonth": "2023-01", "total": 4}, {"yearMonth": "2023-02", "total": 1}],
		"citationsOverTime": [{"year": "2020", "total": 3}],
		"registered": null,
		"publisher": null
	}`

	var attrs DOIAttributes
	require.NoError(t, json.Unmarshal([]byte(payload), &attrs))

	assert.Equal(t, []string{"Kept, First", "Kept, Second"}, attrs.Creators.Names())
	assert.Equal(t, []Affiliation{{Name: "Plain Affiliation"}}, attrs.Creators[1].Affiliation)
	require.Len(t, attrs.Titles, 1)
	assert.Equal(t, TitleType(""), attrs.Titles[0].TitleType)
	assert.Equal(t, "A title", attrs.Titles[0].Title)
	require.Len(t, attrs.Descriptions, 1)
	assert.Equal(t, "Good", attrs.Descriptions[0].Description)
	assert.Equal(t, Year(2021), attrs.PublicationYear)
	assert.Equal(t, StringList{"https://example.org/file.csv"}, attrs.ContentURL)
	assert.Equal(t, TimeSeries{"2023-01": 4, "2023-02": 1}, attrs.ViewsOverTime)
	assert.Equal(t, TimeSeries{"2020": 3}, attrs.CitationsOverTime)
	assert.Nil(t, attrs.Registered)
	assert.Nil(t, attrs.Publisher)
}

func TestDecodeContractErrors(t *testing.T) {
	client := `"relationships": {"client": {"data": {"id": "datacite.datacite", "type": "clients"}}}`
	attributes := `"attributes": {"doi": "10.5438/0012", "state": "findable", "creators": [], "titles": []}`

	tests := []struct {
		name    string
		payload string
		target  any
		wantMsg string
	}{
		{
			name:    "not an object",
			payload: `[]`,
			target:  &DOIData{},
			wantMsg: "decode DOIData: expected an object",
		},
		{
			name:    "missing relationships",
			payload: `{"id": "10.5438/0012", "type": "dois", ` + attributes + `}`,
			target:  &DOIData{},
			wantMsg: "decode DOIData.relationships: missing required field",
		},
		{
			name:    "null id",
			payload: `{"id": null, "type": "dois", ` + attributes + `, ` + client + `}`,
			target:  &DOIData{},
			wantMsg: "decode DOIData.id: missing required field",
		},
		{
			name:    "missing doi",
			payload: `{"id": "x", "type": "dois", "attributes": {"state": "draft", "creators": [], "titles": []}, ` + client + `}`,
			target:  &DOIData{},
			wantMsg: "decode DOIAttributes.doi: missing required field",
		},
		{
			name:    "client without data",
			payload: `{"id": "x", "type": "dois", ` + attributes + `, "relationships": {"client": {"data": null}}}`,
			target:  &DOIData{},
			wantMsg: "decode Relationships.client: missing required field",
		},
		{
			name:    "unknown state",
			payload: `{"doi": "x", "state": "deleted", "creators": [], "titles": []}`,
			target:  &DOIAttributes{},
			wantMsg: `"deleted" is not a valid state`,
		},
		{
			name:    "wrong type",
			payload: `{"doi": 12, "state": "draft", "creators": [], "titles": []}`,
			target:  &DOIAttributes{},
			wantMsg: "decode DOIAttributes.doi: invalid field",
		},
		{
			name:    "strict relation type",
			payload: `{"relatedIdentifier": "10.1/x", "relatedIdentifierType": "DOI", "relationType": "Likes"}`,
			target:  &RelatedIdentifier{},
			wantMsg: `"Likes" is not a valid relationType`,
		},
		{
			name:    "creators not a list",
			payload: `{"doi": "x", "state": "draft", "creators": {}, "titles": []}`,
			target:  &DOIAttributes{},
			wantMsg: "decode Creators: expected an array",
		},
		{
			name:    "event with unknown source",
			payload: `{"subj-id": "a", "obj-id": "b", "source-id": "twitter", "relation-type-id": "references"}`,
			target:  &EventAttributes{},
			wantMsg: `"twitter" is not a valid source-id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.payload), tt.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrContract)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestListDecoding(t *testing.T) {
	payload := `{
		"data": [],
		"meta": {
			"total": 2,
			"totalPages": 1,
			"page": 1,
			"states": [{"id": "findable", "title": "Findable", "count": 2}],
			"published": [{"id": 2016, "title": "2016", "count": 2}]
		},
		"links": {
			"self": "https://api.datacite.org/dois?page%5Bcursor%5D=1",
			"next": "https://api.datacite.org/dois?page%5Bcursor%5D=MTQ2MTQ1&page%5Bsize%5D=25"
		}
	}`

	var list ListDOIData
	require.NoError(t, json.Unmarshal([]byte(payload), &list))

	assert.Equal(t, 2, list.Meta.Total)
	assert.Equal(t, []MetaItem{{ID: "findable", Title: "Findable", Count: 2}}, list.Meta.States)
	assert.Equal(t, "2016", list.Meta.Published[0].ID)
	assert.True(t, list.Links.HasNext())
	assert.Equal(t, "MTQ2MTQ1", list.Links.NextCursor())
	assert.Empty(t, list.Links.NextPage())

	err := json.Unmarshal([]byte(`{"data": []}`), &list)
	assert.ErrorIs(t, err, ErrContract)
}

func TestEventDecoding(t *testing.T) {
	payload := `{
		"id": "3e7d5e3b-bd8f-4b38-8e3d-2f1ac9a1b0c4",
		"type": "events",
		"attributes": {
			"subj-id": "https://doi.org/10.1234/citing",
			"obj-id": "https://doi.org/10.5438/0012",
			"source-id": "datacite-related",
			"relation-type-id": "references",
			"total": 1,
			"message-action": "create",
			"source-token": "29a9a478-518f-4cbd-a133-a0dcef63d547",
			"license": "https://creativecommons.org/publicdomain/zero/1.0/",
			"occurred-at": "2019-08-26T18:02:34.000Z",
			"timestamp": "2019-08-26T18:05:11.481Z"
		},
		"relationships": {
			"subj": {"data": {"id": "https://doi.org/10.1234/citing", "type": "objects"}},
			"obj": {"data": {"id": "https://doi.org/10.5438/0012", "type": "objects"}}
		}
	}`

	var event EventData
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, EventSourceDataCiteRelated, event.Attributes.SourceID)
	assert.Equal(t, EventRelationTypeReferences, event.Attributes.RelationTypeID)
	assert.Equal(t, EventMessageActionCreate, event.Attributes.MessageAction)
	assert.Equal(t, 2019, event.Attributes.OccurredAt.Year())
	assert.Equal(t, "https://doi.org/10.5438/0012", event.Relationships.Obj.Data.ID)

	out, err := json.Marshal(event)
	require.NoError(t, err)
	var again EventData
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, event, again)
}

func TestActivityDecoding(t *testing.T) {
	payload := `{
		"data": [{
			"id": "0b6e4d3a-5f0a-4a39-9d6a-6d6f4b1b2c3d",
			"type": "activities",
			"attributes": {
				"prov:wasGeneratedBy": "https://api.datacite.org/activities/0b6e4d3a",
				"prov:generatedAtTime": "2016-09-19T21:53:56.000Z",
				"prov:wasDerivedFrom": "https://doi.org/10.5438/0012",
				"prov:wasAttributedTo": null,
				"action": "update",
				"version": 2,
				"changes": {"url": ["https://old.example.org", "https://new.example.org"]}
			}
		}],
		"meta": {"total": 1, "totalPages": 1, "page": 1},
		"links": {"self": "https://api.datacite.org/dois/10.5438/0012/activities"}
	}`

	var activities DOIActivitiesData
	require.NoError(t, json.Unmarshal([]byte(payload), &activities))

	require.Len(t, activities.Data, 1)
	attrs := activities.Data[0].Attributes
	assert.Equal(t, "update", attrs.Action)
	assert.Equal(t, 2, attrs.Version)
	assert.Empty(t, attrs.WasAttributedTo)
	assert.Contains(t, attrs.Changes, "url")
	assert.Equal(t, 1, activities.Meta.Total)
}
