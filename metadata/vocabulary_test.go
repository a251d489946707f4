package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularySizes(t *testing.T) {
	assert.Len(t, ResourceTypeGeneralValues(), 32)
	assert.Len(t, RelationTypeValues(), 38)
	assert.Len(t, RelatedIdentifierTypeValues(), 21)
	assert.Len(t, ContributorTypeValues(), 22)
	assert.Len(t, DateTypeValues(), 12)
	assert.Len(t, DescriptionTypeValues(), 6)
	assert.Len(t, TitleTypeValues(), 4)
	assert.Len(t, NameTypeValues(), 2)
	assert.Len(t, DOIEventValues(), 3)
	assert.Len(t, DOIStateValues(), 3)
	assert.Len(t, EventSourceValues(), 11)
	assert.Len(t, EventRelationTypeValues(), 47)
	assert.Len(t, EventMessageActionValues(), 2)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (string, error)
		input   string
		wantErr bool
	}{
		{
			name:  "resource type general",
			parse: func(s string) (string, error) { v, err := ParseResourceTypeGeneral(s); return string(v), err },
			input: "Dataset",
		},
		{
			name:    "values are case sensitive",
			parse:   func(s string) (string, error) { v, err := ParseResourceTypeGeneral(s); return string(v), err },
			input:   "dataset",
			wantErr: true,
		},
		{
			name:  "event relation type",
			parse: func(s string) (string, error) { v, err := ParseEventRelationType(s); return string(v), err },
			input: "is-cited-by",
		},
		{
			name:    "unknown event source",
			parse:   func(s string) (string, error) { v, err := ParseEventSource(s); return string(v), err },
			input:   "twitter",
			wantErr: true,
		},
		{
			name:  "doi event",
			parse: func(s string) (string, error) { v, err := ParseDOIEvent(s); return string(v), err },
			input: "publish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownValue)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestEnumText(t *testing.T) {
	var rt ResourceTypeGeneral
	require.NoError(t, json.Unmarshal([]byte(`"Software"`), &rt))
	assert.Equal(t, ResourceTypeGeneralSoftware, rt)
	assert.True(t, rt.Valid())
	assert.Equal(t, "Software", rt.String())

	err := json.Unmarshal([]byte(`"Program"`), &rt)
	assert.ErrorIs(t, err, ErrUnknownValue)

	_, err = json.Marshal(ResourceTypeGeneral("Program"))
	assert.ErrorIs(t, err, ErrValidation)

	out, err := json.Marshal(RelationTypeIsCitedBy)
	require.NoError(t, err)
	assert.JSONEq(t, `"IsCitedBy"`, string(out))
}

func TestEnumEmptyStringRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dst   any
	}{
		{"nameType", `{"name":"Jane","nameType":""}`, &Creator{}},
		{"contributorType", `{"name":"Jane","contributorType":""}`, &Contributor{}},
		{"descriptionType", `{"description":"x","descriptionType":""}`, &Description{}},
		{"dateType", `{"date":"2024","dateType":""}`, &Date{}},
		{"resourceTypeGeneral", `{"resourceTypeGeneral":""}`, &ResourceType{}},
		{"relationType", `{"relatedIdentifier":"10.1/x","relatedIdentifierType":"DOI","relationType":""}`, &RelatedIdentifier{}},
		{"relatedIdentifierType", `{"relatedIdentifier":"10.1/x","relatedIdentifierType":"","relationType":"Cites"}`, &RelatedIdentifier{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.input), tt.dst)
			assert.ErrorIs(t, err, ErrContract)
			assert.ErrorIs(t, err, ErrUnknownValue)
		})
	}

	var source EventSource
	assert.ErrorIs(t, json.Unmarshal([]byte(`""`), &source), ErrUnknownValue)
	var relation EventRelationType
	assert.ErrorIs(t, json.Unmarshal([]byte(`""`), &relation), ErrUnknownValue)
}

func TestTitleTypeStaysLenient(t *testing.T) {
	var title Title
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Main","titleType":""}`), &title))
	assert.Equal(t, TitleType(""), title.TitleType)

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Main","titleType":"Unknown"}`), &title))
	assert.Equal(t, TitleType(""), title.TitleType)
}
