package operations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/datacite/metadata"
)

func TestFormatDOIList(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No DOIs found\n", f.FormatDOIList(nil, FormatOptions{}))

	first := doi("10.1/a", 3)
	first.Attributes.PublicationYear = 2016
	first.Attributes.Creators = metadata.Creators{{Name: "Garza, Kristian"}}
	first.Attributes.Types = &metadata.ResourceType{ResourceTypeGeneral: metadata.ResourceTypeGeneralDataset}
	first.Attributes.Created = time.Date(2016, 9, 19, 0, 0, 0, 0, time.UTC)
	first.Attributes.Descriptions = metadata.Descriptions{
		{Description: "An abstract.", DescriptionType: metadata.DescriptionTypeAbstract},
	}
	second := doi("10.1/b", 0)

	out := f.FormatDOIList([]metadata.DOIData{first, second}, FormatOptions{ShowDetails: true, ShowCounts: true})

	assert.Contains(t, out, "DOIs (2):")
	assert.Contains(t, out, "├── 10.1/a")
	assert.Contains(t, out, "╰── 10.1/b")
	assert.Contains(t, out, "Record 10.1/a (2016)")
	assert.Contains(t, out, "Creators: Garza, Kristian")
	assert.Contains(t, out, "State: findable | Type: Dataset")
	assert.Contains(t, out, "Citations: 3 | Views: 0 | Downloads: 0")
	assert.Contains(t, out, "Created: 2016-09-19")
	assert.Contains(t, out, "Abstract: An abstract.")
}

func TestFormatDOIsToDelete(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Empty(t, f.FormatDOIsToDelete(nil))

	out := f.FormatDOIsToDelete([]string{"10.1/a"})
	assert.Contains(t, out, "DOI to be deleted (1):")
	assert.Contains(t, out, "╰── 10.1/a")
}

func TestFormatEventList(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.FormatEventList([]metadata.EventData{{
		ID: "e1",
		Attributes: metadata.EventAttributes{
			SubjID:         "https://doi.org/10.1/a",
			ObjID:          "https://doi.org/10.1/b",
			SourceID:       metadata.EventSourceCrossref,
			RelationTypeID: metadata.EventRelationTypeCites,
			Total:          1,
		},
	}})

	assert.Contains(t, out, "Event (1):")
	assert.Contains(t, out, "https://doi.org/10.1/a cites https://doi.org/10.1/b")
	assert.Contains(t, out, "Source: crossref | Total: 1")
}

func TestFormatActivities(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.FormatActivities([]metadata.ActivityData{{
		ID: "a1",
		Attributes: metadata.ActivityAttributes{
			Action:          "update",
			Version:         2,
			GeneratedAtTime: "2019-07-09T09:43:41.000Z",
			Changes:         map[string]any{"titles": nil, "aasm_state": nil},
		},
	}})

	assert.Contains(t, out, "Activities (1):")
	assert.Contains(t, out, "╰── v2 update (2019-07-09T09:43:41.000Z)")
	assert.Contains(t, out, "Changed: aasm_state, titles")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b c", truncate("a\n  b\tc", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
