package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	tests := []struct {
		name     string
		build    func(*Builder)
		expected string
	}{
		{
			name:     "empty builder",
			build:    func(b *Builder) {},
			expected: "",
		},
		{
			name: "equals",
			build: func(b *Builder) {
				b.WhereEquals("publicationYear", "2023")
			},
			expected: "publicationYear:2023",
		},
		{
			name: "contains",
			build: func(b *Builder) {
				b.WhereContains(FieldTitlesTitle, "climate")
			},
			expected: "titles.title:*climate*",
		},
		{
			name: "starts and ends with",
			build: func(b *Builder) {
				b.WhereStartsWith(FieldCreatorsName, "Smith").WhereEndsWith(FieldDOI, "0012")
			},
			expected: "creators.name:Smith* doi:*0012",
		},
		{
			name: "value with space is quoted",
			build: func(b *Builder) {
				b.Where("a", ":", "x y")
			},
			expected: `a:"x y"`,
		},
		{
			name: "range operator",
			build: func(b *Builder) {
				b.Where(FieldPublicationYear, ":", "[2020 TO 2023]")
			},
			expected: `publicationYear:"[2020 TO 2023]"`,
		},
		{
			name: "in",
			build: func(b *Builder) {
				b.WhereIn("f", []string{"a", "b"})
			},
			expected: `f:("a" OR "b")`,
		},
		{
			name: "not equals",
			build: func(b *Builder) {
				b.WhereNotEquals(FieldTypesResourceTypeGeneral, "Text")
			},
			expected: "-types.resourceTypeGeneral:Text",
		},
		{
			name: "not equals quotes values with spaces",
			build: func(b *Builder) {
				b.WhereNotEquals(FieldCreatorsName, "Garza, Kristian")
			},
			expected: `-creators.name:"Garza, Kristian"`,
		},
		{
			name: "not in emits one clause per value",
			build: func(b *Builder) {
				b.WhereNotIn("state", []string{"draft", "registered"})
			},
			expected: "-state:draft -state:registered",
		},
		{
			name: "and group",
			build: func(b *Builder) {
				b.WhereAnd(func(sub *Builder) {
					sub.WhereEquals("a", "1").WhereEquals("b", "2")
				})
			},
			expected: "(a:1 AND b:2)",
		},
		{
			name: "or group after clause",
			build: func(b *Builder) {
				b.WhereEquals("x", "1").WhereOr(func(sub *Builder) {
					sub.WhereEquals("a", "1").WhereEquals("b", "2")
				})
			},
			expected: "x:1 (a:1 OR b:2)",
		},
		{
			name: "empty and group adds nothing",
			build: func(b *Builder) {
				b.WhereEquals("x", "1").WhereAnd(func(sub *Builder) {})
			},
			expected: "x:1",
		},
		{
			name: "empty or group adds nothing",
			build: func(b *Builder) {
				b.WhereOr(func(sub *Builder) {})
			},
			expected: "",
		},
		{
			name: "exists and not exists",
			build: func(b *Builder) {
				b.WhereExists(FieldFundingReferencesFunderName).WhereNotExists(FieldRelatedItemsRelationType)
			},
			expected: "fundingReferences.funderName:* -relatedItems.relationType:*",
		},
		{
			name: "exact always quotes",
			build: func(b *Builder) {
				b.WhereExact(FieldSubjectsSubject, "physics")
			},
			expected: `subjects.subject:"physics"`,
		},
		{
			name: "wildcard keeps pattern",
			build: func(b *Builder) {
				b.WhereWildcard(FieldCreatorsName, "Sm?th*")
			},
			expected: "creators.name:Sm?th*",
		},
		{
			name: "wildcard helpers do not quote",
			build: func(b *Builder) {
				b.WhereContainsWildcard("t", "a b").
					WhereStartsWithWildcard("t", "c").
					WhereEndsWithWildcard("t", "d")
			},
			expected: "t:*a b* t:c* t:*d",
		},
		{
			name: "wildcard exact escapes spaces",
			build: func(b *Builder) {
				b.WhereWildcardExact(FieldTitlesTitle, "*climate change*")
			},
			expected: `titles.title:*climate\ change*`,
		},
		{
			name: "raw",
			build: func(b *Builder) {
				b.Raw("publicationYear:>2020").WhereEquals("a", "b")
			},
			expected: "publicationYear:>2020 a:b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)
			assert.Equal(t, tt.expected, b.Build())
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestBuilderNilAndClone(t *testing.T) {
	var nilBuilder *Builder
	assert.Equal(t, "", nilBuilder.Build())
	assert.Equal(t, 0, nilBuilder.Len())

	base := New().WhereEquals("a", "1")
	clone := base.Clone().WhereEquals("b", "2")

	assert.Equal(t, "a:1", base.Build())
	assert.Equal(t, "a:1 b:2", clone.Build())
	assert.Equal(t, 2, clone.Len())
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "relatedItems.relatedItemIdentifier.schemeURI", FieldRelatedItemsSchemeURI.String())
	assert.Equal(t, "doi", string(FieldDOI))
}
