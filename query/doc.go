// Package query builds search strings for the DataCite "query" parameter.
//
// DataCite exposes an Elasticsearch query-string syntax over DOI metadata.
// Builder collects field clauses in order and joins them with spaces, which
// the API treats as an implicit AND.
//
// # Usage
//
//	q := query.New().
//		WhereEquals(query.FieldPublicationYear, "2023").
//		WhereContains(query.FieldTitlesTitle, "climate").
//		WhereOr(func(b *query.Builder) {
//			b.WhereEquals(query.FieldTypesResourceTypeGeneral, "Dataset")
//			b.WhereEquals(query.FieldTypesResourceTypeGeneral, "Software")
//		})
//
//	fmt.Println(q.Build())
//	// publicationYear:2023 titles.title:*climate* (types.resourceTypeGeneral:Dataset OR types.resourceTypeGeneral:Software)
//
// Values containing a space are quoted by Where and its wrappers. Wildcard
// methods leave the pattern untouched, except WhereWildcardExact which
// escapes spaces. Raw appends a clause verbatim for syntax the builder does
// not cover.
//
// The builder never fails. A malformed clause is sent as-is and rejected by
// the API.
package query
