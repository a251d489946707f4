// Package requests defines one value type per DataCite API endpoint.
//
// A request knows its method, path, query parameters and body; sending it
// is the job of the datacite package. Requests are immutable: every With
// method returns a copy, so a base request can be reused for variants.
//
//	base := requests.NewListDOIs().
//		WithClientID("datacite.datacite").
//		WithPageSize(100)
//
//	newest := base.WithSortDesc(requests.SortByCreated)
//	cited := base.WithHasCitations(1).WithSortDesc(requests.SortByCitationCount)
//
// Out-of-range page or sample sizes do not panic. The first such error is
// kept on the value and returned by Err and Params, so it surfaces before
// any network call. It matches ErrInvalidParameter.
//
// CreateDOI, UpdateDOI and DeleteDOI report MemberOnly. Their bodies are
// validated while encoding; see the metadata package.
package requests
