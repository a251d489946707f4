package requests

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/query"
)

// GetDOI fetches a single DOI
type GetDOI struct {
	readRequest
	doi    string
	params additional
}

// NewGetDOI returns a request for the given DOI, e.g. "10.5438/0012"
func NewGetDOI(doi string) GetDOI {
	return GetDOI{doi: doi}
}

func (r GetDOI) Name() string     { return "GetDOI" }
func (r GetDOI) Method() string   { return http.MethodGet }
func (r GetDOI) Endpoint() string { return "/dois/" + doiPath(r.doi) }

// Params encodes the inclusion flags
func (r GetDOI) Params() (url.Values, error) {
	return encodeParams(r.params)
}

// WithAffiliation asks for affiliations as objects instead of names
func (r GetDOI) WithAffiliation(on bool) GetDOI {
	r.params.Affiliation = boolPtr(on)
	return r
}

// WithPublisher asks for the publisher as an object instead of a name
func (r GetDOI) WithPublisher(on bool) GetDOI {
	r.params.Publisher = boolPtr(on)
	return r
}

// GetDOIActivities fetches the change history of a DOI
type GetDOIActivities struct {
	readRequest
	doi    string
	params activitiesParams
}

type activitiesParams struct {
	additional
	pagination
}

// NewGetDOIActivities returns a request for the activities of the given DOI
func NewGetDOIActivities(doi string) GetDOIActivities {
	return GetDOIActivities{doi: doi}
}

func (r GetDOIActivities) Name() string     { return "GetDOIActivities" }
func (r GetDOIActivities) Method() string   { return http.MethodGet }
func (r GetDOIActivities) Endpoint() string { return "/dois/" + doiPath(r.doi) + "/activities" }

// Params encodes inclusion flags and pagination
func (r GetDOIActivities) Params() (url.Values, error) {
	return encodeParams(r.params, r.params.sizeErr)
}

// Err returns the first parameter error recorded by a With method
func (r GetDOIActivities) Err() error {
	return r.params.sizeErr
}

func (r GetDOIActivities) WithAffiliation(on bool) GetDOIActivities {
	r.params.Affiliation = boolPtr(on)
	return r
}

func (r GetDOIActivities) WithPublisher(on bool) GetDOIActivities {
	r.params.Publisher = boolPtr(on)
	return r
}

func (r GetDOIActivities) WithPage(n int) GetDOIActivities {
	r.params.Number = n
	return r
}

// WithPageSize sets page[size]; values outside 1-1000 are reported by Err and Params
func (r GetDOIActivities) WithPageSize(n int) GetDOIActivities {
	r.params.pagination = r.params.pagination.withSize(n)
	return r
}

// ListDOIs searches DOIs
type ListDOIs struct {
	readRequest
	params listDOIsParams
}

type listDOIsParams struct {
	pagination
	sorting
	sampling
	additional

	Query                string   `url:"query,omitempty"`
	ProviderID           []string `url:"provider-id,omitempty,comma"`
	ClientID             []string `url:"client-id,omitempty,comma"`
	ConsortiumID         []string `url:"consortium-id,omitempty,comma"`
	ResourceTypeID       []string `url:"resource-type-id,omitempty,comma"`
	Prefix               []string `url:"prefix,omitempty,comma"`
	Registered           []string `url:"registered,omitempty,comma"`
	Created              []string `url:"created,omitempty,comma"`
	Published            []string `url:"published,omitempty,comma"`
	SchemaVersion        string   `url:"schema-version,omitempty"`
	AffiliationID        string   `url:"affiliation-id,omitempty"`
	FunderID             string   `url:"funder-id,omitempty"`
	UserID               string   `url:"user-id,omitempty"`
	ResourceType         []string `url:"resource-type,omitempty,comma"`
	Subject              []string `url:"subject,omitempty,comma"`
	FieldOfScience       []string `url:"field-of-science,omitempty,comma"`
	License              []string `url:"license,omitempty,comma"`
	ClientType           []string `url:"client-type,omitempty,comma"`
	Certificate          []string `url:"certificate,omitempty,comma"`
	State                []string `url:"state,omitempty,comma"`
	LinkCheckStatus      string   `url:"link-check-status,omitempty"`
	Source               string   `url:"source,omitempty"`
	HasPerson            *bool    `url:"has-person,omitempty"`
	HasAffiliation       *bool    `url:"has-affiliation,omitempty"`
	HasFundingReference  *bool    `url:"has-funding-reference,omitempty"`
	HasRelatedIdentifier *bool    `url:"has-related-identifier,omitempty"`
	HasAbstract          *bool    `url:"has-abstract,omitempty"`
	HasMetadata          *bool    `url:"has-metadata,omitempty"`
	HasOrganization      *bool    `url:"has-organization,omitempty"`
	HasFunder            *bool    `url:"has-funder,omitempty"`
	HasCitations         *int     `url:"has-citations,omitempty"`
	HasReferences        *int     `url:"has-references,omitempty"`
	HasParts             *int     `url:"has-parts,omitempty"`
	HasPartOf            *int     `url:"has-part-of,omitempty"`
	HasVersions          *int     `url:"has-versions,omitempty"`
	HasVersionOf         *int     `url:"has-version-of,omitempty"`
	HasViews             *int     `url:"has-views,omitempty"`
	HasDownloads         *int     `url:"has-downloads,omitempty"`
	Detail               *bool    `url:"detail,omitempty"`
	Fields               []string `url:"fields[dois],omitempty,comma"`
	Include              []string `url:"include,omitempty,comma"`
	DisableFacets        *bool    `url:"disable-facets,omitempty"`
}

// NewListDOIs returns an unfiltered DOI search
func NewListDOIs() ListDOIs {
	return ListDOIs{}
}

func (r ListDOIs) Name() string     { return "ListDOIs" }
func (r ListDOIs) Method() string   { return http.MethodGet }
func (r ListDOIs) Endpoint() string { return "/dois" }

// Params encodes every parameter that was set
func (r ListDOIs) Params() (url.Values, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	return encodeParams(r.params)
}

// Err returns the first parameter error recorded by a With method
func (r ListDOIs) Err() error {
	if r.params.pagination.sizeErr != nil {
		return r.params.pagination.sizeErr
	}
	return r.params.sampling.sizeErr
}

// WithQuery sets the search query built with the query package. An empty
// builder removes the parameter.
func (r ListDOIs) WithQuery(q *query.Builder) ListDOIs {
	r.params.Query = q.Build()
	return r
}

// WithQueryString sets a raw search query
func (r ListDOIs) WithQueryString(q string) ListDOIs {
	r.params.Query = q
	return r
}

func (r ListDOIs) WithPage(n int) ListDOIs {
	r.params.Number = n
	return r
}

// WithPageSize sets page[size]; values outside 1-1000 are reported by Err and Params
func (r ListDOIs) WithPageSize(n int) ListDOIs {
	r.params.pagination = r.params.pagination.withSize(n)
	return r
}

// WithCursor switches to cursor pagination. Use "1" for the first page.
func (r ListDOIs) WithCursor(cursor string) ListDOIs {
	r.params.Cursor = cursor
	return r
}

// Cursor returns the page[cursor] value, if any
func (r ListDOIs) Cursor() string {
	return r.params.Cursor
}

// PageSize returns the page[size] value, zero when unset
func (r ListDOIs) PageSize() int {
	return r.params.Size
}

func (r ListDOIs) WithSort(opt SortOption, dir SortDirection) ListDOIs {
	r.params.Sort = sortValue(string(opt), dir)
	return r
}

func (r ListDOIs) WithSortAsc(opt SortOption) ListDOIs {
	return r.WithSort(opt, SortAsc)
}

func (r ListDOIs) WithSortDesc(opt SortOption) ListDOIs {
	return r.WithSort(opt, SortDesc)
}

func (r ListDOIs) WithRandom(on bool) ListDOIs {
	r.params.Random = boolPtr(on)
	return r
}

func (r ListDOIs) WithSampleGroup(g SampleGroup) ListDOIs {
	r.params.SampleGroup = g
	return r
}

// WithSampleSize sets sample-size; values outside 1-1000 are reported by Err and Params
func (r ListDOIs) WithSampleSize(n int) ListDOIs {
	r.params.sampling = r.params.sampling.withSize(n)
	return r
}

func (r ListDOIs) WithAffiliation(on bool) ListDOIs {
	r.params.Affiliation = boolPtr(on)
	return r
}

func (r ListDOIs) WithPublisher(on bool) ListDOIs {
	r.params.Publisher = boolPtr(on)
	return r
}

func (r ListDOIs) WithProviderID(ids ...string) ListDOIs {
	r.params.ProviderID = slices.Clone(ids)
	return r
}

func (r ListDOIs) WithClientID(ids ...string) ListDOIs {
	r.params.ClientID = slices.Clone(ids)
	return r
}

func (r ListDOIs) WithConsortiumID(ids ...string) ListDOIs {
	r.params.ConsortiumID = slices.Clone(ids)
	return r
}

// WithResourceTypeID filters by lower-case resource type slug, e.g. "dataset"
func (r ListDOIs) WithResourceTypeID(ids ...string) ListDOIs {
	r.params.ResourceTypeID = slices.Clone(ids)
	return r
}

func (r ListDOIs) WithPrefix(prefixes ...string) ListDOIs {
	r.params.Prefix = slices.Clone(prefixes)
	return r
}

// WithRegistered filters by registration year
func (r ListDOIs) WithRegistered(years ...int) ListDOIs {
	r.params.Registered = joinInts(years)
	return r
}

// WithCreated filters by creation year
func (r ListDOIs) WithCreated(years ...int) ListDOIs {
	r.params.Created = joinInts(years)
	return r
}

// WithPublished filters by publication year
func (r ListDOIs) WithPublished(years ...int) ListDOIs {
	r.params.Published = joinInts(years)
	return r
}

func (r ListDOIs) WithSchemaVersion(version string) ListDOIs {
	r.params.SchemaVersion = version
	return r
}

// WithAffiliationID filters by ROR id of a creator or contributor affiliation
func (r ListDOIs) WithAffiliationID(id string) ListDOIs {
	r.params.AffiliationID = id
	return r
}

// WithFunderID filters by Crossref Funder ID
func (r ListDOIs) WithFunderID(id string) ListDOIs {
	r.params.FunderID = id
	return r
}

// WithUserID filters by ORCID iD of a creator or contributor
func (r ListDOIs) WithUserID(id string) ListDOIs {
	r.params.UserID = id
	return r
}

func (r ListDOIs) WithResourceType(types ...string) ListDOIs {
	r.params.ResourceType = slices.Clone(types)
	return r
}

func (r ListDOIs) WithSubject(subjects ...string) ListDOIs {
	r.params.Subject = slices.Clone(subjects)
	return r
}

func (r ListDOIs) WithFieldOfScience(fields ...string) ListDOIs {
	r.params.FieldOfScience = slices.Clone(fields)
	return r
}

func (r ListDOIs) WithLicense(licenses ...string) ListDOIs {
	r.params.License = slices.Clone(licenses)
	return r
}

func (r ListDOIs) WithClientType(types ...string) ListDOIs {
	r.params.ClientType = slices.Clone(types)
	return r
}

func (r ListDOIs) WithCertificate(certificates ...string) ListDOIs {
	r.params.Certificate = slices.Clone(certificates)
	return r
}

func (r ListDOIs) WithState(states ...metadata.DOIState) ListDOIs {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	r.params.State = out
	return r
}

func (r ListDOIs) WithLinkCheckStatus(status string) ListDOIs {
	r.params.LinkCheckStatus = status
	return r
}

func (r ListDOIs) WithSource(source string) ListDOIs {
	r.params.Source = source
	return r
}

func (r ListDOIs) WithHasPerson(has bool) ListDOIs {
	r.params.HasPerson = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasAffiliation(has bool) ListDOIs {
	r.params.HasAffiliation = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasFundingReference(has bool) ListDOIs {
	r.params.HasFundingReference = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasRelatedIdentifier(has bool) ListDOIs {
	r.params.HasRelatedIdentifier = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasAbstract(has bool) ListDOIs {
	r.params.HasAbstract = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasMetadata(has bool) ListDOIs {
	r.params.HasMetadata = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasOrganization(has bool) ListDOIs {
	r.params.HasOrganization = boolPtr(has)
	return r
}

func (r ListDOIs) WithHasFunder(has bool) ListDOIs {
	r.params.HasFunder = boolPtr(has)
	return r
}

// WithHasCitations keeps DOIs with at least n citations
func (r ListDOIs) WithHasCitations(n int) ListDOIs {
	r.params.HasCitations = intPtr(n)
	return r
}

// WithHasReferences keeps DOIs with at least n references
func (r ListDOIs) WithHasReferences(n int) ListDOIs {
	r.params.HasReferences = intPtr(n)
	return r
}

func (r ListDOIs) WithHasParts(n int) ListDOIs {
	r.params.HasParts = intPtr(n)
	return r
}

func (r ListDOIs) WithHasPartOf(n int) ListDOIs {
	r.params.HasPartOf = intPtr(n)
	return r
}

func (r ListDOIs) WithHasVersions(n int) ListDOIs {
	r.params.HasVersions = intPtr(n)
	return r
}

func (r ListDOIs) WithHasVersionOf(n int) ListDOIs {
	r.params.HasVersionOf = intPtr(n)
	return r
}

func (r ListDOIs) WithHasViews(n int) ListDOIs {
	r.params.HasViews = intPtr(n)
	return r
}

func (r ListDOIs) WithHasDownloads(n int) ListDOIs {
	r.params.HasDownloads = intPtr(n)
	return r
}

// WithDetail includes the full metadata and XML in list results
func (r ListDOIs) WithDetail(on bool) ListDOIs {
	r.params.Detail = boolPtr(on)
	return r
}

// WithFields restricts returned attributes (sparse fieldsets)
func (r ListDOIs) WithFields(fields ...string) ListDOIs {
	r.params.Fields = slices.Clone(fields)
	return r
}

func (r ListDOIs) WithInclude(include ...string) ListDOIs {
	r.params.Include = slices.Clone(include)
	return r
}

// WithDisableFacets skips facet aggregation, which speeds up large searches
func (r ListDOIs) WithDisableFacets(on bool) ListDOIs {
	r.params.DisableFacets = boolPtr(on)
	return r
}

// CreateDOI registers a new DOI. Member only.
type CreateDOI struct {
	input metadata.CreateDOIInput
}

// NewCreateDOI returns a create request for input
func NewCreateDOI(input metadata.CreateDOIInput) CreateDOI {
	return CreateDOI{input: input}
}

func (r CreateDOI) Name() string                { return "CreateDOI" }
func (r CreateDOI) Method() string              { return http.MethodPost }
func (r CreateDOI) Endpoint() string            { return "/dois" }
func (r CreateDOI) Params() (url.Values, error) { return nil, nil }
func (r CreateDOI) MemberOnly() bool            { return true }

// Body validates and encodes the input
func (r CreateDOI) Body() ([]byte, error) {
	return encodeBody(r.Name(), r.input)
}

// UpdateDOI changes the metadata or state of a DOI. Member only.
type UpdateDOI struct {
	doi   string
	input metadata.DOIInput
}

// NewUpdateDOI returns an update request for doi
func NewUpdateDOI(doi string, input metadata.DOIInput) UpdateDOI {
	return UpdateDOI{doi: doi, input: input}
}

func (r UpdateDOI) Name() string                { return "UpdateDOI" }
func (r UpdateDOI) Method() string              { return http.MethodPut }
func (r UpdateDOI) Endpoint() string            { return "/dois/" + doiPath(r.doi) }
func (r UpdateDOI) Params() (url.Values, error) { return nil, nil }
func (r UpdateDOI) MemberOnly() bool            { return true }

// Body validates and encodes the input
func (r UpdateDOI) Body() ([]byte, error) {
	return encodeBody(r.Name(), r.input)
}

// DeleteDOI removes a draft DOI. Registered and findable DOIs cannot be
// deleted by the API. Member only.
type DeleteDOI struct {
	doi string
}

// NewDeleteDOI returns a delete request for doi
func NewDeleteDOI(doi string) DeleteDOI {
	return DeleteDOI{doi: doi}
}

func (r DeleteDOI) Name() string                { return "DeleteDOI" }
func (r DeleteDOI) Method() string              { return http.MethodDelete }
func (r DeleteDOI) Endpoint() string            { return "/dois/" + doiPath(r.doi) }
func (r DeleteDOI) Params() (url.Values, error) { return nil, nil }
func (r DeleteDOI) Body() ([]byte, error)       { return nil, nil }
func (r DeleteDOI) MemberOnly() bool            { return true }
