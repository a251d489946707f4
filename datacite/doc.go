// Package datacite provides a client for the DataCite REST API.
//
// DataCite registers DOIs for research outputs such as datasets, software and
// papers. This package sends the requests defined in the requests package and
// decodes the responses into the metadata types.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: Sends requests, applies authentication and headers, classifies errors
//   - Options: Functional options for base URL, mode, contact address and transport
//   - API: Interface over the typed operations for testability (see the mocks package)
//   - Errors: Sentinels and a structured APIError for non-2xx responses
//
// # Usage
//
// The public API needs no credentials:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := datacite.NewClient(logger, datacite.WithMailto("me@example.org"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	doi, err := client.GetDOI(ctx, requests.NewGetDOI("10.5438/0012"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doi.Title())
//
// Creating, updating and deleting DOIs goes through the member API with the
// repository account:
//
//	client, err := datacite.NewClient(logger,
//		datacite.WithTestBaseURL(),
//		datacite.WithMemberAuth("DATACITE.TEST", password),
//	)
//
// # Features
//
//   - Context-aware API calls with cancellation
//   - Member-only requests refused locally in public mode
//   - Request validation before any network call
//   - Optional Prometheus request counters and latency histograms
//
// # Error Handling
//
//   - ErrInvalidConfig: Invalid client configuration
//   - ErrMemberRequired: A create, update or delete sent without member credentials
//   - requests.ErrInvalidParameter: A page or sample size out of range
//   - metadata.ErrValidation: A write body that breaks the metadata schema
//   - metadata.ErrContract: A response that does not match the schema
//   - APIError: Non-2xx responses with status code and JSON:API error titles
//
// API errors include helper methods for classification:
//
//	var apiErr *datacite.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing DOI
//	}
package datacite
