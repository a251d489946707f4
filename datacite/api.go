package datacite

import (
	"context"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/api.go -package=mocks github.com/s0up4200/datacite/datacite API

// API defines the interface for DataCite operations
type API interface {
	// Heartbeat reports whether the API is up
	Heartbeat(ctx context.Context) (bool, error)

	// GetDOI retrieves a single DOI
	GetDOI(ctx context.Context, req requests.GetDOI) (*metadata.DOIData, error)

	// GetDOIActivities retrieves the change history of a DOI
	GetDOIActivities(ctx context.Context, req requests.GetDOIActivities) (*metadata.DOIActivitiesData, error)

	// ListDOIs retrieves one page of DOI search results
	ListDOIs(ctx context.Context, req requests.ListDOIs) (*metadata.ListDOIData, error)

	// CreateDOI registers a new DOI
	CreateDOI(ctx context.Context, req requests.CreateDOI) (*metadata.DOIData, error)

	// UpdateDOI changes an existing DOI
	UpdateDOI(ctx context.Context, req requests.UpdateDOI) (*metadata.DOIData, error)

	// DeleteDOI removes a draft DOI
	DeleteDOI(ctx context.Context, req requests.DeleteDOI) error

	// GetEvent retrieves a single event
	GetEvent(ctx context.Context, req requests.GetEvent) (*metadata.EventData, error)

	// ListEvents retrieves one page of event search results
	ListEvents(ctx context.Context, req requests.ListEvents) (*metadata.ListEventData, error)
}

var _ API = (*Client)(nil)
