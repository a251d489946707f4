package datacite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

// GetDOI retrieves a single DOI
func (c *Client) GetDOI(ctx context.Context, req requests.GetDOI) (*metadata.DOIData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get DOI: %w", err)
	}
	return decodeData[metadata.DOIData](req.Name(), resp.Body)
}

// GetDOIActivities retrieves the change history of a DOI
func (c *Client) GetDOIActivities(ctx context.Context, req requests.GetDOIActivities) (*metadata.DOIActivitiesData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get DOI activities: %w", err)
	}
	return decodeDocument[metadata.DOIActivitiesData](req.Name(), resp.Body)
}

// ListDOIs retrieves one page of DOI search results
func (c *Client) ListDOIs(ctx context.Context, req requests.ListDOIs) (*metadata.ListDOIData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list DOIs: %w", err)
	}

	list, err := decodeDocument[metadata.ListDOIData](req.Name(), resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(list.Data)).
		Int("total", list.Meta.Total).
		Bool("hasNext", list.Links.HasNext()).
		Msg("Retrieved DOIs from DataCite")

	return list, nil
}

// CreateDOI registers a new DOI. Requires member mode.
func (c *Client) CreateDOI(ctx context.Context, req requests.CreateDOI) (*metadata.DOIData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create DOI: %w", err)
	}

	doi, err := decodeData[metadata.DOIData](req.Name(), resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("doi", doi.Attributes.DOI).
		Str("state", doi.Attributes.State.String()).
		Msg("Created DOI")

	return doi, nil
}

// UpdateDOI changes a DOI. Requires member mode.
func (c *Client) UpdateDOI(ctx context.Context, req requests.UpdateDOI) (*metadata.DOIData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update DOI: %w", err)
	}
	return decodeData[metadata.DOIData](req.Name(), resp.Body)
}

// DeleteDOI removes a draft DOI. Requires member mode.
func (c *Client) DeleteDOI(ctx context.Context, req requests.DeleteDOI) error {
	if _, err := c.Send(ctx, req); err != nil {
		return fmt.Errorf("failed to delete DOI: %w", err)
	}
	return nil
}

// decodeData decodes a single-resource document and returns its data member
func decodeData[T any](name string, body []byte) (*T, error) {
	var doc struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, contractError(name, err)
	}
	if len(doc.Data) == 0 || string(doc.Data) == "null" {
		return nil, contractError(name, &metadata.DecodeError{Type: name, Field: "data", Reason: "missing required field"})
	}

	var v T
	if err := json.Unmarshal(doc.Data, &v); err != nil {
		return nil, contractError(name, err)
	}
	return &v, nil
}

// decodeDocument decodes a whole response document
func decodeDocument[T any](name string, body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, contractError(name, err)
	}
	return &v, nil
}

// contractError wraps a decoding failure so that it matches metadata.ErrContract
func contractError(name string, err error) error {
	if !errors.Is(err, metadata.ErrContract) {
		err = &metadata.DecodeError{Type: name, Reason: "malformed response", Err: err}
	}
	return fmt.Errorf("failed to decode %s response: %w", name, err)
}
