package datacite

import (
	"context"
	"fmt"

	"github.com/s0up4200/datacite/metadata"
	"github.com/s0up4200/datacite/requests"
)

// GetEvent retrieves a single Event Data event
func (c *Client) GetEvent(ctx context.Context, req requests.GetEvent) (*metadata.EventData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return decodeData[metadata.EventData](req.Name(), resp.Body)
}

// ListEvents retrieves one page of event search results
func (c *Client) ListEvents(ctx context.Context, req requests.ListEvents) (*metadata.ListEventData, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	list, err := decodeDocument[metadata.ListEventData](req.Name(), resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(list.Data)).
		Int("total", list.Meta.Total).
		Msg("Retrieved events from DataCite")

	return list, nil
}
