package search

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avstrong/tripplan/internal/normalize"
	"github.com/avstrong/tripplan/internal/trip"
)

// SearchActivities validates the parameters, queries the attraction provider
// and returns canonical activities.
func (c *Client) SearchActivities(ctx context.Context, params ActivityParams) ([]trip.Activity, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.conf.ActivitySearchURL)
	if err != nil {
		return nil, fmt.Errorf("parse activity search url: %w", err)
	}

	q := u.Query()
	q.Set("geoId", params.Destination)

	if params.Category != "" {
		q.Set("category", params.Category)
	}

	u.RawQuery = q.Encode()

	var resp normalize.ActivitySearchResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	return c.normalizer.Activities(resp), nil
}
