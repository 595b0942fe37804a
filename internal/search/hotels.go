package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/avstrong/tripplan/internal/normalize"
	"github.com/avstrong/tripplan/internal/trip"
)

// SearchHotels validates the parameters, queries the hotel provider and
// returns canonical hotels. The stay dates also feed the nights derivation.
func (c *Client) SearchHotels(ctx context.Context, params HotelParams) ([]trip.Hotel, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.conf.HotelSearchURL)
	if err != nil {
		return nil, fmt.Errorf("parse hotel search url: %w", err)
	}

	q := u.Query()
	q.Set("dest_id", params.Destination)
	q.Set("search_type", "CITY")
	q.Set("arrival_date", params.CheckInDate)
	q.Set("departure_date", params.CheckOutDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("room_qty", strconv.Itoa(params.Rooms))

	if params.Children > 0 {
		q.Set("children_qty", strconv.Itoa(params.Children))
	}

	q.Set("page_number", "1")
	q.Set("units", "metric")
	q.Set("currency_code", "NGN")
	u.RawQuery = q.Encode()

	var resp normalize.HotelSearchResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	return c.normalizer.Hotels(resp, params.CheckInDate, params.CheckOutDate), nil
}
