package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/avstrong/tripplan/internal/normalize"
	"github.com/avstrong/tripplan/internal/trip"
)

// SearchFlights validates the parameters, queries the flight provider and
// returns canonical flights.
func (c *Client) SearchFlights(ctx context.Context, params FlightParams) ([]trip.Flight, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.conf.FlightSearchURL)
	if err != nil {
		return nil, fmt.Errorf("parse flight search url: %w", err)
	}

	q := u.Query()
	q.Set("fromEntityId", params.Origin)
	q.Set("toEntityId", params.Destination)
	q.Set("departDate", params.DepartureDate)

	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}

	q.Set("adults", strconv.Itoa(params.Adults))

	if params.Children > 0 {
		q.Set("children", strconv.Itoa(params.Children))
	}

	if params.Infants > 0 {
		q.Set("infants", strconv.Itoa(params.Infants))
	}

	if params.CabinClass != "" {
		q.Set("cabinClass", params.CabinClass)
	}

	u.RawQuery = q.Encode()

	var resp normalize.FlightSearchResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}

	return c.normalizer.Flights(resp), nil
}
