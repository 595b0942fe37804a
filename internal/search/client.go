package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/tripplan/internal/logger"
	"github.com/avstrong/tripplan/internal/normalize"
)

const (
	defaultFlightSearchURL   = "https://sky-scanner3.p.rapidapi.com/flights/search-roundtrip"
	defaultHotelSearchURL    = "https://booking-com15.p.rapidapi.com/api/v1/hotels/searchHotels"
	defaultActivitySearchURL = "https://tripadvisor16.p.rapidapi.com/api/v1/attraction/searchAttractions"

	defaultTimeout = 30 * time.Second
)

type Conf struct {
	APIKey  string
	Timeout time.Duration

	// Overridable endpoints, for tests. Empty means the real provider.
	FlightSearchURL   string
	HotelSearchURL    string
	ActivitySearchURL string
}

// Client calls the outbound travel-inventory providers and returns canonical
// entities. It owns parameter validation and the provider error taxonomy.
type Client struct {
	l          *logger.Logger
	conf       Conf
	http       *http.Client
	normalizer *normalize.Normalizer
}

func NewClient(l *logger.Logger, conf Conf, normalizer *normalize.Normalizer) *Client {
	if conf.Timeout == 0 {
		conf.Timeout = defaultTimeout
	}

	if conf.FlightSearchURL == "" {
		conf.FlightSearchURL = defaultFlightSearchURL
	}

	if conf.HotelSearchURL == "" {
		conf.HotelSearchURL = defaultHotelSearchURL
	}

	if conf.ActivitySearchURL == "" {
		conf.ActivitySearchURL = defaultActivitySearchURL
	}

	//nolint:exhaustruct
	return &Client{
		l:          l,
		conf:       conf,
		http:       &http.Client{Timeout: conf.Timeout},
		normalizer: normalizer,
	}
}

// getJSON fetches a provider URL and decodes the body into out. A payload
// that fails structural decoding is logged and left as the zero value: the
// normalizer degrades field by field, so partial data beats a hard failure.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{Code: CodeAPIError, Message: err.Error(), Status: 0}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-key", c.conf.APIKey)
	req.Header.Set("x-rapidapi-host", req.URL.Host)

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.l.LogErrorf("Could not decode %v response, continuing best-effort: %v", req.URL.Host, err.Error())
	}

	return nil
}

func statusError(status int) *Error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{
			Code:    CodeRateLimited,
			Message: "Too many requests. Please try again later.",
			Status:  status,
		}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{
			Code:    CodeUnauthorized,
			Message: "API authentication failed.",
			Status:  status,
		}
	default:
		return &Error{
			Code:    CodeAPIError,
			Message: "An error occurred while fetching data.",
			Status:  status,
		}
	}
}

func transportError(err error) *Error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{
			Code:    CodeTimeout,
			Message: "Request timed out. Please try again.",
			Status:  http.StatusRequestTimeout,
		}
	}

	return &Error{
		Code:    CodeNetworkError,
		Message: "Network error. Please check your connection.",
		Status:  0,
	}
}
