package normalize

import (
	"fmt"
	"math"
	"time"

	"github.com/avstrong/tripplan/internal/trip"
)

// HotelSearchResponse mirrors the booking.com hotel search payload.
type HotelSearchResponse struct {
	Result []RawHotel `json:"result"`
}

type RawHotel struct {
	HotelID               *FlexString        `json:"hotel_id"`
	HotelName             *string            `json:"hotel_name"`
	Address               *string            `json:"address"`
	City                  *string            `json:"city"`
	ReviewScore           *float64           `json:"review_score"`
	ReviewNr              *int               `json:"review_nr"`
	MainPhotoURL          *string            `json:"main_photo_url"`
	MinTotalPrice         *float64           `json:"min_total_price"`
	PriceBreakdown        *RawPriceBreakdown `json:"price_breakdown"`
	Latitude              *float64           `json:"latitude"`
	Longitude             *float64           `json:"longitude"`
	AccommodationTypeName *string            `json:"accommodation_type_name"`
}

type RawPriceBreakdown struct {
	GrossPrice        *FlexFloat `json:"gross_price"`
	Currency          *string    `json:"currency"`
	AllInclusivePrice *float64   `json:"all_inclusive_price"`
}

// Hotels maps a provider hotel payload to canonical hotels. The stay length
// comes from the caller-supplied dates, never from the provider. Provider
// review scores are on a 0-10 scale and are halved to our 0-5 scale.
func (n *Normalizer) Hotels(resp HotelSearchResponse, checkInDate, checkOutDate string) []trip.Hotel {
	nights := Nights(checkInDate, checkOutDate)

	hotels := make([]trip.Hotel, 0, len(resp.Result))

	for idx, raw := range resp.Result {
		totalPrice := hotelTotalPrice(raw)

		pricePerNight := totalPrice
		if nights > 0 {
			pricePerNight = totalPrice / float64(nights)
		}

		var rating float64
		if raw.ReviewScore != nil {
			rating = *raw.ReviewScore / 2 //nolint:gomnd
		}

		currency := defaultCurrency
		if raw.PriceBreakdown != nil && raw.PriceBreakdown.Currency != nil {
			currency = *raw.PriceBreakdown.Currency
		}

		images := []string{}
		if raw.MainPhotoURL != nil && *raw.MainPhotoURL != "" {
			images = append(images, *raw.MainPhotoURL)
		}

		id := fmt.Sprintf("hotel-%d", idx)
		if raw.HotelID != nil && *raw.HotelID != "" {
			id = string(*raw.HotelID)
		}

		hotels = append(hotels, trip.Hotel{
			ID:            id,
			Name:          stringOr(raw.HotelName, "Unknown Hotel"),
			Address:       stringOr(raw.Address, ""),
			City:          stringOr(raw.City, ""),
			Rating:        rating,
			ReviewCount:   intOr(raw.ReviewNr, 0),
			RoomType:      stringOr(raw.AccommodationTypeName, "Standard Room"),
			PricePerNight: pricePerNight,
			TotalPrice:    totalPrice,
			Currency:      currency,
			CheckInDate:   checkInDate,
			CheckOutDate:  checkOutDate,
			Nights:        nights,
			TaxesIncluded: true,
			Facilities:    defaultHotelFacilities(),
			Images:        images,
			Coordinates: trip.Coordinates{
				Latitude:  floatOr(raw.Latitude, 0),
				Longitude: floatOr(raw.Longitude, 0),
			},
		})
	}

	return hotels
}

// hotelTotalPrice prefers the explicit total, then falls back to the nested
// gross price, which arrives as a string or a number depending on the
// provider's mood.
func hotelTotalPrice(raw RawHotel) float64 {
	if raw.MinTotalPrice != nil {
		return *raw.MinTotalPrice
	}

	if raw.PriceBreakdown != nil && raw.PriceBreakdown.GrossPrice != nil {
		return float64(*raw.PriceBreakdown.GrossPrice)
	}

	return 0
}

// Nights derives the stay length as ceil(checkOut-checkIn) in days. Dates
// that do not parse, or a negative span, yield zero.
func Nights(checkInDate, checkOutDate string) int {
	checkIn, errIn := time.Parse("2006-01-02", checkInDate)
	checkOut, errOut := time.Parse("2006-01-02", checkOutDate)

	if errIn != nil || errOut != nil {
		return 0
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24)) //nolint:gomnd
	if nights < 0 {
		return 0
	}

	return nights
}

func defaultHotelFacilities() []trip.HotelFacility {
	return []trip.HotelFacility{
		trip.HotelFacilityPool,
		trip.HotelFacilityBar,
		trip.HotelFacilityWifi,
	}
}
