package trip

import (
	"slices"
	"time"
)

type TripType string

const (
	TripTypeSolo   TripType = "solo"
	TripTypeCouple TripType = "couple"
	TripTypeFamily TripType = "family"
	TripTypeGroup  TripType = "group"
)

type FlightClass string

const (
	FlightClassEconomy  FlightClass = "economy"
	FlightClassBusiness FlightClass = "business"
	FlightClassFirst    FlightClass = "first"
)

type FlightFacility string

const (
	FlightFacilityEntertainment FlightFacility = "in-flight-entertainment"
	FlightFacilityMeal          FlightFacility = "in-flight-meal"
	FlightFacilityUSBPort       FlightFacility = "usb-port"
	FlightFacilityWifi          FlightFacility = "wifi"
	FlightFacilityPowerOutlet   FlightFacility = "power-outlet"
)

type HotelFacility string

const (
	HotelFacilityPool       HotelFacility = "pool"
	HotelFacilityBar        HotelFacility = "bar"
	HotelFacilityRestaurant HotelFacility = "restaurant"
	HotelFacilityGym        HotelFacility = "gym"
	HotelFacilitySpa        HotelFacility = "spa"
	HotelFacilityWifi       HotelFacility = "wifi"
	HotelFacilityParking    HotelFacility = "parking"
	HotelFacilityRoomSvc    HotelFacility = "room-service"
	HotelFacilityAirCon     HotelFacility = "air-conditioning"
)

type ActivityCategory string

const (
	ActivityCategoryMuseum        ActivityCategory = "museum"
	ActivityCategoryTour          ActivityCategory = "tour"
	ActivityCategoryAdventure     ActivityCategory = "adventure"
	ActivityCategoryFood          ActivityCategory = "food"
	ActivityCategoryEntertainment ActivityCategory = "entertainment"
	ActivityCategorySightseeing   ActivityCategory = "sightseeing"
	ActivityCategoryShopping      ActivityCategory = "shopping"
	ActivityCategoryWellness      ActivityCategory = "wellness"
)

type BaggageAllowance struct {
	CheckedBaggage string `json:"checkedBaggage"`
	CabinBaggage   string `json:"cabinBaggage"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Flight struct {
	ID               string           `json:"id"`
	Airline          string           `json:"airline"`
	AirlineCode      string           `json:"airlineCode"`
	FlightNumber     string           `json:"flightNumber"`
	FlightClass      FlightClass      `json:"flightClass"`
	DepartureTime    string           `json:"departureTime"`
	ArrivalTime      string           `json:"arrivalTime"`
	DepartureAirport string           `json:"departureAirport"`
	ArrivalAirport   string           `json:"arrivalAirport"`
	DepartureCity    string           `json:"departureCity"`
	ArrivalCity      string           `json:"arrivalCity"`
	Duration         string           `json:"duration"`
	Stops            int              `json:"stops"`
	Price            float64          `json:"price"`
	Currency         string           `json:"currency"`
	Facilities       []FlightFacility `json:"facilities"`
	BaggageAllowance BaggageAllowance `json:"baggageAllowance"`
}

type Hotel struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	RoomType      string          `json:"roomType"`
	PricePerNight float64         `json:"pricePerNight"`
	TotalPrice    float64         `json:"totalPrice"`
	Currency      string          `json:"currency"`
	CheckInDate   string          `json:"checkInDate"`
	CheckOutDate  string          `json:"checkOutDate"`
	Nights        int             `json:"nights"`
	Guests        int             `json:"guests,omitempty"`
	TaxesIncluded bool            `json:"taxesIncluded"`
	Facilities    []HotelFacility `json:"facilities"`
	Images        []string        `json:"images"`
	Coordinates   Coordinates     `json:"coordinates"`
}

type Activity struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Location       string           `json:"location"`
	Rating         float64          `json:"rating"`
	ReviewCount    int              `json:"reviewCount"`
	Duration       string           `json:"duration"`
	Price          float64          `json:"price"`
	Currency       string           `json:"currency"`
	DateTime       string           `json:"dateTime"`
	Day            int              `json:"day"`
	WhatIsIncluded []string         `json:"whatIsIncluded"`
	Images         []string         `json:"images"`
	Category       ActivityCategory `json:"category"`
}

// Itinerary is a named, dated bundle of flights, hotels and activities
// belonging to one trip. It exclusively owns its collections.
type Itinerary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	TripType    TripType   `json:"tripType"`
	Flights     []Flight   `json:"flights"`
	Hotels      []Hotel    `json:"hotels"`
	Activities  []Activity `json:"activities"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy so callers can never mutate managed state in place.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}

	cp := *it
	cp.Flights = cloneFlights(it.Flights)
	cp.Hotels = cloneHotels(it.Hotels)
	cp.Activities = cloneActivities(it.Activities)

	return &cp
}

func cloneFlights(in []Flight) []Flight {
	if in == nil {
		return nil
	}

	out := make([]Flight, len(in))
	copy(out, in)

	for i := range out {
		out[i].Facilities = slices.Clone(in[i].Facilities)
	}

	return out
}

func cloneHotels(in []Hotel) []Hotel {
	if in == nil {
		return nil
	}

	out := make([]Hotel, len(in))
	copy(out, in)

	for i := range out {
		out[i].Facilities = slices.Clone(in[i].Facilities)
		out[i].Images = slices.Clone(in[i].Images)
	}

	return out
}

func cloneActivities(in []Activity) []Activity {
	if in == nil {
		return nil
	}

	out := make([]Activity, len(in))
	copy(out, in)

	for i := range out {
		out[i].WhatIsIncluded = slices.Clone(in[i].WhatIsIncluded)
		out[i].Images = slices.Clone(in[i].Images)
	}

	return out
}
