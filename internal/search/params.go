package search

import "regexp"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type FlightParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
	CabinClass    string
}

func (p *FlightParams) validate() error {
	inputErr := newInputError()

	if len(p.Origin) < 2 || len(p.Origin) > 5 {
		inputErr.addError("origin", "provide an entity code of 2 to 5 characters")
	}

	if len(p.Destination) < 2 || len(p.Destination) > 5 {
		inputErr.addError("destination", "provide an entity code of 2 to 5 characters")
	}

	if !dateRe.MatchString(p.DepartureDate) {
		inputErr.addError("departureDate", "provide a date as YYYY-MM-DD")
	}

	if p.ReturnDate != "" && !dateRe.MatchString(p.ReturnDate) {
		inputErr.addError("returnDate", "provide a date as YYYY-MM-DD")
	}

	if p.Adults < 1 || p.Adults > 9 {
		inputErr.addError("adults", "provide between 1 and 9 adults")
	}

	if p.Children < 0 || p.Children > 9 {
		inputErr.addError("children", "provide between 0 and 9 children")
	}

	if p.Infants < 0 || p.Infants > 9 {
		inputErr.addError("infants", "provide between 0 and 9 infants")
	}

	switch p.CabinClass {
	case "", "economy", "business", "first":
	default:
		inputErr.addError("cabinClass", "provide one of economy, business, first")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

type HotelParams struct {
	Destination  string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Children     int
	Rooms        int
}

func (p *HotelParams) validate() error {
	inputErr := newInputError()

	if p.Destination == "" {
		inputErr.addError("destination", "provide a destination")
	}

	if !dateRe.MatchString(p.CheckInDate) {
		inputErr.addError("checkInDate", "provide a date as YYYY-MM-DD")
	}

	if !dateRe.MatchString(p.CheckOutDate) {
		inputErr.addError("checkOutDate", "provide a date as YYYY-MM-DD")
	}

	if p.Adults < 1 || p.Adults > 30 {
		inputErr.addError("adults", "provide between 1 and 30 adults")
	}

	if p.Children < 0 || p.Children > 10 {
		inputErr.addError("children", "provide between 0 and 10 children")
	}

	if p.Rooms < 1 || p.Rooms > 8 {
		inputErr.addError("rooms", "provide between 1 and 8 rooms")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

type ActivityParams struct {
	Destination string
	Date        string
	Category    string
}

func (p *ActivityParams) validate() error {
	inputErr := newInputError()

	if p.Destination == "" {
		inputErr.addError("destination", "provide a destination")
	}

	if p.Date != "" && !dateRe.MatchString(p.Date) {
		inputErr.addError("date", "provide a date as YYYY-MM-DD")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}
