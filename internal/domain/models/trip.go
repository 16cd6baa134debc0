package models

import (
	"time"

	"busbooking/internal/domain"
)

// Route describes one leg of a trip.
type Route struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
}

// Trip is one scheduled departure published by an operator. Trips are
// immutable once published.
type Trip struct {
	ID           domain.ID `json:"id"`
	OperatorID   domain.ID `json:"operatorId"`
	Name         string    `json:"name"`
	PlateNumber  string    `json:"plateNumber"`
	VehicleClass string    `json:"vehicleClass"`
	Price        int64     `json:"price"`
	TravelDate   string    `json:"travelDate"` // YYYY-MM-DD
	PickupPoints []string  `json:"pickupPoints"`
	Route        Route     `json:"route"`
	TotalSeats   int       `json:"totalSeats"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SeatRows is the number of rows in the fixed 4-column seat grid.
func (t Trip) SeatRows() int {
	if t.TotalSeats <= 0 {
		return 0
	}
	return (t.TotalSeats + 3) / 4
}

// TripWithOperator is the read model returned by catalog search: the trip
// joined with its operator's display names.
type TripWithOperator struct {
	Trip
	OperatorDisplayName string `json:"operatorName"`
	OperatorContactName string `json:"operatorContactName"`
}

// TripSearch carries catalog search filters; zero values mean "any".
type TripSearch struct {
	Origin      string
	Destination string
	Date        string
	OperatorID  domain.ID
}
