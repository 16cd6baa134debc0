package models

import (
	"time"

	"busbooking/internal/domain"
)

// Booking status values. A cancelled transition is not exposed anywhere;
// deletion is the only lifecycle end.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// PaymentMethods lists the accepted payment method tags. The tag is recorded
// only; no payment processing happens here.
var PaymentMethods = []string{"Khalti", "eSewa", "MoBanking"}

func ValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// PassengerDetails is a contact snapshot copied at booking time, not a live
// reference to the account.
type PassengerDetails struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// Booking is a traveler's claim on one or more seats of a trip.
type Booking struct {
	ID            domain.ID        `json:"id"`
	TripID        domain.ID        `json:"tripId"`
	AccountID     domain.ID        `json:"accountId"`
	Seats         []string         `json:"seats"`
	TotalPrice    int64            `json:"totalPrice"`
	PickupPoint   string           `json:"pickupPoint"`
	Passenger     PassengerDetails `json:"passengerDetails"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// BookingWithTrip is the listing read model: the booking joined with trip
// display fields.
type BookingWithTrip struct {
	Booking
	TripName     string `json:"tripName"`
	VehicleClass string `json:"vehicleClass"`
	TravelDate   string `json:"travelDate"`
	Route        Route  `json:"route"`
}
