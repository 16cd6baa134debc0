package services

import (
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// BookingService is the booking ledger: it records confirmed seat purchases
// and keeps seat sets on a trip pairwise disjoint. Disjointness is delegated
// to the unique key on booking_seats(trip_id, seat_code) inside the create
// transaction; there is no in-process coordination.
type BookingService struct {
	Bookings  repositories.BookingRepo
	Trips     repositories.TripRepo
	RequestID string
}

type BookingInput struct {
	TripID        domain.ID
	Seats         []string
	TotalPrice    int64
	Passenger     models.PassengerDetails
	PickupPoint   string
	PaymentMethod string
}

// TakenSeats is public: the seat map widget calls it before any login.
func (s BookingService) TakenSeats(tripID domain.ID) ([]string, error) {
	if tripID <= 0 {
		return nil, domain.ValidationError{Field: "tripId", Msg: "required"}
	}
	seats, err := s.Bookings.TakenSeats(tripID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to fetch seats", Err: err}
	}
	return seats, nil
}

func (s BookingService) Create(caller domain.RequestContext, in BookingInput) (models.Booking, error) {
	if !caller.Authenticated() {
		return models.Booking{}, domain.UnauthorizedError{}
	}
	if in.TripID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "tripId", Msg: "required"}
	}

	in.PickupPoint = strings.TrimSpace(in.PickupPoint)
	in.Passenger.Name = strings.TrimSpace(in.Passenger.Name)
	in.Passenger.Mobile = strings.TrimSpace(in.Passenger.Mobile)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)

	if in.Passenger.Name == "" || in.Passenger.Mobile == "" {
		return models.Booking{}, domain.ValidationError{Field: "passengerDetails", Msg: "name and mobile are required"}
	}
	if in.PickupPoint == "" {
		return models.Booking{}, domain.ValidationError{Field: "pickupPoint", Msg: "required"}
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return models.Booking{}, domain.ValidationError{
			Field: "paymentMethod",
			Msg:   "must be one of " + strings.Join(models.PaymentMethods, ", "),
		}
	}
	if utils.HasDuplicateSeats(in.Seats) {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "duplicate seat"}
	}
	seats := utils.NormalizeSeats(in.Seats)
	if len(seats) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "at least one seat is required"}
	}

	trip, err := s.Trips.GetByID(in.TripID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to fetch trip", Err: err}
	}

	rows := trip.SeatRows()
	for _, seat := range seats {
		if err := utils.ValidateSeatCode(seat, rows); err != nil {
			return models.Booking{}, domain.ValidationError{Field: "seats", Msg: err.Error()}
		}
	}

	// The server owns the price: the quoted total must match trip price times
	// seat count, so seat list and price cannot drift apart.
	total := trip.Price * int64(len(seats))
	if in.TotalPrice != total {
		return models.Booking{}, domain.ValidationError{
			Field: "totalPrice",
			Msg:   fmt.Sprintf("expected %d for %d seat(s)", total, len(seats)),
		}
	}

	booking := models.Booking{
		TripID:        trip.ID,
		AccountID:     caller.UserID,
		Seats:         seats,
		TotalPrice:    total,
		PickupPoint:   in.PickupPoint,
		Passenger:     in.Passenger,
		PaymentMethod: in.PaymentMethod,
		Status:        models.BookingStatusConfirmed,
	}

	created, err := s.Bookings.Create(booking)
	if err != nil {
		if domain.IsConflict(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d trip_id=%d seats=%d", created.ID, created.TripID, len(created.Seats)))
	return created, nil
}

// List returns bookings scoped by the caller: with operatorID the caller must
// be that operator or an admin and gets bookings across the operator's trips,
// otherwise the caller's own bookings.
func (s BookingService) List(caller domain.RequestContext, operatorID domain.ID) ([]models.BookingWithTrip, error) {
	if !caller.Authenticated() {
		return nil, domain.UnauthorizedError{}
	}

	var (
		out []models.BookingWithTrip
		err error
	)
	if operatorID > 0 {
		if caller.UserID != operatorID && !caller.IsAdmin() {
			return nil, domain.ForbiddenError{Msg: "not allowed to view this operator's bookings"}
		}
		out, err = s.Bookings.ListByOperator(operatorID)
	} else {
		out, err = s.Bookings.ListByAccount(caller.UserID)
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to fetch bookings", Err: err}
	}
	return out, nil
}

// Delete removes a booking owned by the caller (admins may remove any). The
// cascade on booking_seats frees the seats for rebooking.
func (s BookingService) Delete(caller domain.RequestContext, id domain.ID) error {
	booking, err := s.authorize(caller, id)
	if err != nil {
		return err
	}

	if err := s.Bookings.Delete(booking.ID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to delete booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "delete", fmt.Sprintf("booking_id=%d", booking.ID))
	return nil
}

// Get returns a booking the caller owns (or any booking, for admins).
func (s BookingService) Get(caller domain.RequestContext, id domain.ID) (models.Booking, error) {
	return s.authorize(caller, id)
}

func (s BookingService) authorize(caller domain.RequestContext, id domain.ID) (models.Booking, error) {
	if !caller.Authenticated() {
		return models.Booking{}, domain.UnauthorizedError{}
	}
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "required"}
	}

	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to fetch booking", Err: err}
	}

	if booking.AccountID != caller.UserID && !caller.IsAdmin() {
		return models.Booking{}, domain.ForbiddenError{Msg: "not allowed to access this booking"}
	}
	return booking, nil
}
