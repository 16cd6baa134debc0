package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type BookingRepo struct {
	DB *sql.DB
}

// Create persists the booking and one seat row per seat in a single
// transaction. The unique key on booking_seats(trip_id, seat_code) makes an
// overlapping seat fail with MySQL error 1062, which rolls everything back
// and surfaces as a ConflictError. Two concurrent requests for the same seat
// cannot both commit.
func (r BookingRepo) Create(b models.Booking) (models.Booking, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return models.Booking{}, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings
			(trip_id, account_id, total_price, pickup_point, passenger_name,
			 passenger_mobile, payment_method, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		int64(b.TripID),
		int64(b.AccountID),
		b.TotalPrice,
		b.PickupPoint,
		b.Passenger.Name,
		b.Passenger.Mobile,
		b.PaymentMethod,
		b.Status,
	)
	if err != nil {
		return models.Booking{}, err
	}
	bookingID, _ := res.LastInsertId()

	for _, seat := range b.Seats {
		_, err := tx.Exec(`
			INSERT INTO booking_seats (booking_id, trip_id, seat_code, created_at)
			VALUES (?, ?, ?, NOW())
		`, bookingID, int64(b.TripID), seat)
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 {
				return models.Booking{}, domain.ConflictError{
					Resource: "seat",
					Msg:      fmt.Sprintf("seat %s is already booked", seat),
					Err:      err,
				}
			}
			return models.Booking{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, err
	}

	b.ID = domain.ID(bookingID)
	return b, nil
}

// TakenSeats returns the flattened seat codes across all bookings of a trip.
func (r BookingRepo) TakenSeats(tripID domain.ID) ([]string, error) {
	rows, err := r.DB.Query(`
		SELECT seat_code
		FROM booking_seats
		WHERE trip_id = ?
		ORDER BY id ASC
	`, int64(tripID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taken := []string{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return taken, err
		}
		taken = append(taken, strings.ToUpper(strings.TrimSpace(seat)))
	}
	return taken, rows.Err()
}

func (r BookingRepo) GetByID(id domain.ID) (models.Booking, error) {
	var b models.Booking
	var seats sql.NullString
	err := r.DB.QueryRow(`
		SELECT b.id, b.trip_id, b.account_id, b.total_price, b.pickup_point,
		       b.passenger_name, b.passenger_mobile, b.payment_method,
		       b.status, b.created_at,
		       COALESCE(GROUP_CONCAT(bs.seat_code ORDER BY bs.id), '')
		FROM bookings b
		LEFT JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE b.id = ?
		GROUP BY b.id
	`, int64(id)).Scan(
		&b.ID,
		&b.TripID,
		&b.AccountID,
		&b.TotalPrice,
		&b.PickupPoint,
		&b.Passenger.Name,
		&b.Passenger.Mobile,
		&b.PaymentMethod,
		&b.Status,
		&b.CreatedAt,
		&seats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	b.Seats = splitSeats(seats)
	return b, nil
}

// ListByAccount returns the caller's bookings, newest first, joined with trip
// display fields.
func (r BookingRepo) ListByAccount(accountID domain.ID) ([]models.BookingWithTrip, error) {
	return r.list(`WHERE b.account_id = ?`, int64(accountID))
}

// ListByOperator returns bookings across all trips owned by the operator.
func (r BookingRepo) ListByOperator(operatorID domain.ID) ([]models.BookingWithTrip, error) {
	return r.list(`WHERE t.operator_id = ?`, int64(operatorID))
}

func (r BookingRepo) list(where string, arg any) ([]models.BookingWithTrip, error) {
	rows, err := r.DB.Query(`
		SELECT b.id, b.trip_id, b.account_id, b.total_price, b.pickup_point,
		       b.passenger_name, b.passenger_mobile, b.payment_method,
		       b.status, b.created_at,
		       t.name, t.vehicle_class, t.travel_date,
		       t.origin, t.destination, t.departure_time, t.arrival_time, t.duration,
		       COALESCE(GROUP_CONCAT(bs.seat_code ORDER BY bs.id), '')
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		LEFT JOIN booking_seats bs ON bs.booking_id = b.id
		`+where+`
		GROUP BY b.id
		ORDER BY b.created_at DESC, b.id DESC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingWithTrip{}
	for rows.Next() {
		var b models.BookingWithTrip
		var seats sql.NullString
		if err := rows.Scan(
			&b.ID,
			&b.TripID,
			&b.AccountID,
			&b.TotalPrice,
			&b.PickupPoint,
			&b.Passenger.Name,
			&b.Passenger.Mobile,
			&b.PaymentMethod,
			&b.Status,
			&b.CreatedAt,
			&b.TripName,
			&b.VehicleClass,
			&b.TravelDate,
			&b.Route.Origin,
			&b.Route.Destination,
			&b.Route.DepartureTime,
			&b.Route.ArrivalTime,
			&b.Route.Duration,
			&seats,
		); err != nil {
			return out, err
		}
		b.Seats = splitSeats(seats)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete removes the booking; seat rows go with it via ON DELETE CASCADE,
// which frees the seats in the taken-seats query.
func (r BookingRepo) Delete(id domain.ID) error {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE id = ?`, int64(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func splitSeats(raw sql.NullString) []string {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return []string{}
	}
	parts := strings.Split(raw.String, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
