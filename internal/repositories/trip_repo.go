package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

type TripRepo struct {
	DB *sql.DB
}

func (r TripRepo) Create(t models.Trip) (models.Trip, error) {
	pickups, err := json.Marshal(t.PickupPoints)
	if err != nil {
		return models.Trip{}, err
	}
	res, err := r.DB.Exec(`
		INSERT INTO trips
			(operator_id, name, plate_number, vehicle_class, price, travel_date,
			 pickup_points, origin, destination, departure_time, arrival_time,
			 duration, total_seats, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		int64(t.OperatorID),
		t.Name,
		t.PlateNumber,
		t.VehicleClass,
		t.Price,
		t.TravelDate,
		string(pickups),
		t.Route.Origin,
		t.Route.Destination,
		t.Route.DepartureTime,
		t.Route.ArrivalTime,
		t.Route.Duration,
		t.TotalSeats,
		t.Rating,
	)
	if err != nil {
		return models.Trip{}, err
	}
	id, _ := res.LastInsertId()
	t.ID = domain.ID(id)
	return t, nil
}

func (r TripRepo) GetByID(id domain.ID) (models.Trip, error) {
	var t models.Trip
	var pickups sql.NullString
	err := r.DB.QueryRow(`
		SELECT id, operator_id, name, plate_number, vehicle_class, price,
		       travel_date, pickup_points, origin, destination, departure_time,
		       arrival_time, duration, total_seats, rating, created_at
		FROM trips
		WHERE id = ?
		LIMIT 1
	`, int64(id)).Scan(
		&t.ID,
		&t.OperatorID,
		&t.Name,
		&t.PlateNumber,
		&t.VehicleClass,
		&t.Price,
		&t.TravelDate,
		&pickups,
		&t.Route.Origin,
		&t.Route.Destination,
		&t.Route.DepartureTime,
		&t.Route.ArrivalTime,
		&t.Route.Duration,
		&t.TotalSeats,
		&t.Rating,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return models.Trip{}, err
	}
	t.PickupPoints = decodePickupPoints(pickups)
	return t, nil
}

// Search returns trips matching the filters, newest first, each joined with
// the owning operator's display names.
func (r TripRepo) Search(f models.TripSearch) ([]models.TripWithOperator, error) {
	where := []string{}
	args := []any{}

	if f.Origin != "" {
		where = append(where, "t.origin = ?")
		args = append(args, f.Origin)
	}
	if f.Destination != "" {
		where = append(where, "t.destination = ?")
		args = append(args, f.Destination)
	}
	if f.Date != "" {
		where = append(where, "t.travel_date = ?")
		args = append(args, f.Date)
	}
	if f.OperatorID > 0 {
		where = append(where, "t.operator_id = ?")
		args = append(args, int64(f.OperatorID))
	}

	query := `
		SELECT t.id, t.operator_id, t.name, t.plate_number, t.vehicle_class,
		       t.price, t.travel_date, t.pickup_points, t.origin, t.destination,
		       t.departure_time, t.arrival_time, t.duration, t.total_seats,
		       t.rating, t.created_at,
		       u.name, COALESCE(u.operator_name, '')
		FROM trips t
		JOIN users u ON u.id = t.operator_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY t.created_at DESC, t.id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripWithOperator{}
	for rows.Next() {
		var t models.TripWithOperator
		var pickups sql.NullString
		if err := rows.Scan(
			&t.ID,
			&t.OperatorID,
			&t.Name,
			&t.PlateNumber,
			&t.VehicleClass,
			&t.Price,
			&t.TravelDate,
			&pickups,
			&t.Route.Origin,
			&t.Route.Destination,
			&t.Route.DepartureTime,
			&t.Route.ArrivalTime,
			&t.Route.Duration,
			&t.TotalSeats,
			&t.Rating,
			&t.CreatedAt,
			&t.OperatorContactName,
			&t.OperatorDisplayName,
		); err != nil {
			return out, err
		}
		t.PickupPoints = decodePickupPoints(pickups)
		out = append(out, t)
	}
	return out, rows.Err()
}

func decodePickupPoints(raw sql.NullString) []string {
	out := []string{}
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return []string{}
	}
	return out
}
