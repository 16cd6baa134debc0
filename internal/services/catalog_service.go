package services

import (
	"fmt"
	"strings"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

const defaultTotalSeats = 40

// CatalogService manages the trip catalog: operators publish, anyone
// searches. Trips are immutable once published.
type CatalogService struct {
	Trips     repositories.TripRepo
	RequestID string
}

type TripInput struct {
	Name          string
	PlateNumber   string
	VehicleClass  string
	Price         int64
	TravelDate    string
	PickupPoints  []string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	Duration      string
	TotalSeats    int
}

func (s CatalogService) Publish(caller domain.RequestContext, in TripInput) (models.Trip, error) {
	if !caller.Authenticated() {
		return models.Trip{}, domain.UnauthorizedError{}
	}
	if caller.Role != domain.RoleOperator {
		return models.Trip{}, domain.ForbiddenError{Msg: "only operators can publish trips"}
	}

	in.Name = strings.TrimSpace(in.Name)
	in.PlateNumber = strings.TrimSpace(in.PlateNumber)
	in.TravelDate = strings.TrimSpace(in.TravelDate)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)

	if in.Name == "" {
		return models.Trip{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if in.PlateNumber == "" {
		return models.Trip{}, domain.ValidationError{Field: "plateNumber", Msg: "required"}
	}
	if in.Price <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "price", Msg: "must be positive"}
	}
	if _, err := time.Parse("2006-01-02", in.TravelDate); err != nil {
		return models.Trip{}, domain.ValidationError{Field: "travelDate", Msg: "must be YYYY-MM-DD"}
	}
	if in.Origin == "" || in.Destination == "" {
		return models.Trip{}, domain.ValidationError{Field: "route", Msg: "origin and destination are required"}
	}
	if strings.EqualFold(in.Origin, in.Destination) {
		return models.Trip{}, domain.ValidationError{Field: "route", Msg: "origin and destination must differ"}
	}
	if in.TotalSeats < 0 {
		return models.Trip{}, domain.ValidationError{Field: "totalSeats", Msg: "must not be negative"}
	}
	if in.TotalSeats == 0 {
		in.TotalSeats = defaultTotalSeats
	}

	pickups := make([]string, 0, len(in.PickupPoints))
	for _, p := range in.PickupPoints {
		if p = strings.TrimSpace(p); p != "" {
			pickups = append(pickups, p)
		}
	}

	trip := models.Trip{
		OperatorID:   caller.UserID,
		Name:         in.Name,
		PlateNumber:  in.PlateNumber,
		VehicleClass: strings.TrimSpace(in.VehicleClass),
		Price:        in.Price,
		TravelDate:   in.TravelDate,
		PickupPoints: pickups,
		Route: models.Route{
			Origin:        in.Origin,
			Destination:   in.Destination,
			DepartureTime: strings.TrimSpace(in.DepartureTime),
			ArrivalTime:   strings.TrimSpace(in.ArrivalTime),
			Duration:      strings.TrimSpace(in.Duration),
		},
		TotalSeats: in.TotalSeats,
	}

	created, err := s.Trips.Create(trip)
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "failed to save trip", Err: err}
	}

	utils.LogEvent(s.RequestID, "catalog", "publish", fmt.Sprintf("trip_id=%d operator_id=%d", created.ID, caller.UserID))
	return created, nil
}

func (s CatalogService) Search(f models.TripSearch) ([]models.TripWithOperator, error) {
	f.Origin = strings.TrimSpace(f.Origin)
	f.Destination = strings.TrimSpace(f.Destination)
	f.Date = strings.TrimSpace(f.Date)
	if f.Date != "" {
		if _, err := time.Parse("2006-01-02", f.Date); err != nil {
			return nil, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
		}
	}

	trips, err := s.Trips.Search(f)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to search trips", Err: err}
	}
	return trips, nil
}
