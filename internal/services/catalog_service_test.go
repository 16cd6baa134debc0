package services

import (
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCatalogService(t *testing.T) (CatalogService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return CatalogService{Trips: repositories.TripRepo{DB: db}}, mock, func() { db.Close() }
}

func validTripInput() TripInput {
	return TripInput{
		Name:          "Greenline Express",
		PlateNumber:   "BA-1-KHA-1234",
		VehicleClass:  "Deluxe",
		Price:         1200,
		TravelDate:    "2026-09-01",
		PickupPoints:  []string{"Kalanki", " ", "Balkhu"},
		Origin:        "Kathmandu",
		Destination:   "Pokhara",
		DepartureTime: "07:00 AM",
		ArrivalTime:   "02:00 PM",
		Duration:      "7h",
	}
}

func TestPublish_OperatorOnly(t *testing.T) {
	svc, _, done := newCatalogService(t)
	defer done()

	passenger := domain.RequestContext{UserID: 3, Role: domain.RolePassenger}
	if _, err := svc.Publish(passenger, validTripInput()); !domain.IsForbidden(err) {
		t.Fatalf("passenger publish: expected forbidden, got %v", err)
	}

	if _, err := svc.Publish(domain.RequestContext{}, validTripInput()); !domain.IsUnauthorized(err) {
		t.Fatalf("anonymous publish: expected unauthorized, got %v", err)
	}
}

func TestPublish_DefaultsAndCleanup(t *testing.T) {
	svc, mock, done := newCatalogService(t)
	defer done()

	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(5, 1))

	operator := domain.RequestContext{UserID: 2, Role: domain.RoleOperator}
	trip, err := svc.Publish(operator, validTripInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.TotalSeats != 40 {
		t.Fatalf("total seats = %d, want default 40", trip.TotalSeats)
	}
	if trip.OperatorID != 2 {
		t.Fatalf("operator id = %d, want caller id", trip.OperatorID)
	}
	if len(trip.PickupPoints) != 2 {
		t.Fatalf("blank pickup point not dropped: %v", trip.PickupPoints)
	}
}

func TestPublish_Validation(t *testing.T) {
	svc, _, done := newCatalogService(t)
	defer done()

	operator := domain.RequestContext{UserID: 2, Role: domain.RoleOperator}

	in := validTripInput()
	in.Price = 0
	if _, err := svc.Publish(operator, in); !domain.IsValidation(err) {
		t.Fatalf("zero price: expected validation error, got %v", err)
	}

	in = validTripInput()
	in.TravelDate = "01-09-2026"
	if _, err := svc.Publish(operator, in); !domain.IsValidation(err) {
		t.Fatalf("bad date: expected validation error, got %v", err)
	}

	in = validTripInput()
	in.Destination = "Kathmandu"
	if _, err := svc.Publish(operator, in); !domain.IsValidation(err) {
		t.Fatalf("same origin/destination: expected validation error, got %v", err)
	}
}

func TestSearch_BadDateRejected(t *testing.T) {
	svc, _, done := newCatalogService(t)
	defer done()

	_, err := svc.Search(models.TripSearch{Date: "not-a-date"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
