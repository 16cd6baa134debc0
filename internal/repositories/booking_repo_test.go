package repositories

import (
	"testing"

	"busbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTakenSeats_FlattensAcrossBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"seat_code"}).
		AddRow("1A").
		AddRow(" 2b").
		AddRow("10D")
	mock.ExpectQuery("SELECT seat_code").WithArgs(int64(5)).WillReturnRows(rows)

	repo := BookingRepo{DB: db}
	seats, err := repo.TakenSeats(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1A", "2B", "10D"}
	if len(seats) != len(want) {
		t.Fatalf("got %v, want %v", seats, want)
	}
	for i := range want {
		if seats[i] != want[i] {
			t.Fatalf("got %v, want %v", seats, want)
		}
	}
}

func TestTakenSeats_EmptyTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT seat_code").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}))

	repo := BookingRepo{DB: db}
	seats, err := repo.TakenSeats(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seats == nil || len(seats) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", seats)
	}
}

func TestDelete_MissingBookingNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bookings").WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepo{DB: db}
	if err := repo.Delete(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
