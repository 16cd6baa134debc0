package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

// Taken seats is the one unauthenticated booking-ledger read: the seat map
// widget calls it before login.
func TestTakenSeatsEndpoint_Public(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"seat_code"}).AddRow("1A").AddRow("7C")
	mock.ExpectQuery("SELECT seat_code").WithArgs(int64(5)).WillReturnRows(rows)

	r := gin.New()
	h := TripHandler{DB: db}
	r.GET("/api/trips/:id/seats", h.TakenSeats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/5/seats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		BookedSeats []string `json:"bookedSeats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.BookedSeats) != 2 || body.BookedSeats[1] != "7C" {
		t.Fatalf("bookedSeats = %v", body.BookedSeats)
	}
}

func TestTakenSeatsEndpoint_BadTripID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	r := gin.New()
	h := TripHandler{DB: db}
	r.GET("/api/trips/:id/seats", h.TakenSeats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/abc/seats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
