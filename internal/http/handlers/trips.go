package handlers

import (
	"database/sql"
	"net/http"

	"busbooking/internal/domain/models"
	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	DB *sql.DB
}

func (h TripHandler) service(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Trips:     repositories.TripRepo{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/trips?origin&destination&date&operatorId
func (h TripHandler) Search(c *gin.Context) {
	trips, err := h.service(c).Search(models.TripSearch{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		OperatorID:  parseID(c.Query("operatorId")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

type createTripRequest struct {
	Name          string   `json:"name"`
	PlateNumber   string   `json:"plateNumber"`
	VehicleClass  string   `json:"type"`
	Price         int64    `json:"price"`
	TravelDate    string   `json:"date"`
	PickupPoints  []string `json:"pickupPoints"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Duration      string   `json:"duration"`
	TotalSeats    int      `json:"totalSeats"`
}

// POST /api/trips (operator only)
func (h TripHandler) Publish(c *gin.Context) {
	var req createTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, err := h.service(c).Publish(middleware.GetCaller(c), services.TripInput{
		Name:          req.Name,
		PlateNumber:   req.PlateNumber,
		VehicleClass:  req.VehicleClass,
		Price:         req.Price,
		TravelDate:    req.TravelDate,
		PickupPoints:  req.PickupPoints,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Duration:      req.Duration,
		TotalSeats:    req.TotalSeats,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "trip published", "trip": trip})
}

// GET /api/trips/:id/seats — public taken-seats for the seat map widget.
func (h TripHandler) TakenSeats(c *gin.Context) {
	svc := services.BookingService{
		Bookings:  repositories.BookingRepo{DB: h.DB},
		Trips:     repositories.TripRepo{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}

	seats, err := svc.TakenSeats(parseID(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookedSeats": seats})
}
