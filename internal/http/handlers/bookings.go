package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	DB *sql.DB
}

func (h BookingHandler) service(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepo{DB: h.DB},
		Trips:     repositories.TripRepo{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

type createBookingRequest struct {
	TripID        int64                   `json:"tripId"`
	Seats         []string                `json:"seats"`
	TotalPrice    int64                   `json:"totalPrice"`
	Passenger     models.PassengerDetails `json:"passengerDetails"`
	PickupPoint   string                  `json:"pickupPoint"`
	PaymentMethod string                  `json:"paymentMethod"`
}

// POST /api/bookings
func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := h.service(c).Create(middleware.GetCaller(c), services.BookingInput{
		TripID:        domain.ID(req.TripID),
		Seats:         req.Seats,
		TotalPrice:    req.TotalPrice,
		Passenger:     req.Passenger,
		PickupPoint:   req.PickupPoint,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "booking confirmed", "booking": booking})
}

// GET /api/bookings?operatorId=ID
func (h BookingHandler) List(c *gin.Context) {
	var operatorID domain.ID
	if raw := strings.TrimSpace(c.Query("operatorId")); raw != "" {
		operatorID = parseID(raw)
		if operatorID == 0 {
			RespondError(c, http.StatusBadRequest, "validation_error", "operatorId must be a positive integer")
			return
		}
	}

	bookings, err := h.service(c).List(middleware.GetCaller(c), operatorID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DELETE /api/bookings/:id
func (h BookingHandler) Delete(c *gin.Context) {
	if err := h.service(c).Delete(middleware.GetCaller(c), parseID(c.Param("id"))); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// GET /api/bookings/:id/e-ticket
func (h BookingHandler) ETicket(c *gin.Context) {
	booking, err := h.service(c).Get(middleware.GetCaller(c), parseID(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{
		Trips:     repositories.TripRepo{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := docs.ETicket(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
