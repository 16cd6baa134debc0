package services

import (
	"bytes"
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets as PDF.
type DocsService struct {
	Trips     repositories.TripRepo
	RequestID string
}

// ETicket builds a one-page ticket for an already-authorized booking.
func (s DocsService) ETicket(booking models.Booking) ([]byte, string, error) {
	trip, err := s.Trips.GetByID(booking.TripID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", err
		}
		return nil, "", domain.InternalError{Msg: "failed to fetch trip", Err: err}
	}

	utils.LogEvent(s.RequestID, "docs", "eticket", fmt.Sprintf("booking_id=%d", booking.ID))
	return buildETicketPDF(booking, trip)
}

func buildETicketPDF(b models.Booking, t models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger     : %s", safe(b.Passenger.Name)),
		fmt.Sprintf("Mobile        : %s", safe(b.Passenger.Mobile)),
		fmt.Sprintf("Bus           : %s (%s)", safe(t.Name), safe(t.VehicleClass)),
		fmt.Sprintf("Route         : %s -> %s", safe(t.Route.Origin), safe(t.Route.Destination)),
		fmt.Sprintf("Date / Depart : %s %s", safe(t.TravelDate), safe(t.Route.DepartureTime)),
		fmt.Sprintf("Seats         : %s", safe(strings.Join(b.Seats, ", "))),
		fmt.Sprintf("Pickup        : %s", safe(b.PickupPoint)),
		fmt.Sprintf("Paid via      : %s", safe(b.PaymentMethod)),
		fmt.Sprintf("Total         : %d", b.TotalPrice),
		fmt.Sprintf("Booking code  : BKG-%d", b.ID),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this ticket when boarding. Valid for the listed seats only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
