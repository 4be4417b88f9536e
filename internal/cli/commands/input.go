package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/domain"
)

// documentInput документ жильца во входном JSON
type documentInput struct {
	ID        int64  `json:"id"`
	DocTypeID int64  `json:"docTypeId"`
	Status    string `json:"status"`
}

// bookingInput бронирование жильца во входном JSON
type bookingInput struct {
	ID           int64           `json:"id"`
	RoomID       int64           `json:"roomId"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// readInput читает файл, "-" означает stdin команды
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func loadDocuments(cmd *cobra.Command, path string) ([]domain.Document, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents: %v", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var in []documentInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse documents: %v", err)
	}

	docs := make([]domain.Document, len(in))
	for i, d := range in {
		docs[i] = domain.Document{
			ID:        d.ID,
			DocTypeID: d.DocTypeID,
			Status:    domain.DocumentStatus(d.Status),
		}
	}
	return docs, nil
}

func loadBookings(cmd *cobra.Command, path string) ([]domain.Booking, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %v", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var in []bookingInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse bookings: %v", err)
	}

	bookings := make([]domain.Booking, 0, len(in))
	for _, b := range in {
		checkIn, err := time.Parse(domain.DateFormat, b.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("booking %d: invalid checkInDate %q", b.ID, b.CheckInDate)
		}
		checkOut, err := time.Parse(domain.DateFormat, b.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("booking %d: invalid checkOutDate %q", b.ID, b.CheckOutDate)
		}
		status := domain.BookingStatus(b.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("booking %d: unknown status %q", b.ID, b.Status)
		}

		bookings = append(bookings, domain.Booking{
			ID:           b.ID,
			RoomID:       b.RoomID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Status:       status,
			TotalAmount:  b.TotalAmount,
		})
	}
	return bookings, nil
}

func parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := handlers.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
		}
		if !d.IsZero() {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
