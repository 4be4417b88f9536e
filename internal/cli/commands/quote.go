package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rusunawa-id/booking-service/internal/api/handlers"
	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/reservation"
)

// quoteOutput результат команды quote
type quoteOutput struct {
	*handlers.QuoteResponse
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Check availability and price of a stay",
		Long: `Runs the reservation engine against a room rate, the tenant's existing bookings
and the room's blackout dates. Daily stays need --start and --end, monthly stays
need --start and --months. Rejections are printed with isAvailable=false;
invalid periods fail the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rateValue, _ := cmd.Flags().GetString("rate")
			rentalTypeName, _ := cmd.Flags().GetString("rental-type")
			startValue, _ := cmd.Flags().GetString("start")
			endValue, _ := cmd.Flags().GetString("end")
			months, _ := cmd.Flags().GetInt("months")
			bookingsPath, _ := cmd.Flags().GetString("bookings")
			blackoutValues, _ := cmd.Flags().GetStringSlice("blackout")

			rate, err := decimal.NewFromString(rateValue)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %v", rateValue, err)
			}

			start, err := handlers.ParseDate(startValue)
			if err != nil {
				return fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", startValue)
			}
			end, err := handlers.ParseDate(endValue)
			if err != nil {
				return fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", endValue)
			}

			blackouts, err := parseDates(blackoutValues)
			if err != nil {
				return err
			}

			bookings, err := loadBookings(cmd, bookingsPath)
			if err != nil {
				return err
			}

			// Ставка задаётся для типа аренды из флага, поэтому комната всегда своего типа
			result, err := reservation.Evaluate(reservation.Request{
				Room:             domain.Room{Rate: rate},
				RentalType:       domain.RentalType{Name: domain.RentalTypeName(rentalTypeName)},
				StartDate:        start,
				EndDate:          end,
				MonthsToRent:     months,
				BlackoutDates:    blackouts,
				ExistingBookings: bookings,
			})

			out := quoteOutput{QuoteResponse: handlers.FromReservationResult(result)}
			if err != nil {
				reason, message, ok := handlers.RejectionMessage(err, result)
				if !ok {
					if msg, isPeriod := handlers.PeriodErrorMessage(err); isPeriod {
						return fmt.Errorf("%s: %w", msg, err)
					}
					return err
				}
				out.Reason = reason
				out.Message = message
			}

			return writeJSON(cmd, out)
		},
	}

	cmd.Flags().String("rate", "", "Room rate per day or month")
	cmd.Flags().String("rental-type", string(domain.RentalDaily), "Rental type: harian or bulanan")
	cmd.Flags().String("start", "", "Check-in date, YYYY-MM-DD")
	cmd.Flags().String("end", "", "Check-out date for daily stays, YYYY-MM-DD")
	cmd.Flags().Int("months", 0, "Months to rent for monthly stays (1-12)")
	cmd.Flags().String("bookings", "", "Path to tenant bookings JSON file, - for stdin")
	cmd.Flags().StringSlice("blackout", nil, "Unavailable dates of the room, YYYY-MM-DD")

	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
