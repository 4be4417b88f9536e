package models

import (
	"github.com/shopspring/decimal"

	"github.com/rusunawa-id/booking-service/internal/domain"
)

// RentalTypeResponse тип аренды
type RentalTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RentalTypeListResponse справочник типов аренды
type RentalTypeListResponse struct {
	RentalTypes []RentalTypeResponse `json:"rentalTypes"`
}

// DayAvailability доступность комнаты на день
type DayAvailability struct {
	Date        string `json:"date"` // "2025-03-01"
	IsAvailable bool   `json:"isAvailable"`
}

// AvailabilityResponse календарь доступности комнаты на период [startDate, endDate)
type AvailabilityResponse struct {
	RoomID    int64             `json:"roomId"`
	RoomName  string            `json:"roomName"`
	Rate      decimal.Decimal   `json:"rate"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Days      []DayAvailability `json:"days"`
}

// FromDomainRentalTypes конвертирует справочник в DTO
func FromDomainRentalTypes(types []domain.RentalType) *RentalTypeListResponse {
	resp := &RentalTypeListResponse{RentalTypes: make([]RentalTypeResponse, len(types))}
	for i, rt := range types {
		resp.RentalTypes[i] = RentalTypeResponse{ID: rt.ID, Name: string(rt.Name)}
	}
	return resp
}

// FromDomainDays конвертирует календарь в DTO
func FromDomainDays(days []domain.RoomDayAvailability) []DayAvailability {
	out := make([]DayAvailability, len(days))
	for i, d := range days {
		out[i] = DayAvailability{Date: d.Date.Format(domain.DateFormat), IsAvailable: d.IsAvailable}
	}
	return out
}
