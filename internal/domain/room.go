package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalTypeName is the billing model of a rental type
type RentalTypeName string

const (
	RentalDaily   RentalTypeName = "harian"
	RentalMonthly RentalTypeName = "bulanan"
)

// RentalType represents a duration and pricing model
type RentalType struct {
	ID   int64
	Name RentalTypeName
}

// IsMonthly returns true for the monthly (bulanan) model
func (rt *RentalType) IsMonthly() bool {
	return rt.Name == RentalMonthly
}

// IsDaily returns true for the daily (harian) model
func (rt *RentalType) IsDaily() bool {
	return rt.Name == RentalDaily
}

// IsKnown returns true if the rental type name maps to a pricing model
func (rt *RentalType) IsKnown() bool {
	return rt.IsDaily() || rt.IsMonthly()
}

// Room represents a rentable room in a building floor
type Room struct {
	ID           int64
	Name         string
	BuildingID   int64
	FloorID      int64
	Capacity     int
	RentalTypeID int64
	Rate         decimal.Decimal // цена за единицу периода (день или месяц)
}

// RoomDayAvailability is one day of a room availability calendar
type RoomDayAvailability struct {
	Date        time.Time
	IsAvailable bool
}
