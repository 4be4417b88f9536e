package domain

// Business validation constants
const (
	MinMonthsToRent     = 1
	MaxMonthsToRent     = 12
	MinMonthlyStayDays  = 30 // нижняя граница фактической длительности помесячной аренды
	MinDailyUnits       = 1
	MaxAvailabilityDays = 366 // максимальный период календаря доступности
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов активных бронирований
// Только они участвуют в проверке пересечений
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusCheckedIn,
}

// InactiveStatuses список статусов, которые никогда не конфликтуют
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
}

// StatusTransitions допустимые переходы статусов бронирования
var StatusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCompleted},
}
