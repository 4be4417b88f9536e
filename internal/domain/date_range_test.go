package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"inside", NewDateRange(date(2025, 1, 1), date(2025, 1, 10)), NewDateRange(date(2025, 1, 3), date(2025, 1, 5)), true},
		{"partial", NewDateRange(date(2025, 1, 1), date(2025, 1, 5)), NewDateRange(date(2025, 1, 4), date(2025, 1, 8)), true},
		{"adjacent", NewDateRange(date(2025, 1, 1), date(2025, 1, 5)), NewDateRange(date(2025, 1, 5), date(2025, 1, 8)), false},
		{"disjoint", NewDateRange(date(2025, 1, 1), date(2025, 1, 3)), NewDateRange(date(2025, 2, 1), date(2025, 2, 3)), false},
		{"same", NewDateRange(date(2025, 1, 1), date(2025, 1, 3)), NewDateRange(date(2025, 1, 1), date(2025, 1, 3)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestDateRange_OverlapSymmetryGrid(t *testing.T) {
	base := date(2025, 3, 1)
	for s1 := 0; s1 < 6; s1++ {
		for e1 := s1 + 1; e1 <= 6; e1++ {
			for s2 := 0; s2 < 6; s2++ {
				for e2 := s2 + 1; e2 <= 6; e2++ {
					a := NewDateRange(base.AddDate(0, 0, s1), base.AddDate(0, 0, e1))
					b := NewDateRange(base.AddDate(0, 0, s2), base.AddDate(0, 0, e2))
					assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
					if e1 == s2 {
						assert.False(t, a.Overlaps(b))
					}
				}
			}
		}
	}
}

func TestDateRange_DaysAndEachDay(t *testing.T) {
	r := NewDateRange(date(2025, 1, 30), date(2025, 2, 2))
	assert.Equal(t, 3, r.Days())

	var days []time.Time
	r.EachDay(func(day time.Time) bool {
		days = append(days, day)
		return true
	})
	assert.Equal(t, []time.Time{date(2025, 1, 30), date(2025, 1, 31), date(2025, 2, 1)}, days)
	assert.True(t, r.Contains(date(2025, 2, 1)))
	assert.False(t, r.Contains(date(2025, 2, 2)))
}

func TestNewDateRange_TruncatesTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	r := NewDateRange(time.Date(2025, 1, 1, 23, 30, 0, 0, loc), time.Date(2025, 1, 2, 1, 0, 0, 0, loc))
	assert.Equal(t, date(2025, 1, 1), r.Start)
	assert.Equal(t, date(2025, 1, 2), r.End)
	assert.Equal(t, 1, r.Days())
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start  time.Time
		months int
		want   time.Time
	}{
		{date(2025, 1, 15), 2, date(2025, 3, 15)},
		{date(2025, 1, 31), 1, date(2025, 2, 28)},
		{date(2024, 1, 31), 1, date(2024, 2, 29)},
		{date(2025, 3, 31), 1, date(2025, 4, 30)},
		{date(2025, 11, 30), 3, date(2026, 2, 28)},
		{date(2025, 5, 10), 12, date(2026, 5, 10)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AddMonths(tt.start, tt.months), "%s + %d", tt.start.Format(DateFormat), tt.months)
	}
}

func TestBooking_IsActive(t *testing.T) {
	for _, s := range ActiveStatuses {
		b := Booking{Status: s}
		assert.True(t, b.IsActive(), s)
	}
	for _, s := range InactiveStatuses {
		b := Booking{Status: s}
		assert.False(t, b.IsActive(), s)
	}
}

func TestBooking_CanTransitionTo(t *testing.T) {
	b := Booking{Status: StatusPending}
	assert.True(t, b.CanTransitionTo(StatusApproved))
	assert.False(t, b.CanTransitionTo(StatusCompleted))

	b.Status = StatusCheckedIn
	assert.True(t, b.CanTransitionTo(StatusCompleted))
	assert.False(t, b.CanTransitionTo(StatusCancelled))

	b.Status = StatusCancelled
	assert.False(t, b.CanTransitionTo(StatusPending))
}

func TestCategoryFromTypeName(t *testing.T) {
	assert.Equal(t, CategoryStudent, CategoryFromTypeName("mahasiswa"))
	assert.Equal(t, CategoryStudent, CategoryFromTypeName(" Mahasiswa "))
	assert.Equal(t, CategoryNonStudent, CategoryFromTypeName("umum"))
	assert.Equal(t, CategoryNonStudent, CategoryFromTypeName(""))
	assert.Len(t, CategoryStudent.RequiredDocuments(), 3)
	assert.Len(t, CategoryNonStudent.RequiredDocuments(), 1)
}
