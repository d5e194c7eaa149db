package dashboard

import (
	"time"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/shift"
)

const (
	dateLayout = "Monday, January 2, 2006"
	timeLayout = "3:04:05 PM"
)

type Clock struct {
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Day     string    `json:"day"`
	Instant time.Time `json:"instant"`
}

type Snapshot struct {
	Clock     Clock             `json:"clock"`
	OnShift   domain.OnShift    `json:"onShift"`
	Schedules []domain.Schedule `json:"schedules"`
}

// ClockAt formats now in loc, Pacific when loc is nil.
func ClockAt(now time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = shift.Pacific()
	}
	local := now.In(loc)
	return Clock{
		Date:    local.Format(dateLayout),
		Time:    local.Format(timeLayout),
		Day:     local.Weekday().String(),
		Instant: local,
	}
}

// BuildSnapshot evaluates the schedules at now and bundles them with the clock.
func BuildSnapshot(schedules []domain.Schedule, now time.Time, loc *time.Location) Snapshot {
	tables := make([]shift.Table, 0, len(schedules))
	for _, s := range schedules {
		tables = append(tables, shift.Table{Role: s.Role, Rows: s.Rows})
	}

	return Snapshot{
		Clock:     ClockAt(now, loc),
		OnShift:   shift.Evaluate(tables, now, loc),
		Schedules: schedules,
	}
}
