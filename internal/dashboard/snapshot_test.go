package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func TestClockAt(t *testing.T) {
	// 20:05:09 UTC is 12:05:09 in Los Angeles in January.
	now := time.Date(2024, time.January, 15, 20, 5, 9, 0, time.UTC)

	c := ClockAt(now, nil)

	assert.Equal(t, "Monday, January 15, 2024", c.Date)
	assert.Equal(t, "12:05:09 PM", c.Time)
	assert.Equal(t, "Monday", c.Day)
	assert.True(t, now.Equal(c.Instant))
}

func TestBuildSnapshot(t *testing.T) {
	schedules := []domain.Schedule{
		{
			ScheduleKind: domain.ScheduleDispatching,
			Rows: []domain.ScheduleRow{{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "Thomas", Shift: "9:00 am-5:00 pm"},
				{Name: "David", Shift: "off"},
			}}},
		},
		{
			ScheduleKind: domain.ScheduleManagement,
			Rows: []domain.ScheduleRow{{Day: "Monday", Shifts: []domain.ShiftEntry{
				{Name: "Trinity", Shift: "10 am-6 pm"},
			}}},
		},
	}

	s := BuildSnapshot(schedules, mondayAt(12, 0), nil)

	assert.Equal(t, []string{"Thomas"}, s.OnShift.Operators)
	assert.Equal(t, []string{"Trinity"}, s.OnShift.Managers)
	assert.Equal(t, "Monday", s.Clock.Day)
	assert.Len(t, s.Schedules, 2)
}
