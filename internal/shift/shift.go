// Package shift works out who is on shift at a given instant from the weekly
// schedule tables.
package shift

import (
	"time"
	_ "time/tzdata"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

// PacificZone is the zone every dashboard evaluation runs in.
const PacificZone = "America/Los_Angeles"

var pacific = mustLoadLocation(PacificZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Pacific returns the America/Los_Angeles location.
func Pacific() *time.Location {
	return pacific
}

// Weekdays are the row keys a schedule table is expected to use.
var Weekdays = []string{
	time.Sunday.String(),
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
}

// Table is a schedule snapshot tagged with the role its people fill.
type Table struct {
	Role domain.Role
	Rows []domain.ScheduleRow
}

// Evaluate returns who is on shift at now. The row for now's weekday (in loc,
// Pacific when loc is nil) is looked up by exact name in each table. Entries
// that are "off" or do not parse are skipped, so Evaluate never fails.
func Evaluate(tables []Table, now time.Time, loc *time.Location) domain.OnShift {
	if loc == nil {
		loc = pacific
	}
	local := now.In(loc)
	day := local.Weekday().String()

	res := domain.OnShift{
		Operators: []string{},
		Managers:  []string{},
	}

	for _, t := range tables {
		row := findRow(t.Rows, day)
		if row == nil {
			continue
		}

		for _, e := range row.Shifts {
			if IsOff(e.Shift) {
				continue
			}
			w, err := ParseWindow(e.Shift, local)
			if err != nil || !w.Contains(local) {
				continue
			}

			switch t.Role {
			case domain.RoleOperator:
				res.Operators = append(res.Operators, e.Name)
			case domain.RoleManager:
				res.Managers = append(res.Managers, e.Name)
			}
		}
	}

	return res
}

func findRow(rows []domain.ScheduleRow, day string) *domain.ScheduleRow {
	for i := range rows {
		if rows[i].Day == day {
			return &rows[i]
		}
	}
	return nil
}
