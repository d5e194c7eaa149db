package domain

// ShiftEntry is one cell of a schedule row: a person and their shift-spec
// ("off" or a range like "9:00 am-5:30 pm").
type ShiftEntry struct {
	Name  string `json:"name"`
	Shift string `json:"shift"`
}

// ScheduleRow holds one weekday of a schedule table. Shifts keeps the order
// the people were entered in.
type ScheduleRow struct {
	ID      int64        `json:"id"`
	Day     string       `json:"day"`
	Shifts  []ShiftEntry `json:"shifts"`
	Version int32        `json:"-"`
}

// Lookup returns the shift-spec stored for name.
func (r *ScheduleRow) Lookup(name string) (string, bool) {
	for _, e := range r.Shifts {
		if e.Name == name {
			return e.Shift, true
		}
	}
	return "", false
}

// Set overwrites the shift-spec for name, appending a new entry when name is
// not in the row yet.
func (r *ScheduleRow) Set(name, shift string) {
	for i := range r.Shifts {
		if r.Shifts[i].Name == name {
			r.Shifts[i].Shift = shift
			return
		}
	}
	r.Shifts = append(r.Shifts, ShiftEntry{Name: name, Shift: shift})
}

type ScheduleKind struct {
	Name       string `json:"name"`
	Collection string `json:"collection"`
	Title      string `json:"title"`
	Role       Role   `json:"role"`
}

var (
	ScheduleDispatching = ScheduleKind{
		Name:       "dispatching",
		Collection: "dispatchingSchedule",
		Title:      "Dispatcher Schedule",
		Role:       RoleOperator,
	}
	ScheduleManagement = ScheduleKind{
		Name:       "management",
		Collection: "managementSchedule",
		Title:      "Manager Schedule",
		Role:       RoleManager,
	}
)

var ScheduleKinds = []ScheduleKind{ScheduleDispatching, ScheduleManagement}

func ScheduleKindByName(name string) (ScheduleKind, bool) {
	for _, k := range ScheduleKinds {
		if k.Name == name {
			return k, true
		}
	}
	return ScheduleKind{}, false
}

type Schedule struct {
	ScheduleKind
	Rows []ScheduleRow `json:"rows"`
}

// OnShift lists who is working right now, bucketed by the role of the
// schedule they were found in.
type OnShift struct {
	Operators []string `json:"operators"`
	Managers  []string `json:"managers"`
}

func (o OnShift) Equal(other OnShift) bool {
	return equalNames(o.Operators, other.Operators) && equalNames(o.Managers, other.Managers)
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
