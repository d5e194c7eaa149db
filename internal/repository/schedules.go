package repository

import (
	"encoding/json"
	"slices"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/shift"
)

// Monday first, the way the schedule tables are shown.
func dayPosition(day string) int {
	i := slices.Index(shift.Weekdays, day)
	if i < 0 {
		return len(shift.Weekdays)
	}
	return (i + 6) % 7
}

func (r *Repository) GetScheduleRows(schedule string) ([]domain.ScheduleRow, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, day, shifts, version
		FROM schedule_rows
		WHERE schedule = $1
		ORDER BY position, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, schedule)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.ScheduleRow, 0, 7)
	for rows.Next() {
		var row domain.ScheduleRow
		var shifts []byte

		if err := rows.Scan(&row.ID, &row.Day, &shifts, &row.Version); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(shifts, &row.Shifts); err != nil {
			return nil, err
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Repository) GetScheduleRow(schedule string, id int64) (*domain.ScheduleRow, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT day, shifts, version
		FROM schedule_rows
		WHERE schedule = $1 AND id = $2
	`

	row := &domain.ScheduleRow{
		ID: id,
	}
	var shifts []byte

	if err := r.dbpool.QueryRowContext(ctx, query, schedule, id).Scan(&row.Day, &shifts, &row.Version); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shifts, &row.Shifts); err != nil {
		return nil, err
	}

	return row, nil
}

func (r *Repository) UpdateScheduleRowShifts(row *domain.ScheduleRow) error {
	shifts, err := json.Marshal(row.Shifts)
	if err != nil {
		return err
	}

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE schedule_rows
		SET
			shifts = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, string(shifts), row.ID, row.Version).Scan(&row.Version); err != nil {
		return err
	}

	return nil
}

// UpsertScheduleRow replaces the whole row for (schedule, day).
func (r *Repository) UpsertScheduleRow(schedule string, row *domain.ScheduleRow) error {
	shifts, err := json.Marshal(row.Shifts)
	if err != nil {
		return err
	}

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO schedule_rows (schedule, day, position, shifts)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (schedule, day) DO UPDATE
		SET
			shifts = EXCLUDED.shifts,
			position = EXCLUDED.position,
			version = schedule_rows.version + 1
		RETURNING id, version
	`

	args := []any{schedule, row.Day, dayPosition(row.Day), string(shifts)}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&row.ID, &row.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSchedules() ([]domain.Schedule, error) {
	schedules := make([]domain.Schedule, 0, len(domain.ScheduleKinds))
	for _, kind := range domain.ScheduleKinds {
		rows, err := r.GetScheduleRows(kind.Name)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, domain.Schedule{ScheduleKind: kind, Rows: rows})
	}
	return schedules, nil
}

// LoadTables reads both schedules as evaluator input.
func (r *Repository) LoadTables() ([]shift.Table, error) {
	schedules, err := r.GetSchedules()
	if err != nil {
		return nil, err
	}

	tables := make([]shift.Table, 0, len(schedules))
	for _, s := range schedules {
		tables = append(tables, shift.Table{Role: s.Role, Rows: s.Rows})
	}
	return tables, nil
}
