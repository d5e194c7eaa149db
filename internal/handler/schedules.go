package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/utils"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	kind := r.Context().Value(ScheduleKindCtx).(domain.ScheduleKind)

	rows, err := h.repository.GetScheduleRows(kind.Name)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule fetched", domain.Schedule{ScheduleKind: kind, Rows: rows})
}

// UpdateScheduleRow sets one person's shift-spec in a row. A name the row
// does not have yet is appended.
func (h *Handler) UpdateScheduleRow(w http.ResponseWriter, r *http.Request) {
	kind := r.Context().Value(ScheduleKindCtx).(domain.ScheduleKind)
	row := r.Context().Value(ScheduleRowCtx).(*domain.ScheduleRow)

	var req struct {
		Name  string `json:"name" validate:"required"`
		Shift string `json:"shift" validate:"required"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry := domain.ShiftEntry{
		Name:  strings.TrimSpace(req.Name),
		Shift: strings.TrimSpace(req.Shift),
	}
	if err := utils.ValidateShiftEntry(entry); err != nil {
		h.badRequest(w, r, err)
		return
	}

	row.Set(entry.Name, entry.Shift)

	if err := h.repository.UpdateScheduleRowShifts(row); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the schedule was changed meanwhile, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyChange(kind.Collection, strconv.FormatInt(row.ID, 10), domain.ChangeUpdate)

	h.successResponse(w, r, "schedule updated", row)
}
