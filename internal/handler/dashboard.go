package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bay-services/dashboard/backend/internal/dashboard"
	"github.com/bay-services/dashboard/backend/internal/shift"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetSchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	snapshot := dashboard.BuildSnapshot(schedules, h.now(), nil)
	if h.metrics != nil {
		h.metrics.ObserveEvaluation(snapshot.OnShift)
	}

	h.successResponse(w, r, "dashboard fetched", snapshot)
}

func (h *Handler) GetOnShift(w http.ResponseWriter, r *http.Request) {
	tables, err := h.repository.LoadTables()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	onShift := shift.Evaluate(tables, h.now(), nil)
	if h.metrics != nil {
		h.metrics.ObserveEvaluation(onShift)
	}

	h.successResponse(w, r, "on-shift fetched", onShift)
}

// StreamOnShift pushes every changed on-shift result as a server-sent event
// until the client goes away.
func (h *Handler) StreamOnShift(w http.ResponseWriter, r *http.Request) {
	if h.watcher == nil {
		h.errorResponse(w, r, "live updates are not available")
		return
	}

	rc := http.NewResponseController(w)
	// the server write timeout would cut the stream otherwise
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.logInternalServerError(r, err)
		return
	}

	updates, cancel := h.watcher.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case onShift, ok := <-updates:
			if !ok {
				// the watcher stopped, the server is going down
				return
			}
			data, err := json.Marshal(onShift)
			if err != nil {
				h.logInternalServerError(r, err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: on-shift\ndata: %s\n\n", data); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
