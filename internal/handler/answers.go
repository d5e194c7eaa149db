package handler

import (
	"net/http"
	"strings"

	"github.com/bay-services/dashboard/backend/internal/catalog"
	"github.com/bay-services/dashboard/backend/internal/domain"
)

func (h *Handler) GetAutoAnswers(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	operatorName := strings.TrimSpace(r.URL.Query().Get("operator"))
	if operatorName == "" {
		operatorName = myInfo.DisplayName
	}

	answers, err := h.repository.GetAllAutoAnswers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "auto answers fetched", catalog.RenderAnswers(answers, operatorName))
}

// GetAutoAnswerOperators lists the people of the dispatcher schedule to pick
// a signature from.
func (h *Handler) GetAutoAnswerOperators(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repository.GetScheduleRows(domain.ScheduleDispatching.Name)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "operators fetched", catalog.OperatorNames(rows))
}
