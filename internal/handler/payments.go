package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/utils"
)

const outstandingPaymentsCollection = "outstandingPayments"

func (h *Handler) GetOutstandingPayments(w http.ResponseWriter, r *http.Request) {
	includePaid := false
	if v := r.URL.Query().Get("includePaid"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.errorResponse(w, r, "includePaid must be true or false")
			return
		}
		includePaid = b
	}

	payments, err := h.repository.GetAllOutstandingPayments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "payments fetched", utils.FilterVisiblePayments(payments, includePaid))
}

func (h *Handler) GetOutstandingPaymentSummary(w http.ResponseWriter, r *http.Request) {
	payments, err := h.repository.GetAllOutstandingPayments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "payment summary fetched", utils.SummarizePayments(payments))
}

func (h *Handler) ToggleOutstandingPaymentStatus(w http.ResponseWriter, r *http.Request) {
	payment := r.Context().Value(OutstandingPaymentCtx).(*domain.OutstandingPayment)

	payment.Status = utils.ToggledPaymentStatus(payment.Status)

	if err := h.repository.UpdateOutstandingPaymentStatus(payment); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update payment, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyChange(outstandingPaymentsCollection, payment.ID, domain.ChangeUpdate)

	h.successResponse(w, r, "payment status updated", payment)
}
