package handler

import (
	"net/http"

	"github.com/bay-services/dashboard/backend/internal/catalog"
)

func (h *Handler) GetServiceCatalog(w http.ResponseWriter, r *http.Request) {
	infos, err := h.repository.GetAllServiceInfo()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	prices, err := h.repository.GetAllServicePrices()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service catalog fetched", catalog.Combine(infos, prices))
}
