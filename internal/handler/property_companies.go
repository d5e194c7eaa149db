package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

const propertyCompaniesCollection = "propertyManagement"

func (h *Handler) GetAllPropertyCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.repository.GetAllPropertyCompanies()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "property companies fetched", companies)
}

func (h *Handler) CreatePropertyCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Company        string `json:"company" validate:"required"`
		Phone          string `json:"phone" validate:"required"`
		InvoicingEmail string `json:"invoicingEmail" validate:"omitempty,email"`
		Representative string `json:"representative"`
		Email          string `json:"email" validate:"omitempty,email"`
		Phone2         string `json:"phone2"`
		Discount       string `json:"discount"`
		Note           string `json:"note"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	company := &domain.PropertyCompany{
		Company:        req.Company,
		Phone:          req.Phone,
		InvoicingEmail: req.InvoicingEmail,
		Representative: req.Representative,
		Email:          req.Email,
		Phone2:         req.Phone2,
		Discount:       req.Discount,
		Note:           req.Note,
	}

	if err := h.repository.CreatePropertyCompany(company); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "property_companies_pkey":
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyChange(propertyCompaniesCollection, company.ID, domain.ChangeCreate)

	h.successResponse(w, r, "property company created", company)
}

func (h *Handler) GetPropertyCompany(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(PropertyCompanyCtx).(*domain.PropertyCompany)
	h.successResponse(w, r, "property company fetched", company)
}

func (h *Handler) UpdatePropertyCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Company        *string `json:"company" validate:"omitempty,min=1"`
		Phone          *string `json:"phone" validate:"omitempty,min=1"`
		InvoicingEmail *string `json:"invoicingEmail" validate:"omitempty,email"`
		Representative *string `json:"representative"`
		Email          *string `json:"email" validate:"omitempty,email"`
		Phone2         *string `json:"phone2"`
		Discount       *string `json:"discount"`
		Note           *string `json:"note"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	company := r.Context().Value(PropertyCompanyCtx).(*domain.PropertyCompany)

	if req.Company != nil {
		company.Company = *req.Company
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.InvoicingEmail != nil {
		company.InvoicingEmail = *req.InvoicingEmail
	}
	if req.Representative != nil {
		company.Representative = *req.Representative
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Phone2 != nil {
		company.Phone2 = *req.Phone2
	}
	if req.Discount != nil {
		company.Discount = *req.Discount
	}
	if req.Note != nil {
		company.Note = *req.Note
	}

	if err := h.repository.UpdatePropertyCompany(company); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "failed to update property company, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyChange(propertyCompaniesCollection, company.ID, domain.ChangeUpdate)

	h.successResponse(w, r, "property company updated", company)
}

func (h *Handler) DeletePropertyCompany(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(PropertyCompanyCtx).(*domain.PropertyCompany)

	if err := h.repository.DeletePropertyCompany(company.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.notifyChange(propertyCompaniesCollection, company.ID, domain.ChangeDelete)

	h.successResponse(w, r, "property company deleted", nil)
}
