package domain

import "time"

type PropertyCompany struct {
	ID             string    `json:"id"`
	Company        string    `json:"company"`
	Phone          string    `json:"phone"`
	InvoicingEmail string    `json:"invoicingEmail"`
	Representative string    `json:"representative"`
	Email          string    `json:"email"`
	Phone2         string    `json:"phone2"`
	Discount       string    `json:"discount"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"createdAt"`
	Version        int32     `json:"-"`
}
