package domain

type PaymentStatus string

const (
	PaymentPaid        PaymentStatus = "PAID"
	PaymentOutstanding PaymentStatus = "OUTSTANDING"
)

type OutstandingPayment struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	AmountDue    float64       `json:"amountDue"`
	InvoiceDate  string        `json:"invoiceDate"`
	Status       PaymentStatus `json:"status"`
	Version      int32         `json:"-"`
}

type PaymentSummary struct {
	TotalDue         float64 `json:"totalDue"`
	OutstandingCount int     `json:"outstandingCount"`
}
