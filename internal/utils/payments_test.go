package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func samplePayments() []*domain.OutstandingPayment {
	return []*domain.OutstandingPayment{
		{ID: "1", CustomerName: "Alder Property Group", AmountDue: 149.99, Status: domain.PaymentOutstanding},
		{ID: "2", CustomerName: "Bayview HOA", AmountDue: 300, Status: domain.PaymentPaid},
		{ID: "3", CustomerName: "Cedar Lane", AmountDue: 0.1, Status: domain.PaymentOutstanding},
		{ID: "4", CustomerName: "Dogwood", AmountDue: 0.2, Status: domain.PaymentOutstanding},
	}
}

func TestSummarizePayments(t *testing.T) {
	summary := SummarizePayments(samplePayments())

	assert.Equal(t, 150.29, summary.TotalDue)
	assert.Equal(t, 3, summary.OutstandingCount)

	assert.Equal(t, domain.PaymentSummary{}, SummarizePayments(nil))
}

func TestFilterVisiblePayments(t *testing.T) {
	payments := samplePayments()

	visible := FilterVisiblePayments(payments, false)
	assert.Len(t, visible, 3)
	for _, p := range visible {
		assert.NotEqual(t, domain.PaymentPaid, p.Status)
	}

	assert.Len(t, FilterVisiblePayments(payments, true), 4)
}

func TestToggledPaymentStatus(t *testing.T) {
	assert.Equal(t, domain.PaymentOutstanding, ToggledPaymentStatus(domain.PaymentPaid))
	assert.Equal(t, domain.PaymentPaid, ToggledPaymentStatus(domain.PaymentOutstanding))
	assert.Equal(t, domain.PaymentPaid, ToggledPaymentStatus(""))
}
