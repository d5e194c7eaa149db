package utils

import (
	"math"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

// SummarizePayments totals what is still owed, rounded to cents.
func SummarizePayments(payments []*domain.OutstandingPayment) domain.PaymentSummary {
	summary := domain.PaymentSummary{}
	for _, p := range payments {
		if p.Status != domain.PaymentOutstanding {
			continue
		}
		summary.TotalDue += p.AmountDue
		summary.OutstandingCount++
	}
	summary.TotalDue = math.Round(summary.TotalDue*100) / 100
	return summary
}

// FilterVisiblePayments drops paid invoices unless includePaid is set.
func FilterVisiblePayments(payments []*domain.OutstandingPayment, includePaid bool) []*domain.OutstandingPayment {
	if includePaid {
		return payments
	}
	visible := make([]*domain.OutstandingPayment, 0, len(payments))
	for _, p := range payments {
		if p.Status != domain.PaymentPaid {
			visible = append(visible, p)
		}
	}
	return visible
}

// ToggledPaymentStatus flips PAID back to OUTSTANDING; every other status
// becomes PAID.
func ToggledPaymentStatus(status domain.PaymentStatus) domain.PaymentStatus {
	if status == domain.PaymentPaid {
		return domain.PaymentOutstanding
	}
	return domain.PaymentPaid
}
