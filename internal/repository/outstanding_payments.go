package repository

import (
	"github.com/bay-services/dashboard/backend/internal/domain"
)

func (r *Repository) GetAllOutstandingPayments() ([]*domain.OutstandingPayment, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, customer_name, amount_due, invoice_date, status, version
		FROM outstanding_payments
		ORDER BY customer_name, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.OutstandingPayment, 0)
	for rows.Next() {
		p := &domain.OutstandingPayment{}
		if err := rows.Scan(&p.ID, &p.CustomerName, &p.AmountDue, &p.InvoiceDate, &p.Status, &p.Version); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *Repository) GetOutstandingPaymentByID(id string) (*domain.OutstandingPayment, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT customer_name, amount_due, invoice_date, status, version
		FROM outstanding_payments
		WHERE id = $1
	`

	p := &domain.OutstandingPayment{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&p.CustomerName, &p.AmountDue, &p.InvoiceDate, &p.Status, &p.Version); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) UpdateOutstandingPaymentStatus(p *domain.OutstandingPayment) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE outstanding_payments
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	return r.dbpool.QueryRowContext(ctx, query, p.Status, p.ID, p.Version).Scan(&p.Version)
}

func (r *Repository) UpsertOutstandingPayment(p *domain.OutstandingPayment) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO outstanding_payments (id, customer_name, amount_due, invoice_date, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET
			customer_name = EXCLUDED.customer_name,
			amount_due = EXCLUDED.amount_due,
			invoice_date = EXCLUDED.invoice_date,
			status = EXCLUDED.status,
			version = outstanding_payments.version + 1
		RETURNING version
	`

	args := []any{p.ID, p.CustomerName, p.AmountDue, p.InvoiceDate, p.Status}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.Version)
}
