package repository

import (
	"github.com/google/uuid"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

const propertyCompanyColumns = `company, phone, invoicing_email, representative, email, phone2, discount, note`

func (r *Repository) GetAllPropertyCompanies() ([]*domain.PropertyCompany, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, ` + propertyCompanyColumns + `, created_at, version
		FROM property_companies
		ORDER BY company, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*domain.PropertyCompany, 0)
	for rows.Next() {
		c := &domain.PropertyCompany{}
		dst := []any{
			&c.ID,
			&c.Company,
			&c.Phone,
			&c.InvoicingEmail,
			&c.Representative,
			&c.Email,
			&c.Phone2,
			&c.Discount,
			&c.Note,
			&c.CreatedAt,
			&c.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *Repository) GetPropertyCompanyByID(id string) (*domain.PropertyCompany, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ` + propertyCompanyColumns + `, created_at, version
		FROM property_companies
		WHERE id = $1
	`

	c := &domain.PropertyCompany{
		ID: id,
	}
	dst := []any{
		&c.Company,
		&c.Phone,
		&c.InvoicingEmail,
		&c.Representative,
		&c.Email,
		&c.Phone2,
		&c.Discount,
		&c.Note,
		&c.CreatedAt,
		&c.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return c, nil
}

// CreatePropertyCompany stores c under a fresh id when c.ID is empty.
func (r *Repository) CreatePropertyCompany(c *domain.PropertyCompany) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO property_companies (id, ` + propertyCompanyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, version
	`

	args := []any{
		c.ID,
		c.Company,
		c.Phone,
		c.InvoicingEmail,
		c.Representative,
		c.Email,
		c.Phone2,
		c.Discount,
		c.Note,
	}

	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt, &c.Version)
}

func (r *Repository) UpdatePropertyCompany(c *domain.PropertyCompany) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE property_companies
		SET
			company = $1,
			phone = $2,
			invoicing_email = $3,
			representative = $4,
			email = $5,
			phone2 = $6,
			discount = $7,
			note = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	args := []any{
		c.Company,
		c.Phone,
		c.InvoicingEmail,
		c.Representative,
		c.Email,
		c.Phone2,
		c.Discount,
		c.Note,
		c.ID,
		c.Version,
	}

	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&c.Version)
}

func (r *Repository) DeletePropertyCompany(id string) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM property_companies WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	return err
}

func (r *Repository) UpsertPropertyCompany(c *domain.PropertyCompany) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO property_companies (id, ` + propertyCompanyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET
			company = EXCLUDED.company,
			phone = EXCLUDED.phone,
			invoicing_email = EXCLUDED.invoicing_email,
			representative = EXCLUDED.representative,
			email = EXCLUDED.email,
			phone2 = EXCLUDED.phone2,
			discount = EXCLUDED.discount,
			note = EXCLUDED.note,
			version = property_companies.version + 1
		RETURNING created_at, version
	`

	args := []any{
		c.ID,
		c.Company,
		c.Phone,
		c.InvoicingEmail,
		c.Representative,
		c.Email,
		c.Phone2,
		c.Discount,
		c.Note,
	}

	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt, &c.Version)
}
