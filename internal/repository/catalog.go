package repository

import (
	"github.com/bay-services/dashboard/backend/internal/domain"
)

func (r *Repository) GetAllAutoAnswers() ([]*domain.AutoAnswer, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, service_type, message FROM auto_answers ORDER BY service_type
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]*domain.AutoAnswer, 0)
	for rows.Next() {
		a := &domain.AutoAnswer{}
		if err := rows.Scan(&a.ID, &a.ServiceType, &a.Message); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return answers, nil
}

func (r *Repository) UpsertAutoAnswer(a *domain.AutoAnswer) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO auto_answers (id, service_type, message)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET service_type = EXCLUDED.service_type, message = EXCLUDED.message
	`

	_, err := r.dbpool.ExecContext(ctx, query, a.ID, a.ServiceType, a.Message)
	return err
}

func (r *Repository) GetAllServicePrices() ([]*domain.ServicePrice, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, service, price, note FROM service_prices ORDER BY service
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]*domain.ServicePrice, 0)
	for rows.Next() {
		p := &domain.ServicePrice{}
		if err := rows.Scan(&p.ID, &p.Service, &p.Price, &p.Note); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prices, nil
}

func (r *Repository) UpsertServicePrice(p *domain.ServicePrice) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO service_prices (id, service, price, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET service = EXCLUDED.service, price = EXCLUDED.price, note = EXCLUDED.note
	`

	_, err := r.dbpool.ExecContext(ctx, query, p.ID, p.Service, p.Price, p.Note)
	return err
}

func (r *Repository) GetAllServiceInfo() ([]*domain.ServiceInfo, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, service, when_it_needs, frequency, methods, stages, duration
		FROM service_info ORDER BY service
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := make([]*domain.ServiceInfo, 0)
	for rows.Next() {
		i := &domain.ServiceInfo{}
		dst := []any{&i.ID, &i.Service, &i.WhenItNeeds, &i.Frequency, &i.Methods, &i.Stages, &i.Duration}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		infos = append(infos, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return infos, nil
}

func (r *Repository) UpsertServiceInfo(i *domain.ServiceInfo) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO service_info (id, service, when_it_needs, frequency, methods, stages, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET
			service = EXCLUDED.service,
			when_it_needs = EXCLUDED.when_it_needs,
			frequency = EXCLUDED.frequency,
			methods = EXCLUDED.methods,
			stages = EXCLUDED.stages,
			duration = EXCLUDED.duration
	`

	args := []any{i.ID, i.Service, i.WhenItNeeds, i.Frequency, i.Methods, i.Stages, i.Duration}
	_, err := r.dbpool.ExecContext(ctx, query, args...)
	return err
}
