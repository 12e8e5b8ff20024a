package repository

import (
	"context"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (r *Repository) CreateHoliday(holiday *domain.Holiday) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO holidays (company_id, name, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	args := []any{holiday.CompanyID, holiday.Name, holiday.Date}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &holiday.CreatedAt, &holiday.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetHolidayByID(id int64) (*domain.Holiday, error) {
	query := `
		SELECT company_id, name, date, created_at, version
		FROM holidays WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	holiday := &domain.Holiday{
		ID: id,
	}

	dst := []any{&holiday.CompanyID, &holiday.Name, &holiday.Date, &holiday.CreatedAt, &holiday.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return holiday, nil
}

func (r *Repository) GetHolidaysByCompany(companyID int64) ([]*domain.Holiday, error) {
	query := `
		SELECT id, name, date, created_at, version
		FROM holidays
		WHERE company_id = $1
		ORDER BY date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		holiday := &domain.Holiday{
			CompanyID: companyID,
		}
		dst := []any{&holiday.ID, &holiday.Name, &holiday.Date, &holiday.CreatedAt, &holiday.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) DeleteHoliday(id int64) error {
	query := `
		DELETE FROM holidays WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
