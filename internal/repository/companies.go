package repository

import (
	"context"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (r *Repository) CreateCompany(company *domain.Company) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO companies (name, plan)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, company.Name, company.Plan).Scan(&company.ID, &company.CreatedAt, &company.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCompanyByID(id int64) (*domain.Company, error) {
	query := `
		SELECT name, plan, created_at, version
		FROM companies WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	company := &domain.Company{
		ID: id,
	}

	dst := []any{&company.Name, &company.Plan, &company.CreatedAt, &company.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return company, nil
}

func (r *Repository) GetCompanyByName(name string) (*domain.Company, error) {
	query := `
		SELECT id, plan, created_at, version
		FROM companies WHERE name = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	company := &domain.Company{
		Name: name,
	}

	dst := []any{&company.ID, &company.Plan, &company.CreatedAt, &company.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(dst...); err != nil {
		return nil, err
	}

	return company, nil
}

func (r *Repository) UpdateCompany(company *domain.Company) error {
	query := `
		UPDATE companies
		SET
			name = $1,
			plan = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{company.Name, company.Plan, company.ID, company.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&company.CreatedAt, &company.Version); err != nil {
		return err
	}

	return nil
}
