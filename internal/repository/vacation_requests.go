package repository

import (
	"context"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (r *Repository) CreateVacationRequest(request *domain.VacationRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO vacation_requests (company_id, employee_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{request.CompanyID, request.EmployeeID, request.StartDate, request.EndDate, request.Reason, request.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&request.ID, &request.CreatedAt, &request.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetVacationRequestByID(id int64) (*domain.VacationRequest, error) {
	query := `
		SELECT company_id, employee_id, start_date, end_date, reason, status, reviewer_id, created_at, version
		FROM vacation_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	request := &domain.VacationRequest{
		ID: id,
	}

	dst := []any{&request.CompanyID, &request.EmployeeID, &request.StartDate, &request.EndDate, &request.Reason, &request.Status, &request.ReviewerID, &request.CreatedAt, &request.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return request, nil
}

func (r *Repository) GetVacationRequestsByCompany(companyID int64) ([]*domain.VacationRequest, error) {
	query := `
		SELECT id, employee_id, start_date, end_date, reason, status, reviewer_id, created_at, version
		FROM vacation_requests
		WHERE company_id = $1
		ORDER BY created_at DESC, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.VacationRequest, 0)
	for rows.Next() {
		request := &domain.VacationRequest{
			CompanyID: companyID,
		}
		dst := []any{&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate, &request.Reason, &request.Status, &request.ReviewerID, &request.CreatedAt, &request.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetApprovedVacationsByEmployeeRange 获取员工在日期范围内已批准的休假，用于网格标注。
func (r *Repository) GetApprovedVacationsByEmployeeRange(employeeID int64, start time.Time, end time.Time) ([]*domain.VacationRequest, error) {
	query := `
		SELECT id, company_id, start_date, end_date, reason, status, reviewer_id, created_at, version
		FROM vacation_requests
		WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $4
		ORDER BY start_date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, domain.VacationApproved, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.VacationRequest, 0)
	for rows.Next() {
		request := &domain.VacationRequest{
			EmployeeID: employeeID,
		}
		dst := []any{&request.ID, &request.CompanyID, &request.StartDate, &request.EndDate, &request.Reason, &request.Status, &request.ReviewerID, &request.CreatedAt, &request.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) UpdateVacationRequest(request *domain.VacationRequest) error {
	query := `
		UPDATE vacation_requests
		SET
			status = $1,
			reviewer_id = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{request.Status, request.ReviewerID, request.ID, request.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&request.CreatedAt, &request.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteVacationRequest(id int64) error {
	query := `
		DELETE FROM vacation_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
