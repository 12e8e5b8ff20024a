package repository

import (
	"context"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (r *Repository) CreateTimeEntry(entry *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO time_entries (company_id, employee_id, clock_in, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	args := []any{entry.CompanyID, entry.EmployeeID, entry.ClockIn, entry.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.Version); err != nil {
		return err
	}

	return nil
}

// GetOpenTimeEntry 获取员工尚未下班打卡的记录。
func (r *Repository) GetOpenTimeEntry(employeeID int64) (*domain.TimeEntry, error) {
	query := `
		SELECT id, company_id, clock_in, clock_out, notes, created_at, version
		FROM time_entries
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	entry := &domain.TimeEntry{
		EmployeeID: employeeID,
	}

	dst := []any{&entry.ID, &entry.CompanyID, &entry.ClockIn, &entry.ClockOut, &entry.Notes, &entry.CreatedAt, &entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, employeeID).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

// CloseTimeEntry 写入下班打卡时间。
func (r *Repository) CloseTimeEntry(entry *domain.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET
			clock_out = $1,
			notes = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{entry.ClockOut, entry.Notes, entry.ID, entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTimeEntriesByEmployeeRange(employeeID int64, start time.Time, end time.Time) ([]*domain.TimeEntry, error) {
	query := `
		SELECT id, company_id, clock_in, clock_out, notes, created_at, version
		FROM time_entries
		WHERE employee_id = $1 AND clock_in >= $2 AND clock_in < $3
		ORDER BY clock_in, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{
			EmployeeID: employeeID,
		}
		dst := []any{&entry.ID, &entry.CompanyID, &entry.ClockIn, &entry.ClockOut, &entry.Notes, &entry.CreatedAt, &entry.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
