package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"github.com/youban-dev/workforce-manager/backend/internal/schedule"
)

// ShiftConflictError 表示新班次和该员工当天已有班次的时间重叠。
type ShiftConflictError struct {
	Date string
}

func (e *ShiftConflictError) Error() string {
	return fmt.Sprintf("%s 已存在时间重叠的班次", e.Date)
}

// lockEmployee 在事务内锁定员工行，使同一员工的排班事务串行执行。
// 只锁已有班次行挡不住两个事务同时向空白日期插入重叠班次。
func (r *Repository) lockEmployee(ctx context.Context, tx *sql.Tx, employeeID int64) error {
	query := `
		SELECT id FROM users WHERE id = $1 FOR UPDATE
	`

	var id int64
	return tx.QueryRowContext(ctx, query, employeeID).Scan(&id)
}

// lockShiftsForDate 在事务内锁定某员工在某日开始的全部班次，
// 保证并发创建时冲突检查的结果在提交前不会失效。
func (r *Repository) lockShiftsForDate(ctx context.Context, tx *sql.Tx, employeeID int64, date time.Time) ([]*domain.WorkShift, error) {
	query := `
		SELECT id, company_id, start_at, end_at, title, location, notes, color, created_at, version
		FROM work_shifts
		WHERE employee_id = $1 AND start_at::date = $2::date
		FOR UPDATE
	`

	rows, err := tx.QueryContext(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.WorkShift, 0)
	for rows.Next() {
		shift := &domain.WorkShift{
			EmployeeID: employeeID,
		}
		dst := []any{&shift.ID, &shift.CompanyID, &shift.StartAt, &shift.EndAt, &shift.Title, &shift.Location, &shift.Notes, &shift.Color, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// CreateWorkShift 在检查时间冲突后插入班次。
// 冲突检查和插入在同一个事务中完成，存在冲突时返回 *ShiftConflictError。
func (r *Repository) CreateWorkShift(shift *domain.WorkShift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.lockEmployee(ctx, tx, shift.EmployeeID); err != nil {
		return err
	}

	existing, err := r.lockShiftsForDate(ctx, tx, shift.EmployeeID, shift.StartAt)
	if err != nil {
		return err
	}

	candidate := schedule.ShiftInterval(shift)
	if conflict := schedule.FindConflict(existing, shift.EmployeeID, shift.StartAt, candidate, 0); conflict != nil {
		return &ShiftConflictError{Date: shift.StartAt.Format("2006-01-02")}
	}

	query := `
		INSERT INTO work_shifts (company_id, employee_id, start_at, end_at, title, location, notes, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	args := []any{shift.CompanyID, shift.EmployeeID, shift.StartAt, shift.EndAt, shift.Title, shift.Location, shift.Notes, shift.Color}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// UpdateWorkShift 更新班次，修改时间时会重新做冲突检查（排除自身）。
func (r *Repository) UpdateWorkShift(shift *domain.WorkShift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.lockEmployee(ctx, tx, shift.EmployeeID); err != nil {
		return err
	}

	existing, err := r.lockShiftsForDate(ctx, tx, shift.EmployeeID, shift.StartAt)
	if err != nil {
		return err
	}

	candidate := schedule.ShiftInterval(shift)
	if conflict := schedule.FindConflict(existing, shift.EmployeeID, shift.StartAt, candidate, shift.ID); conflict != nil {
		return &ShiftConflictError{Date: shift.StartAt.Format("2006-01-02")}
	}

	query := `
		UPDATE work_shifts
		SET
			start_at = $1,
			end_at = $2,
			title = $3,
			location = $4,
			notes = $5,
			color = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING created_at, version
	`

	args := []any{shift.StartAt, shift.EndAt, shift.Title, shift.Location, shift.Notes, shift.Color, shift.ID, shift.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetWorkShiftByID(id int64) (*domain.WorkShift, error) {
	query := `
		SELECT company_id, employee_id, start_at, end_at, title, location, notes, color, created_at, version
		FROM work_shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.WorkShift{
		ID: id,
	}

	dst := []any{&shift.CompanyID, &shift.EmployeeID, &shift.StartAt, &shift.EndAt, &shift.Title, &shift.Location, &shift.Notes, &shift.Color, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) GetWorkShiftsByCompanyRange(companyID int64, start time.Time, end time.Time) ([]*domain.WorkShift, error) {
	query := `
		SELECT id, employee_id, start_at, end_at, title, location, notes, color, created_at, version
		FROM work_shifts
		WHERE company_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.WorkShift, 0)
	for rows.Next() {
		shift := &domain.WorkShift{
			CompanyID: companyID,
		}
		dst := []any{&shift.ID, &shift.EmployeeID, &shift.StartAt, &shift.EndAt, &shift.Title, &shift.Location, &shift.Notes, &shift.Color, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetWorkShiftsByEmployeeRange(employeeID int64, start time.Time, end time.Time) ([]*domain.WorkShift, error) {
	query := `
		SELECT id, company_id, start_at, end_at, title, location, notes, color, created_at, version
		FROM work_shifts
		WHERE employee_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.WorkShift, 0)
	for rows.Next() {
		shift := &domain.WorkShift{
			EmployeeID: employeeID,
		}
		dst := []any{&shift.ID, &shift.CompanyID, &shift.StartAt, &shift.EndAt, &shift.Title, &shift.Location, &shift.Notes, &shift.Color, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) DeleteWorkShift(id int64) error {
	query := `
		DELETE FROM work_shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
