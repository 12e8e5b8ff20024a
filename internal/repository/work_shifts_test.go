package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/config"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 5

	return NewRepository(cfg, db), mock
}

var lockedShiftColumns = []string{"id", "company_id", "start_at", "end_at", "title", "location", "notes", "color", "created_at", "version"}

func TestCreateWorkShiftLocksEmployeeRow(t *testing.T) {
	repo, mock := newTestRepository(t)

	startAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	shift := &domain.WorkShift{
		CompanyID:  1,
		EmployeeID: 7,
		StartAt:    startAt,
		EndAt:      startAt.Add(8 * time.Hour),
		Title:      "早班",
		Color:      "#4F8EF7",
	}

	// sqlmock 默认按顺序校验：冲突检查之前必须先拿到员工行锁，
	// 否则两个事务可以同时向空白日期插入重叠班次
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery("FROM work_shifts").
		WithArgs(int64(7), startAt).
		WillReturnRows(sqlmock.NewRows(lockedShiftColumns))
	mock.ExpectQuery("INSERT INTO work_shifts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "version"}).AddRow(int64(1), time.Now(), int32(1)))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateWorkShift(shift))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, int64(1), shift.ID)
	assert.Equal(t, int32(1), shift.Version)
}

func TestCreateWorkShiftConflictRollsBack(t *testing.T) {
	repo, mock := newTestRepository(t)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	shift := &domain.WorkShift{
		CompanyID:  1,
		EmployeeID: 7,
		StartAt:    date.Add(9 * time.Hour),
		EndAt:      date.Add(17 * time.Hour),
		Title:      "早班",
		Color:      "#4F8EF7",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	// 当天已有 16:00-20:00 的班次，和候选的 09:00-17:00 重叠
	mock.ExpectQuery("FROM work_shifts").
		WithArgs(int64(7), shift.StartAt).
		WillReturnRows(sqlmock.NewRows(lockedShiftColumns).
			AddRow(int64(3), int64(1), date.Add(16*time.Hour), date.Add(20*time.Hour), "晚班", "", "", "#FF9500", time.Now(), int32(1)))
	mock.ExpectRollback()

	err := repo.CreateWorkShift(shift)

	var conflictErr *ShiftConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "2026-03-02", conflictErr.Date)
	// 不应该有 INSERT 被执行
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWorkShiftLocksEmployeeRow(t *testing.T) {
	repo, mock := newTestRepository(t)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	shift := &domain.WorkShift{
		ID:         5,
		CompanyID:  1,
		EmployeeID: 7,
		StartAt:    date.Add(9 * time.Hour),
		EndAt:      date.Add(12 * time.Hour),
		Title:      "早班",
		Color:      "#4F8EF7",
		Version:    1,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	// 冲突检查会扫到班次自身，编辑时应被排除
	mock.ExpectQuery("FROM work_shifts").
		WithArgs(int64(7), shift.StartAt).
		WillReturnRows(sqlmock.NewRows(lockedShiftColumns).
			AddRow(int64(5), int64(1), shift.StartAt, shift.EndAt, "早班", "", "", "#4F8EF7", time.Now(), int32(1)))
	mock.ExpectQuery("UPDATE work_shifts").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "version"}).AddRow(time.Now(), int32(2)))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateWorkShift(shift))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, int32(2), shift.Version)
}
