package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func TestUpdateCompany(t *testing.T) {
	t.Run("更新成功后版本号递增", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		company := &domain.Company{
			ID:      1,
			Name:    "优班演示门店",
			Plan:    domain.PlanBasic,
			Version: 1,
		}
		company.Plan = domain.PlanProfessional

		mock.ExpectQuery("UPDATE companies").
			WithArgs("优班演示门店", domain.PlanProfessional, int64(1), int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "version"}).AddRow(time.Now(), int32(2)))

		require.NoError(t, repo.UpdateCompany(company))
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, int32(2), company.Version)
	})

	t.Run("版本号过期时返回 ErrNoRows", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		company := &domain.Company{
			ID:      1,
			Name:    "优班演示门店",
			Plan:    domain.PlanEnterprise,
			Version: 1,
		}

		// 版本号不匹配时 UPDATE 不命中任何行
		mock.ExpectQuery("UPDATE companies").
			WillReturnError(sql.ErrNoRows)

		err := repo.UpdateCompany(company)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
