package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func TestWeekWorkbook(t *testing.T) {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	employees := []*domain.User{
		{ID: 1, FullName: "王伟"},
		{ID: 2, FullName: "李芳"},
	}
	shifts := []*domain.WorkShift{
		{
			EmployeeID: 1,
			StartAt:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
			Title:      "早班",
		},
		{
			EmployeeID: 1,
			StartAt:    time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC),
			Title:      "晚班",
		},
		{
			EmployeeID: 2,
			StartAt:    time.Date(2026, 3, 4, 13, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC),
			Title:      "中班",
		},
	}

	f, err := WeekWorkbook(weekStart, employees, shifts)
	require.NoError(t, err)
	defer f.Close()

	// 表头
	value, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "员工", value)

	value, err = f.GetCellValue(sheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", value)

	value, err = f.GetCellValue(sheetName, "H1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-08", value)

	// 员工列
	value, err = f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "王伟", value)

	// 同一天的多个班次换行拼接
	value, err = f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "09:00-17:00 早班\n18:00-21:00 晚班", value)

	// 第二个员工周三的班次
	value, err = f.GetCellValue(sheetName, "D3")
	require.NoError(t, err)
	assert.Equal(t, "13:00-17:00 中班", value)

	// 没有班次的单元格保持为空
	value, err = f.GetCellValue(sheetName, "C2")
	require.NoError(t, err)
	assert.Empty(t, value)
}
