package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func TestBuildDayGrid(t *testing.T) {
	tl := Timeline{StartHour: 6, EndHour: 22}
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("只渲染当天开始的班次", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
			newTestShift(2, 100, date.AddDate(0, 0, 1), "09:00", "17:00"),
		}

		cell := tl.BuildDayGrid(date, shifts, nil, nil)
		assert.Equal(t, "2026-03-02", cell.Date)
		require.Len(t, cell.Shifts, 1)
		assert.Equal(t, int64(1), cell.Shifts[0].Shift.ID)
	})

	t.Run("重叠的班次分配到不同车道", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
			newTestShift(2, 100, date, "10:00", "12:00"),
		}

		cell := tl.BuildDayGrid(date, shifts, nil, nil)
		require.Len(t, cell.Shifts, 2)
		assert.NotEqual(t, cell.Shifts[0].Lane, cell.Shifts[1].Lane)
		for _, sb := range cell.Shifts {
			assert.Equal(t, 2, sb.LaneCount)
		}
	})

	t.Run("完全不可见的班次被丢弃", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(1, 100, date, "23:00", "23:30"),
		}

		cell := tl.BuildDayGrid(date, shifts, nil, nil)
		assert.Empty(t, cell.Shifts)
	})

	t.Run("已批准的休假标记在单元格上", func(t *testing.T) {
		vacations := []*domain.VacationRequest{
			{
				Status:    domain.VacationApproved,
				StartDate: date.AddDate(0, 0, -1),
				EndDate:   date.AddDate(0, 0, 1),
			},
		}

		cell := tl.BuildDayGrid(date, nil, vacations, nil)
		assert.True(t, cell.OnVacation)
	})

	t.Run("待审批的休假不影响单元格", func(t *testing.T) {
		vacations := []*domain.VacationRequest{
			{
				Status:    domain.VacationPending,
				StartDate: date,
				EndDate:   date,
			},
		}

		cell := tl.BuildDayGrid(date, nil, vacations, nil)
		assert.False(t, cell.OnVacation)
	})

	t.Run("节假日名称标记在单元格上", func(t *testing.T) {
		holidays := []*domain.Holiday{
			{Name: "门店周年庆", Date: date},
		}

		cell := tl.BuildDayGrid(date, nil, nil, holidays)
		assert.Equal(t, "门店周年庆", cell.Holiday)
	})
}

func TestBuildWeekGrid(t *testing.T) {
	tl := Timeline{StartHour: 6, EndHour: 22}
	// 2026-03-02 是周一
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("返回从周一开始的七天", func(t *testing.T) {
		cells := tl.BuildWeekGrid(weekStart, nil, nil, nil)
		require.Len(t, cells, 7)
		assert.Equal(t, "2026-03-02", cells[0].Date)
		assert.Equal(t, "2026-03-08", cells[6].Date)
	})

	t.Run("班次归属到其开始日期所在的列", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(1, 100, weekStart, "09:00", "17:00"),
			newTestShift(2, 100, weekStart.AddDate(0, 0, 2), "20:00", "06:00"),
		}

		cells := tl.BuildWeekGrid(weekStart, shifts, nil, nil)
		require.Len(t, cells, 7)
		require.Len(t, cells[0].Shifts, 1)
		assert.Equal(t, int64(1), cells[0].Shifts[0].Shift.ID)
		// 跨夜班次按开始日期归属到周三，且只渲染当天可见部分
		require.Len(t, cells[2].Shifts, 1)
		assert.Equal(t, int64(2), cells[2].Shifts[0].Shift.ID)
		assert.Empty(t, cells[3].Shifts)
	})

	t.Run("周视图中班次块按纯时间比例定位", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(1, 100, weekStart, "10:00", "14:00"),
		}

		cells := tl.BuildWeekGrid(weekStart, shifts, nil, nil)
		require.Len(t, cells[0].Shifts, 1)
		box := cells[0].Shifts[0].Box
		assert.InDelta(t, 25.0, box.Offset, 1e-9)
		assert.InDelta(t, 25.0, box.Extent, 1e-9)
	})
}
