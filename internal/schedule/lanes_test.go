package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func TestAssignLanes(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("没有班次时返回空结果", func(t *testing.T) {
		placements, laneCount := AssignLanes(nil)
		assert.Empty(t, placements)
		assert.Equal(t, 0, laneCount)
	})

	t.Run("单个班次分配到 0 号车道", func(t *testing.T) {
		placements, laneCount := AssignLanes([]*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
		})
		require.Len(t, placements, 1)
		assert.Equal(t, 0, placements[0].Lane)
		assert.Equal(t, 1, laneCount)
	})

	t.Run("互不重叠的班次共用 0 号车道", func(t *testing.T) {
		placements, laneCount := AssignLanes([]*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "12:00"),
			newTestShift(2, 100, date, "13:00", "17:00"),
			newTestShift(3, 100, date, "18:00", "21:00"),
		})
		require.Len(t, placements, 3)
		for _, p := range placements {
			assert.Equal(t, 0, p.Lane)
		}
		assert.Equal(t, 1, laneCount)
	})

	t.Run("首尾相接的班次共用车道", func(t *testing.T) {
		placements, laneCount := AssignLanes([]*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "12:00"),
			newTestShift(2, 100, date, "12:00", "17:00"),
		})
		require.Len(t, placements, 2)
		assert.Equal(t, 0, placements[0].Lane)
		assert.Equal(t, 0, placements[1].Lane)
		assert.Equal(t, 1, laneCount)
	})

	t.Run("两两重叠时车道数等于班次数", func(t *testing.T) {
		placements, laneCount := AssignLanes([]*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
			newTestShift(2, 100, date, "10:00", "16:00"),
			newTestShift(3, 100, date, "11:00", "15:00"),
		})
		require.Len(t, placements, 3)
		assert.Equal(t, 3, laneCount)

		lanes := map[int]bool{}
		for _, p := range placements {
			lanes[p.Lane] = true
		}
		assert.Len(t, lanes, 3)
	})

	t.Run("释放后的车道可以复用", func(t *testing.T) {
		// 前两个班次重叠占用 0 和 1 号车道，
		// 第三个班次在第一个结束后开始，应回到 0 号车道
		placements, laneCount := AssignLanes([]*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "12:00"),
			newTestShift(2, 100, date, "11:00", "18:00"),
			newTestShift(3, 100, date, "13:00", "15:00"),
		})
		require.Len(t, placements, 3)
		assert.Equal(t, 2, laneCount)

		byID := map[int64]int{}
		for _, p := range placements {
			byID[p.Shift.ID] = p.Lane
		}
		assert.Equal(t, 0, byID[1])
		assert.Equal(t, 1, byID[2])
		assert.Equal(t, 0, byID[3])
	})

	t.Run("同一车道内不存在真正重叠的班次", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
			newTestShift(2, 100, date, "09:30", "10:30"),
			newTestShift(3, 100, date, "10:30", "12:00"),
			newTestShift(4, 100, date, "11:00", "13:00"),
			newTestShift(5, 100, date, "16:00", "20:00"),
			newTestShift(6, 100, date, "18:00", "19:00"),
		}

		placements, laneCount := AssignLanes(shifts)
		require.Len(t, placements, len(shifts))
		assert.GreaterOrEqual(t, laneCount, 1)

		for i := 0; i < len(placements); i++ {
			for j := i + 1; j < len(placements); j++ {
				if placements[i].Lane != placements[j].Lane {
					continue
				}
				a := ShiftInterval(placements[i].Shift)
				b := ShiftInterval(placements[j].Shift)
				assert.False(t, a.Overlaps(b),
					"班次 %d 和 %d 在同一车道却重叠", placements[i].Shift.ID, placements[j].Shift.ID)
			}
		}
	})

	t.Run("不修改传入的切片", func(t *testing.T) {
		shifts := []*domain.WorkShift{
			newTestShift(2, 100, date, "13:00", "17:00"),
			newTestShift(1, 100, date, "09:00", "12:00"),
		}
		AssignLanes(shifts)
		assert.Equal(t, int64(2), shifts[0].ID)
		assert.Equal(t, int64(1), shifts[1].ID)
	})
}
