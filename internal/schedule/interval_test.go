package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

// newTestShift 按 "HH:MM" 起止时间在指定日期构造一个班次，
// 结束时间早于或等于开始时间时视为跨夜。
func newTestShift(id int64, employeeID int64, date time.Time, start, end string) *domain.WorkShift {
	startMinute, err := ParseClock(start)
	if err != nil {
		panic(err)
	}
	endMinute, err := ParseClock(end)
	if err != nil {
		panic(err)
	}

	startAt := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).Add(time.Duration(startMinute) * time.Minute)
	endAt := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).Add(time.Duration(endMinute) * time.Minute)
	if endMinute <= startMinute {
		endAt = endAt.AddDate(0, 0, 1)
	}

	return &domain.WorkShift{
		ID:         id,
		EmployeeID: employeeID,
		StartAt:    startAt,
		EndAt:      endAt,
	}
}

func TestNewInterval(t *testing.T) {
	t.Run("普通班次", func(t *testing.T) {
		iv := NewInterval(9*60, 17*60)
		assert.Equal(t, 9*60, iv.Start)
		assert.Equal(t, 17*60, iv.End)
		assert.Equal(t, 8*60, iv.Duration())
	})

	t.Run("跨夜班次结束时间顺延到第二天", func(t *testing.T) {
		iv := NewInterval(22*60, 6*60)
		assert.Equal(t, 22*60, iv.Start)
		assert.Equal(t, 6*60+MinutesPerDay, iv.End)
		assert.Equal(t, 8*60, iv.Duration())
	})
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		overlaps bool
	}{
		{"部分重叠", NewInterval(9*60, 17*60), NewInterval(16*60, 20*60), true},
		{"完全包含", NewInterval(9*60, 17*60), NewInterval(10*60, 12*60), true},
		{"首尾相接不算冲突", NewInterval(9*60, 17*60), NewInterval(17*60, 20*60), false},
		{"完全分离", NewInterval(9*60, 12*60), NewInterval(13*60, 17*60), false},
		{"跨夜班次和次日凌晨班次重叠", NewInterval(22*60, 6*60), NewInterval(23*60, 23*60+30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// 重叠关系是对称的
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestParseClock(t *testing.T) {
	minute, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minute)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("0930")
	assert.Error(t, err)
}

func TestFindConflict(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("时间重叠的班次会被找到", func(t *testing.T) {
		existing := []*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
		}
		candidate := NewInterval(16*60, 20*60)

		conflict := FindConflict(existing, 100, date, candidate, 0)
		require.NotNil(t, conflict)
		assert.Equal(t, int64(1), conflict.ID)
	})

	t.Run("首尾相接的班次不算冲突", func(t *testing.T) {
		existing := []*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
		}
		candidate := NewInterval(17*60, 20*60)

		assert.Nil(t, FindConflict(existing, 100, date, candidate, 0))
	})

	t.Run("跨夜班次延伸到凌晨的部分也会被检测", func(t *testing.T) {
		existing := []*domain.WorkShift{
			newTestShift(1, 100, date, "22:00", "06:00"),
		}
		// 22:00-06:00 延伸到次日凌晨，05:00-09:00 和它存在 05:00-06:00 的重叠窗口
		assert.NotNil(t, FindConflict(existing, 100, date, NewInterval(5*60, 9*60), 0))
		// 当晚 23:00 开始的班次直接重叠
		assert.NotNil(t, FindConflict(existing, 100, date, NewInterval(23*60, 23*60+59), 0))
		// 首尾相接（06:00 开始）不算冲突
		assert.Nil(t, FindConflict(existing, 100, date, NewInterval(6*60, 9*60), 0))
	})

	t.Run("只检查同一员工的班次", func(t *testing.T) {
		existing := []*domain.WorkShift{
			newTestShift(1, 200, date, "09:00", "17:00"),
		}
		assert.Nil(t, FindConflict(existing, 100, date, NewInterval(10*60, 12*60), 0))
	})

	t.Run("只检查开始日期相同的班次", func(t *testing.T) {
		existing := []*domain.WorkShift{
			newTestShift(1, 100, date.AddDate(0, 0, -1), "09:00", "17:00"),
		}
		assert.Nil(t, FindConflict(existing, 100, date, NewInterval(10*60, 12*60), 0))
	})

	t.Run("编辑班次时排除自身", func(t *testing.T) {
		existing := []*domain.WorkShift{
			newTestShift(1, 100, date, "09:00", "17:00"),
		}
		assert.Nil(t, FindConflict(existing, 100, date, NewInterval(9*60, 17*60), 1))
	})
}
