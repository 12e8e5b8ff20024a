package schedule

import (
	"fmt"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

const MinutesPerDay = 1440

// Interval 表示一天内的工作时间段，单位为距离 0 点的分钟数。
// 跨夜班次的 End 会超过 1440。
type Interval struct {
	Start int
	End   int
}

// NewInterval 根据开始和结束的分钟数构造时间段。
// 当 end <= start 时视为跨夜班次，结束时间顺延到第二天。
func NewInterval(start, end int) Interval {
	if end <= start {
		end += MinutesPerDay
	}
	return Interval{Start: start, End: end}
}

// Overlaps 判断两个半开区间 [s1, e1) 和 [s2, e2) 是否相交。
// 首尾相接（e1 == s2）的班次不算冲突。
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// shifted 返回顺延一天后的时间段。
func (iv Interval) shifted() Interval {
	return Interval{Start: iv.Start + MinutesPerDay, End: iv.End + MinutesPerDay}
}

// ConflictsWith 判断同一天的两个班次在时间上是否冲突。
// 除了直接比较外，还要把任意一方顺延一天再比较一次，
// 这样跨夜班次延伸到次日凌晨的部分（如 22:00-06:00 和 05:00-09:00
// 之间 05:00-06:00 的窗口）也能被检测到。
func (iv Interval) ConflictsWith(other Interval) bool {
	return iv.Overlaps(other) ||
		iv.Overlaps(other.shifted()) ||
		iv.shifted().Overlaps(other)
}

// ParseClock 解析 "HH:MM" 格式的时间，返回距离 0 点的分钟数。
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("时间格式错误，应为 HH:MM: %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ShiftInterval 把班次的起止时间戳转换为当天的分钟区间。
func ShiftInterval(shift *domain.WorkShift) Interval {
	start := shift.StartAt.Hour()*60 + shift.StartAt.Minute()
	end := shift.EndAt.Hour()*60 + shift.EndAt.Minute()
	return NewInterval(start, end)
}

// SameDate 判断两个时间戳是否落在同一个日历日上。
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FindConflict 在已有班次中查找第一个与候选区间冲突的班次，没有冲突时返回 nil。
// 只考虑开始日期等于目标日期的班次（跨夜班次按其开始日期归属），
// excludeID 用于编辑班次时排除自身，传 0 表示不排除。
func FindConflict(existing []*domain.WorkShift, employeeID int64, date time.Time, candidate Interval, excludeID int64) *domain.WorkShift {
	for _, shift := range existing {
		if shift.EmployeeID != employeeID {
			continue
		}
		if excludeID != 0 && shift.ID == excludeID {
			continue
		}
		if !SameDate(shift.StartAt, date) {
			continue
		}
		if ShiftInterval(shift).ConflictsWith(candidate) {
			return shift
		}
	}
	return nil
}
