package schedule

import (
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

// ShiftBox 是带有车道分配和定位信息的班次，供前端直接渲染。
type ShiftBox struct {
	Shift     *domain.WorkShift `json:"shift"`
	Lane      int               `json:"lane"`
	LaneCount int               `json:"laneCount"`
	Box       Box               `json:"box"`
}

// DayCell 表示网格中一个日历日的渲染数据。
type DayCell struct {
	Date       string     `json:"date"`
	OnVacation bool       `json:"onVacation"`
	Holiday    string     `json:"holiday,omitempty"`
	Shifts     []ShiftBox `json:"shifts"`
}

const (
	// 日视图中同一车道内相邻班次之间预留的间隙（百分比）
	laneGap = 1.0
	// 班次块的最小宽度（百分比），保证过短的班次仍然可见可点击
	laneMinWidth = 4.0
)

// BuildDayGrid 组装某员工单日的日视图渲染数据：
// 筛选当天开始的班次，分配车道，再对每条车道做按时长比例的排布。
func (tl Timeline) BuildDayGrid(date time.Time, shifts []*domain.WorkShift, vacations []*domain.VacationRequest, holidays []*domain.Holiday) DayCell {
	cell := DayCell{
		Date:       date.Format("2006-01-02"),
		OnVacation: onVacation(vacations, date),
		Holiday:    holidayName(holidays, date),
		Shifts:     []ShiftBox{},
	}

	placements, laneCount := AssignLanes(filterByDate(shifts, date))

	// 按车道分组，车道内保持开始时间升序（AssignLanes 已排好序）
	byLane := make(map[int][]Placement)
	for _, p := range placements {
		byLane[p.Lane] = append(byLane[p.Lane], p)
	}

	for lane := 0; lane < laneCount; lane++ {
		group := byLane[lane]

		visible := make([]Placement, 0, len(group))
		ivs := make([]Interval, 0, len(group))
		for _, p := range group {
			iv := ShiftInterval(p.Shift)
			if _, ok := tl.Clamp(iv); !ok {
				continue
			}
			visible = append(visible, p)
			ivs = append(ivs, iv)
		}

		boxes := tl.PackLane(ivs, laneGap, laneMinWidth)
		for i, p := range visible {
			cell.Shifts = append(cell.Shifts, ShiftBox{
				Shift:     p.Shift,
				Lane:      p.Lane,
				LaneCount: laneCount,
				Box:       boxes[i],
			})
		}
	}

	return cell
}

// BuildWeekGrid 组装某员工一周（从 weekStart 起七天）的周视图渲染数据。
// 周视图每个星期列是垂直时间轴，班次块按纯时间比例定位，
// 车道分配沿用和日视图相同的贪心策略。
func (tl Timeline) BuildWeekGrid(weekStart time.Time, shifts []*domain.WorkShift, vacations []*domain.VacationRequest, holidays []*domain.Holiday) []DayCell {
	cells := make([]DayCell, 0, 7)

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		cell := DayCell{
			Date:       date.Format("2006-01-02"),
			OnVacation: onVacation(vacations, date),
			Holiday:    holidayName(holidays, date),
			Shifts:     []ShiftBox{},
		}

		placements, laneCount := AssignLanes(filterByDate(shifts, date))
		for _, p := range placements {
			box, ok := tl.WeekBox(ShiftInterval(p.Shift))
			if !ok {
				continue
			}
			cell.Shifts = append(cell.Shifts, ShiftBox{
				Shift:     p.Shift,
				Lane:      p.Lane,
				LaneCount: laneCount,
				Box:       box,
			})
		}

		cells = append(cells, cell)
	}

	return cells
}

func filterByDate(shifts []*domain.WorkShift, date time.Time) []*domain.WorkShift {
	filtered := make([]*domain.WorkShift, 0, len(shifts))
	for _, shift := range shifts {
		if SameDate(shift.StartAt, date) {
			filtered = append(filtered, shift)
		}
	}
	return filtered
}

// onVacation 判断某天是否落在已批准的休假区间内
func onVacation(vacations []*domain.VacationRequest, date time.Time) bool {
	for _, v := range vacations {
		if v.Status != domain.VacationApproved {
			continue
		}
		if !date.Before(truncateDate(v.StartDate)) && !date.After(truncateDate(v.EndDate)) {
			return true
		}
	}
	return false
}

func holidayName(holidays []*domain.Holiday, date time.Time) string {
	for _, h := range holidays {
		if SameDate(h.Date, date) {
			return h.Name
		}
	}
	return ""
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
