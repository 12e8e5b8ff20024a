package schedule

import (
	"sort"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

// Placement 表示班次在网格中被分配到的车道。
type Placement struct {
	Shift *domain.WorkShift
	Lane  int
}

// AssignLanes 为同一天内的班次分配互不冲突的车道。
//
// 按开始时间升序逐个放置，每个班次取未被与它真正重叠
// （同样的半开区间规则，首尾相接不算）的已放置班次占用的最小车道号。
// 这是贪心的区间图染色，车道数不保证最少，但保证同一车道内不存在重叠。
// 返回所有班次的车道分配以及总车道数。
func AssignLanes(shifts []*domain.WorkShift) ([]Placement, int) {
	if len(shifts) == 0 {
		return []Placement{}, 0
	}

	sorted := make([]*domain.WorkShift, len(shifts))
	copy(sorted, shifts)
	sort.Slice(sorted, func(i, j int) bool {
		si, sj := ShiftInterval(sorted[i]), ShiftInterval(sorted[j])
		if si.Start != sj.Start {
			return si.Start < sj.Start
		}
		return sorted[i].ID < sorted[j].ID
	})

	placements := make([]Placement, 0, len(sorted))
	laneCount := 0

	for _, shift := range sorted {
		iv := ShiftInterval(shift)

		// 收集与当前班次冲突的已占用车道
		occupied := make(map[int]bool)
		for _, p := range placements {
			if ShiftInterval(p.Shift).Overlaps(iv) {
				occupied[p.Lane] = true
			}
		}

		// 取最小的空闲车道
		lane := 0
		for occupied[lane] {
			lane++
		}

		placements = append(placements, Placement{Shift: shift, Lane: lane})
		if lane+1 > laneCount {
			laneCount = lane + 1
		}
	}

	return placements, laneCount
}
