package schedule

// Timeline 表示网格中可见的固定时间轴，例如 06:00 到 22:00。
type Timeline struct {
	StartHour int
	EndHour   int
}

// DefaultTimeline 是排班网格默认展示的时间范围。
var DefaultTimeline = Timeline{StartHour: 6, EndHour: 22}

func (tl Timeline) startMinute() int {
	return tl.StartHour * 60
}

func (tl Timeline) endMinute() int {
	return tl.EndHour * 60
}

// VisibleMinutes 返回时间轴的总可见分钟数。
func (tl Timeline) VisibleMinutes() int {
	return tl.endMinute() - tl.startMinute()
}

// Clamp 把时间段裁剪到可见时间轴内，完全不可见时 ok 为 false。
// 跨夜班次超出当天的部分会被裁掉。
func (tl Timeline) Clamp(iv Interval) (Interval, bool) {
	start := max(iv.Start, tl.startMinute())
	end := min(iv.End, tl.endMinute())
	if end <= start {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// Box 表示班次块在容器内的绝对定位，
// Offset 为起始位置百分比，Extent 为长度百分比。
// 日视图中对应 left/width，周视图中对应 top/height。
type Box struct {
	Offset float64 `json:"offset"`
	Extent float64 `json:"extent"`
}

// rawBox 按纯时间比例计算裁剪后时间段的位置和长度。
func (tl Timeline) rawBox(iv Interval) (Box, bool) {
	clamped, ok := tl.Clamp(iv)
	if !ok {
		return Box{}, false
	}
	visible := float64(tl.VisibleMinutes())
	return Box{
		Offset: float64(clamped.Start-tl.startMinute()) / visible * 100,
		Extent: float64(clamped.Duration()) / visible * 100,
	}, true
}

// DayBox 计算日视图（水平时间轴）中单个班次的 left/width 百分比。
func (tl Timeline) DayBox(iv Interval) (Box, bool) {
	return tl.rawBox(iv)
}

// WeekBox 计算周视图（每个星期列为垂直时间轴）中班次的 top/height 百分比。
func (tl Timeline) WeekBox(iv Interval) (Box, bool) {
	return tl.rawBox(iv)
}

// PackLane 为共用一条车道的多个互不重叠班次计算日视图中的位置。
//
// 每个班次的理想宽度与裁剪后的时长成正比，并保证不低于 minWidth，
// 以免过短的班次无法辨认和点击。若理想宽度之和超过预算
// （100 减去班次之间预留的 gap 总和），则所有宽度按同一个比例缩小，
// 因此无论班次数量多少，宽度加间隙之和都不会超过 100。
// 车道内只有一个班次时直接使用其纯时间比例的位置，不做缩放。
//
// 传入的时间段必须已按开始时间升序排列且完全可见（已通过 Clamp）。
func (tl Timeline) PackLane(ivs []Interval, gap, minWidth float64) []Box {
	if len(ivs) == 0 {
		return []Box{}
	}

	if len(ivs) == 1 {
		box, _ := tl.rawBox(ivs[0])
		return []Box{box}
	}

	visible := float64(tl.VisibleMinutes())

	// 理想宽度：时长占比，带最小宽度下限
	ideal := make([]float64, len(ivs))
	sum := 0.0
	for i, iv := range ivs {
		clamped, _ := tl.Clamp(iv)
		w := float64(clamped.Duration()) / visible * 100
		if w < minWidth {
			w = minWidth
		}
		ideal[i] = w
		sum += w
	}

	// 预算为扣除间隙后的可用宽度，超出时统一缩放
	budget := 100 - gap*float64(len(ivs)-1)
	scale := 1.0
	if sum > budget {
		scale = budget / sum
	}

	// 从第一个班次的时间位置开始依次排布，
	// 必要时整体左移以保证末尾不超出容器。
	first, _ := tl.rawBox(ivs[0])
	total := sum*scale + gap*float64(len(ivs)-1)
	offset := first.Offset
	if offset+total > 100 {
		offset = 100 - total
	}
	if offset < 0 {
		offset = 0
	}

	boxes := make([]Box, len(ivs))
	for i := range ivs {
		width := ideal[i] * scale
		boxes[i] = Box{Offset: offset, Extent: width}
		offset += width + gap
	}

	return boxes
}
