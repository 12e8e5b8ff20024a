package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

const sheetName = "班表"

// WeekWorkbook 把一周的班次生成为 Excel 工作簿，
// 第一列为员工，后面七列为从 weekStart 开始的七天，
// 单元格内容是该员工当天的班次（多个班次用换行分隔）。
func WeekWorkbook(weekStart time.Time, employees []*domain.User, shifts []*domain.WorkShift) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	// 表头
	if err := f.SetCellValue(sheetName, "A1", "员工"); err != nil {
		return nil, err
	}
	for i := 0; i < 7; i++ {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, weekStart.AddDate(0, 0, i).Format("2006-01-02")); err != nil {
			return nil, err
		}
	}

	// 按员工和日期归类班次
	byEmployeeDay := make(map[int64]map[string][]*domain.WorkShift)
	for _, shift := range shifts {
		day := shift.StartAt.Format("2006-01-02")
		if _, exists := byEmployeeDay[shift.EmployeeID]; !exists {
			byEmployeeDay[shift.EmployeeID] = make(map[string][]*domain.WorkShift)
		}
		byEmployeeDay[shift.EmployeeID][day] = append(byEmployeeDay[shift.EmployeeID][day], shift)
	}

	for row, employee := range employees {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, employee.FullName); err != nil {
			return nil, err
		}

		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i).Format("2006-01-02")
			dayShifts := byEmployeeDay[employee.ID][day]
			if len(dayShifts) == 0 {
				continue
			}

			lines := make([]string, 0, len(dayShifts))
			for _, shift := range dayShifts {
				lines = append(lines, fmt.Sprintf("%s-%s %s", shift.StartAt.Format("15:04"), shift.EndAt.Format("15:04"), shift.Title))
			}

			cell, err := excelize.CoordinatesToCellName(i+2, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, strings.Join(lines, "\n")); err != nil {
				return nil, err
			}
		}
	}

	// 日期列加宽，不然班次文本会被截断
	if err := f.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "H", 22); err != nil {
		return nil, err
	}

	return f, nil
}
