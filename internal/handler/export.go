package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"github.com/youban-dev/workforce-manager/backend/internal/export"
)

// ExportWeekSchedule 导出某一周的企业班表为 Excel 文件。
func (h *Handler) ExportWeekSchedule(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		h.errorResponse(w, r, "日期无效，格式应为 YYYY-MM-DD")
		return
	}

	weekday := (int(date.Weekday()) + 6) % 7
	weekStart := date.AddDate(0, 0, -weekday)

	companyID := r.Context().Value(CompanyIDCtxKey).(int64)

	users, err := h.repository.GetUsersByCompany(companyID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employees := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user.IsActive {
			employees = append(employees, user)
		}
	}

	shifts, err := h.repository.GetWorkShiftsByCompanyRange(companyID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	workbook, err := export.WeekWorkbook(weekStart, employees, shifts)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := fmt.Sprintf("schedule_%s.xlsx", weekStart.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := workbook.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
