package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"github.com/youban-dev/workforce-manager/backend/internal/feature"
	"github.com/youban-dev/workforce-manager/backend/internal/repository"
	"github.com/youban-dev/workforce-manager/backend/internal/schedule"
)

const dateLayout = "2006-01-02"

// maxShiftDuration 限制单个班次的时长，跨夜班次最多顺延到第二天
const maxShiftDuration = 24 * time.Hour

func (h *Handler) gridTimeline() schedule.Timeline {
	return schedule.Timeline{StartHour: h.config.Grid.StartHour, EndHour: h.config.Grid.EndHour}
}

// loadEmployee 校验员工存在、属于当前企业且在职。
func (h *Handler) loadEmployee(r *http.Request, employeeID int64) (*domain.User, error) {
	employee, err := h.repository.GetUserByID(employeeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, errors.New("员工不存在")
		default:
			return nil, err
		}
	}

	if employee.CompanyID != r.Context().Value(CompanyIDCtxKey).(int64) {
		return nil, errors.New("员工不存在")
	}
	if !employee.IsActive {
		return nil, errors.New("员工已离职，无法为其排班")
	}

	return employee, nil
}

func (h *Handler) GetCompanyWorkShifts(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(dateLayout, r.URL.Query().Get("start"))
	if err != nil {
		h.errorResponse(w, r, "起始日期无效，格式应为 YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, r.URL.Query().Get("end"))
	if err != nil {
		h.errorResponse(w, r, "结束日期无效，格式应为 YYYY-MM-DD")
		return
	}

	companyID := r.Context().Value(CompanyIDCtxKey).(int64)

	// 结束日期按闭区间理解，查询时加一天
	shifts, err := h.repository.GetWorkShiftsByCompanyRange(companyID, start, end.AddDate(0, 0, 1))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次列表成功", shifts)
}

func (h *Handler) CreateWorkShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int64     `json:"employeeID" validate:"required"`
		StartAt    time.Time `json:"startAt" validate:"required"`
		EndAt      time.Time `json:"endAt" validate:"required"`
		Title      string    `json:"title" validate:"required"`
		Location   string    `json:"location"`
		Notes      string    `json:"notes"`
		Color      string    `json:"color" validate:"required,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.EndAt.After(req.StartAt) {
		h.badRequest(w, r, errors.New("结束时间必须晚于开始时间"))
		return
	}
	if req.EndAt.Sub(req.StartAt) > maxShiftDuration {
		h.badRequest(w, r, errors.New("班次时长不能超过 24 小时"))
		return
	}

	employee, err := h.loadEmployee(r, req.EmployeeID)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	shift := &domain.WorkShift{
		CompanyID:  employee.CompanyID,
		EmployeeID: employee.ID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Title:      req.Title,
		Location:   req.Location,
		Notes:      req.Notes,
		Color:      req.Color,
	}

	if err := h.repository.CreateWorkShift(shift); err != nil {
		var conflictErr *repository.ShiftConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.errorResponse(w, r, conflictErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyShiftAssigned(r, employee, shift)

	h.successResponse(w, r, "创建班次成功", shift)
}

func (h *Handler) UpdateWorkShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(WorkShiftCtx).(*domain.WorkShift)

	var req struct {
		StartAt  *time.Time `json:"startAt"`
		EndAt    *time.Time `json:"endAt"`
		Title    *string    `json:"title"`
		Location *string    `json:"location"`
		Notes    *string    `json:"notes"`
		Color    *string    `json:"color" validate:"omitempty,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.StartAt != nil {
		shift.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		shift.EndAt = *req.EndAt
	}
	if req.Title != nil {
		shift.Title = *req.Title
	}
	if req.Location != nil {
		shift.Location = *req.Location
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}
	if req.Color != nil {
		shift.Color = *req.Color
	}

	if !shift.EndAt.After(shift.StartAt) {
		h.badRequest(w, r, errors.New("结束时间必须晚于开始时间"))
		return
	}
	if shift.EndAt.Sub(shift.StartAt) > maxShiftDuration {
		h.badRequest(w, r, errors.New("班次时长不能超过 24 小时"))
		return
	}

	if err := h.repository.UpdateWorkShift(shift); err != nil {
		var conflictErr *repository.ShiftConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.errorResponse(w, r, conflictErr.Error())
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新班次成功", shift)
}

func (h *Handler) DeleteWorkShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(WorkShiftCtx).(*domain.WorkShift)

	if err := h.repository.DeleteWorkShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除班次成功", nil)
}

// BatchItemResult 记录批量创建中单个目标日期的结果。
type BatchItemResult struct {
	Date    string `json:"date"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// aggregateBatchResults 把逐日结果汇总为整体结论。
// 部分失败时已成功的班次保持不变，只报告失败的日期。
func aggregateBatchResults(results []BatchItemResult) (string, bool) {
	succeeded := 0
	for _, result := range results {
		if result.Success {
			succeeded++
		}
	}

	switch {
	case succeeded == len(results):
		return "全部班次创建成功", true
	case succeeded == 0:
		return "全部班次创建失败", false
	default:
		return fmt.Sprintf("部分班次创建成功（成功 %d 个，失败 %d 个）", succeeded, len(results)-succeeded), false
	}
}

func (h *Handler) BatchCreateWorkShifts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int64    `json:"employeeID" validate:"required"`
		Dates      []string `json:"dates" validate:"required,min=1,dive,required"`
		StartTime  string   `json:"startTime" validate:"required"`
		EndTime    string   `json:"endTime" validate:"required"`
		Title      string   `json:"title" validate:"required"`
		Location   string   `json:"location"`
		Notes      string   `json:"notes"`
		Color      string   `json:"color" validate:"required,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startMinute, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	endMinute, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.loadEmployee(r, req.EmployeeID)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	// 逐日独立创建，某一天失败不影响其他天已创建的班次
	results := make([]BatchItemResult, 0, len(req.Dates))
	for _, dateString := range req.Dates {
		date, err := time.Parse(dateLayout, dateString)
		if err != nil {
			results = append(results, BatchItemResult{Date: dateString, Success: false, Message: "日期无效，格式应为 YYYY-MM-DD"})
			continue
		}

		startAt := date.Add(time.Duration(startMinute) * time.Minute)
		endAt := date.Add(time.Duration(endMinute) * time.Minute)
		if endMinute <= startMinute {
			// 结束时间不晚于开始时间，视为跨夜班次
			endAt = endAt.AddDate(0, 0, 1)
		}

		shift := &domain.WorkShift{
			CompanyID:  employee.CompanyID,
			EmployeeID: employee.ID,
			StartAt:    startAt,
			EndAt:      endAt,
			Title:      req.Title,
			Location:   req.Location,
			Notes:      req.Notes,
			Color:      req.Color,
		}

		if err := h.repository.CreateWorkShift(shift); err != nil {
			var conflictErr *repository.ShiftConflictError
			switch {
			case errors.As(err, &conflictErr):
				results = append(results, BatchItemResult{Date: dateString, Success: false, Message: conflictErr.Error()})
			default:
				h.logInternalServerError(r, err)
				results = append(results, BatchItemResult{Date: dateString, Success: false, Message: "服务器内部错误"})
			}
			continue
		}

		h.notifyShiftAssigned(r, employee, shift)
		results = append(results, BatchItemResult{Date: dateString, Success: true})
	}

	message, allSucceeded := aggregateBatchResults(results)
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: allSucceeded,
		Message: message,
		Data:    results,
	})
}

func (h *Handler) GetScheduleGrid(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employeeID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "员工ID无效")
		return
	}

	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		h.errorResponse(w, r, "日期无效，格式应为 YYYY-MM-DD")
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = "day"
	}

	employee, err := h.repository.GetUserByID(employeeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "员工不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if employee.CompanyID != r.Context().Value(CompanyIDCtxKey).(int64) {
		h.errorResponse(w, r, "员工不存在")
		return
	}

	timeline := h.gridTimeline()

	switch view {
	case "day":
		shifts, err := h.repository.GetWorkShiftsByEmployeeRange(employee.ID, date, date.AddDate(0, 0, 1))
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		vacations, err := h.repository.GetApprovedVacationsByEmployeeRange(employee.ID, date, date)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		holidays, err := h.repository.GetHolidaysByCompany(employee.CompanyID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		cell := timeline.BuildDayGrid(date, shifts, vacations, holidays)
		h.successResponse(w, r, "获取日视图网格成功", cell)
	case "week":
		// 取该日期所在周的周一作为一周的起点
		weekday := (int(date.Weekday()) + 6) % 7
		weekStart := date.AddDate(0, 0, -weekday)
		weekEnd := weekStart.AddDate(0, 0, 7)

		shifts, err := h.repository.GetWorkShiftsByEmployeeRange(employee.ID, weekStart, weekEnd)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		vacations, err := h.repository.GetApprovedVacationsByEmployeeRange(employee.ID, weekStart, weekEnd.AddDate(0, 0, -1))
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		holidays, err := h.repository.GetHolidaysByCompany(employee.CompanyID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		cells := timeline.BuildWeekGrid(weekStart, shifts, vacations, holidays)
		h.successResponse(w, r, "获取周视图网格成功", cells)
	default:
		h.errorResponse(w, r, "无效的视图类型，应为 day 或 week")
	}
}

// notifyShiftAssigned 向员工发送班次指派通知邮件，
// 仅企业套餐开放通知能力时发送，发送失败不影响排班结果。
func (h *Handler) notifyShiftAssigned(r *http.Request, employee *domain.User, shift *domain.WorkShift) {
	plan := r.Context().Value(PlanCtxKey).(domain.Plan)
	if !feature.HasAccess(plan, feature.Notifications) {
		return
	}

	mailMessage := domain.MailMessage{
		Type: "shift_assigned",
		To:   employee.Email,
		Data: domain.ShiftAssignedMailData{
			FullName: employee.FullName,
			Title:    shift.Title,
			StartAt:  shift.StartAt.Format("2006-01-02 15:04"),
			EndAt:    shift.EndAt.Format("2006-01-02 15:04"),
			Location: shift.Location,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("无法序列化班次通知邮件", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("无法发送班次通知邮件", "error", err)
	}
}
