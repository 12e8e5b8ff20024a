package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (h *Handler) CreateVacationRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		StartDate string `json:"startDate" validate:"required"`
		EndDate   string `json:"endDate" validate:"required"`
		Reason    string `json:"reason"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.badRequest(w, r, errors.New("起始日期无效，格式应为 YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		h.badRequest(w, r, errors.New("结束日期无效，格式应为 YYYY-MM-DD"))
		return
	}
	if endDate.Before(startDate) {
		h.badRequest(w, r, errors.New("结束日期不能早于起始日期"))
		return
	}

	request := &domain.VacationRequest{
		CompanyID:  myInfo.CompanyID,
		EmployeeID: myInfo.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     domain.VacationPending,
	}

	if err := h.repository.CreateVacationRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "提交休假申请成功", request)
}

func (h *Handler) GetCompanyVacationRequests(w http.ResponseWriter, r *http.Request) {
	companyID := r.Context().Value(CompanyIDCtxKey).(int64)

	requests, err := h.repository.GetVacationRequestsByCompany(companyID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取休假申请列表成功", requests)
}

func (h *Handler) ReviewVacationRequest(w http.ResponseWriter, r *http.Request) {
	request := r.Context().Value(VacationRequestCtx).(*domain.VacationRequest)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Status string `json:"status" validate:"required,oneof=已批准 已驳回"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if request.Status != domain.VacationPending {
		h.errorResponse(w, r, "该休假申请已审批过")
		return
	}

	request.Status = domain.VacationStatus(req.Status)
	request.ReviewerID = &myInfo.ID

	if err := h.repository.UpdateVacationRequest(request); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "审批休假申请成功", request)
}
