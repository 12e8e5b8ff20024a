package handler

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Notes string `json:"notes"`
	}

	// 打卡请求允许空请求体
	if err := h.readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(w, r, err)
		return
	}

	// 存在未下班打卡的记录时不允许重复上班打卡
	if _, err := h.repository.GetOpenTimeEntry(myInfo.ID); err == nil {
		h.errorResponse(w, r, "您有尚未下班打卡的记录，请先下班打卡")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	entry := &domain.TimeEntry{
		CompanyID:  myInfo.CompanyID,
		EmployeeID: myInfo.ID,
		ClockIn:    time.Now(),
		Notes:      req.Notes,
	}

	if err := h.repository.CreateTimeEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "上班打卡成功", entry)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	entry, err := h.repository.GetOpenTimeEntry(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "没有待下班打卡的记录")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	now := time.Now()
	entry.ClockOut = &now

	if err := h.repository.CloseTimeEntry(entry); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "下班打卡成功", entry)
}

func (h *Handler) GetMyTimeEntries(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

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

	entries, err := h.repository.GetTimeEntriesByEmployeeRange(myInfo.ID, start, end.AddDate(0, 0, 1))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取打卡记录成功", entries)
}
