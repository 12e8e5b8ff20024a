package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (h *Handler) GetCustomHolidays(w http.ResponseWriter, r *http.Request) {
	companyID := r.Context().Value(CompanyIDCtxKey).(int64)

	holidays, err := h.repository.GetHolidaysByCompany(companyID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取自定义节假日成功", holidays)
}

func (h *Handler) CreateCustomHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
		Date string `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(w, r, errors.New("日期无效，格式应为 YYYY-MM-DD"))
		return
	}

	holiday := &domain.Holiday{
		CompanyID: r.Context().Value(CompanyIDCtxKey).(int64),
		Name:      req.Name,
		Date:      date,
	}

	if err := h.repository.CreateHoliday(holiday); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "holidays_company_id_date_key":
				h.errorResponse(w, r, "该日期已存在自定义节假日")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建自定义节假日成功", holiday)
}

func (h *Handler) DeleteCustomHoliday(w http.ResponseWriter, r *http.Request) {
	holiday := r.Context().Value(HolidayCtx).(*domain.Holiday)

	if err := h.repository.DeleteHoliday(holiday.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除自定义节假日成功", nil)
}
