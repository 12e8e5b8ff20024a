package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func (h *Handler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	companyID := r.Context().Value(CompanyIDCtxKey).(int64)

	company, err := h.repository.GetCompanyByID(companyID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "企业不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取企业信息成功", company)
}

func (h *Handler) UpdateCompanyPlan(w http.ResponseWriter, r *http.Request) {
	companyID := r.Context().Value(CompanyIDCtxKey).(int64)

	var req struct {
		Plan string `json:"plan" validate:"required,oneof=基础版 专业版 企业版"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	company, err := h.repository.GetCompanyByID(companyID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "企业不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	company.Plan = domain.Plan(req.Plan)

	if err := h.repository.UpdateCompany(company); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 让套餐缓存立即失效，否则旧套餐会在缓存过期前继续生效
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, fmt.Sprintf("plan_company_%d", companyID)).Err(); err != nil {
		slog.Warn("无法清除企业套餐缓存", "companyID", companyID, "error", err)
	}

	h.successResponse(w, r, "更新企业套餐成功", company)
}
