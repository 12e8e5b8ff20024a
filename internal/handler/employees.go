package handler

import (
	"net/http"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

// GetEmployees 返回当前企业的在职员工列表，供排班网格选择员工使用。
func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
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

	h.successResponse(w, r, "获取员工列表成功", employees)
}
