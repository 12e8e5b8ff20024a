package domain

import "time"

type Plan string

const (
	PlanBasic        Plan = "基础版"
	PlanProfessional Plan = "专业版"
	PlanEnterprise   Plan = "企业版"
)

type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Plan      Plan      `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
