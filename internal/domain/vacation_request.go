package domain

import "time"

type VacationStatus string

const (
	VacationPending  VacationStatus = "待审批"
	VacationApproved VacationStatus = "已批准"
	VacationRejected VacationStatus = "已驳回"
)

type VacationRequest struct {
	ID         int64          `json:"id"`
	CompanyID  int64          `json:"companyID"`
	EmployeeID int64          `json:"employeeID"`
	StartDate  time.Time      `json:"startDate"`
	EndDate    time.Time      `json:"endDate"`
	Reason     string         `json:"reason,omitempty"`
	Status     VacationStatus `json:"status"`
	ReviewerID *int64         `json:"reviewerID"` // 未审批时为 nil
	CreatedAt  time.Time      `json:"createdAt"`
	Version    int32          `json:"-"`
}
