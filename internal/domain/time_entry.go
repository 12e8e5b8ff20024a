package domain

import "time"

type TimeEntry struct {
	ID         int64      `json:"id"`
	CompanyID  int64      `json:"companyID"`
	EmployeeID int64      `json:"employeeID"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut"` // 未下班打卡时为 nil
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	Version    int32      `json:"-"`
}
