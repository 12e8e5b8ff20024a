package domain

import "time"

type WorkShift struct {
	ID         int64     `json:"id"`
	CompanyID  int64     `json:"companyID"`
	EmployeeID int64     `json:"employeeID"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Title      string    `json:"title"`
	Location   string    `json:"location,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}
