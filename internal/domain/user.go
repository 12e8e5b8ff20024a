package domain

import (
	"time"
)

type Role string

const (
	RoleOwner   Role = "企业管理员"
	RoleManager Role = "排班经理"
	RoleStaff   Role = "普通员工"
)

type User struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"companyID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
