package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser(42, "test-password", "example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.CompanyID)
	assert.NotEmpty(t, user.Username)
	assert.NotEmpty(t, user.FullName)
	assert.Equal(t, user.Username+"@example.com", user.Email)
	assert.Contains(t, []domain.Role{domain.RoleStaff, domain.RoleManager}, user.Role)

	// 密码哈希应能通过校验
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test-password")))
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	assert.Len(t, otp, 6)
}

func TestGenerateRandomWorkShift(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	shift := GenerateRandomWorkShift(42, 7, date)

	assert.Equal(t, int64(42), shift.CompanyID)
	assert.Equal(t, int64(7), shift.EmployeeID)
	assert.True(t, shift.EndAt.After(shift.StartAt))
	assert.Equal(t, date.Day(), shift.StartAt.Day())
	assert.NotEmpty(t, shift.Title)
	assert.NotEmpty(t, shift.Color)
}
