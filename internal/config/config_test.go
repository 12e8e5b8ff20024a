package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_DSN", "postgres://localhost:5432/workforce")
	t.Setenv("INITIAL_COMPANY_OWNER_PASSWORD", "owner-password")
	t.Setenv("INITIAL_COMPANY_OWNER_EMAIL", "owner@example.com")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SEED_USER_PASSWORD", "seed-password")
	t.Setenv("EMAIL_USER_DOMAIN", "example.com")
	t.Setenv("EMAIL_SMTP_USERNAME", "noreply@example.com")
	t.Setenv("EMAIL_SMTP_PASSWORD", "smtp-password")
	t.Setenv("EMAIL_SMTP_HOST", "smtp.example.com")
	t.Setenv("RABBITMQ_DSN", "amqp://localhost:5672")
	t.Setenv("REDIS_PASSWORD", "redis-password")
}

func TestLoadConfig(t *testing.T) {
	t.Run("加载成功时使用默认值填充可选项", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "postgres://localhost:5432/workforce", cfg.Database.DSN)
		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, 6, cfg.Grid.StartHour)
		assert.Equal(t, 22, cfg.Grid.EndHour)
		assert.Equal(t, 300, cfg.Redis.PlanCacheExpiration)
	})

	t.Run("缺少必填项时返回错误", func(t *testing.T) {
		setRequiredEnv(t)
		// setRequiredEnv 里的 t.Setenv 已登记恢复，这里取消设置以模拟缺失的必填项
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("配置值非法时错误不会被吞掉", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DATABASE_QUERY_TIMEOUT", "abc")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
