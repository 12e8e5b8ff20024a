package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

// renderMailTemplate 模拟 worker 的处理流程：邮件数据经过消息队列的
// JSON 序列化和反序列化后变成 map，再喂给对应的邮件模板。
func renderMailTemplate(t *testing.T, filename string, data any) string {
	t.Helper()

	raw, err := json.Marshal(domain.MailMessage{Type: "test", To: "test@example.com", Data: data})
	require.NoError(t, err)

	message := domain.MailMessage{}
	require.NoError(t, json.Unmarshal(raw, &message))

	tmpl, err := template.ParseFiles("../../templates/" + filename)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, message.Data))

	return buf.String()
}

func TestMailTemplates(t *testing.T) {
	t.Run("账户信息邮件", func(t *testing.T) {
		body := renderMailTemplate(t, "new_account_email.html", domain.CreateUserMailData{
			FullName: "王伟",
			Username: "wangwei1",
			Password: "secret123",
		})
		assert.Contains(t, body, "王伟")
		assert.Contains(t, body, "wangwei1")
		assert.Contains(t, body, "secret123")
	})

	t.Run("重置密码邮件", func(t *testing.T) {
		body := renderMailTemplate(t, "reset_password_otp_email.html", domain.ResetPasswordMailData{
			FullName:   "李芳",
			OTP:        "048213",
			Expiration: 15,
		})
		assert.Contains(t, body, "李芳")
		assert.Contains(t, body, "048213")
		assert.Contains(t, body, "15 分钟内有效")
	})

	t.Run("班次通知邮件", func(t *testing.T) {
		body := renderMailTemplate(t, "shift_assigned_email.html", domain.ShiftAssignedMailData{
			FullName: "张敏",
			Title:    "早班",
			StartAt:  "2026-03-02 09:00",
			EndAt:    "2026-03-02 17:00",
			Location: "一号门店",
		})
		assert.Contains(t, body, "张敏")
		assert.Contains(t, body, "早班")
		assert.Contains(t, body, "2026-03-02 09:00")
		assert.Contains(t, body, "一号门店")
	})

	t.Run("班次通知邮件地点为空时不渲染地点行", func(t *testing.T) {
		body := renderMailTemplate(t, "shift_assigned_email.html", domain.ShiftAssignedMailData{
			FullName: "张敏",
			Title:    "早班",
			StartAt:  "2026-03-02 09:00",
			EndAt:    "2026-03-02 17:00",
		})
		assert.NotContains(t, body, "地点")
	})
}
