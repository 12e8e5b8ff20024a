package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

func TestHasAccess(t *testing.T) {
	t.Run("基础版只有排班和休假", func(t *testing.T) {
		assert.True(t, HasAccess(domain.PlanBasic, Scheduling))
		assert.True(t, HasAccess(domain.PlanBasic, Vacations))
		assert.False(t, HasAccess(domain.PlanBasic, TimeTracking))
		assert.False(t, HasAccess(domain.PlanBasic, Export))
		assert.False(t, HasAccess(domain.PlanBasic, Notifications))
	})

	t.Run("专业版增加打卡和导出", func(t *testing.T) {
		assert.True(t, HasAccess(domain.PlanProfessional, TimeTracking))
		assert.True(t, HasAccess(domain.PlanProfessional, Export))
		assert.False(t, HasAccess(domain.PlanProfessional, Notifications))
	})

	t.Run("企业版拥有全部能力", func(t *testing.T) {
		for _, f := range []Feature{Scheduling, TimeTracking, Vacations, Export, Notifications} {
			assert.True(t, HasAccess(domain.PlanEnterprise, f))
		}
	})

	t.Run("未知套餐没有任何权限", func(t *testing.T) {
		assert.False(t, HasAccess(domain.Plan("不存在的套餐"), Scheduling))
	})
}

func TestFeatures(t *testing.T) {
	fs := Features(domain.PlanBasic)
	assert.ElementsMatch(t, []Feature{Scheduling, Vacations}, fs)

	// 返回的是副本，修改它不影响内部状态
	fs[0] = Notifications
	assert.True(t, HasAccess(domain.PlanBasic, Scheduling))

	assert.Empty(t, Features(domain.Plan("不存在的套餐")))
}
