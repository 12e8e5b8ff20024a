package feature

import (
	"slices"

	"github.com/youban-dev/workforce-manager/backend/internal/domain"
)

// Feature 是订阅套餐控制的产品能力。
type Feature string

const (
	Scheduling    Feature = "scheduling"     // 排班网格与班次管理
	TimeTracking  Feature = "time_tracking"  // 打卡记录
	Vacations     Feature = "vacations"      // 休假申请与审批
	Export        Feature = "export"         // 班表导出
	Notifications Feature = "notifications"  // 班次指派邮件通知
)

// planFeatures 定义每个套餐开放的能力集合。
var planFeatures = map[domain.Plan][]Feature{
	domain.PlanBasic:        {Scheduling, Vacations},
	domain.PlanProfessional: {Scheduling, Vacations, TimeTracking, Export},
	domain.PlanEnterprise:   {Scheduling, Vacations, TimeTracking, Export, Notifications},
}

// HasAccess 判断套餐是否拥有某项能力，未知套餐一律没有权限。
func HasAccess(plan domain.Plan, f Feature) bool {
	return slices.Contains(planFeatures[plan], f)
}

// Features 返回套餐开放的全部能力。
func Features(plan domain.Plan) []Feature {
	fs := planFeatures[plan]
	result := make([]Feature, len(fs))
	copy(result, fs)
	return result
}
