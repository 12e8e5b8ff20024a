package seed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/config"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"github.com/youban-dev/workforce-manager/backend/internal/repository"
	"github.com/youban-dev/workforce-manager/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const demoEmployeeCount = 8

// SeedDemoData 插入一套完整的演示数据：一个演示企业、若干员工、
// 未来两周的班次、几条休假申请和自定义节假日，方便本地联调前端
func SeedDemoData(cfg *config.Config, r *repository.Repository) {
	// 创建演示企业
	company := &domain.Company{
		Name: "优班演示门店",
		Plan: domain.PlanProfessional,
	}
	if err := r.CreateCompany(company); err != nil {
		slog.Error("插入演示企业失败", "error", err)
		return
	}

	// 创建企业管理员
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.User.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成密码哈希", "error", err)
		return
	}
	owner := &domain.User{
		CompanyID:    company.ID,
		Username:     "demo_owner",
		PasswordHash: string(passwordHash),
		FullName:     "演示管理员",
		Email:        "demo_owner@" + cfg.Email.UserDomain,
		Role:         domain.RoleOwner,
	}
	if err := r.CreateUser(owner); err != nil {
		slog.Error("插入演示管理员失败", "error", err)
		return
	}

	// 创建员工
	employees := make([]*domain.User, 0, demoEmployeeCount)
	for i := 0; i < demoEmployeeCount; i++ {
		user, err := utils.GenerateRandomUser(company.ID, cfg.Seed.User.Password, cfg.Email.UserDomain)
		if err != nil {
			slog.Error("无法生成随机用户", "error", err)
			continue
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("插入随机用户失败", "error", err)
			continue
		}
		employees = append(employees, user)
	}
	if len(employees) == 0 {
		slog.Error("没有成功插入任何员工")
		return
	}

	// 为每个员工生成未来两周的班次
	today := time.Now().Truncate(24 * time.Hour)
	shiftCnt := 0
	for _, employee := range employees {
		for day := 0; day < 14; day++ {
			shift := utils.GenerateRandomWorkShift(company.ID, employee.ID, today.AddDate(0, 0, day))
			if err := r.CreateWorkShift(shift); err != nil {
				conflictErr := &repository.ShiftConflictError{}
				if errors.As(err, &conflictErr) {
					// 随机生成的班次可能重叠，跳过即可
					continue
				}
				slog.Error("插入随机班次失败", "error", err)
				continue
			}
			shiftCnt++
		}
	}

	// 生成几条休假申请
	vacationCnt := 0
	for i, employee := range employees {
		if i%3 != 0 {
			continue
		}
		request := utils.GenerateRandomVacationRequest(company.ID, employee.ID)
		if err := r.CreateVacationRequest(request); err != nil {
			slog.Error("插入随机休假申请失败", "error", err)
			continue
		}
		vacationCnt++
	}

	// 生成自定义节假日
	holidays := []*domain.Holiday{
		{CompanyID: company.ID, Name: "门店周年庆", Date: today.AddDate(0, 0, 10)},
		{CompanyID: company.ID, Name: "全员团建日", Date: today.AddDate(0, 0, 21)},
	}
	holidayCnt := 0
	for _, holiday := range holidays {
		if err := r.CreateHoliday(holiday); err != nil {
			slog.Error("插入自定义节假日失败", "error", err)
			continue
		}
		holidayCnt++
	}

	slog.Info("演示数据插入完成",
		slog.Int64("company_id", company.ID),
		slog.Int("employees", len(employees)),
		slog.Int("shifts", shiftCnt),
		slog.Int("vacations", vacationCnt),
		slog.Int("holidays", holidayCnt),
	)
}
