package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/youban-dev/workforce-manager/backend/internal/config"
	"github.com/youban-dev/workforce-manager/backend/internal/repository"
	"github.com/youban-dev/workforce-manager/backend/internal/seed"
	"github.com/youban-dev/workforce-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var companyID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机员工, 2: 插入随机班次, 3: 插入随机休假申请, 4: 插入完整演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&companyID, "company-id", 0, "目标企业 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if companyID <= 0 {
			slog.Error("请输入合法的企业 ID")
			return
		}
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(companyID, cfg.Seed.User.Password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("无法生成随机员工", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("无法插入员工", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入员工成功", slog.Int("count", n-cnt))
	case 2:
		if companyID <= 0 {
			slog.Error("请输入合法的企业 ID")
			return
		}

		// 获取该企业的所有员工，为每人在未来一周内随机生成 n 个班次
		employees, err := repo.GetUsersByCompany(companyID)
		if err != nil {
			slog.Error("无法获取企业员工", slog.String("error", err.Error()))
			return
		}
		if len(employees) == 0 {
			slog.Error("该企业没有任何员工", slog.Int64("company_id", companyID))
			return
		}

		today := time.Now().Truncate(24 * time.Hour)
		cnt := 0
		for _, employee := range employees {
			for i := 0; i < n; i++ {
				shift := utils.GenerateRandomWorkShift(companyID, employee.ID, today.AddDate(0, 0, i%7))
				if err := repo.CreateWorkShift(shift); err != nil {
					conflictErr := &repository.ShiftConflictError{}
					if errors.As(err, &conflictErr) {
						// 随机班次可能互相重叠，跳过即可
						continue
					}
					slog.Error("无法插入班次", slog.String("error", err.Error()))
					continue
				}
				cnt++
			}
		}

		slog.Info("插入班次成功", slog.Int("count", cnt))
	case 3:
		if companyID <= 0 {
			slog.Error("请输入合法的企业 ID")
			return
		}

		employees, err := repo.GetUsersByCompany(companyID)
		if err != nil {
			slog.Error("无法获取企业员工", slog.String("error", err.Error()))
			return
		}
		if len(employees) == 0 {
			slog.Error("该企业没有任何员工", slog.Int64("company_id", companyID))
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			employee := employees[i%len(employees)]
			request := utils.GenerateRandomVacationRequest(companyID, employee.ID)
			if err := repo.CreateVacationRequest(request); err != nil {
				slog.Error("无法插入休假申请", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}

		slog.Info("插入休假申请成功", slog.Int("count", cnt))
	case 4:
		seed.SeedDemoData(cfg, repo)
	default:
		slog.Error("指定的操作非法")
	}
}
