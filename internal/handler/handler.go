package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/youban-dev/workforce-manager/backend/internal/config"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"github.com/youban-dev/workforce-manager/backend/internal/feature"
	"github.com/youban-dev/workforce-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.companyPlan)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/api", func(r chi.Router) {
			r.Get("/employees", h.GetEmployees)

			r.Route("/company", func(r chi.Router) {
				r.Get("/", h.GetMyCompany)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/plan", h.UpdateCompanyPlan)
			})

			r.Route("/users", func(r chi.Router) {
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/", h.CreateUser)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.userInfo)
					r.Get("/", h.GetUserInfo)
					r.With(h.preventOperateOwner).With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/", h.UpdateUser)
					r.With(h.preventOperateOwner).With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Delete("/", h.DeleteUser)
					r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/password", h.UpdateUserPassword)
				})
			})

			r.Route("/work-shifts", func(r chi.Router) {
				r.Use(h.requireFeature(feature.Scheduling))
				r.Get("/company", h.GetCompanyWorkShifts)
				r.Get("/grid", h.GetScheduleGrid)
				r.With(h.requireFeature(feature.Export)).With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Get("/export", h.ExportWeekSchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/", h.CreateWorkShift)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/batch", h.BatchCreateWorkShifts)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.workShift)
					r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Patch("/", h.UpdateWorkShift)
					r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Delete("/", h.DeleteWorkShift)
				})
			})

			r.Route("/vacation-requests", func(r chi.Router) {
				r.Use(h.requireFeature(feature.Vacations))
				r.With(h.myInfo).With(h.preventInactiveEmployee).Post("/", h.CreateVacationRequest)
				r.Get("/company", h.GetCompanyVacationRequests)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.vacationRequest)
					r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Patch("/review", h.ReviewVacationRequest)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/custom", h.GetCustomHolidays)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/custom", h.CreateCustomHoliday)
				r.Route("/custom/{id}", func(r chi.Router) {
					r.Use(h.holiday)
					r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Delete("/", h.DeleteCustomHoliday)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Use(h.requireFeature(feature.TimeTracking))
				r.Use(h.myInfo)
				r.With(h.preventInactiveEmployee).Post("/clock-in", h.ClockIn)
				r.With(h.preventInactiveEmployee).Post("/clock-out", h.ClockOut)
				r.Get("/", h.GetMyTimeEntries)
			})
		})
	})
}
