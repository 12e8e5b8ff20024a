package handler

type ContextKey string

var (
	RoleCtxKey         ContextKey = "role"
	SubCtxKey          ContextKey = "sub"
	CompanyIDCtxKey    ContextKey = "companyID"
	PlanCtxKey         ContextKey = "plan"
	MyInfoCtx          ContextKey = "myInfo"
	UserInfoCtx        ContextKey = "userInfo"
	WorkShiftCtx       ContextKey = "workShift"
	VacationRequestCtx ContextKey = "vacationRequest"
	HolidayCtx         ContextKey = "holiday"
)
