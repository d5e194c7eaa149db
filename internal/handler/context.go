package handler

type ContextKey string

var (
	RoleCtxKey            ContextKey = "role"
	SubCtxKey             ContextKey = "sub"
	MyInfoCtx             ContextKey = "myInfo"
	UserInfoCtx           ContextKey = "userInfo"
	ScheduleKindCtx       ContextKey = "scheduleKind"
	ScheduleRowCtx        ContextKey = "scheduleRow"
	PropertyCompanyCtx    ContextKey = "propertyCompany"
	OutstandingPaymentCtx ContextKey = "outstandingPayment"
)
