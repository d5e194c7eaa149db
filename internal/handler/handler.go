package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/bay-services/dashboard/backend/internal/config"
	"github.com/bay-services/dashboard/backend/internal/dashboard"
	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/metrics"
	"github.com/bay-services/dashboard/backend/internal/realtime"
	"github.com/bay-services/dashboard/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	notifier    *realtime.Notifier
	metrics     *metrics.Manager
	watcher     *dashboard.Watcher
	now         func() time.Time

	Mux *chi.Mux
}

type Dependencies struct {
	Repository  *repository.Repository
	MailChannel *amqp.Channel
	RedisClient *redis.Client
	Notifier    *realtime.Notifier
	Metrics     *metrics.Manager
	Watcher     *dashboard.Watcher
}

func NewHandler(cfg *config.Config, deps Dependencies) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  deps.Repository,
		translator:  trans,
		mailChannel: deps.MailChannel,
		redisClient: deps.RedisClient,
		notifier:    deps.Notifier,
		metrics:     deps.Metrics,
		watcher:     deps.Watcher,
		now:         time.Now,

		Mux: chi.NewRouter(),
	}, nil
}

var (
	everyone     = []domain.Role{domain.RoleOperator, domain.RoleManager}
	operatorOnly = []domain.Role{domain.RoleOperator}
	managerOnly  = []domain.Role{domain.RoleManager}
)

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	if h.metrics != nil {
		h.Mux.Handle("/metrics", h.metrics.Handler())
	}

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/signup", h.Signup)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below needs a session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(h.RequiredRole(everyone))
			r.Get("/", h.GetDashboard)
			r.Get("/on-shift", h.GetOnShift)
			r.Get("/on-shift/stream", h.StreamOnShift)
		})

		r.Route("/schedules/{schedule}", func(r chi.Router) {
			r.Use(h.RequiredRole(everyone))
			r.Use(h.scheduleKind)
			r.Get("/", h.GetSchedule)
			r.With(h.scheduleRow).Patch("/rows/{id}", h.UpdateScheduleRow)
		})

		r.Route("/auto-answers", func(r chi.Router) {
			r.Use(h.RequiredRole(operatorOnly))
			r.With(h.myInfo).Get("/", h.GetAutoAnswers)
			r.Get("/operators", h.GetAutoAnswerOperators)
		})

		r.With(h.RequiredRole(operatorOnly)).Get("/service-catalog", h.GetServiceCatalog)

		r.Route("/property-companies", func(r chi.Router) {
			r.Use(h.RequiredRole(everyone))
			r.Get("/", h.GetAllPropertyCompanies)
			r.Post("/", h.CreatePropertyCompany)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.propertyCompany)
				r.Get("/", h.GetPropertyCompany)
				r.Patch("/", h.UpdatePropertyCompany)
				r.Delete("/", h.DeletePropertyCompany)
			})
		})

		r.Route("/outstanding-payments", func(r chi.Router) {
			r.Use(h.RequiredRole(managerOnly))
			r.Get("/", h.GetOutstandingPayments)
			r.Get("/summary", h.GetOutstandingPaymentSummary)
			r.With(h.outstandingPayment).Post("/{id}/toggle-status", h.ToggleOutstandingPaymentStatus)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole(managerOnly))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})
	})
}
