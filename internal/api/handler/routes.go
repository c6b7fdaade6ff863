package handler

import (
	"net/http"

	"github.com/vfg2006/orbit-api/internal/api/handler/router"
	"github.com/vfg2006/orbit-api/internal/usecases/authenticating"
	"github.com/vfg2006/orbit-api/internal/usecases/clienting"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	"github.com/vfg2006/orbit-api/internal/usecases/invoicing"
	"github.com/vfg2006/orbit-api/internal/usecases/projecting"
	"github.com/vfg2006/orbit-api/internal/usecases/timetracking"
	"github.com/vfg2006/orbit-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Authentication agrupa as rotas públicas; limiter é aplicado a todas elas
func Authentication(service authenticating.Authenticator, limiter func(http.Handler) http.Handler) []router.Route {
	mw := middlewares{limiter}

	return []router.Route{
		{Path: "/v1/auth/register", Method: http.MethodPost, Handler: Register(service), Middlewares: mw},
		{Path: "/v1/auth/login", Method: http.MethodPost, Handler: Login(service), Middlewares: mw},
		{Path: "/v1/auth/verify-email", Method: http.MethodPost, Handler: VerifyEmail(service), Middlewares: mw},
		{Path: "/v1/auth/resend-verification", Method: http.MethodPost, Handler: ResendVerification(service), Middlewares: mw},
		{Path: "/v1/auth/forgot-password", Method: http.MethodPost, Handler: ForgotPassword(service), Middlewares: mw},
		{Path: "/v1/auth/reset-password", Method: http.MethodPost, Handler: ResetPassword(service), Middlewares: mw},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	all := middlewares{middleware.AllRoles()}
	admin := middlewares{middleware.AdminOnly()}

	return []router.Route{
		{Path: "/v1/me", Method: http.MethodGet, Handler: GetMe(service), Middlewares: all},
		{Path: "/v1/me", Method: http.MethodPut, Handler: UpdateMe(service), Middlewares: all},
		{Path: "/v1/me/change-password", Method: http.MethodPost, Handler: ChangePassword(service), Middlewares: all},
		{Path: "/v1/users", Method: http.MethodGet, Handler: ListUsers(service), Middlewares: admin},
		{Path: "/v1/users/:id", Method: http.MethodGet, Handler: GetUser(service), Middlewares: admin},
		{Path: "/v1/users/:id", Method: http.MethodPut, Handler: UpdateUser(service), Middlewares: admin},
	}
}

func Clients(service clienting.ClientService) []router.Route {
	all := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/clients", Method: http.MethodGet, Handler: ListClients(service), Middlewares: all},
		{Path: "/v1/clients", Method: http.MethodPost, Handler: CreateClient(service), Middlewares: all},
		{Path: "/v1/clients/:id", Method: http.MethodGet, Handler: GetClient(service), Middlewares: all},
		{Path: "/v1/clients/:id", Method: http.MethodPut, Handler: UpdateClient(service), Middlewares: all},
		{Path: "/v1/clients/:id", Method: http.MethodDelete, Handler: DeleteClient(service), Middlewares: all},
	}
}

func Projects(service projecting.ProjectService) []router.Route {
	all := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/projects", Method: http.MethodGet, Handler: ListProjects(service), Middlewares: all},
		{Path: "/v1/projects", Method: http.MethodPost, Handler: CreateProject(service), Middlewares: all},
		{Path: "/v1/projects/:id", Method: http.MethodGet, Handler: GetProject(service), Middlewares: all},
		{Path: "/v1/projects/:id", Method: http.MethodPut, Handler: UpdateProject(service), Middlewares: all},
		{Path: "/v1/projects/:id", Method: http.MethodDelete, Handler: DeleteProject(service), Middlewares: all},
	}
}

func Invoices(service invoicing.InvoiceService) []router.Route {
	all := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/invoices", Method: http.MethodGet, Handler: ListInvoices(service), Middlewares: all},
		{Path: "/v1/invoices", Method: http.MethodPost, Handler: CreateInvoice(service), Middlewares: all},
		{Path: "/v1/invoices/:id", Method: http.MethodGet, Handler: GetInvoice(service), Middlewares: all},
		{Path: "/v1/invoices/:id", Method: http.MethodPut, Handler: UpdateInvoice(service), Middlewares: all},
		{Path: "/v1/invoices/:id", Method: http.MethodDelete, Handler: DeleteInvoice(service), Middlewares: all},
		{Path: "/v1/invoices/:id/status", Method: http.MethodPost, Handler: ChangeInvoiceStatus(service), Middlewares: all},
	}
}

func TimeEntries(service timetracking.TimeTracker) []router.Route {
	all := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/time-entries", Method: http.MethodGet, Handler: ListTimeEntries(service), Middlewares: all},
		{Path: "/v1/time-entries", Method: http.MethodPost, Handler: CreateTimeEntry(service), Middlewares: all},
		{Path: "/v1/time-entries/totals", Method: http.MethodGet, Handler: TimeTotals(service), Middlewares: all},
		{Path: "/v1/time-entries/:id", Method: http.MethodPut, Handler: UpdateTimeEntry(service), Middlewares: all},
		{Path: "/v1/time-entries/:id", Method: http.MethodDelete, Handler: DeleteTimeEntry(service), Middlewares: all},
		{Path: "/v1/time-entries/timer/start", Method: http.MethodPost, Handler: StartTimer(service), Middlewares: all},
		{Path: "/v1/time-entries/timer/stop", Method: http.MethodPost, Handler: StopTimer(service), Middlewares: all},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	all := middlewares{middleware.AllRoles()}

	return []router.Route{
		{Path: "/v1/dashboard/summary", Method: http.MethodGet, Handler: GetDashboardSummary(service), Middlewares: all},
		{Path: "/v1/dashboard/preview", Method: http.MethodPost, Handler: PreviewDashboard(service), Middlewares: all},
		{Path: "/v1/dashboard/revenue-chart", Method: http.MethodGet, Handler: GetRevenueChart(service), Middlewares: all},
		{Path: "/v1/dashboard/history", Method: http.MethodGet, Handler: GetHealthHistory(service), Middlewares: all},
		{Path: "/v1/targets/:period", Method: http.MethodGet, Handler: GetPeriodTarget(service), Middlewares: all},
		{Path: "/v1/targets/:period", Method: http.MethodPut, Handler: SetPeriodTarget(service), Middlewares: all},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	admin := middlewares{middleware.AdminOnly()}

	return []router.Route{
		{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(services), Middlewares: admin},
		{Path: "/v1/cron/status", Method: http.MethodGet, Handler: GetCronStatus(services), Middlewares: admin},
	}
}
