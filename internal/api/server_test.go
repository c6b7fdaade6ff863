package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/internal/api/handler"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/internal/domain"
	authmocks "github.com/vfg2006/orbit-api/internal/usecases/authenticating/mocks"
	clientmocks "github.com/vfg2006/orbit-api/internal/usecases/clienting/mocks"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	dashmocks "github.com/vfg2006/orbit-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/orbit-api/internal/usecases/invoicing"
	invoicemocks "github.com/vfg2006/orbit-api/internal/usecases/invoicing/mocks"
	projectmocks "github.com/vfg2006/orbit-api/internal/usecases/projecting/mocks"
	"github.com/vfg2006/orbit-api/internal/usecases/timetracking"
	timemocks "github.com/vfg2006/orbit-api/internal/usecases/timetracking/mocks"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	freelancerToken = "freelancer-token"
	adminToken      = "admin-token"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeCronJob struct {
	triggered int
}

func (j *fakeCronJob) TriggerManualSync() bool {
	j.triggered++
	return true
}

func (j *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

type fixture struct {
	handler   http.Handler
	auth      *authmocks.MockAuthenticator
	clients   *clientmocks.MockClientService
	invoices  *invoicemocks.MockInvoiceService
	timer     *timemocks.MockTimeTracker
	dashboard *dashmocks.MockDashboarder
	overdue   *fakeCronJob
}

func newFixture(t *testing.T, db handler.Pinger) fixture {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	f := fixture{
		auth:      authmocks.NewMockAuthenticator(ctrl),
		clients:   clientmocks.NewMockClientService(ctrl),
		invoices:  invoicemocks.NewMockInvoiceService(ctrl),
		timer:     timemocks.NewMockTimeTracker(ctrl),
		dashboard: dashmocks.NewMockDashboarder(ctrl),
		overdue:   &fakeCronJob{},
	}

	f.auth.EXPECT().ValidateToken(freelancerToken).
		Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleFreelancer}, nil).AnyTimes()
	f.auth.EXPECT().ValidateToken(adminToken).
		Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil).AnyTimes()

	cfg := &config.Config{
		RateLimit: config.RateLimit{Enabled: false, Window: time.Minute, Max: 100},
		CORS:      config.CORS{TrustedOrigins: []string{"http://localhost:3000"}},
	}

	f.handler = NewHandler(cfg, Services{
		DB:            db,
		Authenticator: f.auth,
		Clients:       f.clients,
		Projects:      projectmocks.NewMockProjectService(ctrl),
		Invoices:      f.invoices,
		TimeTracker:   f.timer,
		Dashboard:     f.dashboard,
		CronJobs:      handler.CronJobServices{InvoiceOverdueSyncService: f.overdue},
	})

	return f
}

func (f fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func TestHealthcheck(t *testing.T) {
	t.Run("Banco disponível", func(t *testing.T) {
		f := newFixture(t, fakePinger{})
		rec := f.do(http.MethodGet, "/healthcheck", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"database":"ok"`)
	})

	t.Run("Banco indisponível", func(t *testing.T) {
		f := newFixture(t, fakePinger{err: errors.New("connection refused")})
		rec := f.do(http.MethodGet, "/healthcheck", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/v1/dashboard/summary", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
}

func TestLogin(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.EXPECT().Login(gomock.Any(), &domain.LoginRequest{Email: "ana@orbit.app", Password: "Secret123"}).
		Return(&domain.LoginResponse{Token: "jwt"}, nil)

	rec := f.do(http.MethodPost, "/v1/auth/login", "", `{"email":"ana@orbit.app","password":"Secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
}

func TestLoginMalformedBody(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodPost, "/v1/auth/login", "", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
}

func TestDashboardSummary(t *testing.T) {
	january := utils.Period{Year: 2026, Month: time.January}

	t.Run("Resumo do período", func(t *testing.T) {
		f := newFixture(t, nil)
		f.dashboard.EXPECT().GetSummary(gomock.Any(), 7, january).Return(&domain.DashboardSummary{
			HealthScore: 74,
			HealthLabel: "Good",
		}, nil)

		rec := f.do(http.MethodGet, "/v1/dashboard/summary?period=01-2026", freelancerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"healthScore":74`)
		assert.Contains(t, rec.Body.String(), `"healthLabel":"Good"`)
	})

	t.Run("Período inválido", func(t *testing.T) {
		f := newFixture(t, nil)
		rec := f.do(http.MethodGet, "/v1/dashboard/summary?period=2026-01", freelancerToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("Dado corrompido vira 500", func(t *testing.T) {
		f := newFixture(t, nil)
		f.dashboard.EXPECT().GetSummary(gomock.Any(), 7, january).Return(nil,
			dashboarding.NewPeriodDashboardError(dashboarding.ErrCorruptedMetricsInput, apiErrors.ErrCorruptedMetricsInput, 7, "01-2026", "revenueEarned"))

		rec := f.do(http.MethodGet, "/v1/dashboard/summary?period=01-2026", freelancerToken, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrCorruptedMetricsInput, errorCode(t, rec))
	})
}

func TestDashboardPreviewInvalidInput(t *testing.T) {
	f := newFixture(t, nil)
	f.dashboard.EXPECT().Preview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.DashboardPreviewRequest) (*domain.DashboardSummary, error) {
			assert.Equal(t, -5.0, req.HoursLogged)
			return nil, dashboarding.NewDashboardError(dashboarding.ErrInvalidMetricsInput, apiErrors.ErrInvalidMetricsInput, "hoursLogged")
		})

	rec := f.do(http.MethodPost, "/v1/dashboard/preview", freelancerToken, `{"hoursAvailable":160,"hoursLogged":-5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidMetricsInput, errorCode(t, rec))
}

func TestDashboardPreviewErrorNamesField(t *testing.T) {
	f := newFixture(t, nil)
	f.dashboard.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(nil, &dashboarding.DashboardError{
		Err:    dashboarding.ErrInvalidMetricsInput,
		Code:   apiErrors.ErrInvalidMetricsInput,
		Period: "01-2026",
		Field:  "hoursLogged",
	})

	rec := f.do(http.MethodPost, "/v1/dashboard/preview", freelancerToken, `{"hoursLogged":-5}`)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"period": "01-2026", "field": "hoursLogged"}, apiErr.Details)
}

func TestDashboardPreviewOverflowingRatio(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken(freelancerToken).
		Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleFreelancer}, nil).AnyTimes()

	cfg := &config.Config{
		RateLimit: config.RateLimit{Enabled: false, Window: time.Minute, Max: 100},
		CORS:      config.CORS{TrustedOrigins: []string{"http://localhost:3000"}},
	}
	h := NewHandler(cfg, Services{
		Authenticator: auth,
		Clients:       clientmocks.NewMockClientService(ctrl),
		Projects:      projectmocks.NewMockProjectService(ctrl),
		Invoices:      invoicemocks.NewMockInvoiceService(ctrl),
		TimeTracker:   timemocks.NewMockTimeTracker(ctrl),
		Dashboard:     dashboarding.NewService(nil, nil, nil),
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/preview",
		strings.NewReader(`{"period":"01-2026","hoursAvailable":160,"hoursCommitted":1e-300,"hoursLogged":1e300}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+freelancerToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidMetricsInput, errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), `"field":"hoursLogged"`)
}

func TestStartTimerConflict(t *testing.T) {
	f := newFixture(t, nil)
	f.timer.EXPECT().StartTimer(gomock.Any(), 7, &domain.StartTimerRequest{ProjectID: "proj_1"}).
		Return(nil, timetracking.NewTimeEntryErrorWithID(timetracking.ErrTimerAlreadyRunning, apiErrors.ErrResourceConflict, "te_run", ""))

	rec := f.do(http.MethodPost, "/v1/time-entries/timer/start", freelancerToken, `{"projectId":"proj_1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceConflict, errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), `"timeEntryId":"te_run"`)
}

func TestTimeEntriesDateFilter(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/v1/time-entries?from=14/01/2026", freelancerToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.timer.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error) {
			assert.Equal(t, 7, filter.UserID)
			require.NotNil(t, filter.From)
			assert.Equal(t, "2026-01-01", filter.From.Format(utils.DateLayout))
			assert.Nil(t, filter.To)
			return []*domain.TimeEntry{}, nil
		})

	rec = f.do(http.MethodGet, "/v1/time-entries?from=2026-01-01", freelancerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvoiceStatusTransition(t *testing.T) {
	f := newFixture(t, nil)
	f.invoices.EXPECT().ChangeStatus(gomock.Any(), 7, "inv_1", domain.InvoiceStatusDraft).
		Return(nil, invoicing.NewInvoiceErrorWithID(invoicing.ErrInvalidStatusTransition, apiErrors.ErrInvalidStateChange, "inv_1", "paid -> draft"))

	rec := f.do(http.MethodPost, "/v1/invoices/inv_1/status", freelancerToken, `{"status":"draft"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidStateChange, errorCode(t, rec))
}

func TestListInvoicesStatusFilter(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/v1/invoices?status=sent,cancelled", freelancerToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.invoices.EXPECT().List(gomock.Any(), domain.InvoiceFilter{
		UserID:   7,
		Statuses: []domain.InvoiceStatus{domain.InvoiceStatusSent, domain.InvoiceStatusOverdue},
	}).Return(&domain.InvoiceList{Invoices: []*domain.Invoice{}}, nil)

	rec = f.do(http.MethodGet, "/v1/invoices?status=sent,overdue", freelancerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteClient(t *testing.T) {
	f := newFixture(t, nil)
	f.clients.EXPECT().Delete(gomock.Any(), 7, "cli_1").Return(nil)

	rec := f.do(http.MethodDelete, "/v1/clients/cli_1", freelancerToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCronRoutesAreAdminOnly(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/v1/cron/invoice-overdue/run", freelancerToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, f.overdue.triggered)

	rec = f.do(http.MethodPost, "/v1/cron/invoice-overdue/run", adminToken, "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, f.overdue.triggered)

	rec = f.do(http.MethodPost, "/v1/cron/unknown/run", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/v1/cron/status", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invoice-overdue"`)
}

func TestUpdateMeIgnoresRoleChange(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.UpdateUserRequest) (*domain.User, error) {
			assert.Equal(t, 7, req.ID)
			assert.Nil(t, req.RoleID)
			require.NotNil(t, req.Name)
			return &domain.User{ID: 7, Name: *req.Name}, nil
		})

	rec := f.do(http.MethodPut, "/v1/me", freelancerToken, `{"name":"Ana","roleId":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCorsPreflight(t *testing.T) {
	f := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/clients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
