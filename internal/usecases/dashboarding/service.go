package dashboarding

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/internal/metrics"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

const (
	DefaultChartWeeks   = 12
	MaxChartWeeks       = 52
	DefaultHistoryLimit = 12
)

type Dashboarder interface {
	GetSummary(ctx context.Context, userID int, period utils.Period) (*domain.DashboardSummary, error)
	Preview(ctx context.Context, req *domain.DashboardPreviewRequest) (*domain.DashboardSummary, error)
	RevenueChart(ctx context.Context, userID int, weeks int) ([]domain.RevenueDataPoint, error)
	History(ctx context.Context, userID int, limit int) ([]*domain.HealthSnapshot, error)
	GetTarget(ctx context.Context, userID int, period utils.Period) (*domain.PeriodTarget, error)
	SetTarget(ctx context.Context, userID int, period utils.Period, req *domain.UpsertPeriodTargetRequest) (*domain.PeriodTarget, error)
	SnapshotPeriod(ctx context.Context, userID int, period utils.Period) (*domain.HealthSnapshot, error)
}

type Service struct {
	dashboardRepository      repository.DashboardRepository
	healthSnapshotRepository repository.HealthSnapshotRepository
	userRepository           repository.UserRepository
	now                      func() time.Time
}

func NewService(
	dashboardRepository repository.DashboardRepository,
	healthSnapshotRepository repository.HealthSnapshotRepository,
	userRepository repository.UserRepository,
) *Service {
	return &Service{
		dashboardRepository:      dashboardRepository,
		healthSnapshotRepository: healthSnapshotRepository,
		userRepository:           userRepository,
		now:                      time.Now,
	}
}

// periodData são os números brutos de um período já carregados do banco
type periodData struct {
	input    metrics.PeriodInput
	currency string
}

// GetSummary carrega os números do período e calcula o resumo do dashboard.
// Entrada inválida vinda do banco indica dado corrompido e vira erro interno.
func (s *Service) GetSummary(ctx context.Context, userID int, period utils.Period) (*domain.DashboardSummary, error) {
	data, err := s.loadPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	summary, err := metrics.Summarize(data.input)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("period", period.String()).Error("Dados do período inválidos para o cálculo de métricas")
		dashErr := NewPeriodDashboardError(ErrCorruptedMetricsInput, apiErrors.ErrCorruptedMetricsInput, userID, period.String(), err.Error())
		var inputErr *metrics.InvalidInputError
		if errors.As(err, &inputErr) {
			dashErr.Field = inputErr.Field
		}
		return nil, dashErr
	}

	return buildSummary(period, *data, summary), nil
}

// Preview calcula o resumo a partir de números enviados pelo cliente, sem acessar o banco
func (s *Service) Preview(ctx context.Context, req *domain.DashboardPreviewRequest) (*domain.DashboardSummary, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewDashboardError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	period, err := utils.ParsePeriod(req.Period, s.now())
	if err != nil {
		return nil, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, err.Error())
	}

	summary, err := metrics.Summarize(req.PeriodInput)
	if err != nil {
		var inputErr *metrics.InvalidInputError
		if errors.As(err, &inputErr) {
			return nil, &DashboardError{
				Err:     ErrInvalidMetricsInput,
				Code:    apiErrors.ErrInvalidMetricsInput,
				Period:  period.String(),
				Field:   inputErr.Field,
				Details: inputErr.Field,
			}
		}
		return nil, NewDashboardError(ErrInvalidMetricsInput, apiErrors.ErrInvalidMetricsInput, err.Error())
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return buildSummary(period, periodData{input: req.PeriodInput, currency: currency}, summary), nil
}

// RevenueChart devolve receita realizada e projetada das últimas semanas ISO, incluindo a corrente.
// Semanas sem faturas aparecem zeradas.
func (s *Service) RevenueChart(ctx context.Context, userID int, weeks int) ([]domain.RevenueDataPoint, error) {
	if weeks <= 0 {
		weeks = DefaultChartWeeks
	}
	weeks = min(weeks, MaxChartWeeks)

	to := utils.StartOfISOWeek(s.now()).AddDate(0, 0, 7)
	from := to.AddDate(0, 0, -7*weeks)

	rows, err := s.dashboardRepository.RevenueByWeek(ctx, userID, from, to)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao agrupar receita por semana")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar gráfico de receita")
	}

	byWeek := make(map[time.Time]domain.WeeklyRevenue, len(rows))
	for _, r := range rows {
		byWeek[utils.StartOfISOWeek(r.WeekStart)] = r
	}

	points := make([]domain.RevenueDataPoint, 0, weeks)
	for week := from; week.Before(to); week = week.AddDate(0, 0, 7) {
		r := byWeek[week]
		points = append(points, domain.RevenueDataPoint{
			Date:      week.Format("Jan 2"),
			WeekStart: week.Format(utils.DateLayout),
			Earned:    utils.RoundWithTwoDecimalPlace(r.Earned),
			Projected: utils.RoundWithTwoDecimalPlace(r.Projected),
		})
	}

	return points, nil
}

func (s *Service) History(ctx context.Context, userID int, limit int) ([]*domain.HealthSnapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	snapshots, err := s.healthSnapshotRepository.ListByUser(ctx, userID, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar histórico de health score")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar histórico")
	}

	return snapshots, nil
}

func (s *Service) GetTarget(ctx context.Context, userID int, period utils.Period) (*domain.PeriodTarget, error) {
	target, err := s.dashboardRepository.GetPeriodTarget(ctx, userID, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar meta do período")
		return nil, NewPeriodDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, period.String(), "Falha ao buscar meta")
	}
	if target == nil {
		return nil, NewPeriodDashboardError(ErrTargetNotFound, apiErrors.ErrResourceNotFound, userID, period.String(), "")
	}

	return target, nil
}

// SetTarget cria ou substitui a meta do período. Sem moeda, usa a moeda padrão do usuário.
func (s *Service) SetTarget(ctx context.Context, userID int, period utils.Period, req *domain.UpsertPeriodTargetRequest) (*domain.PeriodTarget, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewPeriodDashboardError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, userID, period.String(), err.Error())
	}

	currency := req.Currency
	if currency == "" {
		user, err := s.user(ctx, userID)
		if err != nil {
			return nil, err
		}
		currency = user.DefaultCurrency
	}

	target := &domain.PeriodTarget{
		UserID:         userID,
		RevenueTarget:  req.RevenueTarget,
		HoursAvailable: req.HoursAvailable,
		Currency:       currencyOrDefault(currency),
	}

	if err := s.dashboardRepository.UpsertPeriodTarget(ctx, target, period); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao salvar meta do período")
		return nil, NewPeriodDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, period.String(), "Falha ao salvar meta")
	}

	return target, nil
}

// SnapshotPeriod calcula e persiste o health score do período
func (s *Service) SnapshotPeriod(ctx context.Context, userID int, period utils.Period) (*domain.HealthSnapshot, error) {
	data, err := s.loadPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	summary, err := metrics.Summarize(data.input)
	if err != nil {
		return nil, NewPeriodDashboardError(ErrCorruptedMetricsInput, apiErrors.ErrCorruptedMetricsInput, userID, period.String(), err.Error())
	}

	snapshot := &domain.HealthSnapshot{
		UserID:           userID,
		DashboardSummary: summary,
		HealthLabel:      metrics.HealthLabel(summary.HealthScore),
	}

	if err := s.healthSnapshotRepository.SaveOrUpdate(ctx, snapshot, period); err != nil {
		log.ForContext(ctx).WithError(err).WithField("period", period.String()).Error("Erro ao salvar snapshot")
		return nil, NewPeriodDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, period.String(), "Falha ao salvar snapshot")
	}

	return snapshot, nil
}

// loadPeriod busca em paralelo tudo que o cálculo do período precisa
func (s *Service) loadPeriod(ctx context.Context, userID int, period utils.Period) (*periodData, error) {
	var (
		user      *domain.User
		target    *domain.PeriodTarget
		committed float64
		logged    int64
		revenue   domain.RevenueSums
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		user, err = s.userRepository.GetUserByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		target, err = s.dashboardRepository.GetPeriodTarget(gctx, userID, period)
		return err
	})
	g.Go(func() error {
		var err error
		committed, err = s.dashboardRepository.SumCommittedHours(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		logged, err = s.dashboardRepository.SumLoggedSeconds(gctx, userID, period.Start(), period.End())
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = s.dashboardRepository.SumRevenue(gctx, userID, period.Start(), period.End())
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("period", period.String()).Error("Erro ao carregar números do período")
		return nil, NewPeriodDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, period.String(), "Falha ao carregar dados do período")
	}

	if user == nil {
		return nil, NewPeriodDashboardError(ErrUserNotFound, apiErrors.ErrResourceNotFound, userID, period.String(), "")
	}

	data := &periodData{
		input: metrics.PeriodInput{
			HoursAvailable: user.MonthlyCapacityHours,
			HoursCommitted: committed,
			HoursLogged:    utils.HoursFromSeconds(logged),
			RevenueEarned:  revenue.Earned,
			RevenuePending: revenue.Pending,
		},
		currency: user.DefaultCurrency,
	}

	if data.input.HoursAvailable <= 0 {
		data.input.HoursAvailable = domain.DefaultMonthlyCapacityHours
	}

	if target != nil {
		data.input.RevenueTarget = target.RevenueTarget
		if target.HoursAvailable != nil {
			data.input.HoursAvailable = *target.HoursAvailable
		}
		if target.Currency != "" {
			data.currency = target.Currency
		}
	}
	data.currency = currencyOrDefault(data.currency)

	return data, nil
}

func (s *Service) user(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar usuário")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar usuário")
	}
	if user == nil {
		return nil, &DashboardError{Err: ErrUserNotFound, Code: apiErrors.ErrResourceNotFound, UserID: userID}
	}
	return user, nil
}

// buildSummary monta o formato de apresentação; só as larguras de barra são limitadas a [0,100]
func buildSummary(period utils.Period, data periodData, summary metrics.DashboardSummary) *domain.DashboardSummary {
	in := data.input

	earnedPct, pendingPct := 0.0, 0.0
	if in.RevenueTarget > 0 {
		earnedPct = in.RevenueEarned / in.RevenueTarget * 100
		pendingPct = in.RevenuePending / in.RevenueTarget * 100
	}
	earnedBar := metrics.ProgressBarWidth(earnedPct)

	return &domain.DashboardSummary{
		Period: domain.PeriodRange{
			Start: period.Start().Format(utils.DateLayout),
			End:   period.LastDay().Format(utils.DateLayout),
			Label: period.Label(),
		},
		Bandwidth: domain.Bandwidth{
			HoursAvailable:        in.HoursAvailable,
			HoursCommitted:        in.HoursCommitted,
			HoursLogged:           in.HoursLogged,
			UtilizationPercentage: utils.RoundWithTwoDecimalPlace(summary.UtilizationPercentage),
			RemainingHours:        utils.RoundWithTwoDecimalPlace(summary.RemainingHours),
			BarWidth:              utils.RoundWithTwoDecimalPlace(metrics.ProgressBarWidth(summary.UtilizationPercentage)),
		},
		Revenue: domain.RevenueSummary{
			TargetAmount:              in.RevenueTarget,
			EarnedAmount:              in.RevenueEarned,
			PendingAmount:             in.RevenuePending,
			Currency:                  data.currency,
			RevenueProgressPercentage: utils.RoundWithTwoDecimalPlace(summary.RevenueProgressPercentage),
			OnTrack:                   summary.OnTrack,
			EarnedBarWidth:            utils.RoundWithTwoDecimalPlace(earnedBar),
			PendingBarWidth:           utils.RoundWithTwoDecimalPlace(min(metrics.ProgressBarWidth(pendingPct), 100-earnedBar)),
		},
		HealthScore: summary.HealthScore,
		HealthLabel: metrics.HealthLabel(summary.HealthScore),
	}
}

func currencyOrDefault(c string) string {
	if c == "" {
		return domain.DefaultCurrency
	}
	return c
}
