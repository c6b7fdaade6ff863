package timetracking

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

type TimeTracker interface {
	StartTimer(ctx context.Context, userID int, req *domain.StartTimerRequest) (*domain.TimeEntry, error)
	StopTimer(ctx context.Context, userID int) (*domain.TimeEntry, error)
	CreateEntry(ctx context.Context, userID int, req *domain.CreateTimeEntryRequest) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, userID int, entryID string, req *domain.UpdateTimeEntryRequest) (*domain.TimeEntry, error)
	Delete(ctx context.Context, userID int, entryID string) error
	Totals(ctx context.Context, userID int) (*domain.TimeTotals, error)
}

type Service struct {
	timeEntryRepository repository.TimeEntryRepository
	projectRepository   repository.ProjectRepository
	now                 func() time.Time
}

func NewService(timeEntryRepository repository.TimeEntryRepository, projectRepository repository.ProjectRepository) *Service {
	return &Service{
		timeEntryRepository: timeEntryRepository,
		projectRepository:   projectRepository,
		now:                 time.Now,
	}
}

// StartTimer inicia um timer; cada usuário tem no máximo um em execução
func (s *Service) StartTimer(ctx context.Context, userID int, req *domain.StartTimerRequest) (*domain.TimeEntry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewTimeEntryError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	if err := s.checkProject(ctx, userID, req.ProjectID); err != nil {
		return nil, err
	}

	running, err := s.timeEntryRepository.GetRunning(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar timer em execução")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar timer")
	}
	if running != nil {
		return nil, NewTimeEntryErrorWithID(ErrTimerAlreadyRunning, apiErrors.ErrResourceConflict, running.ID, "")
	}

	id, err := utils.GenerateID(utils.PrefixTimeEntry)
	if err != nil {
		return nil, NewTimeEntryError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	start := s.now().UTC()
	entry := &domain.TimeEntry{
		ID:          id,
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Description: req.Description,
		StartTime:   &start,
		Billable:    billable(req.Billable),
		Date:        domain.NewDate(start),
	}

	if err := s.timeEntryRepository.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrRunningTimerExists) {
			return nil, NewTimeEntryError(ErrTimerAlreadyRunning, apiErrors.ErrResourceConflict, "")
		}
		log.ForContext(ctx).WithError(err).Error("Erro ao iniciar timer")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao iniciar timer")
	}

	return entry, nil
}

func (s *Service) StopTimer(ctx context.Context, userID int) (*domain.TimeEntry, error) {
	running, err := s.timeEntryRepository.GetRunning(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar timer em execução")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar timer")
	}
	if running == nil {
		return nil, NewTimeEntryError(ErrNoRunningTimer, apiErrors.ErrResourceNotFound, "")
	}

	end := s.now().UTC()
	if end.Before(*running.StartTime) {
		end = *running.StartTime
	}
	running.EndTime = &end
	running.DurationSeconds = int64(end.Sub(*running.StartTime) / time.Second)

	if err := s.timeEntryRepository.Update(ctx, running); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao parar timer")
		return nil, NewTimeEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, running.ID, "Falha ao parar timer")
	}

	return running, nil
}

// CreateEntry registra tempo manualmente: duração informada ou início e fim
func (s *Service) CreateEntry(ctx context.Context, userID int, req *domain.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewTimeEntryError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	if err := s.checkProject(ctx, userID, req.ProjectID); err != nil {
		return nil, err
	}

	entry := &domain.TimeEntry{
		UserID:          userID,
		ProjectID:       req.ProjectID,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationSeconds: req.DurationSeconds,
		Billable:        billable(req.Billable),
	}

	if err := resolveDuration(entry); err != nil {
		return nil, err
	}

	switch {
	case req.Date != nil && !req.Date.IsZero():
		entry.Date = *req.Date
	case entry.StartTime != nil:
		entry.Date = domain.NewDate(*entry.StartTime)
	default:
		entry.Date = domain.NewDate(s.now())
	}

	id, err := utils.GenerateID(utils.PrefixTimeEntry)
	if err != nil {
		return nil, NewTimeEntryError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	entry.ID = id

	if err := s.timeEntryRepository.Create(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar registro de tempo")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar registro")
	}

	return entry, nil
}

func (s *Service) List(ctx context.Context, filter domain.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, NewTimeEntryError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "to anterior a from")
	}

	entries, err := s.timeEntryRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar registros de tempo")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar registros")
	}
	return entries, nil
}

func (s *Service) Update(ctx context.Context, userID int, entryID string, req *domain.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewTimeEntryErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, entryID, err.Error())
	}

	entry, err := s.get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil && *req.ProjectID != entry.ProjectID {
		if err := s.checkProject(ctx, userID, *req.ProjectID); err != nil {
			return nil, err
		}
		entry.ProjectID = *req.ProjectID
	}
	if req.Description != nil {
		entry.Description = req.Description
	}
	if req.Billable != nil {
		entry.Billable = *req.Billable
	}
	if req.Date != nil && !req.Date.IsZero() {
		entry.Date = *req.Date
	}

	timesChanged := req.StartTime != nil || req.EndTime != nil
	if req.StartTime != nil {
		entry.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = req.EndTime
	}

	switch {
	case req.DurationSeconds != nil:
		if entry.Running() {
			return nil, NewTimeEntryErrorWithID(ErrInvalidDuration, apiErrors.ErrInvalidRequest, entryID, "timer em execução")
		}
		entry.DurationSeconds = *req.DurationSeconds
	case timesChanged && !entry.Running():
		entry.DurationSeconds = 0
		if err := resolveDuration(entry); err != nil {
			return nil, err
		}
	}

	if err := s.timeEntryRepository.Update(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar registro de tempo")
		return nil, NewTimeEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entryID, "Falha ao atualizar registro")
	}

	return entry, nil
}

func (s *Service) Delete(ctx context.Context, userID int, entryID string) error {
	deleted, err := s.timeEntryRepository.Delete(ctx, userID, entryID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover registro de tempo")
		return NewTimeEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entryID, "Falha ao remover registro")
	}
	if !deleted {
		return NewTimeEntryErrorWithID(ErrTimeEntryNotFound, apiErrors.ErrResourceNotFound, entryID, "")
	}
	return nil
}

// Totals soma o tempo registrado hoje e na semana ISO corrente (UTC)
func (s *Service) Totals(ctx context.Context, userID int) (*domain.TimeTotals, error) {
	now := s.now()
	today := utils.StartOfDay(now)
	week := utils.StartOfISOWeek(now)

	todaySeconds, err := s.timeEntryRepository.SumDuration(ctx, userID, today, today.AddDate(0, 0, 1))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao somar tempo do dia")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao somar tempo")
	}

	weekSeconds, err := s.timeEntryRepository.SumDuration(ctx, userID, week, week.AddDate(0, 0, 7))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao somar tempo da semana")
		return nil, NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao somar tempo")
	}

	return &domain.TimeTotals{
		TodaySeconds: todaySeconds,
		WeekSeconds:  weekSeconds,
		TodayHours:   utils.HoursFromSeconds(todaySeconds),
		WeekHours:    utils.HoursFromSeconds(weekSeconds),
	}, nil
}

func (s *Service) get(ctx context.Context, userID int, entryID string) (*domain.TimeEntry, error) {
	entry, err := s.timeEntryRepository.GetByID(ctx, userID, entryID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar registro de tempo")
		return nil, NewTimeEntryErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entryID, "Falha ao buscar registro")
	}
	if entry == nil {
		return nil, NewTimeEntryErrorWithID(ErrTimeEntryNotFound, apiErrors.ErrResourceNotFound, entryID, "")
	}
	return entry, nil
}

func (s *Service) checkProject(ctx context.Context, userID int, projectID string) error {
	project, err := s.projectRepository.GetByID(ctx, userID, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar projeto do registro de tempo")
		return NewTimeEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar projeto")
	}
	if project == nil {
		return NewTimeEntryError(ErrProjectNotFound, apiErrors.ErrResourceNotFound, projectID)
	}
	return nil
}

// resolveDuration calcula a duração a partir de início e fim quando não informada.
// Início e fim, se presentes, precisam estar em ordem.
func resolveDuration(entry *domain.TimeEntry) error {
	if entry.StartTime != nil && entry.EndTime != nil {
		if !entry.EndTime.After(*entry.StartTime) {
			return NewTimeEntryErrorWithID(ErrInvalidDuration, apiErrors.ErrInvalidRequest, entry.ID, "fim deve ser posterior ao início")
		}
		if entry.DurationSeconds == 0 {
			entry.DurationSeconds = int64(entry.EndTime.Sub(*entry.StartTime) / time.Second)
		}
	}

	if entry.EndTime != nil && entry.StartTime == nil {
		return NewTimeEntryErrorWithID(ErrInvalidDuration, apiErrors.ErrInvalidRequest, entry.ID, "fim sem início")
	}

	if entry.DurationSeconds <= 0 {
		return NewTimeEntryErrorWithID(ErrInvalidDuration, apiErrors.ErrInvalidRequest, entry.ID, "informe a duração ou início e fim")
	}

	// registro manual com início e duração não pode ficar aberto como timer
	if entry.StartTime != nil && entry.EndTime == nil {
		end := entry.StartTime.Add(time.Duration(entry.DurationSeconds) * time.Second)
		entry.EndTime = &end
	}

	return nil
}

func billable(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
