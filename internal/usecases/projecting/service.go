package projecting

import (
	"context"
	"strings"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

type ProjectService interface {
	Create(ctx context.Context, userID int, req *domain.CreateProjectRequest) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error)
	Get(ctx context.Context, userID int, projectID string) (*domain.Project, error)
	Update(ctx context.Context, userID int, projectID string, req *domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, userID int, projectID string) error
}

type Service struct {
	projectRepository repository.ProjectRepository
	clientRepository  repository.ClientRepository
}

func NewService(projectRepository repository.ProjectRepository, clientRepository repository.ClientRepository) *Service {
	return &Service{
		projectRepository: projectRepository,
		clientRepository:  clientRepository,
	}
}

func (s *Service) Create(ctx context.Context, userID int, req *domain.CreateProjectRequest) (*domain.Project, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewProjectError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	client, err := s.ownedClient(ctx, userID, req.ClientID)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID(utils.PrefixProject)
	if err != nil {
		return nil, NewProjectError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	project := &domain.Project{
		ID:                     id,
		UserID:                 userID,
		ClientID:               client.ID,
		Client:                 &domain.ProjectClient{ID: client.ID, Name: client.Name},
		Name:                   strings.TrimSpace(req.Name),
		Status:                 req.Status,
		BillingType:            req.BillingType,
		Rate:                   req.Rate,
		Budget:                 req.Budget,
		Currency:               strings.ToUpper(req.Currency),
		HoursEstimated:         req.HoursEstimated,
		MonthlyCommitmentHours: req.MonthlyCommitmentHours,
		Deadline:               req.Deadline,
		Color:                  req.Color,
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}
	if project.Currency == "" {
		project.Currency = client.Currency
	}

	if err := s.projectRepository.Create(ctx, project); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar projeto")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar projeto")
	}

	project.ComputeDerived()
	return project, nil
}

func (s *Service) List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	projects, err := s.projectRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar projetos")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar projetos")
	}
	return projects, nil
}

func (s *Service) Get(ctx context.Context, userID int, projectID string) (*domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, userID, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar projeto")
		return nil, NewProjectErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "Falha ao buscar projeto")
	}
	if project == nil {
		return nil, NewProjectErrorWithID(ErrProjectNotFound, apiErrors.ErrResourceNotFound, projectID, "")
	}
	return project, nil
}

func (s *Service) Update(ctx context.Context, userID int, projectID string, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewProjectErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, projectID, err.Error())
	}

	project, err := s.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil && *req.ClientID != project.ClientID {
		client, err := s.ownedClient(ctx, userID, *req.ClientID)
		if err != nil {
			return nil, err
		}
		project.ClientID = client.ID
		project.Client = &domain.ProjectClient{ID: client.ID, Name: client.Name}
	}
	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.BillingType != nil {
		project.BillingType = *req.BillingType
	}
	if req.Rate != nil {
		project.Rate = *req.Rate
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Currency != nil {
		project.Currency = strings.ToUpper(*req.Currency)
	}
	if req.HoursEstimated != nil {
		project.HoursEstimated = *req.HoursEstimated
	}
	if req.MonthlyCommitmentHours != nil {
		project.MonthlyCommitmentHours = *req.MonthlyCommitmentHours
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.Color != nil {
		project.Color = req.Color
	}

	if err := s.projectRepository.Update(ctx, project); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar projeto")
		return nil, NewProjectErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "Falha ao atualizar projeto")
	}

	project.ComputeDerived()
	return project, nil
}

func (s *Service) Delete(ctx context.Context, userID int, projectID string) error {
	deleted, err := s.projectRepository.Delete(ctx, userID, projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover projeto")
		return NewProjectErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, projectID, "Falha ao remover projeto")
	}
	if !deleted {
		return NewProjectErrorWithID(ErrProjectNotFound, apiErrors.ErrResourceNotFound, projectID, "")
	}
	return nil
}

// ownedClient garante que o cliente existe e pertence ao usuário
func (s *Service) ownedClient(ctx context.Context, userID int, clientID string) (*domain.Client, error) {
	client, err := s.clientRepository.GetByID(ctx, userID, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar cliente do projeto")
		return nil, NewProjectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar cliente")
	}
	if client == nil {
		return nil, NewProjectError(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID)
	}
	return client, nil
}
