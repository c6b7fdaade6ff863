package clienting

import (
	"context"
	"strings"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

type ClientService interface {
	Create(ctx context.Context, userID int, req *domain.CreateClientRequest) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)
	Get(ctx context.Context, userID int, clientID string) (*domain.Client, error)
	Update(ctx context.Context, userID int, clientID string, req *domain.UpdateClientRequest) (*domain.Client, error)
	Delete(ctx context.Context, userID int, clientID string) error
}

type Service struct {
	clientRepository repository.ClientRepository
}

func NewService(clientRepository repository.ClientRepository) *Service {
	return &Service{clientRepository: clientRepository}
}

func (s *Service) Create(ctx context.Context, userID int, req *domain.CreateClientRequest) (*domain.Client, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewClientError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	id, err := utils.GenerateID(utils.PrefixClient)
	if err != nil {
		return nil, NewClientError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	client := &domain.Client{
		ID:          id,
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Status:      req.Status,
		Currency:    strings.ToUpper(req.Currency),
		Color:       req.Color,
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}
	if client.Currency == "" {
		client.Currency = domain.DefaultCurrency
	}

	if err := s.clientRepository.Create(ctx, client); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar cliente")
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar cliente")
	}

	return client, nil
}

func (s *Service) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	clients, err := s.clientRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar clientes")
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes")
	}
	return clients, nil
}

func (s *Service) Get(ctx context.Context, userID int, clientID string) (*domain.Client, error) {
	client, err := s.clientRepository.GetByID(ctx, userID, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar cliente")
		return nil, NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao buscar cliente")
	}
	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, "")
	}
	return client, nil
}

func (s *Service) Update(ctx context.Context, userID int, clientID string, req *domain.UpdateClientRequest) (*domain.Client, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewClientErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, clientID, err.Error())
	}

	client, err := s.Get(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.CompanyName != nil {
		client.CompanyName = req.CompanyName
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.Currency != nil {
		client.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Color != nil {
		client.Color = req.Color
	}

	if err := s.clientRepository.Update(ctx, client); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar cliente")
		return nil, NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao atualizar cliente")
	}

	return client, nil
}

// Delete remove o cliente junto com projetos e faturas vinculados
func (s *Service) Delete(ctx context.Context, userID int, clientID string) error {
	deleted, err := s.clientRepository.Delete(ctx, userID, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover cliente")
		return NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao remover cliente")
	}
	if !deleted {
		return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, "")
	}
	return nil
}
