package invoicing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

// Prazo padrão de vencimento quando a fatura não informa dueDate
const defaultPaymentTermDays = 30

type InvoiceService interface {
	Create(ctx context.Context, userID int, req *domain.CreateInvoiceRequest) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) (*domain.InvoiceList, error)
	Get(ctx context.Context, userID int, invoiceID string) (*domain.Invoice, error)
	Update(ctx context.Context, userID int, invoiceID string, req *domain.UpdateInvoiceRequest) (*domain.Invoice, error)
	ChangeStatus(ctx context.Context, userID int, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)
	Delete(ctx context.Context, userID int, invoiceID string) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type Service struct {
	invoiceRepository repository.InvoiceRepository
	clientRepository  repository.ClientRepository
	projectRepository repository.ProjectRepository
	now               func() time.Time
}

func NewService(
	invoiceRepository repository.InvoiceRepository,
	clientRepository repository.ClientRepository,
	projectRepository repository.ProjectRepository,
) *Service {
	return &Service{
		invoiceRepository: invoiceRepository,
		clientRepository:  clientRepository,
		projectRepository: projectRepository,
		now:               time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID int, req *domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewInvoiceError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	client, err := s.clientRepository.GetByID(ctx, userID, req.ClientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar cliente da fatura")
		return nil, NewInvoiceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar cliente")
	}
	if client == nil {
		return nil, NewInvoiceError(ErrClientNotFound, apiErrors.ErrResourceNotFound, req.ClientID)
	}

	if err := s.checkProject(ctx, userID, client.ID, req.ProjectID); err != nil {
		return nil, err
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = domain.NewDate(s.now())
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = domain.NewDate(issueDate.AddDate(0, 0, defaultPaymentTermDays))
	}
	if dueDate.Before(issueDate.Time) {
		return nil, NewInvoiceError(ErrInvalidDates, apiErrors.ErrInvalidRequest, "")
	}

	id, err := utils.GenerateID(utils.PrefixInvoice)
	if err != nil {
		return nil, NewInvoiceError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	invoice := &domain.Invoice{
		ID:        id,
		UserID:    userID,
		ClientID:  client.ID,
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Currency:  strings.ToUpper(req.Currency),
		Status:    domain.InvoiceStatusDraft,
		IssueDate: issueDate,
		DueDate:   dueDate,
		PdfURL:    req.PdfURL,
	}
	if invoice.Currency == "" {
		invoice.Currency = client.Currency
	}

	if err := s.invoiceRepository.Create(ctx, invoice); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar fatura")
		return nil, NewInvoiceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar fatura")
	}

	log.ForContext(ctx).WithField("user_id", userID).Infof("Fatura %s criada", invoice.InvoiceNumber)
	return invoice, nil
}

// List devolve as faturas filtradas e os totais do usuário por situação
func (s *Service) List(ctx context.Context, filter domain.InvoiceFilter) (*domain.InvoiceList, error) {
	invoices, err := s.invoiceRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar faturas")
		return nil, NewInvoiceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar faturas")
	}

	totals, err := s.invoiceRepository.Totals(ctx, filter.UserID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao totalizar faturas")
		return nil, NewInvoiceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao totalizar faturas")
	}

	return &domain.InvoiceList{Invoices: invoices, Totals: totals}, nil
}

func (s *Service) Get(ctx context.Context, userID int, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepository.GetByID(ctx, userID, invoiceID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar fatura")
		return nil, NewInvoiceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, invoiceID, "Falha ao buscar fatura")
	}
	if invoice == nil {
		return nil, NewInvoiceErrorWithID(ErrInvoiceNotFound, apiErrors.ErrResourceNotFound, invoiceID, "")
	}
	return invoice, nil
}

func (s *Service) Update(ctx context.Context, userID int, invoiceID string, req *domain.UpdateInvoiceRequest) (*domain.Invoice, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewInvoiceErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, invoiceID, err.Error())
	}

	invoice, err := s.Get(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.Status != domain.InvoiceStatusDraft {
		return nil, NewInvoiceErrorWithID(ErrInvoiceNotEditable, apiErrors.ErrResourceNotEditable, invoiceID, string(invoice.Status))
	}

	if req.ProjectID != nil {
		if err := s.checkProject(ctx, userID, invoice.ClientID, req.ProjectID); err != nil {
			return nil, err
		}
		invoice.ProjectID = req.ProjectID
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Currency != nil {
		invoice.Currency = strings.ToUpper(*req.Currency)
	}
	if req.IssueDate != nil && !req.IssueDate.IsZero() {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil && !req.DueDate.IsZero() {
		invoice.DueDate = *req.DueDate
	}
	if req.PdfURL != nil {
		invoice.PdfURL = req.PdfURL
	}

	if invoice.DueDate.Before(invoice.IssueDate.Time) {
		return nil, NewInvoiceErrorWithID(ErrInvalidDates, apiErrors.ErrInvalidRequest, invoiceID, "")
	}

	if err := s.invoiceRepository.Update(ctx, invoice); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar fatura")
		return nil, NewInvoiceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, invoiceID, "Falha ao atualizar fatura")
	}

	return invoice, nil
}

// ChangeStatus aplica as transições draft→sent, sent→paid|overdue e overdue→paid.
// paidAt é preenchido quando a fatura é paga.
func (s *Service) ChangeStatus(ctx context.Context, userID int, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if err := utils.ValidateStruct(&domain.ChangeInvoiceStatusRequest{Status: status}); err != nil {
		return nil, NewInvoiceErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, invoiceID, err.Error())
	}

	invoice, err := s.Get(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if !invoice.Status.CanTransitionTo(status) {
		return nil, NewInvoiceErrorWithID(
			ErrInvalidStatusTransition,
			apiErrors.ErrInvalidStateChange,
			invoiceID,
			fmt.Sprintf("%s → %s", invoice.Status, status),
		)
	}

	invoice.Status = status
	if status == domain.InvoiceStatusPaid {
		paidAt := s.now().UTC()
		invoice.PaidAt = &paidAt
	}

	if err := s.invoiceRepository.UpdateStatus(ctx, invoice); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao alterar status da fatura")
		return nil, NewInvoiceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, invoiceID, "Falha ao alterar status")
	}

	return invoice, nil
}

// Delete só remove rascunhos
func (s *Service) Delete(ctx context.Context, userID int, invoiceID string) error {
	invoice, err := s.Get(ctx, userID, invoiceID)
	if err != nil {
		return err
	}

	if invoice.Status != domain.InvoiceStatusDraft {
		return NewInvoiceErrorWithID(ErrInvoiceNotEditable, apiErrors.ErrResourceNotEditable, invoiceID, string(invoice.Status))
	}

	deleted, err := s.invoiceRepository.Delete(ctx, userID, invoiceID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover fatura")
		return NewInvoiceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, invoiceID, "Falha ao remover fatura")
	}
	if !deleted {
		return NewInvoiceErrorWithID(ErrInvoiceNotFound, apiErrors.ErrResourceNotFound, invoiceID, "")
	}
	return nil
}

// MarkOverdue marca como vencidas as faturas enviadas com vencimento anterior a asOf
func (s *Service) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	count, err := s.invoiceRepository.MarkOverdue(ctx, asOf)
	if err != nil {
		return 0, NewInvoiceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return count, nil
}

func (s *Service) checkProject(ctx context.Context, userID int, clientID string, projectID *string) error {
	if projectID == nil {
		return nil
	}

	project, err := s.projectRepository.GetByID(ctx, userID, *projectID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar projeto da fatura")
		return NewInvoiceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar projeto")
	}
	if project == nil {
		return NewInvoiceError(ErrProjectNotFound, apiErrors.ErrResourceNotFound, *projectID)
	}
	if project.ClientID != clientID {
		return NewInvoiceError(ErrProjectClientMismatch, apiErrors.ErrInvalidRequest, *projectID)
	}
	return nil
}
