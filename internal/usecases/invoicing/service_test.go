package invoicing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
)

var fixedNow = time.Date(2026, time.January, 20, 15, 30, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	invoices *mocks.MockInvoiceRepository
	clients  *mocks.MockClientRepository
	projects *mocks.MockProjectRepository
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		invoices: mocks.NewMockInvoiceRepository(ctrl),
		clients:  mocks.NewMockClientRepository(ctrl),
		projects: mocks.NewMockProjectRepository(ctrl),
	}
	f.svc = NewService(f.invoices, f.clients, f.projects)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func date(s string) domain.Date {
	d, _ := domain.ParseDate(s)
	return d
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults de rascunho, moeda e vencimento", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, 1, "cli_1").Return(&domain.Client{ID: "cli_1", Currency: "EUR"}, nil)
		f.invoices.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *domain.Invoice) error {
			assert.True(t, strings.HasPrefix(inv.ID, "inv_"))
			inv.InvoiceNumber = "INV-2026-001"
			return nil
		})

		inv, err := f.svc.Create(ctx, 1, &domain.CreateInvoiceRequest{ClientID: "cli_1", Amount: 4500})
		require.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
		assert.Equal(t, "EUR", inv.Currency)
		assert.Equal(t, "2026-01-20", inv.IssueDate.String())
		assert.Equal(t, "2026-02-19", inv.DueDate.String())
		assert.Equal(t, "INV-2026-001", inv.InvoiceNumber)
	})

	t.Run("Vencimento antes da emissão", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, 1, "cli_1").Return(&domain.Client{ID: "cli_1"}, nil)

		_, err := f.svc.Create(ctx, 1, &domain.CreateInvoiceRequest{
			ClientID: "cli_1", Amount: 100, IssueDate: date("2026-01-10"), DueDate: date("2026-01-05"),
		})
		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("Projeto de outro cliente", func(t *testing.T) {
		f := newFixture(t)
		projectID := "proj_1"
		f.clients.EXPECT().GetByID(ctx, 1, "cli_1").Return(&domain.Client{ID: "cli_1"}, nil)
		f.projects.EXPECT().GetByID(ctx, 1, projectID).Return(&domain.Project{ID: projectID, ClientID: "cli_2"}, nil)

		_, err := f.svc.Create(ctx, 1, &domain.CreateInvoiceRequest{ClientID: "cli_1", ProjectID: &projectID, Amount: 100})
		assert.ErrorIs(t, err, ErrProjectClientMismatch)
	})

	t.Run("Valor zero é inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, 1, &domain.CreateInvoiceRequest{ClientID: "cli_1"})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    domain.InvoiceStatus
		to      domain.InvoiceStatus
		wantErr error
	}{
		{name: "draft para sent", from: domain.InvoiceStatusDraft, to: domain.InvoiceStatusSent},
		{name: "sent para paid", from: domain.InvoiceStatusSent, to: domain.InvoiceStatusPaid},
		{name: "sent para overdue", from: domain.InvoiceStatusSent, to: domain.InvoiceStatusOverdue},
		{name: "overdue para paid", from: domain.InvoiceStatusOverdue, to: domain.InvoiceStatusPaid},
		{name: "draft para paid", from: domain.InvoiceStatusDraft, to: domain.InvoiceStatusPaid, wantErr: ErrInvalidStatusTransition},
		{name: "paid para sent", from: domain.InvoiceStatusPaid, to: domain.InvoiceStatusSent, wantErr: ErrInvalidStatusTransition},
		{name: "status desconhecido", from: domain.InvoiceStatusDraft, to: "cancelled", wantErr: ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantErr != ErrInvalidRequest {
				f.invoices.EXPECT().GetByID(ctx, 1, "inv_1").Return(&domain.Invoice{ID: "inv_1", UserID: 1, Status: tt.from}, nil)
			}
			if tt.wantErr == nil {
				f.invoices.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil)
			}

			inv, err := f.svc.ChangeStatus(ctx, 1, "inv_1", tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, inv.Status)
			if tt.to == domain.InvoiceStatusPaid {
				require.NotNil(t, inv.PaidAt)
				assert.Equal(t, fixedNow, *inv.PaidAt)
			} else {
				assert.Nil(t, inv.PaidAt)
			}
		})
	}
}

func TestChangeStatusErrorCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.invoices.EXPECT().GetByID(ctx, 1, "inv_1").Return(&domain.Invoice{ID: "inv_1", Status: domain.InvoiceStatusPaid}, nil)

	_, err := f.svc.ChangeStatus(ctx, 1, "inv_1", domain.InvoiceStatusOverdue)

	var invErr *InvoiceError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, apiErrors.ErrInvalidStateChange, invErr.Code)
	assert.Equal(t, "inv_1", invErr.InvoiceID)
}

func TestUpdateOnlyDraft(t *testing.T) {
	ctx := context.Background()
	amount := 900.0

	t.Run("Fatura enviada não é editável", func(t *testing.T) {
		f := newFixture(t)
		f.invoices.EXPECT().GetByID(ctx, 1, "inv_1").Return(&domain.Invoice{ID: "inv_1", Status: domain.InvoiceStatusSent}, nil)

		_, err := f.svc.Update(ctx, 1, "inv_1", &domain.UpdateInvoiceRequest{Amount: &amount})
		assert.ErrorIs(t, err, ErrInvoiceNotEditable)
	})

	t.Run("Rascunho é atualizado", func(t *testing.T) {
		f := newFixture(t)
		f.invoices.EXPECT().GetByID(ctx, 1, "inv_1").Return(&domain.Invoice{
			ID: "inv_1", Status: domain.InvoiceStatusDraft, Amount: 100,
			IssueDate: date("2026-01-01"), DueDate: date("2026-01-31"),
		}, nil)
		f.invoices.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		inv, err := f.svc.Update(ctx, 1, "inv_1", &domain.UpdateInvoiceRequest{Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, 900.0, inv.Amount)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Paga não pode ser removida", func(t *testing.T) {
		f := newFixture(t)
		f.invoices.EXPECT().GetByID(ctx, 1, "inv_1").Return(&domain.Invoice{ID: "inv_1", Status: domain.InvoiceStatusPaid}, nil)

		assert.ErrorIs(t, f.svc.Delete(ctx, 1, "inv_1"), ErrInvoiceNotEditable)
	})

	t.Run("Inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.invoices.EXPECT().GetByID(ctx, 1, "inv_x").Return(nil, nil)

		assert.ErrorIs(t, f.svc.Delete(ctx, 1, "inv_x"), ErrInvoiceNotFound)
	})

	t.Run("Rascunho removido", func(t *testing.T) {
		f := newFixture(t)
		f.invoices.EXPECT().GetByID(ctx, 1, "inv_1").Return(&domain.Invoice{ID: "inv_1", Status: domain.InvoiceStatusDraft}, nil)
		f.invoices.EXPECT().Delete(ctx, 1, "inv_1").Return(true, nil)

		assert.NoError(t, f.svc.Delete(ctx, 1, "inv_1"))
	})
}

func TestListWithTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	filter := domain.InvoiceFilter{UserID: 1, Statuses: []domain.InvoiceStatus{domain.InvoiceStatusSent}}

	f.invoices.EXPECT().List(ctx, filter).Return([]*domain.Invoice{{ID: "inv_1"}}, nil)
	f.invoices.EXPECT().Totals(ctx, 1).Return(domain.InvoiceTotals{Paid: 8750, Pending: 2100, Overdue: 500}, nil)

	list, err := f.svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, list.Invoices, 1)
	assert.Equal(t, 8750.0, list.Totals.Paid)
}

func TestMarkOverdue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.invoices.EXPECT().MarkOverdue(ctx, fixedNow).Return(int64(3), nil)

	count, err := f.svc.MarkOverdue(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
