package projecting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orbit-api/internal/domain"
)

func newService(t *testing.T) (*Service, *mocks.MockProjectRepository, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)
	projects := mocks.NewMockProjectRepository(ctrl)
	clients := mocks.NewMockClientRepository(ctrl)
	return NewService(projects, clients), projects, clients
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, projects, clients := newService(t)

	clients.EXPECT().GetByID(ctx, 1, "cli_1").Return(&domain.Client{ID: "cli_1", Name: "Acme", Currency: "EUR"}, nil)
	projects.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Project) error {
		assert.True(t, strings.HasPrefix(p.ID, "proj_"))
		assert.Equal(t, domain.ProjectStatusActive, p.Status)
		assert.Equal(t, "EUR", p.Currency)
		return nil
	})

	project, err := svc.Create(ctx, 1, &domain.CreateProjectRequest{
		ClientID: "cli_1", Name: "Website", BillingType: domain.BillingHourly, Rate: 85, HoursEstimated: 120, MonthlyCommitmentHours: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 10200.0, project.TotalValue)
	assert.Equal(t, "Acme", project.Client.Name)
}

func TestCreateRejectsForeignClient(t *testing.T) {
	ctx := context.Background()
	svc, _, clients := newService(t)

	clients.EXPECT().GetByID(ctx, 1, "cli_outro").Return(nil, nil)

	_, err := svc.Create(ctx, 1, &domain.CreateProjectRequest{ClientID: "cli_outro", Name: "X", BillingType: domain.BillingFixed})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), 1, &domain.CreateProjectRequest{ClientID: "cli_1", Name: "X", BillingType: "mensal"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "billingType")
}

func TestUpdateRecomputesDerived(t *testing.T) {
	ctx := context.Background()
	svc, projects, _ := newService(t)

	fixed := domain.BillingFixed
	budget := 6000.0

	projects.EXPECT().GetByID(ctx, 1, "proj_1").Return(&domain.Project{
		ID: "proj_1", ClientID: "cli_1", BillingType: domain.BillingHourly, Rate: 100, HoursEstimated: 10, HoursLogged: 5,
	}, nil)
	projects.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	project, err := svc.Update(ctx, 1, "proj_1", &domain.UpdateProjectRequest{BillingType: &fixed, Budget: &budget})
	require.NoError(t, err)
	assert.Equal(t, 6000.0, project.TotalValue)
	assert.Equal(t, 50.0, project.ProgressPercentage)
}

func TestDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc, projects, _ := newService(t)

	projects.EXPECT().Delete(ctx, 1, "proj_x").Return(false, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 1, "proj_x"), ErrProjectNotFound)
}
