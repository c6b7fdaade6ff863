package clienting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/apiErrors"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Client) error {
		assert.True(t, strings.HasPrefix(c.ID, "cli_"))
		assert.Equal(t, 3, c.UserID)
		assert.Equal(t, domain.ClientStatusActive, c.Status)
		assert.Equal(t, "USD", c.Currency)
		return nil
	})

	client, err := svc.Create(ctx, 3, &domain.CreateClientRequest{Name: " Acme "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", client.Name)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(mocks.NewMockClientRepository(gomock.NewController(t)))
	bad := "não-é-email"

	_, err := svc.Create(context.Background(), 3, &domain.CreateClientRequest{Name: "Acme", Email: &bad})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetScopedByOwner(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().GetByID(ctx, 4, "cli_abc").Return(nil, nil)

	_, err := svc.Get(ctx, 4, "cli_abc")
	assert.ErrorIs(t, err, ErrClientNotFound)

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, apiErrors.ErrResourceNotFound, clientErr.Code)
	assert.Equal(t, "cli_abc", clientErr.ClientID)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	svc := NewService(repo)

	inactive := domain.ClientStatusInactive
	currency := "eur"

	repo.EXPECT().GetByID(ctx, 1, "cli_1").Return(&domain.Client{ID: "cli_1", UserID: 1, Name: "Acme", Status: domain.ClientStatusActive, Currency: "USD"}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	client, err := svc.Update(ctx, 1, "cli_1", &domain.UpdateClientRequest{Status: &inactive, Currency: &currency})
	require.NoError(t, err)
	assert.Equal(t, domain.ClientStatusInactive, client.Status)
	assert.Equal(t, "EUR", client.Currency)
	assert.Equal(t, "Acme", client.Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClientRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().Delete(ctx, 1, "cli_1").Return(true, nil)
	repo.EXPECT().Delete(ctx, 1, "cli_2").Return(false, nil)
	repo.EXPECT().Delete(ctx, 1, "cli_3").Return(false, errors.New("db"))

	assert.NoError(t, svc.Delete(ctx, 1, "cli_1"))
	assert.ErrorIs(t, svc.Delete(ctx, 1, "cli_2"), ErrClientNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, "cli_3"), ErrDatabaseOperation)
}
