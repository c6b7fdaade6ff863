package timetracking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orbit-api/internal/domain"
)

// quarta-feira
var fixedNow = time.Date(2026, time.January, 14, 16, 45, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	entries  *mocks.MockTimeEntryRepository
	projects *mocks.MockProjectRepository
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		entries:  mocks.NewMockTimeEntryRepository(ctrl),
		projects: mocks.NewMockProjectRepository(ctrl),
	}
	f.svc = NewService(f.entries, f.projects)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func ptr[T any](v T) *T { return &v }

func TestStartTimer(t *testing.T) {
	ctx := context.Background()

	t.Run("Inicia timer faturável por padrão", func(t *testing.T) {
		f := newFixture(t)
		f.projects.EXPECT().GetByID(ctx, 1, "proj_1").Return(&domain.Project{ID: "proj_1"}, nil)
		f.entries.EXPECT().GetRunning(ctx, 1).Return(nil, nil)
		f.entries.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		entry, err := f.svc.StartTimer(ctx, 1, &domain.StartTimerRequest{ProjectID: "proj_1"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(entry.ID, "te_"))
		assert.True(t, entry.Running())
		assert.True(t, entry.Billable)
		assert.Equal(t, "2026-01-14", entry.Date.String())
	})

	t.Run("Segundo timer é rejeitado", func(t *testing.T) {
		f := newFixture(t)
		f.projects.EXPECT().GetByID(ctx, 1, "proj_1").Return(&domain.Project{ID: "proj_1"}, nil)
		f.entries.EXPECT().GetRunning(ctx, 1).Return(&domain.TimeEntry{ID: "te_run"}, nil)

		_, err := f.svc.StartTimer(ctx, 1, &domain.StartTimerRequest{ProjectID: "proj_1"})
		assert.ErrorIs(t, err, ErrTimerAlreadyRunning)
	})

	t.Run("Corrida detectada pelo índice único", func(t *testing.T) {
		f := newFixture(t)
		f.projects.EXPECT().GetByID(ctx, 1, "proj_1").Return(&domain.Project{ID: "proj_1"}, nil)
		f.entries.EXPECT().GetRunning(ctx, 1).Return(nil, nil)
		f.entries.EXPECT().Create(ctx, gomock.Any()).Return(repository.ErrRunningTimerExists)

		_, err := f.svc.StartTimer(ctx, 1, &domain.StartTimerRequest{ProjectID: "proj_1"})
		assert.ErrorIs(t, err, ErrTimerAlreadyRunning)
	})

	t.Run("Projeto de outro usuário", func(t *testing.T) {
		f := newFixture(t)
		f.projects.EXPECT().GetByID(ctx, 1, "proj_x").Return(nil, nil)

		_, err := f.svc.StartTimer(ctx, 1, &domain.StartTimerRequest{ProjectID: "proj_x"})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestStopTimer(t *testing.T) {
	ctx := context.Background()

	t.Run("Calcula a duração", func(t *testing.T) {
		f := newFixture(t)
		start := fixedNow.Add(-90 * time.Minute)
		f.entries.EXPECT().GetRunning(ctx, 1).Return(&domain.TimeEntry{ID: "te_1", StartTime: &start}, nil)
		f.entries.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		entry, err := f.svc.StopTimer(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5400), entry.DurationSeconds)
		assert.False(t, entry.Running())
	})

	t.Run("Sem timer em execução", func(t *testing.T) {
		f := newFixture(t)
		f.entries.EXPECT().GetRunning(ctx, 1).Return(nil, nil)

		_, err := f.svc.StopTimer(ctx, 1)
		assert.ErrorIs(t, err, ErrNoRunningTimer)
	})
}

func TestCreateEntry(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		req          domain.CreateTimeEntryRequest
		wantErr      error
		wantDuration int64
		wantDate     string
	}{
		{
			name:         "Duração informada usa o dia atual",
			req:          domain.CreateTimeEntryRequest{ProjectID: "proj_1", DurationSeconds: 3600},
			wantDuration: 3600,
			wantDate:     "2026-01-14",
		},
		{
			name:         "Início e fim",
			req:          domain.CreateTimeEntryRequest{ProjectID: "proj_1", StartTime: &start, EndTime: ptr(start.Add(2 * time.Hour))},
			wantDuration: 7200,
			wantDate:     "2026-01-12",
		},
		{
			name:         "Data explícita",
			req:          domain.CreateTimeEntryRequest{ProjectID: "proj_1", DurationSeconds: 600, Date: ptr(domain.NewDate(start.AddDate(0, 0, -3)))},
			wantDuration: 600,
			wantDate:     "2026-01-09",
		},
		{
			name:    "Fim antes do início",
			req:     domain.CreateTimeEntryRequest{ProjectID: "proj_1", StartTime: &start, EndTime: ptr(start.Add(-time.Hour))},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "Sem duração",
			req:     domain.CreateTimeEntryRequest{ProjectID: "proj_1"},
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.projects.EXPECT().GetByID(ctx, 1, "proj_1").Return(&domain.Project{ID: "proj_1"}, nil)
			if tt.wantErr == nil {
				f.entries.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			}

			req := tt.req
			entry, err := f.svc.CreateEntry(ctx, 1, &req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDuration, entry.DurationSeconds)
			assert.Equal(t, tt.wantDate, entry.Date.String())
			assert.False(t, entry.Running())
		})
	}
}

func TestCreateEntryWithStartAndDurationIsClosed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

	f.projects.EXPECT().GetByID(ctx, 1, "proj_1").Return(&domain.Project{ID: "proj_1"}, nil)
	f.entries.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	entry, err := f.svc.CreateEntry(ctx, 1, &domain.CreateTimeEntryRequest{ProjectID: "proj_1", StartTime: &start, DurationSeconds: 1800})
	require.NoError(t, err)
	require.NotNil(t, entry.EndTime)
	assert.Equal(t, start.Add(30*time.Minute), *entry.EndTime)
}

func TestUpdateRecomputesDuration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	f.entries.EXPECT().GetByID(ctx, 1, "te_1").Return(&domain.TimeEntry{
		ID: "te_1", ProjectID: "proj_1", StartTime: &start, EndTime: &end, DurationSeconds: 3600,
	}, nil)
	f.entries.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	entry, err := f.svc.Update(ctx, 1, "te_1", &domain.UpdateTimeEntryRequest{EndTime: ptr(start.Add(3 * time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, int64(10800), entry.DurationSeconds)
}

func TestUpdateRunningRejectsDuration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := fixedNow.Add(-time.Hour)

	f.entries.EXPECT().GetByID(ctx, 1, "te_1").Return(&domain.TimeEntry{ID: "te_1", ProjectID: "proj_1", StartTime: &start}, nil)

	_, err := f.svc.Update(ctx, 1, "te_1", &domain.UpdateTimeEntryRequest{DurationSeconds: ptr(int64(60))})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	today := time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

	f.entries.EXPECT().SumDuration(ctx, 1, today, today.AddDate(0, 0, 1)).Return(int64(5400), nil)
	f.entries.EXPECT().SumDuration(ctx, 1, monday, monday.AddDate(0, 0, 7)).Return(int64(72000), nil)

	totals, err := f.svc.Totals(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, totals.TodayHours)
	assert.Equal(t, 20.0, totals.WeekHours)
	assert.Equal(t, int64(72000), totals.WeekSeconds)
}

func TestListRejectsInvertedRange(t *testing.T) {
	f := newFixture(t)
	from := fixedNow
	to := fixedNow.AddDate(0, 0, -1)

	_, err := f.svc.List(context.Background(), domain.TimeEntryFilter{UserID: 1, From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
