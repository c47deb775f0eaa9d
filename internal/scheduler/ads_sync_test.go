package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repositorymocks "github.com/vfg2006/ad-transparency-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	queryingmocks "github.com/vfg2006/ad-transparency-api/internal/usecases/querying/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, cfg AdsSyncConfig) (*AdsSyncService, *queryingmocks.MockQueryService, *repositorymocks.MockAdSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	queryService := queryingmocks.NewMockQueryService(ctrl)
	snapshotRepo := repositorymocks.NewMockAdSnapshotRepository(ctrl)

	svc := &AdsSyncService{
		config:         cfg,
		queryService:   queryService,
		adSnapshotRepo: snapshotRepo,
	}

	return svc, queryService, snapshotRepo
}

func TestSyncAds_SavesSnapshotsAndAppliesRetention(t *testing.T) {
	cfg := AdsSyncConfig{
		CountryCode:   "BR",
		SearchTerm:    "eleições",
		LookbackDays:  7,
		MaxPages:      5,
		RetentionDays: 90,
	}
	svc, queryService, snapshotRepo := newTestService(t, cfg)

	table := &domain.AdTable{
		Rows: []domain.AdRow{
			{ID: 101, Status: "active"},
			{ID: 102, Status: "inactive"},
		},
		Pages: 1,
	}

	queryService.EXPECT().
		QueryAds(gomock.Any()).
		DoAndReturn(func(q *domain.AdQuery) (*domain.AdTable, error) {
			assert.Equal(t, "BR", q.CountryCode)
			assert.Equal(t, "eleições", q.SearchTerm)
			assert.Equal(t, 5, q.MaxPages)
			assert.True(t, q.Tolerant)

			// Janela de captura: ontem para trás, LookbackDays dias
			expectedEnd := time.Now().AddDate(0, 0, -1)
			assert.Equal(t, expectedEnd.Format(time.DateOnly), q.EndDate.Format(time.DateOnly))
			expectedStart := expectedEnd.AddDate(0, 0, -6)
			assert.Equal(t, expectedStart.Format(time.DateOnly), q.StartDate.Format(time.DateOnly))

			return table, nil
		})

	var savedIDs []int64
	snapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.AdSnapshotEntry) error {
			require.NotNil(t, entry.Row)
			assert.Equal(t, entry.AdID, entry.Row.ID)
			savedIDs = append(savedIDs, entry.AdID)
			return nil
		}).
		Times(2)

	snapshotRepo.EXPECT().DeleteOlderThan(90).Return(int64(3), nil)

	svc.syncAds()

	assert.Equal(t, []int64{101, 102}, savedIDs)
	assert.False(t, svc.lastSyncCompletedAt.IsZero())
	assert.NotEmpty(t, svc.lastRunID)
}

func TestSyncAds_QueryErrorSkipsPersistence(t *testing.T) {
	svc, queryService, _ := newTestService(t, AdsSyncConfig{LookbackDays: 1, RetentionDays: 90})

	queryService.EXPECT().QueryAds(gomock.Any()).Return(nil, assert.AnError)

	// Nenhuma chamada de SaveOrUpdate nem DeleteOlderThan é esperada
	svc.syncAds()

	assert.True(t, svc.lastSyncCompletedAt.IsZero())
	assert.False(t, svc.syncRunning)
}

func TestSyncAds_EmptyResultSkipsRetention(t *testing.T) {
	svc, queryService, _ := newTestService(t, AdsSyncConfig{LookbackDays: 1, RetentionDays: 90})

	queryService.EXPECT().QueryAds(gomock.Any()).Return(&domain.AdTable{Rows: nil, Pages: 1}, nil)

	svc.syncAds()

	assert.False(t, svc.lastSyncCompletedAt.IsZero())
}

func TestSyncAds_RetentionErrorDoesNotFailRun(t *testing.T) {
	svc, queryService, snapshotRepo := newTestService(t, AdsSyncConfig{LookbackDays: 1, RetentionDays: 30})

	queryService.EXPECT().QueryAds(gomock.Any()).
		Return(&domain.AdTable{Rows: []domain.AdRow{{ID: 7}}, Pages: 1}, nil)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	snapshotRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), assert.AnError)

	svc.syncAds()

	assert.False(t, svc.lastSyncCompletedAt.IsZero())
}

func TestSyncAds_SaveErrorContinuesWithRemaining(t *testing.T) {
	svc, queryService, snapshotRepo := newTestService(t, AdsSyncConfig{LookbackDays: 1})

	queryService.EXPECT().QueryAds(gomock.Any()).
		Return(&domain.AdTable{Rows: []domain.AdRow{{ID: 1}, {ID: 2}}, Pages: 1}, nil)

	gomock.InOrder(
		snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError),
		snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
	)

	svc.syncAds()

	assert.False(t, svc.lastSyncCompletedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	svc, _, _ := newTestService(t, AdsSyncConfig{
		SyncEnabled:   true,
		CronSchedule:  "0 3 * * *",
		CountryCode:   "BR",
		LookbackDays:  7,
		RetentionDays: 90,
	})
	svc.lastRunID = "abc123"

	status := svc.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, "abc123", status["last_run_id"])
	assert.Equal(t, 90, status["retention_days"])
}
