package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repositorymocks "github.com/vfg2006/ad-transparency-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestReporter(t *testing.T) (Reporter, *repositorymocks.MockAdSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	snapshotRepo := repositorymocks.NewMockAdSnapshotRepository(ctrl)

	return NewService(snapshotRepo), snapshotRepo
}

func TestListSnapshots(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("devolve snapshots do intervalo", func(t *testing.T) {
		svc, snapshotRepo := newTestReporter(t)

		expected := []*domain.AdSnapshotEntry{
			{ID: 1, AdID: 101, Date: start},
			{ID: 2, AdID: 102, Date: end},
		}
		snapshotRepo.EXPECT().GetByDateRange(start, end).Return(expected, nil)

		snapshots, err := svc.ListSnapshots(start, end)
		require.NoError(t, err)
		assert.Equal(t, expected, snapshots)
	})

	t.Run("valida antes de acessar o banco", func(t *testing.T) {
		tests := []struct {
			name      string
			start     time.Time
			end       time.Time
			wantField string
		}{
			{name: "data inicial ausente", end: end, wantField: "start_date"},
			{name: "data final ausente", start: start, wantField: "end_date"},
			{name: "data final anterior à inicial", start: end, end: start, wantField: "end_date"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _ := newTestReporter(t)

				_, err := svc.ListSnapshots(tt.start, tt.end)

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
			})
		}
	})

	t.Run("propaga erro do repositório", func(t *testing.T) {
		svc, snapshotRepo := newTestReporter(t)

		snapshotRepo.EXPECT().GetByDateRange(start, end).Return(nil, assert.AnError)

		_, err := svc.ListSnapshots(start, end)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGetSnapshot(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("devolve o snapshot do par anúncio e data", func(t *testing.T) {
		svc, snapshotRepo := newTestReporter(t)

		expected := &domain.AdSnapshotEntry{ID: 1, AdID: 101, Date: date, Row: &domain.AdRow{ID: 101}}
		snapshotRepo.EXPECT().GetByAdIDAndDate(int64(101), date).Return(expected, nil)

		snapshot, err := svc.GetSnapshot(101, date)
		require.NoError(t, err)
		assert.Equal(t, expected, snapshot)
	})

	t.Run("nil quando não há snapshot capturado", func(t *testing.T) {
		svc, snapshotRepo := newTestReporter(t)

		snapshotRepo.EXPECT().GetByAdIDAndDate(int64(101), date).Return(nil, nil)

		snapshot, err := svc.GetSnapshot(101, date)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("valida identificador e data", func(t *testing.T) {
		svc, _ := newTestReporter(t)

		var validationErr *ValidationError

		_, err := svc.GetSnapshot(0, date)
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ad_id", validationErr.Field)

		_, err = svc.GetSnapshot(-5, date)
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ad_id", validationErr.Field)

		_, err = svc.GetSnapshot(101, time.Time{})
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "date", validationErr.Field)
	})
}
