package querying

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-transparency-api/internal/config"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockTransparencyIntegrator) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockTransparencyIntegrator(ctrl)
	return &Service{cfg: &config.Config{}, integrator: integrator}, integrator
}

func TestService_QueryAds_Validation(t *testing.T) {
	validStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	validEnd := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query *domain.AdQuery
		field string
	}{
		{
			name:  "datas ausentes",
			query: &domain.AdQuery{},
			field: "start_date",
		},
		{
			name: "data inicial anterior ao mínimo da API",
			query: &domain.AdQuery{
				StartDate: time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC),
				EndDate:   validEnd,
			},
			field: "start_date",
		},
		{
			name: "data final antes da inicial",
			query: &domain.AdQuery{
				StartDate: validEnd,
				EndDate:   validStart,
			},
			field: "end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma chamada ao integrador deve acontecer quando a
			// validação falha
			service, _ := newTestService(t)

			table, err := service.QueryAds(tt.query)
			assert.Nil(t, table)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestService_QueryAds_MinDateBoundary(t *testing.T) {
	service, integrator := newTestService(t)

	// Exatamente 2022-10-01 é aceito
	query := &domain.AdQuery{
		StartDate: domain.MinAdPublishedDate,
		EndDate:   domain.MinAdPublishedDate,
	}

	integrator.EXPECT().
		QueryAds(query).
		Return(&domain.AdTable{Rows: []domain.AdRow{}, Pages: 1}, nil)

	table, err := service.QueryAds(query)
	assert.NoError(t, err)
	assert.Equal(t, 1, table.Pages)
}

func TestService_QueryAds_IncludeDetails(t *testing.T) {
	service, integrator := newTestService(t)

	query := &domain.AdQuery{
		StartDate:      time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC),
		IncludeDetails: true,
	}

	baseRows := []domain.AdRow{
		{ID: 101, Status: "active", Reach: 5000},
		{ID: 102, Status: "inactive"},
	}

	integrator.EXPECT().
		QueryAds(query).
		Return(&domain.AdTable{Rows: baseRows, Pages: 1}, nil)

	// O detalhe do anúncio 101 traz status divergente, que não pode
	// sobrescrever a coluna base, e rejection_info, que só existe no detalhe
	integrator.EXPECT().
		GetAdDetails(int64(101)).
		Return(&domain.AdRow{ID: 101, Status: "rejected", RejectionInfo: "conteúdo impróprio", Reach: 9999}, nil)

	integrator.EXPECT().
		GetAdDetails(int64(102)).
		Return(&domain.AdRow{ID: 102, Status: "inactive", AdvertiserBusinessName: "ACME"}, nil)

	table, err := service.QueryAds(query)
	assert.NoError(t, err)
	assert.Len(t, table.Rows, 2)

	assert.Equal(t, "active", table.Rows[0].Status)
	assert.Equal(t, int64(5000), table.Rows[0].Reach)
	assert.Equal(t, "conteúdo impróprio", table.Rows[0].RejectionInfo)

	assert.Equal(t, "ACME", table.Rows[1].AdvertiserBusinessName)
}

func TestService_GetAdDetails_InvalidID(t *testing.T) {
	service, _ := newTestService(t)

	for _, adID := range []int64{0, -1} {
		row, err := service.GetAdDetails(adID)
		assert.Nil(t, row)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ad_id", validationErr.Field)
	}
}

func TestService_QueryAdvertisers(t *testing.T) {
	t.Run("termo vazio é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)

		table, err := service.QueryAdvertisers(&domain.AdvertiserQuery{SearchTerm: "   "})
		assert.Nil(t, table)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "search_term", validationErr.Field)
	})

	t.Run("termo acima de 50 caracteres é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)

		table, err := service.QueryAdvertisers(&domain.AdvertiserQuery{
			SearchTerm: strings.Repeat("a", 51),
		})
		assert.Nil(t, table)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("termo com exatamente 50 caracteres é aceito", func(t *testing.T) {
		service, integrator := newTestService(t)

		term := strings.Repeat("b", 50)
		integrator.EXPECT().
			QueryAdvertisers(gomock.Any()).
			Return(&domain.AdvertiserTable{Rows: []domain.AdvertiserRow{{BusinessID: 1}}}, nil)

		table, err := service.QueryAdvertisers(&domain.AdvertiserQuery{SearchTerm: term})
		assert.NoError(t, err)
		assert.Len(t, table.Rows, 1)
	})

	t.Run("termo com espaços nas bordas é aparado antes do envio", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			QueryAdvertisers(gomock.Any()).
			DoAndReturn(func(q *domain.AdvertiserQuery) (*domain.AdvertiserTable, error) {
				assert.Equal(t, "nike", q.SearchTerm)
				return &domain.AdvertiserTable{}, nil
			})

		_, err := service.QueryAdvertisers(&domain.AdvertiserQuery{SearchTerm: "  nike  "})
		assert.NoError(t, err)
	})
}

func TestService_QueryCommercialContents_Validation(t *testing.T) {
	service, _ := newTestService(t)

	table, err := service.QueryCommercialContents(&domain.CommercialContentQuery{
		StartDate: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Nil(t, table)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "end_date", validationErr.Field)
}
