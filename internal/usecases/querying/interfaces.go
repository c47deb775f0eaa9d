package querying

import "github.com/vfg2006/ad-transparency-api/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// TransparencyIntegrator é a visão do usecase sobre o integrador da API de
// transparência: consultas já achatadas em tabelas.
type TransparencyIntegrator interface {
	QueryAds(q *domain.AdQuery) (*domain.AdTable, error)
	GetAdDetails(adID int64) (*domain.AdRow, error)
	QueryAdvertisers(q *domain.AdvertiserQuery) (*domain.AdvertiserTable, error)
	QueryCommercialContents(q *domain.CommercialContentQuery) (*domain.CommercialContentTable, error)
}

// QueryService é o contrato exposto aos handlers e ao agendador.
type QueryService interface {
	QueryAds(q *domain.AdQuery) (*domain.AdTable, error)
	GetAdDetails(adID int64) (*domain.AdRow, error)
	QueryAdvertisers(q *domain.AdvertiserQuery) (*domain.AdvertiserTable, error)
	QueryCommercialContents(q *domain.CommercialContentQuery) (*domain.CommercialContentTable, error)
}
