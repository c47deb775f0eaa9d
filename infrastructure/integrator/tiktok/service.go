package tiktok

import (
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-transparency-api/internal/config"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
)

// TikTokIntegrator traduz consultas da aplicação para o protocolo da API de
// transparência e achata as respostas em tabelas.
type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// QueryAds executa uma sessão paginada de consulta de anúncios e devolve a
// tabela achatada, na ordem do servidor.
func (s *TikTokIntegrator) QueryAds(q *domain.AdQuery) (*domain.AdTable, error) {
	req := &tiktokdomain.AdQueryRequest{
		Filters: tiktokdomain.AdFilters{
			AdPublishedDateRange: &tiktokdomain.DateRange{
				Min: domain.WireDate(q.StartDate),
				Max: domain.WireDate(q.EndDate),
			},
			CountryCode:           q.CountryCode,
			AdvertiserBusinessIDs: q.AdvertiserBusinessIDs,
		},
		SearchTerm: q.SearchTerm,
		SearchType: q.SearchType,
		MaxCount:   q.MaxCount,
	}

	if q.UsersSeenMin != "" || q.UsersSeenMax != "" {
		req.Filters.UniqueUsersSeenSizeRange = &tiktokdomain.UsersSizeRange{
			Min: q.UsersSeenMin,
			Max: q.UsersSeenMax,
		}
	}

	items, stats, err := s.Client.QueryAds(req, nil, tiktokclient.PageOptions{
		MaxPages: q.MaxPages,
		Tolerant: q.Tolerant,
	})
	if err != nil {
		logrus.WithError(err).Error("ads: failed to query ads from API")
		return nil, err
	}

	table := &domain.AdTable{
		Rows:      make([]domain.AdRow, 0, len(items)),
		Pages:     stats.Pages,
		Truncated: stats.Truncated,
	}

	for _, item := range items {
		row, err := FlattenAd(item)
		if err != nil {
			logrus.WithError(err).Error("ads: failed to flatten ad record")
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// GetAdDetails busca e achata o detalhe de um anúncio.
func (s *TikTokIntegrator) GetAdDetails(adID int64) (*domain.AdRow, error) {
	detail, err := s.Client.GetAdDetails(adID, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("ads: failed to get ad details from API")
		return nil, err
	}

	row, err := FlattenAdDetail(detail)
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// QueryAdvertisers busca e achata anunciantes. Requisição única, sem cursor.
func (s *TikTokIntegrator) QueryAdvertisers(q *domain.AdvertiserQuery) (*domain.AdvertiserTable, error) {
	advertisers, err := s.Client.QueryAdvertisers(&tiktokdomain.AdvertiserQueryRequest{
		SearchTerm: q.SearchTerm,
		MaxCount:   q.MaxCount,
	})
	if err != nil {
		logrus.WithError(err).Error("advertisers: failed to query advertisers from API")
		return nil, err
	}

	table := &domain.AdvertiserTable{Rows: make([]domain.AdvertiserRow, 0, len(advertisers))}
	for _, adv := range advertisers {
		table.Rows = append(table.Rows, FlattenAdvertiser(adv))
	}

	return table, nil
}

// QueryCommercialContents executa a sessão paginada de conteúdo comercial e
// achata cada item, com a explosão de brand_names em uma linha por marca.
func (s *TikTokIntegrator) QueryCommercialContents(q *domain.CommercialContentQuery) (*domain.CommercialContentTable, error) {
	req := &tiktokdomain.ContentQueryRequest{
		Filters: tiktokdomain.ContentFilters{
			ContentPublishedDateRange: &tiktokdomain.DateRange{
				Min: domain.WireDate(q.StartDate),
				Max: domain.WireDate(q.EndDate),
			},
			CreatorCountryCode: q.CreatorCountryCode,
			CreatorUsernames:   q.CreatorUsernames,
		},
		MaxCount: q.MaxCount,
	}

	items, stats, err := s.Client.QueryCommercialContents(req, tiktokclient.PageOptions{
		MaxPages: q.MaxPages,
		Tolerant: q.Tolerant,
	})
	if err != nil {
		logrus.WithError(err).Error("contents: failed to query commercial contents from API")
		return nil, err
	}

	table := &domain.CommercialContentTable{
		Rows:      make([]domain.CommercialContentRow, 0, len(items)),
		Pages:     stats.Pages,
		Truncated: stats.Truncated,
	}

	for _, item := range items {
		table.Rows = append(table.Rows, FlattenCommercialContent(item)...)
	}

	return table, nil
}
