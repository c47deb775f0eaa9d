package querying

import (
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/internal/config"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
)

const maxSearchTermLength = 50

// Service valida as precondições de cada operação e delega a busca ao
// integrador. Toda validação acontece antes de qualquer I/O.
type Service struct {
	cfg        *config.Config
	integrator TransparencyIntegrator
}

func NewService(cfg *config.Config, integrator TransparencyIntegrator) QueryService {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// QueryAds valida o período e executa a consulta paginada de anúncios. Com
// IncludeDetails, cada linha recebe um lookup de detalhe juntado por left
// join sobre o id: colunas já presentes na linha base nunca são
// sobrescritas.
func (s *Service) QueryAds(q *domain.AdQuery) (*domain.AdTable, error) {
	if q.StartDate.IsZero() || q.EndDate.IsZero() {
		return nil, newValidationError("start_date", "datas de início e fim são obrigatórias")
	}

	if q.StartDate.Before(domain.MinAdPublishedDate) {
		return nil, newValidationError("start_date", "a data inicial deve ser igual ou posterior a 2022-10-01")
	}

	if q.EndDate.Before(q.StartDate) {
		return nil, newValidationError("end_date", "a data final deve ser igual ou posterior à inicial")
	}

	table, err := s.integrator.QueryAds(q)
	if err != nil {
		return nil, err
	}

	if q.IncludeDetails {
		for i := range table.Rows {
			detail, err := s.integrator.GetAdDetails(table.Rows[i].ID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_id": table.Rows[i].ID,
					"error": err.Error(),
				}).Error("ads: failed to fetch details for ad row")
				return nil, err
			}

			table.Rows[i].MergeDetails(detail)
		}
	}

	return table, nil
}

// GetAdDetails valida o identificador e busca o detalhe de um anúncio.
func (s *Service) GetAdDetails(adID int64) (*domain.AdRow, error) {
	if adID <= 0 {
		return nil, newValidationError("ad_id", "identificador numérico de anúncio é obrigatório")
	}

	return s.integrator.GetAdDetails(adID)
}

// QueryAdvertisers valida o termo de pesquisa (obrigatório, até 50
// caracteres) e busca anunciantes. Sem filtro de datas.
func (s *Service) QueryAdvertisers(q *domain.AdvertiserQuery) (*domain.AdvertiserTable, error) {
	term := strings.TrimSpace(q.SearchTerm)
	if term == "" {
		return nil, newValidationError("search_term", "termo de pesquisa é obrigatório")
	}

	if utf8.RuneCountInString(term) > maxSearchTermLength {
		return nil, newValidationError("search_term", "termo de pesquisa deve ter no máximo 50 caracteres")
	}

	q.SearchTerm = term
	return s.integrator.QueryAdvertisers(q)
}

// QueryCommercialContents valida o período (mesma regra dos anúncios) e
// executa a consulta paginada de conteúdo comercial.
func (s *Service) QueryCommercialContents(q *domain.CommercialContentQuery) (*domain.CommercialContentTable, error) {
	if q.StartDate.IsZero() || q.EndDate.IsZero() {
		return nil, newValidationError("start_date", "datas de início e fim são obrigatórias")
	}

	if q.StartDate.Before(domain.MinAdPublishedDate) {
		return nil, newValidationError("start_date", "a data inicial deve ser igual ou posterior a 2022-10-01")
	}

	if q.EndDate.Before(q.StartDate) {
		return nil, newValidationError("end_date", "a data final deve ser igual ou posterior à inicial")
	}

	return s.integrator.QueryCommercialContents(q)
}
