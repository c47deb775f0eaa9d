package tiktokclient

import (
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

const contentQueryPath = "/v2/research/adlib/commercial_content/query/"

// QueryCommercialContents busca conteúdo comercial página a página, com o
// mesmo protocolo de cursor da consulta de anúncios.
func (c *TikTokClient) QueryCommercialContents(req *tiktokdomain.ContentQueryRequest, opts PageOptions) ([]tiktokdomain.CommercialContent, *PageStats, error) {
	items := make([]tiktokdomain.CommercialContent, 0)

	stats, err := paginate(opts, func(searchID string) (int, bool, string, error) {
		token, err := c.TokenManager.GetToken()
		if err != nil {
			return 0, false, "", err
		}

		req.SearchID = searchID

		raw, err := c.execute(contentQueryPath, nil, req, token)
		if err != nil {
			return 0, false, "", err
		}

		var page tiktokdomain.ContentQueryData
		if err := json.Unmarshal(raw, &page); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return 0, false, "", err
		}

		items = append(items, page.CommercialContents...)

		return len(page.CommercialContents), page.HasMore, page.SearchID, nil
	})
	if err != nil {
		return nil, stats, err
	}

	logrus.WithFields(logrus.Fields{
		"contents": len(items),
		"pages":    stats.Pages,
	}).Debug("Consulta de conteúdo comercial concluída")

	return items, stats, nil
}
