package tiktokclient

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

const adQueryPath = "/v2/research/adlib/ad/query/"

// DefaultAdFields é a projeção padrão solicitada na consulta de anúncios.
var DefaultAdFields = []string{
	"ad.id",
	"ad.first_shown_date",
	"ad.last_shown_date",
	"ad.status",
	"ad.image_urls",
	"ad.videos",
	"ad.reach",
	"advertiser.business_id",
	"advertiser.business_name",
	"advertiser.paid_for_by",
}

// QueryAds busca anúncios página a página, carregando o search_id devolvido
// pelo servidor entre requisições. Os filtros e o corpo permanecem constantes
// durante a sessão; apenas o cursor muda. O token é relido a cada página,
// então um refresh disparado no meio da sessão é aplicado às páginas
// seguintes.
func (c *TikTokClient) QueryAds(req *tiktokdomain.AdQueryRequest, fields []string, opts PageOptions) ([]tiktokdomain.AdItem, *PageStats, error) {
	if len(fields) == 0 {
		fields = DefaultAdFields
	}

	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))

	items := make([]tiktokdomain.AdItem, 0)

	stats, err := paginate(opts, func(searchID string) (int, bool, string, error) {
		token, err := c.TokenManager.GetToken()
		if err != nil {
			return 0, false, "", err
		}

		req.SearchID = searchID

		raw, err := c.execute(adQueryPath, params, req, token)
		if err != nil {
			return 0, false, "", err
		}

		var page tiktokdomain.AdQueryData
		if err := json.Unmarshal(raw, &page); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return 0, false, "", err
		}

		items = append(items, page.Ads...)

		return len(page.Ads), page.HasMore, page.SearchID, nil
	})
	if err != nil {
		return nil, stats, err
	}

	logrus.WithFields(logrus.Fields{
		"ads":   len(items),
		"pages": stats.Pages,
	}).Debug("Consulta de anúncios concluída")

	return items, stats, nil
}
