package tiktokclient

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

const adDetailPath = "/v2/research/adlib/ad/detail/"

// DefaultAdDetailFields inclui, além da projeção base, a segmentação do
// grupo de anúncios que só o endpoint de detalhe expõe.
var DefaultAdDetailFields = []string{
	"ad.id",
	"ad.first_shown_date",
	"ad.last_shown_date",
	"ad.status",
	"ad.image_urls",
	"ad.videos",
	"ad.reach",
	"ad.rejection_info",
	"advertiser.business_id",
	"advertiser.business_name",
	"advertiser.paid_for_by",
	"ad_group.targeting_info",
}

// GetAdDetails busca o detalhe de um único anúncio. Sem paginação: uma
// requisição, um resultado.
func (c *TikTokClient) GetAdDetails(adID int64, fields []string) (*tiktokdomain.AdDetailData, error) {
	if len(fields) == 0 {
		fields = DefaultAdDetailFields
	}

	token, err := c.TokenManager.GetToken()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))

	raw, err := c.execute(adDetailPath, params, &tiktokdomain.AdDetailRequest{AdID: adID}, token)
	if err != nil {
		return nil, err
	}

	var detail tiktokdomain.AdDetailData
	if err := json.Unmarshal(raw, &detail); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &detail, nil
}
