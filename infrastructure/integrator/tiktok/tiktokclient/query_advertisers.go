package tiktokclient

import (
	"errors"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

const advertiserQueryPath = "/v2/research/adlib/advertiser/query/"

// QueryAdvertisers busca anunciantes pelo termo de pesquisa. O endpoint não
// pagina: uma única requisição devolve a lista completa.
func (c *TikTokClient) QueryAdvertisers(req *tiktokdomain.AdvertiserQueryRequest) ([]tiktokdomain.Advertiser, error) {
	token, err := c.TokenManager.GetToken()
	if err != nil {
		return nil, err
	}

	raw, err := c.execute(advertiserQueryPath, nil, req, token)
	if err != nil {
		return nil, err
	}

	var data tiktokdomain.AdvertiserQueryData
	if err := json.Unmarshal(raw, &data); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if data.Advertisers == nil {
		return nil, errors.New("no data found")
	}

	return data.Advertisers, nil
}
