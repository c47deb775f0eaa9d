package tiktokclient

import (
	"net/http"
	"time"

	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-transparency-api/internal/config"
)

// Client expõe as operações de leitura da API de transparência de anúncios.
type Client interface {
	Authenticate(clientKey, clientSecret string) (*Token, error)
	QueryAds(req *tiktokdomain.AdQueryRequest, fields []string, opts PageOptions) ([]tiktokdomain.AdItem, *PageStats, error)
	GetAdDetails(adID int64, fields []string) (*tiktokdomain.AdDetailData, error)
	QueryAdvertisers(req *tiktokdomain.AdvertiserQueryRequest) ([]tiktokdomain.Advertiser, error)
	QueryCommercialContents(req *tiktokdomain.ContentQueryRequest, opts PageOptions) ([]tiktokdomain.CommercialContent, *PageStats, error)
}

// TikTokClient implementa Client com I/O bloqueante e sequencial: uma
// requisição pendente por vez, sem retries e sem cache.
type TikTokClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &TikTokClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Authenticate delega para o TokenManager.
func (c *TikTokClient) Authenticate(clientKey, clientSecret string) (*Token, error) {
	return c.TokenManager.Authenticate(clientKey, clientSecret)
}
