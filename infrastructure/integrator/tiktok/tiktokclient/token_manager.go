package tiktokclient

import (
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-transparency-api/internal/config"
)

// TokenManager gerencia o token de acesso da API de transparência.
// Cada instância é dona das próprias credenciais e do próprio token: não há
// estado global de processo, clientes independentes não compartilham sessão.
type TokenManager struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.Mutex
	clientKey    string
	clientSecret string
	token        *Token
}

// NewTokenManager cria um gerenciador de tokens. As credenciais da config
// ficam armazenadas, mas nenhum token é obtido aqui: Authenticate precisa ser
// chamado explicitamente antes da primeira consulta.
func NewTokenManager(cfg *config.Config, httpClient *http.Client) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &TokenManager{
		baseURL:      cfg.TikTok.BaseURL,
		httpClient:   httpClient,
		clientKey:    cfg.TikTok.ClientKey,
		clientSecret: cfg.TikTok.ClientSecret,
	}
}

// Authenticate troca as credenciais por um token e as persiste para os
// refreshes seguintes. Falha de autenticação não é fatal: o erro volta para o
// chamador decidir.
func (tm *TokenManager) Authenticate(clientKey, clientSecret string) (*Token, error) {
	token, err := exchangeCredentials(tm.httpClient, tm.baseURL, clientKey, clientSecret)
	if err != nil {
		return nil, err
	}

	tm.mu.Lock()
	tm.clientKey = clientKey
	tm.clientSecret = clientSecret
	tm.token = token
	tm.mu.Unlock()

	logrus.WithField("expires_at", token.ExpiresAt.Format(time.RFC3339)).
		Info("Token de acesso obtido com sucesso")

	return token, nil
}

// GetToken devolve o token vigente. Sem token emitido, sinaliza
// ErrAuthRequired (nunca dispara prompt no meio de uma consulta). Token
// expirado força uma única reemissão a partir das credenciais armazenadas,
// persistida antes de retornar.
func (tm *TokenManager) GetToken() (*Token, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token == nil {
		return nil, tiktokdomain.ErrAuthRequired
	}

	if tm.token.Valid(time.Now()) {
		return tm.token, nil
	}

	logrus.Info("Token expirado, reemitindo a partir das credenciais armazenadas")

	token, err := exchangeCredentials(tm.httpClient, tm.baseURL, tm.clientKey, tm.clientSecret)
	if err != nil {
		return nil, err
	}

	tm.token = token
	return tm.token, nil
}
