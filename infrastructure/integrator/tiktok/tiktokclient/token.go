package tiktokclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

const tokenPath = "/v2/oauth/token/"

// Token representa um token de acesso emitido pelo endpoint OAuth.
// ExpiresAt é sempre derivado do instante da emissão + ExpiresIn.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid informa se o token ainda pode ser usado no instante dado.
func (t *Token) Valid(now time.Time) bool {
	return t != nil && t.AccessToken != "" && now.Before(t.ExpiresAt)
}

// tokenResponse é o corpo retornado pelo endpoint OAuth: ou o token, ou o
// par error/error_description.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// exchangeCredentials troca client_key/client_secret por um token via grant
// client-credentials. Não-200 ou campo error no corpo viram AuthError, que o
// chamador decide como tratar.
func exchangeCredentials(httpClient *http.Client, baseURL, clientKey, clientSecret string) (*Token, error) {
	if clientKey == "" || clientSecret == "" {
		return nil, &tiktokdomain.AuthError{Code: "missing_credentials", Description: "client_key e client_secret são obrigatórios"}
	}

	form := url.Values{}
	form.Set("client_key", clientKey)
	form.Set("client_secret", clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequest(http.MethodPost, baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	issuedAt := time.Now()

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar credenciais por token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do endpoint de token: %w", err)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do endpoint de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK || tokenResp.Error != "" {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"error":  tokenResp.Error,
		}).Warn("Troca de credenciais rejeitada pelo servidor OAuth")

		return nil, &tiktokdomain.AuthError{
			Code:        tokenResp.Error,
			Description: tokenResp.ErrorDescription,
		}
	}

	if tokenResp.AccessToken == "" {
		return nil, &tiktokdomain.AuthError{Code: "empty_token", Description: "token retornado pela API é vazio"}
	}

	return &Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
		ExpiresIn:   tokenResp.ExpiresIn,
		ExpiresAt:   issuedAt.Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}
