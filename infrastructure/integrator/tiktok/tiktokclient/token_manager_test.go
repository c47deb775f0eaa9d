package tiktokclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-transparency-api/internal/config"
)

func newOAuthServer(t *testing.T, expiresIn int64, exchanges *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/oauth/token/", r.URL.Path)

		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostFormValue("grant_type"))

		if r.PostFormValue("client_key") != "key" || r.PostFormValue("client_secret") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"invalid_client","error_description":"credenciais inválidas"}`)
			return
		}

		n := atomic.AddInt32(exchanges, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":%d}`, n, expiresIn)
	}))
}

func tokenManagerForServer(srv *httptest.Server) *TokenManager {
	cfg := &config.Config{
		TikTok: config.TikTok{
			BaseURL:      srv.URL,
			ClientKey:    "key",
			ClientSecret: "secret",
		},
	}
	return NewTokenManager(cfg, srv.Client())
}

func TestTokenManager_GetTokenWithoutAuthenticate(t *testing.T) {
	var exchanges int32
	srv := newOAuthServer(t, 7200, &exchanges)
	defer srv.Close()

	tm := tokenManagerForServer(srv)

	token, err := tm.GetToken()
	assert.Nil(t, token)
	assert.ErrorIs(t, err, tiktokdomain.ErrAuthRequired)
	// Nenhuma troca de credenciais deve acontecer sem Authenticate
	assert.Equal(t, int32(0), atomic.LoadInt32(&exchanges))
}

func TestTokenManager_AuthenticateAndGetToken(t *testing.T) {
	var exchanges int32
	srv := newOAuthServer(t, 7200, &exchanges)
	defer srv.Close()

	tm := tokenManagerForServer(srv)

	issued, err := tm.Authenticate("key", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-1", issued.AccessToken)
	assert.Equal(t, "Bearer", issued.TokenType)
	assert.True(t, issued.ExpiresAt.After(time.Now()))

	// Token válido é devolvido sem nova troca
	got, err := tm.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "token-1", got.AccessToken)
	assert.Equal(t, int32(1), atomic.LoadInt32(&exchanges))
}

func TestTokenManager_ExpiredTokenRefreshesOnce(t *testing.T) {
	var exchanges int32
	srv := newOAuthServer(t, 7200, &exchanges)
	defer srv.Close()

	tm := tokenManagerForServer(srv)

	issued, err := tm.Authenticate("key", "secret")
	require.NoError(t, err)

	// Forçar a expiração do token vigente
	tm.mu.Lock()
	tm.token.ExpiresAt = time.Now().Add(-time.Minute)
	expiredAt := tm.token.ExpiresAt
	tm.mu.Unlock()

	got, err := tm.GetToken()
	require.NoError(t, err)
	assert.NotEqual(t, issued.AccessToken, got.AccessToken)
	assert.True(t, got.ExpiresAt.After(expiredAt))
	assert.Equal(t, int32(2), atomic.LoadInt32(&exchanges))

	// Chamada seguinte usa o token reemitido, sem nova troca
	again, err := tm.GetToken()
	require.NoError(t, err)
	assert.Equal(t, got.AccessToken, again.AccessToken)
	assert.Equal(t, int32(2), atomic.LoadInt32(&exchanges))
}

func TestTokenManager_AuthenticateRejected(t *testing.T) {
	var exchanges int32
	srv := newOAuthServer(t, 7200, &exchanges)
	defer srv.Close()

	tm := tokenManagerForServer(srv)

	token, err := tm.Authenticate("key", "wrong")
	assert.Nil(t, token)

	var authErr *tiktokdomain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid_client", authErr.Code)

	// Falha na autenticação não deixa token residual
	_, err = tm.GetToken()
	assert.ErrorIs(t, err, tiktokdomain.ErrAuthRequired)
}

func TestToken_Valid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token *Token
		want  bool
	}{
		{"token nil", nil, false},
		{"sem access_token", &Token{ExpiresAt: now.Add(time.Hour)}, false},
		{"expirado", &Token{AccessToken: "t", ExpiresAt: now.Add(-time.Second)}, false},
		{"vigente", &Token{AccessToken: "t", ExpiresAt: now.Add(time.Hour)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Valid(now))
		})
	}
}
