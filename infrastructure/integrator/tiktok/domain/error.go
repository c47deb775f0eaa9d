package tiktokdomain

import (
	"errors"
	"fmt"
)

// ErrAuthRequired é retornado quando nenhum token foi obtido ainda.
// As funções de consulta nunca disparam autenticação interativa: o chamador
// precisa chamar Authenticate antes.
var ErrAuthRequired = errors.New("nenhum token de acesso disponível, autentique-se antes de consultar a API")

// AuthError representa a rejeição da troca de credenciais pelo servidor OAuth.
type AuthError struct {
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("autenticação rejeitada pela API: %s (%s)", e.Description, e.Code)
	}
	return fmt.Sprintf("autenticação rejeitada pela API: %s", e.Code)
}

// HTTPError representa uma resposta não-200 de qualquer endpoint de dados.
// Fatal por padrão; o loop de paginação de anúncios pode optar pelo modo
// tolerante, que encerra a paginação preservando as páginas já acumuladas.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("erro na resposta da API. Status: %d, Mensagem: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("erro na resposta da API. Status: %d", e.Status)
}

// ErrorDetail é o envelope de erro retornado pela API no corpo da resposta.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	LogID   string `json:"log_id,omitempty"`
}
