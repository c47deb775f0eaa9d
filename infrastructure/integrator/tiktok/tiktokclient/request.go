package tiktokclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// apiEnvelope é o envelope comum das respostas da API: o payload útil em
// data e, em caso de falha, os detalhes em error.
type apiEnvelope struct {
	Data  jsoniter.RawMessage       `json:"data"`
	Error *tiktokdomain.ErrorDetail `json:"error,omitempty"`
}

// execute envia um POST autenticado com corpo JSON e parâmetros de
// query-string separados do corpo. Status diferente de 200 vira HTTPError com
// o código e a mensagem do servidor; o chamador decide se propaga ou, no modo
// tolerante da paginação, encerra o loop com resultados parciais.
func (c *TikTokClient) execute(path string, params url.Values, body interface{}, token *Token) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	endpoint := c.Cfg.TikTok.BaseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var envelope apiEnvelope
	if unmarshalErr := json.Unmarshal(raw, &envelope); unmarshalErr != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", unmarshalErr)
	}

	if resp.StatusCode != http.StatusOK {
		message := ""
		if envelope.Error != nil {
			message = envelope.Error.Message
		}

		logrus.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Resposta não-200 da API de transparência")

		return nil, &tiktokdomain.HTTPError{Status: resp.StatusCode, Message: message}
	}

	return envelope.Data, nil
}
