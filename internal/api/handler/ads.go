package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying"
	"github.com/vfg2006/ad-transparency-api/pkg/apiErrors"
	"github.com/vfg2006/ad-transparency-api/pkg/utils"
)

// AdQueryRequest é o corpo aceito pela rota de consulta de anúncios
type AdQueryRequest struct {
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	CountryCode           string  `json:"country_code"`
	SearchTerm            string  `json:"search_term"`
	SearchType            string  `json:"search_type"`
	AdvertiserBusinessIDs []int64 `json:"advertiser_business_ids"`
	UsersSeenMin          string  `json:"users_seen_min"`
	UsersSeenMax          string  `json:"users_seen_max"`
	MaxCount              int     `json:"max_count"`
	MaxPages              int     `json:"max_pages"`
	IncludeDetails        bool    `json:"include_details"`
	Tolerant              bool    `json:"tolerant"`
}

func QueryAds(service querying.QueryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - QueryAds")

		var req AdQueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		query := &domain.AdQuery{
			StartDate:             *startDate,
			EndDate:               *endDate,
			CountryCode:           req.CountryCode,
			SearchTerm:            req.SearchTerm,
			SearchType:            req.SearchType,
			AdvertiserBusinessIDs: req.AdvertiserBusinessIDs,
			UsersSeenMin:          req.UsersSeenMin,
			UsersSeenMax:          req.UsersSeenMax,
			MaxCount:              req.MaxCount,
			MaxPages:              req.MaxPages,
			IncludeDetails:        req.IncludeDetails,
			Tolerant:              req.Tolerant,
		}

		table, err := service.QueryAds(query)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(table)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func GetAdDetail(service querying.QueryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAdDetail")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não fornecido", nil)
			return
		}

		adID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		row, err := service.GetAdDetails(adID)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(row)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleQueryError traduz os erros das consultas de transparência para a resposta da API
func handleQueryError(w http.ResponseWriter, err error) {
	var validationErr *querying.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Message, map[string]any{
			"field": validationErr.Field,
		})
		return
	}

	if errors.Is(err, tiktokdomain.ErrAuthRequired) {
		apiErrors.WriteError(w, apiErrors.ErrVendorAuthRequired, "Autenticação pendente junto à API de transparência", nil)
		return
	}

	var authErr *tiktokdomain.AuthError
	if errors.As(err, &authErr) {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha na autenticação com a API de transparência", nil)
		return
	}

	var httpErr *tiktokdomain.HTTPError
	if errors.As(err, &httpErr) {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro na API de transparência", map[string]any{
			"upstream_status": httpErr.Status,
		})
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar anúncios", nil)
}
