package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying"
	"github.com/vfg2006/ad-transparency-api/pkg/apiErrors"
	"github.com/vfg2006/ad-transparency-api/pkg/utils"
)

// CommercialContentQueryRequest é o corpo aceito pela rota de conteúdo comercial
type CommercialContentQueryRequest struct {
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	CreatorCountryCode string   `json:"creator_country_code"`
	CreatorUsernames   []string `json:"creator_usernames"`
	MaxCount           int      `json:"max_count"`
	MaxPages           int      `json:"max_pages"`
	Tolerant           bool     `json:"tolerant"`
}

func QueryCommercialContents(service querying.QueryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - QueryCommercialContents")

		var req CommercialContentQueryRequest
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

		query := &domain.CommercialContentQuery{
			StartDate:          *startDate,
			EndDate:            *endDate,
			CreatorCountryCode: req.CreatorCountryCode,
			CreatorUsernames:   req.CreatorUsernames,
			MaxCount:           req.MaxCount,
			MaxPages:           req.MaxPages,
			Tolerant:           req.Tolerant,
		}

		table, err := service.QueryCommercialContents(query)
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
