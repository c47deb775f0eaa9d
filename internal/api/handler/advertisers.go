package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying"
	"github.com/vfg2006/ad-transparency-api/pkg/apiErrors"
)

// AdvertiserQueryRequest é o corpo aceito pela rota de consulta de anunciantes
type AdvertiserQueryRequest struct {
	SearchTerm string `json:"search_term"`
	MaxCount   int    `json:"max_count"`
}

func QueryAdvertisers(service querying.QueryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - QueryAdvertisers")

		var req AdvertiserQueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		query := &domain.AdvertiserQuery{
			SearchTerm: req.SearchTerm,
			MaxCount:   req.MaxCount,
		}

		table, err := service.QueryAdvertisers(query)
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
