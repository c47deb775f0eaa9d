package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/reporting"
	"github.com/vfg2006/ad-transparency-api/pkg/apiErrors"
	"github.com/vfg2006/ad-transparency-api/pkg/utils"
)

// ListAdSnapshots devolve os snapshots capturados em um intervalo de datas
// (query params start_date e end_date, formato YYYY-MM-DD).
func ListAdSnapshots(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAdSnapshots")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		snapshots, err := service.ListSnapshots(*startDate, *endDate)
		if err != nil {
			handleSnapshotError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshots)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetAdSnapshot devolve o snapshot de um anúncio em uma data específica
// (path param ad_id, query param date).
func GetAdSnapshot(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAdSnapshot")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("ad_id")
		adID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		snapshot, err := service.GetSnapshot(adID, *date)
		if err != nil {
			handleSnapshotError(w, err)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Snapshot não encontrado para o anúncio e data informados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshot)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleSnapshotError traduz os erros da leitura de snapshots para a resposta da API
func handleSnapshotError(w http.ResponseWriter, err error) {
	var validationErr *reporting.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Message, map[string]any{
			"field": validationErr.Field,
		})
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar snapshots de anúncios", nil)
}
