package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/infrastructure/repository"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
)

// Reporter expõe a leitura dos snapshots de anúncios persistidos pela
// captura diária.
type Reporter interface {
	ListSnapshots(startDate, endDate time.Time) ([]*domain.AdSnapshotEntry, error)
	GetSnapshot(adID int64, date time.Time) (*domain.AdSnapshotEntry, error)
}

type Service struct {
	adSnapshotRepo repository.AdSnapshotRepository
}

func NewService(adSnapshotRepo repository.AdSnapshotRepository) Reporter {
	return &Service{
		adSnapshotRepo: adSnapshotRepo,
	}
}

// ListSnapshots devolve os snapshots do intervalo de datas, em ordem de data
// e de anúncio. Valida os parâmetros antes de qualquer acesso ao banco.
func (s *Service) ListSnapshots(startDate, endDate time.Time) ([]*domain.AdSnapshotEntry, error) {
	if startDate.IsZero() {
		return nil, newValidationError("start_date", "data inicial é obrigatória")
	}
	if endDate.IsZero() {
		return nil, newValidationError("end_date", "data final é obrigatória")
	}
	if endDate.Before(startDate) {
		return nil, newValidationError("end_date", "data final anterior à data inicial")
	}

	snapshots, err := s.adSnapshotRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar snapshots de anúncios")
		return nil, err
	}

	return snapshots, nil
}

// GetSnapshot devolve o snapshot de um anúncio em uma data específica, ou nil
// quando não há snapshot capturado para o par.
func (s *Service) GetSnapshot(adID int64, date time.Time) (*domain.AdSnapshotEntry, error) {
	if adID <= 0 {
		return nil, newValidationError("ad_id", "identificador do anúncio deve ser um inteiro positivo")
	}
	if date.IsZero() {
		return nil, newValidationError("date", "data do snapshot é obrigatória")
	}

	snapshot, err := s.adSnapshotRepo.GetByAdIDAndDate(adID, date)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar snapshot de anúncio")
		return nil, err
	}

	return snapshot, nil
}
