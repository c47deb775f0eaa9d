package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/infrastructure/repository"
	"github.com/vfg2006/ad-transparency-api/internal/config"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying"
	"github.com/vfg2006/ad-transparency-api/pkg/utils"
)

// AdsSyncConfig representa a configuração do agendador de snapshots de anúncios
type AdsSyncConfig struct {
	CronSchedule        string
	CountryCode         string
	SearchTerm          string
	LookbackDays        int
	MaxPages            int
	RequestDelaySeconds int
	RetentionDays       int
	SyncEnabled         bool
}

// AdsSyncService gerencia o agendamento e execução da captura diária de anúncios
type AdsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdsSyncConfig
	appConfig           *config.Config
	queryService        querying.QueryService
	adSnapshotRepo      repository.AdSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
}

// NewAdsSyncService cria uma nova instância do serviço de captura de anúncios
func NewAdsSyncService(
	queryService querying.QueryService,
	adSnapshotRepo repository.AdSnapshotRepository,
	appConfig *config.Config,
) *AdsSyncService {
	// Criar a configuração com base na config global
	syncConfig := AdsSyncConfig{
		CronSchedule:        appConfig.AdsSync.CronSchedule,
		CountryCode:         appConfig.AdsSync.CountryCode,
		SearchTerm:          appConfig.AdsSync.SearchTerm,
		LookbackDays:        appConfig.AdsSync.LookbackDays,
		MaxPages:            appConfig.AdsSync.MaxPages,
		RequestDelaySeconds: appConfig.AdsSync.RequestDelaySeconds,
		RetentionDays:       appConfig.AdsSync.RetentionDays,
		SyncEnabled:         appConfig.AdsSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"country_code":          syncConfig.CountryCode,
		"lookback_days":         syncConfig.LookbackDays,
		"max_pages":             syncConfig.MaxPages,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de anúncios carregada")

	return &AdsSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		queryService:   queryService,
		adSnapshotRepo: adSnapshotRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AdsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de anúncios")

	// Agendar a captura diária
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAds()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de anúncios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAds captura os anúncios publicados na janela configurada e persiste os snapshots
func (s *AdsSyncService) syncAds() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Captura de snapshots de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	runID, err := utils.GenerateID()
	if err != nil {
		runID = startTime.Format("20060102150405")
	}
	s.lastRunID = runID

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	endDate := time.Now().AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays+1)

	logrus.WithFields(logrus.Fields{
		"run_id":       runID,
		"country_code": s.config.CountryCode,
		"search_term":  s.config.SearchTerm,
		"start_date":   startDate.Format(time.DateOnly),
		"end_date":     endDate.Format(time.DateOnly),
	}).Info("Iniciando captura de snapshots de anúncios")

	query := &domain.AdQuery{
		StartDate:   startDate,
		EndDate:     endDate,
		CountryCode: s.config.CountryCode,
		SearchTerm:  s.config.SearchTerm,
		MaxPages:    s.config.MaxPages,
		Tolerant:    true,
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("run_id", runID).Debugf("Consulta de captura montada: %s", utils.PrettyJson(query))
	}

	table, err := s.queryService.QueryAds(query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao consultar anúncios para captura de snapshots")
		return
	}

	if len(table.Rows) == 0 {
		logrus.WithField("run_id", runID).Info("Nenhum anúncio encontrado para a janela configurada")
		s.lastSyncCompletedAt = time.Now()
		return
	}

	if table.Truncated {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"pages":  table.Pages,
		}).Warn("Paginação interrompida antes do fim, snapshot parcial")
	}

	saved := s.saveSnapshots(runID, table.Rows)

	// Aplicar política de retenção
	if s.config.RetentionDays > 0 {
		removed, err := s.adSnapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao aplicar retenção de snapshots de anúncios")
		} else if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"run_id":  runID,
				"removed": removed,
			}).Info("Snapshots antigos removidos pela política de retenção")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": duration.String(),
		"ads":      len(table.Rows),
		"saved":    saved,
		"pages":    table.Pages,
	}).Info("Captura de snapshots de anúncios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// saveSnapshots persiste cada linha de anúncio como snapshot do dia corrente
func (s *AdsSyncService) saveSnapshots(runID string, rows []domain.AdRow) int {
	snapshotDate := time.Now()
	saved := 0

	for i := range rows {
		row := rows[i]

		entry := &domain.AdSnapshotEntry{
			AdID: row.ID,
			Date: snapshotDate,
			Row:  &row,
		}

		if err := s.adSnapshotRepo.SaveOrUpdate(entry); err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"ad_id":  row.ID,
				"error":  err.Error(),
			}).Error("Erro ao salvar snapshot de anúncio")
			continue
		}

		saved++

		// Aguardar antes da próxima operação para não sobrecarregar o banco
		if s.config.RequestDelaySeconds > 0 && i < len(rows)-1 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	return saved
}

// TriggerManualSync inicia manualmente uma captura de snapshots de anúncios
func (s *AdsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Captura de snapshots de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando captura manual de snapshots de anúncios")
	go s.syncAds()
}

// GetStatus retorna o status atual do agendador
func (s *AdsSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_country_code":      s.config.CountryCode,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_pages":         s.config.MaxPages,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         s.config.RetentionDays,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
