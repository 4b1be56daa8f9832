// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ReportSyncConfig representa a configuração do agendador de sincronização de relatórios
type ReportSyncConfig struct {
	IntervalMinutes          int
	OwnerUserID              int
	YesterdayWindowStartHour int
	YesterdayWindowEndHour   int
	YesterdayGraceSeconds    int
	YesterdayStalenessHours  int
	RetentionDays            int
	SyncEnabled              bool
}

// ReportSyncService gerencia o agendamento e execução da sincronização de relatórios do painel
type ReportSyncService struct {
	scheduler      *gocron.Scheduler
	config         ReportSyncConfig
	appConfig      *config.Config
	reportService  reporting.Reporter
	dayRecordRepo  repository.DayRecordRepository
	cacheEntryRepo repository.CacheEntryRepository

	// now e sleep são substituíveis nos testes para controlar a janela de
	// consolidação e a carência sem esperar de verdade
	now   func() time.Time
	sleep func(d time.Duration)
}

// NewReportSyncService cria uma nova instância do serviço de sincronização de relatórios
func NewReportSyncService(
	reportService reporting.Reporter,
	dayRecordRepo repository.DayRecordRepository,
	cacheEntryRepo repository.CacheEntryRepository,
	appConfig *config.Config,
) *ReportSyncService {
	// Criar a configuração com base na config global
	syncConfig := ReportSyncConfig{
		IntervalMinutes:          appConfig.ReportSync.IntervalMinutes,
		OwnerUserID:              appConfig.ReportSync.OwnerUserID,
		YesterdayWindowStartHour: appConfig.ReportSync.YesterdayWindowStartHour,
		YesterdayWindowEndHour:   appConfig.ReportSync.YesterdayWindowEndHour,
		YesterdayGraceSeconds:    appConfig.ReportSync.YesterdayGraceSeconds,
		YesterdayStalenessHours:  appConfig.Freshness.YesterdayStalenessHours,
		RetentionDays:            appConfig.ReportSync.RetentionDays,
		SyncEnabled:              appConfig.ReportSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_minutes": syncConfig.IntervalMinutes,
		"owner_user_id":    syncConfig.OwnerUserID,
		"yesterday_window": fmt.Sprintf("%dh-%dh", syncConfig.YesterdayWindowStartHour, syncConfig.YesterdayWindowEndHour),
		"retention_days":   syncConfig.RetentionDays,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de relatórios carregada")

	return &ReportSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		reportService:  reportService,
		dayRecordRepo:  dayRecordRepo,
		cacheEntryRepo: cacheEntryRepo,
		now:            time.Now,
		sleep:          time.Sleep,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).Info("Iniciando agendador de sincronização de relatórios")

	// Agendar a sincronização periódica
	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().Do(func() {
		s.SyncReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncReports executa um ciclo completo de sincronização: relatório de hoje,
// consolidação do dia anterior, retenção e limpeza do cache durável. O ciclo
// cede a vez sempre que houver requisições de usuários em andamento.
func (s *ReportSyncService) SyncReports() {
	control := s.reportService.Control()

	if err := control.BeginSync(); err != nil {
		switch {
		case errors.Is(err, reporting.ErrSyncAlreadyRunning):
			logrus.Info("Sincronização de relatórios já em andamento, ignorando")
		case errors.Is(err, reporting.ErrUserRequestsInFlight):
			logrus.Info("Requisições de usuários em andamento. Sincronização cede a vez")
		default:
			logrus.WithError(err).Warn("Sincronização de relatórios não pôde iniciar")
		}
		return
	}
	defer control.EndSync()

	startTime := time.Now()
	ctx := context.Background()

	logrus.Info("Iniciando sincronização de relatórios do painel")

	if s.config.OwnerUserID == 0 {
		logrus.Info("Nenhum usuário configurado para aquecimento de relatórios")
	} else {
		s.syncToday(ctx)
		s.finalizeYesterday(ctx)
	}

	s.enforceRetention()
	s.cleanupExpiredCache()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"user_id":  s.config.OwnerUserID,
	}).Info("Sincronização de relatórios concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de relatórios
func (s *ReportSyncService) TriggerManualSync() {
	if s.reportService.Control().Busy() {
		logrus.Info("Sincronização de relatórios já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando sincronização manual de relatórios")
	go s.SyncReports()
}

// syncToday atualiza o relatório de hoje do usuário configurado quando estiver obsoleto
func (s *ReportSyncService) syncToday(ctx context.Context) {
	today := utils.TruncateToDay(s.now().UTC())

	freshness, err := s.reportService.GetFreshness(ctx, s.config.OwnerUserID, today, domain.DimensionAdUnit)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar o frescor do relatório de hoje. Buscando mesmo assim")
	} else if freshness.Fresh {
		logrus.WithFields(logrus.Fields{
			"date":   today.Format(time.DateOnly),
			"source": freshness.Source,
		}).Info("Relatório de hoje ainda fresco, pulando a busca")
		return
	}

	report, err := s.reportService.SyncDay(ctx, s.config.OwnerUserID, today, domain.DimensionAdUnit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar o relatório de hoje")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":     report.Date,
		"accounts": report.AccountCount,
		"partial":  report.Partial,
	}).Info("Relatório de hoje sincronizado")
}

// finalizeYesterday consolida o dia anterior dentro da janela configurada.
// Só entram na consolidação dias sem registro, com falhas por conta ou cuja
// última busca passou do limite de obsolescência. A busca só acontece depois
// de uma carência, e é adiada se usuários chegarem durante a espera.
func (s *ReportSyncService) finalizeYesterday(ctx context.Context) {
	now := s.now()
	if !s.inYesterdayWindow(now) {
		return
	}

	yesterday := utils.TruncateToDay(now.UTC().AddDate(0, 0, -1))

	record, err := s.dayRecordRepo.GetByDate(s.config.OwnerUserID, yesterday, domain.DimensionAdUnit)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar o registro de ontem. Tentando consolidar mesmo assim")
	}
	if record != nil && record.Complete {
		return
	}

	// Um registro recente em que todas as contas responderam espera a idade
	// passar do limite antes de uma nova busca
	staleness := time.Duration(s.config.YesterdayStalenessHours) * time.Hour
	if record != nil && !record.Partial && now.UTC().Sub(record.FetchedAt) < staleness {
		logrus.WithFields(logrus.Fields{
			"date":       yesterday.Format(time.DateOnly),
			"fetched_at": record.FetchedAt.Format(time.RFC3339),
		}).Info("Registro de ontem ainda recente, consolidação adiada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":          yesterday.Format(time.DateOnly),
		"grace_seconds": s.config.YesterdayGraceSeconds,
	}).Info("Consolidando o dia anterior após o período de carência")

	s.sleep(time.Duration(s.config.YesterdayGraceSeconds) * time.Second)

	// Usuários que chegaram durante a carência têm prioridade sobre a consolidação
	if status := s.reportService.Control().Status(); status.UserRequestsInFlight > 0 {
		logrus.Info("Requisições de usuários chegaram durante a carência. Consolidação adiada")
		return
	}

	report, err := s.reportService.SyncDay(ctx, s.config.OwnerUserID, yesterday, domain.DimensionAdUnit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consolidar o relatório de ontem")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":     report.Date,
		"complete": report.Complete,
		"partial":  report.Partial,
	}).Info("Relatório de ontem consolidado")
}

// inYesterdayWindow informa se o horário está dentro da janela de consolidação do dia anterior
func (s *ReportSyncService) inYesterdayWindow(now time.Time) bool {
	hour := now.Hour()
	return hour >= s.config.YesterdayWindowStartHour && hour < s.config.YesterdayWindowEndHour
}

// enforceRetention remove registros diários mais antigos que a retenção configurada
func (s *ReportSyncService) enforceRetention() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.dayRecordRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar a retenção de registros diários")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("Registros diários antigos removidos")
	}
}

// cleanupExpiredCache remove entradas vencidas da camada durável do cache
func (s *ReportSyncService) cleanupExpiredCache() {
	deleted, err := s.cacheEntryRepo.DeleteExpired()
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar entradas vencidas do cache durável")
		return
	}

	if deleted > 0 {
		logrus.WithField("deleted", deleted).Info("Entradas vencidas do cache durável removidas")
	}
}
