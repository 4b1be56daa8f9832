package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/cache"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/aggregating"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/fetching"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/utils"
)

// maxRangeDays limita o período de uma consulta para não varrer meses de
// contas inteiras em uma única requisição
const maxRangeDays = 92

type Service struct {
	cfg                 *config.Config
	reportCache         cache.ReportCache
	dayRecordRepository repository.DayRecordRepository
	fetchService        fetching.Fetcher
	aggregator          aggregating.Aggregator
	control             *SyncControl

	// now é substituível nos testes para fixar o dia corrente
	now func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	cfg *config.Config,
	reportCache cache.ReportCache,
	dayRecordRepo repository.DayRecordRepository,
	fetchService fetching.Fetcher,
	aggregator aggregating.Aggregator,
	control *SyncControl,
) Reporter {
	return &Service{
		cfg:                 cfg,
		reportCache:         reportCache,
		dayRecordRepository: dayRecordRepo,
		fetchService:        fetchService,
		aggregator:          aggregator,
		control:             control,
		now:                 time.Now,
	}
}

// Control expõe a coordenação entre o worker de fundo e as requisições
func (s *Service) Control() *SyncControl {
	return s.control
}

// GetReport monta o relatório de um período. Dias frescos saem do cache ou do
// armazenamento; os demais são buscados no Ad Manager dentro do prazo da
// requisição.
func (s *Service) GetReport(ctx context.Context, userID int, filters *domain.ReportFilters) (*domain.RangeReport, error) {
	s.control.BeginRequest()
	defer s.control.EndRequest()

	days, dimension, err := s.resolveRange(filters)
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.DailyReport, len(days))
	sources := make([]string, len(days))

	// Primeiro atende tudo que está fresco no cache ou no armazenamento
	missing := make([]int, 0, len(days))
	for i, day := range days {
		report, source := s.loadFreshDay(ctx, userID, day, dimension)
		if report != nil {
			reports[i] = report
			sources[i] = source
			continue
		}

		missing = append(missing, i)
	}

	// Depois busca os dias que faltam no Ad Manager
	if len(missing) > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id":      userID,
			"days":         len(days),
			"missing_days": len(missing),
		}).Info("Buscando dias faltantes no Ad Manager")

		if err := s.fetchMissingDays(ctx, userID, days, missing, dimension, reports, sources); err != nil {
			return nil, err
		}
	}

	return s.assembleRange(days, dimension, reports, sources), nil
}

// RefreshDay força a busca de um dia no Ad Manager, ignorando o frescor
func (s *Service) RefreshDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.DailyReport, error) {
	s.control.BeginRequest()
	defer s.control.EndRequest()

	return s.forceFetchDay(ctx, userID, date, dimension)
}

// SyncDay executa a mesma busca forçada do RefreshDay para o worker de fundo,
// sem contar como requisição de usuário
func (s *Service) SyncDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.DailyReport, error) {
	return s.forceFetchDay(ctx, userID, date, dimension)
}

func (s *Service) forceFetchDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.DailyReport, error) {
	if dimension == "" {
		dimension = domain.DimensionAdUnit
	}
	if !dimension.Valid() {
		return nil, NewReportError(ErrInvalidDimension, apiErrors.ErrInvalidFormat, string(dimension))
	}

	day := utils.TruncateToDay(date)
	today := utils.TruncateToDay(s.now().UTC())
	if day.After(today) {
		return nil, NewReportError(ErrFutureDate, apiErrors.ErrInvalidRequest, day.Format(time.DateOnly))
	}

	// A versão antiga sai das duas camadas antes da busca: mesmo que a busca
	// falhe, a próxima leitura não ressuscita o dado que o usuário rejeitou
	if err := s.reportCache.Invalidate(ctx, cache.Key(userID, day, dimension)); err != nil {
		logrus.WithError(err).Warn("Erro ao invalidar o cache antes da atualização forçada")
	}

	reports := make([]*domain.DailyReport, 1)
	sources := make([]string, 1)
	if err := s.fetchMissingDays(ctx, userID, []time.Time{day}, []int{0}, dimension, reports, sources); err != nil {
		return nil, err
	}

	return reports[0], nil
}

// GetFreshness descreve a idade e a origem do relatório de um dia sem buscá-lo
func (s *Service) GetFreshness(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.FreshnessInfo, error) {
	if dimension == "" {
		dimension = domain.DimensionAdUnit
	}
	if !dimension.Valid() {
		return nil, NewReportError(ErrInvalidDimension, apiErrors.ErrInvalidFormat, string(dimension))
	}

	day := utils.TruncateToDay(date)

	info := &domain.FreshnessInfo{
		Date:      day.Format(time.DateOnly),
		Dimension: dimension,
		Source:    domain.FreshnessSourceNone,
	}

	report, source, _ := s.reportCache.Get(ctx, cache.Key(userID, day, dimension))
	if report != nil {
		fetchedAt := report.FetchedAt
		info.FetchedAt = &fetchedAt
		info.Complete = report.Complete
		info.Fresh = s.isFresh(report.Complete, report.FetchedAt, day)
		info.Source = source
		return info, nil
	}

	record, err := s.dayRecordRepository.GetByDate(userID, day, dimension)
	if err != nil {
		return nil, NewReportError(ErrLoadDay, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if record != nil {
		fetchedAt := record.FetchedAt
		info.FetchedAt = &fetchedAt
		info.Complete = record.Complete
		info.Fresh = s.isFresh(record.Complete, record.FetchedAt, day)
		info.Source = domain.FreshnessSourceStore
	}

	return info, nil
}

// resolveRange valida os filtros e enumera os dias da consulta.
// Sem datas, a consulta é do dia corrente. Fim no futuro encolhe para hoje.
func (s *Service) resolveRange(filters *domain.ReportFilters) ([]time.Time, domain.ReportDimension, error) {
	dimension := domain.DimensionAdUnit
	if filters != nil && filters.Dimension != "" {
		dimension = filters.Dimension
	}
	if !dimension.Valid() {
		return nil, "", NewReportError(ErrInvalidDimension, apiErrors.ErrInvalidFormat, string(dimension))
	}

	today := utils.TruncateToDay(s.now().UTC())

	start, end := today, today
	if filters != nil && filters.StartDate != nil {
		start = utils.TruncateToDay(*filters.StartDate)
	}
	if filters != nil && filters.EndDate != nil {
		end = utils.TruncateToDay(*filters.EndDate)
	}

	if start.After(end) {
		return nil, "", NewReportError(ErrInvalidDateOrder, apiErrors.ErrInvalidRequest, "")
	}

	if start.After(today) {
		return nil, "", NewReportError(ErrFutureDate, apiErrors.ErrInvalidRequest, start.Format(time.DateOnly))
	}

	if end.After(today) {
		end = today
	}

	days := make([]time.Time, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	if len(days) > maxRangeDays {
		return nil, "", NewReportError(ErrRangeTooLong, apiErrors.ErrInvalidRequest, "")
	}

	return days, dimension, nil
}

// loadFreshDay devolve o relatório do dia quando existe versão fresca no cache
// ou no armazenamento durável de dias
func (s *Service) loadFreshDay(ctx context.Context, userID int, day time.Time, dimension domain.ReportDimension) (*domain.DailyReport, string) {
	key := cache.Key(userID, day, dimension)

	report, source, err := s.reportCache.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler o cache de relatórios")
	}
	if report != nil && s.isFresh(report.Complete, report.FetchedAt, day) {
		return report, source
	}

	// Falha de leitura no armazenamento não derruba a consulta: o dia ainda
	// pode ser buscado no Ad Manager
	record, err := s.dayRecordRepository.GetByDate(userID, day, dimension)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"date":    day.Format(time.DateOnly),
		}).Warn("Erro ao buscar o dia no armazenamento durável")
		return nil, domain.FreshnessSourceNone
	}

	if record != nil && s.isFresh(record.Complete, record.FetchedAt, day) {
		dayReport := record.ToDailyReport()

		// Repovoa o cache para as próximas leituras
		if err := s.reportCache.Set(ctx, key, userID, dayReport, s.cacheExpiry(day)); err != nil {
			logrus.WithError(err).Warn("Erro ao repovoar o cache de relatórios")
		}

		return dayReport, domain.FreshnessSourceStore
	}

	return nil, domain.FreshnessSourceNone
}

// isFresh aplica a política de frescor de um dia
func (s *Service) isFresh(complete bool, fetchedAt time.Time, day time.Time) bool {
	now := s.now().UTC()
	today := utils.TruncateToDay(now)
	day = utils.TruncateToDay(day)

	// Dia passado consolidado não muda mais
	if complete && day.Before(today) {
		return true
	}

	if fetchedAt.IsZero() {
		return false
	}

	if day.Equal(today) {
		return now.Sub(fetchedAt) < time.Duration(s.cfg.Freshness.TodayFreshnessMinutes)*time.Minute
	}

	// Ontem ainda não consolidado tolera a janela de horas configurada
	yesterday := today.AddDate(0, 0, -1)
	if day.Equal(yesterday) {
		return now.Sub(fetchedAt) < time.Duration(s.cfg.Freshness.YesterdayStalenessHours)*time.Hour
	}

	// Dia passado incompleto busca de novo na próxima consulta
	return false
}

// fetchMissingDays busca os dias faltantes no Ad Manager. A busca corre
// desacoplada do contexto da requisição: se o prazo estoura, o usuário recebe
// o erro de tempo limite, mas a busca continua até persistir cada dia, e a
// próxima consulta encontra tudo no armazenamento.
func (s *Service) fetchMissingDays(ctx context.Context, userID int, days []time.Time, missing []int, dimension domain.ReportDimension, reports []*domain.DailyReport, sources []string) error {
	timeout := time.Duration(s.cfg.Fetch.ReportTimeoutSeconds) * time.Second

	type outcome struct {
		reports map[int]*domain.DailyReport
		err     error
	}

	done := make(chan outcome, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		out := outcome{reports: make(map[int]*domain.DailyReport, len(missing))}

		for _, idx := range missing {
			report, err := s.refreshDay(detached, userID, days[idx], dimension)
			if err != nil {
				out.err = err
				break
			}
			out.reports[idx] = report
		}

		done <- out
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return out.err
		}

		for idx, report := range out.reports {
			reports[idx] = report
			sources[idx] = domain.FreshnessSourceUpstream
		}

		return nil
	case <-time.After(timeout):
		logrus.WithFields(logrus.Fields{
			"user_id":      userID,
			"missing_days": len(missing),
			"timeout":      timeout.String(),
		}).Warn("Tempo limite na montagem do relatório. A busca continua em segundo plano")

		return NewReportError(ErrReportTimeout, apiErrors.ErrReportTimeout, "a busca continua em segundo plano")
	}
}

// refreshDay busca um dia em todas as contas, monta o relatório e persiste
func (s *Service) refreshDay(ctx context.Context, userID int, day time.Time, dimension domain.ReportDimension) (*domain.DailyReport, error) {
	result, err := s.fetchService.FetchDay(ctx, userID, day, dimension)
	if err != nil {
		return nil, err
	}

	report := s.aggregator.BuildDailyReport(day, dimension, result.AccountRows, result.Failures)

	// Um dia anterior a hoje em que todas as contas responderam está consolidado
	today := utils.TruncateToDay(s.now().UTC())
	report.Complete = day.Before(today) && result.Complete()

	if err := s.persistDay(ctx, userID, day, dimension, report); err != nil {
		return nil, err
	}

	return report, nil
}

// persistDay grava o dia no armazenamento durável e reflete no cache.
// Falha no armazenamento é erro; falha no cache é só degradação.
func (s *Service) persistDay(ctx context.Context, userID int, day time.Time, dimension domain.ReportDimension, report *domain.DailyReport) error {
	id, err := utils.GenerateID()
	if err != nil {
		return NewReportError(ErrStoreDay, apiErrors.ErrInternalServer, err.Error())
	}

	record := &domain.DayRecord{
		ID:           id,
		UserID:       userID,
		Date:         utils.TruncateToDay(day),
		Dimension:    dimension,
		Rows:         report.Rows,
		Totals:       report.Totals,
		AccountCount: report.AccountCount,
		Complete:     report.Complete,
		Partial:      report.Partial,
		FetchedAt:    report.FetchedAt,
	}

	if err := s.dayRecordRepository.SaveOrUpdate(record); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"date":    day.Format(time.DateOnly),
		}).Error("Erro ao salvar o dia no armazenamento durável")

		return NewReportError(ErrStoreDay, apiErrors.ErrDatabaseOperation, err.Error())
	}

	key := cache.Key(userID, day, dimension)
	if err := s.reportCache.Set(ctx, key, userID, report, s.cacheExpiry(day)); err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar o cache de relatórios")
	}

	return nil
}

// cacheExpiry define a validade da entrada durável do cache: dias consolidados
// não expiram, o dia corrente expira junto com o TTL da camada quente
func (s *Service) cacheExpiry(day time.Time) *time.Time {
	today := utils.TruncateToDay(s.now().UTC())
	if utils.TruncateToDay(day).Before(today) {
		return nil
	}

	expires := s.now().Add(time.Duration(s.cfg.Cache.HotTTLSeconds) * time.Second)
	return &expires
}

// assembleRange monta a resposta do período com as linhas mescladas entre os
// dias e o resumo de frescor de cada dia
func (s *Service) assembleRange(days []time.Time, dimension domain.ReportDimension, reports []*domain.DailyReport, sources []string) *domain.RangeReport {
	dayFreshness := make([]*domain.DayFreshness, 0, len(reports))

	complete := true
	partial := false
	accountCount := 0
	accounts := make([]string, 0)
	failuresByAccount := make(map[string]domain.AccountFailure)
	failures := make([]domain.AccountFailure, 0)

	for i, report := range reports {
		fetchedAt := report.FetchedAt
		dayFreshness = append(dayFreshness, &domain.DayFreshness{
			Date:      report.Date,
			Complete:  report.Complete,
			Partial:   report.Partial,
			FetchedAt: &fetchedAt,
			Source:    sources[i],
		})

		if !report.Complete {
			complete = false
		}

		// Contas medem população, não fluxo: o período reflete o maior dia,
		// nunca a soma dos dias
		if report.AccountCount > accountCount {
			accountCount = report.AccountCount
		}
		if len(report.Accounts) > len(accounts) {
			accounts = report.Accounts
		}

		if report.Partial {
			partial = true
			for _, failure := range report.FailedAccounts {
				if _, seen := failuresByAccount[failure.AccountID]; !seen {
					failuresByAccount[failure.AccountID] = failure
					failures = append(failures, failure)
				}
			}
		}
	}

	return &domain.RangeReport{
		StartDate:      days[0].Format(time.DateOnly),
		EndDate:        days[len(days)-1].Format(time.DateOnly),
		Dimension:      dimension,
		Rows:           s.aggregator.MergeDailyRows(reports),
		Totals:         s.aggregator.MergeRangeTotals(reports),
		Days:           dayFreshness,
		AccountCount:   accountCount,
		Accounts:       accounts,
		Complete:       complete,
		Partial:        partial,
		FailedAccounts: failures,
	}
}
