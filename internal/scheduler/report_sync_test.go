package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository/mocks"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	reportingmocks "github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting/mocks"
)

func syncConfigFixture() ReportSyncConfig {
	return ReportSyncConfig{
		IntervalMinutes:          60,
		OwnerUserID:              7,
		YesterdayWindowStartHour: 3,
		YesterdayWindowEndHour:   6,
		YesterdayGraceSeconds:    120,
		YesterdayStalenessHours:  6,
		RetentionDays:            0,
		SyncEnabled:              true,
	}
}

func TestReportSyncService_SyncReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Fora da janela de consolidação do dia anterior
	afternoon := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		config   ReportSyncConfig
		now      time.Time
		prepare  func(control *reporting.SyncControl)
		setup    func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository)
		validate func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration)
	}{
		{
			name:   "Deve sincronizar o dia corrente quando o relatório está obsoleto",
			config: syncConfigFixture(),
			now:    afternoon,
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: false, Source: domain.FreshnessSourceNone}, nil)

				reporter.EXPECT().
					SyncDay(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.DailyReport{Date: "2026-08-20", AccountCount: 2}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			validate: func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration) {
				assert.False(t, control.Busy())
				assert.NotNil(t, control.Status().LastSyncCompletedAt)
				assert.Empty(t, sleeps)
			},
		},
		{
			name:   "Deve pular a busca quando o relatório de hoje ainda está fresco",
			config: syncConfigFixture(),
			now:    afternoon,
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: true, Source: domain.FreshnessSourceHot}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			validate: func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration) {
				assert.False(t, control.Busy())
			},
		},
		{
			name:   "Deve buscar mesmo assim quando a consulta de frescor falha",
			config: syncConfigFixture(),
			now:    afternoon,
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(nil, assert.AnError)

				reporter.EXPECT().
					SyncDay(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.DailyReport{Date: "2026-08-20"}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			validate: func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration) {
				assert.False(t, control.Busy())
			},
		},
		{
			name:   "Deve ignorar o ciclo quando outra sincronização está em andamento",
			config: syncConfigFixture(),
			now:    afternoon,
			prepare: func(control *reporting.SyncControl) {
				assert.NoError(t, control.BeginSync())
			},
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
			},
			validate: func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration) {
				// A sincronização pré-existente segue em andamento
				assert.True(t, control.Busy())
			},
		},
		{
			name:   "Deve ceder a vez quando há requisições de usuários em andamento",
			config: syncConfigFixture(),
			now:    afternoon,
			prepare: func(control *reporting.SyncControl) {
				control.BeginRequest()
			},
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
			},
			validate: func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration) {
				assert.False(t, control.Busy())
				assert.Equal(t, 1, control.Status().UserRequestsInFlight)
			},
		},
		{
			name: "Deve cuidar da retenção e da limpeza mesmo sem usuário configurado",
			config: ReportSyncConfig{
				IntervalMinutes:          60,
				OwnerUserID:              0,
				YesterdayWindowStartHour: 3,
				YesterdayWindowEndHour:   6,
				YesterdayGraceSeconds:    120,
				RetentionDays:            30,
				SyncEnabled:              true,
			},
			now: afternoon,
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				dayRepo.EXPECT().DeleteOlderThan(30).Return(int64(5), nil)
				cacheRepo.EXPECT().DeleteExpired().Return(int64(2), nil)
			},
			validate: func(t *testing.T, control *reporting.SyncControl, sleeps []time.Duration) {
				assert.False(t, control.Busy())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReporter := reportingmocks.NewMockReporter(ctrl)
			mockDayRepo := repomocks.NewMockDayRecordRepository(ctrl)
			mockCacheRepo := repomocks.NewMockCacheEntryRepository(ctrl)

			control := reporting.NewSyncControl()
			mockReporter.EXPECT().Control().Return(control).AnyTimes()

			sleeps := make([]time.Duration, 0)

			service := &ReportSyncService{
				config:         tt.config,
				reportService:  mockReporter,
				dayRecordRepo:  mockDayRepo,
				cacheEntryRepo: mockCacheRepo,
				now:            func() time.Time { return tt.now },
				sleep:          func(d time.Duration) { sleeps = append(sleeps, d) },
			}

			if tt.prepare != nil {
				tt.prepare(control)
			}

			tt.setup(mockReporter, mockDayRepo, mockCacheRepo)

			service.SyncReports()

			if tt.validate != nil {
				tt.validate(t, control, sleeps)
			}
		})
	}
}

func TestReportSyncService_FinalizeYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Dentro da janela de consolidação (3h-6h)
	earlyMorning := time.Date(2026, 8, 20, 4, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository)
		sleep    func(control *reporting.SyncControl, sleeps *[]time.Duration) func(time.Duration)
		validate func(t *testing.T, sleeps []time.Duration)
	}{
		{
			name: "Deve consolidar o dia anterior após a carência",
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: true}, nil)

				dayRepo.EXPECT().
					GetByDate(7, yesterday, domain.DimensionAdUnit).
					Return(&domain.DayRecord{Date: yesterday, Complete: false, Partial: true}, nil)

				reporter.EXPECT().
					SyncDay(gomock.Any(), 7, yesterday, domain.DimensionAdUnit).
					Return(&domain.DailyReport{Date: "2026-08-19", Complete: true}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			sleep: func(control *reporting.SyncControl, sleeps *[]time.Duration) func(time.Duration) {
				return func(d time.Duration) { *sleeps = append(*sleeps, d) }
			},
			validate: func(t *testing.T, sleeps []time.Duration) {
				assert.Equal(t, []time.Duration{120 * time.Second}, sleeps)
			},
		},
		{
			name: "Deve adiar a consolidação quando usuários chegam durante a carência",
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: true}, nil)

				dayRepo.EXPECT().
					GetByDate(7, yesterday, domain.DimensionAdUnit).
					Return(nil, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			sleep: func(control *reporting.SyncControl, sleeps *[]time.Duration) func(time.Duration) {
				// Um usuário chega enquanto o worker espera a carência
				return func(d time.Duration) {
					*sleeps = append(*sleeps, d)
					control.BeginRequest()
				}
			},
			validate: func(t *testing.T, sleeps []time.Duration) {
				assert.Equal(t, []time.Duration{120 * time.Second}, sleeps)
			},
		},
		{
			name: "Deve consolidar um registro obsoleto mesmo sem falhas por conta",
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: true}, nil)

				// Última busca às 21h do dia anterior: 7h atrás, além do limite de 6h
				dayRepo.EXPECT().
					GetByDate(7, yesterday, domain.DimensionAdUnit).
					Return(&domain.DayRecord{
						Date:      yesterday,
						Complete:  false,
						Partial:   false,
						FetchedAt: time.Date(2026, 8, 19, 21, 0, 0, 0, time.UTC),
					}, nil)

				reporter.EXPECT().
					SyncDay(gomock.Any(), 7, yesterday, domain.DimensionAdUnit).
					Return(&domain.DailyReport{Date: "2026-08-19", Complete: true}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			sleep: func(control *reporting.SyncControl, sleeps *[]time.Duration) func(time.Duration) {
				return func(d time.Duration) { *sleeps = append(*sleeps, d) }
			},
			validate: func(t *testing.T, sleeps []time.Duration) {
				assert.Equal(t, []time.Duration{120 * time.Second}, sleeps)
			},
		},
		{
			name: "Não deve reconsolidar um dia já completo",
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: true}, nil)

				dayRepo.EXPECT().
					GetByDate(7, yesterday, domain.DimensionAdUnit).
					Return(&domain.DayRecord{Date: yesterday, Complete: true}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			sleep: func(control *reporting.SyncControl, sleeps *[]time.Duration) func(time.Duration) {
				return func(d time.Duration) { *sleeps = append(*sleeps, d) }
			},
			validate: func(t *testing.T, sleeps []time.Duration) {
				// Dia consolidado não espera carência nem busca de novo
				assert.Empty(t, sleeps)
			},
		},
		{
			name: "Deve adiar a consolidação de um registro recente sem falhas por conta",
			setup: func(reporter *reportingmocks.MockReporter, dayRepo *repomocks.MockDayRecordRepository, cacheRepo *repomocks.MockCacheEntryRepository) {
				reporter.EXPECT().
					GetFreshness(gomock.Any(), 7, today, domain.DimensionAdUnit).
					Return(&domain.FreshnessInfo{Fresh: true}, nil)

				// Última busca às 2h de hoje: dentro do limite de obsolescência
				dayRepo.EXPECT().
					GetByDate(7, yesterday, domain.DimensionAdUnit).
					Return(&domain.DayRecord{
						Date:      yesterday,
						Complete:  false,
						Partial:   false,
						FetchedAt: time.Date(2026, 8, 20, 2, 0, 0, 0, time.UTC),
					}, nil)

				cacheRepo.EXPECT().DeleteExpired().Return(int64(0), nil)
			},
			sleep: func(control *reporting.SyncControl, sleeps *[]time.Duration) func(time.Duration) {
				return func(d time.Duration) { *sleeps = append(*sleeps, d) }
			},
			validate: func(t *testing.T, sleeps []time.Duration) {
				assert.Empty(t, sleeps)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReporter := reportingmocks.NewMockReporter(ctrl)
			mockDayRepo := repomocks.NewMockDayRecordRepository(ctrl)
			mockCacheRepo := repomocks.NewMockCacheEntryRepository(ctrl)

			control := reporting.NewSyncControl()
			mockReporter.EXPECT().Control().Return(control).AnyTimes()

			sleeps := make([]time.Duration, 0)

			service := &ReportSyncService{
				config:         syncConfigFixture(),
				reportService:  mockReporter,
				dayRecordRepo:  mockDayRepo,
				cacheEntryRepo: mockCacheRepo,
				now:            func() time.Time { return earlyMorning },
			}
			service.sleep = tt.sleep(control, &sleeps)

			tt.setup(mockReporter, mockDayRepo, mockCacheRepo)

			service.SyncReports()

			if tt.validate != nil {
				tt.validate(t, sleeps)
			}
		})
	}
}

func TestReportSyncService_InYesterdayWindow(t *testing.T) {
	service := &ReportSyncService{config: syncConfigFixture()}

	tests := []struct {
		hour     int
		expected bool
	}{
		{hour: 2, expected: false},
		{hour: 3, expected: true},
		{hour: 5, expected: true},
		{hour: 6, expected: false},
		{hour: 15, expected: false},
	}

	for _, tt := range tests {
		now := time.Date(2026, 8, 20, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.expected, service.inYesterdayWindow(now), "hora %d", tt.hour)
	}
}

func TestReportSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve executar um ciclo completo em segundo plano", func(t *testing.T) {
		mockReporter := reportingmocks.NewMockReporter(ctrl)
		mockDayRepo := repomocks.NewMockDayRecordRepository(ctrl)
		mockCacheRepo := repomocks.NewMockCacheEntryRepository(ctrl)

		control := reporting.NewSyncControl()
		mockReporter.EXPECT().Control().Return(control).AnyTimes()

		service := &ReportSyncService{
			config: ReportSyncConfig{
				IntervalMinutes:          60,
				OwnerUserID:              0,
				YesterdayWindowStartHour: 3,
				YesterdayWindowEndHour:   6,
				SyncEnabled:              true,
			},
			reportService:  mockReporter,
			dayRecordRepo:  mockDayRepo,
			cacheEntryRepo: mockCacheRepo,
			now:            time.Now,
			sleep:          func(time.Duration) {},
		}

		done := make(chan struct{})
		mockCacheRepo.EXPECT().DeleteExpired().DoAndReturn(func() (int64, error) {
			close(done)
			return 0, nil
		})

		service.TriggerManualSync()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("sincronização manual não executou dentro do prazo")
		}

		assert.Eventually(t, func() bool { return !control.Busy() }, time.Second, 10*time.Millisecond)
	})

	t.Run("Deve ignorar a solicitação com sincronização em andamento", func(t *testing.T) {
		mockReporter := reportingmocks.NewMockReporter(ctrl)
		mockDayRepo := repomocks.NewMockDayRecordRepository(ctrl)
		mockCacheRepo := repomocks.NewMockCacheEntryRepository(ctrl)

		control := reporting.NewSyncControl()
		mockReporter.EXPECT().Control().Return(control).AnyTimes()

		assert.NoError(t, control.BeginSync())

		service := &ReportSyncService{
			config:         syncConfigFixture(),
			reportService:  mockReporter,
			dayRecordRepo:  mockDayRepo,
			cacheEntryRepo: mockCacheRepo,
			now:            time.Now,
			sleep:          func(time.Duration) {},
		}

		service.TriggerManualSync()

		// Nenhum ciclo novo: as dependências não recebem chamadas
		assert.True(t, control.Busy())
	})
}
