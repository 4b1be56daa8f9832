package fetching

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	gamdomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
)

type Service struct {
	cfg               *config.Config
	adManagerService  AdManagerFetcher
	accountRepository repository.AccountRepository

	// sleep é substituível nos testes para não esperar os backoffs de verdade
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService cria uma nova instância do serviço de busca
func NewService(
	cfg *config.Config,
	adManagerService AdManagerFetcher,
	accountRepo repository.AccountRepository,
) Fetcher {
	return &Service{
		cfg:               cfg,
		adManagerService:  adManagerService,
		accountRepository: accountRepo,
		sleep:             sleepWithContext,
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchDay percorre as contas habilitadas do usuário em lotes, respeitando a
// pausa entre lotes para não estourar a cota do provedor
func (s *Service) FetchDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*DayFetchResult, error) {
	accounts, err := s.accountRepository.ListAccountsByUser(userID, []domain.NetworkAccountStatus{domain.NetworkAccountStatusActive})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("fetch: failed to list enabled accounts")
		return nil, NewFetchError(ErrListAccounts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	result := &DayFetchResult{Enumerated: len(accounts)}

	// Usuário sem contas vinculadas tem um dia vazio válido
	if len(accounts) == 0 {
		return result, nil
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"date":     date.Format(time.DateOnly),
		"accounts": len(accounts),
	}).Info("Buscando relatório diário nas contas habilitadas")

	// Mutex para proteger os slices de resultado durante atualizações concorrentes
	var mutex sync.Mutex

	batchDelay := time.Duration(s.cfg.Fetch.BatchDelaySeconds) * time.Second

	for i, batch := range lo.Chunk(accounts, s.cfg.Fetch.BatchSize) {
		if i > 0 {
			if err := s.sleep(ctx, batchDelay); err != nil {
				return nil, err
			}
		}

		// Usar WaitGroup para esperar todas as chamadas à API terminarem
		var fetchWg sync.WaitGroup

		for _, account := range batch {
			fetchWg.Add(1)

			go func(account *domain.NetworkAccount) {
				defer fetchWg.Done()

				rows, err := s.fetchAccountWithRetry(ctx, account, date, dimension)
				if err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"account_id": account.ID,
						"date":       date.Format(time.DateOnly),
					}).Warn("Erro ao buscar relatório diário da conta")

					mutex.Lock()
					result.Failures = append(result.Failures, domain.AccountFailure{
						AccountID:   account.ID,
						AccountName: account.DisplayName(),
						Reason:      failureReason(err),
					})
					mutex.Unlock()
					return
				}

				mutex.Lock()
				result.AccountRows = append(result.AccountRows, rows)
				mutex.Unlock()
			}(account)
		}

		// Aguardar todas as goroutines do lote terminarem
		fetchWg.Wait()
	}

	// Nenhuma conta respondeu: não há relatório para montar
	if len(result.AccountRows) == 0 {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"date":    date.Format(time.DateOnly),
		}).Error("fetch: all accounts failed for day")

		return nil, NewFetchError(ErrAllAccountsFailed, allFailedCode(result.Failures), date.Format(time.DateOnly))
	}

	return result, nil
}

// allFailedCode escolhe o código da falha total. Quando todas as contas caem
// pelo mesmo motivo, o cliente recebe o motivo real em vez do genérico
func allFailedCode(failures []domain.AccountFailure) string {
	if len(failures) == 0 {
		return apiErrors.ErrAllAccountsFailed
	}

	if lo.EveryBy(failures, func(f domain.AccountFailure) bool { return f.Reason == ReasonRateLimited }) {
		return apiErrors.ErrUpstreamRateLimited
	}

	if lo.EveryBy(failures, func(f domain.AccountFailure) bool { return f.Reason == ReasonAuthExpired }) {
		return apiErrors.ErrUpstreamAuthExpired
	}

	return apiErrors.ErrAllAccountsFailed
}

// fetchAccountWithRetry repete a busca em caso de limite de requisições, com
// backoff exponencial. O Retry-After do provedor vence quando for maior.
func (s *Service) fetchAccountWithRetry(ctx context.Context, account *domain.NetworkAccount, date time.Time, dimension domain.ReportDimension) (*domain.AccountDayRows, error) {
	baseDelay := time.Duration(s.cfg.Fetch.RetryBaseDelayMs) * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= s.cfg.Fetch.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := baseDelay * (1 << (attempt - 1))

			var apiErr *gamdomain.APIError
			if errors.As(lastErr, &apiErr) && apiErr.RetryAfter > delay {
				delay = apiErr.RetryAfter
			}

			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"attempt":    attempt,
				"delay":      delay.String(),
			}).Info("Repetindo busca após limite de requisições")

			if err := s.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		rows, err := s.adManagerService.GetAccountDayRows(ctx, account, date, dimension)
		if err == nil {
			return rows, nil
		}
		lastErr = err

		// Só limite de requisições merece retry aqui: token rejeitado já foi
		// renovado e repetido uma vez pelo client
		var apiErr *gamdomain.APIError
		if !errors.As(err, &apiErr) || !apiErr.RateLimited() {
			return nil, err
		}
	}

	return nil, lastErr
}

func failureReason(err error) string {
	var apiErr *gamdomain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.RateLimited() {
			return ReasonRateLimited
		}
		if apiErr.AuthExpired() {
			return ReasonAuthExpired
		}
	}

	return ReasonFetchFailed
}
