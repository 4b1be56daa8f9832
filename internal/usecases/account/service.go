package account

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/cache"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
)

type AccountService interface {
	UpdateAccount(ctx context.Context, userID int, request *domain.UpdateNetworkAccountRequest) (*domain.UpdateNetworkAccountResponse, error)
	ListAccounts(userID int, availableStatus []domain.NetworkAccountStatus) ([]*domain.NetworkAccountResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	reportCache       cache.ReportCache
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	reportCache cache.ReportCache,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		reportCache:       reportCache,
		cfg:               cfg,
	}
}

func (s *Service) ListAccounts(userID int, availableStatus []domain.NetworkAccountStatus) ([]*domain.NetworkAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccountsByUser(userID, availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma as contas para o formato de resposta da API
	accountsResponse := make([]*domain.NetworkAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		accountsResponse = append(accountsResponse, &domain.NetworkAccountResponse{
			ID:           account.ID,
			NetworkCode:  account.NetworkCode,
			Name:         account.Name,
			Nickname:     account.Nickname,
			CurrencyCode: account.CurrencyCode,
			TimeZone:     account.TimeZone,
			HasToken:     account.RefreshToken != "",
			Status:       account.Status,
		})
	}

	return accountsResponse, nil
}

// UpdateAccount atualiza o apelido ou o status de uma conta do usuário.
// Qualquer mudança invalida os relatórios em cache do usuário, porque o
// conjunto de contas habilitadas define o que os relatórios contêm.
func (s *Service) UpdateAccount(ctx context.Context, userID int, request *domain.UpdateNetworkAccountRequest) (*domain.UpdateNetworkAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe e pertence ao usuário
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil || account.UserID != userID {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if request.Status != nil {
		status := domain.NetworkAccountStatus(*request.Status)
		if status != domain.NetworkAccountStatusActive && status != domain.NetworkAccountStatusInactive {
			return nil, NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidFormat, request.ID, "Status de conta inválido")
		}
	}

	// Atualiza a conta no repositório
	err = s.accountRepository.UpdateAccount(request)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	if err := s.reportCache.InvalidateUser(ctx, userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao invalidar o cache de relatórios do usuário")
	}

	return &domain.UpdateNetworkAccountResponse{
		ID:       request.ID,
		Nickname: request.Nickname,
		Status:   request.Status,
	}, nil
}
