package gamclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	gamdomain "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// TokenManager gerencia os tokens de acesso OAuth de cada conta do Ad Manager.
// Cada conta carrega o próprio refresh token, então a renovação é sempre por conta.
type TokenManager struct {
	cfg               *config.Config
	accountRepository repository.AccountRepository
	TokenRefreshMutex sync.Mutex `mapstructure:"-"`
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, accountRepository repository.AccountRepository) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		accountRepository: accountRepository,
		TokenRefreshMutex: sync.Mutex{},
	}
}

// oauthConfig monta a configuração OAuth do Google a partir das credenciais do app
func (tm *TokenManager) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     tm.cfg.AdManager.OAuthClientID,
		ClientSecret: tm.cfg.AdManager.OAuthClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: tm.cfg.AdManager.OAuthTokenURL,
		},
	}
}

// EnsureValidToken verifica se o token da conta é válido e o renova se necessário
func (tm *TokenManager) EnsureValidToken(ctx context.Context, account *domain.NetworkAccount) error {
	if account.RefreshToken == "" {
		return fmt.Errorf("conta %s não possui refresh token. É necessário reautorizar o acesso", account.ID)
	}

	buffer := time.Duration(tm.cfg.AdManager.TokenExpiryBufferMinutes) * time.Minute
	if account.AccessToken != "" && time.Until(account.TokenExpiry) > buffer {
		return nil
	}

	logrus.Infof("Token da conta %s expira em breve ou está ausente. Renovando proativamente...", account.ID)

	return tm.RefreshToken(ctx, account)
}

// RefreshToken obtém um novo token de acesso a partir do refresh token da conta
// e persiste as novas credenciais para que as próximas buscas não renovem de novo.
// A renovação nunca é pulada por o token parecer válido: o provedor pode ter
// revogado um token dentro do prazo, e é este caminho que o substitui.
func (tm *TokenManager) RefreshToken(ctx context.Context, account *domain.NetworkAccount) error {
	observedToken := account.AccessToken

	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Se o token mudou enquanto esperávamos o mutex, outra chamada já renovou
	if account.AccessToken != "" && account.AccessToken != observedToken {
		return nil
	}

	logrus.Infof("Iniciando renovação do token da conta %s...", account.ID)

	// O TokenSource força a renovação porque o token passado não tem access token
	conf := tm.oauthConfig()
	staleToken := &oauth2.Token{RefreshToken: account.RefreshToken}

	newToken, err := conf.TokenSource(ctx, staleToken).Token()
	if err != nil {
		logrus.Errorf("Erro ao renovar token da conta %s: %v", account.ID, err)
		return &gamdomain.APIError{
			StatusCode: http.StatusUnauthorized,
			Status:     "UNAUTHENTICATED",
			Message:    fmt.Sprintf("não foi possível renovar o token da conta %s. É necessário reautorizar: %v", account.ID, err),
		}
	}

	oldAccessToken := account.AccessToken
	account.AccessToken = newToken.AccessToken
	account.TokenExpiry = newToken.Expiry

	// O refresh token só muda quando o provedor emite um novo
	refreshToUpdate := ""
	if newToken.RefreshToken != "" && newToken.RefreshToken != account.RefreshToken {
		account.RefreshToken = newToken.RefreshToken
		refreshToUpdate = newToken.RefreshToken
	}

	if err := tm.accountRepository.UpdateTokens(account.ID, account.AccessToken, refreshToUpdate, account.TokenExpiry); err != nil {
		// A renovação em si funcionou, então seguimos com o token em memória
		logrus.Errorf("Erro ao persistir o novo token da conta %s: %v", account.ID, err)
	}

	if oldAccessToken != account.AccessToken {
		logrus.Infof("Token da conta %s atualizado com sucesso. Expira em: %s",
			account.ID, account.TokenExpiry.Format(time.RFC3339))
	} else {
		logrus.Warnf("Token da conta %s renovado, mas não mudou. Isso pode indicar um problema no provedor", account.ID)
	}

	return nil
}

// ParseErrorResponse tenta parsear um erro da API do Ad Manager
func ParseErrorResponse(body []byte) (*gamdomain.ErrorResponse, error) {
	var errorResp gamdomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse manipula a resposta HTTP e classifica os erros da API
// em falhas de autenticação, limite de requisições ou erro genérico
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	// Se a resposta for bem-sucedida, retorna o corpo
	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, tm.classifyErrorResponse(resp, body)
}

// classifyErrorResponse transforma uma resposta de erro da API em um APIError
// para que as camadas de cima decidam entre retry, renovação de token ou falha
func (tm *TokenManager) classifyErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &gamdomain.APIError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil && errorResp.Error.Code != 0 {
		apiErr.Status = errorResp.Error.Status
		apiErr.Message = errorResp.Error.Message

		if errorResp.IsTokenExpired() {
			logrus.Warnf("Token expirado detectado pela API do Ad Manager. Status: %s", errorResp.Error.Status)
			apiErr.StatusCode = http.StatusUnauthorized
		}

		if errorResp.IsRateLimited() {
			apiErr.StatusCode = http.StatusTooManyRequests
		}
	}

	// O header Retry-After orienta o backoff de quem fizer retry
	if apiErr.RateLimited() {
		apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	}

	return apiErr
}

// parseRetryAfter interpreta o header Retry-After em segundos
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
