package currency

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
)

// Converter define a interface para converter valores entre moedas
type Converter interface {
	// ToBase converte um valor de uma moeda qualquer para a moeda base do painel
	ToBase(amount float64, currencyCode string) float64

	// BaseCurrency retorna o código da moeda base do painel
	BaseCurrency() string
}

// fallbackRates é a tabela usada quando o provedor de câmbio nunca respondeu.
// Os valores são unidades da moeda base por unidade de cada moeda.
var fallbackRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.18,
	"GBP": 1.35,
	"BRL": 0.19,
}

type Service struct {
	cfg             *config.Config
	exchangeService exchange.ExchangeIntegrator

	mu             sync.RWMutex
	rates          map[string]float64
	ratesFetchedAt time.Time
	lastAttemptAt  time.Time

	now func() time.Time
}

// NewService cria uma nova instância do serviço de câmbio
func NewService(cfg *config.Config, exchangeService exchange.ExchangeIntegrator) Converter {
	return &Service{
		cfg:             cfg,
		exchangeService: exchangeService,
		now:             time.Now,
	}
}

// BaseCurrency retorna o código da moeda base do painel
func (s *Service) BaseCurrency() string {
	return s.cfg.Exchange.BaseCurrency
}

// ToBase converte um valor para a moeda base usando a taxa mais recente.
// Moeda desconhecida passa com taxa 1.0 para não sumir com receita do painel.
func (s *Service) ToBase(amount float64, currencyCode string) float64 {
	if amount == 0 || currencyCode == "" || currencyCode == s.BaseCurrency() {
		return amount
	}

	s.refreshIfStale()

	s.mu.RLock()
	rate, ok := s.rates[currencyCode]
	s.mu.RUnlock()

	if !ok || rate == 0 {
		logrus.Warnf("Moeda desconhecida na conversão: %s. Usando taxa 1.0", currencyCode)
		return amount
	}

	return amount * rate
}

// refreshIfStale renova a tabela de câmbio quando ela passa da validade.
// Falha na renovação mantém a tabela anterior e tenta de novo em uma hora.
func (s *Service) refreshIfStale() {
	s.mu.RLock()
	stale := s.isStale()
	attemptDue := s.now().Sub(s.lastAttemptAt) >= time.Hour
	s.mu.RUnlock()

	if !stale || !attemptDue {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Verificar novamente depois do lock: outra goroutine pode ter renovado
	if !s.isStale() || s.now().Sub(s.lastAttemptAt) < time.Hour {
		return
	}

	s.lastAttemptAt = s.now()

	resp, err := s.exchangeService.GetRates(s.cfg.Exchange.BaseCurrency)
	if err != nil {
		logrus.Warnf("Erro ao buscar taxas de câmbio: %v", err)

		if s.rates == nil {
			logrus.Warn("Nenhuma taxa de câmbio disponível. Usando a tabela de contingência")
			s.rates = fallbackRates
		}
		return
	}

	// O provedor devolve quantas unidades de cada moeda valem uma unidade da
	// base. Invertido aqui para unidades da base por unidade de cada moeda.
	rates := make(map[string]float64, len(resp.Rates)+1)
	rates[s.cfg.Exchange.BaseCurrency] = 1.0
	for code, rate := range resp.Rates {
		if rate > 0 {
			rates[code] = 1 / rate
		}
	}

	s.rates = rates
	s.ratesFetchedAt = s.now()

	logrus.Infof("Tabela de câmbio atualizada com %d moedas. Base: %s", len(rates), s.cfg.Exchange.BaseCurrency)
}

func (s *Service) isStale() bool {
	if s.rates == nil {
		return true
	}

	refreshInterval := time.Duration(s.cfg.Exchange.RefreshHours) * time.Hour
	return s.now().Sub(s.ratesFetchedAt) >= refreshInterval
}
