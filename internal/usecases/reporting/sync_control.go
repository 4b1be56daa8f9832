package reporting

import (
	"sync"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

// SyncControl coordena a exclusão mútua entre o worker de sincronização e as
// requisições de usuários. O worker nunca compete com um usuário pela cota do
// Ad Manager: com requisições em andamento, a sincronização espera a próxima
// janela. Usuários nunca esperam pelo worker.
type SyncControl struct {
	mu                  sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	activeRequests      int
}

func NewSyncControl() *SyncControl {
	return &SyncControl{}
}

// BeginRequest marca a entrada de uma requisição de usuário
func (c *SyncControl) BeginRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activeRequests++
}

// EndRequest marca a saída de uma requisição de usuário
func (c *SyncControl) EndRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeRequests > 0 {
		c.activeRequests--
	}
}

// BeginSync tenta iniciar uma sincronização de fundo. Só uma roda por vez.
func (c *SyncControl) BeginSync() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.syncRunning {
		return ErrSyncAlreadyRunning
	}

	if c.activeRequests > 0 {
		return ErrUserRequestsInFlight
	}

	c.syncRunning = true
	c.lastSyncStartedAt = time.Now()

	return nil
}

// EndSync marca o fim da sincronização em andamento
func (c *SyncControl) EndSync() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncRunning = false
	c.lastSyncCompletedAt = time.Now()
}

// Busy informa se existe sincronização em andamento
func (c *SyncControl) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.syncRunning
}

// Status retorna o estado atual do worker para o endpoint de status
func (c *SyncControl) Status() *domain.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := &domain.SyncStatus{
		Running:              c.syncRunning,
		UserRequestsInFlight: c.activeRequests,
	}

	if !c.lastSyncStartedAt.IsZero() {
		startedAt := c.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}

	if !c.lastSyncCompletedAt.IsZero() {
		completedAt := c.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}
