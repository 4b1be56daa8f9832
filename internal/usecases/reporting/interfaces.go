package reporting

import (
	"context"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
)

// Reporter define a interface do fluxo de relatórios do painel
type Reporter interface {
	// GetReport monta o relatório de um período, servindo dias frescos do
	// cache ou do armazenamento e buscando os demais no Ad Manager
	GetReport(ctx context.Context, userID int, filters *domain.ReportFilters) (*domain.RangeReport, error)

	// RefreshDay força a busca de um dia no Ad Manager, ignorando o frescor
	RefreshDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.DailyReport, error)

	// SyncDay é a variante do RefreshDay usada pelo worker de fundo. A busca é
	// idêntica, mas não conta como requisição de usuário no SyncControl
	SyncDay(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.DailyReport, error)

	// GetFreshness descreve a idade e a origem do relatório de um dia sem buscá-lo
	GetFreshness(ctx context.Context, userID int, date time.Time, dimension domain.ReportDimension) (*domain.FreshnessInfo, error)

	// Control expõe a coordenação entre o worker de fundo e as requisições
	Control() *SyncControl
}
