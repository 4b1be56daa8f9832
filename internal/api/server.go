package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/cache"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/api/handler"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/api/handler/router"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/scheduler"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/account"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/authenticating"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	conn *postgres.Connection,
	reportCache cache.ReportCache,
	reportService reporting.Reporter,
	accountService account.AccountService,
	authenticator authenticating.Authenticator,
	reportSyncService *scheduler.ReportSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn, reportCache)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.NetworkAccounts(accountService)...),
		router.WithRoutes(handler.Sync(reportService, reportSyncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

const shutdownTimeout = 15 * time.Second

// Run serve até receber SIGINT/SIGTERM ou o cancelamento do contexto,
// e então desliga drenando as requisições em andamento
func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
