package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/cache"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/database/postgres"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/admanager/gamclient"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/integrator/exchange/exchangeclient"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/api"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/scheduler"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/account"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/aggregating"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/authenticating"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/currency"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/fetching"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	dayRecordRepo := repository.NewDayRecordRepository(pgConn)
	cacheEntryRepo := repository.NewCacheEntryRepository(pgConn)

	// Camada quente em Redis sobre a camada durável em Postgres. Redis fora do
	// ar não impede a subida: o cache degrada para a camada durável
	hotTier := cache.NewRedisTier(cfg.Redis)
	if err := hotTier.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível na subida, operando apenas com a camada durável")
	} else {
		logrus.Info("Conexão com Redis estabelecida com sucesso")
	}
	reportCache := cache.NewTieredCache(hotTier, cacheEntryRepo, cfg.Cache)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := gamclient.NewTokenManager(cfg, accountRepo)
	gamClient := gamclient.NewClient(cfg, tokenManager)
	adManagerIntegrator := admanager.New(cfg, gamClient)

	exchangeClient := exchangeclient.NewClient(cfg)
	exchangeIntegrator := exchange.New(cfg, exchangeClient)
	currencyService := currency.NewService(cfg, exchangeIntegrator)

	aggregator := aggregating.NewService(currencyService)
	fetchService := fetching.NewService(cfg, adManagerIntegrator, accountRepo)

	syncControl := reporting.NewSyncControl()
	reportService := reporting.NewService(
		cfg,
		reportCache,
		dayRecordRepo,
		fetchService,
		aggregator,
		syncControl,
	)

	accountService := account.NewService(accountRepo, reportCache, cfg)

	// Inicializa o agendador de sincronização de relatórios
	reportSyncService := scheduler.NewReportSyncService(
		reportService,
		dayRecordRepo,
		cacheEntryRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de relatórios")
	} else {
		logrus.Info("Agendador de sincronização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		reportCache,
		reportService,
		accountService,
		authenticator,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
