package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/shopads/shopadsclient"
	"github.com/vfg2006/ads-automation-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-automation-api/infrastructure/repository"
	"github.com/vfg2006/ads-automation-api/internal/api"
	"github.com/vfg2006/ads-automation-api/internal/config"
	"github.com/vfg2006/ads-automation-api/internal/scheduler"
	"github.com/vfg2006/ads-automation-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-automation-api/internal/usecases/evaluating"
	"github.com/vfg2006/ads-automation-api/internal/usecases/executing"
	"github.com/vfg2006/ads-automation-api/internal/usecases/scheduling"
	"github.com/vfg2006/ads-automation-api/internal/usecases/subscribing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	ruleRepo := repository.NewRuleRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	executionRepo := repository.NewRuleExecutionRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	shopAdsClient := shopadsclient.NewClient(cfg)
	shopAdsIntegrator := shopads.New(cfg, shopAdsClient)

	telegramNotifier := telegram.New(cfg, userRepo)

	schedulingService := scheduling.NewService(ruleRepo, cfg)
	evaluatingService := evaluating.NewService()
	executingService := executing.NewService(
		ruleRepo,
		storeRepo,
		executionRepo,
		shopAdsIntegrator,
		evaluatingService,
		telegramNotifier,
	)
	subscribingService := subscribing.NewService(subscriptionRepo, telegramNotifier)

	ruleWorkerService := scheduler.NewRuleWorkerService(
		schedulingService,
		executingService,
		subscribingService,
		cfg,
	)

	if err := ruleWorkerService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o worker de regras de automação")
	} else {
		logrus.Info("Worker de regras de automação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		ruleWorkerService,
		subscribingService,
		ruleRepo,
		executingService,
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
