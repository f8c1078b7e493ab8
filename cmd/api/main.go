package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sync-api/infrastructure/integrator/meli/meliclient"
	"github.com/vfg2006/meli-sync-api/infrastructure/repository"
	"github.com/vfg2006/meli-sync-api/internal/api"
	"github.com/vfg2006/meli-sync-api/internal/config"
	"github.com/vfg2006/meli-sync-api/internal/scheduler"
	"github.com/vfg2006/meli-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/meli-sync-api/internal/usecases/authorizing"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
)

func main() {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tokenRepo := repository.NewTokenRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)

	// Contas descobertas do ambiente; o orquestrador é o dono do conjunto pelo
	// tempo de vida do processo
	accounts := config.LoadAccounts()
	if len(accounts) == 0 {
		logrus.Warn("Nenhuma conta MeLi configurada; o serviço seguirá sem sincronizar")
	}

	meliClient := meliclient.NewClient(cfg)
	authorizer := authorizing.NewService(meliClient, tokenRepo)
	aggregator := aggregating.NewService(meliClient)

	syncer := syncing.NewService(accounts, authorizer, aggregator, revenueRepo)

	revenueSyncService := scheduler.NewRevenueSyncService(syncer, cfg)
	if err := revenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de faturamento")
	} else {
		logrus.Info("Agendador de sincronização de faturamento iniciado com sucesso")
	}

	server, err := api.New(cfg, syncer, revenueSyncService, revenueRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
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
