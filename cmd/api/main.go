package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/infrastructure/cache"
	"github.com/vfg2006/sales-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix"
	"github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/bitrixclient"
	"github.com/vfg2006/sales-reports-api/internal/api"
	"github.com/vfg2006/sales-reports-api/internal/config"
	"github.com/vfg2006/sales-reports-api/internal/scheduler"
	"github.com/vfg2006/sales-reports-api/internal/usecases/reporting"
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

	// O banco só é necessário quando o cache fica no PostgreSQL
	var queryer postgres.Queryer
	if cfg.Reports.Cache.Driver == config.CacheDriverPostgres {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		queryer = pgConn
	}

	store, err := cache.New(cfg.Reports.Cache, queryer)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cache")
	}

	bitrixClient := bitrixclient.NewClient(cfg)
	bitrixIntegrator := bitrix.New(bitrixClient)

	reportService := reporting.NewService(cfg, bitrixIntegrator, store)

	cachePurgeService := scheduler.NewCachePurgeService(store, cfg)
	if err := cachePurgeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache")
	} else {
		logrus.Info("Agendador de limpeza do cache iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService, cachePurgeService)
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
