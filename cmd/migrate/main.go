package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/infrastructure/cache"
	"github.com/vfg2006/sales-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reports-api/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := cache.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
