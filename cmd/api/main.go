package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-hub-api/infrastructure/repository"
	"github.com/vfg2006/campaign-hub-api/internal/api"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/scheduler"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/connecting"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
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
	credentialRepo := repository.NewCredentialRepository(pgConn)
	distributionRepo := repository.NewDistributionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	connectionService := connecting.NewService(credentialRepo)

	// Um distribuidor por plataforma, todos atrás do mesmo contrato
	registry := distributing.Registry{
		domain.PlatformMeta:     meta.New(cfg, metaclient.NewClient(cfg)),
		domain.PlatformGoogle:   googleads.New(cfg, googleclient.NewClient(cfg)),
		domain.PlatformTikTok:   tiktok.New(cfg, tiktokclient.NewClient(cfg)),
		domain.PlatformLinkedIn: linkedin.New(cfg, linkedinclient.NewClient(cfg)),
	}

	distributionService := distributing.NewService(registry, distributionRepo, cfg)

	// Inicializa o agendador de status de conexão
	connectionSyncService := scheduler.NewConnectionSyncService(connectionService, cfg)

	if err := connectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status de conexão")
	} else {
		logrus.Info("Agendador de status de conexão iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		distributionService,
		connectionService,
		authenticator,
		connectionSyncService,
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
