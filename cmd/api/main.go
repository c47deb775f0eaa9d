package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-transparency-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ad-transparency-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-transparency-api/infrastructure/repository"
	"github.com/vfg2006/ad-transparency-api/internal/api"
	"github.com/vfg2006/ad-transparency-api/internal/config"
	"github.com/vfg2006/ad-transparency-api/internal/scheduler"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/querying"
	"github.com/vfg2006/ad-transparency-api/internal/usecases/reporting"
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
	adSnapshotRepo := repository.NewAdSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := tiktokclient.NewTokenManager(cfg, nil)
	if _, err := tokenManager.Authenticate(cfg.TikTok.ClientKey, cfg.TikTok.ClientSecret); err != nil {
		logrus.WithError(err).Fatal("Erro ao autenticar com a API de transparência")
	}
	logrus.Info("Autenticação com a API de transparência concluída")

	tiktokClient := tiktokclient.NewClient(cfg, tokenManager)
	tiktokIntegrator := tiktok.New(cfg, tiktokClient)

	queryService := querying.NewService(cfg, tiktokIntegrator)
	reporter := reporting.NewService(adSnapshotRepo)

	// Inicializa o agendador de snapshots de anúncios
	adsSyncService := scheduler.NewAdsSyncService(
		queryService,
		adSnapshotRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := adsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de anúncios")
	} else {
		logrus.Info("Agendador de snapshots de anúncios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		queryService,
		authenticator,
		reporter,
		adsSyncService,
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
