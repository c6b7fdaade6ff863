package main

import (
	"context"
	"os"

	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/infrastructure/mailer"
	"github.com/vfg2006/orbit-api/infrastructure/messaging"
	"github.com/vfg2006/orbit-api/infrastructure/repository"
	"github.com/vfg2006/orbit-api/internal/api"
	"github.com/vfg2006/orbit-api/internal/api/handler"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/internal/scheduler"
	"github.com/vfg2006/orbit-api/internal/usecases/authenticating"
	"github.com/vfg2006/orbit-api/internal/usecases/clienting"
	"github.com/vfg2006/orbit-api/internal/usecases/dashboarding"
	"github.com/vfg2006/orbit-api/internal/usecases/invoicing"
	"github.com/vfg2006/orbit-api/internal/usecases/projecting"
	"github.com/vfg2006/orbit-api/internal/usecases/timetracking"
	"github.com/vfg2006/orbit-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(log.Options{Level: cfg.App.LogLevel, Env: cfg.App.Env, Output: os.Stdout})
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	tokenRepo := repository.NewTokenRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	timeEntryRepo := repository.NewTimeEntryRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)
	healthSnapshotRepo := repository.NewHealthSnapshotRepository(pgConn)

	sender, closeSender := mailSender(cfg)
	defer closeSender()
	notifier := mailer.NewNotifier(sender, cfg.App, cfg.Auth)

	authenticator := authenticating.NewService(userRepo, tokenRepo, notifier, cfg.Auth)
	clientService := clienting.NewService(clientRepo)
	projectService := projecting.NewService(projectRepo, clientRepo)
	invoiceService := invoicing.NewService(invoiceRepo, clientRepo, projectRepo)
	timeTracker := timetracking.NewService(timeEntryRepo, projectRepo)
	dashboardService := dashboarding.NewService(dashboardRepo, healthSnapshotRepo, userRepo)

	invoiceOverdueSyncService := scheduler.NewInvoiceOverdueSyncService(invoiceService, cfg)
	healthSnapshotSyncService := scheduler.NewHealthSnapshotSyncService(userRepo, dashboardService, cfg)
	tokenCleanupSyncService := scheduler.NewTokenCleanupSyncService(tokenRepo, cfg)

	// Inicia os agendadores em background
	if err := invoiceOverdueSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de faturas vencidas")
	} else {
		log.L.Info("Agendador de faturas vencidas iniciado com sucesso")
	}

	if err := healthSnapshotSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de snapshots de saúde")
	} else {
		log.L.Info("Agendador de snapshots de saúde iniciado com sucesso")
	}

	if err := tokenCleanupSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de limpeza de tokens")
	}

	server := api.New(cfg, api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		Clients:       clientService,
		Projects:      projectService,
		Invoices:      invoiceService,
		TimeTracker:   timeTracker,
		Dashboard:     dashboardService,
		CronJobs: handler.CronJobServices{
			InvoiceOverdueSyncService: invoiceOverdueSyncService,
			HealthSnapshotSyncService: healthSnapshotSyncService,
			TokenCleanupSyncService:   tokenCleanupSyncService,
		},
	})

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// mailSender escolhe entre a fila AMQP e o envio direto via SMTP
func mailSender(cfg *config.Config) (mailer.Sender, func()) {
	if !cfg.AMQP.Enabled {
		log.L.Info("Envio de e-mails direto via SMTP")
		return mailer.NewSMTPSender(cfg.SMTP), func() {}
	}

	client, err := messaging.NewClient(cfg.AMQP)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar no broker AMQP")
	}

	log.L.WithField("queue", cfg.AMQP.Queue).Info("Envio de e-mails via fila")
	return mailer.NewQueueSender(client), func() { _ = client.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
