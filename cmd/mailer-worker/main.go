package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/orbit-api/infrastructure/mailer"
	"github.com/vfg2006/orbit-api/infrastructure/messaging"
	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(log.Options{Level: cfg.App.LogLevel, Env: cfg.App.Env, Output: os.Stdout})
	log.L.Info("Iniciando mailer-worker")

	client, err := messaging.NewClient(cfg.AMQP)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar no broker AMQP")
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := mailer.NewDeliveryHandler(mailer.NewSMTPSender(cfg.SMTP))

	if err := client.Consume(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
		log.L.WithError(err).Error("Consumo de mensagens interrompido")
		return
	}

	log.L.Info("mailer-worker encerrado")
}
