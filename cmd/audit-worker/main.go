package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"pledgestack/internal/config"
	"pledgestack/internal/events"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"
)

func main() {
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Info(ctx, "Starting audit worker...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	consumer := events.NewConsumer(events.ConsumerConfig{
		Brokers: strings.Split(cfg.Kafka.Brokers, ","),
		Topic:   cfg.Kafka.AuditTopic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)
	recorder := events.NewRecorder(&dataStore, logger)

	done := make(chan error, 1)
	go func() {
		logger.Info(ctx, fmt.Sprintf("Consuming audit events from %s", cfg.Kafka.AuditTopic))
		done <- consumer.ConsumeAuditEvents(ctx, recorder.Record)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info(ctx, "Shutting down audit worker...")
		cancel()
		<-done
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "audit consumer stopped with error", err)
		}
	}

	consumer.Close()
	dataStore.Close()
	logger.Info(ctx, "Audit worker stopped")
}
