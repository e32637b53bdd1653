package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pledgestack/internal/clients/mail"
	"pledgestack/internal/config"
	"pledgestack/internal/notifications"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Info(ctx, "Starting notification worker...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
	if err != nil {
		log.Fatalf("Failed to create mail client: %v", err)
	}

	worker := notifications.NewWorker(&dataStore, mailClient, cfg.Mail.DefaultSender, logger)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Addr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				notifications.QueueHigh: 8,
				notifications.QueueLow:  2,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notifications.TypeDonorReceipt, worker.ProcessDonorReceiptTask)
	mux.HandleFunc(notifications.TypeDeclineNotice, worker.ProcessDeclineNoticeTask)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Notification worker started on Redis: %s", cfg.Redis.Addr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run worker server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down notification worker...")
	srv.Shutdown()
	dataStore.Close()
	logger.Info(ctx, "Notification worker stopped")
}
