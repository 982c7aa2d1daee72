package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m04kA/PhotoStudio-BookingService/internal/config"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
	"github.com/m04kA/PhotoStudio-BookingService/internal/notifier"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/logger"
)

// Воркер уведомлений: читает события бронирований из kafka
// и рассылает письма клиентам
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.Kafka.Enabled {
		log.Fatal("Kafka is disabled in config, notifier has nothing to consume")
	}

	log.Info("Starting notifier worker (brokers=%v, topic=%s, group=%s)",
		cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)

	consumer := stream.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	defer consumer.Close()

	sender := notifier.NewSender(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down notifier...")
		cancel()
	}()

	for {
		event, err := consumer.Fetch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("Notifier stopped")
				return
			}
			log.Error("Failed to fetch event: %v", err)
			continue
		}

		if err := sender.Send(ctx, event); err != nil {
			log.Error("Failed to send notification for booking %s: %v", event.BookingID, err)
		}
	}
}
