package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"freight/internal/pkg/config"
	"freight/pkg/logger"
)

const (
	producerFlushFrequency = 100 * time.Millisecond
	producerChannelBuffer  = 1024
)

func NewProducerSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.ChannelBufferSize = producerChannelBuffer
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Producer.Flush.Frequency = producerFlushFrequency
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	return cfg, nil
}

// NewAsyncProducer ждет доступности брокеров так же, как консьюмер.
func NewAsyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.AsyncProducer, error) {
	saramaConfig, err := NewProducerSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	kafkaLog.Info("Kafka producer created")
	return producer, nil
}
