// Package shipment_events публикует события отправок в Kafka без ожидания брокера.
package shipment_events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      handlerLogger
	wg       sync.WaitGroup
}

// New запускает чтение Successes/Errors продюсера; Close дожидается его завершения.
func New(log handlerLogger, producer sarama.AsyncProducer, topic string) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		log: log.With(
			logger.NewField("topic", topic),
		),
	}

	p.wg.Add(2)
	go p.drainSuccesses()
	go p.drainErrors()

	return p
}

// Notify кладет событие в буфер продюсера. Если буфер полон, событие теряется
// с записью в лог и метрику, вызывающий не блокируется.
func (p *Publisher) Notify(_ context.Context, event entities.ShipmentEvent) {
	kind := event.Kind.String()
	eventLog := p.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("kind", kind),
	)

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		ShipmentEventsTotal.WithLabelValues(kind, resultDropped).Inc()
		eventLog.With(logger.NewField("error", err)).Error("shipment event encode failed")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic:    p.topic,
		Key:      sarama.StringEncoder(event.ShipmentID.String()),
		Value:    sarama.ByteEncoder(payload),
		Metadata: kind,
	}

	select {
	case p.producer.Input() <- msg:
		ShipmentEventsTotal.WithLabelValues(kind, resultEnqueued).Inc()
	default:
		ShipmentEventsTotal.WithLabelValues(kind, resultDropped).Inc()
		eventLog.Warn("shipment event dropped, producer buffer is full")
	}
}

// Close сбрасывает накопленные сообщения и закрывает продюсер.
func (p *Publisher) Close() error {
	p.producer.AsyncClose()
	p.wg.Wait()
	return nil
}

func (p *Publisher) drainSuccesses() {
	defer p.wg.Done()

	for msg := range p.producer.Successes() {
		ShipmentEventsTotal.WithLabelValues(metadataKind(msg), resultDelivered).Inc()
	}
}

func (p *Publisher) drainErrors() {
	defer p.wg.Done()

	for perr := range p.producer.Errors() {
		ShipmentEventsTotal.WithLabelValues(metadataKind(perr.Msg), resultFailed).Inc()
		p.log.With(
			logger.NewField("error", perr.Err),
			logger.NewField("kind", metadataKind(perr.Msg)),
		).Error("shipment event publish failed")
	}
}

func metadataKind(msg *sarama.ProducerMessage) string {
	if msg == nil {
		return ""
	}
	kind, _ := msg.Metadata.(string)
	return kind
}

// DecodeMessage разбирает значение сообщения топика.
func DecodeMessage(value []byte) (entities.ShipmentEvent, error) {
	var m Message
	if err := json.Unmarshal(value, &m); err != nil {
		return entities.ShipmentEvent{}, err
	}
	return m.ToDomain(), nil
}
