package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"

	"singmeasong/pkg/logging"
	"singmeasong/recommendation/pkg/model"
)

// pollTimeout bounds each read so cancellation is noticed.
const pollTimeout = time.Second

// Ingester defines a Kafka vote ingester.
type Ingester struct {
	consumer *kafka.Consumer
	topic    string
	logger   *zap.Logger
}

// NewIngester creates a new Kafka ingester.
func NewIngester(addr string, groupID string, topic string, logger *zap.Logger) (*Ingester, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "kafka-ingester"),
		zap.String("topic", topic),
	)
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}
	return &Ingester{consumer: consumer, topic: topic, logger: logger}, nil
}

// Ingest starts ingestion from Kafka and returns a channel of the vote
// events consumed from the topic. The channel is closed once ctx is done.
func (i *Ingester) Ingest(ctx context.Context) (chan model.VoteEvent, error) {
	i.logger.Info("Starting Kafka ingester")
	if err := i.consumer.SubscribeTopics([]string{i.topic}, nil); err != nil {
		return nil, err
	}

	ch := make(chan model.VoteEvent, 1)
	go func() {
		defer func() {
			close(ch)
			if err := i.consumer.Close(); err != nil {
				i.logger.Warn("Failed to close consumer", zap.Error(err))
			}
		}()
		for {
			if ctx.Err() != nil {
				return
			}
			msg, err := i.consumer.ReadMessage(pollTimeout)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				i.logger.Warn("Consumer error", zap.Error(err))
				continue
			}
			event, err := decodeVote(msg.Value)
			if err != nil {
				i.logger.Warn("Skipping malformed vote", zap.Error(err))
				continue
			}
			select {
			case ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func decodeVote(data []byte) (model.VoteEvent, error) {
	var event model.VoteEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return event, err
	}
	if event.RecommendationID <= 0 {
		return event, errors.New("vote without recommendation id")
	}
	switch event.Direction {
	case model.VoteDirectionUp, model.VoteDirectionDown:
		return event, nil
	default:
		return event, errors.New("vote with unknown direction " + string(event.Direction))
	}
}
