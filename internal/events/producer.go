package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicUser = "user_events"
	TopicCart = "cart_events"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, event map[string]any) error
	Close() error
}

// Noop drops every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, string, map[string]any) error { return nil }
func (Noop) Close() error                                                  { return nil }

type Kafka struct {
	writer *kafka.Writer
}

func NewKafka(brokers []string) *Kafka {
	return &Kafka{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}}
}

func (k *Kafka) Publish(ctx context.Context, topic, key string, event map[string]any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}); err != nil {
		return fmt.Errorf("kafka: write %s: %w", topic, err)
	}
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

// New returns a Kafka publisher for brokers, or Noop when there are none.
func New(brokers []string) Publisher {
	if len(brokers) == 0 {
		return Noop{}
	}
	return NewKafka(brokers)
}

// Recorder keeps published events in memory.
type Recorder struct {
	Events []Recorded
}

type Recorded struct {
	Topic string
	Key   string
	Event map[string]any
}

func (r *Recorder) Publish(_ context.Context, topic, key string, event map[string]any) error {
	r.Events = append(r.Events, Recorded{Topic: topic, Key: key, Event: event})
	return nil
}

func (r *Recorder) Close() error { return nil }

// Types returns the "type" field of each recorded event in order.
func (r *Recorder) Types() []string {
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, fmt.Sprint(e.Event["type"]))
	}
	return out
}
