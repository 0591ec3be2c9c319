package handler

import (
	"encoding/json"

	"github.com/Astemirdum/library-portal/pkg/kafka"
	"github.com/IBM/sarama"
)

// EventLog publishes circulation events (issue, borrow, return) for
// downstream consumers. Publishing is best-effort: callers log failures and
// move on.
type EventLog interface {
	Log(ev kafka.CirculationEvent) error
}

type eventLog struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventLog(producer sarama.SyncProducer, topic string) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Log(ev kafka.CirculationEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	_, _, err = l.producer.SendMessage(msg)
	return err
}

type nopEventLog struct{}

// NewNopEventLog is used when no brokers are configured.
func NewNopEventLog() nopEventLog { return nopEventLog{} }

func (nopEventLog) Log(kafka.CirculationEvent) error { return nil }
