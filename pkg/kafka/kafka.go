package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	CirculationTopic = "portal.circulation"

	EventIssued   = "issued"
	EventReturned = "returned"
)

type CirculationEvent struct {
	Event    string    `json:"event"`
	UserID   int       `json:"user_id"`
	Username string    `json:"username"`
	BookID   int       `json:"book_id"`
	BookName string    `json:"book_name"`
	At       time.Time `json:"at"`
}

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
