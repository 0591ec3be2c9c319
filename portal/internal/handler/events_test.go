package handler_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/library-portal/pkg/kafka"
	"github.com/Astemirdum/library-portal/portal/internal/handler"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestEventLog_Log(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)

	ev := kafka.CirculationEvent{
		Event:    kafka.EventIssued,
		UserID:   5,
		Username: "alice",
		BookID:   7,
		BookName: "Dune",
		At:       time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.CirculationEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		require.Equal(t, ev, got)
		return nil
	})

	el := handler.NewEventLog(producer, kafka.CirculationTopic)
	require.NoError(t, el.Log(ev))
	require.NoError(t, producer.Close())
}

func TestEventLog_LogError(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	el := handler.NewEventLog(producer, kafka.CirculationTopic)
	require.Error(t, el.Log(kafka.CirculationEvent{Event: kafka.EventReturned}))
	require.NoError(t, producer.Close())
}
