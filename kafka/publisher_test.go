package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockPublisher(t *testing.T) (*Publisher, *mocks.SyncProducer) {
	t.Helper()

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)

	return &Publisher{producer: producer}, producer
}

func TestPublishSendsEventWithSessionKeyPartitioning(t *testing.T) {
	publisher, producer := mockPublisher(t)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(raw []byte) error {
		var event IntentEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return err
		}
		assert.Equal(t, EventTypeCartItemAdded, event.EventType)
		assert.Equal(t, "session-1", event.SessionKey)
		assert.Equal(t, uint(1), event.ProductID)
		assert.NotEmpty(t, event.EventID)
		assert.False(t, event.Timestamp.IsZero())
		return nil
	})

	err := publisher.Publish(context.Background(), TopicCartEvents, IntentEvent{
		EventType:  EventTypeCartItemAdded,
		SessionKey: "session-1",
		ProductID:  1,
		Quantity:   2,
		CartTotal:  219.9,
	})

	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestPublishReturnsProducerError(t *testing.T) {
	publisher, producer := mockPublisher(t)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := publisher.Publish(context.Background(), TopicWishlistEvents, IntentEvent{
		EventType:  EventTypeWishlistItemAdded,
		SessionKey: "session-1",
		ProductID:  4,
	})

	assert.Error(t, err)
	require.NoError(t, publisher.Close())
}

func TestPublishKeepsCallerEventID(t *testing.T) {
	publisher, producer := mockPublisher(t)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(raw []byte) error {
		var event IntentEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return err
		}
		assert.Equal(t, "fixed-id", event.EventID)
		return nil
	})

	err := publisher.Publish(context.Background(), TopicCartEvents, IntentEvent{
		EventID:    "fixed-id",
		EventType:  EventTypeCartCleared,
		SessionKey: "session-1",
	})

	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}
