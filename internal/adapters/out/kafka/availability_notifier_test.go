package kafka

import (
	"encoding/json"
	"log/slog"
	"testing"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAggregate(t *testing.T) *order.Order {
	t.Helper()

	senderAddress, err := kernel.NewAddress("12 Harborne Road", "Birmingham", "B15 3AA")
	require.NoError(t, err)
	receiverAddress, err := kernel.NewAddress("3 Deansgate", "Manchester", "M3 2AY")
	require.NoError(t, err)

	sender, err := order.NewParty("Ada Brown", "+44 121 555 0199", "", senderAddress)
	require.NoError(t, err)
	receiver, err := order.NewParty("Bo Clarke", "", "bo@example.com", receiverAddress)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), sender, receiver)
	require.NoError(t, err)
	return aggregate
}

func TestAvailabilityNotifier_PublishAvailabilityRequest(t *testing.T) {
	t.Run("should publish a sender event keyed by order id", func(t *testing.T) {
		aggregate := testAggregate(t)

		producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, aggregate.ID().String(), string(key))

			value, err := msg.Value.Encode()
			require.NoError(t, err)

			var event availabilityRequestEvent
			require.NoError(t, json.Unmarshal(value, &event))
			assert.Equal(t, aggregate.ID().String(), event.OrderID)
			assert.Equal(t, "sender", event.Party)
			assert.Equal(t, "Ada Brown", event.Name)
			assert.Equal(t, "+44 121 555 0199", event.Phone)
			assert.Equal(t, "Birmingham", event.City)
			return nil
		})

		notifier := NewAvailabilityNotifierWithProducer(producer, "availability-requests", slog.Default())
		err := notifier.PublishAvailabilityRequest(t.Context(), aggregate, order.SenderParty)

		require.NoError(t, err)
		require.NoError(t, producer.Close())
	})

	t.Run("should carry the receiver contact for receiver requests", func(t *testing.T) {
		aggregate := testAggregate(t)

		producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			value, err := msg.Value.Encode()
			require.NoError(t, err)

			var event availabilityRequestEvent
			require.NoError(t, json.Unmarshal(value, &event))
			assert.Equal(t, "receiver", event.Party)
			assert.Equal(t, "Bo Clarke", event.Name)
			assert.Equal(t, "bo@example.com", event.Email)
			assert.Equal(t, "Manchester", event.City)
			return nil
		})

		notifier := NewAvailabilityNotifierWithProducer(producer, "availability-requests", slog.Default())
		err := notifier.PublishAvailabilityRequest(t.Context(), aggregate, order.ReceiverParty)

		require.NoError(t, err)
		require.NoError(t, producer.Close())
	})

	t.Run("should surface a broker failure to the caller", func(t *testing.T) {
		aggregate := testAggregate(t)

		producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
		producer.ExpectSendMessageAndFail(assert.AnError)

		notifier := NewAvailabilityNotifierWithProducer(producer, "availability-requests", slog.Default())
		err := notifier.PublishAvailabilityRequest(t.Context(), aggregate, order.SenderParty)

		require.Error(t, err)
		require.NoError(t, producer.Close())
	})
}

func TestNewAvailabilityNotifier(t *testing.T) {
	t.Run("should reject an empty topic", func(t *testing.T) {
		_, err := NewAvailabilityNotifier([]string{"localhost:9092"}, "", slog.Default())
		require.Error(t, err)
	})
}
