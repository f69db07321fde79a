package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaReader implements KafkaReader for testing
type MockKafkaReader struct {
	mock.Mock
}

func (m *MockKafkaReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafka.Message), args.Error(1)
}

func (m *MockKafkaReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaReader) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestConsumer_Handle(t *testing.T) {
	event := testEvent()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	msg := kafka.Message{Key: []byte(event.SubjectID.String()), Value: value}

	t.Run("handled and committed", func(t *testing.T) {
		reader := new(MockKafkaReader)
		reader.On("CommitMessages", mock.Anything, mock.Anything).Return(nil)
		consumer := newConsumer(reader, zap.NewNop())

		var got Event
		consumer.RegisterHandler(func(_ context.Context, ev Event) error {
			got = ev
			return nil
		})
		consumer.handle(context.Background(), msg)

		assert.Equal(t, event.Type, got.Type)
		assert.Equal(t, event.SubjectID, got.SubjectID)
		assert.Equal(t, "admin", got.Actor)
		reader.AssertCalled(t, "CommitMessages", mock.Anything, []kafka.Message{msg})
	})

	t.Run("handler failure leaves the message uncommitted", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		reader := new(MockKafkaReader)
		consumer := newConsumer(reader, zap.New(core))
		consumer.RegisterHandler(func(context.Context, Event) error {
			return errors.New("store down")
		})

		consumer.handle(context.Background(), msg)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to handle event").Len())
		reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
	})

	t.Run("malformed message is skipped", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		reader := new(MockKafkaReader)
		reader.On("CommitMessages", mock.Anything, mock.Anything).Return(nil)
		consumer := newConsumer(reader, zap.New(core))
		called := false
		consumer.RegisterHandler(func(context.Context, Event) error {
			called = true
			return nil
		})

		consumer.handle(context.Background(), kafka.Message{Value: []byte("{not json")})

		assert.False(t, called)
		assert.Equal(t, 1, recorded.FilterMessage("Failed to parse event").Len())
		reader.AssertNumberOfCalls(t, "CommitMessages", 1)
	})
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := new(MockKafkaReader)
	fetched := make(chan struct{})
	reader.On("FetchMessage", mock.Anything).
		Run(func(mock.Arguments) {
			cancel()
			close(fetched)
		}).
		Return(kafka.Message{}, context.Canceled).
		Once()

	consumer := newConsumer(reader, zap.NewNop())
	consumer.Start(ctx)

	<-fetched
	reader.AssertNumberOfCalls(t, "FetchMessage", 1)
}

func TestConsumer_Close(t *testing.T) {
	core, recorded := observer.New(zap.ErrorLevel)
	reader := new(MockKafkaReader)
	reader.On("Close").Return(errors.New("broken"))

	newConsumer(reader, zap.New(core)).Close()

	assert.Equal(t, 1, recorded.FilterMessage("Failed to close Kafka reader").Len())
}
