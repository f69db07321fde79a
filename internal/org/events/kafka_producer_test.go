package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testEvent() Event {
	return NewEvent(DepartmentDeleted, EntityDepartment, uuid.New(), "admin", "department SALES deleted")
}

func TestNewProducerWithoutBrokers(t *testing.T) {
	_, err := NewProducer(nil, zaptest.NewLogger(t), "org.events")
	assert.Error(t, err)
}

func TestProducer_Produce(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		producer := &Producer{events: make(chan Event, 1), logger: zaptest.NewLogger(t)}

		producer.Produce(testEvent())

		assert.Equal(t, 1, len(producer.events))
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		producer := &Producer{events: make(chan Event, 1), logger: zap.New(core)}
		event := testEvent()

		producer.Produce(event)
		producer.Produce(event) // This should be dropped

		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
		assert.Equal(t, 1, recorded.FilterField(zap.String("subject_id", event.SubjectID.String())).Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	producer := &Producer{
		writer: mockWriter,
		logger: zaptest.NewLogger(t),
	}
	event := testEvent()

	t.Run("successful send", func(t *testing.T) {
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

		producer.sendEvent(context.Background(), event)

		want, err := json.Marshal(event)
		require.NoError(t, err)
		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{
				Key:   []byte(event.SubjectID.String()),
				Value: want,
			},
		})
	})

	t.Run("serialization error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)

		oldMarshal := jsonMarshal
		jsonMarshal = func(_ interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
		assert.Equal(t, 1, recorded.FilterField(zap.String("subject_id", event.SubjectID.String())).Len())
	})

	t.Run("write error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)
		mockWriter.ExpectedCalls = nil
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})
}

// TestProducer_CloseFlushes checks that queued events are delivered before the writer closes.
func TestProducer_CloseFlushes(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)
	mockWriter.On("Close").Return(nil)

	producer := newProducer(mockWriter, zaptest.NewLogger(t), 4)
	producer.Produce(testEvent())
	producer.Produce(testEvent())

	producer.Close()

	mockWriter.AssertNumberOfCalls(t, "WriteMessages", 2)
	mockWriter.AssertCalled(t, "Close")

	select {
	case <-producer.closeChan:
	default:
		t.Error("closeChan not closed")
	}
}

func TestProducer_CloseLogsWriterError(t *testing.T) {
	core, recorded := observer.New(zap.ErrorLevel)
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(errors.New("broken"))

	producer := newProducer(mockWriter, zap.New(core), 1)
	producer.Close()

	assert.Equal(t, 1, recorded.FilterMessage("Failed to close Kafka writer").Len())
}
