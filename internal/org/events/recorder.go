package events

import (
	"context"

	"github.com/gartstein/orgchart/internal/org/models"
	"go.uber.org/zap"
)

type ActivityStore interface {
	RecordActivity(ctx context.Context, activity *models.Activity) error
}

// Recorder persists events as activity log entries. It serves as the
// consumer handler, or directly as the producer when Kafka is disabled.
type Recorder struct {
	store  ActivityStore
	logger *zap.Logger
}

func NewRecorder(store ActivityStore, logger *zap.Logger) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger.Named("activity_recorder"),
	}
}

// Handle records one event.
func (r *Recorder) Handle(ctx context.Context, event Event) error {
	return r.store.RecordActivity(ctx, event.Activity())
}

// Produce records the event synchronously and only logs failures.
func (r *Recorder) Produce(event Event) {
	if err := r.Handle(context.Background(), event); err != nil {
		r.logger.Error("Failed to record activity",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("subject_id", event.SubjectID.String()),
		)
	}
}
