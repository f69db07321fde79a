package events_test

import (
	"context"
	"testing"

	"github.com/gartstein/orgchart/internal/org/db/dbtest"
	"github.com/gartstein/orgchart/internal/org/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorderProduce(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	recorder := events.NewRecorder(repo, zaptest.NewLogger(t))
	subject := uuid.New()

	recorder.Produce(events.NewEvent(events.EmployeeTransferred, events.EntityEmployee, subject, "admin", "moved to SALES"))

	logged, err := repo.ListActivity(context.Background(), &subject, 0)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, string(events.EmployeeTransferred), logged[0].Action)
	assert.Equal(t, events.EntityEmployee, logged[0].Entity)
	assert.Equal(t, "admin", logged[0].Actor)
	assert.Equal(t, "moved to SALES", logged[0].Description)
}

func TestRecorderProduceLogsFailure(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	require.NoError(t, repo.Close())

	core, recorded := observer.New(zap.ErrorLevel)
	recorder := events.NewRecorder(repo, zap.New(core))

	recorder.Produce(events.NewEvent(events.DepartmentCreated, events.EntityDepartment, uuid.New(), "", "created"))

	assert.Equal(t, 1, recorded.FilterMessage("Failed to record activity").Len())
}
