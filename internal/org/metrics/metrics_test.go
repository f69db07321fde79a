package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeNotFound, Outcome(fmt.Errorf("%w: department", e.ErrNotFound)))
	assert.Equal(t, OutcomeBadRequest, Outcome(e.ErrHeadRemoval))
	assert.Equal(t, OutcomeConflict, Outcome(e.ErrManagerAlreadyAssigned))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(OperationsTotal.WithLabelValues("test_op", OutcomeConflict))

	Observe("test_op", time.Now(), e.ErrDuplicateCode)

	after := testutil.ToFloat64(OperationsTotal.WithLabelValues("test_op", OutcomeConflict))
	assert.Equal(t, before+1, after)
	assert.Equal(t, 1, testutil.CollectAndCount(OperationDuration, "orgchart_operation_duration_seconds"))
}
