package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-restock/internal/scheduler"
	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

type countingJob struct {
	calls   atomic.Int32
	err     error
	hasDead atomic.Bool
}

func (j *countingJob) Run(ctx context.Context) error {
	j.calls.Add(1)
	_, ok := ctx.Deadline()
	j.hasDead.Store(ok)
	return j.err
}

func TestNew_ExpresionVaciaDesactiva(t *testing.T) {
	s, err := scheduler.New("", &countingJob{}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	s.Start()
	s.Stop(context.Background())
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := scheduler.New("cada lunes", &countingJob{}, logger.Nop())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := scheduler.New("0 6 * * *", &countingJob{}, logger.Nop())
	require.NoError(t, err)
	assert.True(t, s.Enabled())

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestRunNow_ConTimeoutYErrores(t *testing.T) {
	job := &countingJob{err: errors.New("backend caído")}
	s, err := scheduler.New("@every 1h", job, logger.Nop())
	require.NoError(t, err)

	s.RunNow()
	s.RunNow()
	assert.Equal(t, int32(2), job.calls.Load())
	assert.True(t, job.hasDead.Load())
}
