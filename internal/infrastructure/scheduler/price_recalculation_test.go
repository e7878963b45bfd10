package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecalculator struct {
	calls  atomic.Int64
	result RecalculationResult
	err    error
}

func (f *fakeRecalculator) RecalculateAll(_ context.Context) (RecalculationResult, error) {
	f.calls.Add(1)
	return f.result, f.err
}

func TestPriceRecalculationScheduler_TriggerNow(t *testing.T) {
	recalc := &fakeRecalculator{result: RecalculationResult{PairsChecked: 4, PriceChanges: 2}}
	s := NewPriceRecalculationScheduler(Config{Interval: time.Hour, JobTimeout: time.Minute}, recalc, zap.NewNop())

	result, err := s.TriggerNow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, result.PairsChecked)
	assert.Equal(t, 2, result.PriceChanges)
	assert.Equal(t, int64(1), recalc.calls.Load())
}

func TestPriceRecalculationScheduler_TriggerNowError(t *testing.T) {
	recalc := &fakeRecalculator{err: errors.New("db down")}
	s := NewPriceRecalculationScheduler(Config{Interval: time.Hour, JobTimeout: time.Minute}, recalc, zap.NewNop())

	_, err := s.TriggerNow(context.Background())
	assert.Error(t, err)
}

func TestPriceRecalculationScheduler_RunsOnTicker(t *testing.T) {
	recalc := &fakeRecalculator{}
	s := NewPriceRecalculationScheduler(Config{Interval: 10 * time.Millisecond, JobTimeout: time.Second}, recalc, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	// Start is idempotent
	require.NoError(t, s.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return recalc.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))

	settled := recalc.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, recalc.calls.Load())
}
