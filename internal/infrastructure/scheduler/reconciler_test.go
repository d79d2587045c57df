package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"marketplace_payments/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReconciliation struct {
	runs atomic.Int32
	err  error
}

func (f *fakeReconciliation) ReconcileMission(context.Context, string) (usecase.ReconcileResult, error) {
	return usecase.ReconcileResult{}, nil
}

func (f *fakeReconciliation) ReconcilePaid(ctx context.Context) (usecase.ReconcileSummary, error) {
	f.runs.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return usecase.ReconcileSummary{}, errors.New("expected bounded context")
	}
	return usecase.ReconcileSummary{Scanned: 1}, f.err
}

func TestReconciler_RunsOnSchedule(t *testing.T) {
	fake := &fakeReconciliation{}
	r := NewReconciler(fake, "@every 1s")
	require.NoError(t, r.Start())
	t.Cleanup(func() { <-r.Stop().Done() })

	assert.Eventually(t, func() bool { return fake.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestReconciler_InvalidSchedule(t *testing.T) {
	r := NewReconciler(&fakeReconciliation{}, "not a schedule")
	assert.Error(t, r.Start())
}

func TestReconciler_DisabledWhenEmpty(t *testing.T) {
	fake := &fakeReconciliation{}
	r := NewReconciler(fake, "")
	require.NoError(t, r.Start())
	<-r.Stop().Done()
	assert.Zero(t, fake.runs.Load())
}

func TestReconciler_RunOnceSurvivesErrors(t *testing.T) {
	fake := &fakeReconciliation{err: errors.New("ledger down")}
	r := NewReconciler(fake, "@every 1h")
	r.RunOnce()
	r.RunOnce()
	assert.Equal(t, int32(2), fake.runs.Load())
}
