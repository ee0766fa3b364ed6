package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kube-rca/incident-predictor/internal/model"
)

type fakeChecker struct {
	up    atomic.Bool
	calls atomic.Int32
}

func (f *fakeChecker) CheckConnection(ctx context.Context) bool {
	f.calls.Add(1)
	return f.up.Load()
}

func TestProbeStateTransitions(t *testing.T) {
	checker := &fakeChecker{}
	svc := NewProbeService(checker, "ollama", time.Second, nil, nil)

	state, checkedAt := svc.State()
	assert.Equal(t, model.ConnectionUnknown, state)
	assert.Nil(t, checkedAt)

	assert.False(t, svc.CheckNow(context.Background()))
	state, checkedAt = svc.State()
	assert.Equal(t, model.ConnectionOffline, state)
	require.NotNil(t, checkedAt)

	checker.up.Store(true)
	assert.True(t, svc.CheckNow(context.Background()))
	state, _ = svc.State()
	assert.Equal(t, model.ConnectionOnline, state)
}

func TestProbeRunTicksUntilCanceled(t *testing.T) {
	checker := &fakeChecker{}
	checker.up.Store(true)
	svc := NewProbeService(checker, "ollama", 10*time.Millisecond, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	assert.Eventually(t, func() bool { return checker.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	state, _ := svc.State()
	assert.Equal(t, model.ConnectionOnline, state)
}
