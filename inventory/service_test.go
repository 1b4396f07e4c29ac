package inventory

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/worker"
)

// stubWorker overrides Stop only; any other call panics on the nil embed.
type stubWorker struct {
	worker.Worker
	release chan struct{}
	stopped atomic.Bool
}

func (w *stubWorker) Stop() {
	<-w.release
	w.stopped.Store(true)
}

func TestShutdown(t *testing.T) {
	testCases := []struct {
		name            string
		drained         bool
		expectedStopped bool
	}{
		{
			name:            "worker_drains",
			drained:         true,
			expectedStopped: true,
		},
		{
			name:            "forced_before_drain",
			drained:         false,
			expectedStopped: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := &stubWorker{release: make(chan struct{})}
			if tc.drained {
				close(w.release)
			} else {
				defer close(w.release)
			}
			mockClient := mocks.NewClient(t)
			mockClient.On("Close").Return().Once()

			service := &Service{temporal: mockClient, worker: w}

			force, cancel := context.WithCancel(context.Background())
			if !tc.drained {
				cancel()
			} else {
				defer cancel()
			}

			done := make(chan struct{})
			go func() {
				defer close(done)
				service.Shutdown(force)
			}()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("Shutdown did not return")
			}
			assert.Equal(t, tc.expectedStopped, w.stopped.Load())
		})
	}
}
