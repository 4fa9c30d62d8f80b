// internal/scheduler/scheduler_test.go
package scheduler

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunNowExecutesJob(t *testing.T) {
	var runs atomic.Int32
	s := New(time.Hour, func() error {
		runs.Add(1)
		return nil
	})

	s.RunNow()
	assert.Equal(t, int32(1), runs.Load())
}

func TestRunNowSkipsWhenJobInFlight(t *testing.T) {
	var runs atomic.Int32
	block := make(chan struct{})
	started := make(chan struct{})

	s := New(time.Hour, func() error {
		runs.Add(1)
		close(started)
		<-block
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.RunNow()
	}()

	<-started
	s.RunNow() // must be skipped, not queued
	close(block)
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
}

func TestStartRunsOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := New(10*time.Millisecond, func() error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(55 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestStopWaitsForLoopExit(t *testing.T) {
	s := New(time.Hour, func() error { return nil })
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
