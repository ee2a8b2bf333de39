// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-scim-owner/models"
)

// spyDirectoryClient counts FetchAll calls; every other method panics
// through the nil embedded interface.
type spyDirectoryClient struct {
	DirectoryClient

	calls atomic.Int64
	err   error
}

func (s *spyDirectoryClient) FetchAll(_ context.Context) ([]models.Member, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []models.Member{{ID: "m"}}, nil
}

// ── NewRefreshJob ────────────────────────────────────────────────────────────

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewRefreshJob(&spyDirectoryClient{})
	require.NotNil(t, job)

	var _ BackgroundJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_CallsFetchAll(t *testing.T) {
	spy := &spyDirectoryClient{}
	job := NewRefreshJob(spy)

	var results atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func(members []models.Member, err error) {
		if err == nil && len(members) == 1 {
			results.Add(1)
		}
	})
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "FetchAll should run several times, ran %d", got)
	// the last fetch may be cut short by Stop before its result is delivered
	assert.InDelta(t, got, results.Load(), 1)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyDirectoryClient{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyDirectoryClient{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyDirectoryClient{})

	job.Start(context.Background(), 10*time.Millisecond, nil)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyDirectoryClient{}
		job := NewRefreshJob(spy)

		job.Start(context.Background(), interval, nil)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load(), "interval %v falls back to %v", interval, DefaultRefreshInterval)
	}
}

func TestRefreshJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyDirectoryClient{}
	job := NewRefreshJob(spy)
	ctx := context.Background()

	var first, second atomic.Int64
	job.Start(ctx, 10*time.Millisecond, func([]models.Member, error) { first.Add(1) })
	time.Sleep(30 * time.Millisecond)

	job.Start(ctx, 10*time.Millisecond, func([]models.Member, error) { second.Add(1) })
	firstAtRestart := first.Load()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, firstAtRestart, int64(0))
	assert.Equal(t, firstAtRestart, first.Load(), "old callback must not fire after restart")
	assert.Greater(t, second.Load(), int64(0))
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewRefreshJob(&spyDirectoryClient{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestRefreshJob_FetchError_DoesNotStopJob(t *testing.T) {
	spy := &spyDirectoryClient{err: assert.AnError}
	job := NewRefreshJob(spy)

	var errs atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func(_ []models.Member, err error) {
		if err != nil {
			errs.Add(1)
		}
	})
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.InDelta(t, spy.calls.Load(), errs.Load(), 1)
}
