package shardqueue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const waitFor = time.Second

// occupy submits a job on key's shard that runs until the returned release
// func is called, and waits until the worker has picked it up.
func occupy(t *testing.T, ex *ShardExecutor, key string) (release func()) {
	t.Helper()
	started := make(chan struct{})
	hold := make(chan struct{})
	require.NoError(t, ex.Submit(context.Background(), key, JobFunc(func(context.Context) error {
		close(started)
		<-hold
		return nil
	})))
	select {
	case <-started:
	case <-time.After(waitFor):
		t.Fatal("blocking job never started")
	}
	var once sync.Once
	release = func() { once.Do(func() { close(hold) }) }
	t.Cleanup(release)
	return release
}

// signal returns a job that closes ch when it runs.
func signal(ch chan struct{}) Job {
	return JobFunc(func(context.Context) error {
		close(ch)
		return nil
	})
}

func waitClosed(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(waitFor):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func ok(context.Context) error { return nil }
