package framework

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestRunnerStop(t *testing.T) {
	r := NewRunner()
	var stopped int32
	wait := RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		atomic.AddInt32(&stopped, 1)
		return ctx.Err()
	})
	r.Go(wait, NamedRun("named", wait))
	r.Stop()
	require.NoError(t, r.Wait())
	require.Equal(t, int32(2), atomic.LoadInt32(&stopped))
}

func TestRunnerFailureCancelsOthers(t *testing.T) {
	r := NewRunner()
	r.Go(
		NamedRun("waiter", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})),
		NamedRun("failing", RunFunc(func(ctx context.Context) error {
			return errBoom
		})),
	)
	err := r.Wait()
	require.Error(t, err)
	require.True(t, errors.Is(err, errBoom))
	var re *RunError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "failing", re.Name)
	require.Equal(t, "failing: boom", err.Error())
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errBoom, nil, io.EOF)
	require.Equal(t, "2 errors:\n  boom\n  EOF", errs.Error())
	require.True(t, errors.Is(errs.Aggregate(), io.EOF))
}

type closer struct {
	closed int32
	ch     chan struct{}
}

func (c *closer) Close() error {
	if atomic.AddInt32(&c.closed, 1) == 1 {
		close(c.ch)
	}
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	c := &closer{ch: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := RunWithContextCloser(ctx, c, func() error {
		<-c.ch
		return io.EOF
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&c.closed))

	c = &closer{ch: make(chan struct{})}
	err = RunWithContextCloser(context.Background(), c, func() error {
		return errBoom
	})
	require.Equal(t, errBoom, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&c.closed))
}
