package run

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/golang/glog"
)

// ErrForcedExit is returned by Wait when a second stop signal arrives
// before the runnables finish.
var ErrForcedExit = errors.New("forced exit")

// Runner spawns Runnables under a shared context and waits for them.
type Runner struct {
	Context context.Context

	spawned int
	errCh   chan error
	forceCh chan struct{}
}

// NewRunner creates a runner with a background context.
func NewRunner() *Runner {
	return NewRunnerWith(context.Background())
}

// NewRunnerWith creates a runner with a specified context.
func NewRunnerWith(ctx context.Context) *Runner {
	return &Runner{
		Context: ctx,
		errCh:   make(chan error, 1),
		forceCh: make(chan struct{}),
	}
}

// HandleSignals cancels the runner context on the first interrupt or
// SIGTERM; a second signal makes Wait give up on the runnables.
func (r *Runner) HandleSignals() *Runner {
	ctx, cancel := context.WithCancel(r.Context)
	r.Context = ctx
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		glog.Info("stop requested")
		cancel()
		<-sigCh
		glog.Error("stop requested again, force exit")
		close(r.forceCh)
	}()
	return r
}

// Go spawns runnables with the runner context.
func (r *Runner) Go(runnables ...Runnable) *Runner {
	for _, rn := range runnables {
		name := runnableName(rn, r.spawned)
		r.spawned++
		go func(rn Runnable, name string) {
			glog.V(4).Infof("runner[%s] started", name)
			r.errCh <- rn.Run(r.Context)
			glog.V(4).Infof("runner[%s] stopped", name)
		}(rn, name)
	}
	return r
}

func runnableName(r Runnable, index int) string {
	if named, ok := r.(Named); ok {
		return named.Name()
	}
	return strconv.Itoa(index)
}

// Wait blocks until every spawned runnable returns and aggregates their
// errors. Plain context cancellation counts as an orderly stop, not an
// error.
func (r *Runner) Wait() error {
	var errs AggregatedError
	for ; r.spawned > 0; r.spawned-- {
		select {
		case <-r.forceCh:
			return ErrForcedExit
		case err := <-r.errCh:
			if err != context.Canceled {
				errs.Add(err)
			}
		}
	}
	return errs.Aggregate()
}
