package api

import "context"

// Future is the pending result of a call running in its own goroutine
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

// Go starts call in a new goroutine and returns immediately.
// Any client method with the signature func(context.Context) (*Response, error)
// can be passed directly, e.g. api.Go(ctx, client.GetStatus).
func Go(ctx context.Context, call func(context.Context) (*Response, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.resp, f.err = call(ctx)
	}()
	return f
}

// Done is closed once the call has completed
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the call completes
func (f *Future) Wait() (*Response, error) {
	<-f.done
	return f.resp, f.err
}
