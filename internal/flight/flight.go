package flight

import "sync"

// Episode is one pending-or-settled execution. Every caller that observed it
// while in flight shares the same settlement outcome.
type Episode struct {
	done chan struct{}
	err  error
}

// Wait blocks until the episode settles and returns its error. Wait does not
// observe context cancellation: liveness is inherited from the function the
// episode runs.
func (e *Episode) Wait() error {
	<-e.done
	return e.err
}

// settle publishes the outcome. The write to err happens before the channel
// close, so every Wait observes it.
func (e *Episode) settle(err error) {
	e.err = err
	close(e.done)
}

// Gate coalesces concurrent demand for one operation into a single execution.
// At most one episode is in flight per Gate at any instant. The zero value is
// ready to use.
type Gate struct {
	mu  sync.Mutex
	cur *Episode
}

// Pending returns the in-flight episode, if any.
func (g *Gate) Pending() (*Episode, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cur, g.cur != nil
}

// Do joins the in-flight episode, creating one by running fn in the calling
// goroutine when none exists. It returns the episode's error and whether this
// call was the one that ran fn.
//
// The existence check and the installation of a new episode happen under one
// lock acquisition, so fn runs at most once per episode no matter how many
// callers race into Do. The episode slot is cleared back to empty before the
// settlement is published, so a waiter that resumes and immediately fails
// again starts a fresh episode rather than re-joining the settled one.
func (g *Gate) Do(fn func() error) (err error, ran bool) {
	g.mu.Lock()
	if g.cur != nil {
		ep := g.cur
		g.mu.Unlock()
		return ep.Wait(), false
	}

	ep := &Episode{done: make(chan struct{})}
	g.cur = ep
	g.mu.Unlock()

	result := fn()

	g.mu.Lock()
	g.cur = nil
	g.mu.Unlock()
	ep.settle(result)

	return result, true
}
