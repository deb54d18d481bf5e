package orchestrator

import "github.com/datasleuth/sleuth/pkg/investigation"

// stateKeeper serializes event appends during the fan-out phase. It is
// the single writer of the investigation state: hypothesis workers send
// append requests over a channel and receive the updated snapshot on a
// reply channel, so no lock guards the state and every worker observes
// a consistent, immutable value.
type stateKeeper struct {
	appendCh chan appendRequest
	guardCh  chan guardedAppendRequest
	snapCh   chan chan investigation.State
	stopCh   chan chan investigation.State
}

type appendRequest struct {
	event investigation.Event
	reply chan investigation.State
}

type guardedAppendRequest struct {
	event investigation.Event
	check func(investigation.State) error
	reply chan guardedAppendReply
}

type guardedAppendReply struct {
	state investigation.State
	err   error
}

// newStateKeeper starts the keeper goroutine owning the given state.
func newStateKeeper(initial investigation.State) *stateKeeper {
	k := &stateKeeper{
		appendCh: make(chan appendRequest),
		guardCh:  make(chan guardedAppendRequest),
		snapCh:   make(chan chan investigation.State),
		stopCh:   make(chan chan investigation.State),
	}
	go k.run(initial)
	return k
}

func (k *stateKeeper) run(state investigation.State) {
	for {
		select {
		case req := <-k.appendCh:
			state = state.Append(req.event)
			req.reply <- state
		case req := <-k.guardCh:
			if err := req.check(state); err != nil {
				req.reply <- guardedAppendReply{state: state, err: err}
				continue
			}
			state = state.Append(req.event)
			req.reply <- guardedAppendReply{state: state}
		case reply := <-k.snapCh:
			reply <- state
		case reply := <-k.stopCh:
			reply <- state
			return
		}
	}
}

// append records an event and returns the updated state snapshot.
func (k *stateKeeper) append(e investigation.Event) investigation.State {
	reply := make(chan investigation.State, 1)
	k.appendCh <- appendRequest{event: e, reply: reply}
	return <-reply
}

// checkAndAppend runs check against the current state inside the keeper
// goroutine and appends the event only when it passes, so the check and
// the append are atomic with respect to every other append. Concurrent
// workers cannot all pass a limit check against a stale snapshot and
// then all append. Returns the resulting snapshot and the check error.
func (k *stateKeeper) checkAndAppend(e investigation.Event, check func(investigation.State) error) (investigation.State, error) {
	reply := make(chan guardedAppendReply, 1)
	k.guardCh <- guardedAppendRequest{event: e, check: check, reply: reply}
	r := <-reply
	return r.state, r.err
}

// snapshot returns the current state without appending.
func (k *stateKeeper) snapshot() investigation.State {
	reply := make(chan investigation.State, 1)
	k.snapCh <- reply
	return <-reply
}

// stop terminates the keeper goroutine and returns the final state.
// No append may follow a stop.
func (k *stateKeeper) stop() investigation.State {
	reply := make(chan investigation.State, 1)
	k.stopCh <- reply
	return <-reply
}
