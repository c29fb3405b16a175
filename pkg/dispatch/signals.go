package dispatch

import "sync"

// signalSet holds the four wake conditions the worker blocks on.
//
// Connected is level-triggered and sticky: the connectivity collaborator
// sets and clears it. Trigger is edge-triggered and consumed by the worker
// on wake. Abort is edge-triggered and cleared after each promotion. Exit is
// terminal: once raised the worker must not wake again.
type signalSet struct {
	mu   sync.Mutex
	cond *sync.Cond

	connected bool
	connEdge  bool
	trigger   bool
	abort     bool
	exit      bool
}

func newSignalSet() *signalSet {
	s := &signalSet{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// wait blocks until Exit, Trigger, or a connectivity rising edge. Trigger
// and the edge marker are consumed; Exit is left set. Returns true on Exit.
func (s *signalSet) wait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.exit && !s.trigger && !s.connEdge {
		s.cond.Wait()
	}
	if s.exit {
		return true
	}
	s.trigger = false
	s.connEdge = false
	return false
}

func (s *signalSet) raiseTrigger() {
	s.mu.Lock()
	s.trigger = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

func (s *signalSet) setConnected(up bool) {
	s.mu.Lock()
	rising := up && !s.connected
	s.connected = up
	if rising {
		s.connEdge = true
	}
	s.mu.Unlock()
	if rising {
		s.cond.Broadcast()
	}
}

func (s *signalSet) isConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *signalSet) raiseAbort() {
	s.mu.Lock()
	s.abort = true
	s.mu.Unlock()
}

func (s *signalSet) clearAbort() {
	s.mu.Lock()
	s.abort = false
	s.mu.Unlock()
}

// interrupted reports whether Abort or Exit is set; checked before every
// delivery attempt.
func (s *signalSet) interrupted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abort || s.exit
}

func (s *signalSet) raiseExit() {
	s.mu.Lock()
	s.exit = true
	s.mu.Unlock()
	s.cond.Broadcast()
}
