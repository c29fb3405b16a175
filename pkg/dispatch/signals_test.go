package dispatch

import (
	"testing"
	"time"
)

func TestSignalSetTriggerConsumed(t *testing.T) {
	s := newSignalSet()
	s.raiseTrigger()
	if s.wait() {
		t.Fatal("wait returned exit for a trigger")
	}
	// Trigger was consumed; a second wait must block until something new.
	woke := make(chan bool, 1)
	go func() { woke <- s.wait() }()
	select {
	case <-woke:
		t.Fatal("wait returned without a new signal")
	case <-time.After(20 * time.Millisecond):
	}
	s.raiseExit()
	if exit := <-woke; !exit {
		t.Fatal("wait should report exit")
	}
}

func TestSignalSetExitSticky(t *testing.T) {
	s := newSignalSet()
	s.raiseExit()
	if !s.wait() {
		t.Fatal("wait should report exit")
	}
	// Exit stays observable.
	if !s.wait() {
		t.Fatal("exit should be sticky")
	}
}

func TestSignalSetConnectedEdge(t *testing.T) {
	s := newSignalSet()
	if s.isConnected() {
		t.Fatal("signal set should start disconnected")
	}
	s.setConnected(true)
	if !s.isConnected() {
		t.Fatal("setConnected(true) should stick")
	}
	if s.wait() {
		t.Fatal("rising edge should wake without exit")
	}
	// Setting connected again without a downward transition is not an edge.
	s.setConnected(true)
	woke := make(chan bool, 1)
	go func() { woke <- s.wait() }()
	select {
	case <-woke:
		t.Fatal("repeated setConnected(true) should not wake the worker")
	case <-time.After(20 * time.Millisecond):
	}
	s.raiseExit()
	<-woke
}

func TestSignalSetAbort(t *testing.T) {
	s := newSignalSet()
	if s.interrupted() {
		t.Fatal("fresh signal set should not be interrupted")
	}
	s.raiseAbort()
	if !s.interrupted() {
		t.Fatal("abort should interrupt")
	}
	s.clearAbort()
	if s.interrupted() {
		t.Fatal("clearAbort should reset")
	}
}
