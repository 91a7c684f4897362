// Package flow holds the per-user course-creation state machine.
//
//	Idle -> Dispatching -> AwaitingPhase(1..n) -> Idle
//
// A flow is started with TryBegin, which hands out a Ticket. Only the
// holder of the current ticket can advance or end the flow; Reset (new chat,
// navigation away) returns the user to Idle and invalidates every
// outstanding ticket, so a late pipeline cannot clobber a newer flow.
package flow

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// StateKind is the coarse state of a flow.
type StateKind int

const (
	Idle StateKind = iota
	Dispatching
	AwaitingPhase
)

// State is the current state of a user's flow. Phase is set only for
// AwaitingPhase.
type State struct {
	Kind  StateKind
	Phase int
}

func (s State) String() string {
	switch s.Kind {
	case Dispatching:
		return "dispatching"
	case AwaitingPhase:
		return fmt.Sprintf("awaiting_phase(%d)", s.Phase)
	}
	return "idle"
}

// Busy reports whether a flow is running.
func (s State) Busy() bool { return s.Kind != Idle }

type entry struct {
	state State
	gen   uint64
}

// Machine tracks one flow per user. Only running flows have an entry; an
// absent user is Idle.
type Machine struct {
	mu    sync.Mutex
	seq   uint64
	flows map[uuid.UUID]*entry
}

// NewMachine creates an empty Machine.
func NewMachine() *Machine {
	return &Machine{flows: make(map[uuid.UUID]*entry)}
}

// Ticket identifies one started flow.
type Ticket struct {
	m      *Machine
	userID uuid.UUID
	gen    uint64
}

// TryBegin moves the user's flow from Idle to Dispatching. A running flow
// is not queued: the call fails with domain.ErrCreationInProgress.
func (m *Machine) TryBegin(userID uuid.UUID) (Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, running := m.flows[userID]; running {
		return Ticket{}, domain.ErrCreationInProgress
	}

	// Generations are unique across users, so a ticket from a removed entry
	// never matches a later one.
	m.seq++
	m.flows[userID] = &entry{state: State{Kind: Dispatching}, gen: m.seq}
	return Ticket{m: m, userID: userID, gen: m.seq}, nil
}

// State returns the user's current state.
func (m *Machine) State(userID uuid.UUID) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e := m.flows[userID]; e != nil {
		return e.state
	}
	return State{}
}

// Reset returns the user to Idle and invalidates outstanding tickets.
func (m *Machine) Reset(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.flows, userID)
}

// running reports how many users have a flow in progress.
func (m *Machine) running() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.flows)
}

// UserID returns the user the flow belongs to.
func (t Ticket) UserID() uuid.UUID { return t.userID }

// Advance records that the flow is waiting on phase n. It returns false
// when the ticket is stale.
func (t Ticket) Advance(phase int) bool {
	if t.m == nil {
		return false
	}
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	e := t.owned()
	if e == nil {
		return false
	}
	e.state = State{Kind: AwaitingPhase, Phase: phase}
	return true
}

// End returns the flow to Idle. It returns false when the ticket is stale.
// The ticket is no longer valid afterwards.
func (t Ticket) End() bool {
	if t.m == nil {
		return false
	}
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if t.owned() == nil {
		return false
	}
	delete(t.m.flows, t.userID)
	return true
}

// Valid reports whether the ticket still owns the user's flow.
func (t Ticket) Valid() bool {
	if t.m == nil {
		return false
	}
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	return t.owned() != nil
}

// owned returns the ticket's entry, or nil when stale. Callers hold t.m.mu.
func (t Ticket) owned() *entry {
	e := t.m.flows[t.userID]
	if e == nil || e.gen != t.gen {
		return nil
	}
	return e
}
