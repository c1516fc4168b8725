package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vskvj3/dllist/internal/datastructures"
	"github.com/vskvj3/dllist/internal/journal"
)

// ErrNothingDetached is returned by attach commands when no node is held.
var ErrNothingDetached = errors.New("no detached node to attach")

// Session is one interactive list plus the state the REPL keeps around it.
// The list itself is single-threaded; the mutex is the exclusion boundary
// for callers that share a Session.
type Session struct {
	mu       sync.Mutex
	list     *datastructures.List[string]
	detached []*datastructures.Node[string]
	journal  *journal.Journal
	history  *datastructures.Ring[string]
	debug    bool
}

// NewSession creates an empty session. Membership checks are forced on when
// requested and otherwise follow the build default.
func NewSession(membershipChecks bool, historySize int) *Session {
	if historySize <= 0 {
		historySize = 100
	}
	var opts []datastructures.Option
	if membershipChecks {
		opts = append(opts, datastructures.WithMembershipChecks(true))
	}
	return &Session{
		list:    datastructures.NewList[string](opts...),
		journal: journal.New(),
		history: datastructures.NewRing[string](historySize),
	}
}

// SetDebug toggles post-mutation validation and link dumps.
func (s *Session) SetDebug(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = on
}

// Debug reports whether debug mode is on.
func (s *Session) Debug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debug
}

// Values returns the forward traversal.
func (s *Session) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Values()
}

// Len returns the list size.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

// Detached returns the values of held detached nodes, oldest first.
func (s *Session) Detached() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.detached))
	for _, n := range s.detached {
		out = append(out, n.Value)
	}
	return out
}

func (s *Session) hold(n *datastructures.Node[string]) {
	s.detached = append(s.detached, n)
}

func (s *Session) takeDetached() (*datastructures.Node[string], error) {
	if len(s.detached) == 0 {
		return nil, ErrNothingDetached
	}
	n := s.detached[len(s.detached)-1]
	s.detached = s.detached[:len(s.detached)-1]
	return n, nil
}

// reset drops the list, held nodes, journal and history.
func (s *Session) reset() {
	s.list.Clear()
	s.detached = nil
	s.journal.Reset()
	s.history.Reset()
}

// anchorAt resolves an optional index to a node. With no index the fallback
// endpoint is used, which is nil on an empty list.
func (s *Session) anchorAt(idx int, hasIndex bool, fallback *datastructures.Node[string]) *datastructures.Node[string] {
	if !hasIndex {
		return fallback
	}
	return s.list.NodeAt(idx)
}

func (s *Session) endpoints() (string, string) {
	var head, tail string
	if n := s.list.Front(); n != nil {
		head = n.Value
	}
	if n := s.list.Back(); n != nil {
		tail = n.Value
	}
	return head, tail
}

// rebuild clears the list and reapplies every journaled request.
func (s *Session) rebuild(h *CommandHandler) error {
	requests, err := s.journal.Requests()
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	s.list.Clear()
	s.detached = nil
	for i, req := range requests {
		if _, err := h.apply(req, false); err != nil {
			return fmt.Errorf("replay entry %d: %w", i, err)
		}
	}
	return nil
}
