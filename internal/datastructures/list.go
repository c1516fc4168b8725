package datastructures

import (
	"fmt"
	"iter"
)

type (
	// List represents a doubly linked list that owns every node linked into it.
	// A List must not be copied after first use; use Clone for an explicit copy.
	List[T any] struct {
		_      noCopy
		head   *Node[T]
		tail   *Node[T]
		length int
		checks bool
	}

	// Node represents an element in the doubly linked list.
	Node[T any] struct {
		Value T
		prev  *Node[T]
		next  *Node[T]
		owner *List[T]
	}
)

// Option configures a List at construction.
type Option func(*listOptions)

type listOptions struct {
	checks bool
}

// WithMembershipChecks toggles the O(n) scan that verifies a node reference
// is reachable from the head before it is used as an anchor or removal
// target. Foreign and detached nodes are always rejected through their owner
// link; the scan additionally catches nodes whose owner link still names this
// list but which are no longer part of its chain.
func WithMembershipChecks(enabled bool) Option {
	return func(o *listOptions) {
		o.checks = enabled
	}
}

// NewList creates a new empty list.
// Membership checks default to off unless built with the dllist_checks tag.
func NewList[T any](opts ...Option) *List[T] {
	o := listOptions{checks: defaultMembershipChecks}
	for _, opt := range opts {
		opt(&o)
	}
	return &List[T]{checks: o.checks}
}

// NewNode allocates a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Next returns the successor, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the predecessor, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Detached reports whether the node is free to be inserted.
func (n *Node[T]) Detached() bool {
	return n.prev == nil && n.next == nil && n.owner == nil
}

// MembershipChecks reports whether node references are verified by scanning.
func (l *List[T]) MembershipChecks() bool {
	return l.checks
}

// InsertAfter links n immediately after anchor.
// On an empty list the anchor is ignored and n becomes head and tail.
func (l *List[T]) InsertAfter(anchor, n *Node[T]) error {
	if err := l.checkInsert("insert after", anchor, n); err != nil {
		return err
	}

	switch {
	case l.head == nil:
		l.head = n
		l.tail = n
	case anchor == l.tail:
		n.prev = anchor
		anchor.next = n
		l.tail = n
	default:
		succ := anchor.next
		n.prev = anchor
		n.next = succ
		anchor.next = n
		succ.prev = n
	}
	n.owner = l
	l.length++
	return nil
}

// InsertBefore links n immediately before anchor.
// On an empty list the anchor is ignored and n becomes head and tail.
func (l *List[T]) InsertBefore(anchor, n *Node[T]) error {
	if err := l.checkInsert("insert before", anchor, n); err != nil {
		return err
	}

	switch {
	case l.head == nil:
		l.head = n
		l.tail = n
	case anchor == l.head:
		n.next = anchor
		anchor.prev = n
		l.head = n
	default:
		pred := anchor.prev
		n.prev = pred
		n.next = anchor
		pred.next = n
		anchor.prev = n
	}
	n.owner = l
	l.length++
	return nil
}

func (l *List[T]) checkInsert(op string, anchor, n *Node[T]) error {
	if l.head != nil && anchor == nil {
		return fmt.Errorf("%s: %w: anchor is nil for non-empty list", op, ErrInvalidArgument)
	}
	if n == nil {
		return fmt.Errorf("%s: %w: new node is nil", op, ErrInvalidArgument)
	}
	if n == anchor {
		return fmt.Errorf("%s: %w: new node cannot be its own anchor", op, ErrInvalidArgument)
	}
	if !n.Detached() {
		return fmt.Errorf("%s: %w: new node is already linked", op, ErrInvalidArgument)
	}
	if l.head == nil {
		return nil
	}
	if anchor.owner != l || (l.checks && !l.Contains(anchor)) {
		return fmt.Errorf("%s: %w: anchor is not in this list", op, ErrNotFound)
	}
	return nil
}

// PushBack adds a value to the tail of the list and returns its node.
func (l *List[T]) PushBack(value T) *Node[T] {
	n := &Node[T]{Value: value, owner: l}
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
	return n
}

// PushFront adds a value to the head of the list and returns its node.
func (l *List[T]) PushFront(value T) *Node[T] {
	n := &Node[T]{Value: value, owner: l}
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.length++
	return n
}

// Remove unlinks target and zeroes its value.
func (l *List[T]) Remove(target *Node[T]) error {
	if err := l.checkTarget("remove", target); err != nil {
		return err
	}
	l.unlink(target)

	var zero T
	target.Value = zero
	return nil
}

// Detach unlinks target and hands it back to the caller with its value intact.
func (l *List[T]) Detach(target *Node[T]) error {
	if err := l.checkTarget("detach", target); err != nil {
		return err
	}
	l.unlink(target)
	return nil
}

func (l *List[T]) checkTarget(op string, target *Node[T]) error {
	if target == nil {
		return fmt.Errorf("%s: %w: target is nil", op, ErrInvalidArgument)
	}
	if l.head == nil {
		return fmt.Errorf("%s: %w", op, ErrEmptyList)
	}
	if target.owner != l || (l.checks && !l.Contains(target)) {
		return fmt.Errorf("%s: %w: target is not in this list", op, ErrNotFound)
	}
	return nil
}

func (l *List[T]) unlink(target *Node[T]) {
	if target.prev != nil {
		target.prev.next = target.next
	} else {
		l.head = target.next
	}
	if target.next != nil {
		target.next.prev = target.prev
	} else {
		l.tail = target.prev
	}
	target.prev = nil
	target.next = nil
	target.owner = nil
	l.length--
}

// Clear releases every node and resets the list.
func (l *List[T]) Clear() {
	var zero T
	for n := l.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n.owner = nil
		n.Value = zero
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Contains scans the chain for n.
func (l *List[T]) Contains(n *Node[T]) bool {
	if n == nil {
		return false
	}
	for cur := l.head; cur != nil; cur = cur.next {
		if cur == n {
			return true
		}
	}
	return false
}

// FindFunc returns the first node whose value satisfies match and its index,
// or nil and -1.
func (l *List[T]) FindFunc(match func(T) bool) (*Node[T], int) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if match(n.Value) {
			return n, i
		}
		i++
	}
	return nil, -1
}

// Find returns the first node equal to value and its index, or nil and -1.
func Find[T comparable](l *List[T], value T) (*Node[T], int) {
	return l.FindFunc(func(v T) bool { return v == value })
}

// Front returns the head node, or nil.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the tail node, or nil.
func (l *List[T]) Back() *Node[T] { return l.tail }

// NodeAt returns the node at index i, or nil when out of range.
func (l *List[T]) NodeAt(i int) *Node[T] {
	if i < 0 || i >= l.length {
		return nil
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Size is an alias for Len.
func (l *List[T]) Size() int {
	return l.Len()
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// All yields values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward yields values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Nodes yields index/node pairs from head to tail.
func (l *List[T]) Nodes() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n) {
				return
			}
			i++
		}
	}
}

// Values collects the forward traversal.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// ValuesBackward collects the backward traversal.
func (l *List[T]) ValuesBackward() []T {
	out := make([]T, 0, l.length)
	for v := range l.Backward() {
		out = append(out, v)
	}
	return out
}

// Clone returns a deep copy built from fresh nodes with the same options.
func (l *List[T]) Clone() *List[T] {
	c := NewList[T](WithMembershipChecks(l.checks))
	for v := range l.All() {
		c.PushBack(v)
	}
	return c
}

// noCopy lets go vet's copylocks check flag by-value copies of a List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
