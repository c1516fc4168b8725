package datastructures

import "fmt"

// LinkInfo describes one node's position and link identities for debug dumps.
type LinkInfo[T any] struct {
	Index int    `yaml:"index"`
	Value T      `yaml:"value"`
	Prev  string `yaml:"prev"`
	Self  string `yaml:"self"`
	Next  string `yaml:"next"`
}

// Links reports every node in forward order. It never mutates the list.
func (l *List[T]) Links() []LinkInfo[T] {
	out := make([]LinkInfo[T], 0, l.length)
	for i, n := range l.Nodes() {
		out = append(out, LinkInfo[T]{
			Index: i,
			Value: n.Value,
			Prev:  addr(n.prev),
			Self:  addr(n),
			Next:  addr(n.next),
		})
	}
	return out
}

func addr[T any](n *Node[T]) string {
	return fmt.Sprintf("%p", n)
}

// Validate recounts the chain in both directions and checks every structural
// invariant, independent of the maintained size counter.
func (l *List[T]) Validate() error {
	if l.length == 0 || l.head == nil || l.tail == nil {
		if l.length != 0 || l.head != nil || l.tail != nil {
			return fmt.Errorf("%w: size %d with head %s and tail %s", ErrCorrupted, l.length, addr(l.head), addr(l.tail))
		}
		return nil
	}
	if l.head.prev != nil {
		return fmt.Errorf("%w: head has a predecessor", ErrCorrupted)
	}
	if l.tail.next != nil {
		return fmt.Errorf("%w: tail has a successor", ErrCorrupted)
	}

	seen := make(map[*Node[T]]struct{}, l.length)
	forward := 0
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: cycle at forward index %d", ErrCorrupted, forward)
		}
		seen[n] = struct{}{}
		if n.owner != l {
			return fmt.Errorf("%w: node %d owned by another list", ErrCorrupted, forward)
		}
		if n.next != nil && n.next.prev != n {
			return fmt.Errorf("%w: asymmetric link after index %d", ErrCorrupted, forward)
		}
		forward++
		if forward > l.length {
			return fmt.Errorf("%w: forward walk exceeds size %d", ErrCorrupted, l.length)
		}
		last = n
	}
	if forward != l.length || last != l.tail {
		return fmt.Errorf("%w: forward walk counted %d of %d", ErrCorrupted, forward, l.length)
	}

	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
		if backward > l.length {
			return fmt.Errorf("%w: backward walk exceeds size %d", ErrCorrupted, l.length)
		}
	}
	if backward != l.length {
		return fmt.Errorf("%w: backward walk counted %d of %d", ErrCorrupted, backward, l.length)
	}
	return nil
}
