package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDetectsCorruption(t *testing.T) {
	build := func() *List[int] {
		l := NewList[int]()
		for i := 1; i <= 3; i++ {
			l.PushBack(i)
		}
		return l
	}

	tests := []struct {
		name    string
		corrupt func(l *List[int])
	}{
		{"size drift", func(l *List[int]) { l.length++ }},
		{"empty with head", func(l *List[int]) { l.length = 0 }},
		{"head predecessor", func(l *List[int]) { l.head.prev = l.tail }},
		{"tail successor", func(l *List[int]) { l.tail.next = l.head }},
		{"asymmetric link", func(l *List[int]) { l.head.next.prev = nil }},
		{"foreign owner", func(l *List[int]) { l.head.next.owner = nil }},
		{"cycle", func(l *List[int]) { l.head.next.next = l.head }},
		{"wrong tail", func(l *List[int]) { l.tail = l.head.next }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := build()
			require.NoError(t, l.Validate())
			tt.corrupt(l)
			assert.ErrorIs(t, l.Validate(), ErrCorrupted)
		})
	}
}

func TestDefaultMembershipChecks(t *testing.T) {
	assert.Equal(t, defaultMembershipChecks, NewList[string]().MembershipChecks())
}

func TestMembershipScanCatchesStrandedNode(t *testing.T) {
	l := NewList[string](WithMembershipChecks(true))
	l.PushBack("A")
	l.PushBack("B")

	// owned by l according to its owner link, but not on the chain
	stranded := &Node[string]{Value: "X", owner: l}

	err := l.InsertAfter(stranded, NewNode("C"))
	require.ErrorIs(t, err, ErrNotFound)

	err = l.Remove(stranded)
	require.ErrorIs(t, err, ErrNotFound)

	err = l.Detach(stranded)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"A", "B"}, l.Values())
	assert.Equal(t, "X", stranded.Value)
	require.NoError(t, l.Validate())
}
