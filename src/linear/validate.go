package linear

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrCycle         = errors.New("chain does not terminate")
	ErrBrokenLink    = errors.New("back link does not match forward link")
	ErrStaleBoundary = errors.New("cached boundary does not match chain")
)

// walkChain follows next from head and returns the last node, failing if
// any node is reached twice.
func walkChain[T any](head *linkedListNode[T]) (*linkedListNode[T], error) {
	var last *linkedListNode[T]
	seen := mapset.NewThreadUnsafeSet[*linkedListNode[T]]()
	for n := head; n != nil; n = n.next {
		if !seen.Add(n) {
			return nil, fmt.Errorf("node %d links back into the chain: %w", seen.Cardinality(), ErrCycle)
		}
		last = n
	}
	return last, nil
}

// Validate checks that the chain from head is finite.
func (l *List[T]) Validate() error {
	_, err := walkChain(l.head)
	return err
}

// Validate checks that the chain from top is finite.
func (s *Stack[T]) Validate() error {
	_, err := walkChain(s.top)
	return err
}

// Validate checks that the chain from front is finite and that rear is its
// last node.
func (q *Queue[T]) Validate() error {
	last, err := walkChain(q.front)
	if err != nil {
		return err
	}
	if last != q.rear {
		return fmt.Errorf("queue rear: %w", ErrStaleBoundary)
	}
	return nil
}

// Validate checks that the chain is finite, that every back link mirrors
// its forward link and that tail is the last node reached from head.
func (l *DoublyList[T]) Validate() error {
	if l.head != nil && l.head.prev != nil {
		return fmt.Errorf("head has a predecessor: %w", ErrBrokenLink)
	}

	var last *doublyNode[T]
	seen := mapset.NewThreadUnsafeSet[*doublyNode[T]]()
	for n := l.head; n != nil; n = n.next {
		if !seen.Add(n) {
			return fmt.Errorf("node %d links back into the chain: %w", seen.Cardinality(), ErrCycle)
		}
		if n.next != nil && n.next.prev != n {
			return fmt.Errorf("node %d: %w", seen.Cardinality(), ErrBrokenLink)
		}
		last = n
	}

	if last != l.tail {
		return fmt.Errorf("list tail: %w", ErrStaleBoundary)
	}
	return nil
}
