package linear

import "iter"

// NotFound is the position Search reports when no element matches.
const NotFound = -1

// linkedListNode is the node shared by List, Stack and Queue. A node is
// owned by whichever reference points at it: the container boundary or
// the next link of its predecessor.
type linkedListNode[T any] struct {
	value T
	next  *linkedListNode[T]
}

// doublyNode is a DoublyList node. Only next owns; prev is a back link
// used for reverse traversal.
type doublyNode[T any] struct {
	value T
	next  *doublyNode[T]
	prev  *doublyNode[T]
}

func forward[T any](head *linkedListNode[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func countNodes[T any](head *linkedListNode[T]) int {
	count := 0
	for n := head; n != nil; n = n.next {
		count++
	}
	return count
}

func lastNode[T any](head *linkedListNode[T]) *linkedListNode[T] {
	if head == nil {
		return nil
	}
	n := head
	for n.next != nil {
		n = n.next
	}
	return n
}

func collect[T any](seq iter.Seq[T]) []interface{} {
	values := make([]interface{}, 0)
	for v := range seq {
		values = append(values, v)
	}
	return values
}
