package linear

import "iter"

// DoublyList is a doubly linked list with a cached tail. Ownership runs
// from head to tail through next; prev is only a back link.
type DoublyList[T comparable] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
}

func NewDoublyList[T comparable]() *DoublyList[T] {
	return &DoublyList[T]{}
}

func (l *DoublyList[T]) PushFront(e T) {
	newNode := &doublyNode[T]{value: e, next: l.head}
	if l.head == nil {
		l.head = newNode
		l.tail = newNode
		return
	}
	l.head.prev = newNode
	l.head = newNode
}

func (l *DoublyList[T]) PushBack(e T) {
	newNode := &doublyNode[T]{value: e, prev: l.tail}
	if l.tail == nil {
		l.head = newNode
		l.tail = newNode
		return
	}
	l.tail.next = newNode
	l.tail = newNode
}

func (l *DoublyList[T]) PopFront() (e T, ok bool) {
	if l.head == nil {
		return e, false
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	node.next = nil
	return node.value, true
}

func (l *DoublyList[T]) PopBack() (e T, ok bool) {
	if l.tail == nil {
		return e, false
	}
	node := l.tail
	l.tail = node.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	node.prev = nil
	return node.value, true
}

func (l *DoublyList[T]) PeekFront() (e T, ok bool) {
	if l.head == nil {
		return e, false
	}
	return l.head.value, true
}

func (l *DoublyList[T]) PeekBack() (e T, ok bool) {
	if l.tail == nil {
		return e, false
	}
	return l.tail.value, true
}

// Search returns the zero-based position of the first element equal to e,
// or NotFound.
func (l *DoublyList[T]) Search(e T) int {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == e {
			return pos
		}
		pos++
	}
	return NotFound
}

// Delete removes only the first element equal to e; duplicates further
// along are left in place.
func (l *DoublyList[T]) Delete(e T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == e {
			l.unlink(n)
			return true
		}
	}
	return false
}

func (l *DoublyList[T]) unlink(n *doublyNode[T]) {
	switch n {
	case l.head:
		l.PopFront()
	case l.tail:
		l.PopBack()
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
		n.next = nil
		n.prev = nil
	}
}

func (l *DoublyList[T]) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

func (l *DoublyList[T]) IsEmpty() bool {
	return l.head == nil
}

// Empty implements containers.Container.
func (l *DoublyList[T]) Empty() bool {
	return l.IsEmpty()
}

func (l *DoublyList[T]) Clear() {
	l.head = nil
	l.tail = nil
}

// All iterates from head to tail.
func (l *DoublyList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates from tail to head following the back links.
func (l *DoublyList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *DoublyList[T]) Values() []interface{} {
	return collect(l.All())
}
