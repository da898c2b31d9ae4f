package linear

import "iter"

// List is a singly linked list. It keeps only a head reference, so every
// operation at the back walks the chain.
type List[T comparable] struct {
	head *linkedListNode[T]
}

func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) PushFront(e T) {
	l.head = &linkedListNode[T]{value: e, next: l.head}
}

func (l *List[T]) PushBack(e T) {
	newNode := &linkedListNode[T]{value: e}
	if l.head == nil {
		l.head = newNode
		return
	}
	lastNode(l.head).next = newNode
}

// PopFront removes the first element. ok is false if the list is empty.
func (l *List[T]) PopFront() (e T, ok bool) {
	if l.head == nil {
		return e, false
	}
	node := l.head
	l.head = node.next
	node.next = nil
	return node.value, true
}

// PopBack removes the last element. ok is false if the list is empty.
func (l *List[T]) PopBack() (e T, ok bool) {
	if l.head == nil {
		return e, false
	}
	if l.head.next == nil {
		e = l.head.value
		l.head = nil
		return e, true
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	e = prev.next.value
	prev.next = nil
	return e, true
}

func (l *List[T]) PeekFront() (e T, ok bool) {
	if l.head == nil {
		return e, false
	}
	return l.head.value, true
}

func (l *List[T]) PeekBack() (e T, ok bool) {
	last := lastNode(l.head)
	if last == nil {
		return e, false
	}
	return last.value, true
}

// Search returns the zero-based position of the first element equal to e,
// or NotFound.
func (l *List[T]) Search(e T) int {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == e {
			return pos
		}
		pos++
	}
	return NotFound
}

// Delete unlinks the first element equal to e and reports whether one was
// found.
func (l *List[T]) Delete(e T) bool {
	if l.head == nil {
		return false
	}
	if l.head.value == e {
		l.PopFront()
		return true
	}

	for prev := l.head; prev.next != nil; prev = prev.next {
		if prev.next.value == e {
			victim := prev.next
			prev.next = victim.next
			victim.next = nil
			return true
		}
	}
	return false
}

// Size counts the nodes. There is no cached counter.
func (l *List[T]) Size() int {
	return countNodes(l.head)
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Empty implements containers.Container.
func (l *List[T]) Empty() bool {
	return l.IsEmpty()
}

func (l *List[T]) Clear() {
	l.head = nil
}

// All iterates the values from head to the last node.
func (l *List[T]) All() iter.Seq[T] {
	return forward(l.head)
}

func (l *List[T]) Values() []interface{} {
	return collect(l.All())
}
