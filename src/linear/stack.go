package linear

import "iter"

// Stack is a LIFO container over a singly linked chain. top is the most
// recently pushed node.
type Stack[T any] struct {
	top *linkedListNode[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(e T) {
	newNode := &linkedListNode[T]{value: e, next: s.top}
	s.top = newNode
}

// Pop removes the top element. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (e T, ok bool) {
	if s.top == nil {
		return e, false
	}
	node := s.top
	s.top = node.next
	node.next = nil
	return node.value, true
}

func (s *Stack[T]) Peek() (e T, ok bool) {
	if s.top == nil {
		return e, false
	}
	return s.top.value, true
}

func (s *Stack[T]) Size() int {
	return countNodes(s.top)
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Empty implements containers.Container.
func (s *Stack[T]) Empty() bool {
	return s.IsEmpty()
}

func (s *Stack[T]) Clear() {
	s.top = nil
}

// All iterates from the top down, which is the order Pop would return.
func (s *Stack[T]) All() iter.Seq[T] {
	return forward(s.top)
}

func (s *Stack[T]) Values() []interface{} {
	return collect(s.All())
}
