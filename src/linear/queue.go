package linear

import "iter"

// Queue is a FIFO container. front owns the chain; rear caches the last
// node so Enqueue does not walk.
type Queue[T any] struct {
	front *linkedListNode[T]
	rear  *linkedListNode[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(e T) {
	newNode := &linkedListNode[T]{value: e}
	if q.rear == nil {
		q.front = newNode
		q.rear = newNode
		return
	}
	q.rear.next = newNode
	q.rear = newNode
}

// Dequeue removes the front element. ok is false if the queue is empty.
func (q *Queue[T]) Dequeue() (e T, ok bool) {
	if q.front == nil {
		return e, false
	}
	node := q.front
	q.front = node.next
	if q.front == nil {
		q.rear = nil
	}
	node.next = nil
	return node.value, true
}

func (q *Queue[T]) Peek() (e T, ok bool) {
	if q.front == nil {
		return e, false
	}
	return q.front.value, true
}

func (q *Queue[T]) Size() int {
	return countNodes(q.front)
}

func (q *Queue[T]) IsEmpty() bool {
	return q.front == nil
}

// Empty implements containers.Container.
func (q *Queue[T]) Empty() bool {
	return q.IsEmpty()
}

func (q *Queue[T]) Clear() {
	q.front = nil
	q.rear = nil
}

// All iterates from front to rear.
func (q *Queue[T]) All() iter.Seq[T] {
	return forward(q.front)
}

func (q *Queue[T]) Values() []interface{} {
	return collect(q.All())
}
