package linear

import (
	"errors"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()
	arr := []int{1, 2, 3, 4, 5}
	for _, v := range arr {
		q.Enqueue(v)
	}

	for _, want := range arr {
		v, ok := q.Dequeue()
		if !ok || v != want {
			t.Errorf("Expected %d but dequeued %d (ok=%t)", want, v, ok)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("Queue should be empty after dequeuing every element")
	}
}

func TestQueueScenario(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(10)
	q.Enqueue(20)
	q.Enqueue(30)
	q.Enqueue(40)

	if v, _ := q.Dequeue(); v != 10 {
		t.Errorf("First dequeue should return 10, got %d", v)
	}
	if v, _ := q.Dequeue(); v != 20 {
		t.Errorf("Second dequeue should return 20, got %d", v)
	}
	if q.front.value != 30 || q.rear.value != 40 {
		t.Errorf("Expected front=30 rear=40, got front=%d rear=%d", q.front.value, q.rear.value)
	}
	if v, _ := q.Peek(); v != 30 {
		t.Errorf("Peek should return 30, got %d", v)
	}
	if q.Size() != 2 {
		t.Errorf("Size should be 2, got %d", q.Size())
	}
	if err := q.Validate(); err != nil {
		t.Error(err)
	}
}

func TestQueueDrainClearsRear(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Dequeue()

	if q.front != nil || q.rear != nil {
		t.Fatalf("front and rear should both be absent after draining")
	}
	if _, ok := q.Dequeue(); ok {
		t.Errorf("Dequeue on a drained queue should not succeed")
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("Peek on a drained queue should not succeed")
	}

	q.Enqueue(7)
	if v, ok := q.Peek(); !ok || v != 7 {
		t.Errorf("Queue should be usable again after draining, peeked %d", v)
	}
	if err := q.Validate(); err != nil {
		t.Error(err)
	}
}

func TestQueueStaleRearDetected(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.rear = q.front

	if err := q.Validate(); !errors.Is(err, ErrStaleBoundary) {
		t.Errorf("Expected ErrStaleBoundary, got %v", err)
	}
}
