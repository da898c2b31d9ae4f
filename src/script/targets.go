package script

import (
	"fmt"
	"strconv"

	"linear_structures/src/linear"
)

// target adapts one container to the script operations. apply returns the
// outcome text, empty when the operation has nothing to report.
type target interface {
	apply(op Op) string
	render(reverse bool) string
	validate() error
}

func newTarget(kind Kind) (target, error) {
	switch kind {
	case KindList:
		return &listTarget{linear.NewList[int]()}, nil
	case KindDoubly:
		return &doublyTarget{linear.NewDoublyList[int]()}, nil
	case KindStack:
		return &stackTarget{linear.NewStack[int]()}, nil
	case KindQueue:
		return &queueTarget{linear.NewQueue[int]()}, nil
	}
	return nil, fmt.Errorf("unknown structure %q", kind)
}

func taken(v int, ok bool) string {
	if !ok {
		return ErrEmpty.Error()
	}
	return strconv.Itoa(v)
}

func position(pos int) string {
	if pos == linear.NotFound {
		return "not found"
	}
	return "position " + strconv.Itoa(pos)
}

func deleted(found bool) string {
	if !found {
		return "not found"
	}
	return "deleted"
}

type listTarget struct {
	l *linear.List[int]
}

func (t *listTarget) apply(op Op) string {
	switch op.Name {
	case "push_front":
		t.l.PushFront(op.Value)
	case "push_back":
		t.l.PushBack(op.Value)
	case "pop_front":
		return taken(t.l.PopFront())
	case "pop_back":
		return taken(t.l.PopBack())
	case "peek_front":
		return taken(t.l.PeekFront())
	case "peek_back":
		return taken(t.l.PeekBack())
	case "search":
		return position(t.l.Search(op.Value))
	case "delete":
		return deleted(t.l.Delete(op.Value))
	case "size":
		return strconv.Itoa(t.l.Size())
	case "empty":
		return strconv.FormatBool(t.l.IsEmpty())
	case "clear":
		t.l.Clear()
	}
	return ""
}

func (t *listTarget) render(bool) string { return t.l.String() }
func (t *listTarget) validate() error    { return t.l.Validate() }

type doublyTarget struct {
	l *linear.DoublyList[int]
}

func (t *doublyTarget) apply(op Op) string {
	switch op.Name {
	case "push_front":
		t.l.PushFront(op.Value)
	case "push_back":
		t.l.PushBack(op.Value)
	case "pop_front":
		return taken(t.l.PopFront())
	case "pop_back":
		return taken(t.l.PopBack())
	case "peek_front":
		return taken(t.l.PeekFront())
	case "peek_back":
		return taken(t.l.PeekBack())
	case "search":
		return position(t.l.Search(op.Value))
	case "delete":
		return deleted(t.l.Delete(op.Value))
	case "size":
		return strconv.Itoa(t.l.Size())
	case "empty":
		return strconv.FormatBool(t.l.IsEmpty())
	case "clear":
		t.l.Clear()
	}
	return ""
}

func (t *doublyTarget) render(reverse bool) string {
	if reverse {
		return t.l.StringReverse()
	}
	return t.l.String()
}

func (t *doublyTarget) validate() error { return t.l.Validate() }

type stackTarget struct {
	s *linear.Stack[int]
}

func (t *stackTarget) apply(op Op) string {
	switch op.Name {
	case "push":
		t.s.Push(op.Value)
	case "pop":
		return taken(t.s.Pop())
	case "peek":
		return taken(t.s.Peek())
	case "size":
		return strconv.Itoa(t.s.Size())
	case "empty":
		return strconv.FormatBool(t.s.IsEmpty())
	case "clear":
		t.s.Clear()
	}
	return ""
}

func (t *stackTarget) render(bool) string { return t.s.String() }
func (t *stackTarget) validate() error    { return t.s.Validate() }

type queueTarget struct {
	q *linear.Queue[int]
}

func (t *queueTarget) apply(op Op) string {
	switch op.Name {
	case "enqueue":
		t.q.Enqueue(op.Value)
	case "dequeue":
		return taken(t.q.Dequeue())
	case "peek":
		return taken(t.q.Peek())
	case "size":
		return strconv.Itoa(t.q.Size())
	case "empty":
		return strconv.FormatBool(t.q.IsEmpty())
	case "clear":
		t.q.Clear()
	}
	return ""
}

func (t *queueTarget) render(bool) string { return t.q.String() }
func (t *queueTarget) validate() error    { return t.q.Validate() }
