package linear

import (
	"errors"
	"slices"
	"testing"
)

func TestListPushBackSearch(t *testing.T) {
	l := NewList[int]()
	arr := []int{10, 20, 30, 40, 50}
	for _, v := range arr {
		l.PushBack(v)
	}

	for i, v := range arr {
		if pos := l.Search(v); pos != i {
			t.Errorf("Expected %d at position %d but found it at %d", v, i, pos)
		}
	}
	if pos := l.Search(99); pos != NotFound {
		t.Errorf("Expected NotFound for a missing value, got %d", pos)
	}
}

func TestListPushFront(t *testing.T) {
	l := NewList[int]()
	for i := 1; i <= 5; i++ {
		l.PushFront(i)
	}

	got := slices.Collect(l.All())
	want := []int{5, 4, 3, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v but found %v", want, got)
	}
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestListPopBothEnds(t *testing.T) {
	l := NewList[int]()
	l.PushBack(10)
	l.PushBack(20)
	l.PushBack(30)
	l.PushFront(5)

	if v, ok := l.PopFront(); !ok || v != 5 {
		t.Errorf("PopFront should return 5, got %d (ok=%t)", v, ok)
	}
	if v, ok := l.PopBack(); !ok || v != 30 {
		t.Errorf("PopBack should return 30, got %d (ok=%t)", v, ok)
	}
	if got := slices.Collect(l.All()); !slices.Equal(got, []int{10, 20}) {
		t.Errorf("Unexpected contents %v", got)
	}

	// single node: head becomes absent
	l.PopBack()
	if v, ok := l.PopBack(); !ok || v != 10 {
		t.Errorf("PopBack on a single node should return 10, got %d (ok=%t)", v, ok)
	}
	if !l.IsEmpty() || l.Size() != 0 {
		t.Errorf("List should be empty after draining")
	}
}

func TestListPeek(t *testing.T) {
	l := NewList[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	if v, ok := l.PeekFront(); !ok || v != "a" {
		t.Errorf("PeekFront should return a, got %q", v)
	}
	if v, ok := l.PeekBack(); !ok || v != "c" {
		t.Errorf("PeekBack should return c, got %q", v)
	}
	if l.Size() != 3 {
		t.Errorf("Peeking must not change the size, got %d", l.Size())
	}
}

func TestListDelete(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		target int
		found  bool
		want   []int
	}{
		{"head", []int{1, 2, 3}, 1, true, []int{2, 3}},
		{"middle", []int{1, 2, 3}, 2, true, []int{1, 3}},
		{"last", []int{1, 2, 3}, 3, true, []int{1, 2}},
		{"first of duplicates", []int{1, 2, 1, 2}, 2, true, []int{1, 1, 2}},
		{"missing", []int{1, 2, 3}, 7, false, []int{1, 2, 3}},
		{"empty", nil, 1, false, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList[int]()
			for _, v := range tt.values {
				l.PushBack(v)
			}
			if found := l.Delete(tt.target); found != tt.found {
				t.Errorf("Delete(%d) returned %t, want %t", tt.target, found, tt.found)
			}
			got := slices.Collect(l.All())
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v but found %v", tt.want, got)
			}
			if err := l.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestListEmptySoftFailure(t *testing.T) {
	l := NewList[int]()

	if _, ok := l.PopFront(); ok {
		t.Errorf("PopFront on an empty list should not succeed")
	}
	if _, ok := l.PopBack(); ok {
		t.Errorf("PopBack on an empty list should not succeed")
	}
	if _, ok := l.PeekFront(); ok {
		t.Errorf("PeekFront on an empty list should not succeed")
	}
	if _, ok := l.PeekBack(); ok {
		t.Errorf("PeekBack on an empty list should not succeed")
	}
	if !l.IsEmpty() || l.Size() != 0 {
		t.Errorf("List should still be empty")
	}
}

func TestListSizeTracksOperations(t *testing.T) {
	l := NewList[int]()
	inserted, removed := 0, 0
	for i := 0; i < 20; i++ {
		switch i % 4 {
		case 0, 1:
			l.PushBack(i)
			inserted++
		case 2:
			l.PushFront(i)
			inserted++
		case 3:
			if _, ok := l.PopBack(); ok {
				removed++
			}
		}
		if l.Size() != inserted-removed {
			t.Fatalf("step %d: size %d, want %d", i, l.Size(), inserted-removed)
		}
		if (l.Size() == 0) != l.IsEmpty() {
			t.Fatalf("step %d: size and emptiness disagree", i)
		}
	}
}

func TestListCycleDetected(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.head.next.next = l.head

	if err := l.Validate(); !errors.Is(err, ErrCycle) {
		t.Errorf("Validate should reject a cyclic chain, got %v", err)
	}
}
