package linear

import "testing"

func TestRender(t *testing.T) {
	l := NewList[int]()
	d := NewDoublyList[int]()
	s := NewStack[int]()
	q := NewQueue[int]()

	empty := []struct {
		name string
		got  string
		want string
	}{
		{"list", l.String(), "None"},
		{"doubly", d.String(), "None <-> None"},
		{"doubly reverse", d.StringReverse(), "None <-> None"},
		{"stack", s.String(), "  +------+"},
		{"queue", q.String(), "front -> rear"},
	}
	for _, tt := range empty {
		if tt.got != tt.want {
			t.Errorf("empty %s rendered %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	for _, v := range []int{5, 10, 20} {
		l.PushBack(v)
		d.PushBack(v)
		s.Push(v)
		q.Enqueue(v)
	}

	filled := []struct {
		name string
		got  string
		want string
	}{
		{"list", l.String(), "[5] -> [10] -> [20] -> None"},
		{"doubly", d.String(), "None <-> [5] <-> [10] <-> [20] <-> None"},
		{"doubly reverse", d.StringReverse(), "None <-> [20] <-> [10] <-> [5] <-> None"},
		{"stack", s.String(), "  | 20 |\n  | 10 |\n  | 5 |\n  +------+"},
		{"queue", q.String(), "front -> [5] -> [10] -> [20] -> rear"},
	}
	for _, tt := range filled {
		if tt.got != tt.want {
			t.Errorf("%s rendered %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestValues(t *testing.T) {
	d := NewDoublyList[string]()
	d.PushBack("x")
	d.PushBack("y")

	values := d.Values()
	if len(values) != 2 || values[0] != "x" || values[1] != "y" {
		t.Errorf("Unexpected values %v", values)
	}
}
