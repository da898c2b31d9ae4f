package linear

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/utils"
)

const stackBase = "  +------+"

func renderChain[T any](seq iter.Seq[T], open, link, end string) string {
	s := new(strings.Builder)
	s.WriteString(open)
	for v := range seq {
		fmt.Fprintf(s, "[%s]%s", utils.ToString(v), link)
	}
	s.WriteString(end)
	return s.String()
}

// String renders the list as "[5] -> [10] -> None".
func (l *List[T]) String() string {
	return renderChain(l.All(), "", " -> ", "None")
}

// String renders the list head to tail as "None <-> [5] <-> [10] <-> None".
func (l *DoublyList[T]) String() string {
	return renderChain(l.All(), "None <-> ", " <-> ", "None")
}

// StringReverse renders the list tail to head, in the same shape as String.
func (l *DoublyList[T]) StringReverse() string {
	return renderChain(l.Backward(), "None <-> ", " <-> ", "None")
}

// String renders the queue as "front -> [10] -> [20] -> rear".
func (q *Queue[T]) String() string {
	return renderChain(q.All(), "front -> ", " -> ", "rear")
}

// String renders the stack top first, one element per line, closed by a
// base line.
func (s *Stack[T]) String() string {
	b := new(strings.Builder)
	for v := range s.All() {
		fmt.Fprintf(b, "  | %s |\n", utils.ToString(v))
	}
	b.WriteString(stackBase)
	return b.String()
}
