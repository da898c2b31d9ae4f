// Package linear implements the four classical linear containers: a singly
// linked list, a doubly linked list, a stack and a queue. Each one owns a
// chain of nodes and is meant for a single caller; none of them locks.
//
// Removals and boundary reads on an empty container never panic. They
// return the zero value together with ok == false.
package linear

import "github.com/emirpasic/gods/containers"

var (
	_ containers.Container = (*List[int])(nil)
	_ containers.Container = (*DoublyList[int])(nil)
	_ containers.Container = (*Stack[int])(nil)
	_ containers.Container = (*Queue[int])(nil)
)
