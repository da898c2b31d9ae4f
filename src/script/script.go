// Package script replays line-oriented operation scripts against one of the
// linear containers and writes a trace of what happened.
//
// A script starts with a header naming the container, followed by one
// operation per line. Text after '#' is ignored.
//
//	structure dlist
//	say Inserting at the back
//	push_back 10
//	display_reverse
package script

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Kind string

const (
	KindList   Kind = "list"
	KindDoubly Kind = "dlist"
	KindStack  Kind = "stack"
	KindQueue  Kind = "queue"
)

// Kinds lists every container kind in presentation order.
var Kinds = []Kind{KindList, KindDoubly, KindStack, KindQueue}

// ErrEmpty is reported in the trace when an operation needs an element and
// the container has none. It never aborts a run.
var ErrEmpty = errors.New("structure is empty")

type opSpec struct {
	takesValue bool
	mutates    bool
}

var (
	sayOp      = opSpec{}
	readOnlyOp = opSpec{}
	lookupOp   = opSpec{takesValue: true}
	insertOp   = opSpec{takesValue: true, mutates: true}
	deleteOp   = opSpec{takesValue: true, mutates: true}
	removeOp   = opSpec{mutates: true}
)

var opTables = map[Kind]map[string]opSpec{
	KindList: {
		"push_front": insertOp,
		"push_back":  insertOp,
		"pop_front":  removeOp,
		"pop_back":   removeOp,
		"peek_front": readOnlyOp,
		"peek_back":  readOnlyOp,
		"search":     lookupOp,
		"delete":     deleteOp,
		"size":       readOnlyOp,
		"empty":      readOnlyOp,
		"display":    readOnlyOp,
		"clear":      removeOp,
		"say":        sayOp,
	},
	KindDoubly: {
		"push_front":      insertOp,
		"push_back":       insertOp,
		"pop_front":       removeOp,
		"pop_back":        removeOp,
		"peek_front":      readOnlyOp,
		"peek_back":       readOnlyOp,
		"search":          lookupOp,
		"delete":          deleteOp,
		"size":            readOnlyOp,
		"empty":           readOnlyOp,
		"display":         readOnlyOp,
		"display_reverse": readOnlyOp,
		"clear":           removeOp,
		"say":             sayOp,
	},
	KindStack: {
		"push":    insertOp,
		"pop":     removeOp,
		"peek":    readOnlyOp,
		"size":    readOnlyOp,
		"empty":   readOnlyOp,
		"display": readOnlyOp,
		"clear":   removeOp,
		"say":     sayOp,
	},
	KindQueue: {
		"enqueue": insertOp,
		"dequeue": removeOp,
		"peek":    readOnlyOp,
		"size":    readOnlyOp,
		"empty":   readOnlyOp,
		"display": readOnlyOp,
		"clear":   removeOp,
		"say":     sayOp,
	},
}

// ParseKind maps a header name to its Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := opTables[k]; !ok {
		return "", fmt.Errorf("unknown structure %q", name)
	}
	return k, nil
}

// Operations returns the sorted names of the operations a kind accepts,
// without "say".
func Operations(kind Kind) ([]string, error) {
	table, ok := opTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown structure %q", kind)
	}
	names := make([]string, 0, len(table))
	for _, name := range maps.Keys(table) {
		if name != "say" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// TakesValue reports whether the named operation needs an integer argument.
func TakesValue(kind Kind, name string) bool {
	return opTables[kind][name].takesValue
}

// Op is one parsed script line.
type Op struct {
	Line     int
	Name     string
	Value    int
	HasValue bool
	Text     string // narration for "say"
}

func (op Op) String() string {
	switch {
	case op.Name == "say":
		return "say " + op.Text
	case op.HasValue:
		return fmt.Sprintf("%s %d", op.Name, op.Value)
	}
	return op.Name
}

type Script struct {
	Kind Kind
	Ops  []Op
}

func (s *Script) String() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "structure %s\n", s.Kind)
	for _, op := range s.Ops {
		b.WriteString(op.String())
		b.WriteRune('\n')
	}
	return b.String()
}
