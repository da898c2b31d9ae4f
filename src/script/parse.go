package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func errorCoalesce(args ...error) error {
	for _, e := range args {
		if e != nil {
			return e
		}
	}
	return nil
}

// lineScanner yields the fields of the next non-blank line, with comments
// stripped, and remembers the line number.
type lineScanner struct {
	*bufio.Scanner
	line int
}

func (ls *lineScanner) next() ([]string, bool) {
	for ls.Scan() {
		ls.line++
		text := ls.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

func (s *Script) parseHeader(scanner *lineScanner) error {
	line, ok := scanner.next()
	if !ok {
		return fmt.Errorf("missing structure header")
	}
	if len(line) != 2 || line[0] != "structure" {
		return fmt.Errorf("line %d: expected \"structure <kind>\", got %q", scanner.line, strings.Join(line, " "))
	}
	kind, err := ParseKind(line[1])
	if err != nil {
		return fmt.Errorf("line %d: %v", scanner.line, err)
	}
	s.Kind = kind
	return nil
}

func (s *Script) parseOps(scanner *lineScanner) error {
	for {
		line, ok := scanner.next()
		if !ok {
			return scanner.Err()
		}
		op, err := parseOp(s.Kind, scanner.line, line)
		if err != nil {
			return err
		}
		s.Ops = append(s.Ops, op)
	}
}

func parseOp(kind Kind, lineNo int, line []string) (Op, error) {
	op := Op{Line: lineNo, Name: line[0]}
	spec, ok := opTables[kind][op.Name]
	if !ok {
		names, _ := Operations(kind)
		return op, fmt.Errorf("line %d: unknown operation %q for %s (want one of %v)", lineNo, op.Name, kind, names)
	}

	switch {
	case op.Name == "say":
		op.Text = strings.Join(line[1:], " ")
	case spec.takesValue:
		if len(line) != 2 {
			return op, fmt.Errorf("line %d: %s takes exactly one value", lineNo, op.Name)
		}
		v, err := strconv.Atoi(line[1])
		if err != nil {
			return op, fmt.Errorf("line %d: error while parsing value of %s: %v", lineNo, op.Name, err)
		}
		op.Value = v
		op.HasValue = true
	case len(line) > 1:
		return op, fmt.Errorf("line %d: %s takes no value", lineNo, op.Name)
	}
	return op, nil
}

// Parse reads a whole script from r.
func Parse(r io.Reader) (*Script, error) {
	s := new(Script)
	scanner := &lineScanner{Scanner: bufio.NewScanner(r)}
	err := errorCoalesce(
		s.parseHeader(scanner),
		s.parseOps(scanner),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Load parses the script stored in filename.
func Load(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}
