package script

import (
	"fmt"
	"io"
	"strings"
)

// Runner replays scripts. With Narrate set every step is reported and the
// container is redrawn after each change; otherwise only results and
// explicit display operations are written. With Check set the container's
// invariants are verified after every step.
type Runner struct {
	Out     io.Writer
	Narrate bool
	Check   bool
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func (r *Runner) step(kind Kind, t target, op Op) {
	spec := opTables[kind][op.Name]
	switch op.Name {
	case "say":
		if r.Narrate {
			fmt.Fprintf(r.Out, "\n--- %s ---\n", op.Text)
		}
		return
	case "display", "display_reverse":
		fmt.Fprintln(r.Out, t.render(op.Name == "display_reverse"))
		return
	}

	result := t.apply(op)
	if !r.Narrate {
		if result != "" {
			fmt.Fprintf(r.Out, "%s => %s\n", op, result)
		}
		return
	}

	if result == "" {
		result = "ok"
	}
	fmt.Fprintf(r.Out, "%s => %s\n", op, result)
	if spec.mutates {
		fmt.Fprintln(r.Out, indent(t.render(false)))
	}
}

// Run executes s against a fresh container of s.Kind.
func (r *Runner) Run(s *Script) error {
	t, err := newTarget(s.Kind)
	if err != nil {
		return err
	}

	for _, op := range s.Ops {
		r.step(s.Kind, t, op)
		if !r.Check {
			continue
		}
		if err := t.validate(); err != nil {
			return fmt.Errorf("line %d (%s): %w", op.Line, op, err)
		}
	}
	return nil
}
