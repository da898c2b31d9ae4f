package script

import (
	"embed"
	"fmt"
)

//go:embed demos/*.lin
var demos embed.FS

// Builtin returns the walkthrough script bundled for kind.
func Builtin(kind Kind) (*Script, error) {
	file, err := demos.Open(fmt.Sprintf("demos/%s.lin", kind))
	if err != nil {
		return nil, fmt.Errorf("no demo for %q: %w", kind, err)
	}
	defer file.Close()

	return Parse(file)
}
