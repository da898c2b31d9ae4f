package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"linear_structures/src/script"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var demoSets = map[string][]script.Kind{
	"all":   script.Kinds,
	"list":  {script.KindList},
	"dlist": {script.KindDoubly},
	"stack": {script.KindStack},
	"queue": {script.KindQueue},
}

func main() {
	var structure string
	var narrate, check bool
	var paths []string

	names := maps.Keys(demoSets)
	slices.Sort(names)

	flag.Func("script", "a list of script file paths, separated by a whitespace", func(s string) error {
		paths = strings.Fields(s)
		return nil
	})
	flag.StringVar(&structure, "structure", "all", "The built-in walkthrough to run: "+strings.Join(names, ", "))
	flag.BoolVar(&narrate, "narrate", true, "Explain every step and redraw the structure after each change")
	flag.BoolVar(&check, "check", false, "Verify the structure invariants after every step")

	flag.Parse()

	runner := &script.Runner{Out: os.Stdout, Narrate: narrate, Check: check}

	if len(paths) > 0 {
		failed := false
		for _, p := range paths {
			s, err := script.Load(p)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error for script \"%v\": %v. Skipping...\n", p, err)
				failed = true
				continue
			}
			fmt.Printf("Running %v (%s)...\n", p, s.Kind)
			if err := runner.Run(s); err != nil {
				fmt.Fprintf(os.Stderr, "An error occurred while running script \"%v\": %v\n", p, err)
				failed = true
			}
			fmt.Println()
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	kinds, ok := demoSets[structure]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown structure %q, must be one of: %s\n", structure, strings.Join(names, ", "))
		os.Exit(1)
	}

	for _, kind := range kinds {
		s, err := script.Builtin(kind)
		if err != nil {
			log.Fatal(err)
		}
		title := strings.ToUpper(string(kind)) + " DEMO"
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("   %s\n", title)
		fmt.Println(strings.Repeat("=", 60))
		if err := runner.Run(s); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
}
