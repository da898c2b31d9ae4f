package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"linear_structures/src/script"

	"gonum.org/v1/gonum/stat/distuv"
)

// opWeight biases the random mix: insertions dominate so the structure
// grows, and displays are rare.
func opWeight(name string, insertWeight float64) float64 {
	switch {
	case strings.HasPrefix(name, "push"), name == "enqueue":
		return insertWeight
	case strings.HasPrefix(name, "display"):
		return 0.5
	case name == "clear":
		return 0.1
	}
	return 1
}

func GenerateScript(kind script.Kind, numOps, maxValue int, insertWeight float64, seed uint64) (string, error) {
	ops, err := script.Operations(kind)
	if err != nil {
		return "", err
	}

	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	rnd := rand.New(src)
	weights := make([]float64, len(ops))
	for i, name := range ops {
		weights[i] = opWeight(name, insertWeight)
	}
	pick := distuv.NewCategorical(weights, src)

	s := new(strings.Builder)
	fmt.Fprintf(s, "structure %s\n", kind)
	for range numOps {
		name := ops[int(pick.Rand())]
		if script.TakesValue(kind, name) {
			fmt.Fprintf(s, "%s %d\n", name, 1+rnd.IntN(maxValue))
		} else {
			fmt.Fprintln(s, name)
		}
	}
	return s.String(), nil
}

func main() {
	var outPath, structure string
	var numOps, maxValue int
	var insertWeight float64
	var seed uint64

	flag.StringVar(&outPath, "out", "out.lin", "The output file")
	flag.StringVar(&structure, "structure", "", "The structure the script drives: list, dlist, stack or queue")
	flag.IntVar(&numOps, "ops", 0, "The number of operations")
	flag.IntVar(&maxValue, "maxval", 100, "The largest value inserted")
	flag.Float64Var(&insertWeight, "insertw", 3, "The weight of insertions relative to other operations")
	flag.Uint64Var(&seed, "seed", 1, "The random seed")

	flag.Parse()

	err := false
	kind, kindErr := script.ParseKind(structure)
	if kindErr != nil {
		fmt.Fprintln(os.Stderr, "Must specify a structure:", kindErr)
		err = true
	}
	if numOps <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify the number of operations")
		err = true
	}
	if maxValue <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify a positive maximum value")
		err = true
	}
	if insertWeight <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify a positive insertion weight")
		err = true
	}

	if err {
		os.Exit(1)
	}

	text, genErr := GenerateScript(kind, numOps, maxValue, insertWeight, seed)
	if genErr != nil {
		fmt.Fprintln(os.Stderr, genErr)
		os.Exit(1)
	}
	if writeErr := os.WriteFile(outPath, []byte(text), 0666); writeErr != nil {
		fmt.Fprintln(os.Stderr, writeErr)
		os.Exit(1)
	}
}
