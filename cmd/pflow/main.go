// Command pflow converts a Petri net description into a coverability graph,
// an equivalent SMV symbolic model, and a rendered dot/SVG visualization.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/pflow-xyz/petri-coverability/coverability"
	"github.com/pflow-xyz/petri-coverability/dotgraph"
	"github.com/pflow-xyz/petri-coverability/parser"
	"github.com/pflow-xyz/petri-coverability/persist"
	"github.com/pflow-xyz/petri-coverability/smv"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pflow", flag.ContinueOnError)
	source := fs.String("source", "./net.petri", "path to the source Petri net")
	output := fs.String("output", "./automata", "output prefix; .smv/.dot/.svg/.png are appended")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pflow [options]

Convert a Petri net into a coverability graph, an SMV symbolic model, and a
rendered dot/SVG visualization.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := persist.ReadSource(*source)
	if err != nil {
		return err
	}

	input, err := parser.Parse(data)
	if err != nil {
		return err
	}

	graph, err := coverability.Explore(input)
	if err != nil {
		return err
	}

	bounds := coverability.InferBounds(input.PlaceNames, input.InitialMarking, graph)
	initial := coverability.NewMarking(input.InitialMarking...)

	smvText := smv.Emit(initial, graph, bounds)
	dotText := dotgraph.Emit(input.PlaceNames, graph, input.Transitions)

	writer := persist.NewWriter(*output)
	if err := writer.Persist(smvText, dotText); err != nil {
		return err
	}

	fmt.Printf("✓ %d states explored\n", len(graph.Keys()))
	fmt.Printf("  SMV model: %s.smv\n", *output)
	fmt.Printf("  Graph:     %s.svg\n", *output)

	openInViewer(*output + ".svg")
	return nil
}

// openInViewer best-effort opens path with the platform's default viewer.
// Failure here is never fatal: the artefacts are already on disk.
func openInViewer(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}
