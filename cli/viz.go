// ABOUTME: Visualization CLI commands
// ABOUTME: Handles graphviz graph generation commands
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/leadgen/store"
	"github.com/harperreed/leadgen/viz"
)

// VizGraphPipelineCommand generates a pipeline graph grouped by status.
func VizGraphPipelineCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz graph pipeline", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GeneratePipelineGraph()
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}

// VizGraphDuplicatesCommand generates a duplicate email cluster graph.
func VizGraphDuplicatesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz graph duplicates", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GenerateDuplicatesGraph()
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}
