// Command quadra simplifies triangle meshes by iterated quadric-error edge
// contraction (Garland-Heckbert). It exposes three modes:
//
//	quadra simplify -in mesh.obj -out ./out [-target N | -ratio R]
//	quadra batch     -in ./meshes -out ./out
//	quadra evaluate  -in ./meshes -out ./out [-samples N]
//
// "simplify" runs one file through driver.Single, "batch" sweeps a
// directory at the fixed ratio set in driver.BatchRatios and writes
// simplification_log.csv, and "evaluate" re-reads that log and appends a
// symmetric surface error column via driver.Evaluate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quadra-mesh/quadra/driver"
	"github.com/quadra-mesh/quadra/simplify"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "simplify":
		err = runSimplify(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "evaluate":
		err = runEvaluate(os.Args[2:])
	case "-h", "-help", "--help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "quadra:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: quadra <simplify|batch|evaluate> [flags]")
}

func runSimplify(args []string) error {
	fs := flag.NewFlagSet("simplify", flag.ExitOnError)
	in := fs.String("in", "", "input mesh file (required)")
	out := fs.String("out", ".", "output directory")
	target := fs.Int("target", 0, "surviving vertex count (mutually exclusive with -ratio)")
	ratio := fs.Float64("ratio", 0, "target as a fraction of current vertex count, in (0,1]")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("simplify: -in is required")
	}

	var opt simplify.Option
	switch {
	case *ratio > 0:
		opt = simplify.WithRatio(*ratio)
	case *target > 0:
		opt = simplify.WithTarget(*target)
	default:
		return fmt.Errorf("simplify: one of -target or -ratio is required")
	}

	result, err := driver.Single(*in, *out, opt)
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s: %d -> %d vertices, %d contractions, %v\n",
		*in, result.OutputPath, result.OriginalVertices,
		result.SimplifiedResult.VerticesRemaining, result.SimplifiedResult.Contractions,
		result.Elapsed)
	if result.SimplifiedResult.Drained {
		fmt.Println("note: heap drained before reaching target")
	}

	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	in := fs.String("in", "", "input directory (required)")
	out := fs.String("out", "", "output directory (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("batch: -in and -out are required")
	}

	report, err := driver.Batch(*in, *out)
	if err != nil {
		return err
	}

	fmt.Printf("batch: %d files, %d succeeded, %d failed, log at %s\n",
		report.FilesFound, report.Succeeded, report.Failed, report.LogPath)

	return nil
}

func runEvaluate(args []string) error {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	in := fs.String("in", "", "original-mesh input directory (required)")
	out := fs.String("out", "", "batch output directory holding simplification_log.csv (required)")
	samples := fs.Int("samples", driver.DefaultSampleCount, "surface samples per mesh")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("evaluate: -in and -out are required")
	}

	report, err := driver.Evaluate(*in, *out, *samples)
	if err != nil {
		return err
	}

	fmt.Printf("evaluate: %d rows, %d scored, %d skipped, log at %s\n",
		report.RowsTotal, report.RowsOK, report.RowsSkipped, report.LogPath)

	return nil
}
