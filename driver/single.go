package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quadra-mesh/quadra/meshio"
	"github.com/quadra-mesh/quadra/simplify"
)

// SingleResult reports what one Single call did.
type SingleResult struct {
	OutputPath       string
	OriginalVertices int
	SimplifiedResult simplify.Result
	Elapsed          time.Duration
}

// Single reads the mesh at inputPath, simplifies it per opts, writes the
// result to outputDir under "<stem>_simplified<ext>", and reports what
// happened. Mirrors original_source/batch_simplify.py's simplify_mesh, run
// for a single file instead of a directory sweep.
func Single(inputPath, outputDir string, opts ...simplify.Option) (SingleResult, error) {
	start := time.Now()

	f, err := os.Open(inputPath)
	if err != nil {
		return SingleResult{}, fmt.Errorf("driver: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	mesh, err := meshio.ReadMesh(f)
	if err != nil {
		return SingleResult{}, fmt.Errorf("driver: reading %s: %w", inputPath, err)
	}
	original := mesh.AliveVertexCount()

	result, err := simplify.Simplify(mesh, opts...)
	if err != nil {
		return SingleResult{}, fmt.Errorf("driver: simplifying %s: %w", inputPath, err)
	}
	mesh.Compact()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return SingleResult{}, fmt.Errorf("driver: creating %s: %w", outputDir, err)
	}
	outputPath := filepath.Join(outputDir, simplifiedName(inputPath))

	out, err := os.Create(outputPath)
	if err != nil {
		return SingleResult{}, fmt.Errorf("driver: creating %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := meshio.WriteMesh(out, mesh); err != nil {
		return SingleResult{}, fmt.Errorf("driver: writing %s: %w", outputPath, err)
	}

	return SingleResult{
		OutputPath:       outputPath,
		OriginalVertices: original,
		SimplifiedResult: result,
		Elapsed:          time.Since(start),
	}, nil
}

// simplifiedName turns "mesh.obj" into "mesh_simplified.obj".
func simplifiedName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return stem + "_simplified" + ext
}
